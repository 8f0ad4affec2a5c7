package search

import (
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fmendezl/boolfind/db/indexdb"
	"github.com/fmendezl/boolfind/logger"
)

func newTestLogger() logger.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newTestService(t *testing.T, documents []indexdb.Document) *Service {
	testLogger := newTestLogger()
	store := indexdb.New(testLogger)
	require.NoError(t, store.BuildIndex(documents))
	return New(testLogger, store)
}

func testDocuments() []indexdb.Document {
	return []indexdb.Document{
		{ID: 0, Category: "Animales", Text: "el gato duerme", Terms: []string{"el", "gato", "duerme"}},
		{ID: 1, Category: "Animales", Text: "el perro ladra", Terms: []string{"el", "perro", "ladra"}},
		{ID: 2, Category: "Animales", Text: "gato y perro juegan", Terms: []string{"gato", "y", "perro", "juegan"}},
	}
}

func docIDs(result *Result) []int {
	ids := make([]int, 0, len(result.Results))
	for _, hit := range result.Results {
		ids = append(ids, hit.DocID)
	}
	return ids
}

func TestSearchBooleanOperators(t *testing.T) {
	service := newTestService(t, testDocuments())

	testCases := []struct {
		name           string
		query          string
		expectedDocIDs []int
	}{
		{name: "SingleTerm", query: "gato", expectedDocIDs: []int{0, 2}},
		{name: "And", query: "gato AND perro", expectedDocIDs: []int{2}},
		{name: "Or", query: "gato OR perro", expectedDocIDs: []int{0, 1, 2}},
		{name: "Not", query: "NOT gato", expectedDocIDs: []int{1}},
		{name: "AndNot", query: "gato AND NOT perro", expectedDocIDs: []int{0}},
		{name: "Parens", query: "(gato OR perro) AND NOT duerme", expectedDocIDs: []int{1, 2}},
		{name: "LowercaseOperators", query: "gato and perro", expectedDocIDs: []int{2}},
		{name: "MissingTerm", query: "dinosaurio", expectedDocIDs: []int{}},
		{name: "NotMissingTermMatchesAll", query: "NOT dinosaurio", expectedDocIDs: []int{0, 1, 2}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert := require.New(t)
			result, err := service.Search(testCase.query, 10)
			assert.NoError(err)
			assert.Equal(testCase.expectedDocIDs, docIDs(result))
			assert.Equal(len(testCase.expectedDocIDs), result.Total)
		})
	}
}

func TestSearchTopTruncation(t *testing.T) {
	assert := require.New(t)
	service := newTestService(t, testDocuments())

	result, err := service.Search("gato OR perro", 2)
	assert.NoError(err)
	assert.Equal(3, result.Total, "total must reflect all hits, not the truncated page")
	assert.Equal([]int{0, 1}, docIDs(result))
	assert.Equal(2, result.Top)
}

func TestSearchInvalidQueries(t *testing.T) {
	service := newTestService(t, testDocuments())

	testCases := []struct {
		name  string
		query string
	}{
		{name: "Empty", query: ""},
		{name: "OnlyOperator", query: "AND"},
		{name: "DanglingAnd", query: "gato AND"},
		{name: "DanglingNot", query: "NOT"},
		{name: "UnbalancedParens", query: "(gato OR perro"},
		{name: "TwoTermsNoOperator", query: "gato perro"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := service.Search(testCase.query, 10)
			require.Error(t, err)
		})
	}
}

func TestSearchSnippetTruncation(t *testing.T) {
	assert := require.New(t)

	shortText := strings.Repeat("a", 180)
	longText := strings.Repeat("ñ", 200)

	documents := []indexdb.Document{
		{ID: 0, Category: "X", Text: shortText, Terms: []string{"corto"}},
		{ID: 1, Category: "X", Text: longText, Terms: []string{"largo"}},
	}
	service := newTestService(t, documents)

	result, err := service.Search("corto", 10)
	assert.NoError(err)
	assert.Equal(shortText, result.Results[0].Snippet, "text at the limit is not truncated")

	result, err = service.Search("largo", 10)
	assert.NoError(err)
	snippet := result.Results[0].Snippet
	assert.True(strings.HasSuffix(snippet, "..."))
	assert.Equal(180, len([]rune(snippet)), "177 runes of text plus the ellipsis")
	assert.Equal(strings.Repeat("ñ", 177)+"...", snippet)
}

func TestSearchResultFields(t *testing.T) {
	assert := require.New(t)
	service := newTestService(t, testDocuments())

	result, err := service.Search("perro", 10)
	assert.NoError(err)
	assert.Equal("perro", result.Query)
	assert.Len(result.Results, 2)
	assert.Equal("Animales", result.Results[0].Category)
	assert.Equal("el perro ladra", result.Results[0].Snippet)
}
