// Common test helpers
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/fmendezl/boolfind/config"
	"github.com/fmendezl/boolfind/db/indexdb"
	"github.com/fmendezl/boolfind/db/kvdb"
	"github.com/fmendezl/boolfind/logger"
	"github.com/fmendezl/boolfind/services/index"
	"github.com/fmendezl/boolfind/validation"
)

var defaultTestRequestHeaders = map[string]string{"Content-Type": "application/json"}

const testTempDir = "./.boolfind_test"

const testCorpusContent = `1: Ciencia | El átomo perdió un electrón y no se dio cuenta.
2: Arte | Un lienzo en blanco es <b>arte</b> moderno, dijo el gato.
3: Animales | El perro ladra y el gato duerme tranquilo.
esta línea no es un documento
4: Informática | El programador confunde Halloween con Navidad.
`

type testCase struct {
	name           string
	requestHeaders map[string]string
	requestBody    map[string]any
	queryParams    map[string]string
	expectedStatus int
}

func newTestLogger() logger.Logger {

	opts := &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	}
	handler := slog.NewJSONHandler(os.Stderr, opts)
	return slog.New(handler)
}

func setupTestServer(t *testing.T, assert *require.Assertions) *gin.Engine {

	t.Setenv("ENV", "test")

	cfg, err := config.Load()
	assert.NoError(err, "could not load config")

	corpusPath := cfg.GetCorpusPath()
	assert.NoError(os.MkdirAll(filepath.Dir(corpusPath), 0755), "could not create test directory")
	assert.NoError(os.WriteFile(corpusPath, []byte(testCorpusContent), 0644), "could not write test corpus")

	testLogger := newTestLogger()

	kvDB, err := kvdb.New(testLogger, cfg)
	assert.NoError(err, "could not create kv database")

	indexStore := indexdb.New(testLogger)

	validator, err := validation.New(testLogger)
	assert.NoError(err, "could not create validator")

	ctx, cancel := context.WithCancel(context.Background())
	indexService := index.New(ctx, testLogger, indexStore, kvDB)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	SetupSearch(router, testLogger, indexStore, validator, cfg.GetDefaultTop())
	SetupIndex(router, testLogger, indexService, validator, corpusPath)

	t.Cleanup(func() {
		cancel()
		assert.NoError(kvDB.Close(), "could not close kv database")
		assert.NoError(indexStore.Close(), "could not close index store")
		assert.NoError(os.RemoveAll(testTempDir), "could not remove temporary directory")
	})

	return router
}

func makeTestHTTPRequest(router *gin.Engine, assert *require.Assertions, method string, endpoint string, headers map[string]string, requestBodyMap map[string]any, queryParams map[string]string) *httptest.ResponseRecorder {

	var err error
	w := httptest.NewRecorder()

	if len(queryParams) > 0 {
		params := url.Values{}
		for key, value := range queryParams {
			params.Set(key, value)
		}
		endpoint = endpoint + "?" + params.Encode()
	}

	var jsonBody []byte
	var req *http.Request
	if requestBodyMap != nil {
		jsonBody, err = json.Marshal(requestBodyMap)
		assert.NoError(err)
	}

	if len(jsonBody) > 0 {
		req, err = http.NewRequest(method, endpoint, bytes.NewBuffer(jsonBody))
	} else {
		req, err = http.NewRequest(method, endpoint, nil)
	}
	assert.NoError(err)

	for key, value := range headers {
		req.Header.Set(key, value)
	}
	router.ServeHTTP(w, req)

	return w
}

// buildIndexAndWait kicks off an index build through the API, polls the
// status endpoint until it completes and returns the build request ID.
func buildIndexAndWait(assert *require.Assertions, router *gin.Engine) string {
	w := makeTestHTTPRequest(router, assert, http.MethodPost, "/index", defaultTestRequestHeaders, map[string]any{}, nil)
	assert.Equal(http.StatusAccepted, w.Code, fmt.Sprintf("index build request failed: %s", w.Body.String()))

	var buildResponse struct {
		Data   IndexResponse `json:"data"`
		Errors []string      `json:"errors"`
	}
	assert.NoError(json.Unmarshal(w.Body.Bytes(), &buildResponse))
	assert.NotEmpty(buildResponse.Data.ID)

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		w := makeTestHTTPRequest(router, assert, http.MethodGet, "/index/status/"+buildResponse.Data.ID, nil, nil, nil)
		if w.Code == http.StatusOK {
			var statusResponse struct {
				Data   IndexStatusResponse `json:"data"`
				Errors []string            `json:"errors"`
			}
			assert.NoError(json.Unmarshal(w.Body.Bytes(), &statusResponse))
			assert.NotEqual(index.ProgressStatusFailed, statusResponse.Data.Progress, "index build failed")
			if statusResponse.Data.Progress == index.ProgressStatusComplete {
				return buildResponse.Data.ID
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
	assert.FailNow("timed out waiting for index build: " + buildResponse.Data.ID)
	return ""
}
