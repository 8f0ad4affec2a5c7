package search

import (
	"github.com/fmendezl/boolfind/db/indexdb"
	"github.com/fmendezl/boolfind/logger"
)

const (
	maxSnippetLength = 180
	snippetCutLength = 177
)

type Hit struct {
	DocID    int    `json:"docid"`
	Category string `json:"categoria"`
	Snippet  string `json:"snippet"`
}

type Result struct {
	Query   string `json:"query"`
	Total   int    `json:"total"`
	Top     int    `json:"top"`
	Results []Hit  `json:"results"`
}

type Service struct {
	logger logger.Logger
	index  indexdb.DB
}

func New(logger logger.Logger, index indexdb.DB) *Service {
	return &Service{
		logger: logger,
		index:  index,
	}
}

// Search evaluates a boolean query (AND/OR/NOT, parentheses) against the
// index and returns up to top hits in docID order. Total always reflects the
// full hit count, not the truncated page.
func (s *Service) Search(query string, top int) (*Result, error) {
	tokens := Lex(query)

	postfix, err := InfixToPostfix(tokens)
	if err != nil {
		s.logger.Warn("could not parse query", "query", query, "err", err.Error())
		return nil, err
	}

	hits, err := evalPostfix(postfix, s.index)
	if err != nil {
		s.logger.Warn("could not evaluate query", "query", query, "err", err.Error())
		return nil, err
	}

	total := len(hits)
	if top < len(hits) {
		hits = hits[:top]
	}

	results := make([]Hit, 0, len(hits))
	for _, docID := range hits {
		doc, ok := s.index.Document(docID)
		if !ok {
			s.logger.Error("hit refers to a document missing from the index", "docid", docID)
			continue
		}
		results = append(results, Hit{
			DocID:    docID,
			Category: doc.Category,
			Snippet:  makeSnippet(doc.Text),
		})
	}

	return &Result{
		Query:   query,
		Total:   total,
		Top:     top,
		Results: results,
	}, nil
}

// makeSnippet truncates by runes so multibyte text is never cut mid-character.
func makeSnippet(text string) string {
	runes := []rune(text)
	if len(runes) <= maxSnippetLength {
		return text
	}
	return string(runes[:snippetCutLength]) + "..."
}
