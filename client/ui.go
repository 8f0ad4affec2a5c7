package client

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
)

const (
	DefaultTop = 10

	statusSearching  = "Buscando…"
	statusNoMatches  = "Sin coincidencias."
	statusTotalLabel = "Resultados: %d"
)

// Card is one rendered search result. All fields are already HTML-escaped.
type Card struct {
	Badge    string
	Category string
	Snippet  string
}

// View is the rendering surface the UI drives. At most one status message
// and one result set are visible; each search fully replaces the previous
// rendering.
type View interface {
	SetStatus(text string, isError bool)
	ClearResults()
	AppendCard(card Card)
}

// Searcher is what SearchUI needs from the search client.
type Searcher interface {
	Search(ctx context.Context, query string, top int) (*Response, error)
}

// SearchUI translates user input into a single search request and renders
// its outcome through the injected view.
type SearchUI struct {
	view   View
	client Searcher
	seq    atomic.Uint64
}

func NewSearchUI(client Searcher, view View) *SearchUI {
	return &SearchUI{
		view:   view,
		client: client,
	}
}

// Submit runs one search and renders the outcome. A blank query is a no-op.
// Each call takes the next sequence number; if another Submit starts while
// this one is waiting on the transport, the stale response is discarded
// instead of overwriting the newer rendering.
func (u *SearchUI) Submit(ctx context.Context, query string, top int) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}
	if top <= 0 {
		top = DefaultTop
	}

	seq := u.seq.Add(1)

	u.view.SetStatus(statusSearching, false)
	u.view.ClearResults()

	response, err := u.client.Search(ctx, query, top)

	if seq != u.seq.Load() {
		return
	}

	if err != nil {
		u.renderError(err)
		return
	}

	u.renderResults(response)
}

func (u *SearchUI) renderError(err error) {
	message := genericErrorMessage
	if serverErr, ok := err.(*ServerError); ok {
		message = serverErr.Message
	}
	escaped := EscapeHTML(message)

	u.view.SetStatus(escaped, true)
	u.view.AppendCard(Card{Snippet: escaped})
}

func (u *SearchUI) renderResults(response *Response) {
	u.view.SetStatus(fmt.Sprintf(statusTotalLabel, response.Total), false)

	if len(response.Results) == 0 {
		u.view.AppendCard(Card{Snippet: statusNoMatches})
		return
	}

	for _, result := range response.Results {
		u.view.AppendCard(Card{
			Badge:    fmt.Sprintf("[%04d]", result.DocID),
			Category: EscapeHTML(result.Category),
			Snippet:  EscapeHTML(result.Snippet),
		})
	}
}
