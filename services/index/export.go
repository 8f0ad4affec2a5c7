package index

import (
	"compress/gzip"
	"encoding/json"
	"errors"
	"io"
)

var ErrIndexNotReady = errors.New("índice aún no listo, reintenta")

// Ready reports whether the index can serve searches and exports.
func (s *Service) Ready() bool {
	return s.store.Ready()
}

// ExportJSON streams the inverted index (term -> postings list) as JSON.
// Compact by default; pretty adds indentation and compress wraps the output
// in gzip.
func (s *Service) ExportJSON(w io.Writer, pretty bool, compress bool) error {
	if !s.store.Ready() {
		return ErrIndexNotReady
	}

	postings := s.store.PostingsMap()

	out := w
	if compress {
		gz := gzip.NewWriter(w)
		defer gz.Close()
		out = gz
	}

	encoder := json.NewEncoder(out)
	encoder.SetEscapeHTML(false)
	if pretty {
		encoder.SetIndent("", "  ")
	}

	return encoder.Encode(postings)
}
