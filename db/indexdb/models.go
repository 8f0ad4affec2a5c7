package indexdb

// Document is a single corpus entry. ID is the remapped docID in [0, N),
// which is also the document's position in the corpus ordering. Terms are
// the normalized tokens the document is indexed under.
type Document struct {
	ID       int      `json:"id"`
	Category string   `json:"category"`
	Text     string   `json:"text"`
	Terms    []string `json:"terms,omitempty"`
}
