package indexdb

type DB interface {
	BuildIndex(documents []Document) error
	Postings(term string) []int
	PostingsMap() map[string][]int
	Document(docID int) (Document, bool)
	DocCount() int
	Ready() bool
	Snapshot() ([]byte, error)
	Restore(data []byte) error
	Close() error
}
