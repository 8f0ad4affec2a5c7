package indexdb

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/fmendezl/boolfind/logger"
)

// MemoryDB is the in-memory inverted index: term -> sorted postings list.
// Searches take the read lock, so they stay consistent while a rebuild
// swaps the index under the write lock.
type MemoryDB struct {
	mu        sync.RWMutex
	logger    logger.Logger
	documents []Document
	postings  map[string][]int
	ready     bool
}

func New(logger logger.Logger) *MemoryDB {
	return &MemoryDB{
		logger:   logger,
		postings: map[string][]int{},
	}
}

// BuildIndex replaces the whole index with one built from the given
// documents. Documents must already carry their terms and remapped IDs.
func (m *MemoryDB) BuildIndex(documents []Document) error {
	postings := make(map[string][]int, len(documents))

	for _, doc := range documents {
		if doc.ID < 0 || doc.ID >= len(documents) {
			m.logger.Error("document ID outside remapped range", "id", doc.ID, "num_docs", len(documents))
			return fmt.Errorf("document ID %d outside remapped range [0, %d)", doc.ID, len(documents))
		}
		seen := make(map[string]struct{}, len(doc.Terms))
		for _, term := range doc.Terms {
			// Boolean index: presence only, one posting per document.
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			postings[term] = append(postings[term], doc.ID)
		}
	}

	for term := range postings {
		sort.Ints(postings[term])
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.documents = documents
	m.postings = postings
	m.ready = true

	return nil
}

// Postings returns the sorted postings list for a term. A term that was
// never indexed yields an empty list.
func (m *MemoryDB) Postings(term string) []int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.postings[term]
	if !ok {
		return []int{}
	}

	out := make([]int, len(p))
	copy(out, p)
	return out
}

func (m *MemoryDB) PostingsMap() map[string][]int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string][]int, len(m.postings))
	for term, p := range m.postings {
		cp := make([]int, len(p))
		copy(cp, p)
		out[term] = cp
	}
	return out
}

func (m *MemoryDB) Document(docID int) (Document, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if docID < 0 || docID >= len(m.documents) {
		return Document{}, false
	}
	return m.documents[docID], true
}

func (m *MemoryDB) DocCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.documents)
}

func (m *MemoryDB) Ready() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ready
}

type snapshot struct {
	Documents []Document       `json:"documents"`
	Postings  map[string][]int `json:"postings"`
}

// Snapshot serializes the index so it can be persisted and restored without
// reparsing the corpus.
func (m *MemoryDB) Snapshot() ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.ready {
		return nil, fmt.Errorf("index not built, nothing to snapshot")
	}

	data, err := json.Marshal(snapshot{Documents: m.documents, Postings: m.postings})
	if err != nil {
		m.logger.Error("failed to marshal index snapshot", "err", err.Error())
		return nil, fmt.Errorf("failed to marshal index snapshot: %w", err)
	}
	return data, nil
}

func (m *MemoryDB) Restore(data []byte) error {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		m.logger.Error("failed to unmarshal index snapshot", "err", err.Error())
		return fmt.Errorf("failed to unmarshal index snapshot: %w", err)
	}

	if snap.Postings == nil {
		snap.Postings = map[string][]int{}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.documents = snap.Documents
	m.postings = snap.Postings
	m.ready = true

	return nil
}

func (m *MemoryDB) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.documents = nil
	m.postings = map[string][]int{}
	m.ready = false
	return nil
}
