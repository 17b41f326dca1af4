// Package store holds the two in-memory chunk corpora (law and contract).
// Both corpora live for the process lifetime only; there is no persistence.
package store

import (
	"fmt"
	"sync"

	"github.com/qanooni/hr-assistant-be/types"
)

type corpus struct {
	mu     sync.RWMutex
	chunks []types.DocumentChunk
}

func (c *corpus) append(chunks []types.DocumentChunk) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.chunks = append(c.chunks, chunks...)
}

func (c *corpus) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.chunks = nil
}

func (c *corpus) count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.chunks)
}

func (c *corpus) snapshot() []types.DocumentChunk {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]types.DocumentChunk, len(c.chunks))
	copy(out, c.chunks)
	return out
}

// CorpusStore owns the law and contract corpora. The two collections are
// fully independent: each has its own lock and a chunk never appears in both.
type CorpusStore struct {
	law      corpus
	contract corpus
}

func NewCorpusStore() *CorpusStore {
	return &CorpusStore{}
}

func (s *CorpusStore) corpusFor(docType string) (*corpus, error) {
	switch docType {
	case types.DocumentTypeLaw:
		return &s.law, nil
	case types.DocumentTypeContract:
		return &s.contract, nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownDocumentType, docType)
	}
}

// Append adds chunks to the corpus of the given type, preserving insertion
// order.
func (s *CorpusStore) Append(docType string, chunks []types.DocumentChunk) error {
	c, err := s.corpusFor(docType)
	if err != nil {
		return err
	}
	c.append(chunks)
	return nil
}

// Clear empties a single corpus.
func (s *CorpusStore) Clear(docType string) error {
	c, err := s.corpusFor(docType)
	if err != nil {
		return err
	}
	c.clear()
	return nil
}

// ClearAll empties both corpora.
func (s *CorpusStore) ClearAll() {
	s.law.clear()
	s.contract.clear()
}

// Count reports the number of chunks in a corpus. Unknown types count zero.
func (s *CorpusStore) Count(docType string) int {
	c, err := s.corpusFor(docType)
	if err != nil {
		return 0
	}
	return c.count()
}

// All returns a snapshot copy of a corpus. Callers can read it freely while
// concurrent appends or clears proceed.
func (s *CorpusStore) All(docType string) ([]types.DocumentChunk, error) {
	c, err := s.corpusFor(docType)
	if err != nil {
		return nil, err
	}
	return c.snapshot(), nil
}
