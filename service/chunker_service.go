package service

import (
	"strings"

	"github.com/qanooni/hr-assistant-be/types"
)

// ChunkerService splits extracted document text into overlapping chunks.
type ChunkerService struct {
	maxChunkSize int // Maximum size of each text chunk, in runes
	overlapSize  int // Size of overlap between chunks, in runes
}

var DefaultDocumentServiceConfig = types.DocumentServiceConfig{
	MaxChunkSize: 1000,
	OverlapSize:  200,
}

// NewChunkerService creates a chunker with configurable chunk sizes
func NewChunkerService(config types.DocumentServiceConfig) *ChunkerService {
	if config.MaxChunkSize <= 0 {
		config.MaxChunkSize = DefaultDocumentServiceConfig.MaxChunkSize
	}
	if config.OverlapSize < 0 || config.OverlapSize >= config.MaxChunkSize {
		config.OverlapSize = DefaultDocumentServiceConfig.OverlapSize
	}
	return &ChunkerService{
		maxChunkSize: config.MaxChunkSize,
		overlapSize:  config.OverlapSize,
	}
}

// Split cuts text into chunks of at most maxChunkSize runes. Splitting
// prefers a paragraph break, then a line break, then a space; when none is
// found inside the window the text is sliced hard at the size limit.
// Consecutive chunks overlap by overlapSize runes. Output is deterministic
// for a given input and configuration.
func (s *ChunkerService) Split(text string) ([]string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, types.ErrEmptyDocument
	}

	runes := []rune(trimmed)
	if len(runes) <= s.maxChunkSize {
		return []string{trimmed}, nil
	}

	var chunks []string
	pos := 0
	for pos < len(runes) {
		end := pos + s.maxChunkSize
		if end >= len(runes) {
			if last := strings.TrimSpace(string(runes[pos:])); last != "" {
				chunks = append(chunks, last)
			}
			break
		}

		cut := findSplitPoint(runes, pos, end)
		if piece := strings.TrimSpace(string(runes[pos:cut])); piece != "" {
			chunks = append(chunks, piece)
		}

		// Step back by the overlap, but always make progress.
		next := cut - s.overlapSize
		if next <= pos {
			next = cut
		}
		pos = next
	}

	if len(chunks) == 0 {
		return nil, types.ErrEmptyDocument
	}
	return chunks, nil
}

// findSplitPoint returns the index just past the best boundary in
// runes[start:limit]. Boundary preference: paragraph break, line break,
// space. Falls back to limit when the window contains no boundary.
func findSplitPoint(runes []rune, start, limit int) int {
	for i := limit - 1; i > start; i-- {
		if runes[i] == '\n' && runes[i-1] == '\n' {
			return i + 1
		}
	}
	for i := limit - 1; i > start; i-- {
		if runes[i] == '\n' {
			return i + 1
		}
	}
	for i := limit - 1; i > start; i-- {
		if runes[i] == ' ' {
			return i + 1
		}
	}
	return limit
}
