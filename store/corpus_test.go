package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/qanooni/hr-assistant-be/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lawChunk(content string) types.DocumentChunk {
	return types.DocumentChunk{
		Content:  content,
		Metadata: types.DocumentMetadata{Type: types.DocumentTypeLaw, FileName: "labor-law.pdf", Source: types.SourceBackendLaws},
	}
}

func contractChunk(content string) types.DocumentChunk {
	return types.DocumentChunk{
		Content:  content,
		Metadata: types.DocumentMetadata{Type: types.DocumentTypeContract, FileName: "contract.pdf", Source: types.SourceUserUpload},
	}
}

func TestAppendAndCount(t *testing.T) {
	s := NewCorpusStore()
	assert.Zero(t, s.Count(types.DocumentTypeLaw))
	assert.Zero(t, s.Count(types.DocumentTypeContract))

	require.NoError(t, s.Append(types.DocumentTypeLaw, []types.DocumentChunk{lawChunk("a"), lawChunk("b")}))
	require.NoError(t, s.Append(types.DocumentTypeLaw, []types.DocumentChunk{lawChunk("c")}))

	assert.Equal(t, 3, s.Count(types.DocumentTypeLaw))
	assert.Zero(t, s.Count(types.DocumentTypeContract))
}

func TestCorporaAreIndependent(t *testing.T) {
	s := NewCorpusStore()
	require.NoError(t, s.Append(types.DocumentTypeLaw, []types.DocumentChunk{lawChunk("a")}))
	require.NoError(t, s.Append(types.DocumentTypeContract, []types.DocumentChunk{contractChunk("x"), contractChunk("y")}))

	require.NoError(t, s.Clear(types.DocumentTypeLaw))
	assert.Zero(t, s.Count(types.DocumentTypeLaw))
	assert.Equal(t, 2, s.Count(types.DocumentTypeContract))
}

func TestClearAll(t *testing.T) {
	s := NewCorpusStore()
	require.NoError(t, s.Append(types.DocumentTypeLaw, []types.DocumentChunk{lawChunk("a")}))
	require.NoError(t, s.Append(types.DocumentTypeContract, []types.DocumentChunk{contractChunk("x")}))

	s.ClearAll()
	assert.Zero(t, s.Count(types.DocumentTypeLaw))
	assert.Zero(t, s.Count(types.DocumentTypeContract))
}

func TestAllPreservesInsertionOrder(t *testing.T) {
	s := NewCorpusStore()
	require.NoError(t, s.Append(types.DocumentTypeLaw, []types.DocumentChunk{lawChunk("first"), lawChunk("second")}))
	require.NoError(t, s.Append(types.DocumentTypeLaw, []types.DocumentChunk{lawChunk("third")}))

	chunks, err := s.All(types.DocumentTypeLaw)
	require.NoError(t, err)
	require.Len(t, chunks, 3)
	assert.Equal(t, "first", chunks[0].Content)
	assert.Equal(t, "second", chunks[1].Content)
	assert.Equal(t, "third", chunks[2].Content)
}

func TestAllReturnsSnapshot(t *testing.T) {
	s := NewCorpusStore()
	require.NoError(t, s.Append(types.DocumentTypeLaw, []types.DocumentChunk{lawChunk("a")}))

	snapshot, err := s.All(types.DocumentTypeLaw)
	require.NoError(t, err)

	require.NoError(t, s.Clear(types.DocumentTypeLaw))
	require.Len(t, snapshot, 1)
	assert.Equal(t, "a", snapshot[0].Content)
}

func TestUnknownDocumentType(t *testing.T) {
	s := NewCorpusStore()

	err := s.Append("tax", []types.DocumentChunk{lawChunk("a")})
	require.ErrorIs(t, err, types.ErrUnknownDocumentType)

	_, err = s.All("tax")
	require.ErrorIs(t, err, types.ErrUnknownDocumentType)

	assert.Zero(t, s.Count("tax"))
}

func TestConcurrentAppendAndRead(t *testing.T) {
	s := NewCorpusStore()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = s.Append(types.DocumentTypeLaw, []types.DocumentChunk{lawChunk(fmt.Sprintf("chunk-%d", i))})
		}(i)
		go func() {
			defer wg.Done()
			_, _ = s.All(types.DocumentTypeLaw)
		}()
	}
	wg.Wait()
	assert.Equal(t, 10, s.Count(types.DocumentTypeLaw))
}
