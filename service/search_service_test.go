package service

import (
	"context"
	"errors"
	"testing"

	"github.com/qanooni/hr-assistant-be/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEmbedder returns canned vectors per text and counts calls.
type fakeEmbedder struct {
	vectors map[string][]float32
	def     []float32
	calls   int
	err     error
}

func (f *fakeEmbedder) EmbedText(_ context.Context, text string) ([]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if vec, ok := f.vectors[text]; ok {
		return vec, nil
	}
	return f.def, nil
}

func chunkWithVec(content string, vec []float32) types.DocumentChunk {
	return types.DocumentChunk{
		Content:   content,
		Metadata:  types.DocumentMetadata{Type: types.DocumentTypeLaw, FileName: "law.pdf"},
		Embedding: vec,
	}
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, CosineSimilarity([]float32{1, 2, 3}, []float32{1, 2, 3}), 1e-9)
	assert.InDelta(t, 0.0, CosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, CosineSimilarity([]float32{1, 0}, []float32{-1, 0}), 1e-9)

	// Magnitude does not matter, only direction.
	assert.InDelta(t, 1.0, CosineSimilarity([]float32{1, 1}, []float32{5, 5}), 1e-9)
}

func TestCosineSimilarityZeroVector(t *testing.T) {
	assert.Equal(t, 0.0, CosineSimilarity([]float32{0, 0}, []float32{1, 2}))
	assert.Equal(t, 0.0, CosineSimilarity([]float32{1, 2}, []float32{0, 0}))
	assert.Equal(t, 0.0, CosineSimilarity(nil, nil))
}

func TestSearchEmptyCorpus(t *testing.T) {
	embedder := &fakeEmbedder{}
	search := NewSearchService(embedder)

	results, err := search.Search(context.Background(), "query", nil, 6)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Zero(t, embedder.calls, "empty corpus must not trigger provider calls")
}

func TestSearchRanksByDescendingScore(t *testing.T) {
	embedder := &fakeEmbedder{
		vectors: map[string][]float32{"query": {1, 0}},
	}
	search := NewSearchService(embedder)

	chunks := []types.DocumentChunk{
		chunkWithVec("orthogonal", []float32{0, 1}),
		chunkWithVec("exact", []float32{1, 0}),
		chunkWithVec("close", []float32{0.9, 0.1}),
	}

	results, err := search.Search(context.Background(), "query", chunks, 6)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "exact", results[0].Chunk.Content)
	assert.Equal(t, "close", results[1].Chunk.Content)
	assert.Equal(t, "orthogonal", results[2].Chunk.Content)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
}

func TestSearchTopKBoundsResultLength(t *testing.T) {
	embedder := &fakeEmbedder{def: []float32{1, 0}}
	search := NewSearchService(embedder)

	chunks := []types.DocumentChunk{
		chunkWithVec("a", []float32{1, 0}),
		chunkWithVec("b", []float32{1, 0}),
		chunkWithVec("c", []float32{1, 0}),
	}

	results, err := search.Search(context.Background(), "q", chunks, 2)
	require.NoError(t, err)
	assert.Len(t, results, 2)

	results, err = search.Search(context.Background(), "q", chunks, 10)
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestSearchStableTieBreakByInsertionOrder(t *testing.T) {
	embedder := &fakeEmbedder{def: []float32{1, 0}}
	search := NewSearchService(embedder)

	chunks := []types.DocumentChunk{
		chunkWithVec("first", []float32{2, 0}),
		chunkWithVec("second", []float32{3, 0}),
		chunkWithVec("third", []float32{4, 0}),
	}

	results, err := search.Search(context.Background(), "q", chunks, 6)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "first", results[0].Chunk.Content)
	assert.Equal(t, "second", results[1].Chunk.Content)
	assert.Equal(t, "third", results[2].Chunk.Content)
}

func TestSearchUsesCachedEmbeddings(t *testing.T) {
	embedder := &fakeEmbedder{def: []float32{1, 0}}
	search := NewSearchService(embedder)

	chunks := []types.DocumentChunk{
		chunkWithVec("a", []float32{1, 0}),
		chunkWithVec("b", []float32{0, 1}),
	}

	_, err := search.Search(context.Background(), "q", chunks, 6)
	require.NoError(t, err)
	assert.Equal(t, 1, embedder.calls, "only the query should be embedded")
}

func TestSearchEmbedsUncachedChunks(t *testing.T) {
	embedder := &fakeEmbedder{def: []float32{1, 0}}
	search := NewSearchService(embedder)

	chunks := []types.DocumentChunk{
		chunkWithVec("cached", []float32{1, 0}),
		{Content: "uncached"},
	}

	_, err := search.Search(context.Background(), "q", chunks, 6)
	require.NoError(t, err)
	assert.Equal(t, 2, embedder.calls)
}

func TestSearchPropagatesEmbedderError(t *testing.T) {
	embedder := &fakeEmbedder{err: errors.New("boom")}
	search := NewSearchService(embedder)

	_, err := search.Search(context.Background(), "q", []types.DocumentChunk{chunkWithVec("a", []float32{1})}, 6)
	require.Error(t, err)
}
