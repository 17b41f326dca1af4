package service

import (
	"context"
	"math"
	"sort"

	"github.com/qanooni/hr-assistant-be/types"
)

const defaultTopK = 5

// SearchService ranks corpus chunks against a query by cosine similarity.
// The corpus is small enough for an exhaustive scan; the query costs a single
// embedding call because chunk embeddings are cached at ingestion.
type SearchService struct {
	embedder Embedder
}

func NewSearchService(embedder Embedder) *SearchService {
	return &SearchService{embedder: embedder}
}

// Search returns the topK highest-scoring chunks in descending score order,
// breaking ties by corpus insertion order. An empty corpus yields an empty
// result and no provider call.
func (s *SearchService) Search(ctx context.Context, query string, chunks []types.DocumentChunk, topK int) ([]types.ScoredChunk, error) {
	if len(chunks) == 0 {
		return nil, nil
	}
	if topK <= 0 {
		topK = defaultTopK
	}

	queryVec, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		return nil, err
	}

	scored := make([]types.ScoredChunk, 0, len(chunks))
	for _, chunk := range chunks {
		vec := chunk.Embedding
		if vec == nil {
			// Chunk missed ingestion-time embedding, embed it now.
			vec, err = s.embedder.EmbedText(ctx, chunk.Content)
			if err != nil {
				return nil, err
			}
		}
		scored = append(scored, types.ScoredChunk{
			Chunk: chunk,
			Score: CosineSimilarity(queryVec, vec),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if topK < len(scored) {
		scored = scored[:topK]
	}
	return scored, nil
}

// CosineSimilarity measures directional closeness of two vectors. A zero
// magnitude on either side scores 0 rather than dividing by zero.
func CosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, magA, magB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		magA += float64(a[i]) * float64(a[i])
		magB += float64(b[i]) * float64(b[i])
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}
