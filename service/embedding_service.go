package service

import (
	"context"
	"errors"
	"time"

	"github.com/qanooni/hr-assistant-be/types"
	"github.com/sashabaranov/go-openai"
)

// EmbedTextLimit bounds how many runes of a text are sent to the embedding
// provider. Long chunks are truncated to this prefix to cap per-call cost.
const EmbedTextLimit = 1000

const (
	embedMaxAttempts = 3
	embedRetryBase   = time.Second
)

// Embedder maps text to a fixed-dimension vector.
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

// OpenAIEmbedder calls an OpenAI-compatible embeddings endpoint, retrying
// transient failures with exponential backoff.
type OpenAIEmbedder struct {
	client *openai.Client
	model  string
}

func NewOpenAIEmbedder(baseURL, apiKey, model string) *OpenAIEmbedder {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAIEmbedder{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func (e *OpenAIEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	var lastErr error
	for attempt := 0; attempt < embedMaxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(embedRetryBase << (attempt - 1)):
			}
		}

		resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
			Model: openai.EmbeddingModel(e.model),
			Input: []string{truncateForEmbedding(text)},
		})
		if err != nil {
			lastErr = err
			continue
		}
		if len(resp.Data) == 0 {
			lastErr = errors.New("no embedding returned")
			continue
		}
		return resp.Data[0].Embedding, nil
	}
	return nil, &types.ProviderError{Op: "embedding", Err: lastErr}
}

func truncateForEmbedding(text string) string {
	runes := []rune(text)
	if len(runes) > EmbedTextLimit {
		return string(runes[:EmbedTextLimit])
	}
	return text
}
