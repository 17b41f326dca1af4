package service

import (
	"context"
	"errors"

	"github.com/qanooni/hr-assistant-be/types"
	"github.com/sashabaranov/go-openai"
)

// Low temperature and bounded output favor faithfulness to the retrieved
// context over creativity.
const (
	chatTemperature = 0.2
	chatMaxTokens   = 1000
)

type OpenAIService struct {
	client *openai.Client
	model  string
}

func NewOpenAIService(baseURL, apiKey, model string) *OpenAIService {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAIService{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func (s *OpenAIService) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: chatTemperature,
			MaxTokens:   chatMaxTokens,
		},
	)
	if err != nil {
		return "", &types.ProviderError{Op: "completion", Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &types.ProviderError{Op: "completion", Err: errors.New("no response generated")}
	}
	return resp.Choices[0].Message.Content, nil
}
