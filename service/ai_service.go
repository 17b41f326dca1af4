package service

import "context"

// AIService generates a completion for a grounded prompt.
type AIService interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
