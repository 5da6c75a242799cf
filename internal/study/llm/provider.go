package llm

import "context"

// Provider is a single-shot text completion service.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
