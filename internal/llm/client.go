package llm

import (
	"context"
)

// Client is a provider-agnostic text-completion client: one prompt in, one
// complete response out. No streaming, no partial results.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
