package llm

import "context"

// CompletionProvider is a minimal abstraction over a text-completion API.
// It intentionally hides concrete providers to preserve dependency direction.
type CompletionProvider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
