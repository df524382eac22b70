package formschema

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/formforge/backend/pkg/apperr"
	"github.com/formforge/backend/pkg/llm"
)

// UseCase turns a free-text form description into a field-definition schema.
type UseCase interface {
	// Generate returns either []Field (fallback) or json.RawMessage (the
	// provider's parsed output). The provider's JSON is checked for
	// syntactic validity only, never for shape.
	Generate(ctx context.Context, text string) (any, error)
}

type service struct {
	provider llm.CompletionProvider
	enabled  bool
}

// NewService builds the form-schema use case. enabled is decided once at
// startup; when false the provider is never invoked and may be nil.
func NewService(provider llm.CompletionProvider, enabled bool) UseCase {
	return &service{provider: provider, enabled: enabled}
}

func (s *service) Generate(ctx context.Context, text string) (any, error) {
	// The fallback is served before any request inspection, so a disabled
	// deployment answers every prompt request the same way.
	if !s.enabled {
		return FallbackFields, nil
	}

	if strings.TrimSpace(text) == "" {
		return nil, apperr.Validation("Missing required parameter: text")
	}

	completion, err := s.provider.Complete(ctx, BuildPrompt(text))
	if err != nil {
		return nil, apperr.Upstream("completion request failed", err)
	}

	var payload json.RawMessage
	if err := json.Unmarshal([]byte(completion), &payload); err != nil {
		return nil, apperr.Upstream("completion provider returned malformed JSON", err)
	}
	return payload, nil
}
