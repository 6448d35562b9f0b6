package ai

import (
	"context"

	"agrirent/models"
)

// QueryInterpreter turns a farmer's free-text (voice-transcribed)
// equipment query into a structured search filter. A failed
// interpretation is not fatal: callers treat it as an empty filter and
// show unfiltered results.
type QueryInterpreter interface {
	Interpret(ctx context.Context, query string) (models.QueryInterpretation, error)
}

// GenerativeClient abstracts the underlying model call so the
// interpreter can be tested without network access.
type GenerativeClient interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
