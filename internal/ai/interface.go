package ai

import (
	"context"
)

// TextGenerator defines the contract for the generative backend.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.)
// and for substituting deterministic fakes in tests.
type TextGenerator interface {
	// Generate sends an ordered (system instruction, user instruction) pair to
	// the backend and returns a single text completion. An empty string with a
	// nil error is the backend's absence signal: it produced no usable payload.
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
