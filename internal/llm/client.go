// Package llm wraps the Gemini API behind a small completion interface so
// generation logic and tests stay independent of the SDK.
package llm

import "context"

// Client produces a text completion for a prompt.
type Client interface {
	// Complete sends prompt to the model and returns its text response.
	// An empty response is reported as an error.
	Complete(ctx context.Context, prompt string) (string, error)
	// Model returns the model identifier requests are sent to.
	Model() string
}
