// Package codegen defines the abstraction for LLM completion providers used
// to turn a prompt into generated text.
package codegen

import "context"

// Client is the abstraction for text-completion providers. Implementations
// send a single prompt and return the model's raw text output.
//
// Calls are blocking; cancellation and deadlines are carried by ctx.
type Client interface {
	// Complete sends the prompt to the model and returns its text output.
	Complete(ctx context.Context, prompt string) (string, error)

	// Model returns the provider-specific model identifier in use.
	Model() string
}
