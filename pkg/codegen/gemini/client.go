// Package gemini provides a codegen.Client implementation backed by the
// Google Gemini API through the official genai SDK.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/dhakseshr/tds-project1/pkg/codegen"
	"github.com/dhakseshr/tds-project1/pkg/serrors"

	genai "google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Client is a thin wrapper around the official genai client. It only focuses
// on the API call itself; prompt assembly and output parsing live in the
// generator.
type Client struct {
	cli   *genai.Client
	model string
}

// New constructs a Client talking to the Gemini API with the given key and
// model. An empty model selects DefaultModel.
func New(ctx context.Context, apiKey, model string) (*Client, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create genai client: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}

	return &Client{cli: cli, model: model}, nil
}

// Model returns the configured Gemini model identifier.
func (c *Client) Model() string { return c.model }

// Complete sends the prompt as a single text part and returns the first
// candidate's text. An empty candidate list or empty text is reported as an
// error so callers can map it to a generation failure.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.cli.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		nil,
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	if len(resp.Candidates) == 0 ||
		resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return "", serrors.With(serrors.ErrInternal, "gemini returned no candidates")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	if strings.TrimSpace(b.String()) == "" {
		return "", serrors.With(serrors.ErrInternal, "gemini returned empty text")
	}

	return b.String(), nil
}

// Ensure Client conforms to the codegen.Client interface at compile time.
var _ codegen.Client = (*Client)(nil)
