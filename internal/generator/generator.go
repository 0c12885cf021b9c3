// Package generator assembles generation prompts, calls the configured LLM
// provider and parses the model output into a publishable artifact.
package generator

import (
	"context"
	"errors"
	"time"

	"github.com/dhakseshr/tds-project1/internal/config"
	"github.com/dhakseshr/tds-project1/pkg/codegen"
	"github.com/dhakseshr/tds-project1/pkg/domain"
	"github.com/dhakseshr/tds-project1/pkg/logger"
	"github.com/dhakseshr/tds-project1/pkg/metrics"
	"github.com/dhakseshr/tds-project1/pkg/serrors"

	"go.uber.org/zap"
)

// Options configure a single generator instance.
type Options struct {
	// Timeout bounds one completion call; zero means no extra deadline.
	Timeout time.Duration
	// MaxAttachmentBytes caps the decoded size of a single attachment.
	MaxAttachmentBytes int
}

// NewOptions constructs an Options value from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Timeout:            cfg.Generator.Timeout,
		MaxAttachmentBytes: cfg.Generator.MaxAttachmentBytes,
	}
}

// generator is the concrete implementation of the Generator interface.
type generator struct {
	options Options
	client  codegen.Client
}

// New creates a Generator backed by the provided completion client.
func New(client codegen.Client, options Options) Generator {
	return &generator{
		options: options,
		client:  client,
	}
}

// Generate runs one generation round: decode attachments, build the prompt,
// call the model and parse its output. Upstream failures and unparseable
// output surface as ErrGeneration; validation problems in the input keep
// their ErrValidation kind.
func (g *generator) Generate(ctx context.Context, in Input) (*Result, error) {
	if in.Round <= 0 {
		in.Round = 1
	}

	atts, err := decodeAttachments(in.Attachments, g.options.MaxAttachmentBytes)
	if err != nil {
		return nil, err
	}
	attachmentsMeta := summarizeAttachments(atts)

	prompt := buildPrompt(in, attachmentsMeta)

	if g.options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.options.Timeout)
		defer cancel()
	}

	start := time.Now()
	raw, err := g.client.Complete(ctx, prompt)
	metrics.ObserveStage(metrics.StageGenerate, start)
	if err != nil {
		metrics.StageErrors.WithLabelValues(metrics.StageGenerate).Inc()

		return nil, serrors.Wrap(serrors.ErrGeneration, err, "completion call failed")
	}

	artifact, err := parseArtifact(raw)
	if err != nil {
		metrics.StageErrors.WithLabelValues(metrics.StageGenerate).Inc()
		// parse failures already carry the generation kind
		if errors.Is(err, serrors.ErrGeneration) {
			return nil, err
		}

		return nil, serrors.Wrap(serrors.ErrGeneration, err, "could not parse model output")
	}

	if artifact.Readme() == "" {
		artifact.Files[domain.ReadmePath] = fallbackReadme(in, attachmentsMeta)
		logger.Debug(ctx, "model omitted README, synthesized fallback")
	}

	metrics.ArtifactFiles.Observe(float64(len(artifact.Files)))
	logger.Info(ctx, "artifact generated",
		zap.String("model", g.client.Model()),
		zap.Int("files", len(artifact.Files)),
		zap.Int("attachments", len(atts)))

	return &Result{Artifact: artifact, Attachments: atts}, nil
}
