// Package pipeline runs the synchronous intake, generate, publish sequence
// that turns a brief into a hosted site. One request maps to exactly one run;
// nothing is persisted and failed runs are not retried.
package pipeline

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/dhakseshr/tds-project1/internal/generator"
	"github.com/dhakseshr/tds-project1/internal/publisher"
	"github.com/dhakseshr/tds-project1/pkg/domain"
	"github.com/dhakseshr/tds-project1/pkg/logger"
	"github.com/dhakseshr/tds-project1/pkg/metrics"
	"github.com/dhakseshr/tds-project1/pkg/serrors"

	"go.uber.org/zap"
)

// Request carries one pipeline run's input as received from the API layer.
type Request struct {
	// Brief is the application description. Must be non-empty after trimming.
	Brief string
	// Round selects build (1) or revision (2). Zero defaults to 1.
	Round int
	// PreviousReadme is the prior round's README, used when Round is 2.
	PreviousReadme string
	// Checks lists evaluation criteria forwarded into the prompt.
	Checks []string
	// Attachments are data-URL attachments forwarded to the generator.
	Attachments []generator.AttachmentInput
}

// Pipeline runs one brief end to end and returns the published site.
type Pipeline interface {
	Run(ctx context.Context, req Request) (*domain.Site, error)
}

type pipeline struct {
	generator generator.Generator
	publisher publisher.Publisher
}

// New wires a generator and a publisher into a Pipeline.
func New(gen generator.Generator, pub publisher.Publisher) Pipeline {
	return &pipeline{
		generator: gen,
		publisher: pub,
	}
}

// Run validates the request, generates an artifact and publishes it. Stage
// failures keep their semantic kind (validation, generation, publish) so the
// API layer can map them to distinct responses.
func (p *pipeline) Run(ctx context.Context, req Request) (*domain.Site, error) {
	brief := domain.Brief(strings.TrimSpace(req.Brief))
	if brief == "" {
		return nil, serrors.With(serrors.ErrValidation, "brief must not be empty")
	}

	round := req.Round
	if round == 0 {
		round = 1
	}
	if round < 1 || round > 2 {
		return nil, serrors.With(serrors.ErrValidation, "round must be 1 or 2")
	}

	metrics.SitesRequested.Inc()

	ctx = logger.WithFields(ctx, zap.Int("round", round))

	res, err := p.generator.Generate(ctx, generator.Input{
		Brief:          brief,
		Round:          round,
		PreviousReadme: req.PreviousReadme,
		Checks:         req.Checks,
		Attachments:    req.Attachments,
	})
	if err != nil {
		return nil, err
	}

	repo, err := p.publisher.Publish(ctx, brief, res.Artifact, res.Attachments)
	if err != nil {
		return nil, err
	}

	files := res.Artifact.Paths()
	sort.Strings(files)

	return &domain.Site{
		Brief:      brief,
		Round:      round,
		Repository: *repo,
		Files:      files,
		CreatedAt:  time.Now(),
	}, nil
}
