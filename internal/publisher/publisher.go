// Package publisher pushes a generated artifact into a freshly created
// repository on the configured source host and enables static hosting.
package publisher

import (
	"context"
	"sort"
	"time"

	"github.com/dhakseshr/tds-project1/internal/config"
	"github.com/dhakseshr/tds-project1/pkg/domain"
	"github.com/dhakseshr/tds-project1/pkg/githost"
	"github.com/dhakseshr/tds-project1/pkg/logger"
	"github.com/dhakseshr/tds-project1/pkg/metrics"
	"github.com/dhakseshr/tds-project1/pkg/serrors"

	"go.uber.org/zap"
)

// maxDescriptionLen caps the repository description derived from the brief.
const maxDescriptionLen = 120

// assetsDir is where decoded attachments are committed inside the repository.
const assetsDir = "assets"

// Options configure a publisher instance.
type Options struct {
	// RepoPrefix is prepended to derived repository names.
	RepoPrefix string
	// Timeout bounds each individual hosting API call; zero disables it.
	Timeout time.Duration
}

// NewOptions constructs an Options value from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		RepoPrefix: cfg.Publisher.RepoPrefix,
		Timeout:    cfg.Publisher.Timeout,
	}
}

// Publisher creates a repository for an artifact, commits its files and
// enables static hosting. There is no rollback: a failure mid-way leaves the
// partially populated repository in place and reports a publish error.
type Publisher interface {
	Publish(ctx context.Context, brief domain.Brief,
		artifact domain.Artifact, attachments []domain.Attachment) (*domain.Repository, error)
}

// publisher is the concrete implementation of the Publisher interface.
type publisher struct {
	options Options
	host    githost.Client
}

// New creates a Publisher backed by the provided source-hosting client.
func New(host githost.Client, options Options) Publisher {
	return &publisher{
		options: options,
		host:    host,
	}
}

// Publish runs the full publishing sequence. Every failure is tagged with
// ErrPublish; transport kinds (conflict, unauthorized) stay reachable through
// errors.Is for callers that care.
func (p *publisher) Publish(ctx context.Context, brief domain.Brief,
	artifact domain.Artifact, attachments []domain.Attachment) (*domain.Repository, error) {
	if len(artifact.Files) == 0 {
		return nil, serrors.With(serrors.ErrPublish, "artifact has no files to publish")
	}

	start := time.Now()
	defer metrics.ObserveStage(metrics.StagePublish, start)

	name := repoName(p.options.RepoPrefix, string(brief))

	var repo *domain.Repository
	err := p.call(ctx, func(ctx context.Context) error {
		var err error
		repo, err = p.host.CreateRepository(ctx, githost.CreateRepositoryReq{
			Name:        name,
			Description: describe(brief),
		})

		return err
	})
	if err != nil {
		metrics.StageErrors.WithLabelValues(metrics.StagePublish).Inc()

		return nil, serrors.Wrap(serrors.ErrPublish, err, "could not create repository %q", name)
	}
	ctx = logger.WithFields(ctx, zap.String("repo", repo.FullName()))
	logger.Info(ctx, "repository created")

	// commit files in a stable order so logs stay deterministic
	for _, path := range sortedPaths(artifact) {
		content := artifact.Files[path]
		if err := p.call(ctx, func(ctx context.Context) error {
			return p.host.PutFile(ctx, repo, path, []byte(content), "add "+path)
		}); err != nil {
			metrics.StageErrors.WithLabelValues(metrics.StagePublish).Inc()

			return nil, serrors.Wrap(serrors.ErrPublish, err, "could not commit %q", path)
		}
	}

	for _, att := range attachments {
		path := assetsDir + "/" + att.Name
		if err := p.call(ctx, func(ctx context.Context) error {
			return p.host.PutFile(ctx, repo, path, att.Data, "add "+path)
		}); err != nil {
			metrics.StageErrors.WithLabelValues(metrics.StagePublish).Inc()

			return nil, serrors.Wrap(serrors.ErrPublish, err, "could not commit attachment %q", path)
		}
	}

	if err := p.call(ctx, func(ctx context.Context) error {
		u, err := p.host.EnablePages(ctx, repo)
		if err != nil {
			return err
		}
		repo.PagesURL = u

		return nil
	}); err != nil {
		metrics.StageErrors.WithLabelValues(metrics.StagePublish).Inc()

		return nil, serrors.Wrap(serrors.ErrPublish, err, "could not enable static hosting")
	}

	metrics.SitesPublished.Inc()
	logger.Info(ctx, "site published",
		zap.Int("files", len(artifact.Files)),
		zap.Int("attachments", len(attachments)),
		zap.String("pagesUrl", repo.PagesURL))

	return repo, nil
}

// call applies the per-call timeout around a single hosting API operation.
func (p *publisher) call(ctx context.Context, fn func(ctx context.Context) error) error {
	if p.options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.options.Timeout)
		defer cancel()
	}

	return fn(ctx)
}

// describe derives a repository description from the brief.
func describe(brief domain.Brief) string {
	s := string(brief)
	if len(s) > maxDescriptionLen {
		s = s[:maxDescriptionLen]
	}

	return "Generated from brief: " + s
}

// sortedPaths returns the artifact paths in lexicographic order.
func sortedPaths(artifact domain.Artifact) []string {
	paths := artifact.Paths()
	sort.Strings(paths)

	return paths
}
