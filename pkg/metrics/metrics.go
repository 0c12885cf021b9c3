// Package metrics defines the Prometheus collectors used by the generation
// pipeline. Collectors are registered on the default registerer and exposed
// through the server's metrics endpoint.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of latency histogram buckets in
// seconds. LLM and repository-hosting calls routinely take several seconds,
// so the upper buckets stretch further than typical HTTP defaults.
var DefaultBuckets = []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120} //nolint: gochecknoglobals

// Pipeline stage labels used by StageDuration and StageErrors.
const (
	StageGenerate = "generate"
	StagePublish  = "publish"
)

//nolint: gochecknoglobals
var (
	// SitesRequested counts briefs accepted by the intake endpoint.
	SitesRequested = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sitegen_sites_requested_total",
		Help: "Number of briefs accepted for generation.",
	})

	// SitesPublished counts pipeline runs that ended with a published repository.
	SitesPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sitegen_sites_published_total",
		Help: "Number of successfully published sites.",
	})

	// StageErrors counts failures per pipeline stage.
	StageErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sitegen_stage_errors_total",
		Help: "Number of pipeline failures by stage.",
	}, []string{"stage"})

	// StageDuration observes wall-clock duration per pipeline stage.
	StageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sitegen_stage_duration_seconds",
		Help:    "Duration of pipeline stages in seconds.",
		Buckets: DefaultBuckets,
	}, []string{"stage"})

	// ArtifactFiles observes how many files each successful generation produced.
	ArtifactFiles = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sitegen_artifact_files",
		Help:    "Number of files per generated artifact.",
		Buckets: []float64{1, 2, 3, 5, 8, 13, 21},
	})
)

// ObserveStage records the duration of a stage that started at the given time.
func ObserveStage(stage string, start time.Time) {
	StageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}
