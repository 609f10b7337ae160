package build

import (
	"context"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/docgarden/internal/buildctx"
	"git.home.luguber.info/inful/docgarden/internal/config"
	"git.home.luguber.info/inful/docgarden/internal/content"
	"git.home.luguber.info/inful/docgarden/internal/transform"
)

// BuildService executes pipeline runs.
type BuildService interface {
	// Run executes load -> transform -> emit and reports the outcome.
	Run(ctx context.Context, req BuildRequest) (*BuildResult, error)
}

// BuildRequest contains all inputs of one run.
type BuildRequest struct {
	// Config is the loaded configuration for this run.
	Config *config.Config

	// Options override the directories of Config and enable verbose logging.
	Options buildctx.Options

	// Logger receives run diagnostics; nil means slog.Default().
	Logger *slog.Logger
}

// BuildResult contains the outcome of a run.
type BuildResult struct {
	// Status indicates the overall outcome.
	Status BuildStatus

	// RunID identifies the run in logs.
	RunID string

	// Corpus is the transformed snapshot; nil when loading failed.
	Corpus *content.Corpus

	// Transform is the stage report of the transform phase.
	Transform *transform.Report

	// Documents is the number of loaded documents.
	Documents int

	// Artifacts counts written artifacts per emitter.
	Artifacts map[string]int

	// Written lists the written file paths.
	Written []string

	// OutputPath is the output directory.
	OutputPath string

	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// BuildStatus represents the outcome of a run.
type BuildStatus string

const (
	// BuildStatusSuccess indicates every stage and emitter succeeded.
	BuildStatusSuccess BuildStatus = "success"

	// BuildStatusWarning indicates the site was written but some stages failed on some documents.
	BuildStatusWarning BuildStatus = "warning"

	// BuildStatusFailed indicates a fatal error or a failed emitter.
	BuildStatusFailed BuildStatus = "failed"

	// BuildStatusCancelled indicates the context was cancelled.
	BuildStatusCancelled BuildStatus = "cancelled"
)

// IsSuccess returns true if the site was written completely.
func (s BuildStatus) IsSuccess() bool {
	return s == BuildStatusSuccess || s == BuildStatusWarning
}
