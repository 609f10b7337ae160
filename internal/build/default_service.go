package build

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/docgarden/internal/buildctx"
	"git.home.luguber.info/inful/docgarden/internal/content"
	"git.home.luguber.info/inful/docgarden/internal/emit"
	derrors "git.home.luguber.info/inful/docgarden/internal/foundation/errors"
	"git.home.luguber.info/inful/docgarden/internal/layout"
	"git.home.luguber.info/inful/docgarden/internal/load"
	"git.home.luguber.info/inful/docgarden/internal/logfields"
	"git.home.luguber.info/inful/docgarden/internal/metrics"
	"git.home.luguber.info/inful/docgarden/internal/progress"
	"git.home.luguber.info/inful/docgarden/internal/transform"
)

// WriterFactory creates the artifact writer for an output directory.
type WriterFactory func(outputDir string) emit.Writer

// DefaultBuildService is the standard implementation of BuildService.
type DefaultBuildService struct {
	// Optional dependencies that can be injected
	writerFactory WriterFactory
	recorder      metrics.Recorder
	progress      *progress.Indicator
}

// NewBuildService creates a DefaultBuildService writing to the filesystem.
func NewBuildService() *DefaultBuildService {
	return &DefaultBuildService{
		writerFactory: func(dir string) emit.Writer { return emit.NewFSWriter(dir) },
		recorder:      metrics.NoopRecorder{},
	}
}

// WithWriterFactory allows injecting a custom artifact writer (for testing).
func (s *DefaultBuildService) WithWriterFactory(factory WriterFactory) *DefaultBuildService {
	s.writerFactory = factory
	return s
}

// WithRecorder sets the metrics recorder.
func (s *DefaultBuildService) WithRecorder(r metrics.Recorder) *DefaultBuildService {
	if r == nil {
		r = metrics.NoopRecorder{}
	}
	s.recorder = r
	return s
}

// WithProgress shows phase progress on p. Verbose runs usually pass nil.
func (s *DefaultBuildService) WithProgress(p *progress.Indicator) *DefaultBuildService {
	s.progress = p
	return s
}

// Run executes the complete pipeline.
func (s *DefaultBuildService) Run(ctx context.Context, req BuildRequest) (*BuildResult, error) {
	result := &BuildResult{StartTime: time.Now(), Artifacts: map[string]int{}}
	bctx, report, err := s.prepare(ctx, req, result)
	if err != nil {
		return result, err
	}

	// Stage 3: emit
	emitted, emitErr := s.emit(ctx, bctx, result.Corpus)
	if emitted != nil {
		result.Artifacts = emitted.Artifacts
		result.Written = emitted.Written
	}

	status := BuildStatusSuccess
	switch {
	case emitErr != nil:
		status = statusFor(ctx, BuildStatusFailed)
	case report.HasIssues():
		status = BuildStatusWarning
	}
	s.finish(result, status)

	bctx.Log().Info("Build finished",
		slog.String("status", string(result.Status)),
		logfields.Count(len(result.Written)),
		slog.Int("documents", result.Documents),
		slog.Int("stage_failures", len(report.Issues)),
		logfields.DurationMS(float64(result.Duration.Microseconds())/1000))

	if emitErr != nil {
		return result, fmt.Errorf("%w: %w", ErrEmit, emitErr)
	}
	return result, nil
}

// Collect loads and transforms the corpus without emitting anything.
func (s *DefaultBuildService) Collect(ctx context.Context, req BuildRequest) (*BuildResult, error) {
	result := &BuildResult{StartTime: time.Now(), Artifacts: map[string]int{}}
	_, report, err := s.prepare(ctx, req, result)
	if err != nil {
		return result, err
	}
	status := BuildStatusSuccess
	if report.HasIssues() {
		status = BuildStatusWarning
	}
	s.finish(result, status)
	return result, nil
}

// prepare runs load and transform. On error the result is already finished.
func (s *DefaultBuildService) prepare(ctx context.Context, req BuildRequest, result *BuildResult) (*buildctx.Context, *transform.Report, error) {
	if req.Config == nil {
		s.finish(result, BuildStatusFailed)
		return nil, nil, derrors.ConfigError("config required").Build()
	}

	bctx := buildctx.New(req.Config, req.Options, req.Logger, s.recorder)
	result.RunID = bctx.RunID.String()
	result.OutputPath = bctx.OutputPath()
	bctx.Log().Info("Build started",
		slog.String("content", bctx.ContentPath()),
		slog.String("output", result.OutputPath))

	// Stage 1: load
	corpus, err := s.load(ctx, bctx)
	if err != nil {
		s.finish(result, statusFor(ctx, BuildStatusFailed))
		return nil, nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	result.Corpus = corpus
	result.Documents = corpus.Len()
	s.recorder.SetDocuments(corpus.Len())
	bctx = bctx.WithCorpus(corpus)

	// Stage 2: transform, a barrier before any emitter runs
	report, err := s.transform(ctx, bctx, corpus)
	result.Transform = report
	if err != nil {
		s.finish(result, statusFor(ctx, BuildStatusFailed))
		return nil, nil, fmt.Errorf("%w: %w", ErrTransform, err)
	}
	return bctx, report, nil
}

func (s *DefaultBuildService) load(ctx context.Context, bctx *buildctx.Context) (*content.Corpus, error) {
	s.progress.Start("load", 0)
	defer s.progress.Finish()
	loader := &load.Loader{
		WorkDir:    bctx.Options.WorkDir,
		ContentDir: bctx.Options.ContentDir,
		Logger:     bctx.Log(),
	}
	return loader.Load(ctx)
}

func (s *DefaultBuildService) transform(ctx context.Context, bctx *buildctx.Context, corpus *content.Corpus) (*transform.Report, error) {
	stages, err := transform.DefaultStages(bctx.Config)
	if err != nil {
		return nil, derrors.ConfigError("invalid transform configuration").WithCause(err).Build()
	}
	s.progress.Start("transform", corpus.Len())
	defer s.progress.Finish()

	runner := transform.NewRunner(bctx.Config.Build.Concurrency, stages...).
		OnDocument(func(*content.Document) { s.progress.Step() })
	report, err := runner.Run(ctx, bctx, corpus.Documents())
	if err != nil {
		return report, err
	}
	bctx.Log().Debug("Transform complete", slog.String("summary", report.Summary()))
	return report, nil
}

func (s *DefaultBuildService) emit(ctx context.Context, bctx *buildctx.Context, corpus *content.Corpus) (*emit.Result, error) {
	emitters := emit.DefaultEmitters(layout.Defaults(bctx.Config))
	s.progress.Start("emit", 0)
	defer s.progress.Finish()

	runner := emit.NewRunner(&steppingWriter{next: s.writerFactory(bctx.OutputPath()), p: s.progress}, emitters...)
	return runner.Run(ctx, bctx, corpus)
}

func (s *DefaultBuildService) finish(result *BuildResult, status BuildStatus) {
	result.Status = status
	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(result.StartTime)
	s.recorder.ObserveBuildDuration(result.Duration)
	s.recorder.IncBuildOutcome(outcomeFor(status))
}

func statusFor(ctx context.Context, fallback BuildStatus) BuildStatus {
	if errors.Is(ctx.Err(), context.Canceled) {
		return BuildStatusCancelled
	}
	return fallback
}

func outcomeFor(status BuildStatus) metrics.BuildOutcomeLabel {
	switch status {
	case BuildStatusSuccess:
		return metrics.BuildOutcomeSuccess
	case BuildStatusWarning:
		return metrics.BuildOutcomeWarning
	default:
		return metrics.BuildOutcomeFailed
	}
}

// steppingWriter advances the progress indicator once per written artifact.
type steppingWriter struct {
	next emit.Writer
	p    *progress.Indicator
}

func (w *steppingWriter) Write(ctx context.Context, a emit.Artifact) (string, error) {
	path, err := w.next.Write(ctx, a)
	if err == nil {
		w.p.Step()
	}
	return path, err
}
