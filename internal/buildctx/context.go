// Package buildctx holds the read-only state shared by every stage and
// emitter of one pipeline run.
package buildctx

import (
	"log/slog"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/docgarden/internal/config"
	"git.home.luguber.info/inful/docgarden/internal/content"
	"git.home.luguber.info/inful/docgarden/internal/git"
	"git.home.luguber.info/inful/docgarden/internal/logfields"
	"git.home.luguber.info/inful/docgarden/internal/metrics"
	"github.com/google/uuid"
)

// Options are the CLI-equivalent settings of a run.
type Options struct {
	Verbose bool
	// WorkDir is the directory document file paths are relative to.
	WorkDir string
	// ContentDir and OutputDir are relative to WorkDir unless absolute.
	ContentDir string
	OutputDir  string
}

// Context is created once at run start and discarded at run end.
// Nothing in it is mutated after the corpus is attached.
type Context struct {
	RunID     uuid.UUID
	StartedAt time.Time
	Options   Options
	Config    *config.Config
	Corpus    *content.Corpus
	Repos     *git.Repositories
	Logger    *slog.Logger
	Recorder  metrics.Recorder
}

// New creates the context of a run. Repository handles are created but not opened.
func New(cfg *config.Config, opts Options, logger *slog.Logger, rec metrics.Recorder) *Context {
	if cfg == nil {
		cfg = config.Default()
	}
	if opts.WorkDir == "" {
		opts.WorkDir = "."
	}
	if opts.ContentDir == "" {
		opts.ContentDir = cfg.Build.ContentDir
	}
	if opts.OutputDir == "" {
		opts.OutputDir = cfg.Build.OutputDir
	}
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	id := uuid.New()
	if logger == nil {
		logger = slog.Default()
	}
	return &Context{
		RunID:     id,
		StartedAt: time.Now(),
		Options:   opts,
		Config:    cfg,
		Repos:     git.NewRepositories(opts.WorkDir, cfg.Dates.ContentRepository),
		Logger:    logger.With(logfields.RunID(id.String())),
		Recorder:  rec,
	}
}

// WithCorpus returns a copy of c holding corpus.
func (c *Context) WithCorpus(corpus *content.Corpus) *Context {
	cp := *c
	cp.Corpus = corpus
	return &cp
}

// Log returns the run logger, falling back to the default logger.
func (c *Context) Log() *slog.Logger {
	if c == nil || c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

// Metrics returns the run recorder, falling back to a no-op recorder.
func (c *Context) Metrics() metrics.Recorder {
	if c == nil || c.Recorder == nil {
		return metrics.NoopRecorder{}
	}
	return c.Recorder
}

// Path resolves p against the working directory.
func (c *Context) Path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Options.WorkDir, p)
}

// ContentPath returns the absolute-or-workdir-relative content directory.
func (c *Context) ContentPath() string { return c.Path(c.Options.ContentDir) }

// OutputPath returns the absolute-or-workdir-relative output directory.
func (c *Context) OutputPath() string { return c.Path(c.Options.OutputDir) }
