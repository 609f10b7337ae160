package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"git.home.luguber.info/inful/docgarden/internal/build"
	"git.home.luguber.info/inful/docgarden/internal/buildctx"
	"git.home.luguber.info/inful/docgarden/internal/config"
	"git.home.luguber.info/inful/docgarden/internal/logfields"
	"git.home.luguber.info/inful/docgarden/internal/metrics"
	"git.home.luguber.info/inful/docgarden/internal/progress"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Content     string `help:"Content directory (overrides build.content_dir)"`
	Output      string `short:"o" help:"Output directory (overrides build.output_dir)"`
	MetricsFile string `name:"metrics-file" help:"Write Prometheus metrics in textfile format to this path (overrides metrics.textfile)"`
}

func (b *BuildCmd) Run(ctx context.Context, g *Global, root *CLI) error {
	cfg, err := loadConfig(root.Config)
	if err != nil {
		return err
	}
	return RunBuild(ctx, cfg, BuildOptions{
		ContentDir:  b.Content,
		OutputDir:   b.Output,
		MetricsFile: b.MetricsFile,
		Verbose:     root.Verbose,
	}, logger(g), os.Stdout, os.Stderr)
}

// BuildOptions are the command-line overrides of a build.
type BuildOptions struct {
	WorkDir     string
	ContentDir  string
	OutputDir   string
	MetricsFile string
	Verbose     bool
}

// RunBuild runs one build. User-facing messages go to out; the progress
// indicator of non-verbose runs goes to status.
func RunBuild(ctx context.Context, cfg *config.Config, opts BuildOptions, log *slog.Logger, out, status io.Writer) error {
	rec := metrics.NewPrometheusRecorder(nil)
	svc := build.NewBuildService().WithRecorder(rec)
	if !opts.Verbose && status != nil {
		svc.WithProgress(progress.New(status))
	}
	workDir := opts.WorkDir
	if workDir == "" {
		workDir = "."
	}

	result, err := svc.Run(ctx, build.BuildRequest{
		Config: cfg,
		Options: buildctx.Options{
			Verbose:    opts.Verbose,
			WorkDir:    workDir,
			ContentDir: opts.ContentDir,
			OutputDir:  opts.OutputDir,
		},
		Logger: log,
	})

	metricsFile := opts.MetricsFile
	if metricsFile == "" {
		metricsFile = cfg.Metrics.Textfile
	}
	if metricsFile != "" {
		if werr := rec.WriteTextfile(metricsFile); werr != nil {
			log.Warn("Failed to write metrics textfile", logfields.Path(metricsFile), logfields.Error(werr))
		}
	}
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "Built %d documents into %s (%d files, %s)\n",
		result.Documents, result.OutputPath, len(result.Written), result.Duration.Round(time.Millisecond))
	if result.Status == build.BuildStatusWarning {
		_, _ = fmt.Fprintf(out, "%d transform stage failures; see the log for details\n", len(result.Transform.Issues))
	}
	return nil
}
