package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/docgarden/internal/build"
	"git.home.luguber.info/inful/docgarden/internal/buildctx"
	"git.home.luguber.info/inful/docgarden/internal/component"
	"git.home.luguber.info/inful/docgarden/internal/config"
	"git.home.luguber.info/inful/docgarden/internal/dates"
	"git.home.luguber.info/inful/docgarden/internal/timeline"
)

// TimelineCmd implements the 'timeline' command.
type TimelineCmd struct {
	Content string `help:"Content directory (overrides build.content_dir)"`
	Recent  bool   `help:"Show created events only, like the recent notes page"`
	Limit   int    `help:"Maximum number of events (default: timeline.limit)"`
}

func (c *TimelineCmd) Run(ctx context.Context, g *Global, root *CLI) error {
	cfg, err := loadConfig(root.Config)
	if err != nil {
		return err
	}
	return RunTimeline(ctx, cfg, TimelineOptions{
		ContentDir: c.Content,
		Recent:     c.Recent,
		Limit:      c.Limit,
	}, logger(g), os.Stdout)
}

// TimelineOptions select the content directory and the view to print.
type TimelineOptions struct {
	WorkDir    string
	ContentDir string
	Recent     bool
	Limit      int
}

// RunTimeline loads and transforms the corpus and prints one line per event.
func RunTimeline(ctx context.Context, cfg *config.Config, opts TimelineOptions, log *slog.Logger, out io.Writer) error {
	workDir := opts.WorkDir
	if workDir == "" {
		workDir = "."
	}
	result, err := build.NewBuildService().Collect(ctx, build.BuildRequest{
		Config:  cfg,
		Options: buildctx.Options{WorkDir: workDir, ContentDir: opts.ContentDir},
		Logger:  log,
	})
	if err != nil {
		return err
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = cfg.Timeline.Limit
	}
	events := timeline.Collect(result.Corpus, timeline.Options{
		CreatedOnly:     opts.Recent,
		Compact:         !opts.Recent,
		DisallowedSlugs: cfg.Timeline.DisallowedSlugs,
		DisallowedTags:  cfg.Timeline.DisallowedTags,
		Limit:           limit,
	})
	for _, e := range events {
		_, _ = fmt.Fprintf(out, "%s\t%s\t%s\t%s\n",
			e.Timestamp.Format(dates.CompactLayout), component.KindLabel(e.Kind), e.Slug, e.Title)
	}
	return nil
}
