// Package commands implements the docgarden CLI commands.
package commands

import (
	"log/slog"
	"os"

	"git.home.luguber.info/inful/docgarden/internal/config"
	derrors "git.home.luguber.info/inful/docgarden/internal/foundation/errors"
	"github.com/alecthomas/kong"
)

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"docgarden.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build    BuildCmd    `cmd:"" help:"Build the site from the content directory"`
	Init     InitCmd     `cmd:"" help:"Initialize a new configuration file"`
	Timeline TimelineCmd `cmd:"" help:"Print the timeline events derived from the content directory"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, derrors.WrapError(err, derrors.CategoryConfig, "failed to load configuration").
			Fatal().
			WithContext("path", path).
			Build()
	}
	return cfg, nil
}

func logger(g *Global) *slog.Logger {
	if g == nil || g.Logger == nil {
		return slog.Default()
	}
	return g.Logger
}
