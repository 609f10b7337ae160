package transform

import (
	"fmt"

	"git.home.luguber.info/inful/docgarden/internal/config"
	"git.home.luguber.info/inful/docgarden/internal/dates"
)

// DefaultStages returns the built-in stages in execution order:
// frontmatter, dates, transclude, strip-heading, fingerprint.
func DefaultStages(cfg *config.Config) ([]Stage, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	priority, err := dates.ParseSources(cfg.Dates.Priority)
	if err != nil {
		return nil, fmt.Errorf("date priority: %w", err)
	}
	return []Stage{
		&FrontmatterStage{},
		&DatesStage{Resolver: dates.NewResolver(), Priority: priority},
		&TranscludeStage{CommonDirectories: cfg.Transclude.CommonDirectories},
		&StripHeadingStage{},
		&FingerprintStage{},
	}, nil
}
