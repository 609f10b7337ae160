package config

import (
	"slices"

	"git.home.luguber.info/inful/docgarden/internal/foundation/normalization"
)

var sourceNames = normalization.New("date source", map[string]string{
	SourceFrontmatter: SourceFrontmatter,
	SourceGit:         SourceGit,
	SourceFilesystem:  SourceFilesystem,
})

// DefaultApplier applies defaults for a specific configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *Config) error
	Domain() string
}

// SiteDefaultApplier handles Site configuration defaults.
type SiteDefaultApplier struct{}

func (SiteDefaultApplier) Domain() string { return "site" }

func (SiteDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Site.Title == "" {
		cfg.Site.Title = "Digital Garden"
	}
	if cfg.Site.Locale == "" {
		cfg.Site.Locale = "en-US"
	}
	return nil
}

// BuildDefaultApplier handles Build configuration defaults.
type BuildDefaultApplier struct{}

func (BuildDefaultApplier) Domain() string { return "build" }

func (BuildDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Build.ContentDir == "" {
		cfg.Build.ContentDir = "content"
	}
	if cfg.Build.OutputDir == "" {
		cfg.Build.OutputDir = "public"
	}
	if cfg.Build.Concurrency < 0 {
		cfg.Build.Concurrency = 0
	}
	return nil
}

// DatesDefaultApplier handles date resolution defaults.
type DatesDefaultApplier struct{}

func (DatesDefaultApplier) Domain() string { return "dates" }

func (DatesDefaultApplier) ApplyDefaults(cfg *Config) error {
	if len(cfg.Dates.Priority) == 0 {
		cfg.Dates.Priority = []string{SourceFrontmatter, SourceGit, SourceFilesystem}
	}
	for i, name := range cfg.Dates.Priority {
		cfg.Dates.Priority[i], _ = sourceNames.Canonical(name)
	}
	if cfg.Dates.ContentRepository == "" {
		cfg.Dates.ContentRepository = cfg.Build.ContentDir
	}
	return nil
}

// TimelineDefaultApplier handles timeline defaults.
type TimelineDefaultApplier struct{}

func (TimelineDefaultApplier) Domain() string { return "timeline" }

func (TimelineDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Timeline.Limit == 0 {
		cfg.Timeline.Limit = 100
	}
	slices.Sort(cfg.Timeline.DisallowedTags)
	cfg.Timeline.DisallowedTags = slices.Compact(cfg.Timeline.DisallowedTags)
	return nil
}

// appliers run in order; dates must follow build because it reads ContentDir.
var appliers = []DefaultApplier{
	SiteDefaultApplier{},
	BuildDefaultApplier{},
	DatesDefaultApplier{},
	TimelineDefaultApplier{},
}

// ApplyDefaults runs every domain applier in order.
func ApplyDefaults(cfg *Config) error {
	for _, a := range appliers {
		if err := a.ApplyDefaults(cfg); err != nil {
			return err
		}
	}
	return nil
}
