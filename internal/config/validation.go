package config

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"golang.org/x/text/language"
)

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Site.Validate(); err != nil {
		return fmt.Errorf("site: %w", err)
	}
	if err := c.Build.Validate(); err != nil {
		return fmt.Errorf("build: %w", err)
	}
	if err := c.Dates.Validate(); err != nil {
		return fmt.Errorf("dates: %w", err)
	}
	if err := c.Timeline.Validate(); err != nil {
		return fmt.Errorf("timeline: %w", err)
	}
	return nil
}

// Validate validates the site configuration.
func (c *SiteConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Title, validation.Required),
		validation.Field(&c.Locale, validation.Required, validation.By(isLanguageTag)),
	)
}

// Validate validates the build configuration.
func (c *BuildConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.ContentDir, validation.Required),
		validation.Field(&c.OutputDir, validation.Required),
		validation.Field(&c.Concurrency, validation.Min(0)),
	)
}

// Validate validates the date resolver configuration.
func (c *DatesConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Priority,
			validation.Required,
			validation.Each(validation.In(SourceFrontmatter, SourceGit, SourceFilesystem)),
		),
	); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(c.Priority))
	for _, p := range c.Priority {
		if _, dup := seen[p]; dup {
			return fmt.Errorf("priority: source %q listed more than once", p)
		}
		seen[p] = struct{}{}
	}
	return nil
}

// Validate validates the timeline configuration.
func (c *TimelineConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Limit, validation.Required, validation.Min(1)),
	)
}

// Language returns the parsed site locale, falling back to English.
func (c *SiteConfig) Language() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

func isLanguageTag(value any) error {
	s, _ := value.(string)
	if _, err := language.Parse(s); err != nil {
		return errors.New("must be a valid BCP 47 language tag")
	}
	return nil
}
