package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file name used when --config is not given.
const DefaultFile = "docgarden.yaml"

// Date source names accepted in dates.priority.
const (
	SourceFrontmatter = "frontmatter"
	SourceGit         = "git"
	SourceFilesystem  = "filesystem"
)

// Config represents the application configuration.
type Config struct {
	Site       SiteConfig       `yaml:"site"`
	Build      BuildConfig      `yaml:"build"`
	Dates      DatesConfig      `yaml:"dates"`
	Timeline   TimelineConfig   `yaml:"timeline"`
	Transclude TranscludeConfig `yaml:"transclude"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// SiteConfig holds page-level presentation settings.
type SiteConfig struct {
	Title       string            `yaml:"title"`
	BaseURL     string            `yaml:"base_url,omitempty"`
	Locale      string            `yaml:"locale"`
	FooterLinks map[string]string `yaml:"footer_links,omitempty"`
}

// BuildConfig holds input/output locations and the transform fan-out.
type BuildConfig struct {
	ContentDir string `yaml:"content_dir"`
	OutputDir  string `yaml:"output_dir"`
	// Concurrency bounds the number of documents transformed at once; 0 means NumCPU.
	Concurrency int `yaml:"concurrency,omitempty"`
}

// DatesConfig configures the date resolver.
type DatesConfig struct {
	Priority []string `yaml:"priority"`
	// ContentRepository is the sub-tree (relative to the working directory)
	// that is its own git repository, e.g. a content submodule.
	ContentRepository string `yaml:"content_repository"`
}

// TimelineConfig configures the timeline and recent pages.
type TimelineConfig struct {
	Limit           int      `yaml:"limit"`
	DisallowedSlugs []string `yaml:"disallowed_slugs,omitempty"`
	DisallowedTags  []string `yaml:"disallowed_tags,omitempty"`
}

// TranscludeConfig configures block transclusion lookups.
type TranscludeConfig struct {
	CommonDirectories []string `yaml:"common_directories,omitempty"`
}

// MetricsConfig configures the optional Prometheus textfile export.
type MetricsConfig struct {
	Textfile string `yaml:"textfile,omitempty"`
}

// Load loads configuration from the specified file, expanding ${ENV}
// references, applying defaults and validating the result.
// A missing file at the default location yields the default configuration.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Debug("Could not load .env file", "error", err)
	}

	cfg := &Config{}
	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist) && configPath == DefaultFile:
		slog.Debug("No configuration file found, using defaults", "path", configPath)
	case errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := ApplyDefaults(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	_ = ApplyDefaults(cfg)
	return cfg
}

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	example := Default()
	example.Site.Title = "My Digital Garden"
	example.Site.BaseURL = "https://garden.example.com"
	example.Site.FooterLinks = map[string]string{"Home": "https://garden.example.com"}
	example.Timeline.DisallowedTags = []string{"draft", "private"}
	example.Transclude.CommonDirectories = []string{"templates", "daily"}

	data, err := yaml.Marshal(example)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
