// Package config provides configuration loading and management for pmplan.
//
// Configuration is loaded using Viper, supporting YAML config files and environment
// variable overrides. The defaults work without any configuration file.
//
// Key types:
//   - [Config] is the root configuration container with all settings
//   - [Loader] handles Viper-based configuration loading
//   - [RankingConfig] controls how the prioritization board orders stories
//   - [OutputConfig] controls terminal and machine-readable output
//
// Configuration priority (highest to lowest):
//  1. Environment variables (PMPLAN_ prefix, e.g. PMPLAN_RANKING_DEFAULT_SORT)
//  2. Config file specified by PMPLAN_CONFIG_PATH
//  3. User config directory (platform-standard):
//     - Linux: ~/.config/pmplan/config.yaml
//     - macOS: ~/Library/Application Support/pmplan/config.yaml
//     - Windows: %APPDATA%\pmplan\config.yaml
//  4. ./config/pmplan.yaml
//  5. ./pmplan.yaml
//  6. [DefaultConfig] defaults
package config

import (
	"fmt"

	"pmplan/internal/impact"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Config represents the root configuration structure.
type Config struct {
	// Backlog locates the backlog file.
	Backlog BacklogConfig `mapstructure:"backlog"`

	// Ranking controls prioritization board defaults.
	Ranking RankingConfig `mapstructure:"ranking"`

	// Output contains output formatting configuration.
	Output OutputConfig `mapstructure:"output"`

	// Log contains logger configuration.
	Log LogConfig `mapstructure:"log"`
}

// BacklogConfig locates the backlog file.
type BacklogConfig struct {
	// Path is an explicit backlog file path. Empty means auto-discovery
	// (see the store package). PMPLAN_BACKLOG_PATH overrides it.
	Path string `mapstructure:"path"`
}

// RankingConfig controls how stories are ordered by default.
type RankingConfig struct {
	// DefaultSort is the sort key used when none is given on the command line.
	// One of impact, priority, status, recent, oldest, title.
	// Default: "impact"
	DefaultSort string `mapstructure:"default_sort"`

	// Top limits ranked output to the first N stories. 0 shows all.
	Top int `mapstructure:"top"`

	// UseGoals enables goal weighting. When false the scorer is given no
	// goals, which deactivates goal weighting for every story.
	// Default: true
	UseGoals bool `mapstructure:"use_goals"`
}

// OutputConfig contains output formatting configuration.
type OutputConfig struct {
	// Format is "table" for styled terminal output or "json".
	// Default: "table"
	Format string `mapstructure:"format"`

	// TruncateLength is the maximum title width in tables.
	// Longer titles are truncated with "..." suffix.
	// Default: 48
	TruncateLength int `mapstructure:"truncate_length"`
}

// LogConfig contains logger configuration.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	// Default: "info"
	Level string `mapstructure:"level"`
}

// DefaultConfig returns a new [Config] with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Ranking: RankingConfig{
			DefaultSort: string(impact.SortImpact),
			Top:         0,
			UseGoals:    true,
		},
		Output: OutputConfig{
			Format:         FormatTable,
			TruncateLength: 48,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks values that cannot be checked by type alone.
func (c *Config) Validate() error {
	if _, err := impact.ParseSortKey(c.Ranking.DefaultSort); err != nil {
		return fmt.Errorf("invalid ranking.default_sort: %w", err)
	}
	if c.Ranking.Top < 0 {
		return fmt.Errorf("invalid ranking.top: %d (must be >= 0)", c.Ranking.Top)
	}
	switch c.Output.Format {
	case FormatTable, FormatJSON:
	default:
		return fmt.Errorf("invalid output.format: %q (want %s or %s)", c.Output.Format, FormatTable, FormatJSON)
	}
	return nil
}
