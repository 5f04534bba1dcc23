// Package config provides configuration management for the LaTeX
// maintenance tools.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config represents the application configuration.
type Config struct {
	Discovery    DiscoveryConfig `yaml:"discovery"`
	Acronyms     CommandsConfig  `yaml:"acronyms"`
	Bibliography CommandsConfig  `yaml:"bibliography"`
	Sort         SortConfig      `yaml:"sort"`
	URLCheck     URLCheckConfig  `yaml:"url_check"`
	BackupSuffix string          `yaml:"backup_suffix"`
}

// DiscoveryConfig controls how LaTeX source files are found.
type DiscoveryConfig struct {
	Extensions []string `yaml:"extensions"`
	SkipDirs   []string `yaml:"skip_dirs"`
	Gitignore  bool     `yaml:"gitignore"`
}

// CommandsConfig lists reference commands recognized in addition to the
// built-in set of a tool.
type CommandsConfig struct {
	ExtraCommands []string `yaml:"extra_commands"`
}

// SortConfig controls entry reordering.
type SortConfig struct {
	// Comments is "travel" (comment block above an entry moves with it)
	// or "fixed" (comment lines keep their position).
	Comments string `yaml:"comments"`
}

// URLCheckConfig controls bibliography URL verification.
type URLCheckConfig struct {
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	UserAgent      string `yaml:"user_agent"`
	CachePath      string `yaml:"cache_path"`
	CacheTTLHours  int    `yaml:"cache_ttl_hours"`
}

// Timeout returns the URL check timeout as a duration.
func (u URLCheckConfig) Timeout() time.Duration {
	return time.Duration(u.TimeoutSeconds) * time.Second
}

// CacheTTL returns the lifetime of a cached URL check result.
func (u URLCheckConfig) CacheTTL() time.Duration {
	return time.Duration(u.CacheTTLHours) * time.Hour
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	switch c.Sort.Comments {
	case "", "travel", "fixed":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidSortComments, c.Sort.Comments)
	}

	if c.URLCheck.TimeoutSeconds < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTimeout, c.URLCheck.TimeoutSeconds)
	}

	if c.URLCheck.CacheTTLHours < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCacheTTL, c.URLCheck.CacheTTLHours)
	}

	if c.BackupSuffix == "" {
		return ErrBackupSuffixEmpty
	}

	if len(c.Discovery.Extensions) == 0 {
		return ErrNoExtensions
	}

	return nil
}

// expandTildes expands tildes in configuration paths.
func (c *Config) expandTildes() error {
	expanded, err := expandTilde(c.URLCheck.CachePath)
	if err != nil {
		return err
	}
	c.URLCheck.CachePath = expanded
	return nil
}

func expandTilde(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
