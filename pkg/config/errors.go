package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigNotFound  = errors.New("config file not found")
	ErrConfigFileParse = errors.New("failed to parse config file")

	// Configuration validation errors.
	ErrInvalidSortComments = errors.New("sort.comments must be \"travel\" or \"fixed\"")
	ErrInvalidTimeout      = errors.New("url_check.timeout_seconds cannot be negative")
	ErrInvalidCacheTTL     = errors.New("url_check.cache_ttl_hours cannot be negative")
	ErrBackupSuffixEmpty   = errors.New("backup_suffix cannot be empty")
	ErrNoExtensions        = errors.New("discovery.extensions cannot be empty")
)
