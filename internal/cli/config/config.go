// Package config loads sql2lineage configuration from defaults, an
// optional YAML file, environment variables, and CLI flags.
package config

import (
	"context"
	"log/slog"

	"github.com/leapstack-labs/sql2lineage/internal/extractor"
	"github.com/leapstack-labs/sql2lineage/internal/output"
)

// Config holds all CLI configuration options.
type Config struct {
	Database       string           `koanf:"database"`
	Cluster        string           `koanf:"cluster"`
	Schema         string           `koanf:"schema"`
	SourceDatabase string           `koanf:"source_database"`
	SourceCluster  string           `koanf:"source_cluster"`
	Dialect        string           `koanf:"dialect"`
	Format         string           `koanf:"format"`
	Verbose        bool             `koanf:"verbose"`
	Extractor      extractor.Config `koanf:"extractor"`
}

// Default configuration values.
const (
	DefaultFormat        = output.FormatCSV
	DefaultExtractorMode = extractor.ModeEmbedded
)

// loggerKey is used to store the run logger in context.
type loggerKey struct{}

// LoggerKey returns the context key used for storing the logger, shared
// between config loading and command execution.
func LoggerKey() interface{} {
	return loggerKey{}
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	// Return discard logger as safe fallback
	return slog.New(slog.DiscardHandler)
}
