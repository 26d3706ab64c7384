// Package extractor provides the lineage extraction collaborators that
// back the lineage.Extractor interface: an in-process extractor built on
// the LeapSQL lineage library, an HTTP client for a remote extraction
// service, and a subprocess wrapper for external extractor executables.
package extractor

import (
	"errors"
	"fmt"
	"time"

	"github.com/leapstack-labs/sql2lineage/internal/lineage"
)

// Extractor modes selectable via configuration.
const (
	ModeEmbedded = "embedded"
	ModeRemote   = "remote"
	ModeCommand  = "command"
)

// DefaultTimeoutSeconds bounds a single remote extraction call.
const DefaultTimeoutSeconds = 30

// Config selects and parameterizes the extractor implementation.
type Config struct {
	Mode           string   `koanf:"mode"`
	Endpoint       string   `koanf:"endpoint"`
	Command        string   `koanf:"command"`
	Args           []string `koanf:"args"`
	TimeoutSeconds int      `koanf:"timeout_seconds"`
}

// New builds the extractor described by the config. An empty mode
// selects the embedded extractor.
func New(cfg Config) (lineage.Extractor, error) {
	switch cfg.Mode {
	case "", ModeEmbedded:
		return NewEmbedded(), nil

	case ModeRemote:
		if cfg.Endpoint == "" {
			return nil, errors.New("extractor.endpoint is required for the remote extractor")
		}
		timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
		if cfg.TimeoutSeconds <= 0 {
			timeout = DefaultTimeoutSeconds * time.Second
		}
		return NewRemote(cfg.Endpoint, timeout), nil

	case ModeCommand:
		if cfg.Command == "" {
			return nil, errors.New("extractor.command is required for the command extractor")
		}
		return NewCommand(cfg.Command, cfg.Args...), nil

	default:
		return nil, fmt.Errorf("unknown extractor mode %q (expected %s, %s, or %s)",
			cfg.Mode, ModeEmbedded, ModeRemote, ModeCommand)
	}
}
