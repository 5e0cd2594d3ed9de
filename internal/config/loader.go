package config

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// DefaultFileEnv names the environment variable that points at the YAML
// configuration file.
const DefaultFileEnv = "HOTEL_CONFIG_FILE"

// DefaultFilePath is used when DefaultFileEnv is unset.
const DefaultFilePath = "config/hotel-client.yaml"

// Source applies one layer of configuration on top of what lower layers set.
type Source interface {
	// Load applies configuration from this source to the config
	Load(ctx context.Context, cfg *Config) error

	// Priority returns the precedence priority (higher = takes precedence)
	// 100 = Struct defaults (lowest)
	// 200 = YAML file
	// 500 = Environment variables
	Priority() int

	// Name returns the human-readable name of this source
	Name() string
}

// Loader loads configuration from multiple sources with explicit precedence.
type Loader struct {
	sources []Source
	applied []string
}

// LoaderOption configures the Loader.
type LoaderOption func(*Loader)

// WithSources replaces the default source stack.
func WithSources(sources ...Source) LoaderOption {
	return func(l *Loader) {
		l.sources = sources
	}
}

// NewLoader builds a loader with the default source stack: struct defaults,
// the YAML file named by HOTEL_CONFIG_FILE, then environment variables.
func NewLoader(opts ...LoaderOption) *Loader {
	path := strings.TrimSpace(os.Getenv(DefaultFileEnv))
	if path == "" {
		path = DefaultFilePath
	}
	l := &Loader{
		sources: []Source{
			&StructDefaultSource{},
			&YAMLFileSource{Path: path},
			&EnvVarSource{},
		},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load executes the configuration loading process.
func (l *Loader) Load(ctx context.Context) (*Config, error) {
	cfg := &Config{}
	l.applied = l.applied[:0]
	for _, source := range l.sources {
		if err := source.Load(ctx, cfg); err != nil {
			return nil, fmt.Errorf("load from %s: %w", source.Name(), err)
		}
		l.applied = append(l.applied, fmt.Sprintf("[%d] %s", source.Priority(), source.Name()))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return cfg, nil
}

// Provenance lists the sources applied by the last Load, lowest priority first.
func (l *Loader) Provenance() []string {
	out := make([]string, len(l.applied))
	copy(out, l.applied)
	return out
}

// Load parses configuration with the default source stack.
func Load(ctx context.Context) (*Config, error) {
	return NewLoader().Load(ctx)
}
