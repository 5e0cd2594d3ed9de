package config

import (
	"context"
	"fmt"
	"os"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"
)

// StructDefaultSource resets the config to Defaults.
type StructDefaultSource struct{}

func (s *StructDefaultSource) Load(ctx context.Context, cfg *Config) error {
	*cfg = *Defaults()
	return nil
}

func (s *StructDefaultSource) Priority() int {
	return 100 // Lowest priority
}

func (s *StructDefaultSource) Name() string {
	return "struct-defaults"
}

// YAMLFileSource overlays keys present in a YAML file. A missing file is not
// an error.
type YAMLFileSource struct {
	Path string
}

func (s *YAMLFileSource) Load(ctx context.Context, cfg *Config) error {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read yaml file: %w", err)
	}

	// Decoding into the populated struct only touches keys the file sets.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("unmarshal yaml: %w", err)
	}
	return nil
}

func (s *YAMLFileSource) Priority() int {
	return 200
}

func (s *YAMLFileSource) Name() string {
	return "yaml-file:" + s.Path
}

// EnvVarSource applies environment variables named by the env struct tags.
// Unset variables leave the field untouched.
type EnvVarSource struct {
	// Environment overrides the process environment, mainly for tests.
	Environment map[string]string
}

func (s *EnvVarSource) Load(ctx context.Context, cfg *Config) error {
	opts := env.Options{}
	if s.Environment != nil {
		opts.Environment = s.Environment
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("parse env config: %w", err)
	}
	return nil
}

func (s *EnvVarSource) Priority() int {
	return 500
}

func (s *EnvVarSource) Name() string {
	return "env-vars"
}
