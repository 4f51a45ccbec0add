package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvOption adjusts how ParseEnv reads the environment.
type EnvOption func(*env.Options)

// WithPrefix requires every variable name to start with prefix.
func WithPrefix(prefix string) EnvOption {
	return func(o *env.Options) {
		o.Prefix = prefix
	}
}

// WithEnvironment reads from vars instead of the process environment.
func WithEnvironment(vars map[string]string) EnvOption {
	return func(o *env.Options) {
		o.Environment = vars
	}
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any, opts ...EnvOption) error {
	var options env.Options
	for _, opt := range opts {
		opt(&options)
	}
	if err := env.ParseWithOptions(target, options); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
