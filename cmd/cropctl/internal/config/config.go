package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/Justineneema/cropctl/cmd/cropctl/internal/client"
)

type contextKey string

const configKey contextKey = "cropctl-config"

// Env is the environment-sourced configuration. Flags take precedence over
// these values; see the root command.
type Env struct {
	ServerURL      string        `env:"CROPCTL_SERVER"`
	NonInteractive bool          `env:"CROPCTL_NON_INTERACTIVE"`
	Timeout        time.Duration `env:"CROPCTL_TIMEOUT" envDefault:"30s"`
}

// FromEnv parses configuration from process environment variables.
func FromEnv() (Env, error) {
	return env.ParseAs[Env]()
}

// GlobalConfig holds shared configuration for all cropctl commands. It is
// injected into the cobra command context by the root command's
// PersistentPreRun hook and consumed by all subcommands.
type GlobalConfig struct {
	ServerURL      string
	NonInteractive bool
	Timeout        time.Duration
	Provider       *client.Provider
}

// InjectConfig adds config to the cobra command context.
func InjectConfig(ctx context.Context, cfg *GlobalConfig) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// FromContext retrieves config from the cobra command context. Returns
// (nil, false) if config is not present.
func FromContext(ctx context.Context) (*GlobalConfig, bool) {
	cfg, ok := ctx.Value(configKey).(*GlobalConfig)
	return cfg, ok
}

// MustFromContext retrieves config from context or panics. Only for use in
// command RunE functions, after the root command has injected the config.
func MustFromContext(ctx context.Context) *GlobalConfig {
	cfg, ok := FromContext(ctx)
	if !ok {
		panic("cropctl: config not found in context - this is a bug in cropctl")
	}
	return cfg
}
