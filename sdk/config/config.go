// Copyright 2022, Pulumi Corporation.  All rights reserved.

// Package config loads the server configuration.
//
// Values are layered: defaults, then an optional YAML file, then environment
// variables (a .env file in the working directory is loaded first). Command
// line flags are applied last by the caller.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	EnvLogLevel = "SWAGGER_LSP_LOG_LEVEL"
	EnvLogFile  = "SWAGGER_LSP_LOG_FILE"
	EnvPort     = "SWAGGER_LSP_PORT"
)

type Config struct {
	// One of debug, info, warn or error.
	LogLevel string `yaml:"logLevel"`
	// Where logs are written. Empty means stderr. Logs never go to stdout,
	// which carries the protocol.
	LogFile string `yaml:"logFile"`
	// When non-zero, the server dials this local port instead of using stdio.
	Port int `yaml:"port"`
	// Characters that trigger completion in the client.
	TriggerCharacters []string `yaml:"triggerCharacters"`
}

func Default() Config {
	return Config{
		LogLevel: "info",
	}
}

// Load reads the configuration. An empty path skips the configuration file.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	cfg.LogLevel = firstNonEmpty(strings.TrimSpace(os.Getenv(EnvLogLevel)), cfg.LogLevel)
	cfg.LogFile = firstNonEmpty(strings.TrimSpace(os.Getenv(EnvLogFile)), cfg.LogFile)
	if raw := strings.TrimSpace(os.Getenv(EnvPort)); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvPort, raw, err)
		}
		cfg.Port = port
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if _, err := c.level(); err != nil {
		return err
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	return nil
}

func (c Config) level() (zapcore.Level, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return lvl, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// Logger builds the logger described by c.
func (c Config) Logger() (*zap.Logger, error) {
	lvl, err := c.level()
	if err != nil {
		return nil, err
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{"stderr"}
	if c.LogFile != "" {
		zc.OutputPaths = []string{c.LogFile}
	}
	zc.ErrorOutputPaths = []string{"stderr"}
	return zc.Build()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
