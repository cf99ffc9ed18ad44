package main

import (
	"log/slog"
	"os"

	"github.com/menta2k/dataprep/internal/config"
	"github.com/menta2k/dataprep/internal/logging"
	"github.com/menta2k/dataprep/internal/utils"
)

// commandContext carries the lazily loaded configuration and logger shared
// by all subcommands.
type commandContext struct {
	configPath *string
	logLevel   *string
	logFormat  *string

	cfg *config.Config
}

func newCommandContext(configPath, logLevel, logFormat *string) *commandContext {
	return &commandContext{
		configPath: configPath,
		logLevel:   logLevel,
		logFormat:  logFormat,
	}
}

// ensureConfig loads the configuration once: the --config path when given,
// the default config file when present, built-in defaults otherwise.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}

	var cfg *config.Config
	var err error
	switch {
	case *c.configPath != "":
		cfg, err = config.LoadFromFile(*c.configPath)
	case utils.FileExists(config.GetConfigPath()):
		cfg, err = config.LoadFromFile(config.GetConfigPath())
	default:
		cfg = config.Default()
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c.cfg = cfg
	return cfg, nil
}

// logger builds the slog logger from config, with flag overrides.
func (c *commandContext) logger() (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}

	level := cfg.Logging.Level
	if *c.logLevel != "" {
		level = *c.logLevel
	}
	format := cfg.Logging.Format
	if *c.logFormat != "" {
		format = *c.logFormat
	}

	return logging.New(os.Stderr, logging.Options{Level: level, Format: format})
}
