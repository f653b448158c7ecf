package main

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	"stlkit/internal/config"
	"stlkit/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// logger builds a logger from the loaded config, falling back to a
// console logger at info level when config loading failed.
func (c *commandContext) logger(w io.Writer) *slog.Logger {
	opts := logging.Options{Level: "info", Format: "console"}
	if cfg, err := c.ensureConfig(); err == nil && cfg != nil {
		opts.Level = cfg.Logging.Level
		opts.Format = cfg.Logging.Format
	}
	logger, err := logging.New(w, opts)
	if err != nil {
		return logging.NewNop()
	}
	return logger
}
