// SPDX-License-Identifier: MIT
package lexer

import (
	"github.com/sirupsen/logrus"
)

type (
	// Config defines configuration options for the Scanner's operations.
	Config struct {
		Logger logrus.FieldLogger
		Debug  bool
	}

	// Option defines the Scanner functional option type.
	Option func(*Scanner)
)

// DefaultConfig configures the Scanner's Config.
func DefaultConfig() *Config {
	return &Config{Logger: logrus.New()}
}

// Validate populates missing Config entries with defaults.
func (c *Config) Validate() {
	if c.Logger == nil {
		c.Logger = logrus.New()
	}
}

// WithConfig configures the Scanner's Config.
func WithConfig(cfg *Config) Option {
	return func(s *Scanner) { s.cfg = cfg }
}

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Scanner) { s.cfg.Logger = logger }
}

// WithDebug configures the debug option.
func WithDebug(debug bool) Option {
	return func(s *Scanner) { s.cfg.Debug = debug }
}
