// Copyright © 2026 The qassert authors

package cmd

import (
	"fmt"
	"io"

	"github.com/luthersystems/qassert/diagnostic"
	"github.com/luthersystems/qassert/meta"
	"github.com/luthersystems/qassert/metasource"
	"github.com/luthersystems/qassert/metatrace"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config keys.
const (
	keyColor    = "color"
	keyWidth    = "width"
	keySources  = "sources"
	keyLogLevel = "log_level"
)

// Option configures an exported command factory (DescribeCommand,
// ListCommand, VetCommand).
type Option func(*cmdConfig)

type cmdConfig struct {
	registry *meta.Registry
	fallback meta.Resolver
	viper    *viper.Viper
	logger   *logrus.Logger
}

func newCmdConfig(opts ...Option) *cmdConfig {
	c := &cmdConfig{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithRegistry injects the registry commands consult instead of the
// built-in QP/C++ table. The registry is not modified; any fallback it has
// installed is still consulted.
func WithRegistry(reg *meta.Registry) Option {
	return func(c *cmdConfig) { c.registry = reg }
}

// WithFallback adds a resolver consulted after the registry and any
// configured description files have missed.
func WithFallback(r meta.Resolver) Option {
	return func(c *cmdConfig) { c.fallback = r }
}

// WithViper reads settings from v instead of the global viper instance.
func WithViper(v *viper.Viper) Option {
	return func(c *cmdConfig) { c.viper = v }
}

// WithLogger sends command logs to l instead of a stderr logger built from
// the log_level setting.
func WithLogger(l *logrus.Logger) Option {
	return func(c *cmdConfig) { c.logger = l }
}

// settings are the resolved configuration values of one command run.
type settings struct {
	Color    diagnostic.ColorMode
	Width    int
	Sources  []string
	LogLevel logrus.Level
}

func (c *cmdConfig) settings() (*settings, error) {
	v := c.viper
	if v == nil {
		if configErr != nil {
			return nil, configErr
		}
		v = viper.GetViper()
	}
	s := &settings{
		Width:    v.GetInt(keyWidth),
		Sources:  v.GetStringSlice(keySources),
		LogLevel: logrus.WarnLevel,
	}
	var err error
	if s.Color, err = diagnostic.ParseColorMode(v.GetString(keyColor)); err != nil {
		return nil, err
	}
	if lvl := v.GetString(keyLogLevel); lvl != "" {
		if s.LogLevel, err = logrus.ParseLevel(lvl); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", keyLogLevel, err)
		}
	}
	if s.Width <= 0 {
		s.Width = diagnostic.DefaultWidth
	}
	return s, nil
}

func (c *cmdConfig) log(stderr io.Writer, s *settings, command string) *logrus.Entry {
	l := c.logger
	if l == nil {
		l = logrus.New()
		l.SetOutput(stderr)
		l.SetLevel(s.LogLevel)
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return l.WithField("component", command)
}

func (s *settings) renderer() *diagnostic.Renderer {
	return &diagnostic.Renderer{Color: s.Color, Width: s.Width}
}

// lookup is the registry a command answers queries from, together with the
// entries loaded from description files.
type lookup struct {
	registry *meta.Registry
	sources  meta.Table
}

// buildLookup assembles the registry for one command run. The resolution
// order is the base table, the base registry's own fallback, the configured
// description files, then the WithFallback resolver.
func (c *cmdConfig) buildLookup(s *settings, log *logrus.Entry) (*lookup, error) {
	base := c.registry
	if base == nil {
		base = meta.NewDefault()
	}
	var chain []meta.Resolver
	if fb := base.Fallback(); fb != nil {
		chain = append(chain, fb)
	}
	var sources meta.Table
	if len(s.Sources) > 0 {
		var err error
		sources, err = metasource.Load(s.Sources...)
		if err != nil {
			return nil, err
		}
		log.WithFields(logrus.Fields{
			"files":   len(s.Sources),
			"entries": len(sources),
		}).Debug("loaded description sources")
		chain = append(chain, metatrace.Resolver(meta.New(sources)))
	}
	if c.fallback != nil {
		chain = append(chain, c.fallback)
	}

	reg := meta.New(base.Entries())
	if len(chain) > 0 {
		reg.RegisterFallback(meta.Chain(chain...))
	}
	return &lookup{registry: reg, sources: sources}, nil
}

// builtinTable returns the table of the injected registry, or the built-in
// QP/C++ table.
func (c *cmdConfig) builtinTable() meta.Table {
	if c.registry != nil {
		return c.registry.Entries()
	}
	return meta.QPCPP
}
