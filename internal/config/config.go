package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

const (
	defaultWebAddr  = "localhost:8080"
	defaultLogLevel = "info"
)

// Config holds the application settings.
// Values come from defaults, then an optional YAML file, then flags.
type Config struct {
	InitialRoute string `yaml:"initial_route"`
	WebAddr      string `yaml:"web_addr"`
	LogLevel     string `yaml:"log_level"`
	LogFile      string `yaml:"log_file"`
	Metrics      bool   `yaml:"metrics"`
}

// Default returns the built-in configuration. InitialRoute is left empty so
// the caller can fall back to its own start screen.
func Default() Config {
	return Config{
		WebAddr:  defaultWebAddr,
		LogLevel: defaultLogLevel,
		Metrics:  true,
	}
}

// Load reads a YAML file on top of the defaults. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Flag names understood by Overlay.
const (
	FlagInitialRoute = "initial-route"
	FlagWebAddr      = "addr"
	FlagLogLevel     = "log-level"
	FlagLogFile      = "log-file"
	FlagMetrics      = "metrics"
)

// RegisterFlags declares the configuration flags on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String(FlagInitialRoute, d.InitialRoute, "Route to start on (default: the home screen)")
	fs.String(FlagWebAddr, d.WebAddr, "Listen address for --web")
	fs.String(FlagLogLevel, d.LogLevel, "Log level: debug, info, warn, error")
	fs.String(FlagLogFile, d.LogFile, "Write logs to this file (TUI mode discards logs otherwise)")
	fs.Bool(FlagMetrics, d.Metrics, "Expose Prometheus metrics at /metrics in --web mode")
}

// Overlay copies flags that were set explicitly on fs into cfg.
func Overlay(cfg *Config, fs *pflag.FlagSet) error {
	var errs []error
	if fs.Changed(FlagInitialRoute) {
		v, err := fs.GetString(FlagInitialRoute)
		errs = append(errs, err)
		cfg.InitialRoute = v
	}
	if fs.Changed(FlagWebAddr) {
		v, err := fs.GetString(FlagWebAddr)
		errs = append(errs, err)
		cfg.WebAddr = v
	}
	if fs.Changed(FlagLogLevel) {
		v, err := fs.GetString(FlagLogLevel)
		errs = append(errs, err)
		cfg.LogLevel = v
	}
	if fs.Changed(FlagLogFile) {
		v, err := fs.GetString(FlagLogFile)
		errs = append(errs, err)
		cfg.LogFile = v
	}
	if fs.Changed(FlagMetrics) {
		v, err := fs.GetBool(FlagMetrics)
		errs = append(errs, err)
		cfg.Metrics = v
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	return cfg.Validate()
}

// Validate checks field values.
func (c Config) Validate() error {
	if strings.TrimSpace(c.WebAddr) == "" {
		return errors.New("web_addr must not be empty")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses LogLevel.
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
