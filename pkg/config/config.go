// Package config loads spinesort settings from a TOML file.
//
// The default location follows the XDG base directory convention:
// $XDG_CONFIG_HOME/spinesort/config.toml, falling back to
// ~/.config/spinesort/config.toml. A missing default file is not an error;
// a missing file named explicitly is.
//
// Example:
//
//	log_level = "debug"
//
//	[sort]
//	method = "hsv"
//	groups = 3
//
//	[render]
//	formats = ["svg", "json"]
//	width = 640
//	stripe_height = 32
//
//	[server]
//	addr = ":8080"
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/spinesort/pkg/arrange"
	"github.com/matzehuels/spinesort/pkg/errors"
	"github.com/matzehuels/spinesort/pkg/pipeline"
)

const (
	appName  = "spinesort"
	fileName = "config.toml"

	// DefaultAddr is the listen address for the browser UI.
	DefaultAddr = "127.0.0.1:8080"

	// DefaultLogLevel is used when log_level is unset.
	DefaultLogLevel = "info"
)

// Config is the decoded configuration file.
type Config struct {
	LogLevel string `toml:"log_level"`
	Sort     Sort   `toml:"sort"`
	Render   Render `toml:"render"`
	Server   Server `toml:"server"`
}

// Sort holds the [sort] table.
type Sort struct {
	Method arrange.Method `toml:"method"`
	Groups int            `toml:"groups"`
}

// Render holds the [render] table.
type Render struct {
	Formats      []string `toml:"formats"`
	Width        float64  `toml:"width"`
	StripeHeight float64  `toml:"stripe_height"`
}

// Server holds the [server] table.
type Server struct {
	Addr string `toml:"addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: DefaultLogLevel,
		Sort: Sort{
			Method: arrange.DefaultMethod,
			Groups: arrange.DefaultGroups,
		},
		Render: Render{
			Width:        pipeline.DefaultWidth,
			StripeHeight: pipeline.DefaultStripeHeight,
		},
		Server: Server{Addr: DefaultAddr},
	}
}

// Path returns the default config file location.
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the file at path on top of [Default]. An empty path means the
// default location, which may be absent.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if explicit {
				return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
			}
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks value ranges. The method is checked while decoding.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if err := pipeline.ValidateGroups(c.Sort.Groups); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "sort.groups")
	}
	if err := pipeline.ValidateFormats(c.Render.Formats); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "render.formats")
	}
	if err := errors.ValidateDimension("render.width", c.Render.Width); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "render.width")
	}
	if err := errors.ValidateDimension("render.stripe_height", c.Render.StripeHeight); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "render.stripe_height")
	}
	if err := errors.ValidateListenAddr(c.Server.Addr); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "server.addr")
	}
	return nil
}

// Level returns the normalized log level name.
func (c Config) Level() (string, error) {
	lvl := strings.ToLower(strings.TrimSpace(c.LogLevel))
	switch lvl {
	case "":
		return DefaultLogLevel, nil
	case "debug", "info", "warn", "error":
		return lvl, nil
	}
	return "", errors.New(errors.ErrCodeInvalidConfig, "log_level %q (must be debug, info, warn or error)", c.LogLevel)
}

// PipelineOptions returns pipeline options seeded from the config.
func (c Config) PipelineOptions() pipeline.Options {
	return pipeline.Options{
		Method:       c.Sort.Method,
		Groups:       c.Sort.Groups,
		Formats:      append([]string(nil), c.Render.Formats...),
		Width:        c.Render.Width,
		StripeHeight: c.Render.StripeHeight,
	}
}
