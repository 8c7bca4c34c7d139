// Package config loads pathlist CLI settings from a YAML file, environment
// variables and command-line flags.
package config

import (
	stderrors "errors"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/jmgilman/go/pathlist"
	"github.com/jmgilman/go/pathlist/counted"
	"github.com/jmgilman/go/pathlist/errors"
	"github.com/jmgilman/go/pathlist/internal/output"
)

const (
	// Name is the config file base name searched for without extension.
	Name = "pathlist"
	// EnvPrefix prefixes environment overrides, e.g. PATHLIST_DISPLAY_MAX_LINES.
	EnvPrefix = "PATHLIST"
)

// Keys understood in the config file, the environment and bound flags.
const (
	KeyMaxLines = "display.max_lines"
	KeyMaxWidth = "display.max_width"
	KeyLogLevel = "log.level"
	KeyFormat   = "output.format"
)

// Config holds validated CLI settings.
type Config struct {
	MaxLines int
	MaxWidth int
	LogLevel pathlist.LogLevel
	Format   output.Format

	// File is the config file that was read, or "" when none was found.
	File string
}

// NewViper returns a viper instance with defaults and environment overrides
// set up. Callers bind flags to it before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyMaxLines, counted.DefaultMaxLines)
	v.SetDefault(KeyMaxWidth, counted.DefaultMaxWidth)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyFormat, string(output.FormatText))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// SearchPaths returns the directories searched for pathlist.yaml, in order.
func SearchPaths() []string {
	return []string{".", filepath.Join(xdg.ConfigHome, Name)}
}

// Load reads the config file into v and returns the validated settings.
// When file is empty the search paths are tried and a missing file is not an
// error; an explicit file must exist.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(Name)
		v.SetConfigType("yaml")
		for _, dir := range SearchPaths() {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !stderrors.As(err, &notFound) {
			return nil, errors.WithContext(
				errors.Wrap(err, errors.CodeInvalidConfig, "failed to read config file"),
				"file", file,
			)
		}
	}

	cfg := &Config{
		MaxLines: v.GetInt(KeyMaxLines),
		MaxWidth: v.GetInt(KeyMaxWidth),
		File:     v.ConfigFileUsed(),
	}

	if err := cfg.parse(v); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) parse(v *viper.Viper) error {
	level, err := pathlist.ParseLogLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return invalid(KeyLogLevel, err)
	}
	c.LogLevel = level

	format, err := output.ParseFormat(v.GetString(KeyFormat))
	if err != nil {
		return invalid(KeyFormat, err)
	}
	c.Format = format
	return nil
}

// Validate checks the display settings.
func (c *Config) Validate() error {
	if c.MaxLines < 1 {
		return errors.WithContextMap(
			errors.New(errors.CodeInvalidConfig, "max lines must be at least 1"),
			map[string]interface{}{"key": KeyMaxLines, "value": c.MaxLines},
		)
	}
	if c.MaxWidth < 1 {
		return errors.WithContextMap(
			errors.New(errors.CodeInvalidConfig, "max width must be at least 1"),
			map[string]interface{}{"key": KeyMaxWidth, "value": c.MaxWidth},
		)
	}
	return nil
}

func invalid(key string, err error) error {
	return errors.WithContext(errors.Wrapf(err, errors.CodeInvalidConfig, "invalid %s", key), "key", key)
}
