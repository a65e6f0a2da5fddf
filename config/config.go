// Package config consolidates syntree settings from built-in defaults, an
// optional syntree.yaml file and SYNTREE_* environment variables, in that
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/mstoykov/envconfig"
	"github.com/spf13/afero"
	"gopkg.in/guregu/null.v3"
	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no file is given.
const DefaultFile = "syntree.yaml"

type Config struct {
	Verbosity    null.Int    `yaml:"verbosity" envconfig:"SYNTREE_VERBOSITY"`
	LogFile      null.String `yaml:"logFile" envconfig:"SYNTREE_LOG_FILE"`
	Color        null.String `yaml:"color" envconfig:"SYNTREE_COLOR"`
	Dedup        null.Bool   `yaml:"dedup" envconfig:"SYNTREE_DEDUP"`
	PollInterval null.String `yaml:"pollInterval" envconfig:"SYNTREE_POLL_INTERVAL"`
	Exclude      []string    `yaml:"exclude" envconfig:"SYNTREE_EXCLUDE"`
}

// NewConfig returns the defaults. None of the values are marked valid, so
// any layer applied on top wins.
func NewConfig() Config {
	return Config{
		Verbosity:    null.NewInt(0, false),
		Color:        null.NewString("auto", false),
		Dedup:        null.NewBool(false, false),
		PollInterval: null.NewString("1s", false),
		Exclude:      []string{"target"},
	}
}

// Apply overlays every field set in cfg.
func (c Config) Apply(cfg Config) Config {
	if cfg.Verbosity.Valid {
		c.Verbosity = cfg.Verbosity
	}
	if cfg.LogFile.Valid {
		c.LogFile = cfg.LogFile
	}
	if cfg.Color.Valid {
		c.Color = cfg.Color
	}
	if cfg.Dedup.Valid {
		c.Dedup = cfg.Dedup
	}
	if cfg.PollInterval.Valid {
		c.PollInterval = cfg.PollInterval
	}
	if len(cfg.Exclude) > 0 {
		c.Exclude = cfg.Exclude
	}
	return c
}

// Validate checks values that cannot be typed at decode time.
func (c Config) Validate() error {
	switch c.Color.String {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color must be auto, always or never, not %q", c.Color.String)
	}
	if _, err := c.Poll(); err != nil {
		return err
	}
	if c.Verbosity.Int64 < -1 {
		return fmt.Errorf("verbosity must be at least -1, not %d", c.Verbosity.Int64)
	}
	return nil
}

// Poll returns the watcher poll interval.
func (c Config) Poll() (time.Duration, error) {
	d, err := time.ParseDuration(c.PollInterval.String)
	if err != nil {
		return 0, fmt.Errorf("pollInterval: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("pollInterval must be positive, not %s", d)
	}
	return d, nil
}

// LogPath returns the log file for commonlog.Configure, nil meaning stderr.
func (c Config) LogPath() *string {
	if !c.LogFile.Valid {
		return nil
	}
	path := c.LogFile.String
	return &path
}

// ReadFile decodes a YAML config file. A missing file yields an empty
// config when optional is set.
func ReadFile(afs afero.Fs, path string, optional bool) (Config, error) {
	var cfg Config
	data, err := afero.ReadFile(afs, path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ReadEnv decodes SYNTREE_* variables through lookup.
func ReadEnv(lookup func(string) (string, bool)) (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg, lookup); err != nil {
		return cfg, fmt.Errorf("read environment: %w", err)
	}
	return cfg, nil
}

// Load consolidates defaults, the file at path and the environment. An
// empty path reads DefaultFile if it exists.
func Load(afs afero.Fs, path string, lookup func(string) (string, bool)) (Config, error) {
	optional := path == ""
	if optional {
		path = DefaultFile
	}
	fileCfg, err := ReadFile(afs, path, optional)
	if err != nil {
		return Config{}, err
	}
	envCfg, err := ReadEnv(lookup)
	if err != nil {
		return Config{}, err
	}
	cfg := NewConfig().Apply(fileCfg).Apply(envCfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadDefault is Load against the OS filesystem and environment.
func LoadDefault(path string) (Config, error) {
	return Load(afero.NewOsFs(), path, os.LookupEnv)
}
