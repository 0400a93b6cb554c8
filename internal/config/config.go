// Package config loads user settings from <data-dir>/config.yaml and
// TASK_CLI_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	FileName  = "config.yaml"
	EnvPrefix = "TASK_CLI"

	DefaultLockTimeout = 5 * time.Second
	DefaultLockRetry   = 50 * time.Millisecond
)

type Config struct {
	// StoreFile is the task file path. Empty means the default in the working directory.
	StoreFile   string        `mapstructure:"store_file"`
	LockTimeout time.Duration `mapstructure:"lock_timeout"`
	// LockRetry is the poll interval while another process holds the store lock.
	LockRetry time.Duration `mapstructure:"lock_retry"`
	NoColor   bool          `mapstructure:"no_color"`
	Debug     bool          `mapstructure:"debug"`
}

// fileConfig is the on-disk shape; durations are written as strings.
type fileConfig struct {
	StoreFile   string `yaml:"store_file,omitempty"`
	LockTimeout string `yaml:"lock_timeout,omitempty"`
	LockRetry   string `yaml:"lock_retry,omitempty"`
	NoColor     bool   `yaml:"no_color,omitempty"`
	Debug       bool   `yaml:"debug,omitempty"`
}

func Path(dataDir string) string {
	return filepath.Join(dataDir, FileName)
}

func Load(dataDir string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(Path(dataDir))
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetDefault("store_file", "")
	v.SetDefault("lock_timeout", DefaultLockTimeout.String())
	v.SetDefault("lock_retry", DefaultLockRetry.String())
	v.SetDefault("no_color", false)
	v.SetDefault("debug", false)

	if _, err := os.Stat(Path(dataDir)); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.LockTimeout <= 0 {
		return nil, fmt.Errorf("lock_timeout must be > 0")
	}
	if cfg.LockRetry <= 0 {
		return nil, fmt.Errorf("lock_retry must be > 0")
	}
	return &cfg, nil
}

func Save(dataDir string, cfg *Config) error {
	fc := fileConfig{
		StoreFile: cfg.StoreFile,
		NoColor:   cfg.NoColor,
		Debug:     cfg.Debug,
	}
	if cfg.LockTimeout > 0 && cfg.LockTimeout != DefaultLockTimeout {
		fc.LockTimeout = cfg.LockTimeout.String()
	}
	if cfg.LockRetry > 0 && cfg.LockRetry != DefaultLockRetry {
		fc.LockRetry = cfg.LockRetry.String()
	}
	data, err := yaml.Marshal(&fc)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	return os.WriteFile(Path(dataDir), data, 0644)
}
