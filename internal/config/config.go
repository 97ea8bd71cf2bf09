package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	defaultLogLevel     = "info"
	defaultHTTPTimeout  = 30 * time.Second
	defaultRepeatWindow = 72 * time.Hour
)

// AppConfig holds application configuration
type AppConfig struct {
	// DataDir holds settings.json and the viewing history database
	DataDir string
	// LogLevel is a zap level name (debug, info, warn, error)
	LogLevel string
	// HTTPTimeout bounds each museum API call
	HTTPTimeout time.Duration
	// RepeatWindow suppresses re-serving artwork viewed this recently
	RepeatWindow time.Duration
}

// fileConfig is the YAML shape of the optional config file
// Duration fields use Go duration strings (e.g. "30s", "72h")
type fileConfig struct {
	DataDir      string `yaml:"data_dir"`
	LogLevel     string `yaml:"log_level"`
	HTTPTimeout  string `yaml:"http_timeout"`
	RepeatWindow string `yaml:"repeat_window"`
}

// Load assembles the configuration from defaults, then the YAML file at
// path (or the conventional location when path is empty), then EASEL_*
// environment overrides
func Load(logger *zap.Logger, path string) (*AppConfig, error) {
	cfg := &AppConfig{
		DataDir:      defaultDataDir(),
		LogLevel:     defaultLogLevel,
		HTTPTimeout:  defaultHTTPTimeout,
		RepeatWindow: defaultRepeatWindow,
	}

	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
	}
	if path != "" {
		if err := cfg.applyFile(path); err != nil {
			// A missing conventional file is fine; a named one is not
			if explicit || !os.IsNotExist(err) {
				return nil, fmt.Errorf("load config %s: %w", path, err)
			}
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	cfg.DataDir = expandPath(cfg.DataDir)

	logger.Info("Configuration loaded",
		zap.String("dataDir", cfg.DataDir),
		zap.String("logLevel", cfg.LogLevel),
		zap.Duration("httpTimeout", cfg.HTTPTimeout),
		zap.Duration("repeatWindow", cfg.RepeatWindow))

	return cfg, nil
}

func (c *AppConfig) applyFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}

	if fc.DataDir != "" {
		c.DataDir = fc.DataDir
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if fc.HTTPTimeout != "" {
		d, err := time.ParseDuration(fc.HTTPTimeout)
		if err != nil {
			return fmt.Errorf("parse http_timeout: %w", err)
		}
		c.HTTPTimeout = d
	}
	if fc.RepeatWindow != "" {
		d, err := time.ParseDuration(fc.RepeatWindow)
		if err != nil {
			return fmt.Errorf("parse repeat_window: %w", err)
		}
		c.RepeatWindow = d
	}
	return nil
}

func (c *AppConfig) applyEnv() error {
	if v := os.Getenv("EASEL_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("EASEL_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("EASEL_HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse EASEL_HTTP_TIMEOUT: %w", err)
		}
		c.HTTPTimeout = d
	}
	if v := os.Getenv("EASEL_REPEAT_WINDOW"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse EASEL_REPEAT_WINDOW: %w", err)
		}
		c.RepeatWindow = d
	}
	return nil
}

// SettingsPath locates the settings.json file inside the data directory
func (c *AppConfig) SettingsPath() string {
	return filepath.Join(c.DataDir, "settings.json")
}

// HistoryPath locates the viewing history database inside the data directory
func (c *AppConfig) HistoryPath() string {
	return filepath.Join(c.DataDir, "history.db")
}

func defaultDataDir() string {
	if base := os.Getenv("XDG_DATA_HOME"); base != "" {
		return filepath.Join(base, "easel")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "easel")
	}
	return filepath.Join(home, ".local", "share", "easel")
}

func defaultConfigPath() string {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, "easel", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "easel", "config.yaml")
}

// expandPath resolves environment variables and a leading ~ in dir paths
func expandPath(p string) string {
	p = os.ExpandEnv(p)
	if len(p) > 0 && p[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			p = filepath.Join(home, p[1:])
		}
	}
	return p
}
