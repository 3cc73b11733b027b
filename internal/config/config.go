package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DefaultMode   string `yaml:"default_mode,omitempty"`
	DefaultStatus string `yaml:"default_status,omitempty"`

	// Minutes east of UTC for the snippet clock; defaults to IST (+330).
	UTCOffsetMinutes *int `yaml:"utc_offset_minutes,omitempty"`

	Snippets []CustomSnippet `yaml:"snippets,omitempty"`
}

type CustomSnippet struct {
	Category string `yaml:"category,omitempty"`
	Label    string `yaml:"label"`
	Text     string `yaml:"text"`
}

func DefaultConfig() *Config {
	return &Config{
		DefaultMode:   "Credit Card",
		DefaultStatus: "Processing",
	}
}

// Zone returns the location the time-of-day snippets run against.
func (c *Config) Zone() *time.Location {
	if c == nil || c.UTCOffsetMinutes == nil {
		return time.FixedZone("IST", 330*60)
	}
	return time.FixedZone("custom", *c.UTCOffsetMinutes*60)
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "refundly"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func Exists() bool {
	path, err := ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
