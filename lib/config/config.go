package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML shape. Unset fields keep their defaults.
type FileConfig struct {
	Carrier         *string    `yaml:"carrier"`
	FullTextPerChar *bool      `yaml:"full_text_per_char"`
	Seed            *int64     `yaml:"seed"`
	DNS             *DNSConfig `yaml:"dns"`
	Log             *LogConfig `yaml:"log"`
}

// DNSConfig configures the TXT responder client
type DNSConfig struct {
	Resolver *string `yaml:"resolver"`
	Suffix   *string `yaml:"suffix"`
	Timeout  *string `yaml:"timeout"`
}

// LogConfig configures zap
type LogConfig struct {
	Level       *string `yaml:"level"`
	Development *bool   `yaml:"development"`
}

// Config is the resolved configuration. A zero Seed draws a fresh random
// source for every encoding.
type Config struct {
	Carrier         string
	FullTextPerChar bool
	Seed            int64
	Resolver        string
	Suffix          string
	Timeout         time.Duration
	Level           zapcore.Level
	Development     bool
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Carrier:  "A",
		Resolver: "127.0.0.1:53",
		Suffix:   "vsel.example.org.",
		Timeout:  2 * time.Second,
		Level:    zapcore.InfoLevel,
	}
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("parse %s: %w", path, err)
	}
	return fc, nil
}

// LoadGlobal loads vsel/config.yml from the XDG config directory
func LoadGlobal() (FileConfig, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return FileConfig{}, errors.New("no config dir")
	}
	p := filepath.Join(base, "vsel", "config.yml")
	if _, err := os.Stat(p); err != nil {
		return FileConfig{}, err
	}
	return LoadFile(p)
}

// Apply merges the set fields of fc over c
func (fc FileConfig) Apply(c Config) (Config, error) {
	if fc.Carrier != nil {
		c.Carrier = *fc.Carrier
	}
	if fc.FullTextPerChar != nil {
		c.FullTextPerChar = *fc.FullTextPerChar
	}
	if fc.Seed != nil {
		c.Seed = *fc.Seed
	}
	if d := fc.DNS; d != nil {
		if d.Resolver != nil {
			c.Resolver = *d.Resolver
		}
		if d.Suffix != nil {
			c.Suffix = *d.Suffix
		}
		if d.Timeout != nil {
			t, err := time.ParseDuration(*d.Timeout)
			if err != nil {
				return c, fmt.Errorf("dns.timeout: %w", err)
			}
			c.Timeout = t
		}
	}
	if l := fc.Log; l != nil {
		if l.Level != nil {
			if err := c.Level.UnmarshalText([]byte(*l.Level)); err != nil {
				return c, fmt.Errorf("log.level: %w", err)
			}
		}
		if l.Development != nil {
			c.Development = *l.Development
		}
	}
	return c, nil
}
