// Package config loads the server configuration from a YAML file, with
// sensible defaults when no file is present.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full server configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Store   StoreConfig   `yaml:"store"`
	Redis   RedisConfig   `yaml:"redis"`
	Booking BookingConfig `yaml:"booking"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// StoreConfig selects the session persistence backend.
type StoreConfig struct {
	// Backend is one of "memory", "file" or "redis".
	Backend string `yaml:"backend"`
	// Path is the session directory for the file backend.
	Path string `yaml:"path"`
}

// RedisConfig holds connection settings for the redis backend.
type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
	Prefix   string        `yaml:"prefix"`
}

// BookingConfig tunes the local booking service.
type BookingConfig struct {
	// Latency simulates upstream processing time on accepted bookings.
	Latency time.Duration `yaml:"latency"`
}

// Default returns the configuration used when no file overrides it.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Store: StoreConfig{Backend: "memory"},
		Redis: RedisConfig{
			Addr:   "localhost:6379",
			Prefix: "wizard:session:",
		},
		Booking: BookingConfig{Latency: 0},
	}
}

// Load reads the config at path on top of the defaults. A missing file is
// not an error: the defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
