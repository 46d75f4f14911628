package server

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/itpenciles/deal-engine/internal/config"
	"github.com/itpenciles/deal-engine/pkg/constants"
	"gopkg.in/yaml.v3"
)

// Config defines runtime parameters for the HTTP server.
type Config struct {
	Address        string               `yaml:"address"`
	AllowedOrigins []string             `yaml:"allowedOrigins"`
	Cache          CacheConfig          `yaml:"cache"`
	Logging        config.LoggingConfig `yaml:"logging"`
}

// CacheConfig selects the result cache backend. An empty redisAddress means
// the in-process cache is used.
type CacheConfig struct {
	RedisAddress string `yaml:"redisAddress"`
	TTLSeconds   int    `yaml:"ttlSeconds"`
}

// LoadConfig loads the server configuration from YAML. If the file does not exist,
// defaults are returned without error.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Address: constants.DefaultServerAddress,
		Cache:   CacheConfig{TTLSeconds: constants.DefaultCacheTTLSeconds},
		Logging: config.LoggingConfig{},
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read server config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	if c.Address == "" {
		c.Address = constants.DefaultServerAddress
	}
	if c.Cache.TTLSeconds <= 0 {
		c.Cache.TTLSeconds = constants.DefaultCacheTTLSeconds
	}
}
