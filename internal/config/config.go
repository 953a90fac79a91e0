// Package config loads service configuration from an optional YAML file
// with environment variable overrides. Precedence: defaults, then file,
// then environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/zombar/searchintel/internal/analyzer"
)

// Config is the full service configuration.
type Config struct {
	Server   ServerConfig    `yaml:"server"`
	Database DatabaseConfig  `yaml:"database"`
	Redis    RedisConfig     `yaml:"redis"`
	Ollama   OllamaConfig    `yaml:"ollama"`
	Analyzer analyzer.Config `yaml:"analyzer"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type RedisConfig struct {
	Addr    string `yaml:"addr"`
	Enabled bool   `yaml:"enabled"`
}

type OllamaConfig struct {
	URL     string `yaml:"url"`
	Model   string `yaml:"model"`
	Enabled bool   `yaml:"enabled"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Server:   ServerConfig{Port: "8080"},
		Database: DatabaseConfig{Path: "searchintel.db"},
		Redis:    RedisConfig{Addr: "localhost:6379", Enabled: true},
		Ollama:   OllamaConfig{URL: "http://localhost:11434", Model: "gpt-oss:20b", Enabled: true},
		Analyzer: analyzer.DefaultConfig(),
	}
}

// Load builds the configuration from the optional YAML file at path and
// the environment. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("failed to read config file: %w", err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Server.Port = getEnv("PORT", c.Server.Port)
	c.Database.Path = getEnv("DB_PATH", c.Database.Path)
	c.Redis.Addr = getEnv("REDIS_ADDR", c.Redis.Addr)
	c.Redis.Enabled = getEnvBool("USE_REDIS", c.Redis.Enabled)
	c.Ollama.URL = getEnv("OLLAMA_URL", c.Ollama.URL)
	c.Ollama.Model = getEnv("OLLAMA_MODEL", c.Ollama.Model)
	c.Ollama.Enabled = getEnvBool("USE_OLLAMA", c.Ollama.Enabled)

	if v := os.Getenv("MAX_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Analyzer.MaxConcurrency = n
		}
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool retrieves a boolean environment variable or returns a default value
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}
