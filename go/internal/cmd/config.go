package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	backendPostgres = "postgres"
	backendMemory   = "memory"
)

type Config struct {
	Server struct {
		Port        string   `yaml:"port"`
		CORSOrigins []string `yaml:"cors_origins"`
	} `yaml:"server"`

	Store struct {
		Backend string `yaml:"backend"`
	} `yaml:"store"`

	Events struct {
		NatsURL       string `yaml:"nats_url"`
		StreamName    string `yaml:"stream_name"`
		SubjectPrefix string `yaml:"subject_prefix"`
	} `yaml:"events"`

	Pga struct {
		Source string `yaml:"source"`
	} `yaml:"pga"`
}

func defaultConfig() *Config {
	var config Config
	config.Server.Port = "8080"
	config.Server.CORSOrigins = []string{"*"}
	config.Store.Backend = backendPostgres
	return &config
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// loadConfig reads the YAML file at path over the defaults and then applies
// environment overrides. A missing file is not an error.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	config.applyEnv()

	switch config.Store.Backend {
	case backendPostgres, backendMemory:
	default:
		return nil, fmt.Errorf("unknown store backend %q", config.Store.Backend)
	}
	return config, nil
}

func (c *Config) applyEnv() {
	c.Server.Port = getEnv("PORT", c.Server.Port)
	c.Store.Backend = strings.ToLower(getEnv("STORE_BACKEND", c.Store.Backend))
	c.Events.NatsURL = getEnv("NATS_URL", c.Events.NatsURL)
	c.Events.SubjectPrefix = getEnv("NATS_SUBJECT_PREFIX", c.Events.SubjectPrefix)
	c.Pga.Source = getEnv("PGA_PLAYERS_SOURCE", c.Pga.Source)

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		c.Server.CORSOrigins = strings.Split(origins, ",")
		for i := range c.Server.CORSOrigins {
			c.Server.CORSOrigins[i] = strings.TrimSpace(c.Server.CORSOrigins[i])
		}
	}
}
