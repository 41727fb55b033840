package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Room      RoomConfig      `yaml:"room"`
	Profile   ProfileConfig   `yaml:"profile"`
	Assistant AssistantConfig `yaml:"assistant"`
}

// ServerConfig holds HTTP settings.
type ServerConfig struct {
	Port    string `yaml:"port"`
	BaseURL string `yaml:"base_url"`
}

// RoomConfig holds canvas geometry. Width and Height are visual bounds only.
type RoomConfig struct {
	GridSize int `yaml:"grid_size"`
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
}

// ProfileConfig holds new-player settings.
type ProfileConfig struct {
	StartingCurrency int `yaml:"starting_currency"`
}

// AssistantConfig holds the design assistant backend settings.
type AssistantConfig struct {
	APIKey         string `yaml:"api_key"`
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the per-request advisor timeout.
func (a AssistantConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a YAML file, then applies environment
// overrides. An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}
	cfg.applyEnv()
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Room.GridSize <= 0 {
		c.Room.GridSize = 40
	}
	if c.Room.Width <= 0 {
		c.Room.Width = 20
	}
	if c.Room.Height <= 0 {
		c.Room.Height = 16
	}
	if c.Profile.StartingCurrency <= 0 {
		c.Profile.StartingCurrency = 2000
	}
	if c.Assistant.Model == "" {
		c.Assistant.Model = "gemini-2.5-flash"
	}
	if c.Assistant.TimeoutSeconds <= 0 {
		c.Assistant.TimeoutSeconds = 20
	}
}

func (c *Config) applyEnv() {
	c.Server.Port = getEnv("PORT", c.Server.Port)
	c.Server.BaseURL = getEnv("BASE_URL", c.Server.BaseURL)
	c.Assistant.APIKey = getEnv("API_KEY", getEnv("GEMINI_API_KEY", c.Assistant.APIKey))
	c.Room.GridSize = getEnvAsInt("GRID_SIZE", c.Room.GridSize)
	c.Profile.StartingCurrency = getEnvAsInt("STARTING_CURRENCY", c.Profile.StartingCurrency)
}

func getEnv(key, defaultVal string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}
