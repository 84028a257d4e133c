package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// ErrMissingAPIKey is returned when no YouTube API key is configured.
var ErrMissingAPIKey = errors.New("error: missing youtube api key")

// Config settings for main App.
type Config struct {
	Server  *ServerConfig  `json:"server"`
	YouTube *YouTubeConfig `json:"youtube"`
	Display *DisplayConfig `json:"display"`
}

// ServerConfig settings for App Server.
type ServerConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
	// TemplatePath loads templates from disk instead of the embedded box
	// and reloads them when they change.
	TemplatePath string `json:"template_path"`
	// SessionTTL in seconds.
	SessionTTL int `json:"session_ttl"`
	// SubmitRate is the number of submissions allowed per minute and client.
	SubmitRate  int `json:"submit_rate"`
	SubmitBurst int `json:"submit_burst"`
	// TrustedProxy takes the client address from X-Forwarded-For and
	// X-Real-IP. Only enable it behind a proxy that sets these headers.
	TrustedProxy bool `json:"trusted_proxy"`
}

// YouTubeConfig settings for the YouTube Data API client.
type YouTubeConfig struct {
	Endpoint  string `json:"endpoint"`
	APIKeyEnv string `json:"api_key_env"`
	// Timeout in seconds for a single videos.list call.
	Timeout int `json:"timeout"`

	APIKey string `json:"-"`
}

// DisplayConfig settings for rendering.
type DisplayConfig struct {
	Timezone string `json:"timezone"`
}

// DefaultConfig returns Config initialized with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: &ServerConfig{
			Host:        "0.0.0.0",
			Port:        8000,
			SessionTTL:  3600,
			SubmitRate:  30,
			SubmitBurst: 5,
		},
		YouTube: &YouTubeConfig{
			APIKeyEnv: "YOUTUBE_API_KEY",
			Timeout:   10,
		},
		Display: &DisplayConfig{
			Timezone: "Local",
		},
	}
}

// ReadFile reads a JSON file into Config.
func (c *Config) ReadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	d := json.NewDecoder(f)
	return d.Decode(c)
}

// LoadAPIKey reads the API key from the configured environment variable.
func (c *Config) LoadAPIKey() error {
	key := os.Getenv(c.YouTube.APIKeyEnv)
	if key == "" {
		return fmt.Errorf("%w: set %s", ErrMissingAPIKey, c.YouTube.APIKeyEnv)
	}
	c.YouTube.APIKey = key
	return nil
}

// Location returns the time zone publish dates are displayed in.
func (c *Config) Location() (*time.Location, error) {
	if c.Display == nil || c.Display.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Display.Timezone)
	if err != nil {
		return nil, fmt.Errorf("error loading timezone %q: %w", c.Display.Timezone, err)
	}
	return loc, nil
}

// Addr returns the listen address of the server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
