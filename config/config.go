package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// EnvPathVar points at an alternate .env file; the default is .env in
	// the working directory.
	EnvPathVar = "SCREENOPS_ENV"

	TransportStdio          = "stdio"
	TransportSSE            = "sse"
	TransportStreamableHTTP = "streamable-http"

	defaultHost        = "127.0.0.1"
	defaultPort        = 8080
	defaultMaxInline   = 4 << 20
	defaultJPEGQuality = 90
)

type Config struct {
	Transport   string
	Host        string
	Port        int
	LogPath     string
	MaxInline   int
	JPEGQuality int
}

// Load reads an optional .env file and the SCREENOPS_* environment
// variables. Missing values fall back to defaults. Load does not validate:
// command-line flags override the result afterwards, and a flag may correct
// a bad env value, so the caller runs Validate once overrides are applied.
func Load() (*Config, error) {
	envPath := strings.TrimSpace(os.Getenv(EnvPathVar))
	if envPath == "" {
		envPath = ".env"
	}
	if _, err := os.Stat(envPath); err == nil {
		_ = godotenv.Load(envPath)
	}

	cfg := &Config{
		Transport:   getEnvWithDefault("SCREENOPS_TRANSPORT", TransportStdio),
		Host:        getEnvWithDefault("SCREENOPS_HOST", defaultHost),
		Port:        getEnvInt("SCREENOPS_PORT", defaultPort),
		LogPath:     os.Getenv("SCREENOPS_LOG"),
		MaxInline:   getEnvInt("SCREENOPS_MAX_INLINE", defaultMaxInline),
		JPEGQuality: getEnvInt("SCREENOPS_JPEG_QUALITY", defaultJPEGQuality),
	}
	return cfg, nil
}

// Validate checks the configuration after env and flag resolution.
func (c *Config) Validate() error {
	switch c.Transport {
	case TransportStdio, TransportSSE, TransportStreamableHTTP:
	default:
		return fmt.Errorf("unknown transport %q; use stdio, sse, or streamable-http", c.Transport)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("invalid JPEG quality %d", c.JPEGQuality)
	}
	return nil
}

// Addr returns the host:port pair for the HTTP-based transports.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnvWithDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
