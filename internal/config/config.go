package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/bdurrett/joke-poc-mcp-server/internal/util"
	"github.com/joho/godotenv"
)

const (
	TransportSSE   = "sse"
	TransportStdio = "stdio"
)

type Config struct {
	Server  ServerConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Host      string
	Port      int
	Transport string
}

type LoggingConfig struct {
	Level        string
	Format       string
	File         string
	ToFile       bool
	LogRequests  bool
	LogResponses bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:      getEnv("HOST", "0.0.0.0"),
			Port:      getEnvInt("PORT", 8000),
			Transport: util.Normalize(getEnv("TRANSPORT", TransportSSE)),
		},
		Logging: LoggingConfig{
			Level:        util.Normalize(getEnv("LOG_LEVEL", "info")),
			Format:       util.Normalize(getEnv("LOG_FORMAT", "json")),
			File:         getEnv("LOG_FILE", "logs/dad-joke-mcp.log"),
			ToFile:       getEnvBool("LOG_TO_FILE", false),
			LogRequests:  getEnvBool("LOG_REQUESTS", true),
			LogResponses: getEnvBool("LOG_RESPONSES", true),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Host == "" {
		return fmt.Errorf("HOST is required")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if !util.Contains([]string{TransportSSE, TransportStdio}, c.Server.Transport) {
		return fmt.Errorf("TRANSPORT must be %q or %q, got %q", TransportSSE, TransportStdio, c.Server.Transport)
	}
	if !util.Contains([]string{"json", "text"}, c.Logging.Format) {
		return fmt.Errorf("LOG_FORMAT must be \"json\" or \"text\", got %q", c.Logging.Format)
	}
	if c.Logging.ToFile && c.Logging.File == "" {
		return fmt.Errorf("LOG_FILE is required when LOG_TO_FILE is set")
	}
	return nil
}

// LogFile returns the file sink path, or empty when file logging is disabled.
func (c *Config) LogFile() string {
	if c.Logging.ToFile {
		return c.Logging.File
	}
	return ""
}

// Addr returns the host:port listen address for the SSE transport.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
