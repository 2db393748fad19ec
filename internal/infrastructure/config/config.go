package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// BankSource selects where questions come from: "" for the embedded seed,
	// a .db/.sqlite file, or a .yaml/.json bank file.
	BankSource string

	LogLevel  slog.Level
	LogFormat string // "json" or "text"

	CORSOrigins []string
	NoColor     bool
}

// Load reads configuration from the environment, after loading .env if it exists.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads configuration from the process environment only.
func FromEnv() (*Config, error) {
	shutdown, err := getDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	level, err := getLevel("LOG_LEVEL", slog.LevelInfo)
	if err != nil {
		return nil, err
	}

	format := strings.ToLower(getenvDefault("LOG_FORMAT", "json"))
	if format != "json" && format != "text" {
		return nil, fmt.Errorf("config: LOG_FORMAT=%q must be json or text", format)
	}

	return &Config{
		ServerAddress:   getenvDefault("SERVER_ADDRESS", ":8000"),
		ShutdownTimeout: shutdown,
		BankSource:      os.Getenv("QUIZ_BANK"),
		LogLevel:        level,
		LogFormat:       format,
		CORSOrigins:     csvDefault("CORS_ORIGINS", "*"),
		NoColor:         getBool("NO_COLOR", false),
	}, nil
}

// NewLogger builds the process logger writing to w.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func getDuration(k string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(k)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q is not a valid duration: %w", k, v, err)
	}
	return d, nil
}

func getLevel(k string, fallback slog.Level) (slog.Level, error) {
	v := os.Getenv(k)
	if v == "" {
		return fallback, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(v)); err != nil {
		return 0, fmt.Errorf("config: %s=%q is not a valid log level: %w", k, v, err)
	}
	return level, nil
}

func getBool(k string, fallback bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return fallback
	}
}

func csvDefault(k, fallback string) []string {
	parts := strings.Split(getenvDefault(k, fallback), ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}
