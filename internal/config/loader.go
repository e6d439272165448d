package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config captures environment driven configuration values for the assistant service.
type Config struct {
	HTTPPort           int
	SQLiteDSN          string
	AlarmCheckInterval time.Duration
	HistoryLimit       int
	LogLevel           string
}

// Load reads an optional .env file and then parses configuration values from
// the current process environment. Real environment variables win over .env
// entries.
func Load() (Config, error) {
	// Overload would invert the precedence; missing file is fine.
	_ = godotenv.Load()

	cfg := Config{
		HTTPPort:           8080,
		SQLiteDSN:          "file:assistant.db?_foreign_keys=on",
		AlarmCheckInterval: time.Second,
		HistoryLimit:       50,
		LogLevel:           "info",
	}

	invalid := make([]string, 0, 2)

	if portValue := strings.TrimSpace(os.Getenv("ASSISTANT_HTTP_PORT")); portValue != "" {
		port, err := strconv.Atoi(portValue)
		if err != nil || port <= 0 {
			invalid = append(invalid, "ASSISTANT_HTTP_PORT")
		} else {
			cfg.HTTPPort = port
		}
	}

	if dsn := strings.TrimSpace(os.Getenv("ASSISTANT_SQLITE_DSN")); dsn != "" {
		cfg.SQLiteDSN = dsn
	}

	if intervalValue := strings.TrimSpace(os.Getenv("ASSISTANT_ALARM_CHECK_INTERVAL")); intervalValue != "" {
		interval, err := time.ParseDuration(intervalValue)
		if err != nil || interval <= 0 {
			invalid = append(invalid, "ASSISTANT_ALARM_CHECK_INTERVAL")
		} else {
			cfg.AlarmCheckInterval = interval
		}
	}

	if limitValue := strings.TrimSpace(os.Getenv("ASSISTANT_HISTORY_LIMIT")); limitValue != "" {
		limit, err := strconv.Atoi(limitValue)
		if err != nil || limit <= 0 {
			invalid = append(invalid, "ASSISTANT_HISTORY_LIMIT")
		} else {
			cfg.HistoryLimit = limit
		}
	}

	if level := strings.TrimSpace(os.Getenv("ASSISTANT_LOG_LEVEL")); level != "" {
		switch strings.ToLower(level) {
		case "debug", "info", "warn", "error":
			cfg.LogLevel = strings.ToLower(level)
		default:
			invalid = append(invalid, "ASSISTANT_LOG_LEVEL")
		}
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variable values: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}
