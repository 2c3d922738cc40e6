// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// MaxResultLimit caps ResultLimit.
const MaxResultLimit = 100

// Config holds all configuration values for the matcher CLI.
// Values are populated by Load from environment variables; command-line flags
// override them.
type Config struct {
	// DataFile is the YAML dataset to load. Empty means the bundled sample data.
	DataFile string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// LogFormat selects the log handler: "text" (default) or "json".
	LogFormat string

	// ResultLimit is the default number of results per page. Defaults to 20,
	// capped at MaxResultLimit.
	ResultLimit int

	// ActiveTags overrides the dataset's active tags when set.
	// Set MATCHER_ACTIVE_TAGS to a comma-separated list.
	ActiveTags []string
}

// Load reads configuration from environment variables and returns a Config.
// Returns a single error naming every variable with an invalid value.
func Load() (Config, error) {
	cfg := Config{
		DataFile:   os.Getenv("MATCHER_DATA_FILE"),
		LogLevel:   strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:  strings.ToLower(getEnv("LOG_FORMAT", "text")),
		ActiveTags: splitCSV(os.Getenv("MATCHER_ACTIVE_TAGS")),
	}

	var invalid []string

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		invalid = append(invalid, "LOG_LEVEL")
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		invalid = append(invalid, "LOG_FORMAT")
	}

	limit, err := strconv.Atoi(getEnv("MATCHER_RESULT_LIMIT", "20"))
	if err != nil || limit < 1 {
		invalid = append(invalid, "MATCHER_RESULT_LIMIT")
	}
	cfg.ResultLimit = min(limit, MaxResultLimit)

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
