package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"vink/internal/config"
)

const logLevelEnvKey = "VINK_LOG_LEVEL"

// configureLoggerForCLI installs the process-wide slog logger. The level is
// taken from the --log-level flag, then VINK_LOG_LEVEL, then log_level in the
// config file. A bad flag value is a hard error; a bad env or config value
// falls back to the default level and returns a warning for the caller to
// print.
func configureLoggerForCLI(flagLevel, configLevel string) (string, error) {
	raw, source := "", "default"
	switch {
	case strings.TrimSpace(flagLevel) != "":
		raw, source = flagLevel, "flag"
	case strings.TrimSpace(os.Getenv(logLevelEnvKey)) != "":
		raw, source = os.Getenv(logLevelEnvKey), "env"
	case strings.TrimSpace(configLevel) != "":
		raw, source = configLevel, "config"
	}

	level, err := parseLogLevel(raw)
	if err == nil {
		installLogger(level)
		return "", nil
	}
	if source == "flag" {
		return "", fmt.Errorf("invalid --log-level %q", flagLevel)
	}

	installLogger(slog.LevelInfo)
	switch source {
	case "env":
		return fmt.Sprintf("warning: ignoring %s=%q, logging at %s", logLevelEnvKey, raw, config.DefaultLogLevel), nil
	case "config":
		return fmt.Sprintf("warning: ignoring log_level=%q, logging at %s", raw, config.DefaultLogLevel), nil
	}
	return "", nil
}

// parseLogLevel accepts the slog level names, "warning" as an alias for
// "warn", and raw numeric levels.
func parseLogLevel(raw string) (slog.Level, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return slog.LevelInfo, nil
	}
	if strings.EqualFold(value, "warning") {
		value = "warn"
	}

	if numeric, err := strconv.Atoi(value); err == nil {
		return slog.Level(numeric), nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", raw)
	}
	return level, nil
}

func installLogger(level slog.Level) {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
