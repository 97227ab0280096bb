package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DefaultAPIURL   = "http://127.0.0.1:8080"
	DefaultLogLevel = "info"
	DefaultDBName   = ".vink.db"

	configFileName = ".vink.toml"

	configDirEnvKey = "VINK_CONFIG_DIR"
	apiURLEnvKey    = "VINK_API_URL"
	webOriginEnvKey = "VINK_WEB_ORIGIN"
)

// RenderConfig controls the terminal presentation of fetched shares.
type RenderConfig struct {
	Theme string `toml:"theme"`
}

// ClipboardConfig controls the copy-strategy chain.
type ClipboardConfig struct {
	OSC52 bool `toml:"osc52"`
}

// Config defines runtime configuration for vink.
type Config struct {
	APIURL        string          `toml:"api_url"`
	WebOrigin     string          `toml:"web_origin"`
	HistoryDBPath string          `toml:"history_db_path"`
	LogLevel      string          `toml:"log_level"`
	Render        RenderConfig    `toml:"render"`
	Clipboard     ClipboardConfig `toml:"clipboard"`
}

// Default returns default configuration values.
func Default() Config {
	return Config{
		APIURL:    DefaultAPIURL,
		Clipboard: ClipboardConfig{OSC52: true},
	}
}

// Origin is the base the share URL is built on: the configured web origin
// when set, otherwise the scheme and host of the API URL.
func (c *Config) Origin() string {
	if c.WebOrigin != "" {
		return strings.TrimRight(c.WebOrigin, "/")
	}
	parsed, err := url.Parse(c.APIURL)
	if err != nil || parsed.Host == "" {
		return strings.TrimRight(c.APIURL, "/")
	}
	return parsed.Scheme + "://" + parsed.Host
}

// HistoryPath resolves the local history database location, defaulting to
// DefaultDBName in the user's home directory.
func (c *Config) HistoryPath() (string, error) {
	if c.HistoryDBPath != "" {
		return c.HistoryDBPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDBName), nil
}

// Load reads config files and applies env overrides. File precedence is the
// override dir (when set), then the home file, then the project file; later
// files win, env wins over all of them.
func Load() (*Config, error) {
	cfg := Default()

	if overridePath, ok := overrideConfigPath(); ok {
		if err := loadFile(overridePath, &cfg); err != nil {
			return nil, err
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			if err := loadFile(filepath.Join(home, configFileName), &cfg); err != nil {
				return nil, err
			}
		}
		if cwd, err := os.Getwd(); err == nil {
			if err := loadFile(filepath.Join(cwd, configFileName), &cfg); err != nil {
				return nil, err
			}
		}
	}

	if value := strings.TrimSpace(os.Getenv(apiURLEnvKey)); value != "" {
		cfg.APIURL = value
	}
	if value := strings.TrimSpace(os.Getenv(webOriginEnvKey)); value != "" {
		cfg.WebOrigin = value
	}

	return &cfg, nil
}

func loadFile(path string, cfg *Config) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if info.IsDir() {
		return nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

func overrideConfigPath() (string, bool) {
	dir := strings.TrimSpace(os.Getenv(configDirEnvKey))
	if dir == "" {
		return "", false
	}
	return filepath.Join(dir, configFileName), true
}

var allowedKeys = []string{
	"api_url",
	"web_origin",
	"history_db_path",
	"log_level",
	"render.theme",
	"clipboard.osc52",
}

// AllowedKeys returns the set of valid config keys.
func AllowedKeys() []string {
	return allowedKeys
}

// IsAllowedKey checks if a key is a valid config key.
func IsAllowedKey(key string) bool {
	for _, k := range allowedKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Get returns the value of a config key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "api_url":
		return c.APIURL, nil
	case "web_origin":
		return c.WebOrigin, nil
	case "history_db_path":
		return c.HistoryDBPath, nil
	case "log_level":
		return c.LogLevel, nil
	case "render.theme":
		return c.Render.Theme, nil
	case "clipboard.osc52":
		return strconv.FormatBool(c.Clipboard.OSC52), nil
	default:
		return "", fmt.Errorf("unknown key: %s", key)
	}
}

// GlobalPath returns the path to the global config file.
func GlobalPath() (string, error) {
	if path, ok := overrideConfigPath(); ok {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configFileName), nil
}

// ProjectPath returns the path to the project config file.
func ProjectPath() (string, error) {
	if path, ok := overrideConfigPath(); ok {
		return path, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, configFileName), nil
}

// SetKey reads the TOML file at path, sets key=value, and writes it back.
func SetKey(path, key, value string) error {
	if !IsAllowedKey(key) {
		return fmt.Errorf("unknown key: %s", key)
	}

	data := make(map[string]any)
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &data); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	}

	parsedValue, err := parseSetValue(key, value)
	if err != nil {
		return err
	}
	if err := setNestedKey(data, strings.Split(key, "."), parsedValue); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(data)
}

func parseSetValue(key, value string) (any, error) {
	switch key {
	case "clipboard.osc52":
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("%s expects true or false", key)
		}
		return parsed, nil
	default:
		return value, nil
	}
}

func setNestedKey(data map[string]any, parts []string, value any) error {
	if len(parts) == 1 {
		data[parts[0]] = value
		return nil
	}

	child, ok := data[parts[0]]
	if !ok {
		child = make(map[string]any)
		data[parts[0]] = child
	}
	childMap, ok := child.(map[string]any)
	if !ok {
		return fmt.Errorf("config key %s conflicts with an existing value", strings.Join(parts, "."))
	}
	return setNestedKey(childMap, parts[1:], value)
}
