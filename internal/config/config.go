// Package config resolves the agent's settings from defaults, an optional
// souschef.yaml, a .env file and the environment, in increasing priority.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// ErrMissingAPIKey is returned by Load when no model credential is configured.
// It is the only fatal startup error.
var ErrMissingAPIKey = errors.New("ANTHROPIC_API_KEY environment variable not set; please provide a valid API key")

const (
	envPrefix      = "SOUSCHEF"
	apiKeyEnv      = "ANTHROPIC_API_KEY"
	calendarSubdir = "sous_chef_calendars"
)

type Config struct {
	APIKey        string `mapstructure:"api_key"`
	Model         string `mapstructure:"model"`
	MaxTokens     int64  `mapstructure:"max_tokens"`
	UserID        string `mapstructure:"user_id"`
	MemoryFile    string `mapstructure:"memory_file"`
	CalendarDir   string `mapstructure:"calendar_dir"`
	HistoryBudget int    `mapstructure:"history_budget"`
	LogLevel      string `mapstructure:"log_level"`
	LogHandler    string `mapstructure:"log_handler"`
	ObserveJSON   bool   `mapstructure:"observe_json"`
	EventsFile    string `mapstructure:"events_file"`
}

// Options tweak where Load looks. The zero value is what the CLI uses.
type Options struct {
	// DotEnvPath overrides ".env" in the working directory.
	DotEnvPath string
	// ConfigDirs overrides the souschef.yaml search path.
	ConfigDirs []string
}

func defaults() map[string]any {
	return map[string]any{
		"api_key":        "",
		"model":          "claude-3-7-sonnet-latest",
		"max_tokens":     2048,
		"user_id":        "cli_user",
		"memory_file":    "memory_bank.json",
		"calendar_dir":   filepath.Join(os.TempDir(), calendarSubdir),
		"history_budget": 0,
		"log_level":      "info",
		"log_handler":    "text",
		"observe_json":   false,
		"events_file":    filepath.Join(".souschef", "events.jsonl"),
	}
}

func configDirs() []string {
	dirs := []string{"."}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, "souschef"))
	} else if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "souschef"))
	}
	return dirs
}

// Load resolves the configuration. A missing API key yields an error wrapping
// ErrMissingAPIKey.
func Load(opts Options) (*Config, error) {
	dotenv := opts.DotEnvPath
	if dotenv == "" {
		dotenv = ".env"
	}
	if _, err := os.Stat(dotenv); err == nil {
		// does not override variables already set in the environment
		if err := godotenv.Load(dotenv); err != nil {
			return nil, errors.Wrapf(err, "failed to load %s", dotenv)
		}
	}

	v := viper.New()
	for k, val := range defaults() {
		v.SetDefault(k, val)
	}

	v.SetConfigName("souschef")
	v.SetConfigType("yaml")
	dirs := opts.ConfigDirs
	if dirs == nil {
		dirs = configDirs()
	}
	for _, d := range dirs {
		v.AddConfigPath(d)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("api_key", envPrefix+"_API_KEY", apiKeyEnv); err != nil {
		return nil, errors.Wrap(err, "failed to bind api key env")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "failed to read config file")
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}

	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if cfg.APIKey == "" {
		return nil, errors.WithStack(ErrMissingAPIKey)
	}
	return cfg, nil
}
