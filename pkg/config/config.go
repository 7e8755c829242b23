// Package config loads the control-plane configuration: defaults first, an
// optional YAML file on top, environment variables last. The environment
// names are the flat legacy ones (HOST, PORT, SECRET, DBG, ...) so existing
// deployments keep working.
package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/gswatch/watcher-control/pkg/logging"
)

// Config represents the application configuration
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Auth         AuthConfig         `yaml:"auth"`
	Watcher      WatcherConfig      `yaml:"watcher"`
	UI           UIConfig           `yaml:"ui"`
	Integrations IntegrationsConfig `yaml:"integrations"`
	Logging      logging.Config     `yaml:"logging"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host string `yaml:"host" envconfig:"HOST"`
	Port int    `yaml:"port" envconfig:"PORT"`
}

// AuthConfig contains the shared secret scheme configuration.
type AuthConfig struct {
	// Secret is the process-wide shared secret. An empty secret disables
	// the web UI and the whole protected API surface.
	Secret string `yaml:"secret" envconfig:"SECRET"`
	// Debug enables verbose logging and pretty-printed JSON responses.
	Debug bool `yaml:"debug" envconfig:"DBG"`
}

// WatcherConfig selects and configures the watcher implementation.
type WatcherConfig struct {
	// Type is the watcher transport: "http" for a running watcher process,
	// "local" for a file-backed development stand-in.
	Type string `yaml:"type" envconfig:"WATCHER_TYPE"`
	// URL is the watcher admin socket base URL (http type).
	URL string `yaml:"url" envconfig:"WATCHER_URL"`
	// Path is the config file location (local type).
	Path string `yaml:"path" envconfig:"WATCHER_CONFIG_PATH"`
	// TimeoutSeconds bounds each admin call (http type).
	TimeoutSeconds int `yaml:"timeout" envconfig:"WATCHER_TIMEOUT"`
}

// UIConfig contains static asset serving configuration.
type UIConfig struct {
	// Dir is the directory the companion UI is served from.
	Dir string `yaml:"dir" envconfig:"UI_DIR"`
}

// IntegrationsConfig carries the downstream integration secrets. Only their
// presence is ever reported; the values belong to the watcher.
type IntegrationsConfig struct {
	SteamWebAPIKey   string `yaml:"steam_web_api_key" envconfig:"STEAM_WEB_API_KEY"`
	DiscordBotToken  string `yaml:"discord_bot_token" envconfig:"DISCORD_BOT_TOKEN"`
	TelegramBotToken string `yaml:"telegram_bot_token" envconfig:"TELEGRAM_BOT_TOKEN"`
	SlackBotToken    string `yaml:"slack_bot_token" envconfig:"SLACK_BOT_TOKEN"`
}

// Load loads configuration from file and environment variables
func Load(configFile string) (*Config, error) {
	cfg := defaultConfig()

	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			// File doesn't exist, that's ok - we'll use defaults and env vars
		} else {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	// Environment variables win over the file.
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns a Config with sensible default values
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Watcher: WatcherConfig{
			Type:           "http",
			URL:            "http://127.0.0.1:8171",
			Path:           "watcher-config.json",
			TimeoutSeconds: 30,
		},
		UI: UIConfig{
			Dir: "public",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Watcher.Type {
	case "http":
		if c.Watcher.URL == "" {
			return fmt.Errorf("watcher url is required when using http watcher")
		}
	case "local":
		if c.Watcher.Path == "" {
			return fmt.Errorf("watcher config path is required when using local watcher")
		}
	default:
		return fmt.Errorf("invalid watcher type: %s (must be http or local)", c.Watcher.Type)
	}

	return nil
}

// Address returns the server address
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
