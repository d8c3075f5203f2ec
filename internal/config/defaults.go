package config

import (
	"path/filepath"
	"time"
)

// DefaultPath is the config file read when --config is not given.
const DefaultPath = ".currhub.yml"

// defaultModels maps each LLM chat provider to the model used when none is set.
var defaultModels = map[ChatProvider]string{
	ChatOpenAI:     "gpt-4o-mini",
	ChatOpenRouter: "openai/gpt-4o-mini",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:    8080,
			CSRF:    true,
			ViewTTL: 2 * time.Hour,
		},
		Backend: BackendConfig{
			BaseURL: "http://localhost:5000",
		},
		Chat: ChatConfig{
			Provider:    ChatBackend,
			Model:       defaultModels[ChatOpenRouter],
			MaxTokens:   500,
			Temperature: 0.7,
		},
		Storage: StorageConfig{
			DataDir: ".currhub",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// DefaultModel returns the model used for a provider when none is configured.
// It returns "" for the backend provider.
func DefaultModel(p ChatProvider) string {
	return defaultModels[p]
}

// DBPath returns the path of the preferences database.
func (c *Config) DBPath() string {
	return filepath.Join(c.Storage.DataDir, "currhub.db")
}
