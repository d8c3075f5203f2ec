package config

import "time"

// ChatProvider selects what answers the assistant.
type ChatProvider string

const (
	// ChatBackend forwards messages to the curriculum service /chat endpoint.
	ChatBackend    ChatProvider = "backend"
	ChatOpenAI     ChatProvider = "openai"
	ChatOpenRouter ChatProvider = "openrouter"
)

// Config is the top-level currhub configuration, corresponding to .currhub.yml.
type Config struct {
	Server  ServerConfig  `yaml:"server" koanf:"server"`
	Backend BackendConfig `yaml:"backend" koanf:"backend"`
	Chat    ChatConfig    `yaml:"chat" koanf:"chat"`
	Storage StorageConfig `yaml:"storage" koanf:"storage"`
	Log     LogConfig     `yaml:"log" koanf:"log"`
}

// ServerConfig holds HTTP settings.
type ServerConfig struct {
	Port           int           `yaml:"port" koanf:"port"`
	AllowedOrigins []string      `yaml:"allowed_origins" koanf:"allowed_origins"`
	AllowAll       bool          `yaml:"allow_all" koanf:"allow_all"`
	CSRF           bool          `yaml:"csrf" koanf:"csrf"`
	ViewTTL        time.Duration `yaml:"view_ttl" koanf:"view_ttl"`
	RequestTimeout time.Duration `yaml:"request_timeout" koanf:"request_timeout"`
}

// BackendConfig points at the curriculum generation service.
type BackendConfig struct {
	BaseURL  string        `yaml:"base_url" koanf:"base_url"`
	Timeout  time.Duration `yaml:"timeout" koanf:"timeout"`
	RetryMax int           `yaml:"retry_max" koanf:"retry_max"`
}

// ChatConfig configures the assistant.
type ChatConfig struct {
	Provider    ChatProvider `yaml:"provider" koanf:"provider"`
	Model       string       `yaml:"model" koanf:"model"`
	MaxTokens   int          `yaml:"max_tokens" koanf:"max_tokens"`
	Temperature float32      `yaml:"temperature" koanf:"temperature"`
	// RPM caps LLM requests per minute. Zero means unlimited.
	RPM int `yaml:"rpm" koanf:"rpm"`
}

// StorageConfig holds local persistence settings.
type StorageConfig struct {
	DataDir string `yaml:"data_dir" koanf:"data_dir"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level" koanf:"level"`
	Format string `yaml:"format" koanf:"format"`
}
