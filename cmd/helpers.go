package cmd

import (
	"fmt"
	"os/exec"
	"runtime"

	"go.uber.org/zap"

	"github.com/currhub/currhub/internal/backend"
	"github.com/currhub/currhub/internal/chat"
	"github.com/currhub/currhub/internal/config"
	"github.com/currhub/currhub/internal/llm"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `currhub init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// createBackendClient creates the curriculum service client from config.
func createBackendClient(cfg *config.Config, logger *zap.Logger) (*backend.Client, error) {
	return backend.New(backend.Config{
		BaseURL:   cfg.Backend.BaseURL,
		Timeout:   cfg.Backend.Timeout,
		RetryMax:  cfg.Backend.RetryMax,
		UserAgent: "currhub/" + Version,
	}, logger)
}

// createResponder picks what answers the assistant. The backend provider
// reuses the curriculum service client; the LLM providers talk to the model
// directly, rate limited when chat.rpm is set.
func createResponder(cfg *config.Config, client *backend.Client, logger *zap.Logger) (chat.Responder, error) {
	if cfg.Chat.Provider == config.ChatBackend {
		return client, nil
	}

	provider, err := llm.NewProvider(string(cfg.Chat.Provider), cfg.Chat.Model)
	if err != nil {
		return nil, fmt.Errorf("creating chat provider: %w", err)
	}
	provider = llm.NewRateLimitedProvider(provider, cfg.Chat.RPM)

	return chat.NewLLMResponder(provider, chat.LLMOptions{
		Model:       cfg.Chat.Model,
		MaxTokens:   cfg.Chat.MaxTokens,
		Temperature: float64(cfg.Chat.Temperature),
	}, logger), nil
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
