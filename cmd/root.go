package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/currhub/currhub/internal/config"
	"github.com/currhub/currhub/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "currhub",
	Short: "Web client for AI-assisted curriculum design",
	Long: `CurrHub serves the curriculum generator: a program form, a live preview of
the generated curriculum with per-course syllabus and resource lookups, a
semester flowchart and the CurrBot assistant. Generation itself is done by
the curriculum service configured under backend.base_url.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// newLogger builds the logger for a command. --verbose forces debug level.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	return logging.New(level, cfg.Log.Format)
}
