package cmd

import (
	"github.com/spf13/cobra"

	"github.com/currhub/currhub/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize currhub configuration with an interactive wizard",
	Long:  `Runs an interactive wizard that asks for the curriculum service URL, the assistant provider and the port, and writes .currhub.yml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
