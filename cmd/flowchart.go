package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/currhub/currhub/internal/curriculum"
	"github.com/currhub/currhub/internal/flowchart"
)

var flowchartCmd = &cobra.Command{
	Use:   "flowchart <curriculum.json|->",
	Short: "Print the Mermaid flowchart of a curriculum document",
	Long:  `Reads a curriculum document as returned by the curriculum service (or "-" for stdin) and prints its semester flowchart as Mermaid text.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			data []byte
			err  error
		)
		if args[0] == "-" {
			data, err = io.ReadAll(cmd.InOrStdin())
		} else {
			data, err = os.ReadFile(args[0])
		}
		if err != nil {
			return fmt.Errorf("reading curriculum: %w", err)
		}

		doc, err := curriculum.Parse(data)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), flowchart.Compile(doc))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(flowchartCmd)
}
