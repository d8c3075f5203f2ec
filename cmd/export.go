package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/currhub/currhub/internal/config"
	"github.com/currhub/currhub/internal/export"
	"github.com/currhub/currhub/internal/logging"
	"github.com/currhub/currhub/internal/progress"
	"github.com/currhub/currhub/internal/theme"
)

var (
	exportOut         string
	exportExclude     []string
	exportConcurrency int
	exportDark        bool
)

var exportCmd = &cobra.Command{
	Use:   "export <glob>...",
	Short: "Export curriculum documents as flowcharts and standalone pages",
	Long: `Compiles every curriculum JSON file matching the given globs (** is supported)
into <name>.mmd (Mermaid flowchart) and <name>.html (printable preview page)
in the output directory.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		logger, err := newLogger(cfg)
		if err != nil {
			logger, _ = logging.New("info", "console")
		}
		defer logger.Sync()

		files, err := export.Expand(args, exportExclude)
		if err != nil {
			return err
		}

		th := theme.Light
		if exportDark {
			th = theme.Dark
		}

		results, err := export.Run(cmd.Context(), files, export.Options{
			OutDir:      exportOut,
			Concurrency: exportConcurrency,
			Theme:       th,
			Reporter:    progress.NewReporter(os.Stderr),
			Logger:      logger,
		})
		if err != nil {
			return err
		}

		courses := 0
		for _, r := range results {
			courses += r.Courses
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d curricula (%d courses) to %s\n", len(results), courses, exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "currhub-export", "Output directory")
	exportCmd.Flags().StringSliceVar(&exportExclude, "exclude", nil, "Glob patterns to skip")
	exportCmd.Flags().IntVarP(&exportConcurrency, "concurrency", "j", 4, "Files processed in parallel")
	exportCmd.Flags().BoolVar(&exportDark, "dark", false, "Render pages with the dark theme")
	rootCmd.AddCommand(exportCmd)
}
