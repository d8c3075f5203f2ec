package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/currhub/currhub/internal/curriculum"
	"github.com/currhub/currhub/internal/db"
	"github.com/currhub/currhub/internal/server"
	"github.com/currhub/currhub/internal/theme"
)

var (
	servePort int
	serveOpen bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the CurrHub web client",
	Long:  `Starts the HTTP server with the curriculum generator, its htmx fragments, the chat websocket and static assets.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}

		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync()

		// Open preferences database.
		database, err := db.Open(cfg.DBPath())
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		client, err := createBackendClient(cfg, logger)
		if err != nil {
			return fmt.Errorf("creating backend client: %w", err)
		}
		responder, err := createResponder(cfg, client, logger)
		if err != nil {
			return err
		}

		srv := server.New(server.Config{
			Port:           cfg.Server.Port,
			AllowedOrigins: cfg.Server.AllowedOrigins,
			AllowAll:       cfg.Server.AllowAll,
			CSRF:           cfg.Server.CSRF,
			RequestTimeout: cfg.Server.RequestTimeout,
			ViewTTL:        cfg.Server.ViewTTL,
			Version:        Version,
		}, server.Deps{
			Backend:   client,
			Responder: responder,
			Themes:    theme.NewSQLStore(database),
			Catalog:   curriculum.DefaultCatalog(),
			Logger:    logger,
		})

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Info("starting currhub",
			zap.String("backend", cfg.Backend.BaseURL),
			zap.String("chat_provider", string(cfg.Chat.Provider)),
			zap.String("database", database.Path()),
		)
		if serveOpen {
			go openBrowser(fmt.Sprintf("http://localhost:%d/generate", cfg.Server.Port))
		}

		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on (overrides server.port)")
	serveCmd.Flags().BoolVar(&serveOpen, "open", false, "Open the generator in the default browser")
	rootCmd.AddCommand(serveCmd)
}
