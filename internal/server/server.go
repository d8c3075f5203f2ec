package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/justinas/nosurf"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/currhub/currhub/internal/backend"
	"github.com/currhub/currhub/internal/chat"
	"github.com/currhub/currhub/internal/curriculum"
	"github.com/currhub/currhub/internal/state"
	"github.com/currhub/currhub/internal/theme"
)

// Config holds server configuration.
type Config struct {
	Port           int
	AllowedOrigins []string
	AllowAll       bool // allow all CORS origins (dev mode)
	CSRF           bool
	// RequestTimeout cancels handlers that run longer. Zero means no limit,
	// so slow backend calls are waited for.
	RequestTimeout time.Duration
	ViewTTL        time.Duration
	Version        string
}

// Backend is the part of the curriculum service the pages call.
type Backend interface {
	Generate(ctx context.Context, req curriculum.GenerateRequest) (*curriculum.Document, error)
	Syllabus(ctx context.Context, req backend.SyllabusRequest) (string, error)
	Resources(ctx context.Context, req backend.ResourcesRequest) (*curriculum.ResourceBundle, error)
}

// Deps are the collaborators of a Server.
type Deps struct {
	Backend   Backend
	Responder chat.Responder
	Themes    theme.Store
	Catalog   *curriculum.Catalog
	Logger    *zap.Logger
}

// Server serves the CurrHub pages and fragments.
type Server struct {
	cfg        Config
	backend    Backend
	widget     *chat.Widget
	themes     theme.Store
	catalog    *curriculum.Catalog
	views      *state.Manager
	logger     *zap.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server with all dependencies.
func New(cfg Config, deps Deps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if deps.Catalog == nil {
		deps.Catalog = curriculum.DefaultCatalog()
	}
	if deps.Themes == nil {
		deps.Themes = theme.NewMemoryStore()
	}

	s := &Server{
		cfg:     cfg,
		backend: deps.Backend,
		widget:  chat.NewWidget(deps.Responder, logger),
		themes:  deps.Themes,
		catalog: deps.Catalog,
		logger:  logger,
	}
	s.views = state.NewManager(
		state.WithTTL(cfg.ViewTTL),
		state.WithLogger(logger),
		state.WithOnCreate(func(v *state.View) { s.widget.Start(v.Transcript()) }),
	)

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	if s.cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(s.cfg.RequestTimeout))
	}

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{
			"Accept", "Content-Type", "X-CSRF-Token", viewHeader,
			"HX-Request", "HX-Current-URL", "HX-Target", "HX-Trigger", "HX-Trigger-Name",
		},
		ExposedHeaders:   []string{"HX-Trigger", "HX-Reswap", "HX-Retarget", "HX-Refresh"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if len(s.cfg.AllowedOrigins) > 0 {
		corsOpts.AllowedOrigins = s.cfg.AllowedOrigins
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))
	r.Use(s.visitor)

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Handle("/static/*", staticHandler())

	// Full pages.
	r.Get("/", s.handleHome)
	r.Get("/generate", s.handleGeneratePage)
	r.Get("/about", s.handleMarkdownPage("about", "About", "/about"))
	r.Get("/contact", s.handleMarkdownPage("contact", "Contact", "/contact"))

	// Fragments that need no page state.
	r.Get("/domains", s.handleDomains)
	r.Post("/theme/toggle", s.handleThemeToggle)

	// Fragments bound to a view.
	r.Group(func(r chi.Router) {
		r.Use(s.requireView)

		r.Post("/generate", s.handleGenerate)

		r.Post("/flowchart", s.handleFlowchart)
		r.Get("/flowchart.mmd", s.handleFlowchartDownload)

		r.Post("/syllabus", s.handleSyllabusOpen)
		r.Post("/syllabus/content", s.handleSyllabusContent)
		r.Get("/syllabus/download", s.handleSyllabusDownload)

		r.Post("/resources", s.handleResourcesOpen)
		r.Post("/resources/content", s.handleResourcesContent)

		r.Post("/modals/{id}/close", s.handleModalClose)
		r.Post("/modals/{id}/click", s.handleModalClick)
		r.Post("/modals/resources/tabs/{tab}", s.handleTabSwitch)

		r.Post("/chat", s.handleChat)
		r.Get("/chat/turns/{id}/download", s.handleChatDownload)
		r.Get("/ws/chat", s.handleChatWebSocket)
	})

	return r
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Views returns the view manager.
func (s *Server) Views() *state.Manager { return s.views }

// Handler returns the root handler, with CSRF protection when enabled.
func (s *Server) Handler() http.Handler {
	if !s.cfg.CSRF {
		return s.router
	}
	h := nosurf.New(s.router)
	h.SetBaseCookie(http.Cookie{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	h.SetFailureHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.logger.Warn("csrf check failed",
			zap.String("path", r.URL.Path),
			zap.NamedError("reason", nosurf.Reason(r)),
		)
		http.Error(w, "invalid CSRF token", http.StatusBadRequest)
	}))
	return h
}

// Start begins listening on the configured port.
func (s *Server) Start() error {
	if s.httpServer == nil {
		s.httpServer = s.newHTTPServer()
	}
	s.logger.Info("currhub server listening", zap.String("addr", s.httpServer.Addr), zap.String("version", s.cfg.Version))
	return s.httpServer.ListenAndServe()
}

func (s *Server) newHTTPServer() *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// Run serves until ctx is cancelled, sweeping idle views in the background,
// then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = s.newHTTPServer()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.views.Run(ctx, 0)
		return nil
	})
	g.Go(func() error {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
