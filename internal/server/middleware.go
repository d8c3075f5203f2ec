package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"github.com/currhub/currhub/internal/state"
)

const (
	viewHeader    = "X-View-ID"
	viewQuery     = "view"
	visitorCookie = "currhub_visitor"
	themeCookie   = "currhub_theme"
)

type ctxKey int

const (
	visitorKey ctxKey = iota
	viewKey
)

// requestLogger logs one line per request with zap.
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				logger.Debug("request",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("took", time.Since(start)),
					zap.String("request_id", middleware.GetReqID(r.Context())),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

// visitor makes sure every browser carries a stable visitor id. Preferences
// are keyed by it.
func (s *Server) visitor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if c, err := r.Cookie(visitorCookie); err == nil {
			if _, perr := uuid.Parse(c.Value); perr == nil {
				id = c.Value
			}
		}
		if id == "" {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     visitorCookie,
				Value:    id,
				Path:     "/",
				MaxAge:   int((365 * 24 * time.Hour).Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		ctx := context.WithValue(r.Context(), visitorKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func visitorID(r *http.Request) string {
	id, _ := r.Context().Value(visitorKey).(string)
	return id
}

// requireView resolves the page view a fragment request belongs to. A
// request for a view that no longer exists asks htmx to reload the page.
func (s *Server) requireView(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(viewHeader)
		if id == "" {
			id = r.URL.Query().Get(viewQuery)
		}
		v, err := s.views.Get(id)
		if err != nil {
			if errors.Is(err, state.ErrViewNotFound) {
				w.Header().Set("HX-Refresh", "true")
				http.Error(w, "page expired, reload to continue", http.StatusGone)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		ctx := context.WithValue(r.Context(), viewKey, v)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func viewFrom(r *http.Request) *state.View {
	v, _ := r.Context().Value(viewKey).(*state.View)
	return v
}

// render writes a gomponents tree as HTML.
func (s *Server) render(w http.ResponseWriter, r *http.Request, node g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := node.Render(w); err != nil {
		s.logger.Warn("render failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
}

// discard tells htmx to leave the page untouched. It answers requests whose
// result was superseded by a newer one.
func discard(w http.ResponseWriter) {
	w.Header().Set("HX-Reswap", "none")
	w.WriteHeader(http.StatusNoContent)
}

func downloadHeaders(w http.ResponseWriter, filename string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
}
