package server

import (
	"net/http"

	"github.com/justinas/nosurf"
	"go.uber.org/zap"

	"github.com/currhub/currhub/internal/theme"
	"github.com/currhub/currhub/internal/ui"
)

func (s *Server) pageData(r *http.Request, title string) ui.PageData {
	p := ui.PageData{
		Title: title,
		Path:  r.URL.Path,
		Theme: s.currentTheme(r),
	}
	if s.cfg.CSRF {
		p.CSRFToken = nosurf.Token(r)
	}
	return p
}

// currentTheme prefers the cookie mirror and only asks the store when the
// cookie is missing, e.g. on a new browser for a known visitor.
func (s *Server) currentTheme(r *http.Request) theme.Theme {
	if c, err := r.Cookie(themeCookie); err == nil {
		return theme.Parse(c.Value)
	}
	th, err := s.themes.Get(r.Context(), visitorID(r))
	if err != nil {
		s.logger.Warn("theme lookup failed", zap.Error(err))
		return theme.Light
	}
	return th
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, ui.Page(s.pageData(r, ""), ui.HomeContent()))
}

// handleGeneratePage starts a fresh view. Every load of the page gets its own
// state, so a reload starts over.
func (s *Server) handleGeneratePage(w http.ResponseWriter, r *http.Request) {
	v := s.views.Create(visitorID(r))
	p := s.pageData(r, "Generate")
	p.ViewID = v.ID
	s.render(w, r, ui.Page(p, ui.GenerateContent(s.catalog, v.ID, v.Transcript().Turns())))
}

func (s *Server) handleMarkdownPage(name, title, path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		content, err := ui.MarkdownContent(name)
		if err != nil {
			s.logger.Error("markdown page", zap.String("page", name), zap.Error(err))
			http.Error(w, "page unavailable", http.StatusInternalServerError)
			return
		}
		p := s.pageData(r, title)
		p.Path = path
		s.render(w, r, ui.Page(p, content))
	}
}

// handleDomains answers the program type select with the matching domain
// options.
func (s *Server) handleDomains(w http.ResponseWriter, r *http.Request) {
	opts, enabled := s.catalog.Domains(r.URL.Query().Get("program_type"))
	s.render(w, r, ui.DomainSelect(opts, enabled))
}

// handleThemeToggle flips and persists the theme and returns the new toggle
// button. The themeChanged event lets the page update its root attribute.
func (s *Server) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	next := s.currentTheme(r).Toggle()
	if err := s.themes.Set(r.Context(), visitorID(r), next); err != nil {
		s.logger.Warn("theme save failed", zap.Error(err))
	}
	http.SetCookie(w, &http.Cookie{
		Name:     themeCookie,
		Value:    next.String(),
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		SameSite: http.SameSiteLaxMode,
	})
	w.Header().Set("HX-Trigger", `{"themeChanged":{"theme":"`+next.String()+`"}}`)
	s.render(w, r, ui.ThemeToggle(next))
}
