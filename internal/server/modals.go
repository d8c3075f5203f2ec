package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/currhub/currhub/internal/modal"
	"github.com/currhub/currhub/internal/ui"
)

func (s *Server) modalID(w http.ResponseWriter, r *http.Request) (modal.ID, bool) {
	id, err := modal.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return "", false
	}
	return id, true
}

func (s *Server) handleModalClose(w http.ResponseWriter, r *http.Request) {
	id, ok := s.modalID(w, r)
	if !ok {
		return
	}
	viewFrom(r).CloseModal(id)
	s.render(w, r, ui.ClosedModal(id))
}

// handleModalClick closes a modal only when the click landed on its backdrop.
func (s *Server) handleModalClick(w http.ResponseWriter, r *http.Request) {
	id, ok := s.modalID(w, r)
	if !ok {
		return
	}
	if !viewFrom(r).ClickModal(id, r.URL.Query().Get("on") == "backdrop") {
		discard(w)
		return
	}
	s.render(w, r, ui.ClosedModal(id))
}

func (s *Server) handleTabSwitch(w http.ResponseWriter, r *http.Request) {
	v := viewFrom(r)
	if err := v.SwitchTab(modal.Tab(chi.URLParam(r, "tab"))); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	b := v.Bundle()
	if b == nil {
		discard(w)
		return
	}
	s.render(w, r, ui.ResourcesContent(b, v.ActiveTab()))
}
