package server

import (
	"net/http"

	"github.com/currhub/currhub/internal/ui"
)

// staticHandler serves the embedded scripts and styles under /static/.
func staticHandler() http.Handler {
	return http.StripPrefix("/static/", http.FileServer(http.FS(ui.Assets)))
}
