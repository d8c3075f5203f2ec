package server

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"github.com/currhub/currhub/internal/chat"
	"github.com/currhub/currhub/internal/state"
	"github.com/currhub/currhub/internal/ui"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// chatRequest is a message sent by the browser over the websocket.
type chatRequest struct {
	Message string `json:"message"`
}

// chatEvent is one transcript change pushed to the browser.
type chatEvent struct {
	Type string `json:"type"` // "append" or "remove"
	ID   string `json:"id"`
	HTML string `json:"html,omitempty"`
}

// handleChat sends one message and returns the user turn and the reply as
// fragments to append.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	v := viewFrom(r)
	var nodes []g.Node
	sent := s.widget.Send(r.Context(), v.Transcript(), r.PostFormValue("message"), func(e chat.Event) {
		if e.Type == chat.EventAppend && !e.Turn.Typing {
			nodes = append(nodes, ui.ChatTurn(v.ID, e.Turn))
		}
	})
	if !sent {
		discard(w)
		return
	}
	s.render(w, r, g.Group(nodes))
}

func (s *Server) handleChatDownload(w http.ResponseWriter, r *http.Request) {
	turn, ok := viewFrom(r).Transcript().Turn(chi.URLParam(r, "id"))
	if !ok || turn.Sender != chat.SenderBot || turn.Typing {
		http.Error(w, "no such response", http.StatusNotFound)
		return
	}
	downloadHeaders(w, fmt.Sprintf("currbot-response-%d.txt", time.Now().UnixMilli()))
	w.Write([]byte(turn.Text))
}

// handleChatWebSocket streams transcript changes as they happen, so the typing
// placeholder shows while a reply is pending. Messages are handled
// concurrently; each keeps its own placeholder.
func (s *Server) handleChatWebSocket(w http.ResponseWriter, r *http.Request) {
	v := viewFrom(r)
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade", zap.Error(err))
		return
	}
	defer conn.Close()

	var (
		writeMu sync.Mutex
		wg      sync.WaitGroup
	)
	defer wg.Wait()

	// Pending replies are abandoned once the socket goes away.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	send := func(e chat.Event) {
		ev, err := s.renderEvent(v, e)
		if err != nil {
			s.logger.Warn("render chat event", zap.Error(err))
			return
		}
		writeMu.Lock()
		defer writeMu.Unlock()
		if err := conn.WriteJSON(ev); err != nil {
			s.logger.Debug("websocket write", zap.Error(err))
		}
	}

	for {
		var req chatRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("websocket read", zap.Error(err))
			}
			return
		}

		wg.Add(1)
		go func(message string) {
			defer wg.Done()
			s.widget.Send(ctx, v.Transcript(), message, send)
		}(req.Message)
	}
}

func (s *Server) renderEvent(v *state.View, e chat.Event) (chatEvent, error) {
	ev := chatEvent{Type: string(e.Type), ID: e.Turn.ID}
	if e.Type != chat.EventAppend {
		return ev, nil
	}
	var buf bytes.Buffer
	if err := ui.ChatTurn(v.ID, e.Turn).Render(&buf); err != nil {
		return ev, err
	}
	ev.HTML = buf.String()
	return ev, nil
}
