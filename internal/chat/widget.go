// Package chat implements the assistant panel: an ordered transcript of
// turns and the send flow that waits for a reply.
package chat

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

const (
	// WelcomeMessage opens every new transcript.
	WelcomeMessage = "👋 Hi! I'm CurrBot, your curriculum assistant. How can I help you today?"
	// FallbackMessage replaces a reply that could not be obtained.
	FallbackMessage = "Sorry, I encountered an error. Please try again."
)

// Responder produces the assistant's reply to one message.
type Responder interface {
	Reply(ctx context.Context, message string) (string, error)
}

// ResponderFunc adapts a function to Responder.
type ResponderFunc func(ctx context.Context, message string) (string, error)

func (f ResponderFunc) Reply(ctx context.Context, message string) (string, error) {
	return f(ctx, message)
}

// EventType is the kind of transcript change.
type EventType string

const (
	EventAppend EventType = "append"
	EventRemove EventType = "remove"
)

// Event describes one transcript change so a transport can mirror it.
type Event struct {
	Type EventType
	Turn Turn
}

// Widget runs the send flow against a Responder.
type Widget struct {
	responder Responder
	logger    *zap.Logger
}

// NewWidget creates a Widget.
func NewWidget(r Responder, logger *zap.Logger) *Widget {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Widget{responder: r, logger: logger}
}

// Start seeds an empty transcript with the welcome turn.
func (w *Widget) Start(t *Transcript) {
	if t.Len() == 0 {
		t.AppendBot(WelcomeMessage)
	}
}

// Send submits one message. Surrounding whitespace is trimmed and an empty
// message does nothing. The user turn and a typing placeholder are appended,
// the responder is awaited, the placeholder is removed and the reply (or the
// fallback text) is appended. Responder failures are logged and never
// returned. emit, if non-nil, sees every change in order. Send reports whether
// anything was sent.
func (w *Widget) Send(ctx context.Context, t *Transcript, message string, emit func(Event)) bool {
	message = strings.TrimSpace(message)
	if message == "" {
		return false
	}
	if emit == nil {
		emit = func(Event) {}
	}

	emit(Event{Type: EventAppend, Turn: t.AppendUser(message)})

	typing := t.BeginTyping()
	emit(Event{Type: EventAppend, Turn: typing})

	reply, err := w.responder.Reply(ctx, message)

	t.RemoveTyping(typing.ID)
	emit(Event{Type: EventRemove, Turn: typing})

	if err != nil {
		w.logger.Warn("chat reply failed", zap.String("surface", "chat"), zap.Error(err))
		reply = FallbackMessage
	}
	emit(Event{Type: EventAppend, Turn: t.AppendBot(reply)})
	return true
}

// ShouldSubmit reports whether a key press in the input submits the message.
// Enter submits; Shift+Enter inserts a line break.
func ShouldSubmit(key string, shift bool) bool {
	return key == "Enter" && !shift
}
