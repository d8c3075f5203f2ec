package chat

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Sender identifies who wrote a turn.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Turn is one entry of a transcript. A typing turn is a placeholder shown
// while a reply is pending; it is always removed again.
type Turn struct {
	ID     string
	Sender Sender
	Text   string
	Typing bool
	At     time.Time
}

// Transcript is the ordered list of chat turns of one page. It is safe for
// concurrent use so a reply can be awaited without holding a lock.
type Transcript struct {
	mu    sync.Mutex
	turns []Turn
}

// NewTranscript creates an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{}
}

// AppendUser adds a user turn.
func (t *Transcript) AppendUser(text string) Turn {
	return t.append(Turn{ID: "msg-" + uuid.NewString(), Sender: SenderUser, Text: text})
}

// AppendBot adds a bot turn.
func (t *Transcript) AppendBot(text string) Turn {
	return t.append(Turn{ID: "msg-" + uuid.NewString(), Sender: SenderBot, Text: text})
}

// BeginTyping adds a typing placeholder and returns it. Its ID is unique
// within the transcript so concurrent sends remove only their own.
func (t *Transcript) BeginTyping() Turn {
	return t.append(Turn{ID: "typing-" + uuid.NewString(), Sender: SenderBot, Typing: true})
}

// RemoveTyping removes the typing placeholder with the given id. It reports
// whether a placeholder was removed; ids of ordinary turns are ignored.
func (t *Transcript) RemoveTyping(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, turn := range t.turns {
		if turn.ID == id && turn.Typing {
			t.turns = append(t.turns[:i], t.turns[i+1:]...)
			return true
		}
	}
	return false
}

// Turns returns a copy of the turns in order.
func (t *Transcript) Turns() []Turn {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Turn, len(t.turns))
	copy(out, t.turns)
	return out
}

// Turn looks up a turn by id.
func (t *Transcript) Turn(id string) (Turn, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, turn := range t.turns {
		if turn.ID == id {
			return turn, true
		}
	}
	return Turn{}, false
}

// Len returns the number of turns.
func (t *Transcript) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.turns)
}

func (t *Transcript) append(turn Turn) Turn {
	turn.At = time.Now()
	t.mu.Lock()
	t.turns = append(t.turns, turn)
	t.mu.Unlock()
	return turn
}
