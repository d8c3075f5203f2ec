package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/currhub/currhub/internal/llm"
)

func TestTranscriptTyping(t *testing.T) {
	tr := NewTranscript()
	tr.AppendUser("hello")
	a := tr.BeginTyping()
	b := tr.BeginTyping()

	if a.ID == b.ID {
		t.Fatal("typing ids must be unique")
	}
	if !strings.HasPrefix(a.ID, "typing-") {
		t.Errorf("typing id = %q", a.ID)
	}

	if !tr.RemoveTyping(a.ID) {
		t.Error("expected placeholder a removed")
	}
	if tr.RemoveTyping(a.ID) {
		t.Error("second removal should report false")
	}
	if _, ok := tr.Turn(b.ID); !ok {
		t.Error("placeholder b should survive removal of a")
	}

	user := tr.Turns()[0]
	if tr.RemoveTyping(user.ID) {
		t.Error("RemoveTyping must ignore ordinary turns")
	}
	if tr.Len() != 2 {
		t.Errorf("expected 2 turns, got %d", tr.Len())
	}
}

func TestWidgetStart(t *testing.T) {
	w := NewWidget(ResponderFunc(func(context.Context, string) (string, error) { return "", nil }), nil)
	tr := NewTranscript()
	w.Start(tr)
	w.Start(tr)

	turns := tr.Turns()
	if len(turns) != 1 {
		t.Fatalf("expected a single welcome turn, got %d", len(turns))
	}
	if turns[0].Sender != SenderBot || turns[0].Text != WelcomeMessage {
		t.Errorf("unexpected welcome turn: %+v", turns[0])
	}
}

func TestWidgetSendSuccess(t *testing.T) {
	var got string
	w := NewWidget(ResponderFunc(func(_ context.Context, msg string) (string, error) {
		got = msg
		return "**Sure**", nil
	}), nil)

	tr := NewTranscript()
	var events []Event
	sent := w.Send(context.Background(), tr, "  what is a credit?  ", func(e Event) {
		events = append(events, e)
	})
	if !sent {
		t.Fatal("expected message to be sent")
	}
	if got != "what is a credit?" {
		t.Errorf("responder got %q, want trimmed message", got)
	}

	turns := tr.Turns()
	if len(turns) != 2 {
		t.Fatalf("expected user and bot turns, got %d", len(turns))
	}
	if turns[0].Sender != SenderUser || turns[1].Sender != SenderBot || turns[1].Text != "**Sure**" {
		t.Errorf("unexpected turns: %+v", turns)
	}
	for _, turn := range turns {
		if turn.Typing {
			t.Error("typing placeholder left in transcript")
		}
	}

	wantTypes := []EventType{EventAppend, EventAppend, EventRemove, EventAppend}
	if len(events) != len(wantTypes) {
		t.Fatalf("expected %d events, got %d", len(wantTypes), len(events))
	}
	for i, et := range wantTypes {
		if events[i].Type != et {
			t.Errorf("event %d = %s, want %s", i, events[i].Type, et)
		}
	}
	if events[1].Turn.ID != events[2].Turn.ID || !events[1].Turn.Typing {
		t.Error("the removed turn should be the typing placeholder")
	}
}

func TestWidgetSendFailureFallsBack(t *testing.T) {
	w := NewWidget(ResponderFunc(func(context.Context, string) (string, error) {
		return "", errors.New("connection refused")
	}), nil)

	tr := NewTranscript()
	if !w.Send(context.Background(), tr, "hi", nil) {
		t.Fatal("expected message to be sent")
	}
	turns := tr.Turns()
	if len(turns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(turns))
	}
	if turns[1].Text != FallbackMessage {
		t.Errorf("bot turn = %q, want fallback", turns[1].Text)
	}
}

func TestWidgetSendEmpty(t *testing.T) {
	called := false
	w := NewWidget(ResponderFunc(func(context.Context, string) (string, error) {
		called = true
		return "", nil
	}), nil)

	tr := NewTranscript()
	for _, msg := range []string{"", "   ", "\n\t"} {
		if w.Send(context.Background(), tr, msg, nil) {
			t.Errorf("Send(%q) should be a no-op", msg)
		}
	}
	if called || tr.Len() != 0 {
		t.Error("empty messages must not reach the responder or the transcript")
	}
}

func TestWidgetConcurrentSends(t *testing.T) {
	release := make(chan struct{})
	w := NewWidget(ResponderFunc(func(_ context.Context, msg string) (string, error) {
		<-release
		return "re: " + msg, nil
	}), nil)

	tr := NewTranscript()
	var wg sync.WaitGroup
	for _, msg := range []string{"one", "two", "three"} {
		wg.Add(1)
		go func(m string) {
			defer wg.Done()
			w.Send(context.Background(), tr, m, nil)
		}(msg)
	}
	close(release)
	wg.Wait()

	turns := tr.Turns()
	if len(turns) != 6 {
		t.Fatalf("expected 6 turns, got %d", len(turns))
	}
	for _, turn := range turns {
		if turn.Typing {
			t.Errorf("placeholder %s left behind", turn.ID)
		}
	}
}

func TestShouldSubmit(t *testing.T) {
	tests := []struct {
		key   string
		shift bool
		want  bool
	}{
		{"Enter", false, true},
		{"Enter", true, false},
		{"a", false, false},
		{"", false, false},
	}
	for _, tt := range tests {
		if got := ShouldSubmit(tt.key, tt.shift); got != tt.want {
			t.Errorf("ShouldSubmit(%q, %v) = %v, want %v", tt.key, tt.shift, got, tt.want)
		}
	}
}

type fakeProvider struct {
	req  llm.CompletionRequest
	resp *llm.CompletionResponse
	err  error
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Complete(_ context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	f.req = req
	return f.resp, f.err
}

func TestLLMResponder(t *testing.T) {
	p := &fakeProvider{resp: &llm.CompletionResponse{Content: "  A B.Tech has 8 semesters.\n", Model: "gpt-4o-mini"}}
	r := NewLLMResponder(p, LLMOptions{Model: "openai/gpt-4o-mini", MaxTokens: 500, Temperature: 0.7}, nil)

	got, err := r.Reply(context.Background(), "How long is a B.Tech?")
	if err != nil {
		t.Fatalf("Reply: %v", err)
	}
	if got != "A B.Tech has 8 semesters." {
		t.Errorf("reply = %q", got)
	}

	if p.req.Model != "openai/gpt-4o-mini" || p.req.MaxTokens != 500 || p.req.Temperature != 0.7 {
		t.Errorf("unexpected request options: %+v", p.req)
	}
	if len(p.req.Messages) != 2 || p.req.Messages[0].Role != llm.RoleSystem || p.req.Messages[1].Content != "How long is a B.Tech?" {
		t.Errorf("unexpected messages: %+v", p.req.Messages)
	}
}

func TestLLMResponderErrors(t *testing.T) {
	r := NewLLMResponder(&fakeProvider{err: errors.New("402")}, LLMOptions{}, nil)
	if _, err := r.Reply(context.Background(), "x"); err == nil {
		t.Error("expected provider error")
	}

	r = NewLLMResponder(&fakeProvider{resp: &llm.CompletionResponse{Content: "  "}}, LLMOptions{}, nil)
	if _, err := r.Reply(context.Background(), "x"); err == nil {
		t.Error("expected error for empty completion")
	}
}
