package progress

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

func TestLineReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &LineReporter{w: &buf}
	r.Start(2)
	r.Step("a.json")
	r.Step("b.json")
	r.Finish()

	want := "Exporting 2 curricula\n[1/2] a.json\n[2/2] b.json\nExport complete\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestLineReporterConcurrentSteps(t *testing.T) {
	var buf bytes.Buffer
	r := &LineReporter{w: &buf}
	r.Start(20)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Step("file")
		}()
	}
	wg.Wait()

	if !strings.Contains(buf.String(), "[20/20] file") {
		t.Errorf("expected final step line, got %q", buf.String())
	}
}

func TestNewReporterInCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter(&bytes.Buffer{}).(*LineReporter); !ok {
		t.Error("expected LineReporter in CI")
	}
}

func TestTerminalReporter(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	var buf bytes.Buffer
	r := NewReporter(&buf)
	if _, ok := r.(*TerminalReporter); !ok {
		t.Fatal("expected TerminalReporter outside CI")
	}
	r.Start(1)
	r.Step("a.json")
	r.Finish()
}
