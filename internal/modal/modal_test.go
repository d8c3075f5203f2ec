package modal

import (
	"errors"
	"testing"
)

func TestControllerInitialState(t *testing.T) {
	var c Controller
	for _, id := range IDs {
		if c.IsOpen(id) {
			t.Errorf("%s should start closed", id)
		}
	}
}

func TestControllerOpenClose(t *testing.T) {
	var c Controller
	c.Open(Syllabus)
	if !c.IsOpen(Syllabus) {
		t.Fatal("syllabus should be open")
	}
	if c.IsOpen(Resources) || c.IsOpen(Flowchart) {
		t.Error("opening one modal should not open others")
	}

	c.Open(Resources)
	if !c.IsOpen(Syllabus) || !c.IsOpen(Resources) {
		t.Error("modals are independent")
	}

	c.Close(Syllabus)
	if c.IsOpen(Syllabus) {
		t.Error("syllabus should be closed")
	}
	if !c.IsOpen(Resources) {
		t.Error("closing one modal should leave others open")
	}

	c.Close(Syllabus)
	if c.IsOpen(Syllabus) {
		t.Error("double close should keep it closed")
	}
}

func TestControllerClick(t *testing.T) {
	var c Controller
	c.Open(Flowchart)

	if c.Click(Flowchart, false) {
		t.Error("click on content should not close")
	}
	if !c.IsOpen(Flowchart) {
		t.Error("modal closed by a content click")
	}

	if !c.Click(Flowchart, true) {
		t.Error("backdrop click should close")
	}
	if c.IsOpen(Flowchart) {
		t.Error("modal still open after backdrop click")
	}

	if c.Click(Flowchart, true) {
		t.Error("backdrop click on a closed modal should report nothing closed")
	}
}

func TestParseID(t *testing.T) {
	id, err := ParseID("resources")
	if err != nil || id != Resources {
		t.Errorf("ParseID(resources) = %q, %v", id, err)
	}
	if _, err := ParseID("settings"); !errors.Is(err, ErrUnknownModal) {
		t.Errorf("expected ErrUnknownModal, got %v", err)
	}
}

func TestTabs(t *testing.T) {
	var s TabSet
	if s.Active() != TabMoocs {
		t.Errorf("initial tab = %q, want moocs", s.Active())
	}

	if err := s.Switch(TabBooks); err != nil {
		t.Fatalf("Switch(books): %v", err)
	}
	if s.Active() != TabBooks {
		t.Errorf("active = %q, want books", s.Active())
	}

	if err := s.Switch("podcasts"); !errors.Is(err, ErrUnknownTab) {
		t.Errorf("expected ErrUnknownTab, got %v", err)
	}
	if s.Active() != TabBooks {
		t.Errorf("unknown tab changed state to %q", s.Active())
	}

	s.Reset()
	if s.Active() != TabMoocs {
		t.Errorf("after Reset active = %q", s.Active())
	}
}
