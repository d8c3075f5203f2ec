package modal

import (
	"errors"
	"fmt"
)

// Tab is a pane of the resources modal.
type Tab string

const (
	TabMoocs   Tab = "moocs"
	TabBooks   Tab = "books"
	TabYoutube Tab = "youtube"
)

// Tabs lists the resource tabs in display order.
var Tabs = []Tab{TabMoocs, TabBooks, TabYoutube}

// ErrUnknownTab is returned when switching to a tab that does not exist.
var ErrUnknownTab = errors.New("unknown tab")

// TabSet holds the single active resource tab. The zero value shows MOOCs.
type TabSet struct {
	active Tab
}

// Active returns the shown tab.
func (s *TabSet) Active() Tab {
	if s.active == "" {
		return TabMoocs
	}
	return s.active
}

// Switch activates a tab. An unknown tab leaves the state unchanged.
func (s *TabSet) Switch(tab Tab) error {
	for _, t := range Tabs {
		if t == tab {
			s.active = tab
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownTab, tab)
}

// Reset returns to the first tab, as happens whenever the modal opens.
func (s *TabSet) Reset() {
	s.active = TabMoocs
}
