// Package modal tracks which overlay surfaces are open and which resource tab
// is active. It holds plain state; the View guards it with its own lock.
package modal

import (
	"errors"
	"fmt"
)

// ID names a modal surface.
type ID string

const (
	Flowchart ID = "flowchart"
	Syllabus  ID = "syllabus"
	Resources ID = "resources"
)

// IDs lists every modal.
var IDs = []ID{Flowchart, Syllabus, Resources}

// ErrUnknownModal is returned when parsing a name that is not a modal.
var ErrUnknownModal = errors.New("unknown modal")

// ParseID validates a modal name.
func ParseID(s string) (ID, error) {
	for _, id := range IDs {
		if string(id) == s {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownModal, s)
}

// Controller holds the open/closed state of each modal. Modals do not stack;
// opening one leaves the others untouched. The zero value has every modal
// closed.
type Controller struct {
	open map[ID]bool
}

// Open shows a modal.
func (c *Controller) Open(id ID) {
	if c.open == nil {
		c.open = make(map[ID]bool, len(IDs))
	}
	c.open[id] = true
}

// Close hides a modal. Closing a closed modal is a no-op.
func (c *Controller) Close(id ID) {
	delete(c.open, id)
}

// Click handles a pointer click inside an open modal's overlay. Only a click
// that landed on the backdrop itself closes it. It reports whether the modal
// was closed.
func (c *Controller) Click(id ID, onBackdrop bool) bool {
	if !onBackdrop || !c.IsOpen(id) {
		return false
	}
	c.Close(id)
	return true
}

// IsOpen reports whether a modal is shown.
func (c *Controller) IsOpen(id ID) bool {
	return c.open[id]
}
