// Package state holds the per-page client state. A View lives from one full
// page load to the next; reloading the page starts a fresh View and leaves the
// old one to be swept.
package state

import (
	"sync"
	"time"

	"github.com/currhub/currhub/internal/chat"
	"github.com/currhub/currhub/internal/curriculum"
	"github.com/currhub/currhub/internal/modal"
)

// Surface names an area of the page that issues backend requests.
type Surface string

const (
	SurfaceGenerate  Surface = "generate"
	SurfaceSyllabus  Surface = "syllabus"
	SurfaceResources Surface = "resources"
)

// Token identifies one request issued for a surface. Tokens grow
// monotonically per surface, so only the latest one is current.
type Token uint64

// SyllabusResult is the last syllabus shown in the syllabus modal.
type SyllabusResult struct {
	Course string
	Text   string
}

// View is the state of one page. All methods are safe for concurrent use.
type View struct {
	ID        string
	VisitorID string
	Created   time.Time

	mu       sync.Mutex
	lastSeen time.Time
	doc      *curriculum.Document
	modals   modal.Controller
	tabs     modal.TabSet
	tokens   map[Surface]Token
	bundle   *curriculum.ResourceBundle
	syllabus *SyllabusResult

	transcript *chat.Transcript
}

func newView(id, visitorID string, now time.Time) *View {
	return &View{
		ID:         id,
		VisitorID:  visitorID,
		Created:    now,
		lastSeen:   now,
		tokens:     make(map[Surface]Token),
		transcript: chat.NewTranscript(),
	}
}

// Document returns the current curriculum, or nil before one was generated.
func (v *View) Document() *curriculum.Document {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.doc
}

// SetDocument replaces the current curriculum.
func (v *View) SetDocument(doc *curriculum.Document) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.doc = doc
}

// Transcript returns the chat transcript of the page.
func (v *View) Transcript() *chat.Transcript {
	return v.transcript
}

// OpenModal shows a modal. Opening the resources modal resets its tabs.
func (v *View) OpenModal(id modal.ID) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.modals.Open(id)
	if id == modal.Resources {
		v.tabs.Reset()
	}
}

// CloseModal hides a modal.
func (v *View) CloseModal(id modal.ID) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.modals.Close(id)
}

// ClickModal forwards an overlay click and reports whether the modal closed.
func (v *View) ClickModal(id modal.ID, onBackdrop bool) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.modals.Click(id, onBackdrop)
}

// ModalOpen reports whether a modal is shown.
func (v *View) ModalOpen(id modal.ID) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.modals.IsOpen(id)
}

// SwitchTab activates a resources tab.
func (v *View) SwitchTab(tab modal.Tab) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.tabs.Switch(tab)
}

// ActiveTab returns the shown resources tab.
func (v *View) ActiveTab() modal.Tab {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.tabs.Active()
}

// Begin issues a new token for a surface, superseding earlier ones.
func (v *View) Begin(s Surface) Token {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tokens[s]++
	return v.tokens[s]
}

// Current reports whether tok is the latest token issued for the surface.
func (v *View) Current(s Surface, tok Token) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return tok != 0 && v.tokens[s] == tok
}

// SetSyllabus records the syllabus shown for a course.
func (v *View) SetSyllabus(course, text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.syllabus = &SyllabusResult{Course: course, Text: text}
}

// Syllabus returns the last syllabus shown, if any.
func (v *View) Syllabus() (SyllabusResult, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.syllabus == nil {
		return SyllabusResult{}, false
	}
	return *v.syllabus, true
}

// SetBundle records the resource bundle shown in the resources modal.
func (v *View) SetBundle(b *curriculum.ResourceBundle) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.bundle = b
}

// Bundle returns the resource bundle shown, or nil.
func (v *View) Bundle() *curriculum.ResourceBundle {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.bundle
}

func (v *View) touch(now time.Time) {
	v.mu.Lock()
	v.lastSeen = now
	v.mu.Unlock()
}

func (v *View) idleSince() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastSeen
}
