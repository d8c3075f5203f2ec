package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/currhub/currhub/internal/backend"
	"github.com/currhub/currhub/internal/curriculum"
	"github.com/currhub/currhub/internal/flowchart"
	"github.com/currhub/currhub/internal/modal"
	"github.com/currhub/currhub/internal/state"
	"github.com/currhub/currhub/internal/ui"
)

const (
	defaultProgram        = "Computer Science"
	defaultSyllabusDomain = "Technology"
)

func generateRequest(r *http.Request) curriculum.GenerateRequest {
	semesters, err := strconv.Atoi(r.PostFormValue("duration_semesters"))
	if err != nil || semesters < 1 {
		semesters = 8
	}
	return curriculum.GenerateRequest{
		ProgramType:       r.PostFormValue("program_type"),
		Domain:            r.PostFormValue("domain"),
		AcademicLevel:     r.PostFormValue("academic_level"),
		DurationSemesters: semesters,
		AccreditationBody: r.PostFormValue("accreditation_body"),
		IndustryKeywords:  r.PostFormValue("industry_keywords"),
	}
}

// generateFailure is the text shown in the error card for a failed
// generation.
func generateFailure(err error) string {
	var httpErr *backend.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return "Failed to generate curriculum"
	case errors.Is(err, curriculum.ErrMalformed):
		return "Received an unreadable curriculum"
	default:
		return "Could not reach the curriculum service"
	}
}

// handleGenerate requests a curriculum and swaps the preview panel. Only the
// latest submission of a view may replace the panel.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	v := viewFrom(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	req := generateRequest(r)
	tok := v.Begin(state.SurfaceGenerate)

	doc, err := s.backend.Generate(r.Context(), req)
	if !v.Current(state.SurfaceGenerate, tok) {
		discard(w)
		return
	}
	if err != nil {
		s.logger.Warn("generate failed", zap.String("surface", "generate"), zap.Error(err))
		s.render(w, r, ui.ErrorCard(generateFailure(err)))
		return
	}

	v.SetDocument(doc)
	s.render(w, r, ui.Preview(doc))
}

// handleFlowchart opens the flowchart modal, or prompts for a curriculum when
// none was generated yet.
func (s *Server) handleFlowchart(w http.ResponseWriter, r *http.Request) {
	v := viewFrom(r)
	doc := v.Document()
	if doc == nil {
		w.Header().Set("HX-Retarget", "#toast")
		w.Header().Set("HX-Reswap", "outerHTML")
		s.render(w, r, ui.Toast(ui.FlowchartPrompt))
		return
	}
	v.OpenModal(modal.Flowchart)
	s.render(w, r, ui.FlowchartModal(v.ID, flowchart.Compile(doc)))
}

func (s *Server) handleFlowchartDownload(w http.ResponseWriter, r *http.Request) {
	doc := viewFrom(r).Document()
	if doc == nil {
		http.Error(w, ui.FlowchartPrompt, http.StatusNotFound)
		return
	}
	downloadHeaders(w, "curriculum-flowchart.mmd")
	w.Write([]byte(flowchart.Compile(doc)))
}

// programAndDomain returns the syllabus defaults derived from the current
// document.
func programAndDomain(doc *curriculum.Document) (program, domain string) {
	program, domain = defaultProgram, defaultSyllabusDomain
	if doc == nil {
		return program, domain
	}
	if doc.ProgramTitle != "" {
		program = doc.ProgramTitle
	}
	if doc.Domain != "" {
		domain = doc.Domain
	}
	return program, domain
}

func parseToken(s string) state.Token {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return state.Token(n)
}

// handleSyllabusOpen opens the syllabus modal at once with a loading body.
// The body fetches its content with the token issued here.
func (s *Server) handleSyllabusOpen(w http.ResponseWriter, r *http.Request) {
	v := viewFrom(r)
	course := strings.TrimSpace(r.PostFormValue("course_name"))
	if course == "" {
		http.Error(w, "course_name is required", http.StatusBadRequest)
		return
	}
	tok := v.Begin(state.SurfaceSyllabus)
	v.OpenModal(modal.Syllabus)
	s.render(w, r, ui.SyllabusLoading(course, uint64(tok)))
}

func (s *Server) handleSyllabusContent(w http.ResponseWriter, r *http.Request) {
	v := viewFrom(r)
	course := r.PostFormValue("course_name")
	tok := parseToken(r.PostFormValue("token"))
	if !v.Current(state.SurfaceSyllabus, tok) {
		discard(w)
		return
	}

	program, domain := programAndDomain(v.Document())
	text, err := s.backend.Syllabus(r.Context(), backend.SyllabusRequest{
		CourseName: course,
		Program:    program,
		Domain:     domain,
	})
	if !v.Current(state.SurfaceSyllabus, tok) {
		discard(w)
		return
	}
	if err != nil {
		s.logger.Warn("syllabus failed", zap.String("surface", "syllabus"), zap.String("course", course), zap.Error(err))
		s.render(w, r, ui.InlineError("syllabusContent", ui.SyllabusErrorMessage))
		return
	}

	v.SetSyllabus(course, text)
	s.render(w, r, ui.SyllabusContent(v.ID, text))
}

func (s *Server) handleSyllabusDownload(w http.ResponseWriter, r *http.Request) {
	res, ok := viewFrom(r).Syllabus()
	if !ok {
		http.Error(w, "no syllabus", http.StatusNotFound)
		return
	}
	downloadHeaders(w, "syllabus-"+slug(res.Course)+".txt")
	w.Write([]byte(res.Text))
}

// handleResourcesOpen opens the resources modal on the first tab with a
// loading body.
func (s *Server) handleResourcesOpen(w http.ResponseWriter, r *http.Request) {
	v := viewFrom(r)
	course := strings.TrimSpace(r.PostFormValue("course_name"))
	if course == "" {
		http.Error(w, "course_name is required", http.StatusBadRequest)
		return
	}
	tok := v.Begin(state.SurfaceResources)
	v.OpenModal(modal.Resources)
	s.render(w, r, ui.ResourcesLoading(course, uint64(tok)))
}

func (s *Server) handleResourcesContent(w http.ResponseWriter, r *http.Request) {
	v := viewFrom(r)
	course := r.PostFormValue("course_name")
	tok := parseToken(r.PostFormValue("token"))
	if !v.Current(state.SurfaceResources, tok) {
		discard(w)
		return
	}

	domain := ""
	if doc := v.Document(); doc != nil {
		domain = doc.Domain
	}
	bundle, err := s.backend.Resources(r.Context(), backend.ResourcesRequest{
		CourseName: course,
		Domain:     domain,
	})
	if !v.Current(state.SurfaceResources, tok) {
		discard(w)
		return
	}
	if err != nil {
		s.logger.Warn("resources failed", zap.String("surface", "resources"), zap.String("course", course), zap.Error(err))
		s.render(w, r, ui.InlineError("resourcesContent", ui.ResourcesErrorMessage))
		return
	}

	v.SetBundle(bundle)
	s.render(w, r, ui.ResourcesContent(bundle, v.ActiveTab()))
}

// slug lowercases s and joins its alphanumeric runs with dashes.
func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	if b.Len() == 0 {
		return "course"
	}
	return b.String()
}
