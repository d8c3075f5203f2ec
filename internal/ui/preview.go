package ui

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/currhub/currhub/internal/curriculum"
)

// PreviewPlaceholder is the preview panel before anything was generated.
func PreviewPlaceholder() g.Node {
	return Div(ID("previewPanel"), Class("preview-panel"),
		loadingIndicator(),
		Div(Class("placeholder-text"),
			I(Class("fas fa-file-alt")),
			P(g.Text("Fill in the program details and generate a curriculum to see it here.")),
		),
	)
}

func loadingIndicator() g.Node {
	return Div(ID("loadingIndicator"), Class("placeholder-text loading htmx-indicator"),
		Div(Class("spinner")),
		P(g.Text("Generating your curriculum...")),
	)
}

// Preview renders a generated curriculum. The same document always renders
// to the same tree.
func Preview(doc *curriculum.Document) g.Node {
	return Div(ID("previewPanel"), Class("preview-panel"),
		loadingIndicator(),
		resultHeader(),
		previewContent(doc, true),
	)
}

// StandalonePreview renders the curriculum without any action that needs a
// running server.
func StandalonePreview(doc *curriculum.Document) g.Node {
	return Div(ID("previewPanel"), Class("preview-panel"),
		previewContent(doc, false),
	)
}

func previewContent(doc *curriculum.Document, interactive bool) g.Node {
	return Div(ID("previewContent"),
		H1(ID("previewTitle"), g.Text(doc.ProgramTitle)),
		rationaleCard(doc),
		Div(ID("previewCourses"),
			g.Map(doc.Semesters, func(sem curriculum.Semester) g.Node {
				return semesterSection(sem, interactive)
			}),
			extras(doc),
		),
	)
}

func resultHeader() g.Node {
	return Div(Class("result-header"),
		Button(ID("backButton"), Type("button"), Class("btn-secondary"), DataAttr("action", "back"),
			I(Class("fas fa-arrow-left")), g.Text(" Back"),
		),
		Div(Class("result-actions"),
			Button(Type("button"), Class("btn-secondary"),
				g.Attr("hx-post", "/flowchart"),
				g.Attr("hx-target", "#"+modalElementID("flowchart")),
				g.Attr("hx-swap", "outerHTML"),
				I(Class("fas fa-project-diagram")), g.Text(" Flowchart"),
			),
			Button(Type("button"), Class("btn-secondary"), DataAttr("action", "print"),
				I(Class("fas fa-file-pdf")), g.Text(" Download PDF"),
			),
		),
	)
}

func rationaleCard(doc *curriculum.Document) g.Node {
	return Div(Class("card rationale-card"),
		H2(I(Class("fas fa-bullseye")), g.Text(" Program Rationale")),
		P(Class("rationale"), g.Text(doc.ProgramRationale)),
		Div(Class("career-paths"),
			Strong(g.Text("Target Career Paths:")),
			Div(Class("chips"),
				g.Map(doc.TargetCareers, func(c string) g.Node {
					return Span(Class("topic-chip career-chip"), g.Text(c))
				}),
			),
		),
	)
}

func semesterSection(sem curriculum.Semester, interactive bool) g.Node {
	return Div(Class("semester-section"),
		Div(Class("semester-header"),
			Div(Class("semester-title"),
				I(Class("fas fa-graduation-cap")), g.Text(" "+sem.Label),
			),
			Span(Class("course-count"), g.Textf("%d Courses", len(sem.Courses))),
		),
		Div(Class("course-grid"), g.Map(sem.Courses, func(c curriculum.Course) g.Node {
			return courseCard(c, interactive)
		})),
	)
}

func courseCard(c curriculum.Course, interactive bool) g.Node {
	return Div(Class("course-card"),
		Div(Class("card-header"),
			Div(
				H3(g.Text(c.CourseName)),
				Span(Class("course-category"), g.Text(c.Category)),
			),
			Span(Class("course-badge"), g.Text(c.CourseCode)),
		),
		Div(Class("card-meta"),
			Span(I(Class("fas fa-layer-group")), g.Text(" "+formatCredits(c.Credits)+" Credits")),
		),
		P(Class("card-description"), g.Text(c.Description)),
		Div(Class("topics-section"),
			Strong(g.Textf("Course Roadmap (%d Weeks):", len(c.WeeklyTopics))),
			Div(Class("topics-list"),
				g.Map(c.WeeklyTopics, func(t curriculum.Topic) g.Node {
					return Span(Class("topic-chip"), TitleAttr(t.Description),
						g.Textf("W%d: %s", t.Week, t.Title))
				}),
			),
		),
		Div(Class("outcomes-section"),
			Strong(g.Text("Learning Outcomes:")),
			Ul(g.Map(c.Outcomes, func(o curriculum.Outcome) g.Node {
				return Li(g.Text(o.Outcome))
			})),
		),
		g.If(interactive, courseActions(c)),
	)
}

func courseActions(c curriculum.Course) g.Node {
	return Div(Class("course-actions"),
		Button(Type("button"), Class("btn-syllabus"),
			g.Attr("hx-post", "/syllabus"),
			g.Attr("hx-vals", vals(map[string]any{"course_name": c.CourseName})),
			g.Attr("hx-target", "#"+modalElementID("syllabus")),
			g.Attr("hx-swap", "outerHTML"),
			I(Class("fas fa-book-open")), g.Text(" Syllabus"),
		),
		Button(Type("button"), Class("btn-resources"),
			g.Attr("hx-post", "/resources"),
			g.Attr("hx-vals", vals(map[string]any{"course_name": c.CourseName})),
			g.Attr("hx-target", "#"+modalElementID("resources")),
			g.Attr("hx-swap", "outerHTML"),
			I(Class("fas fa-globe")), g.Text(" Resources"),
		),
	)
}

func extras(doc *curriculum.Document) g.Node {
	return Div(ID("previewExtras"),
		Div(Class("card alignment-card"),
			H3(I(Class("fas fa-info-circle")), g.Text(" Industry Alignment & Validation")),
			P(g.Text(doc.IndustryAlignmentNotes)),
		),
		Div(Class("card tips-card"),
			H3(I(Class("fas fa-lightbulb")), g.Text(" Optimization Tips")),
			Ul(g.Map(doc.OptimizationTips, func(tip string) g.Node {
				return Li(g.Text(tip))
			})),
		),
	)
}

// ErrorCard replaces the whole preview panel after a failed generation. Its
// only action reloads the page, which starts over with a fresh view.
func ErrorCard(message string) g.Node {
	return Div(ID("previewPanel"), Class("preview-panel"),
		A(ID("backButtonError"), Href("/generate"), Class("btn-secondary"),
			I(Class("fas fa-arrow-left")), g.Text(" Back to Editor"),
		),
		Div(Class("placeholder-text error-state"),
			I(Class("fas fa-exclamation-triangle")),
			P(g.Text(fmt.Sprintf("Error: %s. Please try again.", message))),
		),
	)
}

func formatCredits(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}
