package ui

import (
	"bytes"
	"embed"
	"fmt"
	"sync"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/currhub/currhub/internal/chat"
	"github.com/currhub/currhub/internal/curriculum"
	"github.com/currhub/currhub/internal/modal"
)

//go:embed content/*.md
var contentFS embed.FS

var (
	md = goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)

	renderedMu sync.Mutex
	rendered   = map[string]string{}
)

// RenderMarkdown converts one of the embedded content pages to HTML. Results
// are cached since the sources never change.
func RenderMarkdown(name string) (string, error) {
	renderedMu.Lock()
	defer renderedMu.Unlock()
	if html, ok := rendered[name]; ok {
		return html, nil
	}

	src, err := contentFS.ReadFile("content/" + name + ".md")
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	rendered[name] = buf.String()
	return rendered[name], nil
}

// MarkdownContent renders an embedded content page inside the prose layout.
func MarkdownContent(name string) (g.Node, error) {
	html, err := RenderMarkdown(name)
	if err != nil {
		return nil, err
	}
	return Section(Class("card prose"), g.Raw(html)), nil
}

// HomeContent is the landing page.
func HomeContent() g.Node {
	feature := func(icon, title, text string) g.Node {
		return Div(Class("card feature-card"),
			I(Class(icon)),
			H3(g.Text(title)),
			P(g.Text(text)),
		)
	}

	return g.Group([]g.Node{
		Section(Class("hero"),
			H1(g.Text("Design industry-aligned curricula in minutes")),
			P(Class("hero-sub"), g.Text("Semester plans, weekly roadmaps, syllabi and learning resources for any program.")),
			A(Href("/generate"), Class("btn-primary"), I(Class("fas fa-magic")), g.Text(" Start generating")),
		),
		Section(Class("features"),
			feature("fas fa-layer-group", "Semester plans", "Courses grouped by semester with credits and outcomes."),
			feature("fas fa-book-open", "Syllabi", "A detailed syllabus for any course on demand."),
			feature("fas fa-globe", "Resources", "MOOCs, books and playlists matched to each course."),
			feature("fas fa-project-diagram", "Flowcharts", "See how the whole program fits together."),
		),
	})
}

// GenerateContent is the main working page: form, preview panel, modals and
// the assistant.
func GenerateContent(cat *curriculum.Catalog, viewID string, turns []chat.Turn) g.Node {
	return g.Group([]g.Node{
		Div(Class("generator"),
			Div(ID("inputSection"), Class("input-section"), GenerateForm(cat)),
			PreviewPlaceholder(),
		),
		ClosedModal(modal.Flowchart),
		ClosedModal(modal.Syllabus),
		ClosedModal(modal.Resources),
		ChatWidget(viewID, turns),
		Toast(""),
	})
}
