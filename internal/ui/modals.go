package ui

import (
	"net/url"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/currhub/currhub/internal/curriculum"
	"github.com/currhub/currhub/internal/markup"
	"github.com/currhub/currhub/internal/modal"
)

// Inline failure messages of the modal surfaces.
const (
	SyllabusErrorMessage  = "Error generating syllabus. Please try again."
	ResourcesErrorMessage = "Error fetching resources. Please try again."
	FlowchartPrompt       = "Please generate a curriculum first."
)

func modalElementID(id modal.ID) string {
	switch id {
	case modal.Flowchart:
		return "flowchartModal"
	case modal.Syllabus:
		return "syllabusModal"
	default:
		return "resourceModal"
	}
}

// ClosedModal renders a modal in its hidden state.
func ClosedModal(id modal.ID) g.Node {
	return Div(ID(modalElementID(id)), Class("modal"), DataAttr("modal", string(id)))
}

func openModal(id modal.ID, title g.Node, body ...g.Node) g.Node {
	elID := modalElementID(id)
	return Div(ID(elID), Class("modal open"), DataAttr("modal", string(id)),
		g.Attr("role", "dialog"), Aria("modal", "true"),
		Div(Class("modal-content"),
			Div(Class("modal-header"),
				H2(title),
				Button(Type("button"), Class("modal-close"), Aria("label", "Close"),
					g.Attr("hx-post", "/modals/"+string(id)+"/close"),
					g.Attr("hx-target", "#"+elID),
					g.Attr("hx-swap", "outerHTML"),
					I(Class("fas fa-times")),
				),
			),
			Div(Class("modal-body"), g.Group(body)),
		),
	)
}

// FlowchartModal shows compiled Mermaid text for mermaid.js to draw.
func FlowchartModal(viewID, graph string) g.Node {
	return openModal(modal.Flowchart,
		g.Group([]g.Node{I(Class("fas fa-project-diagram")), g.Text(" Curriculum Flowchart")}),
		Div(ID("flowchartContainer"),
			Pre(Class("mermaid"), g.Text(graph)),
		),
		Div(Class("modal-actions"),
			A(Href(viewURL("/flowchart.mmd", viewID)), Class("btn-secondary"),
				I(Class("fas fa-download")), g.Text(" Download .mmd"),
			),
		),
	)
}

// SyllabusLoading opens the syllabus modal with a body that fetches the
// content for the given request token as soon as it is swapped in.
func SyllabusLoading(course string, token uint64) g.Node {
	return openModal(modal.Syllabus,
		g.Group([]g.Node{I(Class("fas fa-book-open")), g.Text(" Syllabus: " + course)}),
		Div(ID("syllabusContent"),
			g.Attr("hx-post", "/syllabus/content"),
			g.Attr("hx-trigger", "load"),
			g.Attr("hx-swap", "outerHTML"),
			g.Attr("hx-vals", vals(map[string]any{"course_name": course, "token": strconv.FormatUint(token, 10)})),
			loadingBody("Generating syllabus..."),
		),
	)
}

// SyllabusContent renders a fetched syllabus with copy and download actions.
func SyllabusContent(viewID, text string) g.Node {
	return Div(ID("syllabusContent"), Class("syllabus-content"),
		Div(Class("modal-actions"),
			Button(Type("button"), Class("action-btn copy-btn"), TitleAttr("Copy"), DataAttr("copy", text),
				I(Class("fas fa-copy")), g.Text(" Copy"),
			),
			A(Href(viewURL("/syllabus/download", viewID)), Class("action-btn download-btn"), TitleAttr("Download"),
				I(Class("fas fa-download")), g.Text(" Download"),
			),
		),
		Div(Class("syllabus-text"), g.Raw(markup.Syllabus(text))),
	)
}

// ResourcesLoading opens the resources modal with a self-fetching body.
func ResourcesLoading(course string, token uint64) g.Node {
	return openModal(modal.Resources,
		g.Group([]g.Node{I(Class("fas fa-globe")), g.Text(" Resources: " + course)}),
		Div(ID("resourcesContent"),
			g.Attr("hx-post", "/resources/content"),
			g.Attr("hx-trigger", "load"),
			g.Attr("hx-swap", "outerHTML"),
			g.Attr("hx-vals", vals(map[string]any{"course_name": course, "token": strconv.FormatUint(token, 10)})),
			loadingBody("Finding resources..."),
		),
	)
}

// ResourcesContent renders a resource bundle with the given tab active. A
// bundle carrying an error renders as a single warning line.
func ResourcesContent(b *curriculum.ResourceBundle, active modal.Tab) g.Node {
	if b.Error != "" {
		return Div(ID("resourcesContent"),
			P(Class("resource-warning"), g.Text("⚠️ "+b.Error)),
		)
	}

	tabButton := func(tab modal.Tab, icon, label string) g.Node {
		class := "tab-btn"
		if tab == active {
			class += " active"
		}
		return Button(Type("button"), Class(class), DataAttr("tab", string(tab)),
			g.Attr("hx-post", "/modals/resources/tabs/"+string(tab)),
			g.Attr("hx-target", "#resourcesContent"),
			g.Attr("hx-swap", "outerHTML"),
			I(Class(icon)), g.Text(" "+label),
		)
	}

	pane := func(tab modal.Tab, items []g.Node, empty string) g.Node {
		class := "tab-content"
		if tab == active {
			class += " active"
		}
		if len(items) == 0 {
			return Div(ID("tab-"+string(tab)), Class(class), P(Class("no-resources"), g.Text(empty)))
		}
		return Div(ID("tab-"+string(tab)), Class(class), g.Group(items))
	}

	var moocs, books, videos []g.Node
	for _, m := range b.Moocs {
		moocs = append(moocs, moocItem(m))
	}
	for _, bk := range b.Books {
		books = append(books, bookItem(bk))
	}
	for _, y := range b.Youtube {
		videos = append(videos, playlistItem(y))
	}

	return Div(ID("resourcesContent"),
		Div(Class("resource-tabs"),
			tabButton(modal.TabMoocs, "fas fa-graduation-cap", "MOOCs"),
			tabButton(modal.TabBooks, "fas fa-book", "Books"),
			tabButton(modal.TabYoutube, "fab fa-youtube", "YouTube"),
		),
		pane(modal.TabMoocs, moocs, "No MOOCs found"),
		pane(modal.TabBooks, books, "No books found"),
		pane(modal.TabYoutube, videos, "No playlists found"),
	)
}

func moocItem(m curriculum.Mooc) g.Node {
	instructor := m.Instructor
	if instructor == "" {
		instructor = "Various"
	}
	return Div(Class("resource-item"),
		Div(Class("resource-icon mooc"), I(Class("fas fa-play-circle"))),
		Div(Class("resource-info"),
			externalLink(m.URL, "resource-title", g.Text(m.Title)),
			Span(Class("resource-meta"),
				I(Class("fas fa-university")), g.Text(" "+m.Platform+" • "+instructor),
			),
		),
		externalLink(m.URL, "resource-link", I(Class("fas fa-external-link-alt"))),
	)
}

func bookItem(b curriculum.Book) g.Node {
	return Div(Class("resource-item"),
		Div(Class("resource-icon book"), I(Class("fas fa-book"))),
		Div(Class("resource-info"),
			Span(Class("resource-title"), g.Text(b.Title)),
			Span(Class("resource-meta"),
				I(Class("fas fa-user")), g.Text(" "+b.Author+" • "+b.Edition),
			),
		),
	)
}

func playlistItem(y curriculum.Playlist) g.Node {
	return Div(Class("resource-item"),
		Div(Class("resource-icon youtube"), I(Class("fab fa-youtube"))),
		Div(Class("resource-info"),
			externalLink(y.URL, "resource-title", g.Text(y.Title)),
			Span(Class("resource-meta"),
				I(Class("fas fa-user")), g.Text(" "+y.Creator+" • "+y.Videos),
			),
		),
		externalLink(y.URL, "resource-link", I(Class("fas fa-external-link-alt"))),
	)
}

func externalLink(href, class string, children ...g.Node) g.Node {
	return A(Href(safeURL(href)), Target("_blank"), Rel("noopener noreferrer"), Class(class), g.Group(children))
}

// safeURL passes http and https links and replaces anything else with "#".
func safeURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return "#"
	}
	return u.String()
}

// InlineError replaces a modal body with a single failure line. id is the
// element id of the body being replaced.
func InlineError(id, message string) g.Node {
	return Div(ID(id), P(Class("inline-error"), g.Text(message)))
}

// viewURL adds the view id to links followed outside htmx, which do not
// carry the hx-headers.
func viewURL(path, viewID string) string {
	return path + "?view=" + url.QueryEscape(viewID)
}

func loadingBody(label string) g.Node {
	return Div(Class("loading"),
		Div(Class("spinner")),
		P(g.Text(label)),
	)
}
