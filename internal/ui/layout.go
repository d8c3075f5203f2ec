// Package ui renders pages and htmx fragments as gomponents trees. Every
// string that comes from the backend goes through g.Text or an attribute
// helper, so it is escaped; the only raw HTML is produced by internal/markup.
package ui

import (
	"encoding/json"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/currhub/currhub/internal/theme"
)

const siteName = "CurrHub"

// PageData carries what every full page needs.
type PageData struct {
	Title     string
	Path      string
	Theme     theme.Theme
	ViewID    string
	CSRFToken string
}

// Page wraps content in the document shell. The view id and CSRF token ride
// on every htmx request through hx-headers.
func Page(p PageData, content ...g.Node) g.Node {
	title := siteName
	if p.Title != "" {
		title = p.Title + " - " + siteName
	}

	return Doctype(
		HTML(Lang("en"), g.Attr("data-theme", p.Theme.String()),
			Head(
				Meta(Charset("UTF-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				Meta(Name("description"), Content("AI-assisted curriculum design for academic programs.")),
				TitleEl(g.Text(title)),
				Link(Rel("preconnect"), Href("https://fonts.googleapis.com")),
				Link(Rel("stylesheet"), Href("https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700;800&display=swap")),
				Link(Rel("stylesheet"), Href("https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.1/css/all.min.css")),
				Link(Rel("stylesheet"), Href("/static/app.css")),
				Script(Src("https://unpkg.com/htmx.org@2.0.4")),
				Script(Src("https://cdn.jsdelivr.net/npm/mermaid@10/dist/mermaid.min.js")),
				Script(Src("/static/app.js"), Defer()),
			),
			Body(
				g.Attr("hx-headers", hxHeaders(p.ViewID, p.CSRFToken)),
				g.If(p.ViewID != "", DataAttr("view", p.ViewID)),
				Navbar(p.Path, p.Theme),
				Main(Class("page"), g.Group(content)),
				siteFooter(),
			),
		),
	)
}

// StandalonePage is the document shell for exported files opened from disk.
// The stylesheet is inlined and no script or server route is referenced.
func StandalonePage(title string, th theme.Theme, content ...g.Node) g.Node {
	return Doctype(
		HTML(Lang("en"), g.Attr("data-theme", th.String()),
			Head(
				Meta(Charset("UTF-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(title+" - "+siteName)),
				Link(Rel("stylesheet"), Href("https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.1/css/all.min.css")),
				StyleEl(g.Raw(Stylesheet())),
			),
			Body(
				Main(Class("page"), g.Group(content)),
				siteFooter(),
			),
		),
	)
}

func hxHeaders(viewID, csrf string) string {
	h := map[string]string{}
	if viewID != "" {
		h["X-View-ID"] = viewID
	}
	if csrf != "" {
		h["X-CSRF-Token"] = csrf
	}
	b, _ := json.Marshal(h)
	return string(b)
}

// Navbar renders the top navigation with the theme toggle.
func Navbar(currentPath string, th theme.Theme) g.Node {
	navLink := func(href, label string) g.Node {
		class := "nav-link"
		if currentPath == href {
			class += " active"
		}
		return A(Href(href), Class(class), g.Text(label))
	}

	return Nav(Class("navbar"),
		Div(Class("nav-container"),
			A(Href("/"), Class("logo"), I(Class("fas fa-graduation-cap")), g.Text(" "+siteName)),
			Div(Class("nav-links"),
				navLink("/", "Home"),
				navLink("/generate", "Generate"),
				navLink("/about", "About"),
				navLink("/contact", "Contact"),
				ThemeToggle(th),
			),
		),
	)
}

// ThemeToggle renders the toggle button. Its icon shows the theme a click
// switches to.
func ThemeToggle(th theme.Theme) g.Node {
	return Button(ID("themeToggle"), Type("button"), Class("theme-toggle"),
		Aria("label", "Toggle theme"),
		g.Attr("hx-post", "/theme/toggle"),
		g.Attr("hx-swap", "outerHTML"),
		I(Class(th.Icon())),
	)
}

func siteFooter() g.Node {
	return Footer(Class("footer"),
		P(g.Text("© CurrHub. Curricula generated with AI; review before adoption.")),
	)
}

// Toast is the target for short notices that do not belong to any panel.
func Toast(message string) g.Node {
	class := "toast"
	if message != "" {
		class += " visible"
	}
	return Div(ID("toast"), Class(class), g.Attr("role", "status"), g.Text(message))
}

func vals(v map[string]any) string {
	b, _ := json.Marshal(v)
	return string(b)
}
