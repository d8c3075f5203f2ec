package ui

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	g "maragu.dev/gomponents"

	"github.com/currhub/currhub/internal/chat"
	"github.com/currhub/currhub/internal/curriculum"
	"github.com/currhub/currhub/internal/modal"
	"github.com/currhub/currhub/internal/theme"
)

func render(t *testing.T, n g.Node) *goquery.Document {
	t.Helper()
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		t.Fatalf("Render: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func sampleDocument() *curriculum.Document {
	return &curriculum.Document{
		ProgramTitle:     "BSc <Data> Science",
		ProgramRationale: "Data everywhere.",
		TargetCareers:    []string{"Analyst", "Engineer"},
		Semesters: []curriculum.Semester{
			{Label: "Semester 2", Courses: []curriculum.Course{
				{
					CourseCode: "DS201", CourseName: "Statistics", Category: "Core", Credits: 3.5,
					WeeklyTopics: []curriculum.Topic{{Week: 1, Title: "Sampling", Description: "Samples"}},
					Outcomes:     []curriculum.Outcome{{Outcome: "Estimate parameters"}},
				},
			}},
			{Label: "Semester 1", Courses: []curriculum.Course{
				{CourseCode: "DS101", CourseName: "Intro"},
				{CourseCode: "DS102", CourseName: "Programming"},
			}},
		},
		IndustryAlignmentNotes: "Aligned.",
		OptimizationTips:       []string{"Add a capstone"},
	}
}

func TestPreview(t *testing.T) {
	doc := render(t, Preview(sampleDocument()))

	if got := doc.Find("#previewTitle").Text(); got != "BSc <Data> Science" {
		t.Errorf("title = %q", got)
	}
	if doc.Find("#previewTitle data").Length() != 0 {
		t.Error("title markup was not escaped")
	}

	var labels []string
	doc.Find(".semester-title").Each(func(_ int, s *goquery.Selection) {
		labels = append(labels, strings.TrimSpace(s.Text()))
	})
	if strings.Join(labels, ",") != "Semester 2,Semester 1" {
		t.Errorf("semester order = %v", labels)
	}

	counts := doc.Find(".course-count")
	if counts.Eq(0).Text() != "1 Courses" || counts.Eq(1).Text() != "2 Courses" {
		t.Errorf("course counts = %q, %q", counts.Eq(0).Text(), counts.Eq(1).Text())
	}
	if n := doc.Find(".career-chip").Length(); n != 2 {
		t.Errorf("career chips = %d, want 2", n)
	}

	first := doc.Find(".course-card").First()
	if !strings.Contains(first.Find(".card-meta").Text(), "3.5 Credits") {
		t.Errorf("credits = %q", first.Find(".card-meta").Text())
	}
	chip := first.Find(".topic-chip")
	if chip.Text() != "W1: Sampling" {
		t.Errorf("topic chip = %q", chip.Text())
	}
	if title, _ := chip.Attr("title"); title != "Samples" {
		t.Errorf("topic tooltip = %q", title)
	}
	hxVals, _ := first.Find(".btn-syllabus").Attr("hx-vals")
	if hxVals != `{"course_name":"Statistics"}` {
		t.Errorf("syllabus hx-vals = %q", hxVals)
	}
	if doc.Find(".tips-card li").Text() != "Add a capstone" {
		t.Error("optimization tips missing")
	}
}

func TestPreviewIsDeterministic(t *testing.T) {
	var a, b strings.Builder
	if err := Preview(sampleDocument()).Render(&a); err != nil {
		t.Fatal(err)
	}
	if err := Preview(sampleDocument()).Render(&b); err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Error("same document rendered differently")
	}
}

func TestErrorCard(t *testing.T) {
	doc := render(t, ErrorCard("Failed to generate curriculum"))

	got := strings.TrimSpace(doc.Find(".error-state p").Text())
	if got != "Error: Failed to generate curriculum. Please try again." {
		t.Errorf("message = %q", got)
	}
	if href, _ := doc.Find("#backButtonError").Attr("href"); href != "/generate" {
		t.Errorf("back href = %q", href)
	}
}

func TestDomainSelect(t *testing.T) {
	tests := []struct {
		name     string
		opts     []curriculum.Option
		enabled  bool
		disabled bool
	}{
		{"placeholder", []curriculum.Option{{Value: "", Label: "Select Program Type First"}}, false, true},
		{"domains", []curriculum.Option{{Value: "AI", Label: "AI"}, {Value: "Cloud", Label: "Cloud"}}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := render(t, DomainSelect(tt.opts, tt.enabled))
			sel := doc.Find("select#domain")
			_, disabled := sel.Attr("disabled")
			if disabled != tt.disabled {
				t.Errorf("disabled = %v, want %v", disabled, tt.disabled)
			}
			if n := sel.Find("option").Length(); n != len(tt.opts) {
				t.Errorf("options = %d, want %d", n, len(tt.opts))
			}
		})
	}
}

func TestResourcesContent(t *testing.T) {
	bundle := &curriculum.ResourceBundle{
		Moocs: []curriculum.Mooc{{Title: "ML", Platform: "Coursera", URL: "https://example.com/ml"}},
		Books: []curriculum.Book{{Title: "Deep Learning", Author: "Goodfellow", Edition: "1st"}},
	}
	doc := render(t, ResourcesContent(bundle, modal.TabBooks))

	if n := doc.Find(".tab-btn.active").Length(); n != 1 {
		t.Fatalf("active tab buttons = %d, want 1", n)
	}
	if tab, _ := doc.Find(".tab-btn.active").Attr("data-tab"); tab != "books" {
		t.Errorf("active tab = %q", tab)
	}
	if !doc.Find("#tab-books").HasClass("active") || doc.Find("#tab-moocs").HasClass("active") {
		t.Error("wrong pane active")
	}
	if got := doc.Find("#tab-youtube .no-resources").Text(); got != "No playlists found" {
		t.Errorf("empty youtube = %q", got)
	}
	if !strings.Contains(doc.Find("#tab-moocs .resource-meta").Text(), "Coursera • Various") {
		t.Errorf("mooc meta = %q", doc.Find("#tab-moocs .resource-meta").Text())
	}
	link := doc.Find("#tab-moocs a.resource-title")
	if href, _ := link.Attr("href"); href != "https://example.com/ml" {
		t.Errorf("mooc href = %q", href)
	}
	if rel, _ := link.Attr("rel"); rel != "noopener noreferrer" {
		t.Errorf("rel = %q", rel)
	}
}

func TestResourcesContentError(t *testing.T) {
	doc := render(t, ResourcesContent(&curriculum.ResourceBundle{Error: "quota exceeded"}, modal.TabMoocs))

	if got := doc.Find(".resource-warning").Text(); got != "⚠️ quota exceeded" {
		t.Errorf("warning = %q", got)
	}
	if doc.Find(".resource-tabs").Length() != 0 {
		t.Error("tabs rendered for an error bundle")
	}
}

func TestSafeURL(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"https://example.com/a", "https://example.com/a"},
		{"http://example.com", "http://example.com"},
		{"javascript:alert(1)", "#"},
		{"", "#"},
		{"://bad", "#"},
	}
	for _, tt := range tests {
		if got := safeURL(tt.in); got != tt.want {
			t.Errorf("safeURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSyllabusLoading(t *testing.T) {
	doc := render(t, SyllabusLoading("Data Ethics", 7))

	if !doc.Find("#syllabusModal").HasClass("open") {
		t.Error("modal not open")
	}
	if got := doc.Find(".modal-header h2").Text(); !strings.Contains(got, "Syllabus: Data Ethics") {
		t.Errorf("title = %q", got)
	}
	v, _ := doc.Find("#syllabusContent").Attr("hx-vals")
	if v != `{"course_name":"Data Ethics","token":"7"}` {
		t.Errorf("hx-vals = %q", v)
	}
}

func TestChatTurn(t *testing.T) {
	user := render(t, ChatTurn("v1", chat.Turn{ID: "t1", Sender: chat.SenderUser, Text: "<b>hi</b>"}))
	if user.Find("#t1 b").Length() != 0 {
		t.Error("user text was not escaped")
	}
	if got := user.Find("#t1 .message-content").Text(); got != "<b>hi</b>" {
		t.Errorf("user text = %q", got)
	}

	bot := render(t, ChatTurn("v1", chat.Turn{ID: "t2", Sender: chat.SenderBot, Text: "**Credits** matter"}))
	if got := bot.Find("#t2 strong").Text(); got != "Credits" {
		t.Errorf("bold = %q", got)
	}
	if c, _ := bot.Find(".copy-btn").Attr("data-copy"); c != "**Credits** matter" {
		t.Errorf("copy text = %q", c)
	}
	if href, _ := bot.Find(".download-btn").Attr("href"); href != "/chat/turns/t2/download?view=v1" {
		t.Errorf("download href = %q", href)
	}

	typing := render(t, ChatTurn("v1", chat.Turn{ID: "t3", Sender: chat.SenderBot, Typing: true}))
	if typing.Find("#t3 .typing-indicator span").Length() != 3 {
		t.Error("typing turn has no dots")
	}
}

func TestThemeToggle(t *testing.T) {
	tests := []struct {
		theme theme.Theme
		icon  string
	}{
		{theme.Light, "fas fa-moon"},
		{theme.Dark, "fas fa-sun"},
	}
	for _, tt := range tests {
		doc := render(t, ThemeToggle(tt.theme))
		if class, _ := doc.Find("#themeToggle i").Attr("class"); class != tt.icon {
			t.Errorf("%s icon = %q, want %q", tt.theme, class, tt.icon)
		}
	}
}

func TestToast(t *testing.T) {
	if render(t, Toast("")).Find("#toast").HasClass("visible") {
		t.Error("empty toast is visible")
	}
	if got := render(t, Toast(FlowchartPrompt)).Find("#toast.visible").Text(); got != FlowchartPrompt {
		t.Errorf("toast = %q", got)
	}
}

func TestMarkdownContent(t *testing.T) {
	for _, name := range []string{"about", "contact"} {
		n, err := MarkdownContent(name)
		if err != nil {
			t.Fatalf("MarkdownContent(%s): %v", name, err)
		}
		if render(t, n).Find("h1, h2").Length() == 0 {
			t.Errorf("%s page has no headings", name)
		}
	}
	if _, err := MarkdownContent("missing"); err == nil {
		t.Error("expected error for a missing page")
	}
}

func TestStandalonePreview(t *testing.T) {
	doc := render(t, StandalonePreview(sampleDocument()))

	if n := doc.Find(".course-card").Length(); n != 3 {
		t.Errorf("course cards = %d, want 3", n)
	}
	if doc.Find("[hx-post], [hx-get]").Length() != 0 {
		t.Error("standalone preview carries htmx actions")
	}
	if doc.Find(".result-header, .course-actions").Length() != 0 {
		t.Error("standalone preview carries server actions")
	}
}

func TestPreviewBackKeepsDocument(t *testing.T) {
	doc := render(t, Preview(sampleDocument()))

	back := doc.Find("#backButton")
	if action, _ := back.Attr("data-action"); action != "back" {
		t.Errorf("back action = %q", action)
	}
	if _, ok := back.Attr("href"); ok {
		t.Error("back navigates away and drops the view")
	}
}

func TestStandalonePage(t *testing.T) {
	doc := render(t, StandalonePage("MBA", theme.Dark, StandalonePreview(sampleDocument())))

	if th, _ := doc.Find("html").Attr("data-theme"); th != "dark" {
		t.Errorf("data-theme = %q", th)
	}
	if !strings.Contains(doc.Find("style").Text(), ".preview-panel") {
		t.Error("stylesheet not inlined")
	}
	if doc.Find("script").Length() != 0 {
		t.Error("standalone page loads scripts")
	}
	doc.Find("link[href]").Each(func(_ int, s *goquery.Selection) {
		if href, _ := s.Attr("href"); strings.HasPrefix(href, "/") {
			t.Errorf("relative link %q", href)
		}
	})
}
