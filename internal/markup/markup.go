// Package markup converts the lightweight formatting used in backend text into
// HTML fragments. Input is escaped before any element is introduced, and the
// result is passed through a bluemonday policy that admits only the elements
// produced here.
package markup

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	boldRe     = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRe   = regexp.MustCompile(`\*(.+?)\*`)
	numberedRe = regexp.MustCompile(`^(\d+\.)\s+(.*)$`)

	chatPolicy     = bluemonday.NewPolicy().AllowElements("strong", "em", "br")
	syllabusPolicy = bluemonday.NewPolicy().AllowElements("strong", "br", "h3", "h4", "h5")
)

// Chat renders a chat reply: **bold**, *italic*, line breaks and "• " bullets.
func Chat(text string) string {
	s := html.EscapeString(text)
	s = boldRe.ReplaceAllString(s, "<strong>$1</strong>")
	s = italicRe.ReplaceAllString(s, "<em>$1</em>")
	s = strings.ReplaceAll(s, "\n", "<br>")
	return chatPolicy.Sanitize(s)
}

// headings is ordered longest marker first so "###" never matches as "##".
var headings = []struct {
	marker string
	tag    string
}{
	{"#### ", "h5"},
	{"### ", "h4"},
	{"## ", "h3"},
}

// Syllabus renders a generated syllabus. Heading markers are recognised at
// the start of a line only; "- " items become bullets and numbered items
// keep their number.
func Syllabus(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")

	var b strings.Builder
	for i, line := range lines {
		out, block := syllabusLine(html.EscapeString(line))
		b.WriteString(out)
		if i < len(lines)-1 && !block {
			b.WriteString("<br>")
		}
	}
	return syllabusPolicy.Sanitize(b.String())
}

// syllabusLine formats one escaped line and reports whether it became a block
// element, which needs no trailing break.
func syllabusLine(line string) (string, bool) {
	trimmed := strings.TrimLeft(line, " \t")
	for _, h := range headings {
		if rest, ok := strings.CutPrefix(trimmed, h.marker); ok {
			return "<" + h.tag + ">" + bold(rest) + "</" + h.tag + ">", true
		}
	}
	if rest, ok := strings.CutPrefix(trimmed, "- "); ok {
		return "• " + bold(rest), false
	}
	if m := numberedRe.FindStringSubmatch(trimmed); m != nil {
		return m[1] + " " + bold(m[2]), false
	}
	return bold(line), false
}

func bold(s string) string {
	return boldRe.ReplaceAllString(s, "<strong>$1</strong>")
}
