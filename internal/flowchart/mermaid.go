package flowchart

import (
	"fmt"
	"strings"

	"github.com/currhub/currhub/internal/curriculum"
)

const (
	// maxLabelRunes is the longest course name drawn unshortened.
	maxLabelRunes = 25
	// keepRunes is how much of a long course name survives before the ellipsis.
	keepRunes = 22
)

// Compile turns a curriculum into Mermaid "graph TD" text. The program is the
// root node, each semester hangs off it, each course hangs off its semester
// and consecutive semesters are chained with dashed edges. Node ids are
// positional so the same document always compiles to the same text.
func Compile(doc *curriculum.Document) string {
	var b strings.Builder
	b.WriteString("graph TD\n")

	title := ""
	if doc != nil {
		title = doc.ProgramTitle
	}
	fmt.Fprintf(&b, "    P0[\"🎓 %s\"]\n", escapeMermaid(title))
	if doc == nil {
		return b.String()
	}

	for i, sem := range doc.Semesters {
		semID := fmt.Sprintf("S%d", i+1)
		fmt.Fprintf(&b, "    %s[\"📚 %s\"]\n", semID, escapeMermaid(sem.Label))
		fmt.Fprintf(&b, "    P0 --> %s\n", semID)

		for j, c := range sem.Courses {
			courseID := fmt.Sprintf("C%d_%d", i, j)
			fmt.Fprintf(&b, "    %s[\"%s\"]\n", courseID, escapeMermaid(truncate(c.CourseName)))
			fmt.Fprintf(&b, "    %s --> %s\n", semID, courseID)
		}

		if i > 0 {
			fmt.Fprintf(&b, "    S%d -.-> %s\n", i, semID)
		}
	}

	return b.String()
}

// truncate shortens names longer than maxLabelRunes to keepRunes plus "...".
func truncate(s string) string {
	r := []rune(s)
	if len(r) <= maxLabelRunes {
		return s
	}
	return string(r[:keepRunes]) + "..."
}

// escapeMermaid replaces characters that would end a quoted label or open a
// new shape with Mermaid entity codes.
func escapeMermaid(s string) string {
	return mermaidEscaper.Replace(s)
}

// "#" is escaped too, so a literal entity in backend text stays literal.
var mermaidEscaper = strings.NewReplacer(
	"#", "#35;",
	"\"", "#quot;",
	"(", "#lpar;",
	")", "#rpar;",
	"[", "#lsqb;",
	"]", "#rsqb;",
	"{", "#lbrace;",
	"}", "#rbrace;",
	"<", "#lt;",
	">", "#gt;",
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
)
