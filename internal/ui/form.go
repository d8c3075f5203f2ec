package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/currhub/currhub/internal/curriculum"
)

// GenerateForm renders the curriculum request form. The domain control starts
// disabled until a program type is picked.
func GenerateForm(cat *curriculum.Catalog) g.Node {
	domains, enabled := cat.Domains("")

	return Form(ID("curriculumForm"), Class("card form-card"),
		g.Attr("hx-post", "/generate"),
		g.Attr("hx-target", "#previewPanel"),
		g.Attr("hx-swap", "outerHTML"),
		g.Attr("hx-indicator", "#loadingIndicator"),
		H2(I(Class("fas fa-sliders-h")), g.Text(" Program Details")),

		formField("programType", "Program Type",
			Select(ID("programType"), Name("program_type"), Required(),
				g.Attr("hx-get", "/domains"),
				g.Attr("hx-trigger", "change"),
				g.Attr("hx-target", "#domain"),
				g.Attr("hx-swap", "outerHTML"),
				Option(Value(""), g.Text("-- Select Program --")),
				g.Map(cat.ProgramTypes(), func(p string) g.Node {
					return Option(Value(p), g.Text(p))
				}),
			),
		),
		formField("domain", "Domain", DomainSelect(domains, enabled)),
		formField("academicLevel", "Academic Level",
			Select(ID("academicLevel"), Name("academic_level"), Required(),
				g.Map(cat.AcademicLevels, func(l string) g.Node {
					return Option(Value(l), g.Text(l))
				}),
			),
		),
		formField("durationSemesters", "Duration (Semesters)",
			Input(Type("number"), ID("durationSemesters"), Name("duration_semesters"),
				Min("1"), Max("12"), Value("8"), Required()),
		),
		formField("accreditationBody", "Accreditation Body",
			Select(ID("accreditationBody"), Name("accreditation_body"),
				g.Map(cat.AccreditationBodies, func(b string) g.Node {
					return Option(Value(b), g.Text(b))
				}),
			),
		),
		formField("industryKeywords", "Industry Keywords",
			Input(Type("text"), ID("industryKeywords"), Name("industry_keywords"),
				Placeholder("e.g. cloud, MLOps, DevSecOps")),
		),
		Button(Type("submit"), Class("btn-primary"),
			I(Class("fas fa-magic")), g.Text(" Generate Curriculum"),
		),
	)
}

// DomainSelect renders the secondary select for the given option list.
func DomainSelect(opts []curriculum.Option, enabled bool) g.Node {
	return Select(ID("domain"), Name("domain"),
		g.If(!enabled, Disabled()),
		g.If(enabled, Required()),
		g.Map(opts, func(o curriculum.Option) g.Node {
			return Option(Value(o.Value), g.Text(o.Label))
		}),
	)
}

func formField(id, label string, control g.Node) g.Node {
	return Div(Class("form-group"),
		Label(For(id), g.Text(label)),
		control,
	)
}
