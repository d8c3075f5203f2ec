package curriculum

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

const (
	// PlaceholderSelectDomain heads the domain list once a program is chosen.
	PlaceholderSelectDomain = "-- Select Domain --"
	// PlaceholderSelectProgram is the only option while no program is chosen.
	PlaceholderSelectProgram = "-- First, select Program Type --"
)

// Option is one entry of a select control. An empty Value marks a placeholder.
type Option struct {
	Value string
	Label string
}

// Program is a program type together with the domains it offers.
type Program struct {
	Type    string   `yaml:"type"`
	Domains []string `yaml:"domains"`
}

// Catalog is the static lookup table behind the generate form.
type Catalog struct {
	Programs            []Program `yaml:"programs"`
	AcademicLevels      []string  `yaml:"academic_levels"`
	AccreditationBodies []string  `yaml:"accreditation_bodies"`

	byType map[string][]string
}

// LoadCatalog parses a catalog from YAML.
func LoadCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	c.byType = make(map[string][]string, len(c.Programs))
	for _, p := range c.Programs {
		if p.Type == "" {
			return nil, fmt.Errorf("parsing catalog: program with empty type")
		}
		if _, dup := c.byType[p.Type]; dup {
			return nil, fmt.Errorf("parsing catalog: duplicate program %q", p.Type)
		}
		c.byType[p.Type] = p.Domains
	}
	return &c, nil
}

// DefaultCatalog returns the built-in catalog. It panics if the embedded
// table is broken, which the package tests guard against.
func DefaultCatalog() *Catalog {
	c, err := LoadCatalog(catalogYAML)
	if err != nil {
		panic(err)
	}
	return c
}

// ProgramTypes returns the program types in catalog order.
func (c *Catalog) ProgramTypes() []string {
	out := make([]string, 0, len(c.Programs))
	for _, p := range c.Programs {
		out = append(out, p.Type)
	}
	return out
}

// Domains derives the secondary option list for a program type. A known
// program yields a placeholder followed by its domains and an enabled control;
// an unknown or empty program yields a single prompt and a disabled control.
func (c *Catalog) Domains(program string) (opts []Option, enabled bool) {
	domains, ok := c.byType[program]
	if program == "" || !ok || len(domains) == 0 {
		return []Option{{Label: PlaceholderSelectProgram}}, false
	}
	opts = make([]Option, 0, len(domains)+1)
	opts = append(opts, Option{Label: PlaceholderSelectDomain})
	for _, d := range domains {
		opts = append(opts, Option{Value: d, Label: d})
	}
	return opts, true
}
