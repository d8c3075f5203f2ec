package mcp

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/currhub/currhub/internal/curriculum"
	"github.com/currhub/currhub/internal/flowchart"
)

func parseCurriculumArg(request mcp.CallToolRequest) (*curriculum.Document, *mcp.CallToolResult) {
	raw, err := request.RequireString("curriculum")
	if err != nil {
		return nil, mcp.NewToolResultError("missing required parameter: curriculum")
	}
	doc, err := curriculum.Parse([]byte(raw))
	if err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("invalid curriculum: %v", err))
	}
	return doc, nil
}

// handleCurriculumFlowchart compiles a curriculum into Mermaid text.
func (s *Server) handleCurriculumFlowchart(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, errResult := parseCurriculumArg(request)
	if errResult != nil {
		return errResult, nil
	}
	return mcp.NewToolResultText(flowchart.Compile(doc)), nil
}

// handleCurriculumSummary renders a plain-text outline of a curriculum.
func (s *Server) handleCurriculumSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, errResult := parseCurriculumArg(request)
	if errResult != nil {
		return errResult, nil
	}
	return mcp.NewToolResultText(formatSummary(doc)), nil
}

// handleListPrograms lists the catalog's program types.
func (s *Server) handleListPrograms(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(strings.Join(s.catalog.ProgramTypes(), "\n")), nil
}

// handleProgramDomains lists the domains of a program type.
func (s *Server) handleProgramDomains(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	program, err := request.RequireString("program_type")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: program_type"), nil
	}

	opts, enabled := s.catalog.Domains(program)
	if !enabled {
		return mcp.NewToolResultError(fmt.Sprintf(
			"Unknown program type %q. Known types: %s.",
			program, strings.Join(s.catalog.ProgramTypes(), ", "),
		)), nil
	}

	var domains []string
	for _, o := range opts {
		if o.Value != "" {
			domains = append(domains, o.Label)
		}
	}
	return mcp.NewToolResultText(strings.Join(domains, "\n")), nil
}

// formatSummary lists semesters in document order with their courses.
func formatSummary(doc *curriculum.Document) string {
	var sb strings.Builder
	title := doc.ProgramTitle
	if title == "" {
		title = "Untitled program"
	}
	sb.WriteString(fmt.Sprintf("%s\n%d semester(s), %d course(s)\n", title, len(doc.Semesters), doc.CourseCount()))

	for _, sem := range doc.Semesters {
		credits := 0.0
		for _, c := range sem.Courses {
			credits += c.Credits
		}
		sb.WriteString(fmt.Sprintf("\n%s (%s credits)\n", sem.Label, strconv.FormatFloat(credits, 'f', -1, 64)))
		for _, c := range sem.Courses {
			line := "- " + c.CourseName
			if c.CourseCode != "" {
				line = "- " + c.CourseCode + " " + c.CourseName
			}
			sb.WriteString(line + "\n")
		}
	}
	return sb.String()
}
