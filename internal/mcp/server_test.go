package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

const testCurriculum = `{
  "program_title": "MBA in Finance",
  "courses_by_semester": {
    "Semester 1": [
      {"course_code": "FIN101", "course_name": "Accounting", "credits": 3},
      {"course_name": "Economics", "credits": 2.5}
    ],
    "Semester 2": [
      {"course_code": "FIN201", "course_name": "Corporate Finance", "credits": 4}
    ]
  }
}`

// extractText gets the text content from a CallToolResult.
func extractText(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func TestToolDefinitions(t *testing.T) {
	// Verify tool names and required properties.
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"curriculum_flowchart", curriculumFlowchartTool, "curriculum_flowchart"},
		{"curriculum_summary", curriculumSummaryTool, "curriculum_summary"},
		{"list_programs", listProgramsTool, "list_programs"},
		{"program_domains", programDomainsTool, "program_domains"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	srv := NewServer(nil)
	if srv == nil {
		t.Fatal("NewServer returned nil")
	}
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
	if srv.catalog == nil {
		t.Error("expected default catalog")
	}
}

func TestHandleCurriculumFlowchart(t *testing.T) {
	srv := NewServer(nil)
	ctx := context.Background()

	t.Run("valid document", func(t *testing.T) {
		result, err := srv.handleCurriculumFlowchart(ctx, callRequest(map[string]any{"curriculum": testCurriculum}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		text := extractText(result)
		for _, want := range []string{"graph TD", `P0["🎓 MBA in Finance"]`, "S1 -.-> S2", `C1_0["Corporate Finance"]`} {
			if !strings.Contains(text, want) {
				t.Errorf("expected %q in %q", want, text)
			}
		}
	})

	t.Run("missing argument", func(t *testing.T) {
		result, err := srv.handleCurriculumFlowchart(ctx, callRequest(map[string]any{}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for missing curriculum")
		}
	})

	t.Run("malformed document", func(t *testing.T) {
		result, err := srv.handleCurriculumFlowchart(ctx, callRequest(map[string]any{"curriculum": `{"program_title": "x"}`}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for document without semesters")
		}
	})
}

func TestHandleCurriculumSummary(t *testing.T) {
	srv := NewServer(nil)
	result, err := srv.handleCurriculumSummary(context.Background(), callRequest(map[string]any{"curriculum": testCurriculum}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := extractText(result)
	for _, want := range []string{
		"MBA in Finance\n2 semester(s), 3 course(s)",
		"Semester 1 (5.5 credits)",
		"- FIN101 Accounting",
		"- Economics",
		"Semester 2 (4 credits)",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("expected %q in %q", want, text)
		}
	}
	if strings.Index(text, "Semester 1") > strings.Index(text, "Semester 2") {
		t.Error("semesters out of document order")
	}
}

func TestHandleListPrograms(t *testing.T) {
	srv := NewServer(nil)
	result, err := srv.handleListPrograms(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(extractText(result), "\n")
	if len(lines) != len(srv.catalog.ProgramTypes()) {
		t.Errorf("expected %d programs, got %d", len(srv.catalog.ProgramTypes()), len(lines))
	}
	if lines[0] != "B.Tech" {
		t.Errorf("first program = %q", lines[0])
	}
}

func TestHandleProgramDomains(t *testing.T) {
	srv := NewServer(nil)
	ctx := context.Background()

	t.Run("known program", func(t *testing.T) {
		result, err := srv.handleProgramDomains(ctx, callRequest(map[string]any{"program_type": "B.Tech"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		text := extractText(result)
		if !strings.HasPrefix(text, "Artificial Intelligence") {
			t.Errorf("expected AI first, got %q", text)
		}
		if strings.Contains(text, "Select") {
			t.Error("placeholder leaked into domain list")
		}
	})

	t.Run("unknown program", func(t *testing.T) {
		result, err := srv.handleProgramDomains(ctx, callRequest(map[string]any{"program_type": "Bootcamp"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for unknown program")
		}
	})

	t.Run("missing argument", func(t *testing.T) {
		result, err := srv.handleProgramDomains(ctx, callRequest(map[string]any{}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for missing program_type")
		}
	})
}
