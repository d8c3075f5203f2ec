package mcp

import "github.com/mark3labs/mcp-go/mcp"

// curriculumFlowchartTool defines the curriculum_flowchart MCP tool.
var curriculumFlowchartTool = mcp.NewTool("curriculum_flowchart",
	mcp.WithDescription("Compile a generated curriculum document into a Mermaid flowchart of its semesters and courses."),
	mcp.WithString("curriculum",
		mcp.Required(),
		mcp.Description("Curriculum document as JSON, as returned by the curriculum service /generate endpoint"),
	),
)

// curriculumSummaryTool defines the curriculum_summary MCP tool.
var curriculumSummaryTool = mcp.NewTool("curriculum_summary",
	mcp.WithDescription("Summarize a curriculum document: title, semesters in order, and the courses and credits of each."),
	mcp.WithString("curriculum",
		mcp.Required(),
		mcp.Description("Curriculum document as JSON"),
	),
)

// listProgramsTool defines the list_programs MCP tool.
var listProgramsTool = mcp.NewTool("list_programs",
	mcp.WithDescription("List the program types offered by the curriculum form."),
)

// programDomainsTool defines the program_domains MCP tool.
var programDomainsTool = mcp.NewTool("program_domains",
	mcp.WithDescription("List the domains available for a program type."),
	mcp.WithString("program_type",
		mcp.Required(),
		mcp.Description("Program type, for example B.Tech or MBA"),
	),
)
