package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/currhub/currhub/internal/curriculum"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes curriculum tools.
type Server struct {
	catalog *curriculum.Catalog
	mcp     *server.MCPServer
}

// NewServer creates a new MCP server backed by the given program catalog.
func NewServer(catalog *curriculum.Catalog) *Server {
	if catalog == nil {
		catalog = curriculum.DefaultCatalog()
	}
	s := &Server{catalog: catalog}

	s.mcp = server.NewMCPServer(
		"currhub",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(curriculumFlowchartTool, s.handleCurriculumFlowchart)
	s.mcp.AddTool(curriculumSummaryTool, s.handleCurriculumSummary)
	s.mcp.AddTool(listProgramsTool, s.handleListPrograms)
	s.mcp.AddTool(programDomainsTool, s.handleProgramDomains)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
