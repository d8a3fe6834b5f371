// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/gitbars/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the gitbars MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Gitbars Activity Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  contract.NewLocalGitClient(),
	}

	// --- 1. Tool: get_activity ---
	s.AddTool(mcp.NewTool("get_activity",
		mcp.WithDescription("Count commits in a git repository grouped by calendar period."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository (defaults to current directory if not specified).")),
		mcp.WithString("period", mcp.Description("Grouping period (day, month, year). Defaults to 'day'."), mcp.Enum("day", "month", "year")),
		mcp.WithString("author", mcp.Description("Filter commits by author name or email pattern.")),
		mcp.WithString("since", mcp.Description("Only include commits after this date (e.g. '2024-01-01', '1 month ago').")),
		mcp.WithString("until", mcp.Description("Only include commits before this date.")),
	), h.handleGetActivity)

	// --- 2. Tool: get_insights ---
	s.AddTool(mcp.NewTool("get_insights",
		mcp.WithDescription("Summarize commit activity: totals, peak hour and weekday, streaks, authors and commit types."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository.")),
		mcp.WithString("author", mcp.Description("Filter commits by author name or email pattern.")),
		mcp.WithString("since", mcp.Description("Only include commits after this date.")),
		mcp.WithString("until", mcp.Description("Only include commits before this date.")),
	), h.handleGetInsights)

	// --- 3. Tool: get_file_churn ---
	s.AddTool(mcp.NewTool("get_file_churn",
		mcp.WithDescription("List the most frequently changed files in a git repository."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository.")),
		mcp.WithNumber("top", mcp.Description("Limit the number of files returned.")),
		mcp.WithString("since", mcp.Description("Only include commits after this date.")),
		mcp.WithString("until", mcp.Description("Only include commits before this date.")),
	), h.handleGetFileChurn)

	// --- 4. Tool: get_velocity ---
	s.AddTool(mcp.NewTool("get_velocity",
		mcp.WithDescription("Report lines added and removed per calendar period."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository.")),
		mcp.WithString("period", mcp.Description("Grouping period (day, month, year)."), mcp.Enum("day", "month", "year")),
		mcp.WithString("author", mcp.Description("Filter commits by author name or email pattern.")),
		mcp.WithString("since", mcp.Description("Only include commits after this date.")),
		mcp.WithString("until", mcp.Description("Only include commits before this date.")),
	), h.handleGetVelocity)

	return s
}

// StartMCPServer starts the gitbars MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
