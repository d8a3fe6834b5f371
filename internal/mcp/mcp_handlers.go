package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/huangsam/gitbars/core"
	"github.com/huangsam/gitbars/core/agg"
	"github.com/huangsam/gitbars/internal/contract"
	"github.com/huangsam/gitbars/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.GitClient
}

// requestConfig clones the base config and applies the per-request overrides
// shared by all tools.
func (h *toolHandler) requestConfig(request mcp.CallToolRequest) *contract.Config {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("repo_path", ""); p != "" {
		cfg.RepoPath = p
	}
	if p := request.GetString("period", ""); p != "" {
		cfg.Period = schema.GroupPeriod(p)
	}
	if a := request.GetString("author", ""); a != "" {
		cfg.Author = a
	}
	if s := request.GetString("since", ""); s != "" {
		cfg.Since = s
	}
	if u := request.GetString("until", ""); u != "" {
		cfg.Until = u
	}
	return cfg
}

func (h *toolHandler) handleGetActivity(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.requestConfig(request)

	grouped, records := core.FetchActivity(ctx, cfg, h.client)
	if len(records) == 0 {
		return mcp.NewToolResultError("no commits found matching the specified criteria"), nil
	}

	export := schema.NewActivityExport(grouped, records)
	jsonData, _ := json.MarshalIndent(export, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetInsights(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.requestConfig(request)

	_, records := core.FetchActivity(ctx, cfg, h.client)
	if len(records) == 0 {
		return mcp.NewToolResultError("no commits found matching the specified criteria"), nil
	}

	details := agg.SummarizeCommits(records)
	streaks := agg.CalculateStreaks(records, time.Now())
	export := schema.NewInsightsExport(details, streaks)
	jsonData, _ := json.MarshalIndent(export, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetFileChurn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.requestConfig(request)
	if t := request.GetInt("top", 0); t > 0 {
		cfg.TopFiles = t
	}

	if err := h.client.CheckRepo(ctx, cfg.RepoPath); err != nil {
		return mcp.NewToolResultError("not a git repository: " + cfg.RepoPath), nil
	}

	entries := core.FetchFileChurn(ctx, cfg, h.client)
	jsonData, _ := json.MarshalIndent(entries, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetVelocity(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.requestConfig(request)

	if err := h.client.CheckRepo(ctx, cfg.RepoPath); err != nil {
		return mcp.NewToolResultError("not a git repository: " + cfg.RepoPath), nil
	}

	velocity := core.FetchVelocity(ctx, cfg, h.client)
	jsonData, _ := json.MarshalIndent(velocity, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}
