// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/pareval/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Pareval MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Pareval Evaluation Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: evaluate_frontier ---
	s.AddTool(mcp.NewTool("evaluate_frontier",
		mcp.WithDescription("Score optimizer runs by hypervolume and compare each condition against the published baseline."),
		mcp.WithString("input_path", mcp.Description("Path to the frontier CSV file (defaults to the configured input).")),
		mcp.WithString("selection", mcp.Description("Selection operators to evaluate (roulette, tournament or all). Defaults to 'all'."), mcp.Enum("roulette", "tournament", "all")),
	), h.handleEvaluateFrontier)

	// --- 2. Tool: get_run_scores ---
	s.AddTool(mcp.NewTool("get_run_scores",
		mcp.WithDescription("Rank individual optimizer runs by hypervolume."),
		mcp.WithString("input_path", mcp.Description("Path to the frontier CSV file.")),
		mcp.WithString("selection", mcp.Description("Selection operators to evaluate."), mcp.Enum("roulette", "tournament", "all")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleGetRunScores)

	// --- 3. Tool: get_convergence ---
	s.AddTool(mcp.NewTool("get_convergence",
		mcp.WithDescription("Sample per-generation fitness curves from the evolution log."),
		mcp.WithString("evolution_path", mcp.Description("Path to the evolution CSV file."), mcp.Required()),
		mcp.WithNumber("stride", mcp.Description("Generation sampling stride. Defaults to the configured stride.")),
		mcp.WithString("selection", mcp.Description("Selection operators to include."), mcp.Enum("roulette", "tournament", "all")),
	), h.handleGetConvergence)

	// --- 4. Tool: get_reference ---
	s.AddTool(mcp.NewTool("get_reference",
		mcp.WithDescription("Return the active baseline hypervolume table, including any configured overrides."),
	), h.handleGetReference)

	return s
}

// StartMCPServer starts the Pareval MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
