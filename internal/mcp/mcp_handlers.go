package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/pareval/core"
	"github.com/huangsam/pareval/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

func (h *toolHandler) handleEvaluateFrontier(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("input_path", ""); p != "" {
		cfg.InputPath = p
	}
	if s := request.GetString("selection", ""); s != "" {
		if err := contract.RevalidateSelections(cfg, s); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid selection: %v", err)), nil
		}
	}

	result, err := core.GetEvaluationResults(core.WithSuppressHeader(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("evaluation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetRunScores(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("input_path", ""); p != "" {
		cfg.InputPath = p
	}
	if s := request.GetString("selection", ""); s != "" {
		if err := contract.RevalidateSelections(cfg, s); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid selection: %v", err)), nil
		}
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	ranked, failures, err := core.GetRankedRunScores(core.WithSuppressHeader(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("evaluation failed: %v", err)), nil
	}

	payload := map[string]any{
		"scores":   ranked,
		"failures": failures,
	}
	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetConvergence(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.EvolutionPath = request.GetString("evolution_path", "")
	if cfg.EvolutionPath == "" {
		return mcp.NewToolResultError("evolution_path is required"), nil
	}
	if s := request.GetString("selection", ""); s != "" {
		if err := contract.RevalidateSelections(cfg, s); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid selection: %v", err)), nil
		}
	}
	if stride := request.GetInt("stride", 0); stride > 0 {
		cfg.Stride = stride
	}

	rows, err := core.GetConvergenceCurves(core.WithSuppressHeader(ctx), cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("convergence analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(rows, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetReference(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jsonData, _ := json.MarshalIndent(h.baseCfg.ReferenceTable, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
