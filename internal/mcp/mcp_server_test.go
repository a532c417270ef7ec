package mcp_test

import (
	"context"
	"testing"

	"github.com/huangsam/pareval/internal/contract"
	mcp_internal "github.com/huangsam/pareval/internal/mcp"
	"github.com/huangsam/pareval/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	baseCfg := &contract.Config{
		InputPath:      "front.csv",
		Selections:     []schema.Selection{schema.RouletteSelection, schema.TournamentSelection},
		ReferenceTable: schema.DefaultReferenceTable.Clone(),
		Workers:        1,
		Stride:         contract.DefaultStride,
	}

	// Create a dummy manager, though we shouldn't hit it because we test validation errors
	var mgr contract.StoreManager
	s := mcp_internal.NewMCPServer(baseCfg, mgr)

	ctx := context.Background()

	t.Run("evaluate_frontier invalid selection", func(t *testing.T) {
		tool := s.GetTool("evaluate_frontier")
		require.NotNil(t, tool, "Tool evaluate_frontier should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "evaluate_frontier",
				Arguments: map[string]any{
					"selection": "elitism", // Unknown operator
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid selection")
	})

	t.Run("get_convergence missing evolution_path", func(t *testing.T) {
		tool := s.GetTool("get_convergence")
		require.NotNil(t, tool, "Tool get_convergence should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "get_convergence",
				Arguments: map[string]any{},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "evolution_path is required")
	})

	t.Run("get_reference returns baseline table", func(t *testing.T) {
		tool := s.GetTool("get_reference")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{Name: "get_reference"},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.False(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "250")
	})
}
