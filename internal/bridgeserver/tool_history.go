package bridgeserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lassyamkotian2006/AI-Powered-Skill-to-Work-Bridge/internal/engine"
	"github.com/lassyamkotian2006/AI-Powered-Skill-to-Work-Bridge/internal/store"
)

// AnalysisHistoryOutput wraps the history list for the MCP result.
type AnalysisHistoryOutput struct {
	Analyses []store.AnalysisRecord `json:"analyses"`
	Total    int                    `json:"total"`
}

func registerAnalysisHistory(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "analysis_history",
		Description: "List past GitHub analyses from the local history: who was analyzed, when, how many repos and skills were found, and their top-matching role at the time.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.AnalysisHistoryInput) (*mcp.CallToolResult, AnalysisHistoryOutput, error) {
		records, err := store.ListAnalyses(ctx, input.Username, input.Limit)
		if err != nil {
			return nil, AnalysisHistoryOutput{}, err
		}
		return nil, AnalysisHistoryOutput{Analyses: records, Total: len(records)}, nil
	})
}
