package bridgeserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lassyamkotian2006/AI-Powered-Skill-to-Work-Bridge/internal/engine"
	"github.com/lassyamkotian2006/AI-Powered-Skill-to-Work-Bridge/internal/engine/match"
)

func registerCareerPath(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "career_path",
		Description: "Suggest a three-step career progression for a GitHub user: best-fitting entry role, a related mid-level next step, and a senior long-term goal, with the skills needed to reach the next level.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.CareerPathInput) (*mcp.CallToolResult, engine.CareerPathOutput, error) {
		engine.IncrCareerRequests()

		profile, err := loadProfile(ctx, input.Username)
		if err != nil {
			return nil, engine.CareerPathOutput{}, err
		}

		eng := match.NewEngine(engine.Cfg.Relations)
		path := eng.SuggestCareerPath(profile.Skills, engine.Cfg.Catalog)

		return nil, engine.CareerPathOutput{Username: profile.Username, Path: path}, nil
	})
}
