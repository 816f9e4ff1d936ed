package bridgeserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lassyamkotian2006/AI-Powered-Skill-to-Work-Bridge/internal/engine"
)

func registerLearningPath(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "learning_path",
		Description: "Generate a step-by-step study plan from a GitHub user's current skills toward a target catalog role, covering missing skills, tools and frameworks in learning order. Includes the computed match score for the target role.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.LearningPathInput) (*mcp.CallToolResult, engine.LearningPath, error) {
		if input.TargetRole == "" {
			return nil, engine.LearningPath{}, errors.New("target_role is required")
		}

		profile, err := loadProfile(ctx, input.Username)
		if err != nil {
			return nil, engine.LearningPath{}, err
		}

		lp, err := engine.GenerateLearningPath(ctx, profile.Skills, input.Interest, input.TargetRole)
		if err != nil {
			return nil, engine.LearningPath{}, err
		}
		return nil, lp, nil
	})
}
