package bridgeserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lassyamkotian2006/AI-Powered-Skill-to-Work-Bridge/internal/engine"
	"github.com/lassyamkotian2006/AI-Powered-Skill-to-Work-Bridge/internal/engine/match"
)

const (
	defaultGapRoles       = 5
	defaultImpactfulLimit = 5
)

func registerSkillGaps(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "skill_gaps",
		Description: "Aggregate the missing skills across a GitHub user's top-matching roles into one prioritized gap list. A skill missing from many roles gets a higher priority. Also highlights the most impactful required-tier skills to learn first.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.SkillGapsInput) (*mcp.CallToolResult, engine.SkillGapsOutput, error) {
		engine.IncrGapRequests()

		profile, err := loadProfile(ctx, input.Username)
		if err != nil {
			return nil, engine.SkillGapsOutput{}, err
		}

		topRoles := input.TopRoles
		if topRoles <= 0 {
			topRoles = defaultGapRoles
		}
		limit := input.Limit
		if limit <= 0 {
			limit = defaultImpactfulLimit
		}

		cacheKey := engine.CacheKey("skill_gaps", profile.Username, input.Interest,
			fmt.Sprint(topRoles), fmt.Sprint(limit), skillFingerprint(profile.Skills))
		if out, ok := engine.CacheLoadJSON[engine.SkillGapsOutput](ctx, cacheKey); ok {
			return nil, out, nil
		}

		eng := match.NewEngine(engine.Cfg.Relations)
		matches := eng.TopMatches(profile.Skills, engine.Cfg.Catalog, topRoles, input.Interest)
		gaps := match.AggregateGaps(matches)

		out := engine.SkillGapsOutput{
			Username:      profile.Username,
			Gaps:          gaps,
			MostImpactful: match.MostImpactfulSkills(gaps, limit),
		}
		engine.CacheStoreJSON(ctx, cacheKey, out)
		return nil, out, nil
	})
}
