package bridgeserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lassyamkotian2006/AI-Powered-Skill-to-Work-Bridge/internal/engine"
	"github.com/lassyamkotian2006/AI-Powered-Skill-to-Work-Bridge/internal/engine/match"
)

const defaultMatchLimit = 5

func registerJobMatches(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_matches",
		Description: "Rank catalog job roles against a GitHub user's skill profile. Returns per-role match scores (0-100), fit levels, matching and missing skills, and a learning roadmap for each role. Sorted by score, ties broken by market demand.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.JobMatchesInput) (*mcp.CallToolResult, engine.JobMatchesOutput, error) {
		engine.IncrMatchRequests()

		profile, err := loadProfile(ctx, input.Username)
		if err != nil {
			return nil, engine.JobMatchesOutput{}, err
		}

		limit := input.Limit
		if limit <= 0 {
			limit = defaultMatchLimit
		}

		cacheKey := engine.CacheKey("job_matches", profile.Username, input.Interest,
			input.ExperienceLevel, fmt.Sprint(limit), skillFingerprint(profile.Skills))
		if out, ok := engine.CacheLoadJSON[engine.JobMatchesOutput](ctx, cacheKey); ok {
			return nil, out, nil
		}

		eng := match.NewEngine(engine.Cfg.Relations)

		var matches []match.MatchResult
		if level := strings.ToLower(strings.TrimSpace(input.ExperienceLevel)); level != "" {
			switch level {
			case match.ExperienceEntry, match.ExperienceMid, match.ExperienceSenior:
			default:
				return nil, engine.JobMatchesOutput{}, fmt.Errorf("invalid experience_level %q (valid: entry, mid, senior)", level)
			}
			matches = eng.ExperienceMatches(profile.Skills, engine.Cfg.Catalog, level)
			if limit < len(matches) {
				matches = matches[:limit]
			}
		} else {
			matches = eng.TopMatches(profile.Skills, engine.Cfg.Catalog, limit, input.Interest)
		}

		out := engine.JobMatchesOutput{Username: profile.Username, Matches: matches}
		engine.CacheStoreJSON(ctx, cacheKey, out)
		return nil, out, nil
	})
}
