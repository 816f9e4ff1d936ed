package bridgeserver

import (
	"context"
	"errors"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lassyamkotian2006/AI-Powered-Skill-to-Work-Bridge/internal/engine"
	"github.com/lassyamkotian2006/AI-Powered-Skill-to-Work-Bridge/internal/engine/match"
	"github.com/lassyamkotian2006/AI-Powered-Skill-to-Work-Bridge/internal/store"
)

func registerGithubAnalyze(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "github_analyze",
		Description: "Analyze a GitHub user's public repositories and extract a merged skill profile: languages, frameworks, databases and tools with proficiency levels, confidence and per-repo evidence. The profile feeds job_matches, skill_gaps, career_path and learning_path.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.GithubAnalyzeInput) (*mcp.CallToolResult, engine.UserProfile, error) {
		if input.Username == "" {
			return nil, engine.UserProfile{}, errors.New("username is required")
		}

		profile, err := engine.AnalyzeGithubUser(ctx, input.Username, input.Refresh)
		if err != nil {
			return nil, engine.UserProfile{}, err
		}

		// Persist best-effort: analysis succeeds even when storage is down.
		if db := store.GetProfileDB(); db != nil {
			if err := db.SaveProfile(ctx, profile); err != nil {
				slog.Warn("github_analyze: save profile failed", slog.Any("error", err))
			}
		}
		recordHistory(ctx, profile)

		return nil, profile, nil
	})
}

// recordHistory appends the analysis to local history with the user's top
// match, so past runs stay comparable.
func recordHistory(ctx context.Context, profile engine.UserProfile) {
	rec := store.AnalysisRecord{
		Username:      profile.Username,
		ReposAnalyzed: profile.ReposAnalyzed,
		SkillCount:    len(profile.Skills),
	}

	eng := match.NewEngine(engine.Cfg.Relations)
	if top := eng.TopMatches(profile.Skills, engine.Cfg.Catalog, 1, ""); len(top) > 0 {
		rec.TopMatch = top[0].JobTitle
		rec.TopScore = top[0].Score
	}

	if _, err := store.AddAnalysis(ctx, rec); err != nil {
		slog.Warn("github_analyze: record history failed", slog.Any("error", err))
	}
}
