// Package bridgeserver exposes the skill-bridge engine as MCP tools:
// github_analyze, job_matches, skill_gaps, career_path, learning_path,
// role_catalog, analysis_history.
package bridgeserver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lassyamkotian2006/AI-Powered-Skill-to-Work-Bridge/internal/engine"
	"github.com/lassyamkotian2006/AI-Powered-Skill-to-Work-Bridge/internal/engine/match"
	"github.com/lassyamkotian2006/AI-Powered-Skill-to-Work-Bridge/internal/store"
)

// RegisterTools registers all skill-bridge tools on the given MCP server.
func RegisterTools(server *mcp.Server) {
	registerGithubAnalyze(server)
	registerJobMatches(server)
	registerSkillGaps(server)
	registerCareerPath(server)
	registerLearningPath(server)
	registerRoleCatalog(server)
	registerAnalysisHistory(server)
}

// loadProfile resolves the skill profile for a username: stored profile
// first, then a fresh analysis. Every tool except github_analyze goes
// through here, so "ask about a user nobody analyzed" still works.
func loadProfile(ctx context.Context, username string) (engine.UserProfile, error) {
	if username == "" {
		return engine.UserProfile{}, errors.New("username is required")
	}

	if db := store.GetProfileDB(); db != nil {
		profile, err := db.LoadProfile(ctx, username)
		if err == nil && len(profile.Skills) > 0 {
			return profile, nil
		}
		if err != nil && !store.IsNotFound(err) {
			return engine.UserProfile{}, fmt.Errorf("load profile: %w", err)
		}
	}

	return engine.AnalyzeGithubUser(ctx, username, false)
}

// skillFingerprint keys cached tool outputs to the exact skill set, so a
// re-analysis that changes the profile invalidates derived results.
func skillFingerprint(skills []match.SkillObservation) string {
	parts := make([]string, 0, len(skills))
	for _, s := range skills {
		parts = append(parts, fmt.Sprintf("%s:%s:%d", s.Name, s.Level, s.RepoCount))
	}
	return strings.Join(parts, ";")
}
