package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lassyamkotian2006/AI-Powered-Skill-to-Work-Bridge/internal/engine/match"
)

func TestGenerateLearningPath_RoadmapFallback(t *testing.T) {
	Init(Config{}) // no LLM client
	analysisCache = nil

	skills := []match.SkillObservation{
		{Name: "JavaScript", Level: match.LevelIntermediate, Confidence: 0.8, RepoCount: 3},
		{Name: "React", Level: match.LevelIntermediate, Confidence: 0.7, RepoCount: 2},
	}

	lp, err := GenerateLearningPath(context.Background(), skills, "frontend", "Frontend Developer")

	require.NoError(t, err)
	assert.Equal(t, "Frontend Developer", lp.TargetRole)
	assert.False(t, lp.Generated)
	assert.Positive(t, lp.MatchScore)
	assert.NotEmpty(t, lp.Path)
	// The fallback path lists missing skills with target levels.
	assert.Contains(t, lp.Path, "Learning path for Frontend Developer")
}

func TestGenerateLearningPath_RoleLookup(t *testing.T) {
	Init(Config{})
	analysisCache = nil

	skills := []match.SkillObservation{{Name: "Go", Level: match.LevelAdvanced}}

	// Title, slug and ID all resolve, case-insensitively.
	for _, target := range []string{"frontend developer", "frontend-developer", "frontend-entry"} {
		lp, err := GenerateLearningPath(context.Background(), skills, "", target)
		require.NoError(t, err, "target %q", target)
		assert.Equal(t, "Frontend Developer", lp.TargetRole)
	}
}

func TestGenerateLearningPath_Validation(t *testing.T) {
	Init(Config{})
	analysisCache = nil

	_, err := GenerateLearningPath(context.Background(), nil, "x", "Frontend Developer")
	assert.Error(t, err)

	_, err = GenerateLearningPath(context.Background(), []match.SkillObservation{{Name: "Go"}}, "x", "")
	assert.Error(t, err)

	_, err = GenerateLearningPath(context.Background(), []match.SkillObservation{{Name: "Go"}}, "x", "Underwater Basket Weaver")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown target role")
}
