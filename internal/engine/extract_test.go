package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lassyamkotian2006/AI-Powered-Skill-to-Work-Bridge/internal/engine/match"
)

func skillByName(obs []match.SkillObservation, name string) (match.SkillObservation, bool) {
	for _, o := range obs {
		if o.Name == name {
			return o, true
		}
	}
	return match.SkillObservation{}, false
}

func TestHeuristicSkills_Languages(t *testing.T) {
	repo := GithubRepo{FullName: "alice/webapp"}
	obs := HeuristicSkills(repo, []string{"TypeScript", "CSS"}, nil)

	primary, ok := skillByName(obs, "TypeScript")
	require.True(t, ok)
	assert.Equal(t, match.LevelIntermediate, primary.Level)
	assert.Equal(t, 0.7, primary.Confidence)
	assert.Equal(t, match.CategoryLanguage, primary.Category)
	assert.Equal(t, 1, primary.RepoCount)
	require.Len(t, primary.Evidence, 1)
	assert.Contains(t, primary.Evidence[0], "alice/webapp")

	secondary, ok := skillByName(obs, "CSS")
	require.True(t, ok)
	assert.Equal(t, match.LevelBeginner, secondary.Level)
	assert.Equal(t, 0.5, secondary.Confidence)
}

func TestHeuristicSkills_Manifests(t *testing.T) {
	repo := GithubRepo{FullName: "alice/webapp"}
	manifests := map[string]string{
		"package.json": `{"dependencies": {"react": "^18", "pg": "^8", "jest": "^29"}}`,
		"Dockerfile":   "FROM node:20",
	}

	obs := HeuristicSkills(repo, []string{"JavaScript"}, manifests)

	for _, want := range []string{"React", "PostgreSQL", "Testing", "Docker", "Git"} {
		_, ok := skillByName(obs, want)
		assert.True(t, ok, "expected %s to be detected", want)
	}
}

func TestHeuristicSkills_Dedupe(t *testing.T) {
	repo := GithubRepo{FullName: "alice/api"}
	manifests := map[string]string{
		"go.mod": "module example.com/api\nrequire github.com/redis/go-redis/v9 v9.0.0",
	}

	// "Go" appears both as a language and via go.mod; must come out once.
	obs := HeuristicSkills(repo, []string{"Go"}, manifests)

	count := 0
	for _, o := range obs {
		if o.Name == "Go" {
			count++
		}
	}
	assert.Equal(t, 1, count)

	_, ok := skillByName(obs, "Redis")
	assert.True(t, ok)
}

func TestNormLevel(t *testing.T) {
	assert.Equal(t, match.LevelExpert, normLevel(" Expert "))
	assert.Equal(t, match.LevelAdvanced, normLevel("advanced"))
	assert.Equal(t, match.LevelBeginner, normLevel("wizard"))
	assert.Equal(t, match.LevelBeginner, normLevel(""))
}

func TestNormCategory(t *testing.T) {
	assert.Equal(t, match.CategoryDatabase, normCategory("Database"))
	assert.Equal(t, match.CategoryOther, normCategory("paradigm"))
}
