package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeObservations_UnionRules(t *testing.T) {
	perRepo := [][]SkillObservation{
		{
			{Name: "Go", Category: CategoryLanguage, Level: LevelIntermediate, Confidence: 0.7, Evidence: []string{"api-server: go.mod"}},
			{Name: "Docker", Category: CategoryTool, Level: LevelBeginner, Confidence: 0.5, Evidence: []string{"api-server: Dockerfile"}},
		},
		{
			{Name: "go", Level: LevelAdvanced, Confidence: 0.6, Evidence: []string{"cli-tool: go.mod", "api-server: go.mod"}},
		},
		{
			{Name: "GO", Level: LevelBeginner, Confidence: 0.9, Evidence: nil},
		},
	}

	merged := MergeObservations(perRepo)

	require.Len(t, merged, 2)
	goSkill := merged[0]
	assert.Equal(t, "Go", goSkill.Name) // first-seen casing
	assert.Equal(t, 3, goSkill.RepoCount)
	assert.Equal(t, 0.9, goSkill.Confidence)            // max confidence
	assert.Equal(t, LevelAdvanced, goSkill.Level)       // highest level
	assert.Equal(t, CategoryLanguage, goSkill.Category) // first non-empty category
	assert.Equal(t, []string{"api-server: go.mod", "cli-tool: go.mod"}, goSkill.Evidence)

	assert.Equal(t, "Docker", merged[1].Name)
	assert.Equal(t, 1, merged[1].RepoCount)
}

func TestMergeObservations_BlankNamesDropped(t *testing.T) {
	merged := MergeObservations([][]SkillObservation{
		{{Name: "  ", Level: LevelExpert}, {Name: "Rust", Level: LevelBeginner}},
	})

	require.Len(t, merged, 1)
	assert.Equal(t, "Rust", merged[0].Name)
}

func TestMergeObservations_DefaultsLevel(t *testing.T) {
	merged := MergeObservations([][]SkillObservation{{{Name: "Zig"}}})

	require.Len(t, merged, 1)
	assert.Equal(t, LevelBeginner, merged[0].Level)
}

func TestMergeObservations_Empty(t *testing.T) {
	assert.Empty(t, MergeObservations(nil))
	assert.Empty(t, MergeObservations([][]SkillObservation{{}, {}}))
}

func TestNormalizeObservation_FlatShape(t *testing.T) {
	obs, ok := NormalizeObservation(map[string]any{
		"name":       "PostgreSQL",
		"category":   "database",
		"level":      "Advanced",
		"confidence": 0.8,
		"repo_count": float64(4),
		"evidence":   []any{"orders-service: migrations/", ""},
	})

	require.True(t, ok)
	assert.Equal(t, "PostgreSQL", obs.Name)
	assert.Equal(t, CategoryDatabase, obs.Category)
	assert.Equal(t, LevelAdvanced, obs.Level)
	assert.Equal(t, 0.8, obs.Confidence)
	assert.Equal(t, 4, obs.RepoCount)
	assert.Equal(t, []string{"orders-service: migrations/"}, obs.Evidence)
}

func TestNormalizeObservation_NestedShapes(t *testing.T) {
	for _, key := range []string{"skill", "skills"} {
		obs, ok := NormalizeObservation(map[string]any{
			key:           map[string]any{"name": "Redis", "category": "database"},
			"proficiency": "intermediate",
		})
		require.True(t, ok, key)
		assert.Equal(t, "Redis", obs.Name)
		assert.Equal(t, CategoryDatabase, obs.Category)
		assert.Equal(t, LevelIntermediate, obs.Level)
	}
}

func TestNormalizeObservation_Defaults(t *testing.T) {
	obs, ok := NormalizeObservation(map[string]any{"name": "Kafka", "level": "guru"})

	require.True(t, ok)
	assert.Equal(t, LevelBeginner, obs.Level) // unknown level degrades
	assert.Equal(t, 0, obs.RepoCount)
	assert.Equal(t, 0.0, obs.Confidence)
}

func TestNormalizeObservation_Rejected(t *testing.T) {
	_, ok := NormalizeObservation(map[string]any{"level": "expert"})
	assert.False(t, ok)

	_, ok = NormalizeObservation(map[string]any{"name": "   "})
	assert.False(t, ok)
}

func TestLevelRank_Ordering(t *testing.T) {
	assert.Less(t, LevelRank(LevelBeginner), LevelRank(LevelIntermediate))
	assert.Less(t, LevelRank(LevelIntermediate), LevelRank(LevelAdvanced))
	assert.Less(t, LevelRank(LevelAdvanced), LevelRank(LevelExpert))
	assert.Equal(t, LevelRank(LevelBeginner), LevelRank("unheard-of"))
	assert.Equal(t, LevelRank(LevelExpert), LevelRank(" Expert "))
}
