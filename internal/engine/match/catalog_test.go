package match

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog_WellFormed(t *testing.T) {
	roles := DefaultCatalog()
	require.NotEmpty(t, roles)

	seenIDs := map[string]bool{}
	tiers := map[string]int{}
	for _, role := range roles {
		assert.NotEmpty(t, role.ID)
		assert.NotEmpty(t, role.Title)
		assert.NotEmpty(t, role.Slug)
		assert.False(t, seenIDs[role.ID], "duplicate role id %s", role.ID)
		seenIDs[role.ID] = true
		tiers[role.ExperienceLevel]++

		assert.NotEmpty(t, role.Requirements, "role %s has no requirements", role.ID)
		for _, req := range role.Requirements {
			assert.NotEmpty(t, req.Name)
			switch req.MinLevel {
			case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert:
			default:
				t.Errorf("role %s: unexpected min level %q", role.ID, req.MinLevel)
			}
			switch req.Importance {
			case ImportanceRequired, ImportancePreferred, ImportanceNiceToHave:
			default:
				t.Errorf("role %s: unexpected importance %q", role.ID, req.Importance)
			}
		}
		assert.Greater(t, role.Salary.Max, role.Salary.Min, "role %s salary band", role.ID)
	}

	// The career composer needs all three tiers populated.
	assert.Positive(t, tiers[ExperienceEntry])
	assert.Positive(t, tiers[ExperienceMid])
	assert.Positive(t, tiers[ExperienceSenior])
}

func TestDefaultCatalog_FreshCopyPerCall(t *testing.T) {
	a := DefaultCatalog()
	a[0].Title = "Mutated"
	a[0].Requirements[0].Name = "Mutated"

	b := DefaultCatalog()
	assert.NotEqual(t, "Mutated", b[0].Title)
	assert.NotEqual(t, "Mutated", b[0].Requirements[0].Name)
}

func TestLoadCatalog(t *testing.T) {
	const payload = `[
		{
			"id": "qa-entry",
			"title": "QA Engineer",
			"slug": "qa-engineer",
			"experience_level": "entry",
			"salary_range": {"min": 50000, "max": 70000},
			"demand_score": 65,
			"requirements": [
				{"name": "Testing", "category": "concept", "importance": "required", "min_level": "intermediate"}
			]
		}
	]`

	roles, err := LoadCatalog(strings.NewReader(payload))

	require.NoError(t, err)
	require.Len(t, roles, 1)
	assert.Equal(t, "QA Engineer", roles[0].Title)
	assert.Equal(t, ExperienceEntry, roles[0].ExperienceLevel)
	assert.Equal(t, 70000, roles[0].Salary.Max)
	require.Len(t, roles[0].Requirements, 1)
	assert.Equal(t, ImportanceRequired, roles[0].Requirements[0].Importance)
}

func TestLoadCatalog_Malformed(t *testing.T) {
	_, err := LoadCatalog(strings.NewReader(`{"not": "a list"}`))
	assert.Error(t, err)
}
