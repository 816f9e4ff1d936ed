package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankingCatalog() []JobRole {
	makeRole := func(id, title, level string, demand int, reqs ...Requirement) JobRole {
		return JobRole{ID: id, Title: title, ExperienceLevel: level, DemandScore: demand, Requirements: reqs}
	}
	goReq := Requirement{Name: "Go", Category: CategoryLanguage, Importance: ImportanceRequired, MinLevel: LevelBeginner}
	jsReq := Requirement{Name: "JavaScript", Category: CategoryLanguage, Importance: ImportanceRequired, MinLevel: LevelBeginner}
	rustReq := Requirement{Name: "Rust", Category: CategoryLanguage, Importance: ImportanceRequired, MinLevel: LevelBeginner}
	return []JobRole{
		makeRole("go-dev", "Go Developer", ExperienceMid, 70, goReq),
		makeRole("js-dev", "JavaScript Developer", ExperienceEntry, 60, jsReq),
		makeRole("rust-dev", "Rust Developer", ExperienceMid, 90, rustReq),
		makeRole("polyglot", "Polyglot Developer", ExperienceSenior, 80, goReq, jsReq),
	}
}

func goProfile() []SkillObservation {
	return []SkillObservation{{Name: "Go", Category: CategoryLanguage, Level: LevelAdvanced}}
}

func TestTopMatches_SortedByScoreThenDemand(t *testing.T) {
	eng := NewEngine(nil)

	matches := eng.TopMatches(goProfile(), rankingCatalog(), 10, "")

	require.Len(t, matches, 4)
	assert.Equal(t, "go-dev", matches[0].JobID) // full match, score 100
	for i := 1; i < len(matches); i++ {
		if matches[i-1].Score == matches[i].Score {
			assert.GreaterOrEqual(t, matches[i-1].DemandScore, matches[i].DemandScore)
		} else {
			assert.Greater(t, matches[i-1].Score, matches[i].Score)
		}
	}
}

func TestTopMatches_TieBrokenByDemand(t *testing.T) {
	eng := NewEngine(nil)
	roles := []JobRole{
		{ID: "low-demand", Title: "Role A", DemandScore: 10,
			Requirements: []Requirement{{Name: "Go", Importance: ImportanceRequired, MinLevel: LevelBeginner}}},
		{ID: "high-demand", Title: "Role B", DemandScore: 95,
			Requirements: []Requirement{{Name: "Go", Importance: ImportanceRequired, MinLevel: LevelBeginner}}},
	}

	matches := eng.TopMatches(goProfile(), roles, 2, "")

	require.Len(t, matches, 2)
	assert.Equal(t, matches[0].Score, matches[1].Score)
	assert.Equal(t, "high-demand", matches[0].JobID)
}

func TestTopMatches_LimitClampedToCatalog(t *testing.T) {
	eng := NewEngine(nil)

	assert.Len(t, eng.TopMatches(goProfile(), rankingCatalog(), 2, ""), 2)
	assert.Len(t, eng.TopMatches(goProfile(), rankingCatalog(), 50, ""), 4)
	assert.Empty(t, eng.TopMatches(goProfile(), nil, 5, ""))
	assert.Empty(t, eng.TopMatches(goProfile(), rankingCatalog(), 0, ""))
}

func TestTopMatches_PrefixIdempotent(t *testing.T) {
	eng := NewEngine(nil)

	top4 := eng.TopMatches(goProfile(), rankingCatalog(), 4, "")
	top2 := eng.TopMatches(goProfile(), rankingCatalog(), 2, "")

	require.Len(t, top2, 2)
	assert.Equal(t, top4[:2], top2)
}

func TestExperienceMatches_FiltersTier(t *testing.T) {
	eng := NewEngine(nil)

	mid := eng.ExperienceMatches(goProfile(), rankingCatalog(), ExperienceMid)

	require.Len(t, mid, 2)
	for _, m := range mid {
		assert.Equal(t, ExperienceMid, m.ExperienceLevel)
	}
	assert.Equal(t, "go-dev", mid[0].JobID)
}

func TestExperienceMatches_NoRolesAtTier(t *testing.T) {
	eng := NewEngine(nil)
	roles := []JobRole{rankingCatalog()[0]} // mid only

	assert.Empty(t, eng.ExperienceMatches(goProfile(), roles, ExperienceEntry))
}
