package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frontendRole() JobRole {
	return JobRole{
		ID: "frontend-dev", Title: "Frontend Developer", ExperienceLevel: ExperienceEntry,
		DemandScore: 86,
		Requirements: []Requirement{
			{Name: "JavaScript", Category: CategoryLanguage, Importance: ImportanceRequired, MinLevel: LevelIntermediate},
			{Name: "React", Category: CategoryFramework, Importance: ImportanceRequired, MinLevel: LevelIntermediate},
			{Name: "HTML", Category: CategoryLanguage, Importance: ImportanceRequired, MinLevel: LevelBeginner},
			{Name: "CSS", Category: CategoryLanguage, Importance: ImportanceRequired, MinLevel: LevelBeginner},
			{Name: "Git", Category: CategoryTool, Importance: ImportanceRequired, MinLevel: LevelBeginner},
		},
	}
}

func TestScore_PartialFrontendProfile(t *testing.T) {
	eng := NewEngine(nil)
	skills := []SkillObservation{
		{Name: "JavaScript", Category: CategoryLanguage, Level: LevelAdvanced},
		{Name: "React", Category: CategoryFramework, Level: LevelIntermediate},
	}

	result := eng.Score(skills, frontendRole(), "")

	var missing []string
	for _, m := range result.MissingSkills {
		missing = append(missing, m.Name)
	}
	assert.Equal(t, []string{"HTML", "CSS", "Git"}, missing)

	byName := map[string]MatchingSkill{}
	for _, m := range result.MatchingSkills {
		byName[m.Name] = m
	}
	require.Contains(t, byName, "JavaScript")
	require.Contains(t, byName, "React")
	assert.True(t, byName["JavaScript"].MeetsMinLevel)
	assert.True(t, byName["React"].MeetsMinLevel)
	assert.False(t, byName["JavaScript"].Semantic)

	// 2 of 5 required matched, single tier: round(100 * 0.4) = 40.
	assert.Equal(t, 40, result.Score)
	assert.Equal(t, FitModerate, result.FitLevel)
	assert.Len(t, result.RoadmapSteps, 3)
}

func TestScore_EmptyProfile(t *testing.T) {
	eng := NewEngine(nil)

	result := eng.Score(nil, frontendRole(), "")

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, FitLow, result.FitLevel)
	assert.Len(t, result.MissingSkills, 5)
	assert.Empty(t, result.MatchingSkills)
}

func TestScore_RoleWithoutRequirements(t *testing.T) {
	eng := NewEngine(nil)
	skills := []SkillObservation{{Name: "Go", Level: LevelExpert}}

	result := eng.Score(skills, JobRole{ID: "empty", Title: "Empty Role"}, "")

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, FitLow, result.FitLevel)
	assert.Empty(t, result.MatchingSkills)
	assert.Empty(t, result.MissingSkills)
}

func TestScore_Deterministic(t *testing.T) {
	eng := NewEngine(nil)
	skills := []SkillObservation{
		{Name: "JavaScript", Category: CategoryLanguage, Level: LevelAdvanced, RepoCount: 6},
		{Name: "React", Category: CategoryFramework, Level: LevelIntermediate, RepoCount: 3},
	}

	first := eng.Score(skills, frontendRole(), "frontend engineering")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, eng.Score(skills, frontendRole(), "frontend engineering"))
	}
}

func TestScore_Bounds(t *testing.T) {
	eng := NewEngine(nil)
	profiles := [][]SkillObservation{
		nil,
		{{Name: "JavaScript", Level: LevelExpert, RepoCount: 50}},
		{
			{Name: "JavaScript", Category: CategoryLanguage, Level: LevelExpert, RepoCount: 50},
			{Name: "React", Category: CategoryFramework, Level: LevelExpert, RepoCount: 50},
			{Name: "HTML", Category: CategoryLanguage, Level: LevelExpert, RepoCount: 50},
			{Name: "CSS", Category: CategoryLanguage, Level: LevelExpert, RepoCount: 50},
			{Name: "Git", Category: CategoryTool, Level: LevelExpert, RepoCount: 50},
		},
	}
	for _, skills := range profiles {
		result := eng.Score(skills, frontendRole(), "frontend developer jobs")
		assert.GreaterOrEqual(t, result.Score, 0)
		assert.LessOrEqual(t, result.Score, 100)
	}
}

func TestScore_ClampAt100(t *testing.T) {
	eng := NewEngine(nil)
	// Full direct match plus interest, category and quality boosts.
	skills := []SkillObservation{
		{Name: "JavaScript", Category: CategoryLanguage, Level: LevelExpert, RepoCount: 9},
		{Name: "React", Category: CategoryFramework, Level: LevelExpert, RepoCount: 9},
		{Name: "HTML", Category: CategoryLanguage, Level: LevelExpert, RepoCount: 9},
		{Name: "CSS", Category: CategoryLanguage, Level: LevelExpert, RepoCount: 9},
		{Name: "Git", Category: CategoryTool, Level: LevelExpert, RepoCount: 9},
	}

	result := eng.Score(skills, frontendRole(), "frontend")

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, FitExcellent, result.FitLevel)
	assert.True(t, result.IsQualified)
}

func TestScore_MonotonicOnAddedRequiredSkill(t *testing.T) {
	eng := NewEngine(nil)
	base := []SkillObservation{
		{Name: "JavaScript", Category: CategoryLanguage, Level: LevelAdvanced},
	}
	before := eng.Score(base, frontendRole(), "")

	grown := append(base, SkillObservation{Name: "React", Category: CategoryFramework, Level: LevelIntermediate})
	after := eng.Score(grown, frontendRole(), "")

	assert.GreaterOrEqual(t, after.Score, before.Score)
}

func TestScore_OnlyNiceToHaveNoneMatched(t *testing.T) {
	eng := NewEngine(nil)
	role := JobRole{
		ID: "nth-only", Title: "Tooling Intern",
		Requirements: []Requirement{
			{Name: "Figma", Category: CategoryTool, Importance: ImportanceNiceToHave, MinLevel: LevelBeginner},
			{Name: "Notion", Category: CategoryTool, Importance: ImportanceNiceToHave, MinLevel: LevelBeginner},
		},
	}

	result := eng.Score([]SkillObservation{{Name: "Go", Level: LevelExpert}}, role, "")

	assert.Equal(t, 0, result.Score)
	// Nice-to-have requirements never become missing entries.
	assert.Empty(t, result.MissingSkills)
	assert.Empty(t, result.RoadmapSteps)
}

func TestScore_NiceToHaveNoSemanticCredit(t *testing.T) {
	eng := NewEngine(RelationGraph{
		"git": {"version control": 1.0},
	})
	role := JobRole{
		ID: "nth-semantic", Title: "Release Coordinator",
		Requirements: []Requirement{
			{Name: "Version Control", Importance: ImportanceNiceToHave, MinLevel: LevelBeginner},
		},
	}

	result := eng.Score([]SkillObservation{{Name: "git", Level: LevelAdvanced}}, role, "")

	// Direct lookup only for nice-to-have: the relation edge must not fire.
	assert.Empty(t, result.MatchingSkills)
	assert.Equal(t, 0, result.Score)
}

func TestScore_SemanticMatch(t *testing.T) {
	eng := NewEngine(nil)
	role := JobRole{
		ID: "vc", Title: "Build Engineer",
		Requirements: []Requirement{
			{Name: "Version Control", Category: CategoryConcept, Importance: ImportanceRequired, MinLevel: LevelBeginner},
		},
	}

	result := eng.Score([]SkillObservation{{Name: "git", Level: LevelAdvanced}}, role, "")

	require.Len(t, result.MatchingSkills, 1)
	m := result.MatchingSkills[0]
	assert.True(t, m.Semantic)
	assert.Equal(t, 1.0, m.MatchStrength)
	assert.Equal(t, LevelAdvanced, m.UserLevel)
	assert.True(t, m.MeetsMinLevel)
	assert.Empty(t, result.MissingSkills)
}

func TestScore_SemanticTakesMaxCoverage(t *testing.T) {
	eng := NewEngine(RelationGraph{
		"mysql":      {"sql": 0.6},
		"postgresql": {"sql": 0.9},
	})
	role := JobRole{
		ID: "sql", Title: "Database Developer",
		Requirements: []Requirement{
			{Name: "SQL", Category: CategoryDatabase, Importance: ImportanceRequired, MinLevel: LevelBeginner},
		},
	}
	skills := []SkillObservation{
		{Name: "MySQL", Level: LevelIntermediate},
		{Name: "PostgreSQL", Level: LevelAdvanced},
	}

	result := eng.Score(skills, role, "")

	require.Len(t, result.MatchingSkills, 1)
	assert.Equal(t, 0.9, result.MatchingSkills[0].MatchStrength)
	assert.Equal(t, LevelAdvanced, result.MatchingSkills[0].UserLevel)
}

func TestScore_InterestBoostAppliedOnce(t *testing.T) {
	eng := NewEngine(nil)
	skills := []SkillObservation{
		{Name: "JavaScript", Category: CategoryLanguage, Level: LevelAdvanced},
		{Name: "React", Category: CategoryFramework, Level: LevelIntermediate},
	}

	plain := eng.Score(skills, frontendRole(), "")
	// Both "frontend" and "developer" are substrings of the title;
	// the boost still lands exactly once.
	boosted := eng.Score(skills, frontendRole(), "frontend developer engineering")

	assert.Equal(t, plain.Score+15, boosted.Score)
}

func TestScore_InterestShortTokensIgnored(t *testing.T) {
	eng := NewEngine(nil)
	skills := []SkillObservation{
		{Name: "JavaScript", Category: CategoryLanguage, Level: LevelAdvanced},
	}

	plain := eng.Score(skills, frontendRole(), "")
	// "fr", "de" are length <= 2 and must be dropped before matching.
	short := eng.Score(skills, frontendRole(), "fr, de")

	assert.Equal(t, plain.Score, short.Score)
}

func TestScore_CategoryDensityBoost(t *testing.T) {
	eng := NewEngine(nil)
	skills := []SkillObservation{
		{Name: "JavaScript", Category: CategoryLanguage, Level: LevelAdvanced},
		{Name: "React", Category: CategoryFramework, Level: LevelIntermediate},
		{Name: "Python", Category: CategoryLanguage, Level: LevelIntermediate},
	}
	without := eng.Score(skills, frontendRole(), "")

	// A third-plus language skill pushes the language category over 2.
	dense := append(skills, SkillObservation{Name: "Ruby", Category: CategoryLanguage, Level: LevelBeginner})
	with := eng.Score(dense, frontendRole(), "")

	assert.Equal(t, without.Score+4, with.Score)
}

func TestScore_QualityBoostFromRepoCount(t *testing.T) {
	eng := NewEngine(nil)
	role := JobRole{
		ID: "js", Title: "JavaScript Developer",
		Requirements: []Requirement{
			{Name: "JavaScript", Category: CategoryLanguage, Importance: ImportanceRequired, MinLevel: LevelBeginner},
			{Name: "React", Category: CategoryFramework, Importance: ImportanceRequired, MinLevel: LevelBeginner},
			{Name: "HTML", Category: CategoryLanguage, Importance: ImportanceRequired, MinLevel: LevelBeginner},
			{Name: "CSS", Category: CategoryLanguage, Importance: ImportanceRequired, MinLevel: LevelBeginner},
		},
	}
	skills := func(repoCount int) []SkillObservation {
		return []SkillObservation{
			{Name: "JavaScript", Level: LevelAdvanced, RepoCount: repoCount},
			{Name: "React", Level: LevelAdvanced, RepoCount: repoCount},
		}
	}

	// 2 of 4 required matched: base 50. Two entries at repo count 3 add
	// 0.5 each, at 5 they add 1 each. Only the final total is rounded.
	assert.Equal(t, 50, eng.Score(skills(0), role, "").Score)
	assert.Equal(t, 51, eng.Score(skills(3), role, "").Score)
	assert.Equal(t, 52, eng.Score(skills(5), role, "").Score)
}

func TestScore_UnknownLevelTreatedAsBeginner(t *testing.T) {
	eng := NewEngine(nil)
	role := JobRole{
		ID: "go", Title: "Go Developer",
		Requirements: []Requirement{
			{Name: "Go", Category: CategoryLanguage, Importance: ImportanceRequired, MinLevel: LevelIntermediate},
		},
	}

	result := eng.Score([]SkillObservation{{Name: "Go", Level: "wizard"}}, role, "")

	require.Len(t, result.MatchingSkills, 1)
	// "wizard" ranks as beginner, below the intermediate minimum.
	assert.False(t, result.MatchingSkills[0].MeetsMinLevel)
}

func TestScore_BlankRequirementSkipped(t *testing.T) {
	eng := NewEngine(nil)
	role := JobRole{
		ID: "blank", Title: "Odd Role",
		Requirements: []Requirement{
			{Name: "  ", Importance: ImportanceRequired, MinLevel: LevelBeginner},
			{Name: "Go", Category: CategoryLanguage, Importance: ImportanceRequired, MinLevel: LevelBeginner},
		},
	}

	result := eng.Score([]SkillObservation{{Name: "Go", Level: LevelIntermediate}}, role, "")

	// The blank requirement is neither matched nor missing; Go fills its tier alone.
	assert.Len(t, result.MatchingSkills, 1)
	assert.Empty(t, result.MissingSkills)
	assert.Equal(t, 100, result.Score)
}

func TestScore_PreferredTierWeighting(t *testing.T) {
	eng := NewEngine(nil)
	role := JobRole{
		ID: "weighted", Title: "Weighted Role",
		Requirements: []Requirement{
			{Name: "Go", Category: CategoryLanguage, Importance: ImportanceRequired, MinLevel: LevelBeginner},
			{Name: "Docker", Category: CategoryTool, Importance: ImportancePreferred, MinLevel: LevelBeginner},
		},
	}

	// Required matched, preferred missing: round(100 * 60/90) = 67.
	result := eng.Score([]SkillObservation{{Name: "Go", Level: LevelAdvanced}}, role, "")
	assert.Equal(t, 67, result.Score)
	assert.Equal(t, FitGood, result.FitLevel)

	// Preferred matched, required missing: round(100 * 30/90) = 33.
	result = eng.Score([]SkillObservation{{Name: "Docker", Level: LevelAdvanced}}, role, "")
	assert.Equal(t, 33, result.Score)
}

func TestScore_RoadmapHours(t *testing.T) {
	eng := NewEngine(nil)
	role := JobRole{
		ID: "roadmap", Title: "Roadmap Role",
		Requirements: []Requirement{
			{Name: "Kubernetes", Importance: ImportanceRequired, MinLevel: LevelExpert},
			{Name: "Terraform", Importance: ImportanceRequired, MinLevel: LevelAdvanced},
			{Name: "Bash", Importance: ImportancePreferred, MinLevel: LevelBeginner},
		},
	}

	result := eng.Score(nil, role, "")

	hours := map[string]int{}
	for _, step := range result.RoadmapSteps {
		hours[step.Skill] = step.EstimatedHours
	}
	assert.Equal(t, 100, hours["Kubernetes"])
	assert.Equal(t, 60, hours["Terraform"])
	assert.Equal(t, 30, hours["Bash"])
}
