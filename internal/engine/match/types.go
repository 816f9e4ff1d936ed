// Package match implements the skill-to-job matching and gap analysis engine:
// weighted multi-tier scoring, semantic partial credit via a skill relation
// graph, ranked matches, aggregated skill gaps, and career path composition.
//
// Everything in this package is a pure function of its inputs. No I/O, no
// shared mutable state — identical inputs always produce identical results.
package match

import "strings"

// Proficiency levels, ordered ascending. Unrecognized strings rank as beginner.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
	LevelExpert       = "expert"
)

var levelRanks = map[string]int{
	LevelBeginner:     0,
	LevelIntermediate: 1,
	LevelAdvanced:     2,
	LevelExpert:       3,
}

// LevelRank returns the ordinal rank of a proficiency level.
// Unknown or empty levels rank as beginner.
func LevelRank(level string) int {
	return levelRanks[strings.ToLower(strings.TrimSpace(level))]
}

// Requirement importance tiers. Anything else is treated as nice-to-have.
const (
	ImportanceRequired   = "required"
	ImportancePreferred  = "preferred"
	ImportanceNiceToHave = "nice-to-have"
)

// Skill categories carried on observations and requirements.
const (
	CategoryLanguage  = "language"
	CategoryFramework = "framework"
	CategoryDatabase  = "database"
	CategoryTool      = "tool"
	CategoryCloud     = "cloud"
	CategoryConcept   = "concept"
	CategoryOther     = "other"
)

// Experience levels for job roles.
const (
	ExperienceEntry  = "entry"
	ExperienceMid    = "mid"
	ExperienceSenior = "senior"
)

// SkillObservation is one extracted skill for a user. Skill name is the
// case-insensitive identity; one observation per distinct name per user
// after merging.
type SkillObservation struct {
	Name       string   `json:"name"`
	Category   string   `json:"category,omitempty"`
	Level      string   `json:"level"`
	Confidence float64  `json:"confidence"`
	RepoCount  int      `json:"repo_count"`
	Evidence   []string `json:"evidence,omitempty"`
}

// Requirement is a single skill requirement on a job role.
type Requirement struct {
	Name       string `json:"name"`
	Category   string `json:"category,omitempty"`
	Importance string `json:"importance"`
	MinLevel   string `json:"min_level"`
}

// SalaryRange is an annual salary band in currency units.
type SalaryRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// JobRole is a catalog entry with tiered skill requirements.
type JobRole struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Slug            string        `json:"slug"`
	ExperienceLevel string        `json:"experience_level"`
	Salary          SalaryRange   `json:"salary_range"`
	DemandScore     int           `json:"demand_score"`
	Requirements    []Requirement `json:"requirements"`
}

// MatchingSkill records how one requirement was satisfied.
type MatchingSkill struct {
	Name          string  `json:"name"`
	Importance    string  `json:"importance"`
	UserLevel     string  `json:"user_level"`
	RequiredLevel string  `json:"required_level"`
	MeetsMinLevel bool    `json:"meets_min_level"`
	MatchStrength float64 `json:"match_strength"`
	Semantic      bool    `json:"semantic"`
}

// MissingSkill is a required or preferred skill the user lacks.
// Nice-to-have requirements never produce missing entries.
type MissingSkill struct {
	Name       string `json:"name"`
	Importance string `json:"importance"`
	MinLevel   string `json:"min_level"`
	Category   string `json:"category,omitempty"`
}

// RoadmapStep is a learning step derived from a missing skill.
type RoadmapStep struct {
	Skill          string `json:"skill"`
	Importance     string `json:"importance"`
	TargetLevel    string `json:"target_level"`
	EstimatedHours int    `json:"estimated_hours"`
}

// Fit level buckets for the final score.
const (
	FitLow       = "low"
	FitModerate  = "moderate"
	FitGood      = "good"
	FitExcellent = "excellent"
)

// MatchResult is the full scored match of one user profile against one role.
// Derived data — recompute whenever the skill set or catalog changes.
type MatchResult struct {
	JobID           string          `json:"job_id"`
	JobTitle        string          `json:"job_title"`
	Score           int             `json:"score"`
	FitLevel        string          `json:"fit_level"`
	MatchingSkills  []MatchingSkill `json:"matching_skills"`
	MissingSkills   []MissingSkill  `json:"missing_skills"`
	RoadmapSteps    []RoadmapStep   `json:"roadmap_steps"`
	IsQualified     bool            `json:"is_qualified"`
	ExperienceLevel string          `json:"experience_level"`
	Salary          SalaryRange     `json:"salary_range"`
	DemandScore     int             `json:"demand_score"`
}

// SkillGap is a missing skill aggregated across ranked matches.
// Priority accumulates +2 per role requiring it, +1 per role preferring it.
type SkillGap struct {
	Name       string   `json:"name"`
	Category   string   `json:"category,omitempty"`
	MinLevel   string   `json:"min_level"`
	Importance string   `json:"importance"`
	NeededFor  []string `json:"needed_for"`
	Priority   int      `json:"priority"`
}

// ImpactfulSkill is a required-tier gap annotated with its impact score.
type ImpactfulSkill struct {
	Name        string   `json:"name"`
	Category    string   `json:"category,omitempty"`
	MinLevel    string   `json:"min_level"`
	NeededFor   []string `json:"needed_for"`
	ImpactScore int      `json:"impact_score"`
}

// CareerPath is a three-tier progression suggestion.
// Absent tiers are nil rather than errors.
type CareerPath struct {
	CurrentFit         *MatchResult   `json:"current_fit,omitempty"`
	NextStep           *MatchResult   `json:"next_step,omitempty"`
	LongTermGoal       *MatchResult   `json:"long_term_goal,omitempty"`
	SkillsForNextLevel []MissingSkill `json:"skills_for_next_level"`
}
