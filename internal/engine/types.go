package engine

import (
	"github.com/lassyamkotian2006/AI-Powered-Skill-to-Work-Bridge/internal/engine/match"
)

// --- github_analyze ---

type GithubAnalyzeInput struct {
	Username string `json:"username" jsonschema:"GitHub username whose public repositories should be analyzed"`
	Refresh  bool   `json:"refresh,omitempty" jsonschema:"Bypass the cached profile and re-analyze from scratch (default: false)"`
}

// --- job_matches ---

type JobMatchesInput struct {
	Username        string `json:"username" jsonschema:"GitHub username (must be analyzed first, or will be analyzed on the fly)"`
	Interest        string `json:"interest,omitempty" jsonschema:"Free-text career interest used to boost matching roles (e.g. 'frontend', 'machine learning')"`
	Limit           int    `json:"limit,omitempty" jsonschema:"Max matches to return (default: 5)"`
	ExperienceLevel string `json:"experience_level,omitempty" jsonschema:"Restrict matches to one tier: entry, mid, senior (default: all)"`
}

type JobMatchesOutput struct {
	Username string              `json:"username"`
	Matches  []match.MatchResult `json:"matches"`
}

// --- skill_gaps ---

type SkillGapsInput struct {
	Username string `json:"username" jsonschema:"GitHub username to compute gaps for"`
	Interest string `json:"interest,omitempty" jsonschema:"Free-text career interest used when ranking the roles the gaps are aggregated from"`
	TopRoles int    `json:"top_roles,omitempty" jsonschema:"How many top-matching roles to aggregate gaps across (default: 5)"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Max impactful skills to highlight (default: 5)"`
}

type SkillGapsOutput struct {
	Username      string                 `json:"username"`
	Gaps          []match.SkillGap       `json:"gaps"`
	MostImpactful []match.ImpactfulSkill `json:"most_impactful"`
}

// --- career_path ---

type CareerPathInput struct {
	Username string `json:"username" jsonschema:"GitHub username to suggest a progression for"`
}

type CareerPathOutput struct {
	Username string           `json:"username"`
	Path     match.CareerPath `json:"career_path"`
}

// --- learning_path ---

type LearningPathInput struct {
	Username   string `json:"username" jsonschema:"GitHub username whose skills seed the plan"`
	Interest   string `json:"interest,omitempty" jsonschema:"Free-text career interest, included in the generation prompt"`
	TargetRole string `json:"target_role" jsonschema:"Catalog role to plan toward, by title, slug or id (e.g. 'Frontend Developer')"`
}

// --- role_catalog ---

type RoleCatalogInput struct {
	ExperienceLevel string `json:"experience_level,omitempty" jsonschema:"Filter roles by tier: entry, mid, senior (default: all)"`
}

type RoleCatalogOutput struct {
	Roles []match.JobRole `json:"roles"`
	Total int             `json:"total"`
}

// --- analysis_history ---

type AnalysisHistoryInput struct {
	Username string `json:"username,omitempty" jsonschema:"Filter history to one username (default: all)"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Max records to return (default: 20)"`
}
