package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lassyamkotian2006/AI-Powered-Skill-to-Work-Bridge/internal/engine/match"
)

// LearningPath is a generated study plan toward a target role.
type LearningPath struct {
	TargetRole string `json:"target_role"`
	Path       string `json:"learning_path"`
	MatchScore int    `json:"match_score"`
	Generated  bool   `json:"generated"` // false when built from the roadmap fallback
}

const learningPathPrompt = `User current skills: %s
User interest: %s
Target job role: %s
Skills the user is missing for this role: %s

Suggest a complete step-by-step learning path to become a highly qualified %s.
Include:
* Missing skills to learn
* Technologies to learn
* Tools and frameworks
* Beginner to advanced roadmap
* Correct order of learning

Return the result as a structured list with clear section headers.`

// GenerateLearningPath builds a study plan for the target role. The match
// score comes from the real scoring engine, not the LLM. When no LLM is
// configured the path degrades to the role's roadmap steps.
func GenerateLearningPath(ctx context.Context, skills []match.SkillObservation, interest, targetRole string) (LearningPath, error) {
	metrics.LearningPathRequests.Add(1)

	if len(skills) == 0 || targetRole == "" {
		return LearningPath{}, fmt.Errorf("learning path requires skills and a target role")
	}

	role, ok := findRoleByTitle(targetRole)
	if !ok {
		return LearningPath{}, fmt.Errorf("unknown target role %q", targetRole)
	}

	eng := match.NewEngine(cfg.Relations)
	result := eng.Score(skills, role, interest)

	skillNames := make([]string, 0, len(skills))
	for _, s := range skills {
		skillNames = append(skillNames, s.Name)
	}
	missingNames := make([]string, 0, len(result.MissingSkills))
	for _, m := range result.MissingSkills {
		missingNames = append(missingNames, m.Name)
	}

	cacheKey := CacheKey("lp", role.ID, interest, strings.Join(skillNames, ","))
	if cached, ok := CacheLoadJSON[LearningPath](ctx, cacheKey); ok {
		return cached, nil
	}

	prompt := fmt.Sprintf(learningPathPrompt,
		strings.Join(skillNames, ", "),
		interest,
		role.Title,
		strings.Join(missingNames, ", "),
		role.Title,
	)

	lp := LearningPath{TargetRole: role.Title, MatchScore: result.Score}
	text, err := CallLLM(ctx, prompt)
	if err == nil && strings.TrimSpace(text) != "" {
		lp.Path = text
		lp.Generated = true
	} else {
		if err != nil && err != ErrLLMDisabled {
			slog.Warn("learning path: llm failed, using roadmap", slog.Any("error", err))
		}
		lp.Path = roadmapText(role.Title, result.RoadmapSteps)
	}

	CacheStoreJSON(ctx, cacheKey, lp)
	return lp, nil
}

// findRoleByTitle matches a catalog role by title or slug, case-insensitively.
func findRoleByTitle(title string) (match.JobRole, bool) {
	want := strings.ToLower(strings.TrimSpace(title))
	for _, role := range cfg.Catalog {
		if strings.ToLower(role.Title) == want || strings.ToLower(role.Slug) == want || role.ID == want {
			return role, true
		}
	}
	return match.JobRole{}, false
}

// roadmapText renders roadmap steps as a plain study plan.
func roadmapText(roleTitle string, steps []match.RoadmapStep) string {
	if len(steps) == 0 {
		return fmt.Sprintf("You already cover the requirements for %s. Deepen your strongest skills and build portfolio projects.", roleTitle)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Learning path for %s:\n", roleTitle)
	for i, step := range steps {
		fmt.Fprintf(&sb, "%d. %s — reach %s level (~%d hours, %s)\n",
			i+1, step.Skill, step.TargetLevel, step.EstimatedHours, step.Importance)
	}
	return sb.String()
}
