package match

import "strings"

// maxSkillsForNextLevel caps the missing skills surfaced for the next step.
const maxSkillsForNextLevel = 5

// SuggestCareerPath ranks each experience tier independently and threads a
// progression through them. Tiers are related by a shared leading title word:
// the mid-tier role whose title contains the first word of the current fit's
// title becomes the next step, falling back to the top of the tier when no
// title-word overlap exists. The long-term goal is picked the same way from
// the senior tier.
//
// The title heuristic is known-fragile for progressions that do not share a
// leading word; callers with an explicit role-family graph should link tiers
// themselves instead.
func (e *Engine) SuggestCareerPath(userSkills []SkillObservation, roles []JobRole) CareerPath {
	entry := e.ExperienceMatches(userSkills, roles, ExperienceEntry)
	mid := e.ExperienceMatches(userSkills, roles, ExperienceMid)
	senior := e.ExperienceMatches(userSkills, roles, ExperienceSenior)

	path := CareerPath{SkillsForNextLevel: []MissingSkill{}}

	if len(entry) > 0 {
		path.CurrentFit = &entry[0]
	}
	path.NextStep = pickByTitleWord(path.CurrentFit, mid)
	path.LongTermGoal = pickByTitleWord(path.CurrentFit, senior)

	if path.NextStep != nil {
		limit := maxSkillsForNextLevel
		if limit > len(path.NextStep.MissingSkills) {
			limit = len(path.NextStep.MissingSkills)
		}
		path.SkillsForNextLevel = append(path.SkillsForNextLevel, path.NextStep.MissingSkills[:limit]...)
	}

	return path
}

// pickByTitleWord returns the first ranked match whose title contains the
// leading word of anchor's title, or the top match when there is no overlap
// (or no anchor).
func pickByTitleWord(anchor *MatchResult, ranked []MatchResult) *MatchResult {
	if len(ranked) == 0 {
		return nil
	}
	if anchor != nil {
		words := strings.Fields(strings.ToLower(anchor.JobTitle))
		if len(words) > 0 {
			for i := range ranked {
				if strings.Contains(strings.ToLower(ranked[i].JobTitle), words[0]) {
					return &ranked[i]
				}
			}
		}
	}
	return &ranked[0]
}
