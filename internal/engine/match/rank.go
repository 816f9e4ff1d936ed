package match

import (
	"sort"
	"sync"
)

// experienceMatchLimit caps per-tier rankings used by the career composer.
const experienceMatchLimit = 10

// TopMatches scores every role independently and returns the best limit
// results sorted by score descending, ties broken by demand score descending,
// stable otherwise.
//
// Per-role scoring has no shared mutable state, so roles are scored
// concurrently and collected into a pre-sized slice before the sort.
func (e *Engine) TopMatches(userSkills []SkillObservation, roles []JobRole, limit int, interestText string) []MatchResult {
	if len(roles) == 0 || limit <= 0 {
		return []MatchResult{}
	}

	results := make([]MatchResult, len(roles))
	var wg sync.WaitGroup
	for i := range roles {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = e.Score(userSkills, roles[i], interestText)
		}(i)
	}
	wg.Wait()

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].DemandScore > results[j].DemandScore
	})

	if limit > len(results) {
		limit = len(results)
	}
	return results[:limit]
}

// ExperienceMatches ranks only the roles at the requested experience level.
func (e *Engine) ExperienceMatches(userSkills []SkillObservation, roles []JobRole, experienceLevel string) []MatchResult {
	var filtered []JobRole
	for _, role := range roles {
		if role.ExperienceLevel == experienceLevel {
			filtered = append(filtered, role)
		}
	}
	return e.TopMatches(userSkills, filtered, experienceMatchLimit, "")
}
