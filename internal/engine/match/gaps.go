package match

import (
	"sort"
	"strings"
)

// gapIncrement is the priority added per occurrence of a missing skill.
func gapIncrement(importance string) int {
	if importance == ImportanceRequired {
		return 2
	}
	return 1
}

// AggregateGaps merges the missing-skill lists of ranked matches into one
// prioritized gap list, sorted by priority descending. A skill missing from
// many roles accumulates a higher priority than one missing from few — that
// accumulation is the impact signal surfaced to the learner.
//
// Matches must be supplied in ranking order: needed_for preserves it.
func AggregateGaps(matches []MatchResult) []SkillGap {
	byKey := map[string]*SkillGap{}
	var order []string

	for _, m := range matches {
		for _, miss := range m.MissingSkills {
			key := strings.ToLower(miss.Name)
			gap, ok := byKey[key]
			if !ok {
				gap = &SkillGap{
					Name:       miss.Name,
					Category:   miss.Category,
					MinLevel:   miss.MinLevel,
					Importance: miss.Importance,
				}
				byKey[key] = gap
				order = append(order, key)
			} else if miss.Importance == ImportanceRequired {
				// escalate to the more urgent importance seen
				gap.Importance = ImportanceRequired
			}
			gap.NeededFor = append(gap.NeededFor, m.JobTitle)
			gap.Priority += gapIncrement(miss.Importance)
		}
	}

	gaps := make([]SkillGap, 0, len(order))
	for _, key := range order {
		gaps = append(gaps, *byKey[key])
	}
	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].Priority > gaps[j].Priority
	})
	return gaps
}

// MostImpactfulSkills filters aggregated gaps to the required tier and
// returns the top limit entries annotated with their impact score.
func MostImpactfulSkills(gaps []SkillGap, limit int) []ImpactfulSkill {
	impactful := []ImpactfulSkill{}
	for _, gap := range gaps {
		if gap.Importance != ImportanceRequired {
			continue
		}
		impactful = append(impactful, ImpactfulSkill{
			Name:        gap.Name,
			Category:    gap.Category,
			MinLevel:    gap.MinLevel,
			NeededFor:   gap.NeededFor,
			ImpactScore: gap.Priority,
		})
		if limit > 0 && len(impactful) >= limit {
			break
		}
	}
	return impactful
}
