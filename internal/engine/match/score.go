package match

import (
	"math"
	"strings"
)

// Tier weights for the base score. A tier with zero requirements is excluded
// from both numerator and denominator.
const (
	weightRequired   = 60.0
	weightPreferred  = 30.0
	weightNiceToHave = 10.0
)

// Engine scores user profiles against job roles using an injected relation
// graph for semantic partial credit.
type Engine struct {
	relations RelationGraph
}

// NewEngine creates an Engine. A nil graph falls back to DefaultRelations.
func NewEngine(relations RelationGraph) *Engine {
	if relations == nil {
		relations = DefaultRelations()
	}
	return &Engine{relations: relations}
}

// requirementHit is the outcome of matching one requirement.
type requirementHit struct {
	strength    float64
	semantic    bool
	contributor *SkillObservation // possessed skill that earned the credit
}

// lookupDirect finds an exact case-insensitive possessed skill.
func lookupDirect(byName map[string]*SkillObservation, name string) (requirementHit, bool) {
	obs, ok := byName[strings.ToLower(name)]
	if !ok {
		return requirementHit{}, false
	}
	return requirementHit{strength: 1.0, contributor: obs}, true
}

// lookupSemantic scans every possessed skill's outgoing relations and takes
// the maximum coverage edge targeting the requirement.
func (e *Engine) lookupSemantic(skills []SkillObservation, name string) (requirementHit, bool) {
	var best requirementHit
	for i := range skills {
		cov := e.relations.Coverage(skills[i].Name, name)
		if cov > best.strength {
			best = requirementHit{strength: cov, semantic: true, contributor: &skills[i]}
		}
	}
	return best, best.strength > 0
}

// Score computes the match of a user's skill profile against one job role.
//
// The score is a total function of (userSkills, role, interestText): every
// malformed input degrades to a defined default and no error is ever returned.
// Boosts accumulate in a fixed order — base, interest, category, quality —
// and only the final sum is clamped to [0,100].
func (e *Engine) Score(userSkills []SkillObservation, role JobRole, interestText string) MatchResult {
	byName := make(map[string]*SkillObservation, len(userSkills))
	for i := range userSkills {
		name := strings.ToLower(strings.TrimSpace(userSkills[i].Name))
		if name == "" {
			continue
		}
		byName[name] = &userSkills[i]
	}

	tiers := map[string][]Requirement{}
	for _, req := range role.Requirements {
		if strings.TrimSpace(req.Name) == "" {
			continue // blank requirement: neither matched nor missing
		}
		switch req.Importance {
		case ImportanceRequired, ImportancePreferred:
			tiers[req.Importance] = append(tiers[req.Importance], req)
		default:
			tiers[ImportanceNiceToHave] = append(tiers[ImportanceNiceToHave], req)
		}
	}

	result := MatchResult{
		JobID:           role.ID,
		JobTitle:        role.Title,
		ExperienceLevel: role.ExperienceLevel,
		Salary:          role.Salary,
		DemandScore:     role.DemandScore,
		MatchingSkills:  []MatchingSkill{},
		MissingSkills:   []MissingSkill{},
		RoadmapSteps:    []RoadmapStep{},
	}

	var weightSum, earnedSum float64
	var quality float64

	scoreTier := func(importance string, weight float64, semanticCredit bool) {
		reqs := tiers[importance]
		if len(reqs) == 0 {
			return // empty tier contributes to neither side of the division
		}
		var tierStrength float64
		for _, req := range reqs {
			hit, ok := lookupDirect(byName, req.Name)
			if !ok && semanticCredit {
				hit, ok = e.lookupSemantic(userSkills, req.Name)
			}
			if !ok {
				if importance != ImportanceNiceToHave {
					result.MissingSkills = append(result.MissingSkills, MissingSkill{
						Name:       req.Name,
						Importance: importance,
						MinLevel:   req.MinLevel,
						Category:   req.Category,
					})
				}
				continue
			}
			tierStrength += hit.strength
			result.MatchingSkills = append(result.MatchingSkills, MatchingSkill{
				Name:          req.Name,
				Importance:    importance,
				UserLevel:     hit.contributor.Level,
				RequiredLevel: req.MinLevel,
				MeetsMinLevel: LevelRank(hit.contributor.Level) >= LevelRank(req.MinLevel),
				MatchStrength: hit.strength,
				Semantic:      hit.semantic,
			})
			switch {
			case hit.contributor.RepoCount >= 5:
				quality += 1.0
			case hit.contributor.RepoCount >= 3:
				quality += 0.5
			}
		}
		earnedSum += tierStrength / float64(len(reqs)) * weight
		weightSum += weight
	}

	scoreTier(ImportanceRequired, weightRequired, true)
	scoreTier(ImportancePreferred, weightPreferred, true)
	scoreTier(ImportanceNiceToHave, weightNiceToHave, false)

	var base float64
	if weightSum > 0 {
		base = math.Round(100 * earnedSum / weightSum)
	}

	total := base
	total += interestBoost(interestText, role.Title)
	total += e.categoryBoost(userSkills, role.Requirements)
	total += quality

	score := int(math.Round(total))
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	result.Score = score
	result.FitLevel = fitLevel(score)
	result.IsQualified = score >= 95

	for _, miss := range result.MissingSkills {
		result.RoadmapSteps = append(result.RoadmapSteps, RoadmapStep{
			Skill:          miss.Name,
			Importance:     miss.Importance,
			TargetLevel:    miss.MinLevel,
			EstimatedHours: roadmapHours(miss.MinLevel),
		})
	}

	return result
}

// interestBoost adds a flat +15 when any interest token (length > 2,
// lower-cased) is a substring of the role title. Applied at most once.
func interestBoost(interestText, title string) float64 {
	if interestText == "" {
		return 0
	}
	lowTitle := strings.ToLower(title)
	tokens := strings.FieldsFunc(strings.ToLower(interestText), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ','
	})
	for _, tok := range tokens {
		if len([]rune(tok)) <= 2 {
			continue
		}
		if strings.Contains(lowTitle, tok) {
			return 15
		}
	}
	return 0
}

// categoryBoost adds +4 for each distinct category referenced by the role's
// requirements in which the user possesses more than 2 skills.
func (e *Engine) categoryBoost(userSkills []SkillObservation, reqs []Requirement) float64 {
	roleCategories := map[string]bool{}
	for _, req := range reqs {
		cat := strings.ToLower(strings.TrimSpace(req.Category))
		if cat != "" {
			roleCategories[cat] = true
		}
	}
	if len(roleCategories) == 0 {
		return 0
	}

	counts := map[string]int{}
	for _, obs := range userSkills {
		cat := strings.ToLower(strings.TrimSpace(obs.Category))
		if cat != "" {
			counts[cat]++
		}
	}

	var boost float64
	for cat := range roleCategories {
		if counts[cat] > 2 {
			boost += 4
		}
	}
	return boost
}

// fitLevel buckets a final score.
func fitLevel(score int) string {
	switch {
	case score >= 80:
		return FitExcellent
	case score >= 60:
		return FitGood
	case score >= 40:
		return FitModerate
	default:
		return FitLow
	}
}

// roadmapHours estimates learning time to reach a target level.
func roadmapHours(targetLevel string) int {
	switch strings.ToLower(strings.TrimSpace(targetLevel)) {
	case LevelExpert:
		return 100
	case LevelAdvanced:
		return 60
	default:
		return 30
	}
}
