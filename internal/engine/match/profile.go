package match

import "strings"

// MergeObservations merges per-repository skill observations into one profile.
// When the same skill appears in multiple repositories its confidence is the
// maximum observed, its level the highest observed, its evidence the set
// union, and its repo count increments once per repository occurrence.
//
// Output order is first-seen order, so merging is deterministic for a fixed
// input order. Observations with blank names are dropped.
func MergeObservations(perRepo [][]SkillObservation) []SkillObservation {
	byName := map[string]*SkillObservation{}
	var order []string

	for _, repoSkills := range perRepo {
		for _, obs := range repoSkills {
			name := strings.TrimSpace(obs.Name)
			if name == "" {
				continue
			}
			key := strings.ToLower(name)
			merged, ok := byName[key]
			if !ok {
				fresh := obs
				fresh.Name = name
				fresh.RepoCount = 1
				fresh.Evidence = append([]string(nil), obs.Evidence...)
				if fresh.Level == "" {
					fresh.Level = LevelBeginner
				}
				byName[key] = &fresh
				order = append(order, key)
				continue
			}
			if obs.Confidence > merged.Confidence {
				merged.Confidence = obs.Confidence
			}
			if LevelRank(obs.Level) > LevelRank(merged.Level) {
				merged.Level = obs.Level
			}
			if merged.Category == "" {
				merged.Category = obs.Category
			}
			merged.Evidence = unionEvidence(merged.Evidence, obs.Evidence)
			merged.RepoCount++
		}
	}

	out := make([]SkillObservation, 0, len(order))
	for _, key := range order {
		out = append(out, *byName[key])
	}
	return out
}

// unionEvidence appends items not already present, preserving order.
func unionEvidence(existing, extra []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, e := range existing {
		seen[e] = true
	}
	for _, e := range extra {
		if e != "" && !seen[e] {
			existing = append(existing, e)
			seen[e] = true
		}
	}
	return existing
}

// NormalizeObservation collapses the heterogeneous record shapes produced by
// upstream extractors into a SkillObservation. The scorer itself never sees
// duck-typed field fallbacks — they all live here, at the boundary.
//
// Recognized shapes: {name, ...}, {skill: {name, category}, ...} and
// {skills: {name, category}, ...}; level also accepted as "proficiency",
// repo count as "repoCount" or "repo_count".
func NormalizeObservation(raw map[string]any) (SkillObservation, bool) {
	obs := SkillObservation{Level: LevelBeginner}

	obs.Name = rawString(raw, "name")
	obs.Category = rawString(raw, "category")
	for _, nested := range []string{"skill", "skills"} {
		if obs.Name != "" {
			break
		}
		if inner, ok := raw[nested].(map[string]any); ok {
			obs.Name = rawString(inner, "name")
			if obs.Category == "" {
				obs.Category = rawString(inner, "category")
			}
		}
	}
	if strings.TrimSpace(obs.Name) == "" {
		return SkillObservation{}, false
	}

	if lvl := rawString(raw, "level"); lvl != "" {
		obs.Level = strings.ToLower(lvl)
	} else if lvl := rawString(raw, "proficiency"); lvl != "" {
		obs.Level = strings.ToLower(lvl)
	}
	if _, known := levelRanks[obs.Level]; !known {
		obs.Level = LevelBeginner
	}

	if conf, ok := rawFloat(raw, "confidence"); ok {
		obs.Confidence = conf
	}
	if rc, ok := rawFloat(raw, "repoCount"); ok {
		obs.RepoCount = int(rc)
	} else if rc, ok := rawFloat(raw, "repo_count"); ok {
		obs.RepoCount = int(rc)
	}

	if list, ok := raw["evidence"].([]any); ok {
		for _, item := range list {
			if s, ok := item.(string); ok && s != "" {
				obs.Evidence = append(obs.Evidence, s)
			}
		}
	}

	return obs, true
}

func rawString(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}

func rawFloat(m map[string]any, key string) (float64, bool) {
	switch v := m[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}
