package match

import "strings"

// RelationGraph maps a possessed skill to the skills it partially substitutes
// for, with a coverage weight in (0,1]. Edges are directed: each direction is
// declared independently, symmetry is never assumed.
//
// The graph is immutable configuration injected at Engine construction.
type RelationGraph map[string]map[string]float64

// Coverage returns the declared coverage of target by possessed, or 0 when no
// relation exists. Both names are matched case-insensitively.
func (g RelationGraph) Coverage(possessed, target string) float64 {
	edges, ok := g[strings.ToLower(possessed)]
	if !ok {
		return 0
	}
	return edges[strings.ToLower(target)]
}

// Targets returns the outgoing edges of a possessed skill (may be nil).
func (g RelationGraph) Targets(possessed string) map[string]float64 {
	return g[strings.ToLower(possessed)]
}

// DefaultRelations returns the hand-curated skill relation table.
// Keys and targets are lower-case skill names.
func DefaultRelations() RelationGraph {
	return RelationGraph{
		"git": {
			"version control": 1.0,
			"github":          0.9,
		},
		"github": {
			"git": 0.8,
		},
		"javascript": {
			"typescript": 0.7,
			"node.js":    0.6,
			"jquery":     0.8,
		},
		"typescript": {
			"javascript": 0.9,
		},
		"node.js": {
			"express": 0.6,
			"rest api": 0.7,
		},
		"express": {
			"node.js":  0.8,
			"rest api": 0.8,
		},
		"react": {
			"next.js":      0.7,
			"react native": 0.6,
			"javascript":   0.5,
		},
		"next.js": {
			"react": 0.9,
		},
		"vue": {
			"react": 0.5,
		},
		"angular": {
			"typescript": 0.6,
		},
		"python": {
			"scripting": 0.9,
		},
		"django": {
			"python":   0.7,
			"rest api": 0.7,
		},
		"flask": {
			"python":   0.7,
			"rest api": 0.7,
		},
		"fastapi": {
			"python":   0.7,
			"rest api": 0.8,
		},
		"go": {
			"rest api":    0.6,
			"concurrency": 0.7,
		},
		"postgresql": {
			"sql":   0.9,
			"mysql": 0.8,
		},
		"mysql": {
			"sql":        0.9,
			"postgresql": 0.7,
		},
		"sqlite": {
			"sql": 0.8,
		},
		"mongodb": {
			"nosql": 0.9,
		},
		"redis": {
			"caching": 0.9,
			"nosql":   0.6,
		},
		"docker": {
			"containers": 1.0,
			"kubernetes": 0.4,
			"ci/cd":      0.4,
		},
		"kubernetes": {
			"docker":     0.7,
			"containers": 0.9,
		},
		"aws": {
			"cloud": 0.9,
			"gcp":   0.5,
			"azure": 0.5,
		},
		"gcp": {
			"cloud": 0.9,
			"aws":   0.5,
		},
		"azure": {
			"cloud": 0.9,
			"aws":   0.5,
		},
		"terraform": {
			"infrastructure as code": 1.0,
			"ci/cd":                  0.3,
		},
		"github actions": {
			"ci/cd": 0.9,
		},
		"jenkins": {
			"ci/cd": 0.9,
		},
		"graphql": {
			"rest api": 0.5,
		},
		"pytorch": {
			"machine learning": 0.8,
			"tensorflow":       0.6,
		},
		"tensorflow": {
			"machine learning": 0.8,
			"pytorch":          0.6,
		},
		"pandas": {
			"data analysis": 0.9,
		},
	}
}
