package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	GithubRequests       atomic.Int64
	GithubErrors         atomic.Int64
	LLMCalls             atomic.Int64
	LLMErrors            atomic.Int64
	ExtractRequests      atomic.Int64
	ExtractFallbacks     atomic.Int64
	MatchRequests        atomic.Int64
	GapRequests          atomic.Int64
	CareerRequests       atomic.Int64
	LearningPathRequests atomic.Int64
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"github_requests":        metrics.GithubRequests.Load(),
		"github_errors":          metrics.GithubErrors.Load(),
		"llm_calls":              metrics.LLMCalls.Load(),
		"llm_errors":             metrics.LLMErrors.Load(),
		"extract_requests":       metrics.ExtractRequests.Load(),
		"extract_fallbacks":      metrics.ExtractFallbacks.Load(),
		"match_requests":         metrics.MatchRequests.Load(),
		"gap_requests":           metrics.GapRequests.Load(),
		"career_requests":        metrics.CareerRequests.Load(),
		"learning_path_requests": metrics.LearningPathRequests.Load(),
		"cache_hits":             hits,
		"cache_misses":           misses,
	}
}

// FormatMetrics returns metrics as a simple text format for the HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"github_requests", "github_errors",
		"llm_calls", "llm_errors",
		"extract_requests", "extract_fallbacks",
		"match_requests", "gap_requests", "career_requests",
		"learning_path_requests",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the bridgeserver package. Learning-path requests are
// counted inside GenerateLearningPath.
func IncrMatchRequests()  { metrics.MatchRequests.Add(1) }
func IncrGapRequests()    { metrics.GapRequests.Add(1) }
func IncrCareerRequests() { metrics.CareerRequests.Add(1) }
