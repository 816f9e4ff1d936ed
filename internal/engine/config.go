package engine

import (
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/llm"

	"github.com/lassyamkotian2006/AI-Powered-Skill-to-Work-Bridge/internal/engine/match"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	LLMAPIKey          string
	LLMAPIKeyFallbacks []string
	LLMAPIBase         string
	LLMModel           string
	LLMTemperature     float64
	LLMMaxTokens       int

	GithubToken      string
	GithubAPIBase    string // overrideable for tests; default https://api.github.com
	GithubRPS        float64
	MaxRepos         int // repos analyzed per user
	MaxReadmeChars   int
	MaxManifestBytes int64
	FetchTimeout     time.Duration

	CacheMaxEntries      int
	CacheCleanupInterval time.Duration

	// Relations and Catalog are immutable engine data. Empty values fall
	// back to the built-in defaults at Init.
	Relations match.RelationGraph
	Catalog   []match.JobRole

	HTTPClient *http.Client
	LLMClient  *llm.Client // nil = LLM extraction disabled, heuristic fallback only
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (bridgeserver, store).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	if c.GithubAPIBase == "" {
		c.GithubAPIBase = "https://api.github.com"
	}
	if c.GithubRPS <= 0 {
		c.GithubRPS = 2
	}
	if c.MaxRepos <= 0 {
		c.MaxRepos = 12
	}
	if c.MaxReadmeChars <= 0 {
		c.MaxReadmeChars = 4000
	}
	if c.MaxManifestBytes <= 0 {
		c.MaxManifestBytes = 32 * 1024
	}
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = 10 * time.Second
	}
	if c.Relations == nil {
		c.Relations = match.DefaultRelations()
	}
	if len(c.Catalog) == 0 {
		c.Catalog = match.DefaultCatalog()
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 15 * time.Second}
	}
	cfg = c
	Cfg = &cfg
	initGithubLimiter()
}
