// skill_bridge — Skill-to-Job Matching & Gap Analysis MCP server.
//
// Analyzes a GitHub user's public repositories into a skill profile, then
// matches it against a job-role catalog: ranked matches, aggregated skill
// gaps, career progressions and generated learning paths.
//
// Exposes seven MCP tools: github_analyze, job_matches, skill_gaps,
// career_path, learning_path, role_catalog, analysis_history.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-kit/llm"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lassyamkotian2006/AI-Powered-Skill-to-Work-Bridge/internal/bridgeserver"
	"github.com/lassyamkotian2006/AI-Powered-Skill-to-Work-Bridge/internal/engine"
	"github.com/lassyamkotian2006/AI-Powered-Skill-to-Work-Bridge/internal/engine/match"
	"github.com/lassyamkotian2006/AI-Powered-Skill-to-Work-Bridge/internal/store"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8893")
)

func main() {
	initEngine()

	slog.Info("starting skill_bridge",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "skill_bridge",
		Version: version,
	}, nil)

	bridgeserver.RegisterTools(server)
	slog.Info("tools registered", slog.Int("count", 7))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "skill_bridge",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 600 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	c := engine.Config{
		LLMAPIKey:            env.Str("LLM_API_KEY", ""),
		LLMAPIKeyFallbacks:   env.List("LLM_API_KEY_FALLBACKS", ""),
		LLMAPIBase:           env.Str("LLM_API_BASE", "https://generativelanguage.googleapis.com/v1beta/openai"),
		LLMModel:             env.Str("LLM_MODEL", "gemini-2.5-flash"),
		LLMTemperature:       env.Float("LLM_TEMPERATURE", 0.2),
		LLMMaxTokens:         env.Int("LLM_MAX_TOKENS", 8192),
		GithubToken:          env.Str("GITHUB_TOKEN", ""),
		GithubRPS:            env.Float("GITHUB_RPS", 2),
		MaxRepos:             env.Int("MAX_REPOS", 12),
		MaxReadmeChars:       env.Int("MAX_README_CHARS", 4000),
		FetchTimeout:         env.Duration("FETCH_TIMEOUT", 10*time.Second),
		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}

	if c.LLMAPIKey != "" {
		c.LLMClient = llm.NewClient(c.LLMAPIBase, c.LLMAPIKey, c.LLMModel,
			llm.WithFallbackKeys(c.LLMAPIKeyFallbacks),
			llm.WithMaxTokens(c.LLMMaxTokens),
			llm.WithTemperature(c.LLMTemperature),
			llm.WithHTTPClient(&http.Client{Timeout: 60 * time.Second}),
		)
	} else {
		slog.Warn("LLM_API_KEY not set, skill extraction falls back to heuristics")
	}

	// Optional custom role catalog; built-in catalog otherwise.
	if path := env.Str("ROLE_CATALOG_PATH", ""); path != "" {
		f, err := os.Open(path)
		if err != nil {
			slog.Warn("role catalog open failed, using built-in", slog.Any("error", err))
		} else {
			roles, err := match.LoadCatalog(f)
			f.Close()
			if err != nil {
				slog.Warn("role catalog parse failed, using built-in", slog.Any("error", err))
			} else {
				c.Catalog = roles
				slog.Info("role catalog loaded", slog.String("path", path), slog.Int("roles", len(roles)))
			}
		}
	}

	engine.Init(c)

	// Profile DB (PostgreSQL), optional.
	if dbURL := env.Str("DATABASE_URL", ""); dbURL != "" {
		pdb, err := store.ConnectProfileDB(context.Background(), dbURL)
		if err != nil {
			slog.Warn("profile DB init failed", slog.Any("error", err))
		} else {
			store.SetProfileDB(pdb)
			slog.Info("profile DB initialized")
		}
	}

	cacheTTL := env.Duration("CACHE_TTL", 30*time.Minute)
	engine.InitCache(env.Str("REDIS_URL", ""), cacheTTL, c.CacheMaxEntries, c.CacheCleanupInterval)
}
