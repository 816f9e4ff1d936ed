package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/lassyamkotian2006/AI-Powered-Skill-to-Work-Bridge/internal/engine/match"
)

// UserProfile is the merged skill profile extracted from a user's repos.
// A new analysis supersedes any previous profile for the same username.
type UserProfile struct {
	Username      string                   `json:"username"`
	Skills        []match.SkillObservation `json:"skills"`
	ReposAnalyzed int                      `json:"repos_analyzed"`
	AnalyzedAt    time.Time                `json:"analyzed_at"`
}

// analyzeConcurrency bounds parallel repo analysis. GitHub secondary rate
// limits kick in well before CPU does.
const analyzeConcurrency = 4

// AnalyzeGithubUser analyzes a user's public repos and returns their merged
// skill profile. Results are cached by username for CacheTTL; refresh
// bypasses the cached profile.
func AnalyzeGithubUser(ctx context.Context, username string, refresh bool) (UserProfile, error) {
	cacheKey := CacheKey("profile", username)
	if !refresh {
		if cached, ok := CacheLoadJSON[UserProfile](ctx, cacheKey); ok {
			return cached, nil
		}
	}

	repos, err := ListUserRepos(ctx, username)
	if err != nil {
		return UserProfile{}, err
	}
	if len(repos) == 0 {
		return UserProfile{}, fmt.Errorf("user %q has no analyzable repositories", username)
	}

	perRepo := make([][]match.SkillObservation, len(repos))
	var wg sync.WaitGroup
	sem := make(chan struct{}, analyzeConcurrency)

	for i, repo := range repos {
		wg.Add(1)
		go func(i int, repo GithubRepo) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			perRepo[i] = analyzeRepo(ctx, repo)
		}(i, repo)
	}
	wg.Wait()

	profile := UserProfile{
		Username:      username,
		Skills:        match.MergeObservations(perRepo),
		ReposAnalyzed: len(repos),
		AnalyzedAt:    time.Now().UTC(),
	}

	// Strongest signals first.
	sort.SliceStable(profile.Skills, func(a, b int) bool {
		if profile.Skills[a].RepoCount != profile.Skills[b].RepoCount {
			return profile.Skills[a].RepoCount > profile.Skills[b].RepoCount
		}
		return profile.Skills[a].Confidence > profile.Skills[b].Confidence
	})

	CacheStoreJSON(ctx, cacheKey, profile)
	slog.Info("analyzed github user",
		slog.String("username", username),
		slog.Int("repos", profile.ReposAnalyzed),
		slog.Int("skills", len(profile.Skills)))
	return profile, nil
}

// analyzeRepo gathers one repo's signals and extracts observations.
// Failures degrade to whatever signals were fetched; a repo that yields
// nothing contributes an empty slice.
func analyzeRepo(ctx context.Context, repo GithubRepo) []match.SkillObservation {
	languages, err := RepoLanguages(ctx, repo.FullName)
	if err != nil {
		slog.Debug("analyze: languages failed", slog.String("repo", repo.FullName), slog.Any("error", err))
		if repo.Language != "" {
			languages = []string{repo.Language}
		}
	}

	readme, err := RepoReadme(ctx, repo.FullName)
	if err != nil {
		slog.Debug("analyze: readme failed", slog.String("repo", repo.FullName), slog.Any("error", err))
	}

	manifests, err := RepoManifests(ctx, repo.FullName)
	if err != nil {
		slog.Debug("analyze: manifests failed", slog.String("repo", repo.FullName), slog.Any("error", err))
	}

	if len(languages) == 0 && readme == "" && len(manifests) == 0 {
		return nil
	}
	return ExtractRepoSkills(ctx, repo, languages, readme, manifests)
}
