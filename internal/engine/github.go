package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"golang.org/x/time/rate"
)

// githubLimiter throttles GitHub API calls. The unauthenticated quota is
// 60 req/h, so the limiter mostly protects the authenticated path from
// secondary rate limits during multi-repo analysis.
var githubLimiter *rate.Limiter

func initGithubLimiter() {
	githubLimiter = rate.NewLimiter(rate.Limit(cfg.GithubRPS), int(cfg.GithubRPS)+1)
}

// GithubRepo is the subset of the repos API response the analyzer needs.
type GithubRepo struct {
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Fork        bool   `json:"fork"`
	Stars       int    `json:"stargazers_count"`
	PushedAt    string `json:"pushed_at"`
}

// githubGet performs a rate-limited, retried GET against the GitHub API.
// accept overrides the media type; empty means the JSON default.
func githubGet(ctx context.Context, url, accept string) (*http.Response, error) {
	if err := githubLimiter.Wait(ctx); err != nil {
		return nil, err
	}
	metrics.GithubRequests.Add(1)
	resp, err := RetryHTTP(ctx, DefaultRetryConfig, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", UserAgent)
		if accept != "" {
			req.Header.Set("Accept", accept)
		} else {
			req.Header.Set("Accept", "application/vnd.github+json")
		}
		if cfg.GithubToken != "" {
			req.Header.Set("Authorization", "Bearer "+cfg.GithubToken)
		}
		return cfg.HTTPClient.Do(req)
	})
	if err != nil {
		metrics.GithubErrors.Add(1)
	}
	return resp, err
}

// ListUserRepos returns the user's most recently pushed non-fork repos,
// capped at cfg.MaxRepos.
func ListUserRepos(ctx context.Context, username string) ([]GithubRepo, error) {
	url := fmt.Sprintf("%s/users/%s/repos?sort=pushed&per_page=100", cfg.GithubAPIBase, username)
	resp, err := githubGet(ctx, url, "")
	if err != nil {
		return nil, fmt.Errorf("list repos for %s: %w", username, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("github user %q not found", username)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("repos API: status %d", resp.StatusCode)
	}

	var repos []GithubRepo
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, fmt.Errorf("decode repos: %w", err)
	}

	out := make([]GithubRepo, 0, cfg.MaxRepos)
	for _, r := range repos {
		if r.Fork {
			continue
		}
		out = append(out, r)
		if len(out) >= cfg.MaxRepos {
			break
		}
	}
	slog.Debug("github: listed repos", slog.String("user", username), slog.Int("count", len(out)))
	return out, nil
}

// RepoLanguages returns the repo's languages ordered by bytes of code, descending.
func RepoLanguages(ctx context.Context, fullName string) ([]string, error) {
	url := fmt.Sprintf("%s/repos/%s/languages", cfg.GithubAPIBase, fullName)
	resp, err := githubGet(ctx, url, "")
	if err != nil {
		return nil, fmt.Errorf("languages for %s: %w", fullName, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("languages API: status %d", resp.StatusCode)
	}

	var byBytes map[string]int64
	if err := json.NewDecoder(resp.Body).Decode(&byBytes); err != nil {
		return nil, fmt.Errorf("decode languages: %w", err)
	}

	langs := make([]string, 0, len(byBytes))
	for name := range byBytes {
		langs = append(langs, name)
	}
	sort.Slice(langs, func(i, j int) bool {
		if byBytes[langs[i]] != byBytes[langs[j]] {
			return byBytes[langs[i]] > byBytes[langs[j]]
		}
		return langs[i] < langs[j]
	})
	return langs, nil
}

// RepoReadme fetches the repo README rendered as HTML and converts it to
// markdown. Returns "" (no error) when the repo has no README.
func RepoReadme(ctx context.Context, fullName string) (string, error) {
	url := fmt.Sprintf("%s/repos/%s/readme", cfg.GithubAPIBase, fullName)
	resp, err := githubGet(ctx, url, "application/vnd.github.html")
	if err != nil {
		return "", fmt.Errorf("readme for %s: %w", fullName, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("readme API: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read readme body: %w", err)
	}

	md, err := htmltomarkdown.ConvertString(string(body))
	if err != nil {
		md = HTMLToText(string(body))
	}
	return Truncate(strings.TrimSpace(md), cfg.MaxReadmeChars), nil
}

// manifestNames are dependency manifests whose contents reveal the stack.
var manifestNames = map[string]bool{
	"package.json":       true,
	"go.mod":             true,
	"requirements.txt":   true,
	"pyproject.toml":     true,
	"Gemfile":            true,
	"Cargo.toml":         true,
	"pom.xml":            true,
	"build.gradle":       true,
	"composer.json":      true,
	"Dockerfile":         true,
	"docker-compose.yml": true,
}

// RepoManifests finds dependency manifests in the repo tree and fetches
// their contents, keyed by path. Only top-two-level paths are considered
// to skip vendored code.
func RepoManifests(ctx context.Context, fullName string) (map[string]string, error) {
	url := fmt.Sprintf("%s/repos/%s/git/trees/HEAD?recursive=1", cfg.GithubAPIBase, fullName)
	resp, err := githubGet(ctx, url, "")
	if err != nil {
		return nil, fmt.Errorf("tree for %s: %w", fullName, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tree API: status %d", resp.StatusCode)
	}

	var tree struct {
		Tree []struct {
			Path string `json:"path"`
			Type string `json:"type"`
		} `json:"tree"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tree); err != nil {
		return nil, fmt.Errorf("decode tree: %w", err)
	}

	out := map[string]string{}
	for _, item := range tree.Tree {
		if item.Type != "blob" || strings.Count(item.Path, "/") > 1 {
			continue
		}
		base := item.Path[strings.LastIndex(item.Path, "/")+1:]
		if !manifestNames[base] {
			continue
		}
		content, err := rawFileContent(ctx, fullName, item.Path)
		if err != nil {
			slog.Debug("github: manifest fetch failed", slog.String("path", item.Path), slog.Any("error", err))
			continue
		}
		out[item.Path] = content
		if len(out) >= 8 {
			break
		}
	}
	return out, nil
}

// rawFileContent fetches a file via the contents API with the raw media type.
func rawFileContent(ctx context.Context, fullName, path string) (string, error) {
	url := fmt.Sprintf("%s/repos/%s/contents/%s", cfg.GithubAPIBase, fullName, path)
	resp, err := githubGet(ctx, url, "application/vnd.github.raw+json")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("contents API: status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, cfg.MaxManifestBytes))
	if err != nil {
		return "", err
	}
	return string(body), nil
}
