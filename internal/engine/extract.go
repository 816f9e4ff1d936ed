package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lassyamkotian2006/AI-Powered-Skill-to-Work-Bridge/internal/engine/match"
)

const extractPrompt = `You are a technical recruiter analyzing a GitHub repository.
Identify the concrete skills its author demonstrates.

Repository: %s
Languages (by volume): %s
Dependency manifests:
%s
README excerpt:
%s

Return ONLY a JSON array, no prose. Each element:
{"name": "skill name", "category": "language|framework|database|tool|cloud|concept|other", "level": "beginner|intermediate|advanced|expert", "confidence": 0.0-1.0, "evidence": "one short phrase"}

Rules:
- Name skills by their common industry name (e.g. "PostgreSQL", not "psql").
- Level reflects demonstrated depth, not mere presence.
- Confidence reflects how certain the evidence is.
- At most 15 skills. Skip trivial or ambiguous ones.`

// llmSkill is the shape the extraction prompt asks for.
type llmSkill struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Level      string  `json:"level"`
	Confidence float64 `json:"confidence"`
	Evidence   string  `json:"evidence"`
}

// ExtractRepoSkills extracts skill observations from one repo's signals.
// Uses the LLM when configured; falls back to heuristics on any failure.
func ExtractRepoSkills(ctx context.Context, repo GithubRepo, languages []string, readme string, manifests map[string]string) []match.SkillObservation {
	metrics.ExtractRequests.Add(1)

	obs, err := extractViaLLM(ctx, repo, languages, readme, manifests)
	if err != nil {
		if err != ErrLLMDisabled {
			slog.Warn("extract: llm failed, using heuristics", slog.String("repo", repo.FullName), slog.Any("error", err))
		}
		metrics.ExtractFallbacks.Add(1)
		obs = HeuristicSkills(repo, languages, manifests)
	}
	return obs
}

func extractViaLLM(ctx context.Context, repo GithubRepo, languages []string, readme string, manifests map[string]string) ([]match.SkillObservation, error) {
	var mb strings.Builder
	for path, content := range manifests {
		fmt.Fprintf(&mb, "--- %s ---\n%s\n", path, TruncateRunes(content, 1500, "..."))
	}
	if mb.Len() == 0 {
		mb.WriteString("(none)\n")
	}

	prompt := fmt.Sprintf(extractPrompt,
		repo.FullName,
		strings.Join(languages, ", "),
		mb.String(),
		TruncateRunes(readme, 2000, "..."),
	)

	raw, err := CallLLM(ctx, prompt)
	if err != nil {
		return nil, err
	}

	// Models sometimes wrap the array in prose despite instructions.
	if i := strings.Index(raw, "["); i > 0 {
		raw = raw[i:]
	}
	if i := strings.LastIndex(raw, "]"); i >= 0 {
		raw = raw[:i+1]
	}

	var skills []llmSkill
	if err := json.Unmarshal([]byte(raw), &skills); err != nil {
		return nil, fmt.Errorf("parse llm skills: %w", err)
	}

	seen := map[string]bool{}
	out := make([]match.SkillObservation, 0, len(skills))
	for _, s := range skills {
		name := strings.TrimSpace(s.Name)
		key := CanonicalSkillKey(name)
		if name == "" || seen[key] {
			continue
		}
		seen[key] = true
		conf := s.Confidence
		if conf < 0 {
			conf = 0
		}
		if conf > 1 {
			conf = 1
		}
		evidence := s.Evidence
		if evidence == "" {
			evidence = "seen in " + repo.FullName
		}
		out = append(out, match.SkillObservation{
			Name:       name,
			Category:   normCategory(s.Category),
			Level:      normLevel(s.Level),
			Confidence: conf,
			RepoCount:  1,
			Evidence:   []string{repo.FullName + ": " + evidence},
		})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("llm returned no usable skills")
	}
	return out, nil
}

func normLevel(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case match.LevelExpert:
		return match.LevelExpert
	case match.LevelAdvanced:
		return match.LevelAdvanced
	case match.LevelIntermediate:
		return match.LevelIntermediate
	default:
		return match.LevelBeginner
	}
}

func normCategory(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case match.CategoryLanguage, match.CategoryFramework, match.CategoryDatabase,
		match.CategoryTool, match.CategoryCloud, match.CategoryConcept:
		return strings.ToLower(strings.TrimSpace(s))
	default:
		return match.CategoryOther
	}
}

// depSkills maps dependency-manifest substrings to skills.
// Checked against lowercased manifest contents.
var depSkills = []struct {
	token    string
	name     string
	category string
}{
	{"react", "React", match.CategoryFramework},
	{"vue", "Vue.js", match.CategoryFramework},
	{"angular", "Angular", match.CategoryFramework},
	{"next", "Next.js", match.CategoryFramework},
	{"express", "Express", match.CategoryFramework},
	{"django", "Django", match.CategoryFramework},
	{"flask", "Flask", match.CategoryFramework},
	{"fastapi", "FastAPI", match.CategoryFramework},
	{"spring", "Spring", match.CategoryFramework},
	{"rails", "Ruby on Rails", match.CategoryFramework},
	{"pg", "PostgreSQL", match.CategoryDatabase},
	{"postgres", "PostgreSQL", match.CategoryDatabase},
	{"mysql", "MySQL", match.CategoryDatabase},
	{"mongodb", "MongoDB", match.CategoryDatabase},
	{"mongoose", "MongoDB", match.CategoryDatabase},
	{"redis", "Redis", match.CategoryDatabase},
	{"sqlite", "SQLite", match.CategoryDatabase},
	{"jest", "Testing", match.CategoryConcept},
	{"pytest", "Testing", match.CategoryConcept},
	{"testify", "Testing", match.CategoryConcept},
	{"graphql", "GraphQL", match.CategoryConcept},
	{"grpc", "gRPC", match.CategoryConcept},
	{"kafka", "Kafka", match.CategoryTool},
	{"boto3", "AWS", match.CategoryCloud},
	{"aws-sdk", "AWS", match.CategoryCloud},
	{"tensorflow", "Machine Learning", match.CategoryConcept},
	{"pytorch", "PyTorch", match.CategoryFramework},
	{"torch", "PyTorch", match.CategoryFramework},
	{"scikit-learn", "Machine Learning", match.CategoryConcept},
	{"pandas", "Pandas", match.CategoryFramework},
	{"numpy", "NumPy", match.CategoryFramework},
	{"tailwind", "Tailwind CSS", match.CategoryFramework},
}

// HeuristicSkills derives observations from repo languages and manifests
// without an LLM. Conservative: everything comes out beginner/intermediate
// with moderate confidence.
func HeuristicSkills(repo GithubRepo, languages []string, manifests map[string]string) []match.SkillObservation {
	seen := map[string]bool{}
	var out []match.SkillObservation

	add := func(name, category, level string, confidence float64, evidence string) {
		key := CanonicalSkillKey(name)
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		out = append(out, match.SkillObservation{
			Name:       name,
			Category:   category,
			Level:      level,
			Confidence: confidence,
			RepoCount:  1,
			Evidence:   []string{repo.FullName + ": " + evidence},
		})
	}

	// Primary language carries the strongest signal.
	for i, lang := range languages {
		level := match.LevelBeginner
		conf := 0.5
		if i == 0 {
			level = match.LevelIntermediate
			conf = 0.7
		}
		add(lang, match.CategoryLanguage, level, conf, "repo language")
	}

	var manifestFiles []string
	var joined strings.Builder
	for path, content := range manifests {
		manifestFiles = append(manifestFiles, path)
		joined.WriteString(strings.ToLower(content))
		joined.WriteByte('\n')
	}
	all := joined.String()

	for _, d := range depSkills {
		if strings.Contains(all, d.token) {
			add(d.name, d.category, match.LevelBeginner, 0.5, "dependency manifest")
		}
	}

	for _, path := range manifestFiles {
		base := path[strings.LastIndex(path, "/")+1:]
		switch base {
		case "Dockerfile", "docker-compose.yml":
			add("Docker", match.CategoryTool, match.LevelBeginner, 0.6, base+" present")
		case "go.mod":
			add("Go", match.CategoryLanguage, match.LevelIntermediate, 0.7, "go module")
		}
	}

	// Every pushed repo implies version control.
	add("Git", match.CategoryTool, match.LevelIntermediate, 0.8, "repository history")

	return out
}
