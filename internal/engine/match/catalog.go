package match

import (
	"encoding/json"
	"fmt"
	"io"
)

// LoadCatalog parses a JSON role catalog ([]JobRole) from r.
func LoadCatalog(r io.Reader) ([]JobRole, error) {
	var roles []JobRole
	if err := json.NewDecoder(r).Decode(&roles); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	return roles, nil
}

// DefaultCatalog returns the built-in fallback job-role catalog, used when no
// external catalog is injected. Immutable by convention: a fresh slice is
// returned on every call so callers cannot corrupt shared state.
func DefaultCatalog() []JobRole {
	return []JobRole{
		{
			ID: "frontend-entry", Title: "Frontend Developer", Slug: "frontend-developer",
			ExperienceLevel: ExperienceEntry,
			Salary:          SalaryRange{Min: 55000, Max: 80000}, DemandScore: 86,
			Requirements: []Requirement{
				{Name: "JavaScript", Category: CategoryLanguage, Importance: ImportanceRequired, MinLevel: LevelIntermediate},
				{Name: "React", Category: CategoryFramework, Importance: ImportanceRequired, MinLevel: LevelIntermediate},
				{Name: "HTML", Category: CategoryLanguage, Importance: ImportanceRequired, MinLevel: LevelBeginner},
				{Name: "CSS", Category: CategoryLanguage, Importance: ImportanceRequired, MinLevel: LevelBeginner},
				{Name: "Git", Category: CategoryTool, Importance: ImportanceRequired, MinLevel: LevelBeginner},
				{Name: "TypeScript", Category: CategoryLanguage, Importance: ImportancePreferred, MinLevel: LevelBeginner},
				{Name: "Figma", Category: CategoryTool, Importance: ImportanceNiceToHave, MinLevel: LevelBeginner},
			},
		},
		{
			ID: "frontend-mid", Title: "Frontend Engineer", Slug: "frontend-engineer",
			ExperienceLevel: ExperienceMid,
			Salary:          SalaryRange{Min: 85000, Max: 120000}, DemandScore: 82,
			Requirements: []Requirement{
				{Name: "JavaScript", Category: CategoryLanguage, Importance: ImportanceRequired, MinLevel: LevelAdvanced},
				{Name: "TypeScript", Category: CategoryLanguage, Importance: ImportanceRequired, MinLevel: LevelIntermediate},
				{Name: "React", Category: CategoryFramework, Importance: ImportanceRequired, MinLevel: LevelAdvanced},
				{Name: "Next.js", Category: CategoryFramework, Importance: ImportancePreferred, MinLevel: LevelIntermediate},
				{Name: "Testing", Category: CategoryConcept, Importance: ImportancePreferred, MinLevel: LevelIntermediate},
				{Name: "GraphQL", Category: CategoryConcept, Importance: ImportanceNiceToHave, MinLevel: LevelBeginner},
			},
		},
		{
			ID: "frontend-senior", Title: "Senior Frontend Engineer", Slug: "senior-frontend-engineer",
			ExperienceLevel: ExperienceSenior,
			Salary:          SalaryRange{Min: 130000, Max: 175000}, DemandScore: 75,
			Requirements: []Requirement{
				{Name: "JavaScript", Category: CategoryLanguage, Importance: ImportanceRequired, MinLevel: LevelExpert},
				{Name: "TypeScript", Category: CategoryLanguage, Importance: ImportanceRequired, MinLevel: LevelAdvanced},
				{Name: "React", Category: CategoryFramework, Importance: ImportanceRequired, MinLevel: LevelExpert},
				{Name: "System Design", Category: CategoryConcept, Importance: ImportanceRequired, MinLevel: LevelAdvanced},
				{Name: "Performance Optimization", Category: CategoryConcept, Importance: ImportancePreferred, MinLevel: LevelAdvanced},
				{Name: "Mentoring", Category: CategoryConcept, Importance: ImportanceNiceToHave, MinLevel: LevelIntermediate},
			},
		},
		{
			ID: "backend-entry", Title: "Backend Developer", Slug: "backend-developer",
			ExperienceLevel: ExperienceEntry,
			Salary:          SalaryRange{Min: 60000, Max: 85000}, DemandScore: 88,
			Requirements: []Requirement{
				{Name: "Python", Category: CategoryLanguage, Importance: ImportanceRequired, MinLevel: LevelIntermediate},
				{Name: "SQL", Category: CategoryDatabase, Importance: ImportanceRequired, MinLevel: LevelBeginner},
				{Name: "REST API", Category: CategoryConcept, Importance: ImportanceRequired, MinLevel: LevelBeginner},
				{Name: "Git", Category: CategoryTool, Importance: ImportanceRequired, MinLevel: LevelBeginner},
				{Name: "Docker", Category: CategoryTool, Importance: ImportancePreferred, MinLevel: LevelBeginner},
				{Name: "Redis", Category: CategoryDatabase, Importance: ImportanceNiceToHave, MinLevel: LevelBeginner},
			},
		},
		{
			ID: "backend-mid", Title: "Backend Engineer", Slug: "backend-engineer",
			ExperienceLevel: ExperienceMid,
			Salary:          SalaryRange{Min: 90000, Max: 130000}, DemandScore: 85,
			Requirements: []Requirement{
				{Name: "Go", Category: CategoryLanguage, Importance: ImportanceRequired, MinLevel: LevelIntermediate},
				{Name: "PostgreSQL", Category: CategoryDatabase, Importance: ImportanceRequired, MinLevel: LevelIntermediate},
				{Name: "REST API", Category: CategoryConcept, Importance: ImportanceRequired, MinLevel: LevelAdvanced},
				{Name: "Docker", Category: CategoryTool, Importance: ImportanceRequired, MinLevel: LevelIntermediate},
				{Name: "Kubernetes", Category: CategoryTool, Importance: ImportancePreferred, MinLevel: LevelBeginner},
				{Name: "Message Queues", Category: CategoryConcept, Importance: ImportancePreferred, MinLevel: LevelBeginner},
				{Name: "GraphQL", Category: CategoryConcept, Importance: ImportanceNiceToHave, MinLevel: LevelBeginner},
			},
		},
		{
			ID: "backend-senior", Title: "Senior Backend Engineer", Slug: "senior-backend-engineer",
			ExperienceLevel: ExperienceSenior,
			Salary:          SalaryRange{Min: 140000, Max: 185000}, DemandScore: 80,
			Requirements: []Requirement{
				{Name: "Go", Category: CategoryLanguage, Importance: ImportanceRequired, MinLevel: LevelAdvanced},
				{Name: "PostgreSQL", Category: CategoryDatabase, Importance: ImportanceRequired, MinLevel: LevelAdvanced},
				{Name: "System Design", Category: CategoryConcept, Importance: ImportanceRequired, MinLevel: LevelAdvanced},
				{Name: "Kubernetes", Category: CategoryTool, Importance: ImportanceRequired, MinLevel: LevelIntermediate},
				{Name: "AWS", Category: CategoryCloud, Importance: ImportancePreferred, MinLevel: LevelIntermediate},
				{Name: "Mentoring", Category: CategoryConcept, Importance: ImportanceNiceToHave, MinLevel: LevelIntermediate},
			},
		},
		{
			ID: "fullstack-entry", Title: "Full Stack Developer", Slug: "full-stack-developer",
			ExperienceLevel: ExperienceEntry,
			Salary:          SalaryRange{Min: 58000, Max: 84000}, DemandScore: 84,
			Requirements: []Requirement{
				{Name: "JavaScript", Category: CategoryLanguage, Importance: ImportanceRequired, MinLevel: LevelIntermediate},
				{Name: "Node.js", Category: CategoryFramework, Importance: ImportanceRequired, MinLevel: LevelBeginner},
				{Name: "React", Category: CategoryFramework, Importance: ImportanceRequired, MinLevel: LevelBeginner},
				{Name: "SQL", Category: CategoryDatabase, Importance: ImportanceRequired, MinLevel: LevelBeginner},
				{Name: "Git", Category: CategoryTool, Importance: ImportanceRequired, MinLevel: LevelBeginner},
				{Name: "MongoDB", Category: CategoryDatabase, Importance: ImportanceNiceToHave, MinLevel: LevelBeginner},
			},
		},
		{
			ID: "fullstack-mid", Title: "Full Stack Engineer", Slug: "full-stack-engineer",
			ExperienceLevel: ExperienceMid,
			Salary:          SalaryRange{Min: 88000, Max: 125000}, DemandScore: 83,
			Requirements: []Requirement{
				{Name: "TypeScript", Category: CategoryLanguage, Importance: ImportanceRequired, MinLevel: LevelIntermediate},
				{Name: "Node.js", Category: CategoryFramework, Importance: ImportanceRequired, MinLevel: LevelIntermediate},
				{Name: "React", Category: CategoryFramework, Importance: ImportanceRequired, MinLevel: LevelIntermediate},
				{Name: "PostgreSQL", Category: CategoryDatabase, Importance: ImportanceRequired, MinLevel: LevelIntermediate},
				{Name: "Docker", Category: CategoryTool, Importance: ImportancePreferred, MinLevel: LevelBeginner},
				{Name: "CI/CD", Category: CategoryConcept, Importance: ImportancePreferred, MinLevel: LevelBeginner},
			},
		},
		{
			ID: "data-entry", Title: "Data Analyst", Slug: "data-analyst",
			ExperienceLevel: ExperienceEntry,
			Salary:          SalaryRange{Min: 55000, Max: 78000}, DemandScore: 79,
			Requirements: []Requirement{
				{Name: "Python", Category: CategoryLanguage, Importance: ImportanceRequired, MinLevel: LevelIntermediate},
				{Name: "SQL", Category: CategoryDatabase, Importance: ImportanceRequired, MinLevel: LevelIntermediate},
				{Name: "Data Analysis", Category: CategoryConcept, Importance: ImportanceRequired, MinLevel: LevelBeginner},
				{Name: "Pandas", Category: CategoryFramework, Importance: ImportancePreferred, MinLevel: LevelBeginner},
				{Name: "Excel", Category: CategoryTool, Importance: ImportanceNiceToHave, MinLevel: LevelIntermediate},
			},
		},
		{
			ID: "data-mid", Title: "Data Engineer", Slug: "data-engineer",
			ExperienceLevel: ExperienceMid,
			Salary:          SalaryRange{Min: 95000, Max: 135000}, DemandScore: 87,
			Requirements: []Requirement{
				{Name: "Python", Category: CategoryLanguage, Importance: ImportanceRequired, MinLevel: LevelAdvanced},
				{Name: "SQL", Category: CategoryDatabase, Importance: ImportanceRequired, MinLevel: LevelAdvanced},
				{Name: "ETL", Category: CategoryConcept, Importance: ImportanceRequired, MinLevel: LevelIntermediate},
				{Name: "Airflow", Category: CategoryTool, Importance: ImportancePreferred, MinLevel: LevelBeginner},
				{Name: "AWS", Category: CategoryCloud, Importance: ImportancePreferred, MinLevel: LevelIntermediate},
				{Name: "Spark", Category: CategoryFramework, Importance: ImportanceNiceToHave, MinLevel: LevelBeginner},
			},
		},
		{
			ID: "ml-senior", Title: "Machine Learning Engineer", Slug: "machine-learning-engineer",
			ExperienceLevel: ExperienceSenior,
			Salary:          SalaryRange{Min: 145000, Max: 200000}, DemandScore: 90,
			Requirements: []Requirement{
				{Name: "Python", Category: CategoryLanguage, Importance: ImportanceRequired, MinLevel: LevelExpert},
				{Name: "Machine Learning", Category: CategoryConcept, Importance: ImportanceRequired, MinLevel: LevelAdvanced},
				{Name: "PyTorch", Category: CategoryFramework, Importance: ImportanceRequired, MinLevel: LevelIntermediate},
				{Name: "SQL", Category: CategoryDatabase, Importance: ImportancePreferred, MinLevel: LevelIntermediate},
				{Name: "MLOps", Category: CategoryConcept, Importance: ImportancePreferred, MinLevel: LevelBeginner},
				{Name: "Kubernetes", Category: CategoryTool, Importance: ImportanceNiceToHave, MinLevel: LevelBeginner},
			},
		},
		{
			ID: "devops-entry", Title: "DevOps Engineer", Slug: "devops-engineer",
			ExperienceLevel: ExperienceEntry,
			Salary:          SalaryRange{Min: 62000, Max: 88000}, DemandScore: 81,
			Requirements: []Requirement{
				{Name: "Linux", Category: CategoryTool, Importance: ImportanceRequired, MinLevel: LevelIntermediate},
				{Name: "Docker", Category: CategoryTool, Importance: ImportanceRequired, MinLevel: LevelBeginner},
				{Name: "Git", Category: CategoryTool, Importance: ImportanceRequired, MinLevel: LevelIntermediate},
				{Name: "CI/CD", Category: CategoryConcept, Importance: ImportanceRequired, MinLevel: LevelBeginner},
				{Name: "Bash", Category: CategoryLanguage, Importance: ImportancePreferred, MinLevel: LevelIntermediate},
				{Name: "Terraform", Category: CategoryTool, Importance: ImportanceNiceToHave, MinLevel: LevelBeginner},
			},
		},
		{
			ID: "devops-senior", Title: "Senior DevOps Engineer", Slug: "senior-devops-engineer",
			ExperienceLevel: ExperienceSenior,
			Salary:          SalaryRange{Min: 135000, Max: 180000}, DemandScore: 78,
			Requirements: []Requirement{
				{Name: "Kubernetes", Category: CategoryTool, Importance: ImportanceRequired, MinLevel: LevelAdvanced},
				{Name: "Terraform", Category: CategoryTool, Importance: ImportanceRequired, MinLevel: LevelAdvanced},
				{Name: "AWS", Category: CategoryCloud, Importance: ImportanceRequired, MinLevel: LevelAdvanced},
				{Name: "CI/CD", Category: CategoryConcept, Importance: ImportanceRequired, MinLevel: LevelAdvanced},
				{Name: "Go", Category: CategoryLanguage, Importance: ImportancePreferred, MinLevel: LevelIntermediate},
				{Name: "Observability", Category: CategoryConcept, Importance: ImportancePreferred, MinLevel: LevelIntermediate},
			},
		},
	}
}
