package regexp

import (
	"context"
	"strings"

	"github.com/fwojciec/resumeparse"
)

// Ensure SkillsExtractor implements resumeparse.FieldExtractor at compile time.
var _ resumeparse.FieldExtractor = (*SkillsExtractor)(nil)

// catalogue lists common technical skills matched against resume text.
// Matches are reported in catalogue order with catalogue spelling.
var catalogue = []string{
	"Python", "Java", "JavaScript", "C++", "C#", "Ruby", "Go", "Rust",
	"SQL", "NoSQL", "MongoDB", "PostgreSQL", "MySQL",
	"React", "Angular", "Vue", "Node.js", "Django", "Flask", "Spring",
	"Docker", "Kubernetes", "AWS", "Azure", "GCP",
	"Git", "CI/CD", "Jenkins", "Linux", "Unix",
	"Machine Learning", "Deep Learning", "AI", "NLP", "Computer Vision",
	"TensorFlow", "PyTorch", "Scikit-learn", "Pandas", "NumPy",
	"REST API", "GraphQL", "Microservices", "Agile", "Scrum",
}

// SkillsExtractor extracts technical skills by case-insensitive substring
// matching against a fixed catalogue. It is deterministic and entirely
// local, which makes it the degrade path for the remote gemini extractor.
type SkillsExtractor struct{}

// NewSkillsExtractor creates a new SkillsExtractor.
func NewSkillsExtractor() *SkillsExtractor {
	return &SkillsExtractor{}
}

// Extract returns the catalogue entries mentioned in the text, in catalogue
// order. It never returns an error.
func (e *SkillsExtractor) Extract(_ context.Context, text string) (resumeparse.FieldValue, error) {
	if strings.TrimSpace(text) == "" {
		return resumeparse.ListValue([]string{}), nil
	}

	lower := strings.ToLower(text)
	found := []string{}
	for _, skill := range catalogue {
		if strings.Contains(lower, strings.ToLower(skill)) {
			found = append(found, skill)
		}
	}
	return resumeparse.ListValue(found), nil
}
