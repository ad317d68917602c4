// Package job turns a free-text job description into a structured list of
// skill requirements by keyword matching.
package job

import (
	"strings"

	"interviewsim/internal/types"
)

// requirementVocabulary is the fixed set of skills looked up in job
// descriptions. Smaller than the resume vocabulary on purpose: postings
// name fewer, broader technologies.
var requirementVocabulary = []string{
	"JavaScript", "TypeScript", "Python", "Java", "React", "Node.js",
	"SQL", "MongoDB", "AWS", "Docker", "Kubernetes", "Microservices",
}

// ExtractRequirements derives skill requirements from a job description.
// The seniority level and required flag come from keyword presence anywhere
// in the description, so they apply uniformly to every matched skill.
func ExtractRequirements(description string) []types.JobRequirement {
	lower := strings.ToLower(description)

	level := types.LevelMid
	if strings.Contains(lower, "senior") || strings.Contains(lower, "lead") || strings.Contains(lower, "architect") {
		level = types.LevelSenior
	} else if strings.Contains(lower, "junior") || strings.Contains(lower, "entry") {
		level = types.LevelJunior
	}

	required := strings.Contains(lower, "required") || strings.Contains(lower, "must have")

	var requirements []types.JobRequirement
	for _, skill := range requirementVocabulary {
		if strings.Contains(lower, strings.ToLower(skill)) {
			requirements = append(requirements, types.JobRequirement{
				Skill:    skill,
				Level:    level,
				Required: required,
			})
		}
	}

	return requirements
}

// NewJobDescription bundles a submitted posting with its derived requirements
func NewJobDescription(title, company, description string) types.JobDescription {
	return types.JobDescription{
		Title:        title,
		Company:      company,
		Description:  description,
		Requirements: ExtractRequirements(description),
	}
}
