// Package resume derives a candidate profile from raw resume text using
// keyword and pattern heuristics. Every extraction is best-effort: missing
// fields fall back to placeholder values and extraction never fails.
package resume

import (
	"regexp"
	"strconv"
	"strings"

	"interviewsim/internal/types"
)

// skillVocabulary is the fixed set of recognized skills. Matching is a
// case-insensitive literal substring search over the whole resume.
var skillVocabulary = []string{
	"JavaScript", "TypeScript", "Python", "Java", "C++", "React", "Angular",
	"Vue", "Node.js", "Express", "Django", "Flask", "SQL", "MongoDB",
	"PostgreSQL", "MySQL", "Redis", "Docker", "Kubernetes", "AWS", "GCP",
	"Azure", "Git", "CI/CD", "REST", "GraphQL", "Microservices", "Agile",
	"Machine Learning", "AI", "Data Science", "TensorFlow", "PyTorch",
}

// titleVocabulary is the fixed set of recognized prior role titles
var titleVocabulary = []string{
	"Software Engineer", "Senior Software Engineer", "Lead Developer",
	"Full Stack Developer", "Frontend Developer", "Backend Developer",
	"DevOps Engineer", "Data Scientist", "Product Manager", "Engineering Manager",
	"Principal Engineer", "Architect", "Consultant", "Analyst",
}

var degreeKeywords = []string{
	"PhD", "Ph.D", "Doctor", "Masters", "Master", "Bachelor", "BS", "BA", "MS", "MA",
}

var (
	nameRe       = regexp.MustCompile(`^[A-Za-z\s\.]+$`)
	emailRe      = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	experienceRe = regexp.MustCompile(`(?i)(\d+)[+\s]*(?:years?|yrs?)\s*(?:of\s*)?(?:experience|exp)`)
	jobTitleRe   = regexp.MustCompile(`(?i)software engineer|developer|programmer|analyst|manager`)
	universityRe = regexp.MustCompile(`(?i)(?:university|college|institute)[\w\s]*(?:of\s*)?[\w\s]*`)
	// A skill section runs from its heading to a blank line, a line starting
	// with an uppercase letter, or the end of the text.
	skillSectionRe = regexp.MustCompile(`(?is)(?:skills?|technologies?|technical|expertise).*?(?:\n\n|\n[A-Z]|$)`)
)

const (
	unknownCandidate   = "Unknown Candidate"
	educationNotFound  = "Education details not found"
	rolesNotSpecified  = "Previous experience not specified"
	maxFallbackYears   = 15
	nameCandidateLines = 5
)

// Extract builds a candidate profile from raw resume text
func Extract(rawText string) types.CandidateProfile {
	lines := nonEmptyLines(rawText)

	return types.CandidateProfile{
		Name:          extractName(lines),
		Email:         extractEmail(rawText),
		Skills:        extractSkills(rawText),
		Experience:    extractExperience(rawText),
		Education:     extractEducation(rawText),
		PreviousRoles: extractPreviousRoles(rawText),
		ResumeText:    rawText,
	}
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// extractName looks for the first line near the top that looks like a name
func extractName(lines []string) string {
	limit := min(nameCandidateLines, len(lines))
	for _, line := range lines[:limit] {
		if len(line) > 2 && len(line) < 50 &&
			nameRe.MatchString(line) &&
			!strings.Contains(strings.ToLower(line), "resume") {
			return line
		}
	}
	return unknownCandidate
}

func extractEmail(text string) string {
	return emailRe.FindString(text)
}

func extractSkills(text string) []string {
	lower := strings.ToLower(text)

	found := make([]string, 0, 8)
	seen := make(map[string]bool)
	for _, skill := range skillVocabulary {
		if strings.Contains(lower, strings.ToLower(skill)) {
			found = append(found, skill)
			seen[skill] = true
		}
	}

	// Second pass over dedicated skill sections. Anything listed there is a
	// substring of the full text too, so this only matters if the vocabulary
	// scan above is ever narrowed.
	for _, section := range skillSectionRe.FindAllString(text, -1) {
		sectionLower := strings.ToLower(section)
		for _, skill := range skillVocabulary {
			if !seen[skill] && strings.Contains(sectionLower, strings.ToLower(skill)) {
				found = append(found, skill)
				seen[skill] = true
			}
		}
	}

	return found
}

// extractExperience returns the largest "<N> years of experience" figure,
// falling back to an estimate from the number of job title mentions.
func extractExperience(text string) int {
	matches := experienceRe.FindAllStringSubmatch(text, -1)
	if len(matches) > 0 {
		maxYears := 0
		for _, m := range matches {
			if years, err := strconv.Atoi(m[1]); err == nil && years > maxYears {
				maxYears = years
			}
		}
		return maxYears
	}

	jobMatches := jobTitleRe.FindAllString(text, -1)
	if len(jobMatches) > 0 {
		return min(len(jobMatches)*2, maxFallbackYears)
	}
	return 1
}

func extractEducation(text string) string {
	for _, degree := range degreeKeywords {
		re := regexp.MustCompile(`(?i)` + degree + `[^\n]*`)
		if match := re.FindString(text); match != "" {
			return strings.TrimSpace(match)
		}
	}

	if match := universityRe.FindString(text); match != "" {
		return strings.TrimSpace(match)
	}

	return educationNotFound
}

func extractPreviousRoles(text string) []string {
	lower := strings.ToLower(text)

	var roles []string
	for _, title := range titleVocabulary {
		if strings.Contains(lower, strings.ToLower(title)) {
			roles = append(roles, title)
		}
	}

	if len(roles) == 0 {
		return []string{rolesNotSpecified}
	}
	return roles
}
