package resume

import (
	"slices"
	"strings"
	"testing"
)

const sampleResume = `Jane Smith
jane.smith@example.com

SUMMARY
Senior Software Engineer with 7 years of experience building distributed systems.

SKILLS
Go, Python, Docker, Kubernetes, PostgreSQL, AWS

EDUCATION
Bachelor of Science in Computer Science, State University

EXPERIENCE
Senior Software Engineer at Acme Corp
Backend Developer at Widgets Inc
`

func TestExtractName(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "name on first line",
			text:     "John Doe\njohn@example.com",
			expected: "John Doe",
		},
		{
			name:     "name with periods",
			text:     "Dr. Jane A. Smith\nsome text",
			expected: "Dr. Jane A. Smith",
		},
		{
			name:     "skips resume heading",
			text:     "Resume\nJohn Doe\n",
			expected: "John Doe",
		},
		{
			name:     "skips lines with digits",
			text:     "555-123-4567\nJohn Doe",
			expected: "John Doe",
		},
		{
			name:     "too short",
			text:     "Jo\n",
			expected: "Unknown Candidate",
		},
		{
			name:     "too long",
			text:     strings.Repeat("A", 60) + "\n",
			expected: "Unknown Candidate",
		},
		{
			name:     "name beyond first five lines is missed",
			text:     "1\n2\n3\n4\n5\nJohn Doe",
			expected: "Unknown Candidate",
		},
		{
			name:     "empty input",
			text:     "",
			expected: "Unknown Candidate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := Extract(tt.text)
			if profile.Name != tt.expected {
				t.Errorf("expected name %q, got %q", tt.expected, profile.Name)
			}
		})
	}
}

func TestExtractEmail(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "plain email",
			text:     "Contact: jane.smith@example.com",
			expected: "jane.smith@example.com",
		},
		{
			name:     "first of several",
			text:     "a@b.com then c@d.org",
			expected: "a@b.com",
		},
		{
			name:     "with plus tag",
			text:     "mail me at dev+jobs@example.co.uk today",
			expected: "dev+jobs@example.co.uk",
		},
		{
			name:     "none found",
			text:     "no contact details here",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := Extract(tt.text)
			if profile.Email != tt.expected {
				t.Errorf("expected email %q, got %q", tt.expected, profile.Email)
			}
		})
	}
}

func TestExtractSkills(t *testing.T) {
	profile := Extract(sampleResume)

	for _, want := range []string{"Python", "Docker", "Kubernetes", "PostgreSQL", "AWS"} {
		if !slices.Contains(profile.Skills, want) {
			t.Errorf("expected skills to contain %q, got %v", want, profile.Skills)
		}
	}

	if slices.Contains(profile.Skills, "TensorFlow") {
		t.Errorf("did not expect TensorFlow in %v", profile.Skills)
	}

	// Matching is case-insensitive
	lower := Extract("experienced with docker and graphql")
	if !slices.Contains(lower.Skills, "Docker") || !slices.Contains(lower.Skills, "GraphQL") {
		t.Errorf("case-insensitive match failed: %v", lower.Skills)
	}

	// No duplicates even when a skill appears in both the body and a section
	counts := make(map[string]int)
	for _, s := range profile.Skills {
		counts[s]++
	}
	for skill, n := range counts {
		if n > 1 {
			t.Errorf("skill %q appears %d times", skill, n)
		}
	}
}

func TestExtractExperience(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{
			name:     "explicit years of experience",
			text:     "7 years of experience",
			expected: 7,
		},
		{
			name:     "plus suffix",
			text:     "10+ years experience in backend work",
			expected: 10,
		},
		{
			name:     "abbreviated",
			text:     "5 yrs exp",
			expected: 5,
		},
		{
			name:     "maximum of several mentions",
			text:     "3 years of experience with Go, 8 years of experience overall",
			expected: 8,
		},
		{
			name:     "fallback counts job titles",
			text:     "Software Engineer, then Developer, then Manager",
			expected: 6,
		},
		{
			name:     "fallback is capped",
			text:     strings.Repeat("developer ", 20),
			expected: 15,
		},
		{
			name:     "default when nothing matches",
			text:     "gardening enthusiast",
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := Extract(tt.text)
			if profile.Experience != tt.expected {
				t.Errorf("expected %d years, got %d", tt.expected, profile.Experience)
			}
		})
	}
}

func TestExtractEducation(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "bachelor line",
			text:     "EDUCATION\nBachelor of Science in Computer Science\n",
			expected: "Bachelor of Science in Computer Science",
		},
		{
			name:     "phd preferred over later degrees",
			text:     "PhD in Physics\nBachelor of Arts\n",
			expected: "PhD in Physics\nBachelor of Arts",
		},
		{
			name:     "university fallback",
			text:     "Attended University of Somewhere in 2015",
			expected: "University of Somewhere in 2015",
		},
		{
			name:     "placeholder when nothing found",
			text:     "no schooling listed",
			expected: "Education details not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := Extract(tt.text)
			if !strings.HasPrefix(profile.Education, strings.Split(tt.expected, "\n")[0]) {
				t.Errorf("expected education starting with %q, got %q",
					strings.Split(tt.expected, "\n")[0], profile.Education)
			}
		})
	}
}

func TestExtractPreviousRoles(t *testing.T) {
	profile := Extract(sampleResume)

	for _, want := range []string{"Software Engineer", "Senior Software Engineer", "Backend Developer"} {
		if !slices.Contains(profile.PreviousRoles, want) {
			t.Errorf("expected roles to contain %q, got %v", want, profile.PreviousRoles)
		}
	}

	none := Extract("nothing relevant")
	if len(none.PreviousRoles) != 1 || none.PreviousRoles[0] != "Previous experience not specified" {
		t.Errorf("expected placeholder roles, got %v", none.PreviousRoles)
	}
}

func TestExtractIsIdempotent(t *testing.T) {
	first := Extract(sampleResume)
	second := Extract(sampleResume)

	if first.Name != second.Name ||
		first.Email != second.Email ||
		first.Experience != second.Experience ||
		first.Education != second.Education ||
		!slices.Equal(first.Skills, second.Skills) ||
		!slices.Equal(first.PreviousRoles, second.PreviousRoles) {
		t.Errorf("extraction is not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestExtractKeepsRawText(t *testing.T) {
	profile := Extract(sampleResume)
	if profile.ResumeText != sampleResume {
		t.Error("expected ResumeText to carry the raw input")
	}
}

func BenchmarkExtract(b *testing.B) {
	for b.Loop() {
		Extract(sampleResume)
	}
}
