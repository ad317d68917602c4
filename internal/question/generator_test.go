package question

import (
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"interviewsim/internal/types"
)

func testGenerator(seed int64) *Generator {
	return NewGenerator(nil, rand.New(rand.NewSource(seed)))
}

func profileWithExperience(years int) types.CandidateProfile {
	return types.CandidateProfile{Name: "Test Candidate", Experience: years}
}

func TestDifficultyForExperience(t *testing.T) {
	tests := []struct {
		years    int
		expected types.Difficulty
	}{
		{0, types.DifficultyEasy},
		{1, types.DifficultyEasy},
		{2, types.DifficultyEasy},
		{3, types.DifficultyMedium},
		{4, types.DifficultyMedium},
		{5, types.DifficultyMedium},
		{6, types.DifficultyHard},
		{15, types.DifficultyHard},
	}

	for _, tt := range tests {
		if got := DifficultyForExperience(tt.years); got != tt.expected {
			t.Errorf("DifficultyForExperience(%d) = %q, expected %q", tt.years, got, tt.expected)
		}
	}
}

func TestGenerateSetDistribution(t *testing.T) {
	tests := []struct {
		name               string
		total              int
		expectedBehavioral int
		expectedTechnical  int
		expectedCoding     int
	}{
		{name: "default size", total: 8, expectedBehavioral: 4, expectedTechnical: 4, expectedCoding: 0},
		{name: "five questions", total: 5, expectedBehavioral: 2, expectedTechnical: 2, expectedCoding: 1},
		{name: "ten questions", total: 10, expectedBehavioral: 4, expectedTechnical: 4, expectedCoding: 2},
		{name: "two questions", total: 2, expectedBehavioral: 1, expectedTechnical: 1, expectedCoding: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testGenerator(1)
			questions, err := g.GenerateSet(profileWithExperience(4), types.JobDescription{}, tt.total)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			counts := make(map[types.QuestionType]int)
			for _, q := range questions {
				counts[q.Type]++
			}

			if counts[types.QuestionBehavioral] != tt.expectedBehavioral {
				t.Errorf("behavioral: expected %d, got %d", tt.expectedBehavioral, counts[types.QuestionBehavioral])
			}
			if counts[types.QuestionTechnical] != tt.expectedTechnical {
				t.Errorf("technical: expected %d, got %d", tt.expectedTechnical, counts[types.QuestionTechnical])
			}
			if counts[types.QuestionCoding] != tt.expectedCoding {
				t.Errorf("coding: expected %d, got %d", tt.expectedCoding, counts[types.QuestionCoding])
			}
		})
	}
}

func TestGenerateSetDistributionFormula(t *testing.T) {
	g := testGenerator(7)
	for total := 2; total <= 10; total++ {
		questions, err := g.GenerateSet(profileWithExperience(4), types.JobDescription{}, total)
		if err != nil {
			t.Fatalf("total=%d: %v", total, err)
		}

		counts := make(map[types.QuestionType]int)
		for _, q := range questions {
			counts[q.Type]++
		}

		wantBehavioral := int(math.Ceil(float64(total) * 0.4))
		wantTechnical := int(math.Ceil(float64(total) * 0.4))
		wantCoding := total - wantBehavioral - wantTechnical

		// Pool size caps each category at 4 prompts
		wantBehavioral = min(wantBehavioral, 4)
		wantTechnical = min(wantTechnical, 4)
		wantCoding = min(wantCoding, 4)

		if counts[types.QuestionBehavioral] != wantBehavioral ||
			counts[types.QuestionTechnical] != wantTechnical ||
			counts[types.QuestionCoding] != wantCoding {
			t.Errorf("total=%d: got b=%d t=%d c=%d, want b=%d t=%d c=%d", total,
				counts[types.QuestionBehavioral], counts[types.QuestionTechnical], counts[types.QuestionCoding],
				wantBehavioral, wantTechnical, wantCoding)
		}

		if wantCoding < 0 {
			t.Errorf("total=%d: coding count went negative", total)
		}
	}
}

func TestGenerateSetUsesSingleDifficulty(t *testing.T) {
	tests := []struct {
		years    int
		expected types.Difficulty
	}{
		{1, types.DifficultyEasy},
		{4, types.DifficultyMedium},
		{9, types.DifficultyHard},
	}

	for _, tt := range tests {
		g := testGenerator(2)
		questions, err := g.GenerateSet(profileWithExperience(tt.years), types.JobDescription{}, 8)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, q := range questions {
			if q.Difficulty != tt.expected {
				t.Errorf("experience %d: question %s has difficulty %q, expected %q",
					tt.years, q.ID, q.Difficulty, tt.expected)
			}
		}
	}
}

func TestGenerateSetQuestionFields(t *testing.T) {
	g := testGenerator(3)
	questions, err := g.GenerateSet(profileWithExperience(4), types.JobDescription{}, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	durations := map[types.QuestionType]int{
		types.QuestionBehavioral: 3,
		types.QuestionTechnical:  5,
		types.QuestionCoding:     15,
	}

	seenIDs := make(map[string]bool)
	for _, q := range questions {
		if q.Content == "" {
			t.Errorf("question %s has empty content", q.ID)
		}
		if q.ExpectedDuration != durations[q.Type] {
			t.Errorf("question %s: expected duration %d, got %d", q.ID, durations[q.Type], q.ExpectedDuration)
		}
		if len(q.Tags) == 0 {
			t.Errorf("question %s has no tags", q.ID)
		}
		if seenIDs[q.ID] {
			t.Errorf("duplicate question id %s", q.ID)
		}
		seenIDs[q.ID] = true
	}
}

func TestGenerateSetNoRepeatedPrompts(t *testing.T) {
	g := testGenerator(4)
	questions, err := g.GenerateSet(profileWithExperience(4), types.JobDescription{}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := make(map[string]bool)
	for _, q := range questions {
		if seen[q.Content] {
			t.Errorf("prompt selected twice: %q", q.Content)
		}
		seen[q.Content] = true
	}
}

func TestGenerateSetDeterministicWithSeed(t *testing.T) {
	first, err := testGenerator(42).GenerateSet(profileWithExperience(4), types.JobDescription{}, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := testGenerator(42).GenerateSet(profileWithExperience(4), types.JobDescription{}, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !slices.EqualFunc(first, second, func(a, b types.Question) bool {
		return a.ID == b.ID && a.Content == b.Content
	}) {
		t.Error("same seed produced different question sets")
	}
}

func TestGenerateSetRejectsNonPositiveCount(t *testing.T) {
	g := testGenerator(5)
	for _, total := range []int{0, -1} {
		if _, err := g.GenerateSet(profileWithExperience(4), types.JobDescription{}, total); err == nil {
			t.Errorf("expected error for total=%d", total)
		}
	}
}

func TestFollowUp(t *testing.T) {
	g := testGenerator(6)
	banks := DefaultBanks()

	for _, qType := range []types.QuestionType{types.QuestionBehavioral, types.QuestionTechnical, types.QuestionCoding} {
		followUp, ok := g.FollowUp(types.Question{Type: qType}, "some answer")
		if !ok {
			t.Errorf("expected follow-up for %q", qType)
			continue
		}
		if !slices.Contains(banks.FollowUps[qType], followUp) {
			t.Errorf("follow-up %q not in the %q pool", followUp, qType)
		}
	}

	if _, ok := g.FollowUp(types.Question{Type: types.QuestionSystemDesign}, "answer"); ok {
		t.Error("expected no follow-up for system-design questions")
	}
}

func TestLoadBanksFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "banks.yaml")
	content := `behavioral:
  easy:
    - "Custom easy behavioral question?"
followUps:
  coding:
    - "Custom coding follow-up?"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	banks, err := LoadBanksFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := banks.Behavioral[types.DifficultyEasy]; len(got) != 1 || got[0] != "Custom easy behavioral question?" {
		t.Errorf("expected custom easy behavioral pool, got %v", got)
	}

	// Untouched pools keep their defaults
	if got := banks.Behavioral[types.DifficultyMedium]; len(got) != 4 {
		t.Errorf("expected default medium behavioral pool, got %v", got)
	}
	if got := banks.Technical[types.DifficultyEasy]; len(got) != 4 {
		t.Errorf("expected default technical pool, got %v", got)
	}
	if got := banks.FollowUps[types.QuestionCoding]; len(got) != 1 || got[0] != "Custom coding follow-up?" {
		t.Errorf("expected custom coding follow-ups, got %v", got)
	}
	if got := banks.FollowUps[types.QuestionBehavioral]; len(got) != 3 {
		t.Errorf("expected default behavioral follow-ups, got %v", got)
	}
}

func TestLoadBanksFileMissing(t *testing.T) {
	if _, err := LoadBanksFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func BenchmarkGenerateSet(b *testing.B) {
	g := testGenerator(1)
	profile := profileWithExperience(4)
	jd := types.JobDescription{}

	for b.Loop() {
		_, _ = g.GenerateSet(profile, jd, 8)
	}
}
