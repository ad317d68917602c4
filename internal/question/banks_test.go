package question

import (
	"os"
	"path/filepath"
	"testing"

	"interviewsim/internal/types"
)

func TestDefaultBanksCoverAllDifficulties(t *testing.T) {
	banks := DefaultBanks()

	categories := map[string]map[types.Difficulty][]string{
		"behavioral": banks.Behavioral,
		"technical":  banks.Technical,
		"coding":     banks.Coding,
	}
	difficulties := []types.Difficulty{
		types.DifficultyEasy, types.DifficultyMedium, types.DifficultyHard,
	}

	for name, pools := range categories {
		for _, d := range difficulties {
			if len(pools[d]) == 0 {
				t.Errorf("Expected %s/%s pool to be non-empty", name, d)
			}
		}
	}

	for _, qType := range []types.QuestionType{
		types.QuestionBehavioral, types.QuestionTechnical, types.QuestionCoding,
	} {
		if len(banks.FollowUps[qType]) == 0 {
			t.Errorf("Expected follow-up prompts for %s", qType)
		}
	}
}

func TestLoadBanksFileMergesOverDefaults(t *testing.T) {
	content := `behavioral:
  easy:
    - "Custom easy behavioral question?"
followUps:
  technical:
    - "Custom technical follow-up?"
`
	path := filepath.Join(t.TempDir(), "banks.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write bank file: %v", err)
	}

	banks, err := LoadBanksFile(path)
	if err != nil {
		t.Fatalf("LoadBanksFile failed: %v", err)
	}

	// Overridden pools
	easy := banks.Behavioral[types.DifficultyEasy]
	if len(easy) != 1 || easy[0] != "Custom easy behavioral question?" {
		t.Errorf("Expected overridden easy behavioral pool, got %v", easy)
	}
	followUps := banks.FollowUps[types.QuestionTechnical]
	if len(followUps) != 1 || followUps[0] != "Custom technical follow-up?" {
		t.Errorf("Expected overridden technical follow-ups, got %v", followUps)
	}

	// Untouched pools keep defaults
	defaults := DefaultBanks()
	if got, want := len(banks.Behavioral[types.DifficultyMedium]), len(defaults.Behavioral[types.DifficultyMedium]); got != want {
		t.Errorf("Expected default medium behavioral pool of %d, got %d", want, got)
	}
	if got, want := len(banks.Coding[types.DifficultyHard]), len(defaults.Coding[types.DifficultyHard]); got != want {
		t.Errorf("Expected default hard coding pool of %d, got %d", want, got)
	}
	if got, want := len(banks.FollowUps[types.QuestionBehavioral]), len(defaults.FollowUps[types.QuestionBehavioral]); got != want {
		t.Errorf("Expected default behavioral follow-ups of %d, got %d", want, got)
	}
}

func TestLoadBanksFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadBanksFile("/nonexistent/banks.yaml"); err == nil {
			t.Error("Expected error for missing file")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "banks.yaml")
		if err := os.WriteFile(path, []byte("behavioral: [not: a: map"), 0o644); err != nil {
			t.Fatalf("Failed to write bank file: %v", err)
		}
		if _, err := LoadBanksFile(path); err == nil {
			t.Error("Expected error for invalid YAML")
		}
	})
}

func TestPool(t *testing.T) {
	banks := DefaultBanks()

	if got := banks.pool(types.QuestionBehavioral, types.DifficultyEasy); len(got) == 0 {
		t.Error("Expected behavioral easy pool")
	}
	if got := banks.pool(types.QuestionSystemDesign, types.DifficultyEasy); got != nil {
		t.Errorf("Expected nil pool for unpooled category, got %v", got)
	}
}
