package scoring

import (
	"math"
	"strings"
	"testing"

	"interviewsim/internal/types"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// wordsWith builds an answer with the given keywords plus enough filler to
// reach the target word count
func wordsWith(filler int, keywords string) string {
	return strings.Repeat("word ", filler) + keywords
}

func entryValue(t *testing.T, p types.PartialScore, c types.ScoreCategory) float64 {
	t.Helper()
	v, ok := p.Get(c)
	if !ok {
		t.Fatalf("expected category %v in partial score %v", c, p)
	}
	return v
}

func TestEvaluateAnswerBehavioral(t *testing.T) {
	q := types.Question{Type: types.QuestionBehavioral, Difficulty: types.DifficultyMedium}
	// 100 words (optimal), all 6 keywords, length within the expected band:
	// base 7, length 10, keywords 10 -> round(27/3) = 9 -> 0.9
	a := types.Answer{Content: wordsWith(94, "experience team challenge solution result learned")}

	partial := EvaluateAnswer(q, a, types.CandidateProfile{})

	if got := entryValue(t, partial, types.CategoryBehavioral); !approxEqual(got, 0.9) {
		t.Errorf("behavioral: expected 0.9, got %v", got)
	}
	if got := entryValue(t, partial, types.CategoryCommunication); !approxEqual(got, 0.9*0.8) {
		t.Errorf("communication: expected %v, got %v", 0.9*0.8, got)
	}
	if len(partial.Entries) != 2 {
		t.Errorf("expected 2 entries, got %v", partial.Entries)
	}
}

func TestEvaluateAnswerCoding(t *testing.T) {
	q := types.Question{Type: types.QuestionCoding, Difficulty: types.DifficultyHard}
	// 50 words (optimal), all 5 keywords: base round(7*1.2)=8, length 10,
	// keywords 10 -> round(28/3) = 9 -> 0.9
	a := types.Answer{Content: wordsWith(45, "algorithm complexity optimize efficient solution")}

	partial := EvaluateAnswer(q, a, types.CandidateProfile{})

	if got := entryValue(t, partial, types.CategoryProblemSolving); !approxEqual(got, 0.9) {
		t.Errorf("problemSolving: expected 0.9, got %v", got)
	}
	if got := entryValue(t, partial, types.CategoryTechnical); !approxEqual(got, 0.9*0.7) {
		t.Errorf("technical: expected %v, got %v", 0.9*0.7, got)
	}
}

func TestEvaluateAnswerTooShort(t *testing.T) {
	q := types.Question{Type: types.QuestionBehavioral, Difficulty: types.DifficultyEasy}
	// Under 30% of expected characters: base 2, length 4, keywords 0 ->
	// round(6/3) = 2 -> 0.2
	a := types.Answer{Content: "Too short."}

	partial := EvaluateAnswer(q, a, types.CandidateProfile{})

	if got := entryValue(t, partial, types.CategoryBehavioral); !approxEqual(got, 0.2) {
		t.Errorf("behavioral: expected 0.2, got %v", got)
	}
	if got := entryValue(t, partial, types.CategoryCommunication); !approxEqual(got, 0.2*0.8) {
		t.Errorf("communication: expected %v, got %v", 0.2*0.8, got)
	}
}

func TestEvaluateAnswerTooVerbose(t *testing.T) {
	q := types.Question{Type: types.QuestionTechnical, Difficulty: types.DifficultyMedium}
	// Over 3x the expected characters and over the word band maximum: base 6,
	// length 6, keywords 0 -> round(12/3) = 4 -> 0.4
	a := types.Answer{Content: strings.Repeat("blah ", 200)}

	partial := EvaluateAnswer(q, a, types.CandidateProfile{})

	if got := entryValue(t, partial, types.CategoryTechnical); !approxEqual(got, 0.4) {
		t.Errorf("technical: expected 0.4, got %v", got)
	}
	if got := entryValue(t, partial, types.CategoryProblemSolving); !approxEqual(got, 0.4*0.9) {
		t.Errorf("problemSolving: expected %v, got %v", 0.4*0.9, got)
	}
}

func TestEvaluateAnswerUnknownTypeFallsBackToOverall(t *testing.T) {
	q := types.Question{Type: types.QuestionSystemDesign, Difficulty: types.DifficultyMedium}
	// Unrecognized categories use the technical expectations and map to the
	// overall bucket: base 7, length 10, keywords 10 -> 0.9
	a := types.Answer{Content: wordsWith(70, "architecture scalable performance implementation design")}

	partial := EvaluateAnswer(q, a, types.CandidateProfile{})

	if len(partial.Entries) != 1 {
		t.Fatalf("expected a single overall entry, got %v", partial.Entries)
	}
	if got := entryValue(t, partial, types.CategoryOverall); !approxEqual(got, 0.9) {
		t.Errorf("overall: expected 0.9, got %v", got)
	}
}

func TestEvaluateAnswerDifficultyMultiplier(t *testing.T) {
	tests := []struct {
		difficulty types.Difficulty
		expected   float64
	}{
		{types.DifficultyEasy, 0.5},   // base round(7*0.8)=6 -> round(16/3)=5
		{types.DifficultyMedium, 0.6}, // base 7 -> round(17/3)=6
		{types.DifficultyHard, 0.6},   // base round(7*1.2)=8 -> round(18/3)=6
	}

	// 75 words, no keywords: length 10, keywords 0
	content := strings.Repeat("filler ", 75)
	for _, tt := range tests {
		t.Run(string(tt.difficulty), func(t *testing.T) {
			q := types.Question{Type: types.QuestionTechnical, Difficulty: tt.difficulty}
			partial := EvaluateAnswer(q, types.Answer{Content: content}, types.CandidateProfile{})
			if got := entryValue(t, partial, types.CategoryTechnical); !approxEqual(got, tt.expected) {
				t.Errorf("difficulty %q: expected %v, got %v", tt.difficulty, tt.expected, got)
			}
		})
	}
}

func TestAggregateScoresOverall(t *testing.T) {
	partials := []types.PartialScore{
		{Entries: []types.CategoryScore{{Category: types.CategoryTechnical, Value: 0.9}}},
		{Entries: []types.CategoryScore{{Category: types.CategoryBehavioral, Value: 0.51}}},
		{Entries: []types.CategoryScore{{Category: types.CategoryCommunication, Value: 0.57}}},
	}

	score := AggregateScores(partials)

	if !approxEqual(score.Technical, 0.9) || !approxEqual(score.Behavioral, 0.51) || !approxEqual(score.Communication, 0.57) {
		t.Errorf("unexpected category means: %+v", score)
	}
	if !approxEqual(score.ProblemSolving, 0) {
		t.Errorf("problemSolving: expected 0, got %v", score.ProblemSolving)
	}
	// Overall averages only the non-zero categories
	if want := (0.9 + 0.51 + 0.57) / 3; !approxEqual(score.Overall, want) {
		t.Errorf("overall: expected %v, got %v", want, score.Overall)
	}
}

func TestAggregateScoresMeansPerCategory(t *testing.T) {
	partials := []types.PartialScore{
		{Entries: []types.CategoryScore{{Category: types.CategoryTechnical, Value: 0.8}}},
		{Entries: []types.CategoryScore{{Category: types.CategoryTechnical, Value: 0.6}}},
		{Entries: []types.CategoryScore{{Category: types.CategoryBehavioral, Value: 0.5}}},
	}

	score := AggregateScores(partials)

	// Technical averages over the two partials carrying it; behavioral is
	// untouched by the others
	if !approxEqual(score.Technical, 0.7) {
		t.Errorf("technical: expected 0.7, got %v", score.Technical)
	}
	if !approxEqual(score.Behavioral, 0.5) {
		t.Errorf("behavioral: expected 0.5, got %v", score.Behavioral)
	}
}

func TestAggregateScoresEmpty(t *testing.T) {
	score := AggregateScores(nil)
	if score != (types.Score{}) {
		t.Errorf("expected zero score, got %+v", score)
	}
}

func TestAggregateScoresIgnoresOverallEntries(t *testing.T) {
	// Overall is derived from the category means, never taken from partials
	partials := []types.PartialScore{
		{Entries: []types.CategoryScore{{Category: types.CategoryOverall, Value: 0.9}}},
	}

	score := AggregateScores(partials)
	if !approxEqual(score.Overall, 0) {
		t.Errorf("overall: expected 0, got %v", score.Overall)
	}
}

func TestEvaluateAndAggregateEndToEnd(t *testing.T) {
	behavioralQ := types.Question{Type: types.QuestionBehavioral, Difficulty: types.DifficultyMedium}
	codingQ := types.Question{Type: types.QuestionCoding, Difficulty: types.DifficultyHard}

	partials := []types.PartialScore{
		EvaluateAnswer(behavioralQ, types.Answer{Content: wordsWith(94, "experience team challenge solution result learned")}, types.CandidateProfile{}),
		EvaluateAnswer(codingQ, types.Answer{Content: wordsWith(45, "algorithm complexity optimize efficient solution")}, types.CandidateProfile{}),
	}

	score := AggregateScores(partials)

	// behavioral 0.9, communication 0.72, technical 0.63, problemSolving 0.9
	if want := (0.63 + 0.9 + 0.9*0.8 + 0.9) / 4; !approxEqual(score.Overall, want) {
		t.Errorf("overall: expected %v, got %v", want, score.Overall)
	}
}

func BenchmarkEvaluateAnswer(b *testing.B) {
	q := types.Question{Type: types.QuestionBehavioral, Difficulty: types.DifficultyMedium}
	a := types.Answer{Content: wordsWith(94, "experience team challenge solution result learned")}
	profile := types.CandidateProfile{}

	for b.Loop() {
		EvaluateAnswer(q, a, profile)
	}
}
