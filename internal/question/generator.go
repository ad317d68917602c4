// Package question generates interview question sets from a candidate
// profile and job description. Selection is randomized; callers that need
// reproducible output inject a seeded random source.
package question

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"interviewsim/internal/errors"
	"interviewsim/internal/types"
)

// DefaultQuestionCount is the question set size when the caller does not ask
// for a specific one
const DefaultQuestionCount = 8

// Share of the set per category. Coding takes the remainder, so rounding
// favors behavioral and technical.
const (
	behavioralShare = 0.4
	technicalShare  = 0.4
)

// Expected answer duration per category, in minutes
const (
	behavioralDuration = 3
	technicalDuration  = 5
	codingDuration     = 15
)

var categoryTags = map[types.QuestionType][]string{
	types.QuestionBehavioral: {"behavioral", "soft-skills"},
	types.QuestionTechnical:  {"technical", "architecture"},
	types.QuestionCoding:     {"coding", "algorithms"},
}

// Generator builds question sets from its prompt banks
type Generator struct {
	banks *Banks
	rng   *rand.Rand
}

// NewGenerator creates a generator. A nil banks uses the built-in pools; a
// nil rng uses a time-seeded source, which makes generation nondeterministic.
func NewGenerator(banks *Banks, rng *rand.Rand) *Generator {
	if banks == nil {
		banks = DefaultBanks()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{banks: banks, rng: rng}
}

// DifficultyForExperience maps years of experience to the session-wide
// difficulty band
func DifficultyForExperience(years int) types.Difficulty {
	switch {
	case years <= 2:
		return types.DifficultyEasy
	case years <= 5:
		return types.DifficultyMedium
	default:
		return types.DifficultyHard
	}
}

// GenerateSet builds a shuffled question set of the requested size. The
// whole set uses one difficulty derived from the candidate's experience.
func (g *Generator) GenerateSet(profile types.CandidateProfile, jobDesc types.JobDescription, total int) ([]types.Question, error) {
	if total <= 0 {
		return nil, errors.NewValidationError(errors.ErrCodeGenerationFailed,
			fmt.Sprintf("question count must be positive, got %d", total), nil)
	}

	difficulty := DifficultyForExperience(profile.Experience)

	behavioralCount := int(math.Ceil(float64(total) * behavioralShare))
	technicalCount := int(math.Ceil(float64(total) * technicalShare))
	codingCount := total - behavioralCount - technicalCount

	var questions []types.Question
	questions = append(questions, g.generateCategory(types.QuestionBehavioral, behavioralCount, difficulty)...)
	questions = append(questions, g.generateCategory(types.QuestionTechnical, technicalCount, difficulty)...)
	questions = append(questions, g.generateCategory(types.QuestionCoding, codingCount, difficulty)...)

	g.rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})

	return questions, nil
}

// generateCategory samples prompts without replacement, capped at pool size
func (g *Generator) generateCategory(qType types.QuestionType, count int, difficulty types.Difficulty) []types.Question {
	if count <= 0 {
		return nil
	}

	pool := g.banks.pool(qType, difficulty)
	selected := g.sample(pool, count)

	questions := make([]types.Question, 0, len(selected))
	for i, content := range selected {
		questions = append(questions, types.Question{
			ID:               fmt.Sprintf("%s-%d", qType, i),
			Type:             qType,
			Difficulty:       difficulty,
			Content:          content,
			ExpectedDuration: durationFor(qType),
			Tags:             categoryTags[qType],
		})
	}
	return questions
}

func (g *Generator) sample(pool []string, count int) []string {
	shuffled := make([]string, len(pool))
	copy(shuffled, pool)
	g.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:min(count, len(shuffled))]
}

func durationFor(qType types.QuestionType) int {
	switch qType {
	case types.QuestionBehavioral:
		return behavioralDuration
	case types.QuestionTechnical:
		return technicalDuration
	case types.QuestionCoding:
		return codingDuration
	default:
		return technicalDuration
	}
}

// FollowUp picks a follow-up prompt for an answered question. The answer
// text is accepted for interface symmetry but does not influence the pick.
// Returns false for categories without follow-up prompts.
func (g *Generator) FollowUp(q types.Question, answerText string) (string, bool) {
	prompts := g.banks.FollowUps[q.Type]
	if len(prompts) == 0 {
		return "", false
	}
	return prompts[g.rng.Intn(len(prompts))], true
}
