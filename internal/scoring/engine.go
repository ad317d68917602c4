// Package scoring evaluates interview answers with heuristic content
// analysis. Each answer yields a partial score over the categories relevant
// to its question; session-level scores are averages over the full answer
// history.
package scoring

import (
	"math"
	"strings"
	"unicode/utf8"

	"interviewsim/internal/types"
)

// Expected answer length in characters per question category
var expectedChars = map[types.QuestionType]int{
	types.QuestionBehavioral: 400,
	types.QuestionTechnical:  300,
	types.QuestionCoding:     200,
}

const defaultExpectedChars = 300

type wordBand struct {
	min, max, optimal int
}

var wordBands = map[types.QuestionType]wordBand{
	types.QuestionBehavioral: {min: 50, max: 200, optimal: 100},
	types.QuestionTechnical:  {min: 30, max: 150, optimal: 75},
	types.QuestionCoding:     {min: 20, max: 100, optimal: 50},
}

var defaultWordBand = wordBand{min: 30, max: 150, optimal: 75}

var keywordSets = map[types.QuestionType][]string{
	types.QuestionBehavioral: {"experience", "team", "challenge", "solution", "result", "learned"},
	types.QuestionTechnical:  {"architecture", "scalable", "performance", "implementation", "design"},
	types.QuestionCoding:     {"algorithm", "complexity", "optimize", "efficient", "solution"},
}

var difficultyMultiplier = map[types.Difficulty]float64{
	types.DifficultyEasy:   0.8,
	types.DifficultyMedium: 1.0,
	types.DifficultyHard:   1.2,
}

// EvaluateAnswer scores a single answer against its question. The candidate
// profile is part of the signature for callers that carry it through the
// pipeline, but the heuristics do not use it.
func EvaluateAnswer(q types.Question, a types.Answer, _ types.CandidateProfile) types.PartialScore {
	base := baseScore(q, a)
	length := lengthScore(a.Content, q.Type)
	keywords := keywordScore(q.Type, a.Content)

	final := math.Round(float64(base+length+keywords) / 3)

	return mapToCategories(q.Type, final/10)
}

// baseScore rates answer substance from character count against the expected
// length for the category, scaled by question difficulty
func baseScore(q types.Question, a types.Answer) int {
	answerLength := utf8.RuneCountInString(strings.TrimSpace(a.Content))

	expected := expectedChars[q.Type]
	if expected == 0 {
		expected = defaultExpectedChars
	}

	if float64(answerLength) < float64(expected)*0.3 {
		return 2 // too short
	}
	if float64(answerLength) > float64(expected)*3 {
		return 6 // too verbose
	}

	mult, ok := difficultyMultiplier[q.Difficulty]
	if !ok {
		mult = 1.0
	}
	return min(10, int(math.Round(7*mult)))
}

// lengthScore rates how close the word count sits to the category's optimal
// band
func lengthScore(content string, qType types.QuestionType) int {
	wordCount := len(strings.Fields(content))

	band, ok := wordBands[qType]
	if !ok {
		band = defaultWordBand
	}

	if wordCount < band.min {
		return 4
	}
	if wordCount > band.max {
		return 6
	}

	deviation := math.Abs(float64(wordCount-band.optimal)) / float64(band.optimal)
	return max(1, int(math.Round(10-deviation*5)))
}

// keywordScore rates coverage of the category's keyword list
func keywordScore(qType types.QuestionType, content string) int {
	keywords, ok := keywordSets[qType]
	if !ok {
		keywords = keywordSets[types.QuestionTechnical]
	}

	lower := strings.ToLower(content)
	found := 0
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			found++
		}
	}

	return int(math.Round(float64(found) / float64(len(keywords)) * 10))
}

// mapToCategories spreads a normalized score onto the categories a question
// type speaks to. Behavioral answers also signal communication; technical
// and coding answers split between technical depth and problem solving.
func mapToCategories(qType types.QuestionType, s float64) types.PartialScore {
	switch qType {
	case types.QuestionBehavioral:
		return types.PartialScore{Entries: []types.CategoryScore{
			{Category: types.CategoryBehavioral, Value: s},
			{Category: types.CategoryCommunication, Value: s * 0.8},
		}}
	case types.QuestionTechnical:
		return types.PartialScore{Entries: []types.CategoryScore{
			{Category: types.CategoryTechnical, Value: s},
			{Category: types.CategoryProblemSolving, Value: s * 0.9},
		}}
	case types.QuestionCoding:
		return types.PartialScore{Entries: []types.CategoryScore{
			{Category: types.CategoryTechnical, Value: s * 0.7},
			{Category: types.CategoryProblemSolving, Value: s},
		}}
	default:
		return types.PartialScore{Entries: []types.CategoryScore{
			{Category: types.CategoryOverall, Value: s},
		}}
	}
}

// AggregateScores averages partial scores into a session score. Each
// category averages over the partials that contain it; overall is the mean
// of the non-zero category averages, or zero when nothing scored.
func AggregateScores(partials []types.PartialScore) types.Score {
	categories := []types.ScoreCategory{
		types.CategoryTechnical,
		types.CategoryBehavioral,
		types.CategoryCommunication,
		types.CategoryProblemSolving,
	}

	means := make(map[types.ScoreCategory]float64, len(categories))
	for _, c := range categories {
		var sum float64
		var count int
		for _, p := range partials {
			if v, ok := p.Get(c); ok {
				sum += v
				count++
			}
		}
		if count > 0 {
			means[c] = sum / float64(count)
		}
	}

	score := types.Score{
		Technical:      means[types.CategoryTechnical],
		Behavioral:     means[types.CategoryBehavioral],
		Communication:  means[types.CategoryCommunication],
		ProblemSolving: means[types.CategoryProblemSolving],
	}

	var overallSum float64
	var overallCount int
	for _, v := range []float64{score.Technical, score.Behavioral, score.Communication, score.ProblemSolving} {
		if v > 0 {
			overallSum += v
			overallCount++
		}
	}
	if overallCount > 0 {
		score.Overall = overallSum / float64(overallCount)
	}

	return score
}
