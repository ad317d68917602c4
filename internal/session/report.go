package session

import (
	"fmt"
	"math"
	"time"

	"interviewsim/internal/errors"
	"interviewsim/internal/types"
)

// Report is the downloadable interview summary. It is display-oriented:
// durations are pre-formatted strings and the date carries no time zone.
type Report struct {
	Candidate         string         `json:"candidate"`
	Position          string         `json:"position"`
	Date              string         `json:"date"`
	Duration          string         `json:"duration"`
	QuestionsAnswered int            `json:"questionsAnswered"`
	Scores            types.Score    `json:"scores"`
	Answers           []ReportAnswer `json:"answers"`
}

// ReportAnswer pairs a question with the answer it received
type ReportAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Duration string `json:"duration"`
}

// PerformanceLevel bands an overall score into a display label
func PerformanceLevel(overall float64) string {
	switch {
	case overall >= 0.8:
		return "Excellent"
	case overall >= 0.7:
		return "Good"
	case overall >= 0.6:
		return "Average"
	default:
		return "Needs Improvement"
	}
}

// TotalDuration sums answer durations in seconds. Caller-facing helpers
// round it into minutes.
func TotalDuration(answers []types.Answer) int {
	total := 0
	for _, a := range answers {
		total += a.Duration
	}
	return total
}

// AverageAnswerTime is the mean answer duration in seconds, zero when no
// answers exist
func AverageAnswerTime(answers []types.Answer) int {
	if len(answers) == 0 {
		return 0
	}
	return int(math.Round(float64(TotalDuration(answers)) / float64(len(answers))))
}

// BuildReport produces the report for a completed session. In-progress
// sessions have no report yet.
func BuildReport(s *Session) (Report, error) {
	snap := s.Snapshot()
	if snap.Status != types.StatusCompleted {
		return Report{}, errors.NewSessionError(errors.ErrCodeReportNotAvailable,
			fmt.Sprintf("Session %s is not completed yet", snap.ID), nil)
	}
	return buildReport(snap, time.Now()), nil
}

func buildReport(snap types.InterviewSession, now time.Time) Report {
	byID := make(map[string]types.Question, len(snap.Questions))
	for _, q := range snap.Questions {
		byID[q.ID] = q
	}

	answers := make([]ReportAnswer, 0, len(snap.Answers))
	for _, a := range snap.Answers {
		answers = append(answers, ReportAnswer{
			Question: byID[a.QuestionID].Content,
			Answer:   a.Content,
			Duration: fmt.Sprintf("%d minutes", int(math.Round(float64(a.Duration)/60))),
		})
	}

	return Report{
		Candidate:         snap.CandidateProfile.Name,
		Position:          snap.JobDescription.Title,
		Date:              now.Format("2006-01-02"),
		Duration:          fmt.Sprintf("%d minutes", int(math.Round(float64(TotalDuration(snap.Answers))/60))),
		QuestionsAnswered: len(snap.Answers),
		Scores:            snap.Score,
		Answers:           answers,
	}
}
