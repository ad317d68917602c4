package session

import (
	"testing"
	"time"

	"interviewsim/internal/types"
)

func TestPerformanceLevel(t *testing.T) {
	tests := []struct {
		overall  float64
		expected string
	}{
		{0.95, "Excellent"},
		{0.8, "Excellent"},
		{0.75, "Good"},
		{0.7, "Good"},
		{0.65, "Average"},
		{0.6, "Average"},
		{0.5, "Needs Improvement"},
		{0, "Needs Improvement"},
	}

	for _, tt := range tests {
		if got := PerformanceLevel(tt.overall); got != tt.expected {
			t.Errorf("PerformanceLevel(%v) = %q, expected %q", tt.overall, got, tt.expected)
		}
	}
}

func TestDurationHelpers(t *testing.T) {
	answers := []types.Answer{
		{Duration: 90},
		{Duration: 30},
	}

	if got := TotalDuration(answers); got != 120 {
		t.Errorf("TotalDuration = %d, expected 120", got)
	}
	if got := AverageAnswerTime(answers); got != 60 {
		t.Errorf("AverageAnswerTime = %d, expected 60", got)
	}
	if got := AverageAnswerTime(nil); got != 0 {
		t.Errorf("AverageAnswerTime(nil) = %d, expected 0", got)
	}
}

func TestBuildReportIncompleteSession(t *testing.T) {
	s := storedSession(t, 1)
	if _, err := BuildReport(s); err == nil {
		t.Error("expected error for an in-progress session")
	}
}

func TestBuildReportCompletedSession(t *testing.T) {
	s := storedSession(t, 2)
	for range s.Snapshot().Questions {
		q, _ := s.CurrentQuestion()
		if err := s.SubmitAnswer(answerFor(q, 90)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	report, err := BuildReport(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Candidate != "Jane Doe" {
		t.Errorf("candidate: expected %q, got %q", "Jane Doe", report.Candidate)
	}
	if report.Position != "Backend Engineer" {
		t.Errorf("position: expected %q, got %q", "Backend Engineer", report.Position)
	}
	if report.QuestionsAnswered != 2 {
		t.Errorf("questionsAnswered: expected 2, got %d", report.QuestionsAnswered)
	}
	// Two answers at 90 seconds each round to 3 minutes
	if report.Duration != "3 minutes" {
		t.Errorf("duration: expected %q, got %q", "3 minutes", report.Duration)
	}
	if len(report.Answers) != 2 {
		t.Fatalf("expected 2 report answers, got %d", len(report.Answers))
	}
	for _, ra := range report.Answers {
		if ra.Question == "" {
			t.Error("expected the question text in the report")
		}
		if ra.Duration != "2 minutes" {
			t.Errorf("answer duration: expected %q, got %q", "2 minutes", ra.Duration)
		}
	}
	if report.Scores.Overall == 0 {
		t.Error("expected non-zero scores in the report")
	}
}

func TestBuildReportDateFormat(t *testing.T) {
	snap := types.InterviewSession{
		Status: types.StatusCompleted,
		CandidateProfile: types.CandidateProfile{
			Name: "Jane Doe",
		},
	}

	now := time.Date(2025, time.March, 7, 15, 4, 5, 0, time.UTC)
	report := buildReport(snap, now)

	if report.Date != "2025-03-07" {
		t.Errorf("date: expected %q, got %q", "2025-03-07", report.Date)
	}
	if report.Duration != "0 minutes" {
		t.Errorf("duration: expected %q, got %q", "0 minutes", report.Duration)
	}
}
