// Package session orchestrates a single interview: question delivery, answer
// collection, rescoring, and the final report. Sessions are plain values
// owned by their caller; the Store adds shared ownership for the HTTP server.
package session

import (
	"fmt"
	"sync"
	"time"

	"interviewsim/internal/errors"
	"interviewsim/internal/question"
	"interviewsim/internal/scoring"
	"interviewsim/internal/types"

	"github.com/google/uuid"
)

// Options tunes session creation. Zero values fall back to the defaults.
type Options struct {
	// QuestionCount is the question set size; zero means
	// question.DefaultQuestionCount.
	QuestionCount int
	// Generator supplies the question generator; nil builds one with the
	// built-in banks and a time-seeded random source.
	Generator *question.Generator
}

// Session is one in-flight interview. Methods are safe for concurrent use.
type Session struct {
	mu   sync.Mutex
	data types.InterviewSession
}

// New starts an interview for a candidate and job. It fails only when
// question generation does; a failed session is discarded, not retried.
func New(profile types.CandidateProfile, jobDesc types.JobDescription, opts Options) (*Session, error) {
	gen := opts.Generator
	if gen == nil {
		gen = question.NewGenerator(nil, nil)
	}
	count := opts.QuestionCount
	if count == 0 {
		count = question.DefaultQuestionCount
	}

	questions, err := gen.GenerateSet(profile, jobDesc, count)
	if err != nil {
		return nil, err
	}

	return &Session{
		data: types.InterviewSession{
			ID:               uuid.NewString(),
			CandidateProfile: profile,
			JobDescription:   jobDesc,
			Questions:        questions,
			Status:           types.StatusInProgress,
			StartTime:        time.Now(),
		},
	}, nil
}

// ID returns the session identifier
func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.ID
}

// Status returns the current session status
func (s *Session) Status() types.SessionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Status
}

// CurrentQuestion returns the question awaiting an answer. The second return
// is false once the session has completed.
func (s *Session) CurrentQuestion() (types.Question, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data.Status == types.StatusCompleted || s.data.CurrentQuestionIndex >= len(s.data.Questions) {
		return types.Question{}, false
	}
	return s.data.Questions[s.data.CurrentQuestionIndex], true
}

// SubmitAnswer records an answer, rescores the whole history, and advances
// to the next question or completes the session. The answer's questionId is
// not checked against the current question; answers that match no question
// are stored but skipped during scoring.
func (s *Session) SubmitAnswer(ans types.Answer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data.Status == types.StatusCompleted {
		return errors.NewSessionError(errors.ErrCodeSessionCompleted,
			fmt.Sprintf("Session %s has already completed", s.data.ID), nil)
	}

	s.data.Answers = append(s.data.Answers, ans)
	s.data.Score = s.rescore()

	if s.data.CurrentQuestionIndex < len(s.data.Questions)-1 {
		s.data.CurrentQuestionIndex++
	} else {
		s.data.Status = types.StatusCompleted
		now := time.Now()
		s.data.EndTime = &now
	}

	return nil
}

// rescore recomputes the aggregate score from the full answer history.
// Caller holds the lock.
func (s *Session) rescore() types.Score {
	byID := make(map[string]types.Question, len(s.data.Questions))
	for _, q := range s.data.Questions {
		byID[q.ID] = q
	}

	var partials []types.PartialScore
	for _, ans := range s.data.Answers {
		q, ok := byID[ans.QuestionID]
		if !ok {
			continue
		}
		partials = append(partials, scoring.EvaluateAnswer(q, ans, s.data.CandidateProfile))
	}

	return scoring.AggregateScores(partials)
}

// Snapshot returns a copy of the session state for serialization. Slices are
// copied so callers cannot mutate the live session.
func (s *Session) Snapshot() types.InterviewSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.data
	snap.Questions = append([]types.Question(nil), s.data.Questions...)
	snap.Answers = append([]types.Answer(nil), s.data.Answers...)
	if s.data.EndTime != nil {
		end := *s.data.EndTime
		snap.EndTime = &end
	}
	return snap
}
