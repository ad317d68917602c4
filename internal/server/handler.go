package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"interviewsim/internal/common"
	interviewErrors "interviewsim/internal/errors"
	"interviewsim/internal/job"
	"interviewsim/internal/observability"
	"interviewsim/internal/question"
	"interviewsim/internal/resume"
	"interviewsim/internal/session"
	"interviewsim/internal/types"

	"go.opentelemetry.io/otel/attribute"
)

// AnswerResponse is the session state after an answer, with an occasional
// follow-up prompt while questions remain.
type AnswerResponse struct {
	types.InterviewSession
	FollowUp string `json:"followUp,omitempty"`
}

// createSessionHandler wraps session creation with observability
func (s *Server) createSessionHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("interviewsim.api")
		ctx, span := tracer.Start(ctx, "api.create_session")
		defer span.End()

		var req CreateSessionRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.ResumeText) == "" {
			err := fmt.Errorf("missing resume text")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing resume text", "resumeText field is required", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.JobDescription) == "" {
			err := fmt.Errorf("missing job description")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing job description", "jobDescription field is required", http.StatusBadRequest)
			return
		}

		count := req.QuestionCount
		if count == 0 {
			count = s.AppConfig.Interview.QuestionCount
		}
		if err := common.ValidateQuestionCount(count); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid question count", err.Error(), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.ResumeText)),
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.Int("request.question_count", count),
			attribute.String("operation", "create_session"),
		)

		metrics := om.GetMetrics()
		var sess *session.Session
		err := metrics.TrackOperation(ctx, "create_session", func(ctx context.Context) error {
			profile := resume.Extract(req.ResumeText)
			jobDesc := job.NewJobDescription(req.JobTitle, req.JobCompany, req.JobDescription)

			var newErr error
			sess, newErr = session.New(profile, jobDesc, session.Options{
				QuestionCount: count,
				Generator:     question.NewGenerator(s.currentBanks(), nil),
			})
			return newErr
		})
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "session_creation"))
			writeAppError(w, err, "Failed to create session")
			return
		}

		s.Store.Add(sess)
		snap := sess.Snapshot()
		metrics.RecordSessionCreated(ctx, len(snap.Questions))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.String("session.id", snap.ID),
			attribute.Int("session.question_count", len(snap.Questions)),
		)

		writeJSON(w, http.StatusCreated, snap)
	}
}

// getSessionHandler returns the current session state
func (s *Server) getSessionHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, span := om.Tracer("interviewsim.api").Start(r.Context(), "api.get_session")
		defer span.End()

		sess, err := s.Store.Get(r.PathValue("id"))
		if err != nil {
			span.RecordError(err)
			writeAppError(w, err, "Session not found")
			return
		}

		snap := sess.Snapshot()
		span.SetAttributes(
			attribute.String("session.id", snap.ID),
			attribute.String("session.status", string(snap.Status)),
		)
		writeJSON(w, http.StatusOK, snap)
	}
}

// submitAnswerHandler records an answer and advances the session
func (s *Server) submitAnswerHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("interviewsim.api")
		ctx, span := tracer.Start(ctx, "api.submit_answer")
		defer span.End()

		sess, err := s.Store.Get(r.PathValue("id"))
		if err != nil {
			span.RecordError(err)
			writeAppError(w, err, "Session not found")
			return
		}

		var req AnswerRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.QuestionID) == "" {
			err := fmt.Errorf("missing question id")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing question ID", "questionId field is required", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Content) == "" {
			err := fmt.Errorf("missing answer content")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing answer content", "content field is required", http.StatusBadRequest)
			return
		}

		// The answered question, for follow-up selection
		answered, _ := sess.CurrentQuestion()

		ans := types.Answer{
			QuestionID: req.QuestionID,
			Content:    req.Content,
			Timestamp:  time.Now(),
			Duration:   req.DurationSeconds,
			Confidence: req.Confidence,
		}

		metrics := om.GetMetrics()
		err = metrics.TrackOperation(ctx, "submit_answer", func(ctx context.Context) error {
			return sess.SubmitAnswer(ans)
		})
		if err != nil {
			span.RecordError(err)
			writeAppError(w, err, "Failed to submit answer")
			return
		}

		snap := sess.Snapshot()
		metrics.RecordAnswerScored(ctx, string(answered.Type))
		if snap.Status == types.StatusCompleted {
			metrics.RecordSessionCompleted(ctx, snap.Score.Overall)
		}

		resp := AnswerResponse{InterviewSession: snap}
		if snap.Status == types.StatusInProgress && s.rollFollowUp(s.AppConfig.Interview.FollowUpChance) {
			gen := question.NewGenerator(s.currentBanks(), nil)
			if followUp, ok := gen.FollowUp(answered, req.Content); ok {
				resp.FollowUp = followUp
			}
		}

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.String("session.id", snap.ID),
			attribute.String("session.status", string(snap.Status)),
			attribute.Int("session.answers", len(snap.Answers)),
			attribute.Bool("follow_up", resp.FollowUp != ""),
		)

		writeJSON(w, http.StatusOK, resp)
	}
}

// deleteSessionHandler discards a session
func (s *Server) deleteSessionHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, span := om.Tracer("interviewsim.api").Start(r.Context(), "api.delete_session")
		defer span.End()

		id := r.PathValue("id")
		if err := s.Store.Delete(id); err != nil {
			span.RecordError(err)
			writeAppError(w, err, "Session not found")
			return
		}

		span.SetAttributes(attribute.String("session.id", id))
		w.WriteHeader(http.StatusNoContent)
	}
}

// getReportHandler builds the final report for a completed session
func (s *Server) getReportHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, span := om.Tracer("interviewsim.api").Start(r.Context(), "api.get_report")
		defer span.End()

		sess, err := s.Store.Get(r.PathValue("id"))
		if err != nil {
			span.RecordError(err)
			writeAppError(w, err, "Session not found")
			return
		}

		report, err := session.BuildReport(sess)
		if err != nil {
			span.RecordError(err)
			writeAppError(w, err, "Report not available")
			return
		}

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.String("session.id", sess.ID()),
		)
		writeJSON(w, http.StatusOK, report)
	}
}

// writeAppError maps application errors to HTTP status codes
func writeAppError(w http.ResponseWriter, err error, fallback string) {
	var appErr *interviewErrors.AppError
	if !errors.As(err, &appErr) {
		writeErrorResponse(w, fallback, err.Error(), http.StatusInternalServerError)
		return
	}

	status := http.StatusInternalServerError
	switch appErr.Code {
	case interviewErrors.ErrCodeSessionNotFound:
		status = http.StatusNotFound
	case interviewErrors.ErrCodeSessionCompleted, interviewErrors.ErrCodeReportNotAvailable:
		status = http.StatusConflict
	default:
		if appErr.Type == interviewErrors.ErrorTypeValidation {
			status = http.StatusBadRequest
		}
	}

	writeErrorResponse(w, appErr.Message, appErr.Code, status)
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			// If rate limited, record metric
			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordRateLimitHit(r.Context(), "endpoint:"+r.URL.Path)
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
