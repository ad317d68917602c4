package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"interviewsim/internal/types"
)

// healthHandler provides a health check endpoint including question bank status
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"status":  "healthy",
		"service": "interviewsim",
		"version": s.Version,
	}

	// Report question bank status
	response["question_banks"] = s.checkBankHealth()

	// Report session store occupancy
	response["sessions"] = s.sessionCounts()

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Printf("Failed to encode health response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// sessionCounts summarizes the session store by status
func (s *Server) sessionCounts() map[string]any {
	byStatus := s.Store.CountByStatus()
	return map[string]any{
		"total":       s.Store.Count(),
		"in_progress": byStatus[types.StatusInProgress],
		"completed":   byStatus[types.StatusCompleted],
	}
}

// checkBankHealth reports where the question banks came from and whether
// hot reload is active
func (s *Server) checkBankHealth() map[string]any {
	bankStatus := make(map[string]any)

	banksFile := s.AppConfig.Interview.Banks.File
	if banksFile == "" {
		bankStatus["source"] = "built-in"
	} else {
		bankStatus["source"] = banksFile
	}

	autoReload := map[string]any{
		"enabled": s.AppConfig.Interview.Banks.AutoReload.Enabled,
	}
	if s.bankWatcher != nil {
		autoReload["watcher_running"] = s.bankWatcher.IsRunning()
	}
	bankStatus["auto_reload"] = autoReload

	banks := s.currentBanks()
	bankStatus["behavioral_pools"] = len(banks.Behavioral)
	bankStatus["technical_pools"] = len(banks.Technical)
	bankStatus["coding_pools"] = len(banks.Coding)

	return bankStatus
}

// statsHandler provides server statistics including rate limiting info
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"service": "interviewsim",
		"version": s.Version,
		"server": map[string]any{
			"max_request_size_bytes": s.MaxRequestSize,
		},
		"sessions": s.sessionCounts(),
	}

	// Add rate limiting stats if enabled
	if s.RateLimiter != nil {
		response["rate_limiting"] = s.RateLimiter.GetStats()
	} else {
		response["rate_limiting"] = map[string]any{
			"enabled": false,
		}
	}

	// Add configuration info
	if s.RateLimit != nil {
		response["rate_limit_config"] = map[string]any{
			"enabled":          s.RateLimit.Enabled,
			"requests_per_min": s.RateLimit.RequestsPerMin,
			"burst_capacity":   s.RateLimit.BurstCapacity,
			"by_ip":            s.RateLimit.ByIP,
			"by_api_key":       s.RateLimit.ByAPIKey,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Printf("Failed to encode stats response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// parseJSONRequest parses JSON request body into the provided struct
func parseJSONRequest(r *http.Request, v any) error {
	if r.Header.Get("Content-Type") != "application/json" {
		return fmt.Errorf("content-type must be application/json")
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return fmt.Errorf("request body too large (limit is %d bytes)", maxBytesErr.Limit)
		}
		return fmt.Errorf("failed to read request body: %w", err)
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			log.Printf("Failed to close request body: %v", err)
		}
	}()

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	return nil
}

// writeErrorResponse writes a standardized error response
func writeErrorResponse(w http.ResponseWriter, error, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := ErrorResponse{
		Error:   error,
		Message: message,
	}

	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Printf("Failed to encode error response: %v", err)
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}
