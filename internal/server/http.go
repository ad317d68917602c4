package server

import (
	"math/rand"
	"sync"
	"time"

	"interviewsim/internal/config"
	interviewErrors "interviewsim/internal/errors"
	"interviewsim/internal/question"
	"interviewsim/internal/session"
)

// CreateSessionRequest represents the request body for the session creation endpoint
type CreateSessionRequest struct {
	ResumeText     string `json:"resumeText"`
	JobTitle       string `json:"jobTitle"`
	JobCompany     string `json:"jobCompany"`
	JobDescription string `json:"jobDescription"`
	QuestionCount  int    `json:"questionCount,omitempty"`
}

// AnswerRequest represents the request body for the answer submission endpoint
type AnswerRequest struct {
	QuestionID      string   `json:"questionId"`
	Content         string   `json:"content"`
	DurationSeconds int      `json:"durationSeconds"`
	Confidence      *float64 `json:"confidence,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Server holds configuration for the HTTP server
type Server struct {
	Host    string
	Port    string
	Version string

	// Full application configuration
	AppConfig *config.Config

	// API Authentication
	APIKeys map[string]bool

	// Timeout configurations
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Request size limit
	MaxRequestSize int64

	// Rate limiting
	RateLimit   *config.RateLimitConfig
	RateLimiter *RateLimiter

	// Session storage
	Store *session.Store

	// Question banks, replaced wholesale on hot reload
	banksMu     sync.RWMutex
	banks       *question.Banks
	bankWatcher *question.BankWatcher

	// Follow-up probability source
	rngMu sync.Mutex
	rng   *rand.Rand

	// Logger
	Logger *interviewErrors.Logger
}

// ServerConfig holds configuration for creating a Server instance
type ServerConfig struct {
	Host           string
	Port           string
	Version        string
	APIKeys        []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxRequestSize int64
	RateLimit      *config.RateLimitConfig
}

// NewServer creates a new Server instance from a ServerConfig struct
func NewServer(appCfg *config.Config, cfg ServerConfig, logger *interviewErrors.Logger) *Server {
	// Convert API keys slice to map for O(1) lookup
	apiKeyMap := make(map[string]bool)
	for _, key := range cfg.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	var rateLimiter *RateLimiter
	if cfg.RateLimit != nil && cfg.RateLimit.Enabled {
		rateLimiter = NewRateLimiter(
			cfg.RateLimit.RequestsPerMin,
			cfg.RateLimit.BurstCapacity,
			logger,
		)
	}

	return &Server{
		Host:           cfg.Host,
		Port:           cfg.Port,
		Version:        cfg.Version,
		AppConfig:      appCfg,
		APIKeys:        apiKeyMap,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxRequestSize: cfg.MaxRequestSize,
		RateLimit:      cfg.RateLimit,
		RateLimiter:    rateLimiter,
		Store:          session.NewStore(),
		banks:          question.DefaultBanks(),
		rng:            rand.New(rand.NewSource(time.Now().UnixNano())),
		Logger:         logger,
	}
}

// currentBanks returns the banks in use; safe against concurrent reloads.
func (s *Server) currentBanks() *question.Banks {
	s.banksMu.RLock()
	defer s.banksMu.RUnlock()
	return s.banks
}

// setBanks swaps the question banks, typically after a hot reload.
func (s *Server) setBanks(b *question.Banks) {
	s.banksMu.Lock()
	defer s.banksMu.Unlock()
	s.banks = b
}

// rollFollowUp decides whether the next answer gets a follow-up prompt.
func (s *Server) rollFollowUp(chance float64) bool {
	if chance <= 0 {
		return false
	}
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.Float64() < chance
}
