package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"interviewsim/internal/observability"
	"interviewsim/internal/question"
)

// Start starts the HTTP server with all configured components
func (s *Server) Start() error {
	om, err := s.initializeObservability()
	if err != nil {
		return err
	}
	defer s.shutdownObservability(om)

	if err := s.initializeBanks(om); err != nil {
		return err
	}

	httpServer := s.setupHTTPServer(om)

	s.displayServerInfo()

	return s.startWithGracefulShutdown(httpServer)
}

// initializeObservability sets up observability components
func (s *Server) initializeObservability() (*observability.ObservabilityManager, error) {
	obsConfig := observability.GetObservabilityConfig(s.AppConfig, s.Version)
	obsConfig.ServiceVersion = s.Version

	om, err := observability.NewObservabilityManager(obsConfig, s.AppConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize observability: %w", err)
	}

	return om, nil
}

// shutdownObservability handles observability cleanup
func (s *Server) shutdownObservability(om *observability.ObservabilityManager) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := om.Shutdown(ctx); err != nil {
		s.Logger.LogError(err, "Failed to shutdown observability")
	}
}

// initializeBanks loads the configured question bank file and starts the
// hot-reload watcher when enabled
func (s *Server) initializeBanks(om *observability.ObservabilityManager) error {
	banksCfg := s.AppConfig.Interview.Banks
	if banksCfg.File == "" {
		return nil
	}

	banks, err := question.LoadBanksFile(banksCfg.File)
	if err != nil {
		return fmt.Errorf("failed to load question banks: %w", err)
	}
	s.setBanks(banks)

	if !banksCfg.AutoReload.Enabled {
		return nil
	}

	metrics := om.GetMetrics()
	s.bankWatcher = question.NewBankWatcher(banksCfg.File, banksCfg.AutoReload.DebounceDelay,
		func(reloaded *question.Banks) {
			s.setBanks(reloaded)
			metrics.RecordBankReload(context.Background(), true)
			s.Logger.Info("Question banks reloaded", "file", banksCfg.File)
		}, s.Logger)

	if err := s.bankWatcher.Start(); err != nil {
		return fmt.Errorf("failed to start question bank watcher: %w", err)
	}

	return nil
}

// setupHTTPServer creates and configures the HTTP server
func (s *Server) setupHTTPServer(om *observability.ObservabilityManager) *http.Server {
	mux := s.setupRoutes(om)
	handler := om.HTTPMiddleware()(mux)
	addr := fmt.Sprintf("%s:%s", s.Host, s.Port)

	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  s.ReadTimeout,
		WriteTimeout: s.WriteTimeout,
		IdleTimeout:  s.IdleTimeout,
	}
}

// displayServerInfo prints the endpoints the server exposes
func (s *Server) displayServerInfo() {
	base := fmt.Sprintf("http://%s:%s", s.Host, s.Port)
	fmt.Printf("Starting interview server on %s\n", base)
	fmt.Println("Endpoints:")
	fmt.Printf("  POST   %s/sessions\n", base)
	fmt.Printf("  GET    %s/sessions/{id}\n", base)
	fmt.Printf("  POST   %s/sessions/{id}/answers\n", base)
	fmt.Printf("  DELETE %s/sessions/{id}\n", base)
	fmt.Printf("  GET    %s/sessions/{id}/report\n", base)
	fmt.Printf("  GET    %s/health\n", base)
	fmt.Printf("  GET    %s/stats\n", base)
	if len(s.APIKeys) > 0 {
		fmt.Println("API key authentication: enabled")
	} else {
		fmt.Println("API key authentication: disabled (no keys configured)")
	}
}

// startWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func (s *Server) startWithGracefulShutdown(server *http.Server) error {
	// Channel to receive OS signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Channel to receive server errors
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		s.Logger.Info("Starting HTTP server", "address", server.Addr)

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	// Wait for either a signal or server error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server failed to start: %w", err)
	case sig := <-quit:
		s.Logger.Info("Received shutdown signal, starting graceful shutdown",
			"signal", sig.String())

		return s.performGracefulShutdown(server)
	}
}

// performGracefulShutdown handles the graceful shutdown process
func (s *Server) performGracefulShutdown(server *http.Server) error {
	// Create a context with timeout for graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Stop the question bank watcher if running
	if err := s.stopBankWatcher(); err != nil {
		s.Logger.LogError(err, "Failed to stop question bank watcher")
	}

	// Clean up rate limiter if enabled
	s.cleanupRateLimiter()

	// Attempt graceful shutdown of HTTP server
	s.Logger.Info("Shutting down HTTP server...")
	if err := server.Shutdown(shutdownCtx); err != nil {
		s.Logger.LogError(err, "Failed to shutdown server gracefully, forcing close")
		return server.Close()
	}

	s.Logger.Info("Server shutdown completed successfully")
	return nil
}

// stopBankWatcher stops the question bank watcher if it's running
func (s *Server) stopBankWatcher() error {
	if s.bankWatcher != nil {
		return s.bankWatcher.Stop()
	}
	return nil
}

// cleanupRateLimiter cleans up the rate limiter resources
func (s *Server) cleanupRateLimiter() {
	if s.RateLimiter != nil {
		s.RateLimiter.Close()
		s.Logger.Info("Rate limiter cleaned up")
	}
}
