package cli

import (
	"interviewsim/internal/server"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP interview server",
	Long: `Start an HTTP server that provides REST API endpoints for running
mock interview sessions.

Available endpoints:
- POST /sessions: Create an interview session from a resume and job description
- GET /sessions/{id}: Fetch session state
- POST /sessions/{id}/answers: Submit an answer and advance the session
- DELETE /sessions/{id}: Discard a session
- GET /sessions/{id}/report: Fetch the final report of a completed session
- GET /health: Health check endpoint
- GET /stats: Server statistics and rate limiting info`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (default from config)")
	serveCmd.Flags().String("host", "", "Host to bind to (default from config)")
	serveCmd.Flags().String("banks", "", "Question bank YAML file (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	// Flag overrides on top of the loaded config
	if port, _ := cmd.Flags().GetString("port"); port != "" {
		cfg.Server.Port = port
	}
	if host, _ := cmd.Flags().GetString("host"); host != "" {
		cfg.Server.Host = host
	}
	if banks, _ := cmd.Flags().GetString("banks"); banks != "" {
		cfg.Interview.Banks.File = banks
	}

	serverCfg := server.ServerConfig{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		Version:        Version,
		APIKeys:        cfg.Server.APIKeys,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxRequestSize: cfg.App.MaxFileSize,
		RateLimit:      &cfg.Server.RateLimit,
	}
	return server.NewServer(cfg, serverCfg, logger).Start()
}
