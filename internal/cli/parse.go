package cli

import (
	"context"
	"fmt"

	"interviewsim/internal/common"
	"interviewsim/internal/resume"
	"interviewsim/internal/types"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [resume-file]",
	Short: "Extract a candidate profile from a resume",
	Long: `Parse a plain-text resume and extract a structured candidate profile:
name, email, skills, years of experience, education, and previous roles.

The profile is the input for question generation and answer scoring; use
this command to check what the extractor finds before running an interview.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if parseConfig.OutputFormat == "" {
			parseConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(parseConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runParse,
}

var parseConfig common.CommandConfig

func init() {
	parseCmd.Flags().StringVarP(&parseConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	parseCmd.Flags().StringVar(&parseConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	// Add completion for format flag
	_ = parseCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runParse(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	createInput := func(contents []string) (string, error) {
		if len(contents) != 1 {
			return "", fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return contents[0], nil
	}

	logDetails := func(resumeText string, cfg common.CommandConfig) {
		logger.Info("Starting resume parsing",
			"resume_chars", len(resumeText),
			"output_format", cfg.OutputFormat)
	}

	parseOperation := func(ctx context.Context, resumeText string) (types.CandidateProfile, error) {
		return resume.Extract(resumeText), nil
	}

	err := common.RunPipelineCommand(
		cmd.Context(),
		logger,
		parseConfig,
		args,
		createInput,
		parseOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}
	logger.Info("Resume parsing completed successfully")
	return nil
}
