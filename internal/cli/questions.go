package cli

import (
	"context"
	"fmt"
	"math/rand"

	"interviewsim/internal/common"
	"interviewsim/internal/config"
	"interviewsim/internal/job"
	"interviewsim/internal/question"
	"interviewsim/internal/resume"
	"interviewsim/internal/types"

	"github.com/spf13/cobra"
)

var questionsCmd = &cobra.Command{
	Use:   "questions [resume-file] [job-description-file]",
	Short: "Generate an interview question set",
	Long: `Generate a tailored set of interview questions from a resume and a job
description. Question difficulty follows the candidate's years of experience,
and the set mixes behavioral, technical, and coding questions.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if questionsConfig.OutputFormat == "" {
			questionsConfig.OutputFormat = cfg.App.DefaultFormat
		}
		if err := common.ValidateOutputFormat(questionsConfig.OutputFormat, cfg.App.SupportedFormats); err != nil {
			return err
		}
		if questionsCount == 0 {
			questionsCount = cfg.Interview.QuestionCount
		}
		return common.ValidateQuestionCount(questionsCount)
	},
	RunE: runQuestions,
}

var (
	questionsConfig  common.CommandConfig
	questionsCount   int
	questionsTitle   string
	questionsCompany string
	questionsSeed    int64
)

func init() {
	questionsCmd.Flags().StringVarP(&questionsConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	questionsCmd.Flags().StringVar(&questionsConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	questionsCmd.Flags().IntVarP(&questionsCount, "count", "n", 0, "Number of questions to generate (default from config)")
	questionsCmd.Flags().StringVar(&questionsTitle, "title", "", "Job title for the posting")
	questionsCmd.Flags().StringVar(&questionsCompany, "company", "", "Company name for the posting")
	questionsCmd.Flags().Int64Var(&questionsSeed, "seed", 0, "Random seed for reproducible question sets (0 = time-based)")

	_ = questionsCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

// questionsInput pairs the extracted profile with the job posting
type questionsInput struct {
	Profile types.CandidateProfile
	JobDesc types.JobDescription
}

func runQuestions(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	banks, err := loadConfiguredBanks(cfg)
	if err != nil {
		return err
	}

	var rng *rand.Rand
	if questionsSeed != 0 {
		rng = rand.New(rand.NewSource(questionsSeed))
	}
	generator := question.NewGenerator(banks, rng)

	createInput := func(contents []string) (questionsInput, error) {
		if len(contents) != 2 {
			return questionsInput{}, fmt.Errorf("expected 2 file paths, got %d", len(contents))
		}
		return questionsInput{
			Profile: resume.Extract(contents[0]),
			JobDesc: job.NewJobDescription(questionsTitle, questionsCompany, contents[1]),
		}, nil
	}

	logDetails := func(input questionsInput, cmdCfg common.CommandConfig) {
		logger.Info("Starting question generation",
			"candidate", input.Profile.Name,
			"skills", len(input.Profile.Skills),
			"requirements", len(input.JobDesc.Requirements),
			"count", questionsCount,
			"output_format", cmdCfg.OutputFormat)
	}

	generateOperation := func(ctx context.Context, input questionsInput) ([]types.Question, error) {
		return generator.GenerateSet(input.Profile, input.JobDesc, questionsCount)
	}

	err = common.RunPipelineCommand(
		cmd.Context(),
		logger,
		questionsConfig,
		args,
		createInput,
		generateOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to generate questions: %w", err)
	}
	logger.Info("Question generation completed successfully")
	return nil
}

// loadConfiguredBanks loads the question bank file from config, falling back
// to the built-in pools when none is set
func loadConfiguredBanks(cfg *config.Config) (*question.Banks, error) {
	if cfg.Interview.Banks.File == "" {
		return nil, nil
	}
	banks, err := question.LoadBanksFile(cfg.Interview.Banks.File)
	if err != nil {
		return nil, fmt.Errorf("failed to load question banks: %w", err)
	}
	return banks, nil
}
