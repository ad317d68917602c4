package cli

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"interviewsim/internal/common"
	"interviewsim/internal/job"
	"interviewsim/internal/question"
	"interviewsim/internal/resume"
	"interviewsim/internal/session"
	"interviewsim/internal/types"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var interviewCmd = &cobra.Command{
	Use:   "interview [resume-file] [job-description-file]",
	Short: "Run an interactive mock interview",
	Long: `Run a full mock interview in the terminal. Questions are generated from
the resume and job description, answers are collected interactively and
scored, and a performance report is produced at the end.

Answer timing is measured from when a question is shown; it feeds the
per-answer durations in the report.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if interviewConfig.OutputFormat == "" {
			interviewConfig.OutputFormat = cfg.App.DefaultFormat
		}
		if err := common.ValidateOutputFormat(interviewConfig.OutputFormat, cfg.App.SupportedFormats); err != nil {
			return err
		}
		if interviewCount == 0 {
			interviewCount = cfg.Interview.QuestionCount
		}
		return common.ValidateQuestionCount(interviewCount)
	},
	RunE: runInterview,
}

var (
	interviewConfig  common.CommandConfig
	interviewCount   int
	interviewTitle   string
	interviewCompany string
)

func init() {
	interviewCmd.Flags().StringVarP(&interviewConfig.OutputFile, "output", "o", "", "Report output file path (default: stdout)")
	interviewCmd.Flags().StringVar(&interviewConfig.OutputFormat, "format", "", "Report format: json, text, or markdown")
	interviewCmd.Flags().IntVarP(&interviewCount, "count", "n", 0, "Number of questions to ask (default from config)")
	interviewCmd.Flags().StringVar(&interviewTitle, "title", "", "Job title for the posting")
	interviewCmd.Flags().StringVar(&interviewCompany, "company", "", "Company name for the posting")

	_ = interviewCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runInterview(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	banks, err := loadConfiguredBanks(cfg)
	if err != nil {
		return err
	}
	generator := question.NewGenerator(banks, nil)

	fileProcessor := common.NewFileProcessor(logger)
	contents, err := fileProcessor.ValidateAndReadFiles(args...)
	if err != nil {
		return err
	}

	profile := resume.Extract(contents[0])
	jobDesc := job.NewJobDescription(interviewTitle, interviewCompany, contents[1])

	sess, err := session.New(profile, jobDesc, session.Options{
		QuestionCount: interviewCount,
		Generator:     generator,
	})
	if err != nil {
		return fmt.Errorf("failed to start interview: %w", err)
	}

	snap := sess.Snapshot()
	logger.Info("Interview started",
		"session_id", snap.ID,
		"candidate", profile.Name,
		"questions", len(snap.Questions))

	printInterviewHeader(profile, jobDesc, len(snap.Questions))

	total := len(snap.Questions)
	for {
		q, ok := sess.CurrentQuestion()
		if !ok {
			break
		}

		printQuestion(q, sess.Snapshot().CurrentQuestionIndex+1, total)

		start := time.Now()
		content, err := promptAnswer("Your answer")
		if err != nil {
			return fmt.Errorf("interview aborted: %w", err)
		}

		if rand.Float64() < cfg.Interview.FollowUpChance {
			if followUp, ok := generator.FollowUp(q, content); ok {
				fmt.Printf("\nFollow-up: %s\n", followUp)
				more, err := promptAnswer("Your follow-up answer")
				if err != nil {
					return fmt.Errorf("interview aborted: %w", err)
				}
				content = content + "\n" + more
			}
		}

		err = sess.SubmitAnswer(types.Answer{
			QuestionID: q.ID,
			Content:    content,
			Timestamp:  time.Now(),
			Duration:   int(time.Since(start).Seconds()),
		})
		if err != nil {
			return fmt.Errorf("failed to record answer: %w", err)
		}
	}

	report, err := session.BuildReport(sess)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}

	fmt.Println("\nInterview complete.")
	outputHandler := common.NewOutputHandler(logger)
	if err := outputHandler.HandleOutput(report, interviewConfig); err != nil {
		return err
	}

	logger.Info("Interview completed",
		"session_id", snap.ID,
		"overall_score", report.Scores.Overall)
	return nil
}

// printInterviewHeader introduces the session
func printInterviewHeader(profile types.CandidateProfile, jobDesc types.JobDescription, total int) {
	position := jobDesc.Title
	if position == "" {
		position = "the position"
	}
	name := profile.Name
	if name == "" {
		name = "Candidate"
	}

	fmt.Printf("Mock interview for %s\n", name)
	fmt.Printf("Position: %s", position)
	if jobDesc.Company != "" {
		fmt.Printf(" at %s", jobDesc.Company)
	}
	fmt.Printf("\nQuestions: %d\n", total)
	fmt.Println(strings.Repeat("-", 60))
}

// printQuestion displays one question with its metadata
func printQuestion(q types.Question, number, total int) {
	fmt.Printf("\nQuestion %d of %d [%s / %s]\n", number, total, q.Type, q.Difficulty)
	fmt.Printf("%s\n", q.Content)
	fmt.Printf("(Expected time: about %d minutes)\n\n", q.ExpectedDuration)
}

// promptAnswer collects a free-form answer from the terminal
func promptAnswer(label string) (string, error) {
	prompt := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return fmt.Errorf("answer cannot be empty")
			}
			return nil
		},
	}
	return prompt.Run()
}
