package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"interviewsim/internal/session"
	"interviewsim/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "CandidateProfile", &ProfileTextFormatter{})
	registry.RegisterFormatter("markdown", "CandidateProfile", &ProfileMarkdownFormatter{})
	registry.RegisterFormatter("text", "QuestionSet", &QuestionSetTextFormatter{})
	registry.RegisterFormatter("markdown", "QuestionSet", &QuestionSetMarkdownFormatter{})
	registry.RegisterFormatter("text", "Report", &ReportTextFormatter{})
	registry.RegisterFormatter("markdown", "Report", &ReportMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.CandidateProfile:
		return "CandidateProfile"
	case []types.Question:
		return "QuestionSet"
	case session.Report:
		return "Report"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// ProfileTextFormatter handles text formatting for extracted candidate profiles
type ProfileTextFormatter struct{}

func (ptf *ProfileTextFormatter) Format(data any) (string, error) {
	profile, ok := data.(types.CandidateProfile)
	if !ok {
		return "", fmt.Errorf("expected CandidateProfile, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== CANDIDATE PROFILE ===\n\n")
	output.WriteString(fmt.Sprintf("Name: %s\n", profile.Name))
	output.WriteString(fmt.Sprintf("Email: %s\n", profile.Email))
	output.WriteString(fmt.Sprintf("Experience: %d years\n", profile.Experience))
	output.WriteString(fmt.Sprintf("Education: %s\n\n", profile.Education))

	output.WriteString("Skills:\n")
	if len(profile.Skills) > 0 {
		for _, skill := range profile.Skills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
	} else {
		output.WriteString("- None detected\n")
	}
	output.WriteString("\n")

	output.WriteString("Previous Roles:\n")
	for _, role := range profile.PreviousRoles {
		output.WriteString(fmt.Sprintf("- %s\n", role))
	}

	return output.String(), nil
}

func (ptf *ProfileTextFormatter) SupportedType() string {
	return "CandidateProfile"
}

// ProfileMarkdownFormatter handles markdown formatting for extracted candidate profiles
type ProfileMarkdownFormatter struct{}

func (pmf *ProfileMarkdownFormatter) Format(data any) (string, error) {
	profile, ok := data.(types.CandidateProfile)
	if !ok {
		return "", fmt.Errorf("expected CandidateProfile, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Candidate Profile\n\n")
	output.WriteString(fmt.Sprintf("**Name:** %s\n\n", profile.Name))
	output.WriteString(fmt.Sprintf("**Email:** %s\n\n", profile.Email))
	output.WriteString(fmt.Sprintf("**Experience:** %d years\n\n", profile.Experience))
	output.WriteString(fmt.Sprintf("**Education:** %s\n\n", profile.Education))

	output.WriteString("## Skills\n\n")
	if len(profile.Skills) > 0 {
		for _, skill := range profile.Skills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
	} else {
		output.WriteString("_None detected_\n")
	}
	output.WriteString("\n")

	output.WriteString("## Previous Roles\n\n")
	for _, role := range profile.PreviousRoles {
		output.WriteString(fmt.Sprintf("- %s\n", role))
	}

	return output.String(), nil
}

func (pmf *ProfileMarkdownFormatter) SupportedType() string {
	return "CandidateProfile"
}

// QuestionSetTextFormatter handles text formatting for generated question sets
type QuestionSetTextFormatter struct{}

func (qtf *QuestionSetTextFormatter) Format(data any) (string, error) {
	questions, ok := data.([]types.Question)
	if !ok {
		return "", fmt.Errorf("expected []Question, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== INTERVIEW QUESTIONS ===\n\n")
	for i, q := range questions {
		output.WriteString(fmt.Sprintf("%d. [%s/%s] %s\n", i+1, q.Type, q.Difficulty, q.Content))
		output.WriteString(fmt.Sprintf("   Expected duration: %d minutes\n", q.ExpectedDuration))
		if len(q.Tags) > 0 {
			output.WriteString(fmt.Sprintf("   Tags: %s\n", strings.Join(q.Tags, ", ")))
		}
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (qtf *QuestionSetTextFormatter) SupportedType() string {
	return "QuestionSet"
}

// QuestionSetMarkdownFormatter handles markdown formatting for generated question sets
type QuestionSetMarkdownFormatter struct{}

func (qmf *QuestionSetMarkdownFormatter) Format(data any) (string, error) {
	questions, ok := data.([]types.Question)
	if !ok {
		return "", fmt.Errorf("expected []Question, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Interview Questions\n\n")
	for i, q := range questions {
		output.WriteString(fmt.Sprintf("## %d. %s\n\n", i+1, q.Content))
		output.WriteString(fmt.Sprintf("**Category:** %s | **Difficulty:** %s | **Duration:** %d minutes\n\n", q.Type, q.Difficulty, q.ExpectedDuration))
		if len(q.Tags) > 0 {
			output.WriteString(fmt.Sprintf("**Tags:** %s\n\n", strings.Join(q.Tags, ", ")))
		}
	}

	return output.String(), nil
}

func (qmf *QuestionSetMarkdownFormatter) SupportedType() string {
	return "QuestionSet"
}

// ReportTextFormatter handles text formatting for interview reports
type ReportTextFormatter struct{}

func (rtf *ReportTextFormatter) Format(data any) (string, error) {
	report, ok := data.(session.Report)
	if !ok {
		return "", fmt.Errorf("expected Report, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== INTERVIEW REPORT ===\n\n")
	output.WriteString(fmt.Sprintf("Candidate: %s\n", report.Candidate))
	output.WriteString(fmt.Sprintf("Position: %s\n", report.Position))
	output.WriteString(fmt.Sprintf("Date: %s\n", report.Date))
	output.WriteString(fmt.Sprintf("Duration: %s\n", report.Duration))
	output.WriteString(fmt.Sprintf("Questions Answered: %d\n\n", report.QuestionsAnswered))

	output.WriteString("=== SCORES ===\n")
	output.WriteString(fmt.Sprintf("Technical:       %.0f%%\n", report.Scores.Technical*100))
	output.WriteString(fmt.Sprintf("Behavioral:      %.0f%%\n", report.Scores.Behavioral*100))
	output.WriteString(fmt.Sprintf("Communication:   %.0f%%\n", report.Scores.Communication*100))
	output.WriteString(fmt.Sprintf("Problem Solving: %.0f%%\n", report.Scores.ProblemSolving*100))
	output.WriteString(fmt.Sprintf("Overall:         %.0f%% (%s)\n\n", report.Scores.Overall*100, session.PerformanceLevel(report.Scores.Overall)))

	if len(report.Answers) > 0 {
		output.WriteString("=== ANSWERS ===\n\n")
		for i, a := range report.Answers {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, a.Question))
			output.WriteString(fmt.Sprintf("   Answer: %s\n", a.Answer))
			output.WriteString(fmt.Sprintf("   Duration: %s\n\n", a.Duration))
		}
	}

	return output.String(), nil
}

func (rtf *ReportTextFormatter) SupportedType() string {
	return "Report"
}

// ReportMarkdownFormatter handles markdown formatting for interview reports
type ReportMarkdownFormatter struct{}

func (rmf *ReportMarkdownFormatter) Format(data any) (string, error) {
	report, ok := data.(session.Report)
	if !ok {
		return "", fmt.Errorf("expected Report, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Interview Report\n\n")
	output.WriteString(fmt.Sprintf("**Candidate:** %s\n\n", report.Candidate))
	output.WriteString(fmt.Sprintf("**Position:** %s\n\n", report.Position))
	output.WriteString(fmt.Sprintf("**Date:** %s\n\n", report.Date))
	output.WriteString(fmt.Sprintf("**Duration:** %s\n\n", report.Duration))
	output.WriteString(fmt.Sprintf("**Questions Answered:** %d\n\n", report.QuestionsAnswered))

	output.WriteString("## Scores\n\n")
	output.WriteString(fmt.Sprintf("- Technical: %.0f%%\n", report.Scores.Technical*100))
	output.WriteString(fmt.Sprintf("- Behavioral: %.0f%%\n", report.Scores.Behavioral*100))
	output.WriteString(fmt.Sprintf("- Communication: %.0f%%\n", report.Scores.Communication*100))
	output.WriteString(fmt.Sprintf("- Problem Solving: %.0f%%\n", report.Scores.ProblemSolving*100))
	output.WriteString(fmt.Sprintf("- **Overall: %.0f%% (%s)**\n\n", report.Scores.Overall*100, session.PerformanceLevel(report.Scores.Overall)))

	if len(report.Answers) > 0 {
		output.WriteString("## Answers\n\n")
		for i, a := range report.Answers {
			output.WriteString(fmt.Sprintf("### %d. %s\n\n", i+1, a.Question))
			output.WriteString(a.Answer)
			output.WriteString("\n\n")
			output.WriteString(fmt.Sprintf("_Answered in %s_\n\n", a.Duration))
		}
	}

	return output.String(), nil
}

func (rmf *ReportMarkdownFormatter) SupportedType() string {
	return "Report"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
