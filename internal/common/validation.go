package common

import (
	"fmt"
	"slices"
)

// MaxQuestionCount caps the question set size a command will accept
const MaxQuestionCount = 20

// ValidateOutputFormat validates format against configured supported formats
func ValidateOutputFormat(format string, supportedFormats []string) error {
	if len(supportedFormats) == 0 {
		return nil // No restrictions configured
	}

	if slices.Contains(supportedFormats, format) {
		return nil
	}

	return fmt.Errorf("unsupported output format '%s'. Supported formats: %v",
		format, supportedFormats)
}

// ValidateQuestionCount validates a requested question set size
func ValidateQuestionCount(count int) error {
	if count <= 0 {
		return fmt.Errorf("question count must be positive, got %d", count)
	}
	if count > MaxQuestionCount {
		return fmt.Errorf("question count %d exceeds the maximum of %d", count, MaxQuestionCount)
	}
	return nil
}

// GetSupportedFormats returns the list of supported formats
func GetSupportedFormats(supportedFormats []string) []string {
	return supportedFormats
}
