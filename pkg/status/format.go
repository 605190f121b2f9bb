package status

import (
	"fmt"

	"github.com/fatih/color"
)

// FileFormatter defines how run events are rendered for the operator
type FileFormatter interface {
	// FormatDiscovered formats the line printed once discovery is done
	FormatDiscovered(label string, count int) string

	// FormatFileResult formats the line printed after each file
	FormatFileResult(r FileResult) string

	// FormatSummary formats the final line of a run
	FormatSummary(s *Summary) string
}

// DefaultFileFormatter prints the classic one-line-per-file report
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatDiscovered renders "Found N <label> files to process"
func (f *DefaultFileFormatter) FormatDiscovered(label string, count int) string {
	if label == "" {
		return fmt.Sprintf("Found %d files to process", count)
	}
	return fmt.Sprintf("Found %d %s files to process", count, label)
}

// FormatFileResult renders "Fixed <path>" or "Error processing <path>: <message>"
func (f *DefaultFileFormatter) FormatFileResult(r FileResult) string {
	if r.OK() {
		return fmt.Sprintf("%s %s", color.GreenString("Fixed"), r.Path)
	}
	return fmt.Sprintf("%s %s: %s", color.RedString("Error processing"), r.Path, r.Message())
}

// FormatSummary renders "Successfully processed S out of N files"
func (f *DefaultFileFormatter) FormatSummary(s *Summary) string {
	return fmt.Sprintf("Successfully processed %d out of %d files", s.Succeeded, s.Discovered)
}
