package formatter

import (
	"bytes"

	"github.com/owenrumney/go-sarif/v2/sarif"
)

const (
	sarifToolName = "aireview"
	sarifToolURI  = "https://github.com/irahardianto/aireview"
	sarifRuleID   = "ai-review"
)

// SARIFFormatter renders a review as a SARIF 2.1.0 log with a single result.
// The result has no location: the review covers the staged diff as a whole.
type SARIFFormatter struct{}

// NewSARIFFormatter creates a new SARIFFormatter.
func NewSARIFFormatter() *SARIFFormatter {
	return &SARIFFormatter{}
}

// Format returns the SARIF document as indented JSON.
func (f *SARIFFormatter) Format(result ReviewResult) string {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return `{"error": "failed to create SARIF report"}`
	}

	run := sarif.NewRunWithInformationURI(sarifToolName, sarifToolURI)
	run.AddRule(sarifRuleID).
		WithDescription("Language model review of the staged diff (" + result.Provider + "/" + result.Model + ")")

	level := "warning"
	if result.Clear {
		level = "note"
	}
	run.CreateResultForRule(sarifRuleID).
		WithLevel(level).
		WithMessage(sarif.NewTextMessage(result.Review))

	report.AddRun(run)

	var buf bytes.Buffer
	if err := report.PrettyWrite(&buf); err != nil {
		return `{"error": "failed to marshal SARIF report"}`
	}
	return buf.String()
}
