// Package formatter renders a review for the terminal and as a SARIF report.
package formatter

// ReviewResult holds the outcome of one review request.
type ReviewResult struct {
	Provider   string
	Model      string
	Review     string
	Clear      bool
	DurationMs int64
}

// Formatter formats a ReviewResult into a human-readable or machine-readable string.
type Formatter interface {
	Format(result ReviewResult) string
}
