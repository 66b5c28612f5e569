package llm

import (
	"regexp"
)

// noIssuesPattern is unanchored: any mention of "no issues" clears the review,
// even inside a longer answer that also lists findings.
var noIssuesPattern = regexp.MustCompile(`(?i)no issues`)

// IsClear reports whether the review text lets the commit proceed without asking.
func IsClear(review string) bool {
	return noIssuesPattern.MatchString(review)
}
