package llm

import (
	"fmt"
)

// The closing sentence is the contract IsClear relies on.
const promptTemplate = `
You are a senior software engineer reviewing a Git diff.
Focus on:
- Logic or correctness issues
- Security or performance problems
- Code smell or maintainability concerns
- Potential bugs or missing edge cases

Do NOT comment on trivial formatting or style.

If you find any issues, summarize them clearly.
If there are none, say "%s"

Git diff:
` + "```diff" + `
%s
` + "```" + `
`

// NoIssuesSentinel is the phrase the model is told to answer with when the diff is clean.
const NoIssuesSentinel = "No issues found."

// BuildPrompt embeds the raw diff verbatim into the fixed review instructions.
func BuildPrompt(diff string) string {
	return fmt.Sprintf(promptTemplate, NoIssuesSentinel, diff)
}
