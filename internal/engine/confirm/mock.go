package confirm

import (
	"context"
)

// MockPrompter is a test double for confirm.Prompter.
type MockPrompter struct {
	Answer bool
	Err    error

	// Questions records every question asked.
	Questions []string
}

// Confirm records the question and returns the configured answer.
func (m *MockPrompter) Confirm(_ context.Context, question string) (bool, error) {
	m.Questions = append(m.Questions, question)
	return m.Answer, m.Err
}
