package llm

import (
	"context"
)

// MockCompleter is a test double for llm.Completer.
type MockCompleter struct {
	Response string
	Err      error

	// Prompts records every prompt received.
	Prompts []string
}

// Complete records the prompt and returns the configured response and error.
func (m *MockCompleter) Complete(_ context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	return m.Response, m.Err
}
