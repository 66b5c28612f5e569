package git

import (
	"context"
)

// MockService is a test double for git.Service.
type MockService struct {
	Diff        string
	DiffErr     error
	HookInstErr error
	HookRemErr  error

	// DiffCalls counts StagedDiff invocations.
	DiffCalls int
}

// StagedDiff returns the configured diff.
func (m *MockService) StagedDiff(_ context.Context) (string, error) {
	m.DiffCalls++
	return m.Diff, m.DiffErr
}

// InstallHook returns the configured error.
func (m *MockService) InstallHook(_ context.Context) error {
	return m.HookInstErr
}

// RemoveHook returns the configured error.
func (m *MockService) RemoveHook(_ context.Context) error {
	return m.HookRemErr
}
