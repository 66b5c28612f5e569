package llm

import "testing"

func TestIsClear(t *testing.T) {
	tests := []struct {
		name   string
		review string
		want   bool
	}{
		{"sentinel", "No issues found.", true},
		{"upper case", "NO ISSUES FOUND", true},
		{"lower case", "no issues found.", true},
		{"inside prose", "I see no issues with the error handling.", true},
		// Unanchored match: a mention alongside findings still clears.
		{"mention with findings", "No issues were found in tests, however main.go leaks a file handle.", true},
		{"findings", "1. The loop never terminates when n is negative.", false},
		{"empty", "", false},
		{"split words", "no\nissues", false},
		{"similar phrase", "Nothing problematic found.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsClear(tt.review); got != tt.want {
				t.Errorf("IsClear(%q) = %v, want %v", tt.review, got, tt.want)
			}
		})
	}
}
