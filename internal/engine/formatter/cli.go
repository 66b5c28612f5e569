package formatter

import (
	"strings"

	"github.com/fatih/color"
)

// Banner lines framing the model's answer. They are never colored.
const (
	BannerOpen  = "===== AI Review ====="
	BannerClose = "====================="
)

// CLIFormatter renders the review transcript and colors status lines.
type CLIFormatter struct {
	Color bool

	success *color.Color
	warning *color.Color
	failure *color.Color
}

// NewCLIFormatter creates a new CLIFormatter. With color false every helper
// returns its input unchanged.
func NewCLIFormatter(useColor bool) *CLIFormatter {
	f := &CLIFormatter{
		Color:   useColor,
		success: color.New(color.FgGreen, color.Bold),
		warning: color.New(color.FgYellow, color.Bold),
		failure: color.New(color.FgRed),
	}
	if !useColor {
		for _, c := range []*color.Color{f.success, f.warning, f.failure} {
			c.DisableColor()
		}
	}
	return f
}

// Format returns the review framed between the banner lines.
func (f *CLIFormatter) Format(result ReviewResult) string {
	var b strings.Builder
	b.WriteString(BannerOpen + "\n")
	b.WriteString(result.Review + "\n")
	b.WriteString(BannerClose + "\n")
	return b.String()
}

// Success colors a line announcing that the commit goes ahead.
func (f *CLIFormatter) Success(msg string) string { return f.success.Sprint(msg) }

// Warning colors a line announcing findings.
func (f *CLIFormatter) Warning(msg string) string { return f.warning.Sprint(msg) }

// Failure colors a line announcing a blocked commit.
func (f *CLIFormatter) Failure(msg string) string { return f.failure.Sprint(msg) }
