// Package confirm asks the user a single yes/no question on the terminal.
package confirm

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/irahardianto/aireview/internal/platform/logger"
)

// Prompter asks a yes/no question and reports whether the answer was "y".
type Prompter interface {
	Confirm(ctx context.Context, question string) (bool, error)
}

// InputOpener returns the stream the answer is read from. The stream is closed
// after one line has been read.
type InputOpener func() (io.ReadCloser, error)

// LinePrompter writes the question and reads exactly one line.
type LinePrompter struct {
	open InputOpener
	out  io.Writer
}

// NewLinePrompter creates a LinePrompter writing questions to out.
func NewLinePrompter(open InputOpener, out io.Writer) *LinePrompter {
	return &LinePrompter{open: open, out: out}
}

// Confirm returns true only when the trimmed, lower-cased answer is exactly "y".
// End of input counts as an answer; an empty answer is a no.
func (p *LinePrompter) Confirm(ctx context.Context, question string) (bool, error) {
	log := logger.FromContext(ctx)

	in, err := p.open()
	if err != nil {
		return false, fmt.Errorf("opening terminal input: %w", err)
	}
	defer func() {
		if cerr := in.Close(); cerr != nil {
			log.Debug("closing terminal input", "error", cerr)
		}
	}()

	fmt.Fprint(p.out, question)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("reading answer: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	log.Debug("confirmation answered", "answer", answer)
	return answer == "y", nil
}
