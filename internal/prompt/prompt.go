// Package prompt asks the operator to confirm renames on a terminal.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"

	"jellyname/internal/renamer"
)

// ErrNoInput is returned when the input closes before an answer is given.
var ErrNoInput = errors.New("no answer: input closed")

const (
	ansiBold  = "\033[1m"
	ansiReset = "\033[0m"
)

// Confirmer reads y/n answers from an input stream, one answer per line. It
// waits until a valid answer arrives or the context is cancelled; there is no
// timeout.
type Confirmer struct {
	in       *bufio.Reader
	out      io.Writer
	colorize bool

	startOnce sync.Once
	lines     chan answerLine
}

type answerLine struct {
	text string
	err  error
}

// NewConfirmer builds a confirmer. The question is highlighted when out is a
// terminal.
func NewConfirmer(in io.Reader, out io.Writer) *Confirmer {
	return &Confirmer{
		in:       bufio.NewReader(in),
		out:      out,
		colorize: isTerminal(out),
		lines:    make(chan answerLine, 1),
	}
}

// Confirm prints message and waits for an answer line. y or Y approves, n or
// N rejects, and anything else repeats the question. A cancelled ctx returns
// ctx.Err() even while the read is still pending.
func (c *Confirmer) Confirm(ctx context.Context, message string) (bool, error) {
	c.startOnce.Do(func() { go c.readLines() })
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		c.ask(message)
		select {
		case <-ctx.Done():
			fmt.Fprintln(c.out)
			return false, ctx.Err()
		case line, open := <-c.lines:
			if !open {
				fmt.Fprintln(c.out)
				return false, ErrNoInput
			}
			if answer, ok := parseAnswer(line.text); ok {
				return answer, nil
			}
			if line.err != nil {
				fmt.Fprintln(c.out)
				if errors.Is(line.err, io.EOF) {
					return false, ErrNoInput
				}
				return false, fmt.Errorf("read answer: %w", line.err)
			}
		}
	}
}

// readLines feeds c.lines until the input fails. A read blocked on a terminal
// cannot be interrupted, so the goroutine outlives a cancelled Confirm.
func (c *Confirmer) readLines() {
	defer close(c.lines)
	for {
		text, err := c.in.ReadString('\n')
		c.lines <- answerLine{text: text, err: err}
		if err != nil {
			return
		}
	}
}

// Approve implements renamer.Approver.
func (c *Confirmer) Approve(ctx context.Context, plan renamer.Plan) (bool, error) {
	return c.Confirm(ctx, Question(plan))
}

// Question renders the confirmation text for a plan.
func Question(plan renamer.Plan) string {
	return fmt.Sprintf("Rename '%s' to '%s'? [y/n]", plan.SourceName, plan.DestinationName)
}

func (c *Confirmer) ask(message string) {
	if c.colorize {
		fmt.Fprintf(c.out, "%s%s%s ", ansiBold, message, ansiReset)
		return
	}
	fmt.Fprintf(c.out, "%s ", message)
}

func parseAnswer(line string) (bool, bool) {
	switch strings.TrimSpace(line) {
	case "y", "Y":
		return true, true
	case "n", "N":
		return false, true
	}
	return false, false
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
