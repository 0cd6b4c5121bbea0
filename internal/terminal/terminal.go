// Package terminal reads interactive answers from the controlling terminal.
// The setup binary is often executed with its standard input consumed by a
// pipe (curl | sh style bootstraps), so prompts must not read os.Stdin
// blindly. Open prefers /dev/tty and falls back to stdin only when stdin is
// itself a terminal.
package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Terminal is an interactive line-oriented prompt channel.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
	tty io.Closer // set when Open owns the /dev/tty handle
}

// Open connects to the controlling terminal. It returns an error when the
// process has no terminal to talk to at all, in which case interactive
// onboarding cannot proceed.
func Open() (*Terminal, error) {
	tty, err := os.Open("/dev/tty")
	if err == nil {
		return &Terminal{in: bufio.NewReader(tty), out: os.Stdout, tty: tty}, nil
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return &Terminal{in: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
	}
	return nil, fmt.Errorf("no interactive terminal available: %w", err)
}

// New builds a Terminal over arbitrary streams. Used by tests to script
// answers.
func New(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// Prompt writes the label and blocks for one line of input, returned with
// surrounding whitespace trimmed. A bare Enter yields the empty string and
// no error; judging emptiness is the caller's business.
func (t *Terminal) Prompt(label string) (string, error) {
	if _, err := fmt.Fprint(t.out, label); err != nil {
		return "", err
	}
	line, err := t.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if err != nil && line == "" {
		return "", fmt.Errorf("terminal closed while waiting for input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Close releases the /dev/tty handle when Open acquired one.
func (t *Terminal) Close() error {
	if t.tty != nil {
		return t.tty.Close()
	}
	return nil
}
