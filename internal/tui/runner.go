package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Prompter asks yes/no questions on the console. Non-interactive
// environments auto-confirm so scripted runs never hang.
type Prompter struct {
	in          io.Reader
	out         io.Writer
	interactive func() bool
}

func NewPrompter() *Prompter {
	return &Prompter{
		in:          os.Stdin,
		out:         os.Stdout,
		interactive: IsInteractive,
	}
}

// Continue asks the question and returns the answer; empty input and "y"
// confirm. Non-interactive mode auto-confirms without printing.
func (p *Prompter) Continue(message string) bool {
	if !p.interactive() {
		return true
	}

	fmt.Fprintf(p.out, "%s [Y/n]: ", message)

	response, err := bufio.NewReader(p.in).ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))

	return response == "" || response == "y"
}

// ProgressDisplay prints stage progress for the release pipeline.
type ProgressDisplay struct {
	out         io.Writer
	interactive func() bool
}

func NewProgressDisplay() *ProgressDisplay {
	return &ProgressDisplay{
		out:         os.Stdout,
		interactive: IsInteractive,
	}
}

func (p *ProgressDisplay) Start(message string) {
	if !p.interactive() {
		fmt.Fprintln(p.out, message)
		return
	}
	fmt.Fprintf(p.out, "◐ %s\n", message)
}

func (p *ProgressDisplay) Success(message string) {
	fmt.Fprintf(p.out, "✓ %s\n", message)
}

func (p *ProgressDisplay) Error(message string) {
	fmt.Fprintf(p.out, "✗ %s\n", message)
}
