package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apolo-devops/apolo/pkg/apolo"
)

// InteractiveApprover implements the Approver interface for console-based
// interactive confirmation. It prompts the user to type the branch name to
// confirm pushing to the shared remote.
type InteractiveApprover struct {
	input  io.Reader
	output io.Writer
}

// NewInteractiveApprover creates a new InteractiveApprover reading from
// stdin and writing prompts to stderr.
func NewInteractiveApprover() apolo.Approver {
	return &InteractiveApprover{
		input:  os.Stdin,
		output: os.Stderr,
	}
}

// RequestApproval prompts the user to type the branch name to confirm.
func (a *InteractiveApprover) RequestApproval(ctx context.Context, branchName string) (bool, error) {
	fmt.Fprintf(a.output, "\nYou are about to push branch '%s' to origin.\n", branchName)
	fmt.Fprintf(a.output, "To confirm, type the branch name '%s' and press Enter: ", branchName)

	// Read user input with context cancellation support
	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		reader := bufio.NewReader(a.input)
		input, err := reader.ReadString('\n')
		if err != nil {
			errChan <- err
			return
		}
		inputChan <- strings.TrimSpace(input)
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-errChan:
		return false, fmt.Errorf("failed to read input: %w", err)
	case input := <-inputChan:
		if strings.EqualFold(input, branchName) {
			fmt.Fprintln(a.output, "✓ Confirmed. Pushing to origin...")
			return true, nil
		}
		fmt.Fprintf(a.output, "✗ Input '%s' does not match branch name '%s'. Push cancelled.\n", input, branchName)
		return false, nil
	}
}

// Verify InteractiveApprover implements the Approver interface at compile time
var _ apolo.Approver = (*InteractiveApprover)(nil)
