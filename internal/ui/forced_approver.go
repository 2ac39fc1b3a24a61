package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/apolo-devops/apolo/pkg/apolo"
)

// ForcedApprover implements the Approver interface for non-interactive
// approval. It displays a countdown and automatically approves when it
// elapses, used when the --yes flag is provided together with --push.
type ForcedApprover struct {
	output  io.Writer
	sleepFn func(time.Duration)
}

// NewForcedApprover creates a new ForcedApprover.
func NewForcedApprover() apolo.Approver {
	return &ForcedApprover{
		output:  os.Stderr,
		sleepFn: time.Sleep,
	}
}

// RequestApproval displays a countdown and automatically approves after it.
func (a *ForcedApprover) RequestApproval(ctx context.Context, branchName string) (bool, error) {
	fmt.Fprintf(a.output, "\nBranch '%s' will be pushed to origin without confirmation.\n", branchName)

	countdownSeconds := int(apolo.DefaultPushApprovalCountdown.Seconds())
	for i := countdownSeconds; i > 0; i-- {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
			fmt.Fprintf(a.output, "\rPushing in: %d seconds... (Press Ctrl+C to cancel)", i)
			a.sleepFn(1 * time.Second)
		}
	}

	fmt.Fprintf(a.output, "\r✓ Pushing branch to origin...                              \n")
	return true, nil
}

// Verify ForcedApprover implements the Approver interface at compile time
var _ apolo.Approver = (*ForcedApprover)(nil)
