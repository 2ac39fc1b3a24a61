package apolo

import "context"

// Approver handles user interaction for approval workflows, particularly
// before pushing a generated branch to the shared remote.
//
// Implementations:
//   - ForcedApprover: Shows countdown and automatically approves
//   - InteractiveApprover: Prompts user to type the branch name for confirmation
type Approver interface {
	// RequestApproval prompts for confirmation before pushing branchName.
	//
	// Returns:
	//   - bool: true if approved, false if denied
	//   - error: Any error that occurred during the approval process
	RequestApproval(ctx context.Context, branchName string) (bool, error)
}
