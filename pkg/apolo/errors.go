package apolo

import "errors"

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := publisher.Publish(ctx, session, config)
//	if errors.Is(err, apolo.ErrApprovalDenied) {
//	    // Handle user denying the push
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNotZipArchive indicates the uploaded file is not a valid zip archive.
	ErrNotZipArchive = errors.New("not a valid zip archive")

	// ErrSourceUnreadable indicates the archive root could not be read at all.
	ErrSourceUnreadable = errors.New("source directory unreadable")

	// ErrBlockingFindings indicates validation found issues that must be
	// fixed before the release can proceed.
	ErrBlockingFindings = errors.New("blocking findings present")

	// ErrNotGitRepo indicates the repository path is not a git working tree.
	ErrNotGitRepo = errors.New("not a git repository")

	// ErrApprovalDenied indicates the user denied the push approval.
	ErrApprovalDenied = errors.New("approval denied")

	// ErrGitCommandFailed indicates a git invocation failed.
	ErrGitCommandFailed = errors.New("git command failed")

	// ErrManifestWrite indicates the manifest directory could not be
	// cleaned, created or written.
	ErrManifestWrite = errors.New("manifest write failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Check for sentinel errors
	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrNotZipArchive):
		return ExitArchiveError
	case errors.Is(err, ErrSourceUnreadable):
		return ExitArchiveError
	case errors.Is(err, ErrBlockingFindings):
		return ExitValidationFailed
	case errors.Is(err, ErrNotGitRepo):
		return ExitConfigError
	case errors.Is(err, ErrApprovalDenied):
		return ExitApprovalDenied
	case errors.Is(err, ErrGitCommandFailed):
		return ExitGitFailed
	case errors.Is(err, ErrManifestWrite):
		return ExitGitFailed
	}

	return ExitGeneralError
}
