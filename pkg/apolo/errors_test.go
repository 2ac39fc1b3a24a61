package apolo

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"invalid config", ErrInvalidConfig, ExitConfigError},
		{"wrapped invalid config", fmt.Errorf("bad: %w", ErrInvalidConfig), ExitConfigError},
		{"not zip", ErrNotZipArchive, ExitArchiveError},
		{"unreadable source", ErrSourceUnreadable, ExitArchiveError},
		{"blocking findings", ErrBlockingFindings, ExitValidationFailed},
		{"not git repo", ErrNotGitRepo, ExitConfigError},
		{"approval denied", ErrApprovalDenied, ExitApprovalDenied},
		{"git failed", ErrGitCommandFailed, ExitGitFailed},
		{"manifest write", ErrManifestWrite, ExitGitFailed},
		{"git not installed", fmt.Errorf("%w: exec: \"git\": executable file not found in $PATH", ErrGitCommandFailed), ExitGitFailed},
		{"unwrapped git-ish text", errors.New("git: something odd"), ExitGeneralError},
		{"unclassified", errors.New("boom"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
