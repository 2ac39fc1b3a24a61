// Package gitops drives the local git working tree a release is published
// through: branch preparation, schema discovery, commit and push. All
// operations shell out to the user's git binary so existing credential
// helpers keep working.
package gitops

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/apolo-devops/apolo/pkg/apolo"
)

// Git performs repository operations through a CommandRunner.
type Git struct {
	runner CommandRunner
	logger apolo.Logger
}

// New creates a Git helper using the system git binary.
// Panics if logger is nil.
func New(logger apolo.Logger) *Git {
	return NewWithRunner(logger, NewExecRunner())
}

// NewWithRunner creates a Git helper with a custom runner.
// Panics if logger or runner is nil.
func NewWithRunner(logger apolo.Logger, runner CommandRunner) *Git {
	if logger == nil {
		panic("logger cannot be nil")
	}
	if runner == nil {
		panic("runner cannot be nil")
	}
	return &Git{runner: runner, logger: logger}
}

// IsRepo reports whether repoPath is a git working tree (has a .git
// directory).
func (g *Git) IsRepo(repoPath string) bool {
	info, err := os.Stat(filepath.Join(repoPath, ".git"))
	return err == nil && info.IsDir()
}

// SchemaDirs lists the schema directories under database/plsql in the
// repository, sorted, with dot-directories excluded. A missing plsql root
// yields an empty list, not an error.
func (g *Git) SchemaDirs(repoPath string) ([]string, error) {
	base := filepath.Join(repoPath, filepath.FromSlash(apolo.PLSQLRoot))

	entries, err := os.ReadDir(base)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list schema directories: %w", err)
	}

	var schemas []string
	for _, entry := range entries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			schemas = append(schemas, entry.Name())
		}
	}
	sort.Strings(schemas)
	return schemas, nil
}

// PrepareBranch brings the working tree to a fresh state on the release
// branch: checkout main, pull, clean untracked files, then check out the
// branch, creating it when it exists neither locally nor on origin.
func (g *Git) PrepareBranch(ctx context.Context, repoPath, branchName string) error {
	if !g.IsRepo(repoPath) {
		return fmt.Errorf("%w: %s", apolo.ErrNotGitRepo, repoPath)
	}

	if err := g.run(ctx, repoPath, "checkout", "main"); err != nil {
		return err
	}
	if err := g.run(ctx, repoPath, "pull"); err != nil {
		return err
	}

	// Clean failures are tolerated: locked or in-use files should not stop
	// the release.
	if _, err := g.runner.Run(ctx, repoPath, "clean", "-fdx"); err != nil {
		g.logger.Warn("failed to clean untracked files: %v", err)
	}

	exists, err := g.branchExists(ctx, repoPath, branchName)
	if err != nil {
		return err
	}

	if exists {
		g.logger.Info("branch %s already exists, switching to it", branchName)
		return g.run(ctx, repoPath, "checkout", branchName)
	}

	g.logger.Info("creating branch %s", branchName)
	return g.run(ctx, repoPath, "checkout", "-b", branchName)
}

// branchExists checks for the branch locally, then on origin.
func (g *Git) branchExists(ctx context.Context, repoPath, branchName string) (bool, error) {
	out, err := g.runner.Run(ctx, repoPath, "branch", "--list", branchName)
	if err != nil {
		return false, fmt.Errorf("%w: %s", apolo.ErrGitCommandFailed, err)
	}
	if out != "" {
		return true, nil
	}

	out, err = g.runner.Run(ctx, repoPath, "branch", "-r", "--list", "origin/"+branchName)
	if err != nil {
		return false, fmt.Errorf("%w: %s", apolo.ErrGitCommandFailed, err)
	}
	return out != "", nil
}

// Publish stages everything, commits with the given message and pushes the
// branch to origin with upstream tracking.
func (g *Git) Publish(ctx context.Context, repoPath, branchName, commitMessage string) error {
	if commitMessage == "" {
		commitMessage = DefaultCommitMessage(branchName)
	}

	if err := g.run(ctx, repoPath, "add", "."); err != nil {
		return err
	}
	if err := g.run(ctx, repoPath, "commit", "-m", commitMessage); err != nil {
		return err
	}
	if err := g.run(ctx, repoPath, "push", "-u", "origin", branchName); err != nil {
		return err
	}

	g.logger.Info("changes pushed to origin/%s", branchName)
	return nil
}

// run executes one git command and wraps failures in ErrGitCommandFailed.
func (g *Git) run(ctx context.Context, repoPath string, args ...string) error {
	out, err := g.runner.Run(ctx, repoPath, args...)
	if err != nil {
		return fmt.Errorf("%w: %s", apolo.ErrGitCommandFailed, err)
	}
	if out != "" {
		g.logger.Verbose("%s", out)
	}
	return nil
}

// DefaultCommitMessage is used when the user leaves the commit message
// empty.
func DefaultCommitMessage(branchName string) string {
	return fmt.Sprintf("feat: Add DB scripts for branch %s", branchName)
}
