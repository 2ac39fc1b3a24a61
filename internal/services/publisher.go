package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/apolo-devops/apolo/pkg/apolo"
)

// GitClient is the slice of git functionality the publisher needs.
// *gitops.Git satisfies it.
type GitClient interface {
	IsRepo(repoPath string) bool
	SchemaDirs(repoPath string) ([]string, error)
	PrepareBranch(ctx context.Context, repoPath, branchName string) error
	Publish(ctx context.Context, repoPath, branchName, commitMessage string) error
}

// FileCopier places candidate files into the repository working tree.
// *layout.Copier satisfies it.
type FileCopier interface {
	CopyAll(repoPath, schemaName string, files []apolo.CandidateFile) (int, apolo.Findings)
}

// ManifestWriter persists the generated manifest for a branch.
// *layout.ManifestWriter satisfies it.
type ManifestWriter interface {
	Write(repoPath, schemaName, branchName string, files []apolo.CandidateFile) (bool, error)
}

// Publisher materializes an approved session into the git repository:
// branch preparation, file copy, manifest write and the optional
// approver-gated push.
//
// Thread-Safety: NOT safe for concurrent Publish() calls on the same
// instance against the same repository.
type Publisher struct {
	git      GitClient
	copier   FileCopier
	writer   ManifestWriter
	approver apolo.Approver
	logger   apolo.Logger
}

// NewPublisher creates a publisher with all dependencies injected.
// Panics if any dependency is nil.
func NewPublisher(git GitClient, copier FileCopier, writer ManifestWriter, approver apolo.Approver, logger apolo.Logger) *Publisher {
	if git == nil {
		panic("git cannot be nil")
	}
	if copier == nil {
		panic("copier cannot be nil")
	}
	if writer == nil {
		panic("writer cannot be nil")
	}
	if approver == nil {
		panic("approver cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Publisher{
		git:      git,
		copier:   copier,
		writer:   writer,
		approver: approver,
		logger:   logger,
	}
}

// Publish runs the full release for one session. Blocking findings, an
// invalid branch name, an unknown schema or a non-repo path abort before any
// git state is touched.
func (p *Publisher) Publish(ctx context.Context, session *apolo.ReleaseSession, cfg apolo.ReleaseConfig) error {
	if session == nil {
		panic("session cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if session.HasBlocking() {
		return fmt.Errorf("%w: %d blocking finding(s)", apolo.ErrBlockingFindings, len(session.Findings().Blocking()))
	}

	branchName := strings.ToUpper(strings.TrimSpace(cfg.BranchName))
	if !apolo.ValidBranchName(branchName) {
		return fmt.Errorf("%w: branch name %q must match F_[A-Z0-9_]+", apolo.ErrInvalidConfig, cfg.BranchName)
	}

	if !p.git.IsRepo(cfg.RepoPath) {
		return fmt.Errorf("%w: %s", apolo.ErrNotGitRepo, cfg.RepoPath)
	}
	if err := p.checkSchema(cfg.RepoPath, cfg.SchemaName); err != nil {
		return err
	}

	if err := p.git.PrepareBranch(ctx, cfg.RepoPath, branchName); err != nil {
		p.logger.Error("branch preparation failed: %v", err)
		return err
	}

	copied, warnings := p.copier.CopyAll(cfg.RepoPath, cfg.SchemaName, session.Files())
	for _, w := range warnings {
		p.logger.Warn("%s", w)
	}
	p.logger.Info("release staged: %d file(s) on branch %s", copied, branchName)

	written, err := p.writer.Write(cfg.RepoPath, cfg.SchemaName, branchName, session.Files())
	if err != nil {
		p.logger.Error("manifest write failed: %v", err)
		return err
	}
	if !written {
		p.logger.Info("no DB scripts categorized, branch carries copied sources only")
	}

	if !cfg.Push {
		p.logger.Info("push not requested, changes remain local")
		return nil
	}

	approved, err := p.approver.RequestApproval(ctx, branchName)
	if err != nil {
		return fmt.Errorf("approval failed: %w", err)
	}
	if !approved {
		return fmt.Errorf("%w: push to %s not confirmed", apolo.ErrApprovalDenied, branchName)
	}

	if err := p.git.Publish(ctx, cfg.RepoPath, branchName, cfg.CommitMessage); err != nil {
		p.logger.Error("push failed: %v", err)
		return err
	}
	return nil
}

// checkSchema requires the schema to exist under database/plsql when that
// directory is present at all. Fresh repositories without a plsql root are
// allowed through.
func (p *Publisher) checkSchema(repoPath, schemaName string) error {
	schemas, err := p.git.SchemaDirs(repoPath)
	if err != nil {
		return err
	}
	if len(schemas) == 0 {
		return nil
	}
	for _, s := range schemas {
		if strings.EqualFold(s, schemaName) {
			return nil
		}
	}
	return fmt.Errorf("%w: schema %q not found under %s (available: %s)",
		apolo.ErrInvalidConfig, schemaName, apolo.PLSQLRoot, strings.Join(schemas, ", "))
}
