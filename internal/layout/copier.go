package layout

import (
	"fmt"
	"path/filepath"

	"github.com/apolo-devops/apolo/internal/files/filesystem"
	"github.com/apolo-devops/apolo/pkg/apolo"
)

// Copier places candidate files into the repository working tree according
// to DestinationFor.
type Copier struct {
	fsProvider filesystem.FileSystemProvider
	logger     apolo.Logger
}

// NewCopier creates a copier backed by the OS filesystem.
// Panics if logger is nil.
func NewCopier(logger apolo.Logger) *Copier {
	return NewCopierWithFS(logger, filesystem.NewOSFileSystem())
}

// NewCopierWithFS creates a copier with a custom filesystem provider.
// Panics if logger or fsProvider is nil.
func NewCopierWithFS(logger apolo.Logger, fsProvider filesystem.FileSystemProvider) *Copier {
	if logger == nil {
		panic("logger cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Copier{
		fsProvider: fsProvider,
		logger:     logger,
	}
}

// CopyAll copies every file with a destination into repoPath and returns how
// many were copied plus advisory findings for files that were skipped. A
// single unreadable or unwritable file is a warning, not a batch failure.
func (c *Copier) CopyAll(repoPath, schemaName string, files []apolo.CandidateFile) (int, apolo.Findings) {
	copied := 0
	var warnings apolo.Findings

	for _, f := range files {
		dest, ok := DestinationFor(f, schemaName)
		if !ok {
			c.logger.Warn("no destination for %s, not copied", f.RelativePath)
			warnings = append(warnings, apolo.Finding{
				Path:     f.RelativePath,
				Severity: apolo.SeverityAdvisory,
				Message:  fmt.Sprintf("extension %q has no copy destination, file not copied", f.Extension),
			})
			continue
		}

		if err := c.copyOne(f, filepath.Join(repoPath, filepath.FromSlash(dest))); err != nil {
			c.logger.Warn("failed to copy %s: %v", f.RelativePath, err)
			warnings = append(warnings, apolo.Finding{
				Path:     f.RelativePath,
				Severity: apolo.SeverityAdvisory,
				Message:  fmt.Sprintf("copy to %s failed: %v", dest, err),
			})
			continue
		}

		c.logger.Verbose("copied %s -> %s", f.RelativePath, dest)
		copied++
	}

	c.logger.Info("%d file(s) copied into repository", copied)
	return copied, warnings
}

func (c *Copier) copyOne(f apolo.CandidateFile, destPath string) error {
	content, err := c.fsProvider.ReadFile(f.AbsolutePath)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	if err := c.fsProvider.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return fmt.Errorf("create destination directory: %w", err)
	}
	if err := c.fsProvider.WriteFile(destPath, content, 0o644); err != nil {
		return fmt.Errorf("write destination: %w", err)
	}
	return nil
}
