package layout

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/apolo-devops/apolo/internal/files/filesystem"
	"github.com/apolo-devops/apolo/internal/manifest"
	"github.com/apolo-devops/apolo/pkg/apolo"
)

// ManifestWriter places the generated manifest under
// database/data/<SCHEMA>/<BRANCH>/manifest.txt, cleaning any previous
// content for that branch first.
type ManifestWriter struct {
	fsProvider filesystem.FileSystemProvider
	logger     apolo.Logger
}

// NewManifestWriter creates a writer backed by the OS filesystem.
// Panics if logger is nil.
func NewManifestWriter(logger apolo.Logger) *ManifestWriter {
	return NewManifestWriterWithFS(logger, filesystem.NewOSFileSystem())
}

// NewManifestWriterWithFS creates a writer with a custom filesystem provider.
// Panics if logger or fsProvider is nil.
func NewManifestWriterWithFS(logger apolo.Logger, fsProvider filesystem.FileSystemProvider) *ManifestWriter {
	if logger == nil {
		panic("logger cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &ManifestWriter{
		fsProvider: fsProvider,
		logger:     logger,
	}
}

// ManifestDir returns the repository-relative directory holding the manifest
// for one schema and branch. Both segments are forced upper-case.
func ManifestDir(schemaName, branchName string) string {
	return filepath.ToSlash(filepath.Join(
		filepath.FromSlash(apolo.ManifestDataRoot),
		strings.ToUpper(schemaName),
		strings.ToUpper(branchName),
	))
}

// Write generates and persists the manifest for the candidate set. The
// branch's manifest directory is removed and recreated so stale entries from
// a previous run never survive. When no file is categorized, the directory
// is still cleaned but no manifest.txt is written and ok is false.
func (w *ManifestWriter) Write(repoPath, schemaName, branchName string, files []apolo.CandidateFile) (ok bool, err error) {
	dir := filepath.Join(repoPath, filepath.FromSlash(ManifestDir(schemaName, branchName)))

	if err := w.fsProvider.RemoveAll(dir); err != nil {
		return false, fmt.Errorf("%w: cleaning %s: %s", apolo.ErrManifestWrite, dir, err)
	}

	if !manifest.HasEntries(files) {
		w.logger.Info("no categorized files, manifest not written")
		return false, nil
	}

	if err := w.fsProvider.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("%w: creating %s: %s", apolo.ErrManifestWrite, dir, err)
	}

	content := manifest.Generate(schemaName, files)
	target := filepath.Join(dir, apolo.ManifestFileName)
	if err := w.fsProvider.WriteFile(target, []byte(content), 0o644); err != nil {
		return false, fmt.Errorf("%w: writing %s: %s", apolo.ErrManifestWrite, target, err)
	}

	w.logger.Info("manifest written to %s", target)
	return true, nil
}
