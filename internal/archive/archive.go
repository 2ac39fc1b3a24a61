// Package archive validates uploaded zip deliverables and extracts them into
// a disposable workspace the rest of the pipeline treats as an immutable
// snapshot.
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/apolo-devops/apolo/pkg/apolo"
)

// Workspace is the extraction target for one deliverable. Each workspace
// lives under the system temp directory as apolo-<uuid> so concurrent runs
// never collide.
type Workspace struct {
	root string
}

// NewWorkspace creates a fresh extraction directory.
func NewWorkspace() (*Workspace, error) {
	root := filepath.Join(os.TempDir(), "apolo-"+uuid.NewString())
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}
	return &Workspace{root: root}, nil
}

// Root returns the workspace directory.
func (w *Workspace) Root() string {
	return w.root
}

// Cleanup removes the workspace and everything extracted into it.
func (w *Workspace) Cleanup() error {
	return os.RemoveAll(w.root)
}

// Extractor validates and unpacks zip deliverables.
type Extractor struct {
	logger apolo.Logger
}

// NewExtractor creates an extractor.
// Panics if logger is nil.
func NewExtractor(logger apolo.Logger) *Extractor {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Extractor{logger: logger}
}

// Extract unpacks the archive at zipPath into the workspace and returns the
// number of files written. A file that is not a readable zip archive yields
// ErrNotZipArchive. Entries escaping the workspace root are rejected.
func (e *Extractor) Extract(zipPath string, ws *Workspace) (int, error) {
	reader, err := zip.OpenReader(zipPath)
	if err != nil {
		if errors.Is(err, zip.ErrFormat) {
			return 0, fmt.Errorf("%w: %s", apolo.ErrNotZipArchive, zipPath)
		}
		return 0, fmt.Errorf("failed to open archive %s: %w", zipPath, err)
	}
	defer reader.Close()

	extracted := 0
	for _, entry := range reader.File {
		target, err := safeJoin(ws.Root(), entry.Name)
		if err != nil {
			return extracted, err
		}

		if entry.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return extracted, fmt.Errorf("failed to create directory %s: %w", entry.Name, err)
			}
			continue
		}

		if err := extractFile(entry, target); err != nil {
			return extracted, err
		}
		extracted++
	}

	e.logger.Verbose("extracted %d file(s) from %s", extracted, zipPath)
	return extracted, nil
}

// safeJoin joins an archive entry name onto root, rejecting traversal
// outside the workspace.
func safeJoin(root, name string) (string, error) {
	target := filepath.Join(root, filepath.FromSlash(name))
	if target != root && !strings.HasPrefix(target, root+string(os.PathSeparator)) {
		return "", fmt.Errorf("%w: entry %q escapes the workspace", apolo.ErrNotZipArchive, name)
	}
	return target, nil
}

func extractFile(entry *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", entry.Name, err)
	}

	src, err := entry.Open()
	if err != nil {
		return fmt.Errorf("failed to open archive entry %s: %w", entry.Name, err)
	}
	defer src.Close()

	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", target, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to extract %s: %w", entry.Name, err)
	}
	return nil
}
