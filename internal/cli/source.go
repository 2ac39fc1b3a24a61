package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apolo-devops/apolo/internal/archive"
	"github.com/apolo-devops/apolo/pkg/apolo"
)

// resolveSource turns the source argument into a directory of release
// scripts. Zip archives are extracted into a temporary workspace; directories
// are used in place.
//
// The returned cleanup function removes the workspace and is a no-op for
// plain directories or when keepWorkspace is set.
func resolveSource(sourcePath string, keepWorkspace bool, logger apolo.Logger) (string, func(), error) {
	info, err := os.Stat(sourcePath)
	if err != nil {
		return "", nil, fmt.Errorf("cannot access source %q: %w", sourcePath, apolo.ErrSourceUnreadable)
	}

	if info.IsDir() {
		return sourcePath, func() {}, nil
	}

	if !strings.EqualFold(filepath.Ext(sourcePath), ".zip") {
		return "", nil, fmt.Errorf("source %q: %w", sourcePath, apolo.ErrNotZipArchive)
	}

	ws, err := archive.NewWorkspace()
	if err != nil {
		return "", nil, fmt.Errorf("failed to create extraction workspace: %w", err)
	}

	extractor := archive.NewExtractor(logger)
	count, err := extractor.Extract(sourcePath, ws)
	if err != nil {
		_ = ws.Cleanup()
		return "", nil, err
	}
	logger.Verbose("Extracted %d file(s) into %s", count, ws.Root())

	if keepWorkspace {
		logger.Info("Workspace kept at %s", ws.Root())
		return ws.Root(), func() {}, nil
	}
	return ws.Root(), func() { _ = ws.Cleanup() }, nil
}
