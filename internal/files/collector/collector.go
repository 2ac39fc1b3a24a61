package collector

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/apolo-devops/apolo/internal/files/filesystem"
	"github.com/apolo-devops/apolo/pkg/apolo"
)

// Collector discovers deployable source files under an extracted archive
// root. It prunes rollback directories, filters by the extension allow-list
// and returns candidates in deterministic processing order.
// Collector is safe for concurrent use as long as the provided fsProvider
// and logger are also thread-safe.
type Collector struct {
	fsProvider filesystem.FileSystemProvider
	logger     apolo.Logger
}

// Compile-time interface check
var _ apolo.FileCollector = (*Collector)(nil)

// New creates a collector backed by the OS filesystem.
// Panics if logger is nil.
func New(logger apolo.Logger) *Collector {
	return NewWithFS(logger, filesystem.NewOSFileSystem())
}

// NewWithFS creates a collector with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if logger or fsProvider is nil.
func NewWithFS(logger apolo.Logger, fsProvider filesystem.FileSystemProvider) *Collector {
	if logger == nil {
		panic("logger cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Collector{
		fsProvider: fsProvider,
		logger:     logger,
	}
}

// allowed is the lower-cased extension allow-list, built once.
var allowed = func() map[string]struct{} {
	m := make(map[string]struct{})
	for _, ext := range apolo.AllowedExtensions() {
		m[ext] = struct{}{}
	}
	return m
}()

// Collect implements apolo.FileCollector.
//
// Every directory whose name contains "rollback" (case-insensitive) is
// pruned together with its subtree. Subtrees that cannot be read become
// warning findings and the walk continues; an unreadable root is fatal.
func (c *Collector) Collect(root string) (apolo.CollectionResult, error) {
	dir, err := c.fsProvider.Open(root)
	if err != nil {
		return apolo.CollectionResult{}, fmt.Errorf("%w: %s", apolo.ErrSourceUnreadable, err)
	}

	var files []apolo.CandidateFile
	var warnings apolo.Findings

	err = dir.Walk(func(file filesystem.File, walkErr error) error {
		if walkErr != nil {
			c.logger.Warn("skipping unreadable path: %v", walkErr)
			warnings = append(warnings, apolo.Finding{
				Severity: apolo.SeverityAdvisory,
				Message:  fmt.Sprintf("unreadable path skipped: %v", walkErr),
			})
			return filesystem.SkipDir
		}

		if file.Info().IsDir() {
			if strings.Contains(strings.ToLower(file.Info().Name()), apolo.RollbackDirMarker) {
				c.logger.Verbose("pruning rollback directory: %s", file.RelativePath())
				return filesystem.SkipDir
			}
			return nil
		}

		candidate := apolo.NewCandidateFile(file.Path(), file.RelativePath())
		if _, ok := allowed[candidate.Extension]; !ok {
			c.logger.Verbose("ignoring %s: extension %q not deployable", candidate.RelativePath, candidate.Extension)
			return nil
		}

		files = append(files, candidate)
		return nil
	})
	if err != nil {
		return apolo.CollectionResult{}, fmt.Errorf("failed to walk source tree: %w", err)
	}

	sortCandidates(files)

	c.logger.Verbose("collected %d candidate files under %s", len(files), root)
	return apolo.CollectionResult{Files: files, Warnings: warnings}, nil
}

// sortCandidates orders files by containing directory, then numeric filename
// prefix, then filename. Files without a leading number sort after numbered
// siblings.
func sortCandidates(files []apolo.CandidateFile) {
	sort.SliceStable(files, func(i, j int) bool {
		a, b := files[i], files[j]
		if da, db := path.Dir(a.RelativePath), path.Dir(b.RelativePath); da != db {
			return da < db
		}
		if a.NumericPrefix != b.NumericPrefix {
			return a.NumericPrefix < b.NumericPrefix
		}
		return a.Filename < b.Filename
	})
}
