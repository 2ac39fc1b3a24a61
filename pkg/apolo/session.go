package apolo

import (
	"github.com/google/uuid"
)

// ReleaseSession is the immutable snapshot of one analyzed archive: the
// ordered candidate set plus every finding the validator and collector
// produced. It is threaded explicitly through the pipeline stages instead of
// living in ambient state, and is discarded when a new archive is analyzed.
//
// Thread-Safety: the session is read-only after construction and safe to
// share; accessors return the internal slices, which callers must not mutate.
type ReleaseSession struct {
	id         uuid.UUID
	sourceRoot string
	files      []CandidateFile
	findings   Findings
}

// NewReleaseSession creates a session over the collected files and findings.
// A fresh report ID is minted for correlating console output, reports and
// workspace directories.
func NewReleaseSession(sourceRoot string, files []CandidateFile, findings Findings) *ReleaseSession {
	return &ReleaseSession{
		id:         uuid.New(),
		sourceRoot: sourceRoot,
		files:      files,
		findings:   findings,
	}
}

// ID returns the session's report identifier.
func (s *ReleaseSession) ID() uuid.UUID { return s.id }

// SourceRoot returns the extracted archive root the session was built from.
func (s *ReleaseSession) SourceRoot() string { return s.sourceRoot }

// Files returns the candidate files in collection order.
func (s *ReleaseSession) Files() []CandidateFile { return s.files }

// Findings returns every finding recorded during collection and validation.
func (s *ReleaseSession) Findings() Findings { return s.findings }

// HasBlocking reports whether publishing is gated by unfixed findings.
func (s *ReleaseSession) HasBlocking() bool { return s.findings.HasBlocking() }

// DBFileCount counts files in the core DB-script extension set.
func (s *ReleaseSession) DBFileCount() int {
	n := 0
	for _, f := range s.files {
		if IsDBScriptExtension(f.Extension) {
			n++
		}
	}
	return n
}

// CategorizedCount counts files that will appear in the manifest.
func (s *ReleaseSession) CategorizedCount() int {
	n := 0
	for _, f := range s.files {
		if _, ok := CategoryOf(f); ok {
			n++
		}
	}
	return n
}
