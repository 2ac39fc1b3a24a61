package services

import (
	"fmt"

	"github.com/apolo-devops/apolo/pkg/apolo"
)

// SessionBuilder turns an extracted archive into an immutable
// ReleaseSession: collect candidates, validate them, and snapshot the
// result.
type SessionBuilder struct {
	collector apolo.FileCollector
	validator apolo.FileValidator
	logger    apolo.Logger
}

// NewSessionBuilder creates a builder with all dependencies injected.
// Panics if any dependency is nil.
func NewSessionBuilder(collector apolo.FileCollector, validator apolo.FileValidator, logger apolo.Logger) *SessionBuilder {
	if collector == nil {
		panic("collector cannot be nil")
	}
	if validator == nil {
		panic("validator cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &SessionBuilder{
		collector: collector,
		validator: validator,
		logger:    logger,
	}
}

// Build analyzes the tree under sourceRoot. Collector warnings and
// validator findings land in the same list; only an unreadable root fails
// the build.
func (b *SessionBuilder) Build(sourceRoot string) (*apolo.ReleaseSession, error) {
	result, err := b.collector.Collect(sourceRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to collect candidate files: %w", err)
	}

	findings := append(apolo.Findings{}, result.Warnings...)
	findings = append(findings, b.validator.ValidateAll(result.Files)...)

	session := apolo.NewReleaseSession(sourceRoot, result.Files, findings)
	b.logger.Verbose("session %s: %d file(s), %d finding(s)",
		session.ID(), len(result.Files), len(findings))
	return session, nil
}
