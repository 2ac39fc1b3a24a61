package validate

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/apolo-devops/apolo/internal/files/filesystem"
	"github.com/apolo-devops/apolo/pkg/apolo"
)

// terminalEndPattern matches a line ending in a PL/SQL block terminator,
// with an optional identifier: "END;", "end emp_pkg;". The statement may
// share its line with preceding code, so only the tail is anchored.
var terminalEndPattern = regexp.MustCompile(`(?i)\bEND(\s+\w+)?;\s*$`)

// Validator checks candidate files against the deployment readiness rules.
// Only files in the core DB-script extension set are inspected; forms and
// reports pass through untouched.
type Validator struct {
	fsProvider filesystem.FileSystemProvider
	logger     apolo.Logger
}

// Compile-time interface check
var _ apolo.FileValidator = (*Validator)(nil)

// New creates a validator backed by the OS filesystem.
// Panics if logger is nil.
func New(logger apolo.Logger) *Validator {
	return NewWithFS(logger, filesystem.NewOSFileSystem())
}

// NewWithFS creates a validator with a custom filesystem provider.
// Panics if logger or fsProvider is nil.
func NewWithFS(logger apolo.Logger, fsProvider filesystem.FileSystemProvider) *Validator {
	if logger == nil {
		panic("logger cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Validator{
		fsProvider: fsProvider,
		logger:     logger,
	}
}

// ValidateAll implements apolo.FileValidator.
// Findings are appended in input order; one file's problems never stop
// validation of the rest.
func (v *Validator) ValidateAll(files []apolo.CandidateFile) apolo.Findings {
	var findings apolo.Findings

	for _, f := range files {
		if !apolo.IsDBScriptExtension(f.Extension) {
			continue
		}
		findings = append(findings, v.validateFile(f)...)
	}

	if n := len(findings.Blocking()); n > 0 {
		v.logger.Verbose("validation produced %d blocking finding(s)", n)
	}
	return findings
}

func (v *Validator) validateFile(f apolo.CandidateFile) apolo.Findings {
	var findings apolo.Findings

	findings = append(findings, checkNaming(f)...)

	if apolo.NeedsSlashTerminator(f.Extension) {
		content, err := v.fsProvider.ReadFile(f.AbsolutePath)
		if err != nil {
			findings = append(findings, apolo.Finding{
				Path:     f.RelativePath,
				Severity: apolo.SeverityBlocking,
				Message:  fmt.Sprintf("file could not be read for validation: %v", err),
			})
			return findings
		}
		if finding, ok := checkTerminator(f, string(content)); ok {
			findings = append(findings, finding)
		}
	}

	return findings
}

// checkNaming verifies extension casing (blocking) and flags suspicious
// filename characters (advisory).
func checkNaming(f apolo.CandidateFile) apolo.Findings {
	var findings apolo.Findings

	rawExt := filepath.Ext(f.Filename)
	if rawExt != strings.ToLower(rawExt) {
		findings = append(findings, apolo.Finding{
			Path:     f.RelativePath,
			Severity: apolo.SeverityBlocking,
			Message:  fmt.Sprintf("extension of %q must be lower-case", f.Filename),
		})
	}

	if strings.ContainsAny(f.Filename, "/*# ") {
		findings = append(findings, apolo.Finding{
			Path:     f.RelativePath,
			Severity: apolo.SeverityAdvisory,
			Message:  fmt.Sprintf("filename %q contains special characters", f.Filename),
		})
	}

	return findings
}

// checkTerminator looks for the last terminal END statement and requires a
// lone "/" line after it, allowing blank and comment lines in between.
// Files with no END-shaped line at all are presumed not to end in a PL/SQL
// block and are skipped.
func checkTerminator(f apolo.CandidateFile, content string) (apolo.Finding, bool) {
	lines := splitLines(content)

	endIdx := -1
	for i := len(lines) - 1; i >= 0; i-- {
		if terminalEndPattern.MatchString(lines[i]) {
			endIdx = i
			break
		}
	}
	if endIdx < 0 {
		return apolo.Finding{}, false
	}

	for i := endIdx + 1; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" || strings.HasPrefix(trimmed, "--") || strings.HasPrefix(trimmed, "/*") {
			continue
		}
		if trimmed == "/" {
			return apolo.Finding{}, false
		}
		break
	}

	return apolo.Finding{
		Path:     f.RelativePath,
		Severity: apolo.SeverityBlocking,
		Line:     endIdx + 1,
		Message:  fmt.Sprintf("missing terminating '/' after END statement on line %d", endIdx+1),
	}, true
}

// splitLines splits on newlines, tolerating CRLF endings.
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
