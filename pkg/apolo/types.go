package apolo

import (
	"errors"
	"fmt"
	"math"
	"path"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// NoNumericPrefix is the sort key assigned to files whose name does not start
// with a decimal digit. It sorts after every real prefix.
const NoNumericPrefix = math.MaxInt

// CandidateFile represents one source file discovered inside an extracted
// archive. Instances are created once per collection run and are immutable
// for the remainder of the pipeline.
//
// All relative paths use Unix-style forward slashes for cross-platform
// consistency; RelativePath is the authoritative key for grouping and
// uniqueness.
type CandidateFile struct {
	// AbsolutePath locates the file on the extraction filesystem. It is used
	// only for reads and copies, never for classification.
	AbsolutePath string

	// RelativePath is the POSIX path relative to the archive root.
	RelativePath string

	// ParentFolder is the last segment of RelativePath's parent ("." for
	// files at the archive root).
	ParentFolder string

	// Extension is the lower-cased suffix including the dot.
	Extension string

	// Filename is the base name including extension, case preserved.
	Filename string

	// NumericPrefix is the leading decimal number of Filename, or
	// NoNumericPrefix when the name does not start with a digit.
	NumericPrefix int
}

// NewCandidateFile builds a CandidateFile from an absolute location and a
// path relative to the archive root. Derived fields (parent folder,
// extension, numeric prefix) are computed here and nowhere else.
func NewCandidateFile(absPath, relPath string) CandidateFile {
	rel := path.Clean(filepath.ToSlash(relPath))
	name := path.Base(rel)
	return CandidateFile{
		AbsolutePath:  absPath,
		RelativePath:  rel,
		ParentFolder:  path.Base(path.Dir(rel)),
		Extension:     strings.ToLower(path.Ext(name)),
		Filename:      name,
		NumericPrefix: NumericPrefixOf(name),
	}
}

// NumericPrefixOf parses the leading decimal digits of s as an integer.
// Names without a leading digit (or with a prefix too large for int) get
// NoNumericPrefix so they order after numbered siblings.
func NumericPrefixOf(s string) int {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return NoNumericPrefix
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return NoNumericPrefix
	}
	return n
}

// Severity classifies a validation finding.
type Severity int

const (
	// SeverityAdvisory findings are surfaced but do not block a release.
	SeverityAdvisory Severity = iota
	// SeverityBlocking findings must be fixed before publishing.
	SeverityBlocking
)

// String returns a human-readable severity label.
func (s Severity) String() string {
	switch s {
	case SeverityAdvisory:
		return "advisory"
	case SeverityBlocking:
		return "blocking"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// Finding is a validation outcome tied to one CandidateFile. Findings never
// mutate the file they describe; they are carried as a side list keyed by
// relative path.
type Finding struct {
	// Path is the relative path of the file the finding refers to.
	Path string

	Severity Severity

	// Line is the 1-based line reference, 0 when not applicable.
	Line int

	Message string
}

// Blocking reports whether the finding must be fixed before release.
func (f Finding) Blocking() bool {
	return f.Severity == SeverityBlocking
}

// String renders the finding for reports and console output.
func (f Finding) String() string {
	if f.Line > 0 {
		return fmt.Sprintf("[%s] %s (line %d): %s", f.Severity, f.Path, f.Line, f.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", f.Severity, f.Path, f.Message)
}

// Findings is a list of findings with severity partition helpers.
type Findings []Finding

// HasBlocking reports whether any finding blocks the release.
func (fs Findings) HasBlocking() bool {
	for _, f := range fs {
		if f.Blocking() {
			return true
		}
	}
	return false
}

// Blocking returns the blocking subset, preserving order.
func (fs Findings) Blocking() Findings {
	var out Findings
	for _, f := range fs {
		if f.Blocking() {
			out = append(out, f)
		}
	}
	return out
}

// Advisory returns the non-blocking subset, preserving order.
func (fs Findings) Advisory() Findings {
	var out Findings
	for _, f := range fs {
		if !f.Blocking() {
			out = append(out, f)
		}
	}
	return out
}

// ForPath returns the findings recorded against one relative path.
func (fs Findings) ForPath(relPath string) Findings {
	var out Findings
	for _, f := range fs {
		if f.Path == relPath {
			out = append(out, f)
		}
	}
	return out
}

// CollectionResult holds the outcome of a collector run: the ordered
// candidate set plus warnings for subtrees that could not be read.
type CollectionResult struct {
	Files    []CandidateFile
	Warnings Findings
}

// branchNamePattern is the required branch format after upper-casing.
var branchNamePattern = regexp.MustCompile(`^F_[A-Z0-9_]+$`)

// ValidBranchName reports whether name is an acceptable feature branch name.
// The check is applied after trimming and upper-casing, matching how the
// branch is ultimately used.
func ValidBranchName(name string) bool {
	return branchNamePattern.MatchString(strings.ToUpper(strings.TrimSpace(name)))
}

// ReleaseConfig contains all parameters needed for a release operation.
type ReleaseConfig struct {
	// SourcePath is the archive file or already-extracted directory.
	SourcePath string

	// RepoPath is the local git repository working tree.
	RepoPath string

	// SchemaName is the target database schema (a directory name under
	// database/plsql in the repository).
	SchemaName string

	// BranchName is the feature branch to create or reuse. Stored upper-cased.
	BranchName string

	// CommitMessage is used when pushing; empty selects the default message.
	CommitMessage string

	// Push enables the add/commit/push stage after copying and manifest
	// generation.
	Push bool

	// Force bypasses interactive push approval when used with Push.
	Force bool

	// KeepWorkspace leaves the extraction workspace on disk for inspection.
	KeepWorkspace bool

	// Timeout is the global timeout for the whole release batch.
	Timeout time.Duration

	// Verbose enables detailed logging.
	Verbose bool
}

// Validate checks if the ReleaseConfig has all required fields and valid
// values. It returns a multi-error if multiple validation failures occur.
func (c *ReleaseConfig) Validate() error {
	var errs []error

	if c.SourcePath == "" {
		errs = append(errs, fmt.Errorf("SourcePath is required: %w", ErrInvalidConfig))
	}

	if c.RepoPath == "" {
		errs = append(errs, fmt.Errorf("RepoPath is required: %w", ErrInvalidConfig))
	}

	if c.SchemaName == "" {
		errs = append(errs, fmt.Errorf("SchemaName is required: %w", ErrInvalidConfig))
	}

	if c.BranchName == "" {
		errs = append(errs, fmt.Errorf("BranchName is required: %w", ErrInvalidConfig))
	} else if !ValidBranchName(c.BranchName) {
		errs = append(errs, fmt.Errorf("branch name %q must match F_[A-Z0-9_]+: %w", c.BranchName, ErrInvalidConfig))
	}

	// Force only affects the push approval prompt
	if c.Force && !c.Push {
		errs = append(errs, fmt.Errorf("force flag requires push to be enabled: %w", ErrInvalidConfig))
	}

	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout cannot be negative: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}
