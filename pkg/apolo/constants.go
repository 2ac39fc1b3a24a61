package apolo

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess          = 0  // Analysis/release completed successfully
	ExitGeneralError     = 1  // Unknown or unclassified error
	ExitUsageError       = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitConfigError      = 10 // Invalid configuration or parameters
	ExitValidationFailed = 11 // Blocking findings in the analyzed scripts
	ExitApprovalDenied   = 12 // User denied push approval
	ExitGitFailed        = 13 // Git command failed
	ExitArchiveError     = 14 // Archive invalid or unreadable
)

const (
	// DefaultPushApprovalCountdown is the countdown duration before a forced
	// push approval proceeds.
	DefaultPushApprovalCountdown = 5 * time.Second

	// DefaultTimeout bounds a whole release batch. This is catastrophic
	// failure protection, not per-file timeout control: the core pipeline has
	// no mid-batch cancellation points.
	DefaultTimeout = 3 * time.Minute

	// DefaultSchemaName is preselected in the wizard when present in the
	// repository.
	DefaultSchemaName = "DBAPER"

	// ManifestFileName is the deployment manifest written per schema/branch.
	ManifestFileName = "manifest.txt"

	// RollbackDirMarker prunes directories from collection: any directory
	// whose name contains this substring (case-insensitive) is skipped
	// entirely, subdirectories included.
	RollbackDirMarker = "rollback"

	// PLSQLRoot is the repository directory holding per-schema object trees.
	PLSQLRoot = "database/plsql"

	// ManifestDataRoot is the repository directory holding per-schema,
	// per-branch manifests: database/data/<SCHEMA>/<BRANCH>/manifest.txt.
	ManifestDataRoot = "database/data"

	// FormDestDir and ReportDestDir receive the ancillary binary artifacts.
	// They are not schema-scoped and never appear in the manifest.
	FormDestDir   = "fuentes/forma"
	ReportDestDir = "fuentes/reporte"
)
