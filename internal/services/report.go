package services

import (
	"fmt"
	"strings"

	"github.com/apolo-devops/apolo/pkg/apolo"
)

// RenderReport produces the plain-text analysis report for a session: the
// identified files with their categories, followed by findings partitioned
// by severity. The output is what `apolo analyze` prints and what --report
// writes to disk.
func RenderReport(session *apolo.ReleaseSession) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Analysis report %s\n", session.ID())
	fmt.Fprintf(&b, "Source: %s\n", session.SourceRoot())
	fmt.Fprintf(&b, "Files: %d total, %d DB scripts, %d manifest entries\n",
		len(session.Files()), session.DBFileCount(), session.CategorizedCount())
	b.WriteString("\n")

	if len(session.Files()) == 0 {
		b.WriteString("No deployable files found.\n")
	} else {
		b.WriteString("Identified files:\n")
		for _, f := range session.Files() {
			fmt.Fprintf(&b, "  %-14s %s\n", fileKind(f), f.RelativePath)
		}
	}

	findings := session.Findings()
	if len(findings) == 0 {
		b.WriteString("\nNo findings. Ready for release.\n")
		return b.String()
	}

	if blocking := findings.Blocking(); len(blocking) > 0 {
		fmt.Fprintf(&b, "\nBlocking findings (%d):\n", len(blocking))
		for _, f := range blocking {
			fmt.Fprintf(&b, "  %s\n", f)
		}
	}
	if advisory := findings.Advisory(); len(advisory) > 0 {
		fmt.Fprintf(&b, "\nAdvisory findings (%d):\n", len(advisory))
		for _, f := range advisory {
			fmt.Fprintf(&b, "  %s\n", f)
		}
	}

	return b.String()
}

// fileKind labels a file for the report: its category folder, or the
// ancillary kind for files outside the manifest.
func fileKind(f apolo.CandidateFile) string {
	if cat, ok := apolo.CategoryOf(f); ok {
		return cat.Folder()
	}
	switch f.Extension {
	case apolo.ExtSequence:
		return "sequence"
	case apolo.ExtForm:
		return "form"
	case apolo.ExtReport:
		return "report"
	default:
		return "unclassified"
	}
}
