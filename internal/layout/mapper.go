package layout

import (
	"path"
	"strings"

	"github.com/apolo-devops/apolo/pkg/apolo"
)

// DestinationFor returns the repository-relative destination path for a
// candidate file, using POSIX separators. The second return is false for
// files with no copy target (sequences and anything outside the allow-list);
// callers surface those as advisories instead of aborting the batch.
func DestinationFor(f apolo.CandidateFile, schemaName string) (string, bool) {
	if cat, ok := apolo.CategoryOf(f); ok {
		return path.Join(apolo.PLSQLRoot, strings.ToLower(schemaName), cat.Folder(), f.Filename), true
	}

	switch f.Extension {
	case apolo.ExtForm:
		return path.Join(apolo.FormDestDir, f.Filename), true
	case apolo.ExtReport:
		return path.Join(apolo.ReportDestDir, f.Filename), true
	}

	return "", false
}
