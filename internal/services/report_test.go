package services

import (
	"strings"
	"testing"

	"github.com/apolo-devops/apolo/pkg/apolo"
)

func TestRenderReportClean(t *testing.T) {
	files := []apolo.CandidateFile{
		apolo.NewCandidateFile("/src/A/01.sql", "A/01.sql"),
		apolo.NewCandidateFile("/src/A/emp.pks", "A/emp.pks"),
		apolo.NewCandidateFile("/src/forms/Main.fmb", "forms/Main.fmb"),
	}
	session := apolo.NewReleaseSession("/src", files, nil)

	report := RenderReport(session)

	for _, want := range []string{
		"Files: 3 total, 2 DB scripts, 2 manifest entries",
		"scripts",
		"packages",
		"form",
		"A/01.sql",
		"No findings. Ready for release.",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestRenderReportWithFindings(t *testing.T) {
	files := []apolo.CandidateFile{
		apolo.NewCandidateFile("/src/A/bad.prc", "A/bad.prc"),
	}
	findings := apolo.Findings{
		{Path: "A/bad.prc", Severity: apolo.SeverityBlocking, Line: 4, Message: "missing terminating '/'"},
		{Path: "A/bad.prc", Severity: apolo.SeverityAdvisory, Message: "filename contains special characters"},
	}
	session := apolo.NewReleaseSession("/src", files, findings)

	report := RenderReport(session)

	if !strings.Contains(report, "Blocking findings (1):") {
		t.Errorf("report missing blocking section:\n%s", report)
	}
	if !strings.Contains(report, "Advisory findings (1):") {
		t.Errorf("report missing advisory section:\n%s", report)
	}
	if strings.Contains(report, "Ready for release") {
		t.Errorf("report must not claim readiness with findings:\n%s", report)
	}
}

func TestRenderReportEmpty(t *testing.T) {
	session := apolo.NewReleaseSession("/src", nil, nil)

	report := RenderReport(session)
	if !strings.Contains(report, "No deployable files found.") {
		t.Errorf("report missing empty notice:\n%s", report)
	}
}
