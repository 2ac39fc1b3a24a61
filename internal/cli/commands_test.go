package cli

import (
	"testing"

	"github.com/apolo-devops/apolo/pkg/apolo"
)

func TestRootCmd_SubcommandsRegistered(t *testing.T) {
	want := map[string]bool{
		"analyze": false,
		"release": false,
		"schemas": false,
		"version": false,
	}

	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}

	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRootCmd_VerboseFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	if flag == nil {
		t.Fatal("persistent --verbose flag not registered")
	}
	if flag.Shorthand != "v" {
		t.Errorf("verbose shorthand = %q, want v", flag.Shorthand)
	}
}

func TestAnalyzeCmd_ArgsValidation(t *testing.T) {
	err := analyzeCmd.Args(analyzeCmd, []string{})
	if err == nil {
		t.Fatal("Expected error for missing args")
	}
}

func TestReleaseCmd_ArgsValidation(t *testing.T) {
	err := releaseCmd.Args(releaseCmd, []string{})
	if err == nil {
		t.Fatal("Expected error for missing args")
	}
	if err := releaseCmd.Args(releaseCmd, []string{"a.zip", "b.zip"}); err == nil {
		t.Fatal("Expected error for too many args")
	}
}

func TestSchemasCmd_RejectsArgs(t *testing.T) {
	if err := schemasCmd.Args(schemasCmd, []string{"extra"}); err == nil {
		t.Fatal("Expected error for unexpected args")
	}
}

func TestAnalyzeCmd_NonexistentSource(t *testing.T) {
	resetAnalyzeFlags()

	err := runAnalyze(analyzeCmd, []string{"/nonexistent/path/abc123"})
	if err == nil {
		t.Fatal("Expected error for nonexistent source")
	}
	if got := apolo.ExitCodeForError(err); got != apolo.ExitArchiveError {
		t.Errorf("Expected exit code %d (archive), got %d for: %v", apolo.ExitArchiveError, got, err)
	}
}

func resetAnalyzeFlags() {
	analyzeFlags = analyzeFlagValues{}
}
