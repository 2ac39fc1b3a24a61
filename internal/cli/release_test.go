package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/apolo-devops/apolo/internal/params"
	"github.com/apolo-devops/apolo/pkg/apolo"
)

func resetReleaseFlags() {
	releaseFlags = releaseFlagValues{timeout: apolo.DefaultTimeout}
}

func clearReleaseEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		params.EnvRepoPath,
		params.EnvSchema,
		params.EnvCommitMessage,
		params.EnvTimeout,
		params.EnvKeepWorkspace,
		params.EnvNonInteractive,
	} {
		t.Setenv(name, "")
	}
}

func TestBuildReleaseConfig_Defaults(t *testing.T) {
	resetReleaseFlags()
	clearReleaseEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := buildReleaseConfig(releaseCmd, "drop.zip", false)
	if err != nil {
		t.Fatalf("buildReleaseConfig failed: %v", err)
	}

	if cfg.SourcePath != "drop.zip" {
		t.Errorf("SourcePath = %q", cfg.SourcePath)
	}
	if cfg.SchemaName != apolo.DefaultSchemaName {
		t.Errorf("SchemaName = %q, want default %q", cfg.SchemaName, apolo.DefaultSchemaName)
	}
	if cfg.Timeout != apolo.DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, apolo.DefaultTimeout)
	}
	if cfg.RepoPath != "" {
		t.Errorf("RepoPath = %q, want empty", cfg.RepoPath)
	}
}

func TestBuildReleaseConfig_Environment(t *testing.T) {
	resetReleaseFlags()
	clearReleaseEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv(params.EnvRepoPath, "/srv/db-repo")
	t.Setenv(params.EnvSchema, "hr")
	t.Setenv(params.EnvTimeout, "90s")
	t.Setenv(params.EnvKeepWorkspace, "true")

	cfg, err := buildReleaseConfig(releaseCmd, "drop.zip", false)
	if err != nil {
		t.Fatalf("buildReleaseConfig failed: %v", err)
	}

	if cfg.RepoPath != "/srv/db-repo" {
		t.Errorf("RepoPath = %q", cfg.RepoPath)
	}
	if cfg.SchemaName != "hr" {
		t.Errorf("SchemaName = %q", cfg.SchemaName)
	}
	if cfg.Timeout != 90*time.Second {
		t.Errorf("Timeout = %v, want 90s", cfg.Timeout)
	}
	if !cfg.KeepWorkspace {
		t.Error("KeepWorkspace not taken from environment")
	}
}

func TestBuildReleaseConfig_FlagsBeatEnvironment(t *testing.T) {
	resetReleaseFlags()
	clearReleaseEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv(params.EnvRepoPath, "/srv/env-repo")
	t.Setenv(params.EnvSchema, "hr")

	releaseFlags.repo = "/srv/flag-repo"
	releaseFlags.schema = "fin"
	releaseFlags.branch = "f_core_101"
	releaseFlags.push = true
	releaseFlags.yes = true

	cfg, err := buildReleaseConfig(releaseCmd, "drop.zip", true)
	if err != nil {
		t.Fatalf("buildReleaseConfig failed: %v", err)
	}

	if cfg.RepoPath != "/srv/flag-repo" {
		t.Errorf("RepoPath = %q, flag must win", cfg.RepoPath)
	}
	if cfg.SchemaName != "fin" {
		t.Errorf("SchemaName = %q, flag must win", cfg.SchemaName)
	}
	if cfg.BranchName != "f_core_101" {
		t.Errorf("BranchName = %q", cfg.BranchName)
	}
	if !cfg.Push || !cfg.Force || !cfg.Verbose {
		t.Errorf("Push/Force/Verbose = %v/%v/%v, want all true", cfg.Push, cfg.Force, cfg.Verbose)
	}
}

func TestBuildReleaseConfig_ProjectFile(t *testing.T) {
	resetReleaseFlags()
	clearReleaseEnv(t)

	dir := t.TempDir()
	yaml := "repo_path: /srv/yaml-repo\nschema: scott\ntimeout: 45s\n"
	if err := os.WriteFile(filepath.Join(dir, "apolo.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	cfg, err := buildReleaseConfig(releaseCmd, "drop.zip", false)
	if err != nil {
		t.Fatalf("buildReleaseConfig failed: %v", err)
	}

	if cfg.RepoPath != "/srv/yaml-repo" {
		t.Errorf("RepoPath = %q", cfg.RepoPath)
	}
	if cfg.SchemaName != "scott" {
		t.Errorf("SchemaName = %q", cfg.SchemaName)
	}
	if cfg.Timeout != 45*time.Second {
		t.Errorf("Timeout = %v, want 45s", cfg.Timeout)
	}
}

func TestBuildReleaseConfig_EnvironmentBeatsProjectFile(t *testing.T) {
	resetReleaseFlags()
	clearReleaseEnv(t)

	dir := t.TempDir()
	yaml := "repo_path: /srv/yaml-repo\nschema: scott\n"
	if err := os.WriteFile(filepath.Join(dir, "apolo.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
	t.Setenv(params.EnvSchema, "hr")

	cfg, err := buildReleaseConfig(releaseCmd, "drop.zip", false)
	if err != nil {
		t.Fatalf("buildReleaseConfig failed: %v", err)
	}

	if cfg.SchemaName != "hr" {
		t.Errorf("SchemaName = %q, environment must win over apolo.yaml", cfg.SchemaName)
	}
	if cfg.RepoPath != "/srv/yaml-repo" {
		t.Errorf("RepoPath = %q, unset layers must still fall through", cfg.RepoPath)
	}
}

func TestBuildReleaseConfig_InvalidProjectTimeout(t *testing.T) {
	resetReleaseFlags()
	clearReleaseEnv(t)

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "apolo.yaml"), []byte("timeout: soon\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	_, err := buildReleaseConfig(releaseCmd, "drop.zip", false)
	if !errors.Is(err, apolo.ErrInvalidConfig) {
		t.Errorf("error = %v, want ErrInvalidConfig", err)
	}
}

func TestRunRelease_MissingRepo(t *testing.T) {
	resetReleaseFlags()
	clearReleaseEnv(t)
	t.Chdir(t.TempDir())

	err := runRelease(releaseCmd, []string{"drop.zip"})
	if !errors.Is(err, apolo.ErrInvalidConfig) {
		t.Errorf("error = %v, want ErrInvalidConfig for missing repo path", err)
	}
}

func TestRunRelease_NonInteractiveRequiresBranch(t *testing.T) {
	resetReleaseFlags()
	clearReleaseEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv(params.EnvNonInteractive, "1")

	src := t.TempDir()
	releaseFlags.repo = t.TempDir()

	err := runRelease(releaseCmd, []string{src})
	if !errors.Is(err, apolo.ErrInvalidConfig) {
		t.Errorf("error = %v, want ErrInvalidConfig when --branch is missing", err)
	}
}
