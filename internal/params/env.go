package params

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names recognized by apolo.
const (
	EnvRepoPath       = "APOLO_REPO_PATH"
	EnvSchema         = "APOLO_SCHEMA"
	EnvCommitMessage  = "APOLO_COMMIT_MESSAGE"
	EnvTimeout        = "APOLO_TIMEOUT"
	EnvKeepWorkspace  = "APOLO_KEEP_WORKSPACE"
	EnvNonInteractive = "APOLO_NON_INTERACTIVE"
)

// EnvDefaults holds values resolved from the environment. Zero values mean
// "not set"; callers fall back to config-file or built-in defaults.
type EnvDefaults struct {
	RepoPath       string
	Schema         string
	CommitMessage  string
	Timeout        time.Duration
	KeepWorkspace  bool
	NonInteractive bool
}

// LoadDotEnv loads .env from the working directory into the process
// environment. A missing file is not an error; existing variables are never
// overwritten.
func LoadDotEnv() {
	_ = godotenv.Load()
}

// FromEnvironment resolves defaults from the current process environment.
// Malformed duration or boolean values are ignored rather than fatal.
func FromEnvironment() EnvDefaults {
	d := EnvDefaults{
		RepoPath:      os.Getenv(EnvRepoPath),
		Schema:        os.Getenv(EnvSchema),
		CommitMessage: os.Getenv(EnvCommitMessage),
	}

	if raw := os.Getenv(EnvTimeout); raw != "" {
		if timeout, err := time.ParseDuration(raw); err == nil && timeout > 0 {
			d.Timeout = timeout
		}
	}
	d.KeepWorkspace = envBool(EnvKeepWorkspace)
	d.NonInteractive = envBool(EnvNonInteractive)

	return d
}

func envBool(name string) bool {
	raw := os.Getenv(name)
	if raw == "" {
		return false
	}
	v, err := strconv.ParseBool(raw)
	return err == nil && v
}
