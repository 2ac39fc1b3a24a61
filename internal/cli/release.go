package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/apolo-devops/apolo/internal/config"
	"github.com/apolo-devops/apolo/internal/files/collector"
	"github.com/apolo-devops/apolo/internal/gitops"
	"github.com/apolo-devops/apolo/internal/layout"
	"github.com/apolo-devops/apolo/internal/logging"
	"github.com/apolo-devops/apolo/internal/params"
	"github.com/apolo-devops/apolo/internal/services"
	"github.com/apolo-devops/apolo/internal/tui"
	"github.com/apolo-devops/apolo/internal/tui/wizards"
	"github.com/apolo-devops/apolo/internal/ui"
	"github.com/apolo-devops/apolo/internal/validate"
	"github.com/apolo-devops/apolo/pkg/apolo"
)

var releaseCmd = &cobra.Command{
	Use:   "release <archive|directory>",
	Short: "Stage a validated release onto a feature branch",
	Long: `Release runs the full pipeline against a target git repository:

1. Extracts the archive (or reads a directory) and collects DB scripts
2. Validates naming and statement-terminator conventions
3. Prepares the feature branch (checkout main, pull, clean, branch)
4. Copies scripts into database/plsql/<schema>/... and ancillary sources
   into fuentes/forma and fuentes/reporte
5. Writes database/data/<SCHEMA>/<BRANCH>/manifest.txt
6. With --push, commits and pushes after approval

Without --branch, an interactive wizard collects the schema, branch name
and commit message. In pipelines (no terminal, CI=1), --branch is required.

Branch names must match F_[A-Z0-9_]+ and are upper-cased automatically.

Configuration precedence: flags > environment > apolo.yaml > defaults.
Environment variables: APOLO_REPO_PATH, APOLO_SCHEMA, APOLO_COMMIT_MESSAGE,
APOLO_TIMEOUT, APOLO_KEEP_WORKSPACE, APOLO_NON_INTERACTIVE.

Examples:
  # Interactive release
  apolo release release_2024_10.zip --repo ~/work/db-repo

  # Pipeline release with push, no prompts
  apolo release release_2024_10.zip \
    --repo /srv/db-repo --schema dbaper --branch F_CORE_101 \
    --push --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runRelease,
}

type releaseFlagValues struct {
	repo          string
	schema        string
	branch        string
	message       string
	push          bool
	yes           bool
	report        string
	keepWorkspace bool
	timeout       time.Duration
}

var releaseFlags releaseFlagValues

func init() {
	rootCmd.AddCommand(releaseCmd)

	releaseCmd.Flags().StringVar(&releaseFlags.repo, "repo", "",
		"Path to the target git repository\n"+
			"Precedence: --repo > $APOLO_REPO_PATH > apolo.yaml repo_path")
	releaseCmd.Flags().StringVar(&releaseFlags.schema, "schema", "",
		"Target schema (directory under database/plsql)\n"+
			"Precedence: --schema > $APOLO_SCHEMA > apolo.yaml schema > "+apolo.DefaultSchemaName)
	releaseCmd.Flags().StringVar(&releaseFlags.branch, "branch", "",
		"Feature branch name, must match F_[A-Z0-9_]+ after upper-casing\n"+
			"Omit to configure interactively")
	releaseCmd.Flags().StringVar(&releaseFlags.message, "message", "",
		"Commit message used with --push (default: generated from branch name)")
	releaseCmd.Flags().BoolVar(&releaseFlags.push, "push", false,
		"Commit and push the branch after staging")
	releaseCmd.Flags().BoolVar(&releaseFlags.yes, "yes", false,
		"Skip the interactive push approval prompt\n"+
			"A short countdown runs instead, use with --push in CI/CD")
	releaseCmd.Flags().StringVar(&releaseFlags.report, "report", "",
		"Write the analysis report to this file in addition to stdout")
	releaseCmd.Flags().BoolVar(&releaseFlags.keepWorkspace, "keep-workspace", false,
		"Keep the archive extraction directory for inspection")

	// Catastrophic failure protection, not per-command timeout control
	releaseCmd.Flags().DurationVar(&releaseFlags.timeout, "timeout", apolo.DefaultTimeout,
		"Overall timeout for the release pipeline (default 3m)\n"+
			"Examples: 30s, 5m, 1h30m")
}

// buildReleaseConfig layers flags over environment over apolo.yaml over
// built-in defaults. Extracted for testability.
func buildReleaseConfig(cmd *cobra.Command, sourcePath string, verbose bool) (apolo.ReleaseConfig, error) {
	params.LoadDotEnv()
	env := params.FromEnvironment()

	projectCfg, err := config.Load(".")
	if err != nil {
		if !errors.Is(err, config.ErrConfigNotFound) {
			return apolo.ReleaseConfig{}, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
		}
		projectCfg = nil
	}

	cfg := apolo.ReleaseConfig{
		SourcePath:    sourcePath,
		RepoPath:      releaseFlags.repo,
		SchemaName:    releaseFlags.schema,
		BranchName:    releaseFlags.branch,
		CommitMessage: releaseFlags.message,
		Push:          releaseFlags.push,
		Force:         releaseFlags.yes,
		KeepWorkspace: releaseFlags.keepWorkspace,
		Timeout:       releaseFlags.timeout,
		Verbose:       verbose,
	}

	if cfg.RepoPath == "" {
		cfg.RepoPath = env.RepoPath
	}
	if cfg.SchemaName == "" {
		cfg.SchemaName = env.Schema
	}
	if cfg.CommitMessage == "" {
		cfg.CommitMessage = env.CommitMessage
	}
	cfg.KeepWorkspace = cfg.KeepWorkspace || env.KeepWorkspace

	if !cmd.Flags().Changed("timeout") && env.Timeout > 0 {
		cfg.Timeout = env.Timeout
	}

	if projectCfg != nil {
		if cfg.RepoPath == "" {
			cfg.RepoPath = projectCfg.RepoPath
		}
		if cfg.SchemaName == "" {
			cfg.SchemaName = projectCfg.Schema
		}
		if cfg.CommitMessage == "" {
			cfg.CommitMessage = projectCfg.CommitMessage
		}
		cfg.KeepWorkspace = cfg.KeepWorkspace || projectCfg.KeepWorkspace

		if !cmd.Flags().Changed("timeout") && env.Timeout == 0 && projectCfg.Timeout != "" {
			parsed, parseErr := time.ParseDuration(projectCfg.Timeout)
			if parseErr != nil {
				return apolo.ReleaseConfig{}, fmt.Errorf("invalid timeout in %s: %w", config.ConfigFileName, apolo.ErrInvalidConfig)
			}
			cfg.Timeout = parsed
		}
	}

	if cfg.SchemaName == "" {
		cfg.SchemaName = apolo.DefaultSchemaName
	}

	return cfg, nil
}

func runRelease(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLogger(verbose)

	cfg, err := buildReleaseConfig(cmd, args[0], verbose)
	if err != nil {
		return err
	}
	if cfg.RepoPath == "" {
		return fmt.Errorf("repository path is required (--repo, $%s or apolo.yaml): %w",
			params.EnvRepoPath, apolo.ErrInvalidConfig)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	root, cleanup, err := resolveSource(cfg.SourcePath, cfg.KeepWorkspace, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	builder := services.NewSessionBuilder(collector.New(logger), validate.New(logger), logger)
	session, err := builder.Build(root)
	if err != nil {
		return err
	}

	report := services.RenderReport(session)
	fmt.Fprint(cmd.OutOrStdout(), report)

	if releaseFlags.report != "" {
		if err := os.WriteFile(releaseFlags.report, []byte(report), 0o644); err != nil {
			return fmt.Errorf("failed to write report to %s: %w", releaseFlags.report, err)
		}
	}

	git := gitops.New(logger)

	interactive := cfg.BranchName == "" && tui.IsInteractive()
	if interactive {
		result, err := runReleaseWizard(session, git, cfg.RepoPath)
		if err != nil {
			return err
		}
		if result.Cancelled {
			logger.Info("Release cancelled")
			if session.HasBlocking() {
				return fmt.Errorf("%w: %d blocking finding(s)",
					apolo.ErrBlockingFindings, len(session.Findings().Blocking()))
			}
			return nil
		}
		cfg.SchemaName = result.SchemaName
		cfg.BranchName = result.BranchName
		cfg.CommitMessage = result.CommitMessage
		cfg.Push = result.Push
	} else if cfg.BranchName == "" {
		return fmt.Errorf("--branch is required in non-interactive mode: %w", apolo.ErrInvalidConfig)
	}

	// The wizard surfaces advisory findings itself; the flag-driven path asks
	// before mutating the repository.
	if !interactive {
		if advisory := session.Findings().Advisory(); len(advisory) > 0 {
			prompt := fmt.Sprintf("%d advisory finding(s) present, continue with the release?", len(advisory))
			if !tui.NewPrompter().Continue(prompt) {
				logger.Info("Release cancelled")
				return nil
			}
		}
	}

	var approver apolo.Approver
	if cfg.Force {
		approver = ui.NewForcedApprover()
	} else {
		approver = ui.NewInteractiveApprover()
	}

	publisher := services.NewPublisher(
		git,
		layout.NewCopier(logger),
		layout.NewManifestWriter(logger),
		approver,
		logger,
	)

	progress := tui.NewProgressDisplay()
	progress.Start(fmt.Sprintf("Staging release on branch %s", cfg.BranchName))
	if err := publisher.Publish(ctx, session, cfg); err != nil {
		progress.Error("Release failed")
		return err
	}

	if cfg.Push {
		progress.Success(fmt.Sprintf("Release staged and pushed on branch %s", cfg.BranchName))
	} else {
		progress.Success(fmt.Sprintf("Release staged on branch %s (not pushed)", cfg.BranchName))
	}
	return nil
}

// runReleaseWizard collects schema, branch and push settings interactively.
func runReleaseWizard(session *apolo.ReleaseSession, git *gitops.Git, repoPath string) (wizards.ReleaseResult, error) {
	schemas, err := git.SchemaDirs(repoPath)
	if err != nil {
		return wizards.ReleaseResult{}, err
	}

	program := tea.NewProgram(wizards.NewReleaseWizard(session, schemas))
	model, err := program.Run()
	if err != nil {
		return wizards.ReleaseResult{}, fmt.Errorf("wizard failed: %w", err)
	}

	wizard, ok := model.(wizards.ReleaseWizard)
	if !ok {
		return wizards.ReleaseResult{}, fmt.Errorf("wizard returned unexpected model %T", model)
	}
	return wizard.Result(), nil
}
