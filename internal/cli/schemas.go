package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apolo-devops/apolo/internal/config"
	"github.com/apolo-devops/apolo/internal/gitops"
	"github.com/apolo-devops/apolo/internal/logging"
	"github.com/apolo-devops/apolo/internal/params"
	"github.com/apolo-devops/apolo/pkg/apolo"
)

var schemasCmd = &cobra.Command{
	Use:   "schemas",
	Short: "List schemas available in the target repository",
	Long: `Schemas lists the schema directories found under database/plsql in the
target repository, one per line on stdout.

Examples:
  apolo schemas --repo ~/work/db-repo`,
	Args: cobra.NoArgs,
	RunE: runSchemas,
}

var schemasRepoFlag string

func init() {
	rootCmd.AddCommand(schemasCmd)

	schemasCmd.Flags().StringVar(&schemasRepoFlag, "repo", "",
		"Path to the target git repository\n"+
			"Precedence: --repo > $APOLO_REPO_PATH > apolo.yaml repo_path")
}

func runSchemas(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLogger(verbose)

	repoPath := schemasRepoFlag
	if repoPath == "" {
		params.LoadDotEnv()
		repoPath = params.FromEnvironment().RepoPath
	}
	if repoPath == "" {
		if projectCfg, err := config.Load("."); err == nil {
			repoPath = projectCfg.RepoPath
		} else if !errors.Is(err, config.ErrConfigNotFound) {
			return fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
		}
	}
	if repoPath == "" {
		return fmt.Errorf("repository path is required (--repo, $%s or apolo.yaml): %w",
			params.EnvRepoPath, apolo.ErrInvalidConfig)
	}

	git := gitops.New(logger)
	if !git.IsRepo(repoPath) {
		return fmt.Errorf("%s: %w", repoPath, apolo.ErrNotGitRepo)
	}

	schemas, err := git.SchemaDirs(repoPath)
	if err != nil {
		return err
	}
	if len(schemas) == 0 {
		logger.Info("No schema directories found under %s", apolo.PLSQLRoot)
		return nil
	}

	for _, schema := range schemas {
		fmt.Fprintln(cmd.OutOrStdout(), schema)
	}
	return nil
}
