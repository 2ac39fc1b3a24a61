package cli

import (
	"fmt"
	"os"

	"github.com/apolo-devops/apolo/internal/files/collector"
	"github.com/apolo-devops/apolo/internal/logging"
	"github.com/apolo-devops/apolo/internal/services"
	"github.com/apolo-devops/apolo/internal/validate"
	"github.com/apolo-devops/apolo/pkg/apolo"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <archive|directory>",
	Short: "Validate release scripts without touching a repository",
	Long: `Analyze collects and validates the database scripts in a zip archive
or an already-extracted directory. Nothing is copied and no git repository
is required.

The analysis report lists every candidate file with its classification,
followed by blocking and advisory findings. Blocking findings (wrong
extension casing, missing statement terminators) exit with code 11 so
pipelines can gate on them.

Examples:
  # Analyze an uploaded archive
  apolo analyze release_2024_10.zip

  # Analyze an extracted directory and keep a report file
  apolo analyze ./extracted --report analysis.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

type analyzeFlagValues struct {
	report        string
	keepWorkspace bool
}

var analyzeFlags analyzeFlagValues

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeFlags.report, "report", "",
		"Write the analysis report to this file in addition to stdout")
	analyzeCmd.Flags().BoolVar(&analyzeFlags.keepWorkspace, "keep-workspace", false,
		"Keep the archive extraction directory for inspection")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLogger(verbose)

	root, cleanup, err := resolveSource(args[0], analyzeFlags.keepWorkspace, logger)
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

	if analyzeFlags.report != "" {
		if err := os.WriteFile(analyzeFlags.report, []byte(report), 0o644); err != nil {
			return fmt.Errorf("failed to write report to %s: %w", analyzeFlags.report, err)
		}
		logger.Verbose("Report written to %s", analyzeFlags.report)
	}

	if session.HasBlocking() {
		return fmt.Errorf("%w: %d blocking finding(s)", apolo.ErrBlockingFindings, len(session.Findings().Blocking()))
	}
	return nil
}
