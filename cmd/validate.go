package cmd

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/aleskard/sqlward/internal/analyzer"
	"github.com/aleskard/sqlward/internal/output"
)

var validateCmd = &cobra.Command{
	Use:   "validate [SQL statement]",
	Short: "Classify a migration's risk before execution",
	Long: `Validate a schema migration and report:
  - Blocking issues (drops, truncates, type changes, renames)
  - Warnings (non-concurrent index builds, missing RLS, no rollback plan)
  - Whether the migration is additive
  - A coarse runtime estimate

Exits non-zero when blocking issues are found, so it can gate CI pipelines.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()

		sqlText, err := getSQLInput(cmd, args)
		if err != nil {
			return err
		}

		rows, _ := cmd.Flags().GetInt64("rows")
		if rows < 0 {
			return errors.Errorf("--rows must be non-negative, got %d", rows)
		}

		log.Debug("classifying migration", "bytes", len(sqlText), "estimated_rows", rows)
		verdict := analyzer.Classify(analyzer.Input{SQL: sqlText, EstimatedRows: rows})

		renderer := output.NewRenderer(outputFormat(), os.Stdout)
		renderer.RenderVerdict(verdict)

		if !verdict.Additive {
			return errors.Errorf("migration blocked: %d blocking issue(s) found", len(verdict.BlockingIssues))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().String("file", "", "Read SQL from file instead of argument")
	validateCmd.Flags().Int64("rows", 0, "Estimated row count of the largest affected table")
}

func getSQLInput(cmd *cobra.Command, args []string) (string, error) {
	filePath, _ := cmd.Flags().GetString("file")

	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", errors.Wrapf(err, "could not read file %s", filePath)
		}
		return strings.TrimSpace(string(data)), nil
	}

	if len(args) > 0 {
		return strings.TrimSpace(args[0]), nil
	}

	return "", errors.New("provide a SQL statement as argument or use --file flag")
}
