package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aleskard/sqlward/internal/advisor"
	"github.com/aleskard/sqlward/internal/output"
)

var queryCmd = &cobra.Command{
	Use:   "query [SQL query]",
	Short: "Suggest indexes for a query's access patterns",
	Long: `Analyze a query for common access patterns (user lookups, date ranges,
foreign key filters, date ordering) and suggest matching indexes. Also flags
SELECT * and queries with neither WHERE nor LIMIT.

Pass --table so index suggestions name the real table; without it a
placeholder is used.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()

		queryText, err := getSQLInput(cmd, args)
		if err != nil {
			return err
		}
		table, _ := cmd.Flags().GetString("table")

		log.Debug("analyzing query", "bytes", len(queryText), "table", table)
		advice := advisor.Advise(queryText, table)

		renderer := output.NewRenderer(outputFormat(), os.Stdout)
		renderer.RenderAdvice(advice)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().String("file", "", "Read SQL from file instead of argument")
	queryCmd.Flags().StringP("table", "t", "", "Target table name for index suggestions")
}
