package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aleskard/sqlward/internal/audit"
	"github.com/aleskard/sqlward/internal/output"
)

// defaultMigrationsDir is where Supabase projects keep their migrations.
const defaultMigrationsDir = "supabase/migrations"

var auditCmd = &cobra.Command{
	Use:   "audit [migrations-dir]",
	Short: "Audit row level security coverage across migration files",
	Long: `Scan every *.sql file in a migrations directory and reconcile the tables
created against the tables that enable row level security. Tables on the
required list that were created but never secured are reported as missing.

The directory defaults to ` + defaultMigrationsDir + `. An unreadable
directory is an error; an empty one is a compliant (empty) report.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()

		dir := defaultMigrationsDir
		if configured := viper.GetString("defaults.migrations_dir"); configured != "" {
			dir = configured
		}
		if len(args) > 0 {
			dir = args[0]
		}

		pol, err := loadPolicy()
		if err != nil {
			return err
		}

		log.Debug("auditing migrations", "dir", dir, "required_tables", len(pol.Required))
		report, err := audit.AuditDir(dir, pol)
		if err != nil {
			return err
		}
		log.Debug("audit complete",
			"files", report.FilesScanned,
			"created", len(report.TablesCreated),
			"secured", len(report.TablesSecured))

		renderer := output.NewRenderer(outputFormat(), os.Stdout)
		renderer.RenderAudit(report)

		if !report.Compliant() {
			return errors.Errorf("%d required table(s) missing row level security", len(report.MissingRLS))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(auditCmd)
}
