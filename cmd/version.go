package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const versionTemplate = `sqlward {{.Version}}

Checks performed:
  • Migration risk classification (drops, truncates, type changes, renames)
  • Runtime estimation for table, column and index operations
  • Row level security audit across a migrations directory
  • Index suggestions for common query shapes

All checks are static: sqlward never connects to a database.
`

// Version is set at build time via ldflags
var (
	Version   = "dev"
	CommitSHA = "none"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print sqlward version and supported checks",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sqlward %s (commit: %s, built: %s)\n\n", Version, CommitSHA, BuildDate)
		fmt.Println("Checks performed:")
		fmt.Println("  • Migration risk classification (drops, truncates, type changes, renames)")
		fmt.Println("  • Runtime estimation for table, column and index operations")
		fmt.Println("  • Row level security audit across a migrations directory")
		fmt.Println("  • Index suggestions for common query shapes")
		fmt.Println()
		fmt.Println("All checks are static: sqlward never connects to a database.")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	// Enable the standard --version flag, matching the `version` subcommand output.
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, CommitSHA, BuildDate)
	rootCmd.SetVersionTemplate(versionTemplate)
}
