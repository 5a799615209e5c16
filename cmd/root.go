package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aleskard/sqlward/internal/logger"
	"github.com/aleskard/sqlward/internal/output"
	"github.com/aleskard/sqlward/internal/policy"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "sqlward",
	Short: "Pre-execution risk and compliance analysis for PostgreSQL migrations",
	Long: `sqlward analyzes schema migrations and queries before they reach production.

It flags destructive operations (drops, truncates, type changes), estimates
migration runtime, audits row level security coverage across a migrations
directory, and suggests indexes for common query shapes.

Everything is static analysis over the SQL text: sqlward never connects to a
database and never executes anything.`,
}

// Execute is called by main.main(). It adds all child commands to the root
// command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.sqlward/config.yaml)")
	rootCmd.PersistentFlags().StringP("format", "f", "", "Output format: text, plain, json, markdown (default: text on terminals, plain when piped)")
	rootCmd.PersistentFlags().String("policy", "", "Path to a yaml policy file with required/exempt RLS tables")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show additional debug info")

	// Bind flags to viper
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("policy", rootCmd.PersistentFlags().Lookup("policy"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return
		}
		viper.AddConfigPath(home + "/.sqlward")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("SQLWARD")
	viper.AutomaticEnv()

	// Silently ignore missing config file, it's optional
	if err := viper.ReadInConfig(); err == nil {
		// Map nested config structure to flat keys that flags expect.
		// Only set these if the flags haven't been explicitly set by the user.
		if !rootCmd.PersistentFlags().Changed("format") && viper.IsSet("defaults.format") {
			viper.Set("format", viper.GetString("defaults.format"))
		}
		if !rootCmd.PersistentFlags().Changed("policy") && viper.IsSet("defaults.policy") {
			viper.Set("policy", viper.GetString("defaults.policy"))
		}
	}
}

// outputFormat resolves the effective output format.
func outputFormat() string {
	if f := viper.GetString("format"); f != "" {
		return f
	}
	return output.DefaultFormat()
}

// newLogger builds the command logger honoring --verbose.
func newLogger() *slog.Logger {
	return logger.New(viper.GetBool("verbose"))
}

// loadPolicy returns the policy from --policy / config, or the built-in
// defaults when no file is configured.
func loadPolicy() (policy.Policy, error) {
	path := viper.GetString("policy")
	if path == "" {
		return policy.Default(), nil
	}
	pol, err := policy.Load(path)
	if err != nil {
		return policy.Policy{}, errors.Wrap(err, "loading policy")
	}
	return pol, nil
}
