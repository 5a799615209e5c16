package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aleskard/sqlward/internal/policy"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage sqlward configuration",
}

var configInitCmd = &cobra.Command{
	Use:          "init",
	Short:        "Create config and policy files interactively",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		configDir := filepath.Join(home, ".sqlward")
		configPath := filepath.Join(configDir, "config.yaml")
		policyPath := filepath.Join(configDir, "policy.yaml")

		// Check if config already exists
		if _, err := os.Stat(configPath); err == nil {
			fmt.Printf("Config file already exists at %s\n", configPath)
			fmt.Print("Overwrite? [y/N]: ")
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.TrimSpace(strings.ToLower(answer)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := os.MkdirAll(configDir, 0700); err != nil {
			return errors.Wrap(err, "creating config directory")
		}

		reader := bufio.NewReader(os.Stdin)

		fmt.Println("sqlward configuration setup")
		fmt.Println("───────────────────────────")
		fmt.Println()

		fmt.Print("Default output format [text]: ")
		format, _ := reader.ReadString('\n')
		format = strings.TrimSpace(format)
		if format == "" {
			format = "text"
		}

		fmt.Printf("Migrations directory [%s]: ", defaultMigrationsDir)
		migrationsDir, _ := reader.ReadString('\n')
		migrationsDir = strings.TrimSpace(migrationsDir)
		if migrationsDir == "" {
			migrationsDir = defaultMigrationsDir
		}

		// Write the starter policy with the built-in table lists so teams
		// have something concrete to edit.
		policyData, err := yaml.Marshal(policy.Default())
		if err != nil {
			return errors.Wrap(err, "marshaling default policy")
		}
		if err := os.WriteFile(policyPath, policyData, 0600); err != nil {
			return errors.Wrap(err, "writing policy")
		}

		var config strings.Builder
		config.WriteString("# sqlward configuration\n\n")
		config.WriteString("defaults:\n")
		config.WriteString(fmt.Sprintf("  format: %s\n", format))
		config.WriteString(fmt.Sprintf("  migrations_dir: %s\n", migrationsDir))
		config.WriteString(fmt.Sprintf("  policy: %s\n", policyPath))

		if err := os.WriteFile(configPath, []byte(config.String()), 0600); err != nil {
			return errors.Wrap(err, "writing config")
		}

		fmt.Printf("\n✅ Config written to %s\n", configPath)
		fmt.Printf("✅ Policy written to %s\n", policyPath)
		fmt.Println("\nEdit the policy file to match your schema: tables under")
		fmt.Println("'required' must enable row level security in some migration;")
		fmt.Println("tables under 'exempt' are global lookup tables without RLS.")

		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		configFile := viper.ConfigFileUsed()
		if configFile == "" {
			fmt.Println("No config file found.")
			fmt.Println("Run 'sqlward config init' to create one.")
			return nil
		}

		fmt.Printf("Config file: %s\n\n", configFile)

		data, err := os.ReadFile(configFile)
		if err != nil {
			return errors.Wrap(err, "reading config")
		}

		fmt.Println(string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
