package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"psmcp/internal/config"
	"psmcp/pkg/logging"
)

var (
	checkQuiet      bool
	checkConfigPath string
)

// checkCmd reports whether the PowerSchool configuration is complete.
// It inspects configuration only and never makes a network call.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check whether the PowerSchool configuration is complete",
	Long: `Check reports which PowerSchool settings are present and whether the
server is ready to start. No network connection is attempted.

Exit codes:
  0 - configuration complete
  2 - required settings missing`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	logging.Init(logging.LevelWarn, os.Stderr)

	cfg, err := config.Load(checkConfigPath)
	if err != nil {
		return err
	}
	status := cfg.Status()

	if !checkQuiet {
		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.AppendHeader(table.Row{"Setting", "Set", "Required"})
		t.AppendRows([]table.Row{
			{config.EnvURL, status.URLSet, true},
			{config.EnvClientID, status.ClientIDSet, true},
			{config.EnvClientSecret, status.ClientSecretSet, true},
			{config.EnvUsername, status.UsernameSet, false},
			{config.EnvPassword, status.PasswordSet, false},
		})
		t.AppendFooter(table.Row{"configured", status.Configured(), ""})
		t.Render()
	}

	// Validate names the missing variables and carries the config-error
	// exit code; it also catches a lone username or password.
	if err := cfg.Credentials().Validate(); err != nil {
		return err
	}

	if !checkQuiet {
		fmt.Fprintln(cmd.OutOrStdout(), "Configuration complete.")
	}
	return nil
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&checkQuiet, "quiet", false, "Suppress output; report via exit code only")
	checkCmd.Flags().StringVar(&checkConfigPath, "config-path", "", "Path to an optional YAML config file")
}
