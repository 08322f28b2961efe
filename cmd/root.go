package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"psmcp/internal/powerschool"
)

// Exit codes for CLI commands. These follow common conventions so scripts
// can distinguish configuration problems from runtime failures.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
	// ExitCodeConfigError indicates required PowerSchool settings are missing.
	ExitCodeConfigError = 2
)

// rootCmd represents the base command for the psmcp application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "psmcp",
	Short: "Expose PowerSchool student data as MCP tools",
	Long: `psmcp is an MCP server that exposes read-only PowerSchool student data
(grades, assignments, attendance, courses) as callable tools for AI
assistants, authenticating against PowerSchool via OAuth2.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors
	// that are handled by the application.
	SilenceUsage: true,
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the
// application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "psmcp version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error type.
func getExitCode(err error) int {
	var cfgErr *powerschool.ConfigError
	if errors.As(err, &cfgErr) {
		return ExitCodeConfigError
	}
	return ExitCodeError
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
}
