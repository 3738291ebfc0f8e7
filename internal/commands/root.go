package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hrbank-dev/hrbank/internal/buildinfo"
)

// defaultBankName is used when no configuration names the bank.
const defaultBankName = "HR Banking System"

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "hrbank",
		Short:   "Flat-file console banking",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newCreateCommand())
	rootCmd.AddCommand(newLoginCommand())

	return rootCmd
}
