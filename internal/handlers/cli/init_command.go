package cli

import (
	"fmt"

	"github.com/AntonioJCosta/q/internal/ctxlog"
	"github.com/AntonioJCosta/q/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewInitCommand creates the 'init' subcommand.
func NewInitCommand(services *Services) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the default configuration file.",
		Long: `Writes a configuration file with one example alias at the configured path,
creating parent directories as needed. An existing file is left untouched.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return subcommandWithArgs(cmd, args, services)
			}
			return runInitCmd(cmd, args, services)
		},
	}
	return cmd
}

func runInitCmd(cmd *cobra.Command, _ []string, services *Services) error {
	result, err := services.Init.Init()
	if err != nil {
		return err
	}
	ctxlog.FromContext(cmd.Context()).Debug("Init finished.", "path", result.Path, "created", result.Created)

	if result.Created {
		fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessColor(fmt.Sprintf("Created %s", result.Path)))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.WarningColor(fmt.Sprintf("%s already exists, nothing to do.", result.Path)))
	return nil
}
