package cli

import (
	"fmt"

	"github.com/AntonioJCosta/q/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

const absentField = "-"

// NewListCommand creates the 'list' subcommand.
func NewListCommand(services *Services) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List aliases with their commands.",
		Long:  `Displays every alias of the configuration file in file order, with its command and help text.`,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return subcommandWithArgs(cmd, args, services)
			}
			return runListCmd(cmd, args, services)
		},
	}
	return cmd
}

// runListCmd contains the core logic for the 'list' command.
func runListCmd(cmd *cobra.Command, _ []string, services *Services) error {
	aliases, err := services.Help.ListAliases()
	if err != nil {
		return fmt.Errorf("could not list aliases: %w", err)
	}

	if len(aliases) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), ui.InfoColor("No aliases defined."))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.HeaderColor("Aliases:"))

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Alias Name", "Command", "Help"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, a := range aliases {
		table.Append([]string{a.Name, orAbsent(a.Command), orAbsent(a.Help)})
	}
	table.Render()
	return nil
}

func orAbsent(field *string) string {
	if field == nil {
		return absentField
	}
	return *field
}
