package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/AntonioJCosta/q/internal/core/ports"
	"github.com/AntonioJCosta/q/internal/ctxlog"
	"github.com/AntonioJCosta/q/internal/handlers/ui"
	"github.com/AntonioJCosta/q/internal/logging"
	"github.com/spf13/cobra"
)

// Options holds the values of the root command's persistent flags.
type Options struct {
	ConfigPath string
	Shell      string
}

// Services bundles what the commands need. It is built once flags are parsed,
// since the config path is only known then.
type Services struct {
	Dispatch ports.AliasDispatchService
	Help     ports.AliasHelpService
	Init     ports.ConfigInitService
}

// ServiceBuilder creates the services for the parsed options.
type ServiceBuilder func(opts Options, logger *slog.Logger) (*Services, error)

func NewRootCommand(version string, defaults Options, build ServiceBuilder) *cobra.Command {
	opts := defaults
	services := &Services{}
	var logLevel, logFormat string

	rootCmd := &cobra.Command{
		Use:   "q [alias...]",
		Short: "q runs shell commands by their short aliases.",
		Long: `q reads aliases from a configuration file and runs the shell command
of the alias whose name matches the given words exactly.

Without arguments it lists every alias with its help text.
Once the first alias word is reached, every following word belongs to the alias.
'init' and 'list' only act as subcommands when given no further words.`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.NewLogger(logLevel, logFormat, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))

			built, err := build(opts, logger)
			if err != nil {
				return fmt.Errorf("could not initialize q: %w", err)
			}
			*services = *built
			logger.Debug("Services initialized.", "config", opts.ConfigPath, "shell", opts.Shell)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRootCmd(cmd, args, services)
		},
	}
	// Aliases may be named "completion"; keep the word free.
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", defaults.ConfigPath, "Path to the alias configuration file (.toml, .yaml or .yml).")
	rootCmd.PersistentFlags().StringVar(&opts.Shell, "shell", defaults.Shell, "Shell used to run alias commands as '<shell> -c <command>'.")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Diagnostics level: 'debug', 'info', 'warn' or 'error'.")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Diagnostics format: 'text' or 'json'.")

	rootCmd.AddCommand(NewInitCommand(services))
	rootCmd.AddCommand(NewListCommand(services))

	return rootCmd
}

// runRootCmd prints the alias help when called bare, otherwise dispatches the alias.
func runRootCmd(cmd *cobra.Command, args []string, services *Services) error {
	logger := ctxlog.FromContext(cmd.Context())

	if len(args) == 0 {
		helpText, err := services.Help.HelpText()
		if err != nil {
			return err
		}
		if helpText == "" {
			logger.Info("Configuration has no aliases.")
			fmt.Fprintln(cmd.ErrOrStderr(), ui.InfoColor("No aliases defined yet. Edit the configuration file or run 'q init'."))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), helpText)
		return nil
	}

	return dispatchWords(cmd, args, services)
}

// dispatchWords joins words with single spaces and runs the matching alias.
func dispatchWords(cmd *cobra.Command, words []string, services *Services) error {
	invocation := strings.Join(words, " ")
	ctxlog.FromContext(cmd.Context()).Debug("Dispatching alias.", "invocation", invocation)
	return services.Dispatch.Dispatch(invocation, cmd.OutOrStdout())
}

// subcommandWithArgs handles a subcommand invoked with extra words: those
// name an alias such as "init db", so the whole line is dispatched.
func subcommandWithArgs(cmd *cobra.Command, args []string, services *Services) error {
	return dispatchWords(cmd, append([]string{cmd.Name()}, args...), services)
}
