package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/AntonioJCosta/q/internal/adapters/oscommand"
	"github.com/AntonioJCosta/q/internal/core/services/aliasdispatch"
	"github.com/AntonioJCosta/q/internal/core/services/aliashelp"
	"github.com/AntonioJCosta/q/internal/core/services/configinit"
	"github.com/AntonioJCosta/q/internal/handlers/cli"
	"github.com/AntonioJCosta/q/internal/handlers/ui"
	"github.com/AntonioJCosta/q/internal/repositories/aliasconfig"
)

// Version is set at build time
var Version = "dev"

func main() {
	cmdExec := oscommand.NewOSCommandExecutor()

	build := func(opts cli.Options, logger *slog.Logger) (*cli.Services, error) {
		configRepo, err := aliasconfig.NewFileRepository(opts.ConfigPath, logger)
		if err != nil {
			return nil, err
		}
		return &cli.Services{
			Dispatch: aliasdispatch.NewService(configRepo, cmdExec, opts.Shell),
			Help:     aliashelp.NewService(configRepo),
			Init:     configinit.NewService(configRepo),
		}, nil
	}

	defaults := cli.Options{
		ConfigPath: aliasconfig.DefaultPath,
		Shell:      oscommand.DefaultShell,
	}
	rootCmd := cli.NewRootCommand(Version, defaults, build)
	rootCmd.SetArgs(cli.NormalizeArgs(rootCmd, os.Args[1:]))

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", ui.ErrorColor("Error:"), err)
		os.Exit(1)
	}
}
