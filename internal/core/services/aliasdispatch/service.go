package aliasdispatch

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/AntonioJCosta/q/internal/core/domain/alias"
	"github.com/AntonioJCosta/q/internal/core/ports"
)

type service struct {
	config    ports.ConfigRepository
	executor  ports.CommandExecutor
	shellName string
}

// NewService creates a new alias dispatch service running commands through shellName.
// It panics if the repository or executor is nil.
func NewService(cr ports.ConfigRepository, ce ports.CommandExecutor, shellName string) ports.AliasDispatchService {
	if cr == nil {
		panic("config repository cannot be nil")
	}
	if ce == nil {
		panic("command executor cannot be nil")
	}
	return &service{config: cr, executor: ce, shellName: shellName}
}

// Resolve loads the configuration and returns the first alias named exactly invocation.
func (s *service) Resolve(invocation string) (alias.Alias, error) {
	cfg, err := s.config.Load()
	if err != nil {
		return alias.Alias{}, fmt.Errorf("failed to load aliases: %w", err)
	}
	found, ok := cfg.Find(invocation)
	if !ok {
		return alias.Alias{}, fmt.Errorf("%w: '%s'", alias.ErrCommandNotFound, invocation)
	}
	return found, nil
}

// Dispatch runs the command of the alias named invocation. On a zero exit the
// child's stdout is written to out, otherwise its stderr is.
func (s *service) Dispatch(invocation string, out io.Writer) error {
	target, err := s.Resolve(invocation)
	if err != nil {
		return err
	}

	commandLine, err := target.CommandLine()
	if err != nil {
		return fmt.Errorf("cannot run alias '%s': %w", target.Name, err)
	}

	result, err := s.executor.Execute(s.shellName, commandLine)
	if err != nil {
		return fmt.Errorf("running alias '%s': %w", target.Name, err)
	}

	output := result.Stdout
	if !result.Success() {
		output = result.Stderr
	}
	if !utf8.Valid(output) {
		return fmt.Errorf("%w: alias '%s' (exit code %d)", alias.ErrOutputDecode, target.Name, result.ExitCode)
	}

	if _, err := out.Write(output); err != nil {
		return fmt.Errorf("failed to write output of alias '%s': %w", target.Name, err)
	}
	return nil
}
