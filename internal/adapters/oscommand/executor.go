package oscommand

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"

	"github.com/AntonioJCosta/q/internal/core/domain/alias"
	"github.com/AntonioJCosta/q/internal/core/ports"
)

// DefaultShell is used when no shell is requested.
const DefaultShell = "sh"

// OSCommandExecutor implements the CommandExecutor interface using the operating system's shell.
type OSCommandExecutor struct{}

// NewOSCommandExecutor creates a new OSCommandExecutor.
func NewOSCommandExecutor() ports.CommandExecutor {
	return &OSCommandExecutor{}
}

// Execute runs pipeline as `<shellName> -c <pipeline>` and waits for it to exit.
// The pipeline is passed as one argument; quoting and expansion are the shell's job.
func (e *OSCommandExecutor) Execute(shellName, pipeline string) (ports.ExecutionResult, error) {
	if shellName == "" {
		shellName = DefaultShell
	}

	cmd := exec.Command(shellName, "-c", pipeline)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	result := ports.ExecutionResult{
		Stdout: outBuf.Bytes(),
		Stderr: errBuf.Bytes(),
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return result, nil
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
		if result.ExitCode < 0 {
			// Killed by a signal; there is no exit status to report.
			result.ExitCode = 1
		}
		return result, nil
	default:
		return ports.ExecutionResult{}, fmt.Errorf("%w with shell '%s': %w", alias.ErrProcessSpawn, shellName, err)
	}
}
