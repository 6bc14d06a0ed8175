package ports

// ExecutionResult holds what a finished child process produced.
type ExecutionResult struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Success reports whether the child exited with status zero.
func (r ExecutionResult) Success() bool {
	return r.ExitCode == 0
}

// CommandExecutor defines an interface for executing shell commands.
// Execute blocks until the child exits. A non-zero exit is not an error;
// err is only returned when the process could not be started.
type CommandExecutor interface {
	Execute(shellName, pipeline string) (ExecutionResult, error)
}
