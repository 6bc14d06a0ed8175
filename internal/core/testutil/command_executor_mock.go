package testutil

import (
	"errors"

	"github.com/AntonioJCosta/q/internal/core/ports"
)

// ExecuteCall records the arguments of one MockCommandExecutor.Execute call.
type ExecuteCall struct {
	ShellName string
	Pipeline  string
}

// MockCommandExecutor is a mock implementation of ports.CommandExecutor.
// Every call is recorded in Calls so tests can assert what was (not) run.
type MockCommandExecutor struct {
	ExecuteFunc func(shellName, pipeline string) (ports.ExecutionResult, error)
	Calls       []ExecuteCall
}

// Execute records the call and delegates to ExecuteFunc.
func (m *MockCommandExecutor) Execute(shellName, pipeline string) (ports.ExecutionResult, error) {
	m.Calls = append(m.Calls, ExecuteCall{ShellName: shellName, Pipeline: pipeline})
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(shellName, pipeline)
	}
	return ports.ExecutionResult{}, errors.New("MockCommandExecutor.ExecuteFunc not implemented")
}
