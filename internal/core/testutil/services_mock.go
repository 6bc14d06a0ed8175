package testutil

import (
	"errors"
	"io"

	"github.com/AntonioJCosta/q/internal/core/domain/alias"
	"github.com/AntonioJCosta/q/internal/core/ports"
)

// MockAliasDispatchService is a mock implementation of ports.AliasDispatchService.
type MockAliasDispatchService struct {
	ResolveFunc  func(invocation string) (alias.Alias, error)
	DispatchFunc func(invocation string, out io.Writer) error
}

func (m *MockAliasDispatchService) Resolve(invocation string) (alias.Alias, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(invocation)
	}
	return alias.Alias{}, errors.New("MockAliasDispatchService: ResolveFunc not implemented")
}

func (m *MockAliasDispatchService) Dispatch(invocation string, out io.Writer) error {
	if m.DispatchFunc != nil {
		return m.DispatchFunc(invocation, out)
	}
	return errors.New("MockAliasDispatchService: DispatchFunc not implemented")
}

// MockAliasHelpService is a mock implementation of ports.AliasHelpService.
type MockAliasHelpService struct {
	HelpTextFunc    func() (string, error)
	ListAliasesFunc func() ([]alias.Alias, error)
}

func (m *MockAliasHelpService) HelpText() (string, error) {
	if m.HelpTextFunc != nil {
		return m.HelpTextFunc()
	}
	return "", errors.New("MockAliasHelpService: HelpTextFunc not implemented")
}

func (m *MockAliasHelpService) ListAliases() ([]alias.Alias, error) {
	if m.ListAliasesFunc != nil {
		return m.ListAliasesFunc()
	}
	return nil, errors.New("MockAliasHelpService: ListAliasesFunc not implemented")
}

// MockConfigInitService is a mock implementation of ports.ConfigInitService.
type MockConfigInitService struct {
	InitFunc func() (ports.InitResult, error)
}

func (m *MockConfigInitService) Init() (ports.InitResult, error) {
	if m.InitFunc != nil {
		return m.InitFunc()
	}
	return ports.InitResult{}, errors.New("MockConfigInitService: InitFunc not implemented")
}
