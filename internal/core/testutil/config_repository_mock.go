package testutil

import (
	"errors"

	"github.com/AntonioJCosta/q/internal/core/domain/alias"
)

// MockConfigRepository is a mock implementation of ports.ConfigRepository for testing.
type MockConfigRepository struct {
	PathValue string
	LoadFunc  func() (alias.Configuration, error)
	InitFunc  func() (bool, error)
}

func (m *MockConfigRepository) Path() string {
	return m.PathValue
}

func (m *MockConfigRepository) Load() (alias.Configuration, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	return alias.Configuration{}, errors.New("MockConfigRepository: LoadFunc not implemented")
}

func (m *MockConfigRepository) Init() (bool, error) {
	if m.InitFunc != nil {
		return m.InitFunc()
	}
	return false, errors.New("MockConfigRepository: InitFunc not implemented")
}

// StaticConfig returns a LoadFunc that always yields the given aliases.
func StaticConfig(aliases ...alias.Alias) func() (alias.Configuration, error) {
	return func() (alias.Configuration, error) {
		return alias.Configuration{Path: "/test/q.toml", Aliases: aliases}, nil
	}
}
