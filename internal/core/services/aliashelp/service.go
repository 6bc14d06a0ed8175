package aliashelp

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/q/internal/core/domain/alias"
	"github.com/AntonioJCosta/q/internal/core/ports"
)

type service struct {
	config ports.ConfigRepository
}

// NewService creates a new alias help service.
// It panics if the repository is nil.
func NewService(cr ports.ConfigRepository) ports.AliasHelpService {
	if cr == nil {
		panic("config repository cannot be nil")
	}
	return &service{config: cr}
}

// HelpText renders `name "help"` for every alias, one per line, in file order.
// A single alias without help aborts the whole render.
func (s *service) HelpText() (string, error) {
	aliases, err := s.ListAliases()
	if err != nil {
		return "", err
	}

	lines := make([]string, 0, len(aliases))
	for _, a := range aliases {
		if a.Name == "" {
			return "", fmt.Errorf("failed to render help: %w", &alias.MissingFieldError{Field: alias.FieldName})
		}
		help, err := a.HelpText()
		if err != nil {
			return "", fmt.Errorf("failed to render help: %w", err)
		}
		lines = append(lines, fmt.Sprintf("%s \"%s\"", a.Name, help))
	}
	return strings.Join(lines, "\n"), nil
}

// ListAliases returns the configured aliases in file order.
func (s *service) ListAliases() ([]alias.Alias, error) {
	cfg, err := s.config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load aliases: %w", err)
	}
	return cfg.Aliases, nil
}
