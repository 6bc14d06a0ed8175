package ports

import "github.com/AntonioJCosta/q/internal/core/domain/alias"

// AliasHelpService defines the contract for describing the configured aliases.
type AliasHelpService interface {
	// HelpText renders one `name "help"` line per alias, in file order.
	HelpText() (string, error)

	// ListAliases returns the configured aliases in file order.
	ListAliases() ([]alias.Alias, error)
}
