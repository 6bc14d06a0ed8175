package ports

import (
	"io"

	"github.com/AntonioJCosta/q/internal/core/domain/alias"
)

// AliasDispatchService defines the contract for resolving and running aliases.
type AliasDispatchService interface {
	// Resolve returns the first alias whose name equals invocation exactly.
	Resolve(invocation string) (alias.Alias, error)

	// Dispatch resolves invocation and runs the alias' command, writing the
	// child's stdout (on success) or stderr (on failure) to out.
	Dispatch(invocation string, out io.Writer) error
}
