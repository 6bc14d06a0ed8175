package alias

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by q. Every one of them ends the current run.
var (
	ErrConfigNotFound  = errors.New("config not found")
	ErrConfigParse     = errors.New("config parse error")
	ErrMissingField    = errors.New("missing field")
	ErrCommandNotFound = errors.New("not found command")
	ErrProcessSpawn    = errors.New("failed to execute process")
	ErrOutputDecode    = errors.New("output is not valid UTF-8")
	ErrFilesystem      = errors.New("filesystem error")
)

// MissingFieldError reports a required field that is absent from an alias.
// Alias is empty when the name itself is missing; Index is 1-based and only
// set by load-time validation. An empty name counts as missing, since the
// decoders cannot tell `name = ""` from no name at all.
type MissingFieldError struct {
	Alias string
	Index int
	Field string
}

func (e *MissingFieldError) Error() string {
	if e.Alias == "" {
		return fmt.Sprintf("%s: %q is absent or empty", ErrMissingField, e.Field)
	}
	return fmt.Sprintf("%s: alias %q has no %q", ErrMissingField, e.Alias, e.Field)
}

// Is lets errors.Is(err, ErrMissingField) match.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}
