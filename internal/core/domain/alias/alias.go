/*
Package alias defines the core domain entities for q: an alias record and the
ordered configuration that holds them.
*/
package alias

import (
	"errors"
	"fmt"
)

// Field names as they appear in the configuration file.
const (
	FieldName    = "name"
	FieldCommand = "command"
	FieldHelp    = "help"
)

/*
Alias maps a short name to a full shell command line. Name is required and
must be non-empty. Command and Help are optional: nil means the field was
absent from the file, which is only an error once the field is actually
needed; an empty string is a present value.
*/
type Alias struct {
	Name    string  `toml:"name" yaml:"name"`
	Command *string `toml:"command" yaml:"command"`
	Help    *string `toml:"help" yaml:"help"`
}

// New builds an Alias with every field present.
func New(name, command, help string) Alias {
	return Alias{Name: name, Command: &command, Help: &help}
}

// CommandLine returns the shell command, or a MissingFieldError if absent.
func (a Alias) CommandLine() (string, error) {
	if a.Command == nil {
		return "", &MissingFieldError{Alias: a.Name, Field: FieldCommand}
	}
	return *a.Command, nil
}

// HelpText returns the help string, or a MissingFieldError if absent.
func (a Alias) HelpText() (string, error) {
	if a.Help == nil {
		return "", &MissingFieldError{Alias: a.Name, Field: FieldHelp}
	}
	return *a.Help, nil
}

// Configuration is the ordered list of aliases loaded from a single file.
type Configuration struct {
	Path    string
	Aliases []Alias
}

// Validate checks every alias and reports all offending records together.
// A record whose name is absent or empty is invalid.
func (c Configuration) Validate() error {
	var errs []error
	for i, a := range c.Aliases {
		if a.Name == "" {
			errs = append(errs, fmt.Errorf("alias #%d: %w", i+1, &MissingFieldError{Index: i + 1, Field: FieldName}))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrConfigParse, errors.Join(errs...))
}

// Find returns the first alias whose name equals name exactly.
func (c Configuration) Find(name string) (Alias, bool) {
	for _, a := range c.Aliases {
		if a.Name == name {
			return a, true
		}
	}
	return Alias{}, false
}
