package ports

import "github.com/AntonioJCosta/q/internal/core/domain/alias"

/*
ConfigRepository defines the contract for the alias configuration file.
This is a driven port, implemented by a repository that understands the
on-disk format.
*/
type ConfigRepository interface {
	// Path returns the location of the configuration file.
	Path() string

	/*
	   Load reads and validates the configuration. It fails with
	   alias.ErrConfigNotFound when the file cannot be read and
	   alias.ErrConfigParse when its content is malformed.
	*/
	Load() (alias.Configuration, error)

	/*
	   Init writes the default configuration if no file exists yet.
	   It returns true if the file was created, false if one was already there.
	*/
	Init() (bool, error)
}
