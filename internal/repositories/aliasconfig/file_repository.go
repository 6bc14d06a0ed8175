package aliasconfig

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/AntonioJCosta/q/internal/core/domain/alias"
	"github.com/AntonioJCosta/q/internal/core/ports"
)

// DefaultPath is where q looks for its aliases unless told otherwise.
const DefaultPath = "/usr/local/etc/q/q.toml"

// createFile opens a new file for the default configuration; it fails if one exists.
var createFile = func(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
}

// FileRepository reads and initializes the alias configuration on the file system.
// The file is trusted input: its commands are handed to a shell verbatim.
type FileRepository struct {
	path   string
	format format
	logger *slog.Logger
}

// NewFileRepository creates a repository for the file at path. The format is
// picked from the extension: .yaml/.yml is YAML, anything else is TOML.
// A nil logger falls back to slog.Default().
func NewFileRepository(path string, logger *slog.Logger) (ports.ConfigRepository, error) {
	if path == "" {
		return nil, fmt.Errorf("config file path cannot be empty")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FileRepository{path: path, format: formatFor(path), logger: logger}, nil
}

// Path implements the ports.ConfigRepository interface.
func (r *FileRepository) Path() string {
	return r.path
}

// Load implements the ports.ConfigRepository interface.
// Keys q does not know are ignored with a warning, not rejected.
func (r *FileRepository) Load() (alias.Configuration, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return alias.Configuration{}, fmt.Errorf("%w: %s: %w", alias.ErrConfigNotFound, r.path, err)
	}

	aliases, unknown, err := r.format.decode(data)
	if err != nil {
		return alias.Configuration{}, fmt.Errorf("%w: %s: %w", alias.ErrConfigParse, r.path, err)
	}
	if len(unknown) > 0 {
		r.logger.Warn("Ignoring unknown configuration keys.", "path", r.path, "keys", unknown)
	}

	cfg := alias.Configuration{Path: r.path, Aliases: aliases}
	if err := cfg.Validate(); err != nil {
		return alias.Configuration{}, fmt.Errorf("%s: %w", r.path, err)
	}
	r.logger.Debug("Configuration loaded.", "path", r.path, "aliases", len(aliases))
	return cfg, nil
}

// Init implements the ports.ConfigRepository interface.
// The existence check and the write are not atomic across processes; O_EXCL
// only keeps a racing init from clobbering a file created in between.
// A file that could not be written completely is removed again.
func (r *FileRepository) Init() (bool, error) {
	if _, err := os.Stat(r.path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("%w: checking %s: %w", alias.ErrFilesystem, r.path, err)
	}

	dirPath := filepath.Dir(r.path)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return false, fmt.Errorf("%w: failed to create directory %s: %w", alias.ErrFilesystem, dirPath, err)
	}

	file, err := createFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, fmt.Errorf("%w: failed to create %s: %w", alias.ErrFilesystem, r.path, err)
	}

	_, writeErr := file.Write(r.format.defaultContent())
	closeErr := file.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		if rmErr := os.Remove(r.path); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			r.logger.Warn("Could not remove partially written configuration.", "path", r.path, "error", rmErr)
		}
		return false, fmt.Errorf("%w: failed to write %s: %w", alias.ErrFilesystem, r.path, err)
	}
	r.logger.Debug("Default configuration written.", "path", r.path)
	return true, nil
}
