package configinit

import (
	"fmt"

	"github.com/AntonioJCosta/q/internal/core/ports"
)

type service struct {
	config ports.ConfigRepository
}

// NewService creates a new config init service.
// It panics if the repository is nil.
func NewService(cr ports.ConfigRepository) ports.ConfigInitService {
	if cr == nil {
		panic("config repository cannot be nil")
	}
	return &service{config: cr}
}

// Init writes the default configuration unless a file is already present.
func (s *service) Init() (ports.InitResult, error) {
	path := s.config.Path()
	created, err := s.config.Init()
	if err != nil {
		return ports.InitResult{Path: path}, fmt.Errorf("failed to initialize %s: %w", path, err)
	}
	return ports.InitResult{Path: path, Created: created}, nil
}
