package ports

// InitResult describes the outcome of initializing the configuration file.
type InitResult struct {
	Path    string
	Created bool
}

// ConfigInitService defines the contract for creating the default configuration.
type ConfigInitService interface {
	Init() (InitResult, error)
}
