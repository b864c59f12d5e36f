package rename

import "seqrename/internal/config"

// RenamerFactory is a function that creates a Renamer from configuration
type RenamerFactory func(cfg *config.Config) (Renamer, error)

// DefaultRenamerFactory creates a real Engine
var DefaultRenamerFactory RenamerFactory = func(cfg *config.Config) (Renamer, error) {
	engine, err := NewWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	return engine, nil
}

// CurrentRenamerFactory is the currently active factory
// This can be swapped in tests
var CurrentRenamerFactory = DefaultRenamerFactory

// SetRenamerFactory sets a custom renamer factory for dependency injection
func SetRenamerFactory(factory RenamerFactory) {
	CurrentRenamerFactory = factory
}

// ResetRenamerFactory resets to the default renamer factory
func ResetRenamerFactory() {
	CurrentRenamerFactory = DefaultRenamerFactory
}
