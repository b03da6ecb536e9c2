package ports

import "go.trai.ch/hoist/internal/core/domain"

// ConfigLoader defines the interface for loading the release configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path and returns the validated
	// release configuration. Relative layout paths are resolved against root.
	Load(root, path string) (*domain.ReleaseConfig, error)
}
