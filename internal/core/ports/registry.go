// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/hoist/internal/core/domain"
)

// Registry invokes the registry CLI for a single package.
//
//go:generate go run go.uber.org/mock/mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type Registry interface {
	// Invoke runs op inside the package directory with the registry CLI
	// described by cfg and waits for it to exit.
	//
	// A non-zero exit is not an error: it is reported through the returned
	// Invocation together with the captured standard error. An error is
	// returned only when the command could not be started or was interrupted.
	Invoke(ctx context.Context, cfg domain.RegistryConfig, pkg domain.Package, op domain.Operation) (domain.Invocation, error)
}
