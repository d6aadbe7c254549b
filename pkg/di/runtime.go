// Package di wires the kubeassist services with samber/do.
package di

import (
	"fmt"

	"github.com/samber/do/v2"
)

// Injector is the dependency container passed to commands.
type Injector = do.Injector

// Provider registers one dependency.
type Provider func(Injector) error

// Runtime builds a fresh injector for every invocation and shuts it down afterwards.
type Runtime struct {
	providers []Provider
}

// New creates a Runtime from providers.
func New(providers ...Provider) *Runtime {
	return &Runtime{providers: providers}
}

// Invoke registers every provider in a new injector and calls fn with it.
// Services implementing Shutdown are shut down when fn returns.
func (r *Runtime) Invoke(fn func(Injector) error) error {
	injector := do.New()
	defer func() { _ = injector.Shutdown() }()

	for _, provide := range r.providers {
		err := provide(injector)
		if err != nil {
			return fmt.Errorf("register dependency: %w", err)
		}
	}

	return fn(injector)
}
