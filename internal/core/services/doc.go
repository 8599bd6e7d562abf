// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no CGO. Tree traversal is delegated to
// the walker package; services only select nodes and renderers.
package services
