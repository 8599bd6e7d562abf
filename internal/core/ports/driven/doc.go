// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - NodeStore: Node persistence
//   - CollectionStore: Collection persistence
//   - ConfigStore: Application configuration
//   - RendererRegistry: Hook sets for every render format
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - RecordLoader: Reads nodes from files. Without it, import is disabled.
//   - FileWatcher: Change notifications. Without it, watch mode is disabled.
//
// # Import Rules
//
//   - Can Import: domain and walker packages only
//   - Cannot Import: Any adapter package
package driven
