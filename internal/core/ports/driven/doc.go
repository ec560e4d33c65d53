// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ConfigLoader: Reads and merges the TOML configuration
//   - DocumentLoader: Loads the root .tex file and its includes
//   - RuleFactory: Builds the configured rules
//   - WordlistLoader: Reads spelling dictionaries
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - BaselineStore: Accepted issue persistence. Without it, --baseline is rejected.
//   - Watcher: File change notifications for the watch command.
//   - ArtifactBuilder, Publisher: Packaging tasks.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or rule package
package driven
