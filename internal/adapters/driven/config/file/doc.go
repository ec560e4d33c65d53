// Package file provides file-based implementations of driven port interfaces.
// These adapters read configuration from the local filesystem.
//
// Adapters:
//   - ConfigLoader: TOML configuration merged over the built-in defaults
package file
