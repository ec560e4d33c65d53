// Package services implements the driving port interfaces.
// Services contain the lint, baseline, watch and release logic and
// orchestrate calls to driven ports (adapters).
//
// Services depend only on domain types and port interfaces.
package services
