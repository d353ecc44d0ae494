// Package logging builds the slog logger used across the CLI, with a compact
// console handler for terminals and a JSON option for machine consumption.
package logging
