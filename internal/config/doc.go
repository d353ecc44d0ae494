// Package config loads, normalizes, and validates the Proteus TOML
// configuration. Defaults are always usable without a config file; the CLI
// builds one Config per invocation and passes it explicitly into each
// command handler.
package config
