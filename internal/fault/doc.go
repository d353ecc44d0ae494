// Package fault defines the failure taxonomy shared by every command:
// sentinel markers for user input, file state, external tool, and probe
// failures, plus the mapping from a classified error to a process exit code.
package fault
