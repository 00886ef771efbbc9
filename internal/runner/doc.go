// Package runner spawns the external tools (project generator, package
// manager) as child processes that share the operator's terminal.
package runner
