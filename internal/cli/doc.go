// Package cli defines the Cobra command tree for create-kevin-app. The root
// command runs the interactive project creation flow; each other file
// registers one subcommand (version, config, doctor). Commands delegate to
// internal packages and only handle flags, output and user interaction.
package cli
