// Package pkgmanager detects which JavaScript package manager a generated
// project uses and builds the commands to add a dependency or run a script
// with it.
package pkgmanager
