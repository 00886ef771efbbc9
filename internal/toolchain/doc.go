// Package toolchain inspects the host for the Node.js tools the generator
// and package manager need, and compares their versions with semver.
package toolchain
