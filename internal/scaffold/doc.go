// Package scaffold renders the files that create-kevin-app writes itself
// (as opposed to the ones produced by the project generator) from embedded
// templates. It currently powers the generated README.md.
package scaffold
