// Package ui renders everything create-kevin-app prints on its own behalf:
// the banner, colored step/status lines, and the optional README preview.
package ui
