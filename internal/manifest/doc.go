// Package manifest patches the JSON files of a generated project: the
// package manifest (package.json) and the formatter config (.prettierrc).
//
// Edits are applied to the original bytes with sjson, so every key the
// patch does not name keeps its value, its position and its exact bytes.
// The result is re-indented with two spaces. Before any edit, a parsed copy
// is checked against an embedded JSON Schema.
package manifest
