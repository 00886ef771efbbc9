// Package project defines the configuration collected from the operator
// before a project is materialized.
package project
