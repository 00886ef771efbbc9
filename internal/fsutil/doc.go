// Package fsutil provides file-writing helpers shared by the pipeline steps:
// atomic replacement of a file's contents and portable permission changes.
package fsutil
