// Package materialize runs the pipeline that turns a project.Config into a
// project directory.
//
// The pipeline shells out to the project generator, writes the formatter
// config, merges the format script into package.json, optionally installs
// one extra dependency and writes the README. Steps run in order and the
// first failure stops the run. Nothing is rolled back unless cleanup is
// enabled, in which case a directory created by the failed run is removed.
package materialize
