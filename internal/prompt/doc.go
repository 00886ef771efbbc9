// Package prompt asks the operator the fixed set of questions that make up a
// project configuration. Real terminals get survey-driven prompts; pipes and
// tests get a plain line-based prompter.
package prompt
