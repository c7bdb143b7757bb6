// Package types defines the data model shared by the generation pipeline:
// the filesystem abstraction, Answers, Blueprint descriptors, resolved
// Overrides and the terminal Outcome of a run.
package types
