// Package generator drives a complete generation run.
//
// A run moves through an explicit sequence of phases:
//
//	Seeding -> Discovering -> Materializing -> Installing -> Done
//
// Seeding is entered only when the answers ask for sample data and
// Installing only announces success when the answers skip installation.
// Any phase that fails moves the run to Failed and nothing after it runs.
// Overrides derived while seeding are returned as a value and handed to
// the materializer, so the environment file is always merged after the
// import has finished.
package generator
