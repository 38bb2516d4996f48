// Package display renders run results.
//
// The engine reports through the types.Reporter interface; this package
// provides the implementations: a terminal reporter that streams one
// styled line per task, and serial reporters that collect the run and
// emit it as JSON, YAML or XML for machine consumption.
package display
