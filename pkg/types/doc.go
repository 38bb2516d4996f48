// Package types defines the core types shared across relink.
//
// It contains the task and outcome types produced and consumed by the
// relocation engine, plus the narrow interfaces (FS, Reporter) the engine
// depends on, so that implementations can live in their own packages
// without import cycles.
package types
