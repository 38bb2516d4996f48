// Package filesystem provides filesystem implementations for relink.
//
// This package contains implementations of the types.FS interface,
// currently the standard OS filesystem. Tests use the fault-injecting
// wrapper in pkg/testutil instead.
package filesystem
