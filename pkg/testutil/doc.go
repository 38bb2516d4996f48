// Package testutil provides helpers shared by relink's tests: directory
// tree builders and comparators over t.TempDir, a fault-injecting FS
// wrapper for exercising failure branches, and a recording reporter.
package testutil
