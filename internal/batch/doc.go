// Package batch evaluates lists of complex function calls read from job
// files.
//
// A job file is YAML (.yaml, .yml), TOML (.toml) or JSON (.json), optionally
// compressed with gzip (.gz) or zstd (.zst):
//
//	name: branch-cut-check
//	evaluations:
//	  - name: root near axis
//	    fn: sqrt
//	    z: {re: 1, im: 1e-9}
//	  - fn: powReal
//	    x: 2
//	    z: {re: 0.5, im: 1}
//
// Run evaluates every entry in order and records a per-entry error string
// instead of stopping at the first failure. Cancellation is checked between
// entries.
package batch
