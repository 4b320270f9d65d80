// Package cmd implements the command-line interface shipping with the
// strkit library. The core containers have no CLI contract of their own;
// these commands consume the library through its public surface.
//
// The package is organized into several subpackages:
//
//   - scan: List directory entries grouped through the sorted maps
//   - match: Run the pattern matcher and print captures
//   - perf: Micro-benchmark the sorted map operations
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See strkit -help for a list of all commands.
package cmd
