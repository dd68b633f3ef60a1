// SPDX-License-Identifier: MIT

// Package cli parses command-line arguments for the one-shot route finder,
// runs the lookup and maps failures to process exit codes.
package cli
