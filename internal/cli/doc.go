// SPDX-License-Identifier: MIT

// Package cli implements the farthest command line: a cobra command tree,
// YAML configuration with flag overrides, CSV/JSON point loading and the
// index/row writers.
package cli
