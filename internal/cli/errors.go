// SPDX-License-Identifier: MIT

package cli

import "errors"

var (
	// ErrUnknownFormat is returned for an input/output format other than csv or json.
	ErrUnknownFormat = errors.New("cli: unknown format")

	// ErrUnknownEmit is returned for an --emit value other than indices or rows.
	ErrUnknownEmit = errors.New("cli: unknown emit target")

	// ErrBadInput is returned when the point file cannot be parsed.
	ErrBadInput = errors.New("cli: malformed input")

	// ErrBadConfig is returned when the configuration file cannot be decoded
	// or holds invalid values.
	ErrBadConfig = errors.New("cli: invalid configuration")
)
