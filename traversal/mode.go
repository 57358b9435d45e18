// SPDX-License-Identifier: MIT

package traversal

import (
	"fmt"
	"strings"
)

// Mode selects how candidates are scored in each iteration.
type Mode int

const (
	// ModeIndex scores every candidate by dist[anchor][i], i = iteration.
	// Matches the historical sample_edge=false behaviour.
	ModeIndex Mode = iota

	// ModeEdge scores candidate j by dist[anchor][j] (sample_edge=true).
	ModeEdge

	// ModeCoverage scores candidate j by min over selected s of dist[s][j];
	// the first iteration uses dist[start][j].
	ModeCoverage
)

var modeNames = [...]string{
	ModeIndex:    "index",
	ModeEdge:     "edge",
	ModeCoverage: "coverage",
}

// SampleEdge maps the boolean sample_edge flag onto a Mode.
func SampleEdge(edge bool) Mode {
	if edge {
		return ModeEdge
	}

	return ModeIndex
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool {
	return m >= ModeIndex && m <= ModeCoverage
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	if m.Valid() {
		return modeNames[m]
	}

	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode converts "index", "edge" or "coverage" (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range modeNames {
		if name == key {
			return Mode(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// MarshalText implements encoding.TextMarshaler (YAML/JSON configs).
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed

	return nil
}
