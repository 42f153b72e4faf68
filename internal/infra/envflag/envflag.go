// Package envflag resolves boolean build toggles from environment
// variables. Matching is case-insensitive and deliberately permissive:
// values outside the recognized sets never fail, they simply resolve to
// the flag's unasserted state.
package envflag

import (
	"os"
	"strings"
)

var (
	affirmative = []string{"1", "true", "yes", "on"}
	negative    = []string{"0", "false", "no", "off"}
)

// Snapshot is an immutable capture of the process environment. All checks
// against one snapshot see the same values regardless of later mutations
// via os.Setenv.
type Snapshot struct {
	values map[string]string
}

// Capture snapshots the current process environment.
func Capture() Snapshot {
	environ := os.Environ()
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		values[key] = value
	}
	return Snapshot{values: values}
}

// NewSnapshot builds a snapshot from an explicit variable map.
func NewSnapshot(values map[string]string) Snapshot {
	copied := make(map[string]string, len(values))
	for key, value := range values {
		copied[key] = value
	}
	return Snapshot{values: copied}
}

// Lookup returns the raw value of a variable and whether it is set.
func (s Snapshot) Lookup(name string) (string, bool) {
	value, ok := s.values[name]
	return value, ok
}

// Check reports whether the variable is set to a recognized affirmative
// value. Unset variables and unrecognized values resolve to false.
func (s Snapshot) Check(name string) bool {
	return s.CheckDefault(name, false)
}

// CheckDefault is Check with an explicit value for the unset case.
func (s Snapshot) CheckDefault(name string, unset bool) bool {
	value, ok := s.values[name]
	if !ok {
		return unset
	}
	return matches(value, affirmative)
}

// CheckNegative reports whether the variable is set to a recognized
// negative value. Unset variables and unrecognized values resolve to
// false, i.e. "not negatively flagged". Negating the result yields
// on-by-default semantics.
func (s Snapshot) CheckNegative(name string) bool {
	value, ok := s.values[name]
	if !ok {
		return false
	}
	return matches(value, negative)
}

func matches(value string, recognized []string) bool {
	trimmed := strings.TrimSpace(value)
	for _, candidate := range recognized {
		if strings.EqualFold(trimmed, candidate) {
			return true
		}
	}
	return false
}
