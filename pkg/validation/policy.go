package validation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRange is returned under the Strict policy when a write would
// leave an age outside [model.MinAge, model.MaxAge].
var ErrInvalidRange = errors.New("validation: age outside allowed range")

// Policy selects how range and duplicate checks are applied.
type Policy string

const (
	// Permissive performs no checks. This is the default.
	Permissive Policy = "permissive"
	// Advisory reports issues inline but never blocks an edit.
	Advisory Policy = "advisory"
	// Strict rejects out-of-bounds writes and reports the remaining issues.
	Strict Policy = "strict"
)

// ParsePolicy maps a configuration string onto a Policy. Empty input yields
// Permissive.
func ParsePolicy(raw string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(raw))) {
	case "", Permissive:
		return Permissive, nil
	case Advisory:
		return Advisory, nil
	case Strict:
		return Strict, nil
	default:
		return "", fmt.Errorf("validation: unknown policy %q", raw)
	}
}

// Reports reports whether the policy surfaces issues at all.
func (p Policy) Reports() bool {
	return p == Advisory || p == Strict
}

// Blocks reports whether out-of-bounds writes are rejected.
func (p Policy) Blocks() bool {
	return p == Strict
}
