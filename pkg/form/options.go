package form

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-identityform/pkg/validation"
)

// DuplicatePolicy decides what Append does with an id already in the list.
type DuplicatePolicy string

const (
	// DuplicateAllow appends the item anyway. This is the default.
	DuplicateAllow DuplicatePolicy = "allow"
	// DuplicateReject refuses the append with ErrDuplicateSelection.
	DuplicateReject DuplicatePolicy = "reject"
)

// ParseDuplicatePolicy maps a configuration string onto a DuplicatePolicy.
func ParseDuplicatePolicy(raw string) (DuplicatePolicy, error) {
	switch DuplicatePolicy(strings.ToLower(strings.TrimSpace(raw))) {
	case "", DuplicateAllow:
		return DuplicateAllow, nil
	case DuplicateReject:
		return DuplicateReject, nil
	default:
		return "", fmt.Errorf("form: unknown duplicate policy %q", raw)
	}
}

// Option configures a Binder.
type Option func(*Binder)

// WithValidationPolicy enables range checks. The default is
// validation.Permissive.
func WithValidationPolicy(policy validation.Policy) Option {
	return func(b *Binder) {
		if policy != "" {
			b.policy = policy
		}
	}
}

// WithDuplicatePolicy selects how duplicate ids are handled on Append.
func WithDuplicatePolicy(policy DuplicatePolicy) Option {
	return func(b *Binder) {
		if policy != "" {
			b.duplicates = policy
		}
	}
}

// WithObserver registers an observer at construction time.
func WithObserver(observer Observer) Option {
	return func(b *Binder) {
		b.Subscribe(observer)
	}
}
