package form

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-identityform/pkg/model"
)

// FieldHandle is a two-way binding to one age value of one item.
type FieldHandle struct {
	binder *Binder
	path   model.FieldPath
}

// Path returns the addressed field.
func (h *FieldHandle) Path() model.FieldPath {
	return h.path
}

// Name returns the dotted path used as the input name.
func (h *FieldHandle) Name() string {
	return h.path.String()
}

// Value reads the bound value.
func (h *FieldHandle) Value() (int, error) {
	return h.binder.Value(h.path)
}

// Set writes value through the binder.
func (h *FieldHandle) Set(value int) error {
	return h.binder.SetField(h.path, value)
}

// SetString parses raw editor input and writes it. Bounds are not checked
// here; non-integer input is rejected with ErrNotNumeric and leaves the state
// unchanged.
func (h *FieldHandle) SetString(raw string) error {
	value, err := ParseAge(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", h.path, err)
	}
	return h.Set(value)
}

// ParseAge converts editor input into an integer.
func ParseAge(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, trimmed)
	}
	return value, nil
}
