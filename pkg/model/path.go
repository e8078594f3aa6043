package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// AgeField enumerates the editable scalars of a ConfigRange.
type AgeField string

const (
	FieldAgeFrom AgeField = "ageFrom"
	FieldAgeTo   AgeField = "ageTo"
)

// Valid reports whether the field is one of the known age fields.
func (f AgeField) Valid() bool {
	switch f {
	case FieldAgeFrom, FieldAgeTo:
		return true
	default:
		return false
	}
}

// Get reads the field from a range.
func (f AgeField) Get(cfg ConfigRange) (int, bool) {
	switch f {
	case FieldAgeFrom:
		return cfg.AgeFrom, true
	case FieldAgeTo:
		return cfg.AgeTo, true
	default:
		return 0, false
	}
}

// Set writes the field on a range.
func (f AgeField) Set(cfg *ConfigRange, value int) bool {
	if cfg == nil {
		return false
	}
	switch f {
	case FieldAgeFrom:
		cfg.AgeFrom = value
	case FieldAgeTo:
		cfg.AgeTo = value
	default:
		return false
	}
	return true
}

// AgeFields lists the editable fields in display order.
func AgeFields() []AgeField {
	return []AgeField{FieldAgeFrom, FieldAgeTo}
}

const (
	itemsSegment  = "items"
	configSegment = "config"
)

// ErrInvalidPath is returned by ParseFieldPath for malformed dotted paths.
var ErrInvalidPath = errors.New("model: invalid field path")

// FieldPath addresses one age value inside the item list.
type FieldPath struct {
	Index int
	Field AgeField
}

// Path builds a FieldPath.
func Path(index int, field AgeField) FieldPath {
	return FieldPath{Index: index, Field: field}
}

// String renders the dotted form, e.g. "items.0.config.ageFrom".
func (p FieldPath) String() string {
	return fmt.Sprintf("%s.%d.%s.%s", itemsSegment, p.Index, configSegment, p.Field)
}

// ParseFieldPath parses "items.<index>.config.<ageFrom|ageTo>". The index
// must be a non-negative integer; whether it exists is the binder's concern.
func ParseFieldPath(raw string) (FieldPath, error) {
	segments := strings.Split(strings.TrimSpace(raw), ".")
	if len(segments) != 4 || segments[0] != itemsSegment || segments[2] != configSegment {
		return FieldPath{}, fmt.Errorf("%w: %q", ErrInvalidPath, raw)
	}
	index, err := strconv.Atoi(segments[1])
	if err != nil || index < 0 {
		return FieldPath{}, fmt.Errorf("%w: bad index in %q", ErrInvalidPath, raw)
	}
	field := AgeField(segments[3])
	if !field.Valid() {
		return FieldPath{}, fmt.Errorf("%w: unknown field in %q", ErrInvalidPath, raw)
	}
	return FieldPath{Index: index, Field: field}, nil
}
