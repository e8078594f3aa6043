package form

import "errors"

var (
	// ErrIndexOutOfRange signals a field write or read against an item that
	// does not exist. It is a caller bug; the binder state is left untouched.
	ErrIndexOutOfRange = errors.New("form: item index out of range")
	// ErrUnknownField is returned for paths naming a field other than ageFrom
	// or ageTo.
	ErrUnknownField = errors.New("form: unknown field")
	// ErrNotNumeric is returned when a field editor receives non-integer input.
	ErrNotNumeric = errors.New("form: value is not an integer")
	// ErrDuplicateSelection is returned by Append when duplicates are rejected
	// and the item id is already present.
	ErrDuplicateSelection = errors.New("form: duplicate selection")
	// ErrNothingPicked is returned when the add control is confirmed with no
	// option picked.
	ErrNothingPicked = errors.New("form: no identity option picked")
	// ErrUnknownOption is returned when picking an id missing from the catalog.
	ErrUnknownOption = errors.New("form: unknown identity option")
)
