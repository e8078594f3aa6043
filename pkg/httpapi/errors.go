package httpapi

import (
	"errors"
	"net/http"

	"github.com/goliatone/go-identityform/pkg/form"
	"github.com/goliatone/go-identityform/pkg/model"
	"github.com/goliatone/go-identityform/pkg/validation"
)

var (
	// ErrStaleRevision is returned when a form post was rendered against a
	// state that has since been re-seeded.
	ErrStaleRevision = errors.New("httpapi: stale form revision")
	// ErrBadRevision is returned when the revision field is not a number.
	ErrBadRevision = errors.New("httpapi: malformed form revision")
)

type classification struct {
	status  int
	reason  string
	message string
}

var classifications = []struct {
	target error
	classification
}{
	{ErrStaleRevision, classification{http.StatusConflict, "stale_revision", "the editor was reset since this page was loaded, reload and try again"}},
	{ErrBadRevision, classification{http.StatusBadRequest, "bad_revision", "malformed revision"}},
	{form.ErrNothingPicked, classification{http.StatusUnprocessableEntity, "nothing_picked", "select an identity first"}},
	{form.ErrUnknownOption, classification{http.StatusUnprocessableEntity, "unknown_option", "unknown identity option"}},
	{form.ErrDuplicateSelection, classification{http.StatusUnprocessableEntity, "duplicate_selection", "identity already selected"}},
	{form.ErrNotNumeric, classification{http.StatusUnprocessableEntity, "not_numeric", "must be a whole number"}},
	{form.ErrIndexOutOfRange, classification{http.StatusUnprocessableEntity, "index_out_of_range", "item does not exist"}},
	{form.ErrUnknownField, classification{http.StatusUnprocessableEntity, "unknown_field", "unknown field"}},
	{model.ErrInvalidPath, classification{http.StatusUnprocessableEntity, "invalid_path", "unknown field"}},
	{validation.ErrInvalidRange, classification{http.StatusUnprocessableEntity, "invalid_range", "must be between 0 and 200"}},
}

// classify maps an editor error onto an HTTP status, a metrics reason and a
// message shown next to the offending input.
func classify(err error) classification {
	for _, c := range classifications {
		if errors.Is(err, c.target) {
			return c.classification
		}
	}
	return classification{http.StatusInternalServerError, "internal", err.Error()}
}
