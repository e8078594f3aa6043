package validation

import (
	"fmt"

	"github.com/goliatone/go-identityform/pkg/model"
)

// IssueKind classifies a validation issue.
type IssueKind string

const (
	KindInvalidRange       IssueKind = "invalid_range"
	KindDuplicateSelection IssueKind = "duplicate_selection"
)

// Issue is a single non-fatal finding. Path is a dotted field path for
// field-level issues and empty for list-level ones.
type Issue struct {
	Kind    IssueKind `json:"kind"`
	Path    string    `json:"path,omitempty"`
	Index   int       `json:"index"`
	Message string    `json:"message"`
}

// InBounds reports whether value lies inside the declared age bounds.
func InBounds(value int) bool {
	return value >= model.MinAge && value <= model.MaxAge
}

// CheckValue validates a single write against the declared bounds.
func CheckValue(path model.FieldPath, value int) error {
	if InBounds(value) {
		return nil
	}
	return fmt.Errorf("%w: %s=%d (allowed %d-%d)", ErrInvalidRange, path, value, model.MinAge, model.MaxAge)
}

// Items inspects the whole list. The result is ordered by item index, then
// field-level before list-level findings.
func Items(items []model.SelectedItem) []Issue {
	var issues []Issue
	firstByID := make(map[string]int, len(items))

	for idx, item := range items {
		for _, field := range model.AgeFields() {
			value, _ := field.Get(item.Config)
			if !InBounds(value) {
				issues = append(issues, Issue{
					Kind:    KindInvalidRange,
					Path:    model.Path(idx, field).String(),
					Index:   idx,
					Message: fmt.Sprintf("must be between %d and %d", model.MinAge, model.MaxAge),
				})
			}
		}
		if item.Config.AgeFrom > item.Config.AgeTo {
			issues = append(issues, Issue{
				Kind:    KindInvalidRange,
				Path:    model.Path(idx, model.FieldAgeTo).String(),
				Index:   idx,
				Message: "must not be lower than the minimum age",
			})
		}

		if first, seen := firstByID[item.ID]; seen {
			issues = append(issues, Issue{
				Kind:    KindDuplicateSelection,
				Index:   idx,
				Message: fmt.Sprintf("%s duplicates item %d", item.Name, first),
			})
			continue
		}
		firstByID[item.ID] = idx
	}
	return issues
}

// Evaluate runs Items when the policy reports issues and returns nil
// otherwise.
func Evaluate(policy Policy, items []model.SelectedItem) []Issue {
	if !policy.Reports() {
		return nil
	}
	return Items(items)
}
