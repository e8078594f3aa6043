package form

import "github.com/goliatone/go-identityform/pkg/model"

// EventKind names a binder mutation.
type EventKind string

const (
	EventSeeded   EventKind = "seeded"
	EventAppended EventKind = "appended"
	EventFieldSet EventKind = "field_set"
)

// Event describes a completed mutation. Index, Field and Value are only set
// for the kinds they apply to.
type Event struct {
	Kind     EventKind
	Revision uint64
	Index    int
	ItemID   string
	Field    model.AgeField
	Value    int
	Len      int
	Dirty    bool
}

// Observer is notified synchronously after each mutation.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function into an Observer.
type ObserverFunc func(Event)

// Observe calls the underlying function.
func (fn ObserverFunc) Observe(evt Event) {
	fn(evt)
}
