package form

import (
	"fmt"

	"github.com/goliatone/go-identityform/pkg/model"
	"github.com/goliatone/go-identityform/pkg/validation"
)

// Binder owns the editable item list and the dirty flag.
//
// State machine: Clean after every seed, Dirty after any Append or field
// write, and back to Clean only through Seed (or Sync when it seeds).
type Binder struct {
	items    []model.SelectedItem
	dirty    bool
	revision uint64

	synced bool
	input  *model.Package

	policy     validation.Policy
	duplicates DuplicatePolicy
	observers  []Observer
}

// NewBinder returns an unseeded, clean binder with no items.
func NewBinder(options ...Option) *Binder {
	b := &Binder{
		items:      []model.SelectedItem{},
		policy:     validation.Permissive,
		duplicates: DuplicateAllow,
	}
	for _, opt := range options {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// Seed replaces the item list with a copy of pkg.Items and clears the dirty
// flag. Unsaved edits are discarded.
func (b *Binder) Seed(pkg model.Package) {
	b.items = model.CloneItems(pkg.Items)
	b.dirty = false
	b.revision++
	b.notify(Event{Kind: EventSeeded, Index: -1})
}

// Sync is the input-changed hook: it seeds from pkg when pkg is a different
// reference from the one last synced, and always on the first call. A nil
// package seeds an empty list. It reports whether a seed happened.
func (b *Binder) Sync(pkg *model.Package) bool {
	if b.synced && b.input == pkg {
		return false
	}
	b.synced = true
	b.input = pkg
	if pkg == nil {
		b.Seed(model.Package{})
	} else {
		b.Seed(*pkg)
	}
	return true
}

// Append adds item at the end of the list and marks the binder dirty.
func (b *Binder) Append(item model.SelectedItem) error {
	if b.duplicates == DuplicateReject && b.indexOf(item.ID) >= 0 {
		return fmt.Errorf("%w: %q", ErrDuplicateSelection, item.ID)
	}
	if b.policy.Blocks() {
		idx := len(b.items)
		for _, field := range model.AgeFields() {
			value, _ := field.Get(item.Config)
			if err := validation.CheckValue(model.Path(idx, field), value); err != nil {
				return err
			}
		}
	}

	b.items = append(b.items, item)
	b.dirty = true
	b.notify(Event{Kind: EventAppended, Index: len(b.items) - 1, ItemID: item.ID})
	return nil
}

// SetField writes one age value and marks the binder dirty. Values outside
// the declared bounds are stored as-is unless the validation policy blocks
// them.
func (b *Binder) SetField(path model.FieldPath, value int) error {
	if err := b.checkPath(path); err != nil {
		return err
	}
	if b.policy.Blocks() {
		if err := validation.CheckValue(path, value); err != nil {
			return err
		}
	}

	item := &b.items[path.Index]
	path.Field.Set(&item.Config, value)
	b.dirty = true
	b.notify(Event{
		Kind:   EventFieldSet,
		Index:  path.Index,
		ItemID: item.ID,
		Field:  path.Field,
		Value:  value,
	})
	return nil
}

// SetFieldPath parses a dotted path and delegates to SetField.
func (b *Binder) SetFieldPath(dotted string, value int) error {
	path, err := model.ParseFieldPath(dotted)
	if err != nil {
		return err
	}
	return b.SetField(path, value)
}

// Value reads one age value.
func (b *Binder) Value(path model.FieldPath) (int, error) {
	if err := b.checkPath(path); err != nil {
		return 0, err
	}
	value, _ := path.Field.Get(b.items[path.Index].Config)
	return value, nil
}

// Field returns a read/write handle for path. The handle is not checked
// until it is used.
func (b *Binder) Field(path model.FieldPath) *FieldHandle {
	return &FieldHandle{binder: b, path: path}
}

// Items returns a copy of the current ordered items.
func (b *Binder) Items() []model.SelectedItem {
	return model.CloneItems(b.items)
}

// Len reports the number of items.
func (b *Binder) Len() int {
	return len(b.items)
}

// IsDirty reports whether the list was appended to or edited since the last
// seed.
func (b *Binder) IsDirty() bool {
	return b.dirty
}

// Revision counts seeds. Forms rendered against an older revision refer to a
// list that has since been overwritten.
func (b *Binder) Revision() uint64 {
	return b.revision
}

// State returns a snapshot for external collaborators such as a save hook.
func (b *Binder) State() model.FormState {
	return model.FormState{Items: b.Items(), Dirty: b.dirty}
}

// Policy reports the configured validation policy.
func (b *Binder) Policy() validation.Policy {
	return b.policy
}

// Issues evaluates the current items under the configured policy. It returns
// nil under validation.Permissive.
func (b *Binder) Issues() []validation.Issue {
	return validation.Evaluate(b.policy, b.items)
}

// Subscribe registers an observer for subsequent mutations.
func (b *Binder) Subscribe(observer Observer) {
	if observer == nil {
		return
	}
	b.observers = append(b.observers, observer)
}

func (b *Binder) checkPath(path model.FieldPath) error {
	if !path.Field.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownField, path.Field)
	}
	if path.Index < 0 || path.Index >= len(b.items) {
		return fmt.Errorf("%w: %s (len %d)", ErrIndexOutOfRange, path, len(b.items))
	}
	return nil
}

func (b *Binder) indexOf(id string) int {
	for i, item := range b.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (b *Binder) notify(evt Event) {
	if len(b.observers) == 0 {
		return
	}
	evt.Revision = b.revision
	evt.Len = len(b.items)
	evt.Dirty = b.dirty
	for _, observer := range b.observers {
		observer.Observe(evt)
	}
}
