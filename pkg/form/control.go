package form

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-identityform/pkg/catalog"
	"github.com/goliatone/go-identityform/pkg/model"
)

// AddControl holds the currently picked catalog option and commits it to the
// binder as a new preset item.
type AddControl struct {
	catalog *catalog.Catalog
	binder  *Binder
	picked  string
}

// NewAddControl wires a control to a catalog and binder. The picked value
// starts empty.
func NewAddControl(cat *catalog.Catalog, binder *Binder) *AddControl {
	return &AddControl{catalog: cat, binder: binder}
}

// Picked returns the picked option id, or "" when nothing is picked.
func (c *AddControl) Picked() string {
	return c.picked
}

// Enabled reports whether Confirm would append.
func (c *AddControl) Enabled() bool {
	return c.picked != ""
}

// Pick selects an option by id. A blank id clears the pick.
func (c *AddControl) Pick(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		c.picked = ""
		return nil
	}
	if _, ok := c.catalog.Lookup(id); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownOption, id)
	}
	c.picked = id
	return nil
}

// Confirm appends the picked option with a zeroed age range and clears the
// pick. With nothing picked it returns ErrNothingPicked and appends nothing.
// If the append is refused the pick is kept.
func (c *AddControl) Confirm() (model.SelectedItem, error) {
	if c.picked == "" {
		return model.SelectedItem{}, ErrNothingPicked
	}
	option, ok := c.catalog.Lookup(c.picked)
	if !ok {
		return model.SelectedItem{}, fmt.Errorf("%w: %q", ErrUnknownOption, c.picked)
	}

	item := model.NewPresetItem(option)
	if err := c.binder.Append(item); err != nil {
		return model.SelectedItem{}, err
	}
	c.picked = ""
	return item, nil
}
