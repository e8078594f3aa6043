// Package catalog supplies the read-only list of identity presets an operator
// can add to the editor.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-identityform/pkg/model"
	"github.com/goliatone/go-identityform/pkg/source"
)

// Default preset titles, in display order.
const (
	TitleAdult   = "成人"
	TitleChild   = "兒童"
	TitleInfant  = "嬰兒"
	TitleElderly = "老人"
)

var errEmptyCatalog = errors.New("catalog: at least one option is required")

// Catalog is an immutable, ordered set of identity options.
type Catalog struct {
	options []model.IdentityOption
	byID    map[string]int
}

// New validates and freezes the provided options. IDs and titles must be
// non-empty and IDs unique.
func New(options ...model.IdentityOption) (*Catalog, error) {
	if len(options) == 0 {
		return nil, errEmptyCatalog
	}
	c := &Catalog{
		options: make([]model.IdentityOption, 0, len(options)),
		byID:    make(map[string]int, len(options)),
	}
	for i, opt := range options {
		id := strings.TrimSpace(opt.ID)
		title := strings.TrimSpace(opt.Title)
		if id == "" {
			return nil, fmt.Errorf("catalog: option %d has no id", i)
		}
		if title == "" {
			return nil, fmt.Errorf("catalog: option %q has no title", id)
		}
		if _, dup := c.byID[id]; dup {
			return nil, fmt.Errorf("catalog: duplicate option id %q", id)
		}
		c.byID[id] = len(c.options)
		c.options = append(c.options, model.IdentityOption{ID: id, Title: title})
	}
	return c, nil
}

// MustNew panics when New fails. Useful for init-time wiring.
func MustNew(options ...model.IdentityOption) *Catalog {
	c, err := New(options...)
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the four built-in presets. IDs are random UUIDs minted per
// call, so two default catalogs never share ids.
func Default() *Catalog {
	titles := []string{TitleAdult, TitleChild, TitleInfant, TitleElderly}
	options := make([]model.IdentityOption, 0, len(titles))
	for _, title := range titles {
		options = append(options, model.IdentityOption{ID: uuid.NewString(), Title: title})
	}
	return MustNew(options...)
}

// Options returns a copy of the presets in catalog order.
func (c *Catalog) Options() []model.IdentityOption {
	if c == nil {
		return nil
	}
	out := make([]model.IdentityOption, len(c.options))
	copy(out, c.options)
	return out
}

// Lookup finds an option by id.
func (c *Catalog) Lookup(id string) (model.IdentityOption, bool) {
	if c == nil {
		return model.IdentityOption{}, false
	}
	idx, ok := c.byID[id]
	if !ok {
		return model.IdentityOption{}, false
	}
	return c.options[idx], true
}

// FindByTitle returns the first option carrying title.
func (c *Catalog) FindByTitle(title string) (model.IdentityOption, bool) {
	if c == nil {
		return model.IdentityOption{}, false
	}
	for _, opt := range c.options {
		if opt.Title == title {
			return opt, true
		}
	}
	return model.IdentityOption{}, false
}

// Len reports the number of presets.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.options)
}

type document struct {
	Options []model.IdentityOption `json:"options" yaml:"options"`
}

// Load reads a catalog document (`options: [{id, title}]`) through loader.
func Load(ctx context.Context, loader *source.Loader, src source.Source) (*Catalog, error) {
	if loader == nil {
		return nil, errors.New("catalog: loader is required")
	}
	if src == nil {
		return nil, fmt.Errorf("catalog: load: %w", source.ErrNilSource)
	}
	data, err := loader.Fetch(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("catalog: load %s: %w", src.Location(), err)
	}
	var doc document
	if err := source.Decode(source.DetectFormat(src, data), data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	for i := range doc.Options {
		doc.Options[i].Title = source.SanitizeText(doc.Options[i].Title)
	}
	return New(doc.Options...)
}
