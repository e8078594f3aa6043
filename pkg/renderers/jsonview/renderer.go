// Package jsonview renders the editor state as JSON for scripts and pipes.
package jsonview

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-identityform/pkg/model"
	"github.com/goliatone/go-identityform/pkg/render"
	"github.com/goliatone/go-identityform/pkg/validation"
)

// Option configures the JSON renderer.
type Option func(*Renderer)

// WithIndent sets the indentation of the output. An empty indent renders
// compact JSON.
func WithIndent(indent string) Option {
	return func(r *Renderer) {
		r.indent = indent
	}
}

// Renderer encodes the items, dirty flag and issues of a View.
type Renderer struct {
	indent string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a JSON renderer indented with two spaces.
func New(options ...Option) *Renderer {
	r := &Renderer{indent: "  "}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string {
	return "json"
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

type payload struct {
	Items  []model.SelectedItem `json:"items"`
	Dirty  bool                 `json:"dirty"`
	Issues []validation.Issue   `json:"issues,omitempty"`
}

// Render encodes view. Items is never null so consumers can range over it.
func (r *Renderer) Render(_ context.Context, view render.View, _ render.RenderOptions) ([]byte, error) {
	body := payload{Items: view.Items, Dirty: view.Dirty, Issues: view.Issues}
	if body.Items == nil {
		body.Items = []model.SelectedItem{}
	}

	var (
		out []byte
		err error
	)
	if r.indent == "" {
		out, err = json.Marshal(body)
	} else {
		out, err = json.MarshalIndent(body, "", r.indent)
	}
	if err != nil {
		return nil, fmt.Errorf("json renderer: encode: %w", err)
	}
	return append(out, '\n'), nil
}
