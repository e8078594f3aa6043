// Package text renders the read-only identity summary for terminals.
package text

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-identityform/pkg/render"
)

// Option configures the text renderer.
type Option func(*Renderer)

// WithOutput sets the writer whose terminal capabilities decide the color
// profile. Output to a non-terminal writer is plain text.
func WithOutput(w io.Writer) Option {
	return func(r *Renderer) {
		if w != nil {
			r.lg = lipgloss.NewRenderer(w)
		}
	}
}

// WithNameWidth sets the column width of item names.
func WithNameWidth(width int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.nameWidth = width
		}
	}
}

// Renderer prints the summary of a View as styled text.
type Renderer struct {
	lg        *lipgloss.Renderer
	nameWidth int
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a text renderer. By default it renders without color.
func New(options ...Option) *Renderer {
	r := &Renderer{
		lg:        lipgloss.NewRenderer(io.Discard),
		nameWidth: 8,
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string {
	return "text"
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render writes the title, the dirty marker, one line per item and any
// messages attached to the view or opts.
func (r *Renderer) Render(_ context.Context, view render.View, opts render.RenderOptions) ([]byte, error) {
	titleStyle := r.lg.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	dirtyStyle := r.lg.NewStyle().Foreground(lipgloss.Color("12"))
	headingStyle := r.lg.NewStyle().Bold(true).MarginTop(1)
	nameStyle := r.lg.NewStyle().Bold(true).Foreground(lipgloss.Color("6")).Width(r.nameWidth).PaddingLeft(2)
	rangeStyle := r.lg.NewStyle().Foreground(lipgloss.Color("8"))
	mutedStyle := r.lg.NewStyle().Faint(true).PaddingLeft(2)
	errorStyle := r.lg.NewStyle().Foreground(lipgloss.Color("9")).PaddingLeft(2)

	labels := view.Labels
	decorated, formErrors := view.WithErrors(opts)

	var lines []string
	title := titleStyle.Render(labels.Title)
	if view.Dirty {
		title += " " + dirtyStyle.Render(labels.Modified)
	}
	lines = append(lines, title, headingStyle.Render(labels.SelectedHeading))

	if view.Empty {
		lines = append(lines, mutedStyle.Render(labels.Empty))
	}
	for _, entry := range view.Summary {
		lines = append(lines, lipgloss.JoinHorizontal(
			lipgloss.Left,
			nameStyle.Render(entry.Name),
			rangeStyle.Render(entry.Range),
		))
	}

	for _, row := range decorated.Editors {
		for _, field := range row.Fields {
			for _, message := range field.Errors {
				lines = append(lines, errorStyle.Render(field.Name+": "+message))
			}
		}
	}
	for _, message := range formErrors {
		lines = append(lines, errorStyle.Render(message))
	}

	return []byte(strings.Join(lines, "\n") + "\n"), nil
}
