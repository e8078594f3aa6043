package template

import (
	"io"
)

// TemplateRenderer is the contract HTML renderers rely on. Implementations
// resolve named templates, render ad-hoc template strings and accept filters
// plus global data shared by every render.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
