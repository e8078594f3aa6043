package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-identityform/pkg/render"
	rendertemplate "github.com/goliatone/go-identityform/pkg/render/template"
	gotemplate "github.com/goliatone/go-identityform/pkg/render/template/gotemplate"
)

// Option configures the vanilla renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	theme            *theme.RendererConfig
	stylesheetURL    string
	inlineStyles     bool
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The bundle
// must provide templates/page.tmpl, templates/summary.tmpl and
// templates/editor.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithTheme sets the default theme used when RenderOptions carry none.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(c *config) {
		c.theme = cfg
	}
}

// WithStylesheetURL links the stylesheet instead of inlining it.
func WithStylesheetURL(url string) Option {
	return func(cfg *config) {
		cfg.stylesheetURL = strings.TrimSpace(url)
	}
}

// WithInlineStyles toggles inlining the embedded stylesheet. Enabled by
// default.
func WithInlineStyles(enabled bool) Option {
	return func(cfg *config) {
		cfg.inlineStyles = enabled
	}
}

// Renderer produces the full editor page as HTML.
type Renderer struct {
	templates     rendertemplate.TemplateRenderer
	theme         *theme.RendererConfig
	stylesheet    string
	stylesheetURL string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS(), inlineStyles: true}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	r := &Renderer{
		templates:     renderer,
		theme:         cfg.theme,
		stylesheetURL: cfg.stylesheetURL,
	}
	if cfg.inlineStyles {
		r.stylesheet = defaultStylesheet()
	}
	return r, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render merges the view issues with opts errors and renders the page. The
// summary and editor fragments are rendered first and injected into the page
// template.
func (r *Renderer) Render(_ context.Context, view render.View, opts render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	decorated, formErrors := view.WithErrors(opts)

	themeCfg := opts.Theme
	if themeCfg == nil {
		themeCfg = r.theme
	}
	themeCtx := buildThemeContext(themeCfg)

	stylesheetURL := r.stylesheetURL
	if themeCtx.Stylesheet != "" {
		stylesheetURL = themeCtx.Stylesheet
	}

	hidden := render.MergeHiddenFields(opts.Hidden, render.VersionField(decorated.Revision))
	data := map[string]any{
		"view":           decorated,
		"form_errors":    formErrors,
		"hidden":         render.SortedHiddenFields(hidden),
		"actions":        opts.Actions.Resolve(),
		"theme":          themeCtx,
		"stylesheet":     r.stylesheet,
		"stylesheet_url": stylesheetURL,
	}

	summary, err := r.templates.RenderTemplate("templates/summary.tmpl", data)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render summary: %w", err)
	}
	editor, err := r.templates.RenderTemplate("templates/editor.tmpl", data)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render editor: %w", err)
	}
	data["summary_html"] = summary
	data["editor_html"] = editor

	result, err := r.templates.RenderTemplate("templates/page.tmpl", data)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render page: %w", err)
	}
	return []byte(result), nil
}
