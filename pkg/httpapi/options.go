package httpapi

import (
	"log/slog"
	"net/http"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-identityform/pkg/form"
	"github.com/goliatone/go-identityform/pkg/render"
)

// RejectionRecorder receives the reason of every refused edit.
type RejectionRecorder interface {
	Rejected(reason string)
}

// Options configure the handler.
type Options struct {
	Renderer       render.Renderer
	Labels         render.Labels
	Theme          *theme.RendererConfig
	Logger         *slog.Logger
	BinderOptions  []form.Option
	MetricsHandler http.Handler
	Rejections     RejectionRecorder
	// Hidden fields added to every HTML form, e.g. a CSRF token.
	Hidden map[string]string
}

// OptionFn mutates Options.
type OptionFn func(*Options)

// NewOptions applies fns over the defaults.
func NewOptions(fns ...OptionFn) Options {
	var opts Options
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return opts
}

// WithRenderer replaces the HTML renderer. The default is vanilla.
func WithRenderer(r render.Renderer) OptionFn {
	return func(o *Options) {
		o.Renderer = r
	}
}

// WithLabels overrides the page labels.
func WithLabels(labels render.Labels) OptionFn {
	return func(o *Options) {
		o.Labels = labels
	}
}

// WithTheme passes a theme to the renderer on every request.
func WithTheme(cfg *theme.RendererConfig) OptionFn {
	return func(o *Options) {
		o.Theme = cfg
	}
}

// WithLogger sets the logger for request outcomes. The default is slog.Default.
func WithLogger(logger *slog.Logger) OptionFn {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithBinderOptions configures the session binder.
func WithBinderOptions(options ...form.Option) OptionFn {
	return func(o *Options) {
		o.BinderOptions = append(o.BinderOptions, options...)
	}
}

// WithMetrics mounts handler at /metrics.
func WithMetrics(handler http.Handler) OptionFn {
	return func(o *Options) {
		o.MetricsHandler = handler
	}
}

// WithRejectionRecorder reports rejected edits, e.g. to the metrics collector.
func WithRejectionRecorder(recorder RejectionRecorder) OptionFn {
	return func(o *Options) {
		o.Rejections = recorder
	}
}

// WithHidden adds hidden inputs to every form.
func WithHidden(fields map[string]string) OptionFn {
	return func(o *Options) {
		o.Hidden = render.MergeHiddenFields(o.Hidden, render.SortedHiddenFields(fields)...)
	}
}
