package render

import theme "github.com/goliatone/go-theme"

// RenderOptions carry per-request data renderers use to decorate a View
// without touching the binder.
type RenderOptions struct {
	// Errors surfaces field-level feedback keyed by dotted field path
	// ("items.0.config.ageFrom"). It is merged with the view's own issues.
	Errors map[string][]string
	// FormErrors are messages not tied to a single field.
	FormErrors []string
	// Hidden lists hidden inputs emitted in every HTML form of the page.
	Hidden map[string]string
	// Actions overrides the form action URLs. Zero fields fall back to
	// DefaultActions.
	Actions Actions
	// Theme, when set, supplies the theme name, variant and CSS variables
	// HTML renderers apply to the page.
	Theme *theme.RendererConfig
}

// Actions are the endpoints the HTML forms post to.
type Actions struct {
	Add    string `json:"add"`
	Pick   string `json:"pick"`
	Update string `json:"update"`
	Reset  string `json:"reset"`
}

// DefaultActions mirrors the routes registered by the httpapi package.
func DefaultActions() Actions {
	return Actions{
		Add:    "/items",
		Pick:   "/pick",
		Update: "/items/config",
		Reset:  "/reset",
	}
}

// Resolve fills empty fields from DefaultActions.
func (a Actions) Resolve() Actions {
	def := DefaultActions()
	if a.Add == "" {
		a.Add = def.Add
	}
	if a.Pick == "" {
		a.Pick = def.Pick
	}
	if a.Update == "" {
		a.Update = def.Update
	}
	if a.Reset == "" {
		a.Reset = def.Reset
	}
	return a
}
