package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/goliatone/go-identityform/pkg/catalog"
	"github.com/goliatone/go-identityform/pkg/form"
	"github.com/goliatone/go-identityform/pkg/model"
	"github.com/goliatone/go-identityform/pkg/render"
	"github.com/goliatone/go-identityform/pkg/renderers/vanilla"
	"github.com/goliatone/go-identityform/pkg/validation"
)

const optionField = "option"

// Handler owns one editing session. Requests are serialized on a mutex so
// every mutation and the render that follows see a consistent binder.
type Handler struct {
	router   chi.Router
	opts     Options
	renderer render.Renderer
	spec     []byte

	mu      sync.Mutex
	binder  *form.Binder
	control *form.AddControl
	catalog *catalog.Catalog
	pkg     *model.Package
}

var _ http.Handler = (*Handler)(nil)

// New seeds a session from pkg and builds the router. A nil pkg starts with
// an empty list.
func New(cat *catalog.Catalog, pkg *model.Package, fns ...OptionFn) (*Handler, error) {
	if cat == nil {
		return nil, fmt.Errorf("httpapi: catalog is required")
	}
	opts := NewOptions(fns...)

	renderer := opts.Renderer
	if renderer == nil {
		r, err := vanilla.New()
		if err != nil {
			return nil, fmt.Errorf("httpapi: %w", err)
		}
		renderer = r
	}

	spec, err := specJSON(context.Background())
	if err != nil {
		return nil, err
	}

	binder := form.NewBinder(opts.BinderOptions...)
	binder.Sync(pkg)

	h := &Handler{
		opts:     opts,
		renderer: renderer,
		spec:     spec,
		binder:   binder,
		control:  form.NewAddControl(cat, binder),
		catalog:  cat,
		pkg:      pkg,
	}
	h.router = h.routes()
	return h, nil
}

func (h *Handler) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", h.page)
	r.Post("/items", h.addItem)
	r.Post("/items/config", h.updateItems)
	r.Post("/pick", h.pick)
	r.Post("/reset", h.reset)

	r.Get("/api/state", h.state)
	r.Get("/api/catalog", h.catalogOptions)
	r.Get("/openapi.json", h.openapi)
	if h.opts.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", h.opts.MetricsHandler)
	}
	return r
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// State returns the current form state.
func (h *Handler) State() model.FormState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.binder.State()
}

// Reload makes pkg the reset source and seeds from it when it differs from
// the current one. It reports whether a seed happened.
func (h *Handler) Reload(pkg *model.Package) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pkg = pkg
	seeded := h.binder.Sync(pkg)
	if seeded {
		_ = h.control.Pick("")
	}
	return seeded
}

func (h *Handler) page(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.writePage(w, r, http.StatusOK, render.RenderOptions{})
}

func (h *Handler) pick(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func() error {
		return h.control.Pick(r.PostForm.Get(optionField))
	})
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func() error {
		if err := h.control.Pick(r.PostForm.Get(optionField)); err != nil {
			return err
		}
		item, err := h.control.Confirm()
		if err != nil {
			return err
		}
		h.opts.Logger.Debug("identity appended", "item", item.ID, "len", h.binder.Len())
		return nil
	})
}

func (h *Handler) updateItems(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.parseForm(w, r) {
		return
	}
	if err := h.checkRevision(r); err != nil {
		h.fail(w, r, err)
		return
	}

	keys := make([]string, 0, len(r.PostForm))
	for key := range r.PostForm {
		if strings.HasPrefix(key, "items.") {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	fieldErrors := make(map[string][]string)
	var firstErr error
	for _, key := range keys {
		err := h.setField(key, r.PostForm.Get(key))
		if err == nil {
			continue
		}
		if firstErr == nil {
			firstErr = err
		}
		c := classify(err)
		h.recordRejection(c.reason)
		fieldErrors[key] = append(fieldErrors[key], c.message)
	}

	if firstErr != nil {
		h.opts.Logger.Info("identity config rejected", "fields", len(fieldErrors), "error", firstErr)
		h.writePage(w, r, classify(firstErr).status, render.RenderOptions{Errors: fieldErrors})
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) setField(key, raw string) error {
	path, err := model.ParseFieldPath(key)
	if err != nil {
		return err
	}
	return h.binder.Field(path).SetString(raw)
}

func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.pkg == nil {
		h.binder.Seed(model.Package{})
	} else {
		h.binder.Seed(*h.pkg)
	}
	_ = h.control.Pick("")
	h.opts.Logger.Info("identity editor reset", "revision", h.binder.Revision())
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

type stateResponse struct {
	Items    []model.SelectedItem `json:"items"`
	Dirty    bool                 `json:"dirty"`
	Revision uint64               `json:"revision"`
	Issues   []validation.Issue   `json:"issues,omitempty"`
}

func (h *Handler) state(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	state := h.binder.State()
	resp := stateResponse{
		Items:    state.Items,
		Dirty:    state.Dirty,
		Revision: h.binder.Revision(),
		Issues:   h.binder.Issues(),
	}
	h.mu.Unlock()

	h.writeJSON(w, http.StatusOK, resp)
}

type catalogResponse struct {
	Options []model.IdentityOption `json:"options"`
}

func (h *Handler) catalogOptions(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, catalogResponse{Options: h.catalog.Options()})
}

func (h *Handler) openapi(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(h.spec); err != nil {
		h.opts.Logger.Error("openapi write failed", "error", err)
	}
}

// mutate runs fn under the session lock after the form and revision checks,
// then redirects to the page or re-renders it with the error.
func (h *Handler) mutate(w http.ResponseWriter, r *http.Request, fn func() error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.parseForm(w, r) {
		return
	}
	if err := h.checkRevision(r); err != nil {
		h.fail(w, r, err)
		return
	}
	if err := fn(); err != nil {
		h.fail(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) parseForm(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		h.opts.Logger.Warn("invalid form body", "error", err)
		http.Error(w, "Invalid form body", http.StatusBadRequest)
		return false
	}
	return true
}

func (h *Handler) checkRevision(r *http.Request) error {
	raw := strings.TrimSpace(r.PostForm.Get(render.RevisionField))
	if raw == "" {
		return nil
	}
	revision, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrBadRevision, raw)
	}
	if revision != h.binder.Revision() {
		return fmt.Errorf("%w: got %d, current %d", ErrStaleRevision, revision, h.binder.Revision())
	}
	return nil
}

// fail re-renders the page with err as a form-level message. Callers hold
// the lock.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	c := classify(err)
	h.recordRejection(c.reason)
	if c.status >= http.StatusInternalServerError {
		h.opts.Logger.Error("identity editor request failed", "path", r.URL.Path, "error", err)
	} else {
		h.opts.Logger.Info("identity editor request rejected", "path", r.URL.Path, "reason", c.reason, "error", err)
	}
	h.writePage(w, r, c.status, render.RenderOptions{FormErrors: []string{c.message}})
}

func (h *Handler) recordRejection(reason string) {
	if h.opts.Rejections != nil {
		h.opts.Rejections.Rejected(reason)
	}
}

// writePage renders the editor. Callers hold the lock.
func (h *Handler) writePage(w http.ResponseWriter, r *http.Request, status int, opts render.RenderOptions) {
	opts.Theme = h.opts.Theme
	opts.Hidden = render.MergeHiddenFields(h.opts.Hidden, render.SortedHiddenFields(opts.Hidden)...)

	view := render.BuildView(h.binder, h.control, h.catalog, h.opts.Labels)
	out, err := h.renderer.Render(r.Context(), view, opts)
	if err != nil {
		h.opts.Logger.Error("render failed", "renderer", h.renderer.Name(), "error", err)
		http.Error(w, "Render error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", h.renderer.ContentType())
	w.WriteHeader(status)
	if _, err := w.Write(out); err != nil {
		h.opts.Logger.Error("page write failed", "error", err)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.opts.Logger.Error("json response encode failed", "error", err)
	}
}
