package render

import (
	"strconv"

	"github.com/goliatone/go-identityform/pkg/catalog"
	"github.com/goliatone/go-identityform/pkg/form"
	"github.com/goliatone/go-identityform/pkg/model"
	"github.com/goliatone/go-identityform/pkg/validation"
)

// View is a render-ready snapshot of the editor. It is derived entirely from
// the binder, the add control and the catalog.
type View struct {
	Labels   Labels             `json:"labels"`
	Dirty    bool               `json:"dirty"`
	Revision uint64             `json:"revision"`
	Empty    bool               `json:"empty"`
	Options  []OptionView       `json:"options"`
	Picked   string             `json:"picked"`
	CanAdd   bool               `json:"canAdd"`
	Summary  []SummaryEntry     `json:"summary"`
	Editors  []EditorRow        `json:"editors"`
	Issues   []validation.Issue `json:"issues,omitempty"`

	// Items is the raw list the view was built from.
	Items []model.SelectedItem `json:"items"`
}

// OptionView is one entry of the catalog select.
type OptionView struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Selected bool   `json:"selected"`
}

// SummaryEntry is one row of the read-only summary.
type SummaryEntry struct {
	Index int    `json:"index"`
	ID    string `json:"id"`
	Name  string `json:"name"`
	Range string `json:"range"`
}

// EditorRow groups the inputs of one item.
type EditorRow struct {
	Index  int         `json:"index"`
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Fields []FieldView `json:"fields"`
}

// FieldView is a single numeric input. Value is preformatted so templates do
// not have to format numbers.
type FieldView struct {
	Name   string         `json:"name"`
	Field  model.AgeField `json:"field"`
	Label  string         `json:"label"`
	Value  string         `json:"value"`
	Min    string         `json:"min"`
	Max    string         `json:"max"`
	Errors []string       `json:"errors,omitempty"`
}

// BuildView snapshots the editor for rendering. ctl and cat may be nil when
// only the summary is needed.
func BuildView(binder *form.Binder, ctl *form.AddControl, cat *catalog.Catalog, labels Labels) View {
	labels = labels.WithDefaults()
	items := binder.Items()

	view := View{
		Labels:   labels,
		Dirty:    binder.IsDirty(),
		Revision: binder.Revision(),
		Empty:    len(items) == 0,
		Summary:  make([]SummaryEntry, 0, len(items)),
		Editors:  make([]EditorRow, 0, len(items)),
		Issues:   binder.Issues(),
		Items:    items,
	}

	if ctl != nil {
		view.Picked = ctl.Picked()
		view.CanAdd = ctl.Enabled()
	}
	for _, opt := range cat.Options() {
		view.Options = append(view.Options, OptionView{
			ID:       opt.ID,
			Title:    opt.Title,
			Selected: opt.ID == view.Picked,
		})
	}

	for idx, item := range items {
		view.Summary = append(view.Summary, SummaryEntry{
			Index: idx,
			ID:    item.ID,
			Name:  item.Name,
			Range: labels.FormatRange(item.Config.AgeFrom, item.Config.AgeTo),
		})

		row := EditorRow{Index: idx, ID: item.ID, Name: item.Name}
		for _, field := range model.AgeFields() {
			value, _ := field.Get(item.Config)
			label := labels.MinAge
			if field == model.FieldAgeTo {
				label = labels.MaxAge
			}
			row.Fields = append(row.Fields, FieldView{
				Name:  model.Path(idx, field).String(),
				Field: field,
				Label: label,
				Value: strconv.Itoa(value),
				Min:   strconv.Itoa(model.MinAge),
				Max:   strconv.Itoa(model.MaxAge),
			})
		}
		view.Editors = append(view.Editors, row)
	}

	return view
}

// WithErrors returns a copy of the view whose field inputs carry the merged
// field-level messages of the view issues and opts.Errors, plus the form-level
// messages that matched no input.
func (v View) WithErrors(opts RenderOptions) (View, []string) {
	mapping := MapIssues(v.Issues)
	fields := mergeFieldErrors(mapping.Fields, opts.Errors)
	formErrors := MergeFormErrors(opts.FormErrors, mapping.Form...)

	editors := make([]EditorRow, len(v.Editors))
	known := make(map[string]struct{})
	for i, row := range v.Editors {
		clone := row
		clone.Fields = make([]FieldView, len(row.Fields))
		for j, field := range row.Fields {
			field.Errors = fields[field.Name]
			known[field.Name] = struct{}{}
			clone.Fields[j] = field
		}
		editors[i] = clone
	}
	for _, path := range FieldPaths(fields) {
		if _, ok := known[path]; !ok {
			formErrors = MergeFormErrors(formErrors, fields[path]...)
		}
	}

	v.Editors = editors
	return v, formErrors
}
