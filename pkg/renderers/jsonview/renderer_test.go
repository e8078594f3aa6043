package jsonview_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-identityform/pkg/catalog"
	"github.com/goliatone/go-identityform/pkg/form"
	"github.com/goliatone/go-identityform/pkg/model"
	"github.com/goliatone/go-identityform/pkg/render"
	"github.com/goliatone/go-identityform/pkg/renderers/jsonview"
	"github.com/goliatone/go-identityform/pkg/validation"
)

func TestRenderer_EncodesItemsAndIssues(t *testing.T) {
	binder := form.NewBinder(form.WithValidationPolicy(validation.Advisory))
	binder.Seed(model.Package{Items: []model.SelectedItem{
		{ID: "a", Name: "成人", Type: model.ItemTypePreset, Config: model.ConfigRange{AgeFrom: 18, AgeTo: 25}},
	}})
	if err := binder.SetField(model.Path(0, model.FieldAgeTo), 300); err != nil {
		t.Fatalf("set field: %v", err)
	}

	view := render.BuildView(binder, nil, catalog.Default(), render.Labels{})
	out, err := jsonview.New(jsonview.WithIndent("")).Render(context.Background(), view, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var got struct {
		Items  []model.SelectedItem `json:"items"`
		Dirty  bool                 `json:"dirty"`
		Issues []validation.Issue   `json:"issues"`
	}
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	wantItems := []model.SelectedItem{
		{ID: "a", Name: "成人", Type: model.ItemTypePreset, Config: model.ConfigRange{AgeFrom: 18, AgeTo: 300}},
	}
	if diff := cmp.Diff(wantItems, got.Items); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
	if !got.Dirty {
		t.Fatalf("expected dirty state")
	}
	if len(got.Issues) != 1 || got.Issues[0].Path != "items.0.config.ageTo" {
		t.Fatalf("unexpected issues %+v", got.Issues)
	}
}

func TestRenderer_EmptyViewHasEmptyItems(t *testing.T) {
	out, err := jsonview.New().Render(context.Background(), render.View{}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff([]any{}, got["items"]); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
}
