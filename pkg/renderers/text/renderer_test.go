package text_test

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-identityform/pkg/form"
	"github.com/goliatone/go-identityform/pkg/model"
	"github.com/goliatone/go-identityform/pkg/render"
	"github.com/goliatone/go-identityform/pkg/renderers/text"
	"github.com/goliatone/go-identityform/pkg/validation"
)

func summaryFor(t *testing.T, b *form.Binder, opts render.RenderOptions) string {
	t.Helper()
	out, err := text.New().Render(context.Background(), render.BuildView(b, nil, nil, render.Labels{}), opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func TestRenderer_Summary(t *testing.T) {
	b := form.NewBinder()
	b.Seed(model.Package{Items: []model.SelectedItem{
		{ID: "adult", Name: "成人", Config: model.ConfigRange{AgeFrom: 18, AgeTo: 25}},
		{ID: "child", Name: "兒童", Config: model.ConfigRange{AgeFrom: 3, AgeTo: 12}},
	}})

	out := summaryFor(t, b, render.RenderOptions{})

	for _, want := range []string{"身份設定", "已選擇的身份", "成人", "年齡範圍: 18 - 25 歲", "兒童", "年齡範圍: 3 - 12 歲"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "(已修改)") {
		t.Fatalf("clean binder rendered dirty marker:\n%s", out)
	}
	if strings.Index(out, "成人") > strings.Index(out, "兒童") {
		t.Fatalf("items rendered out of order:\n%s", out)
	}
}

func TestRenderer_EmptyAndDirty(t *testing.T) {
	b := form.NewBinder()
	b.Seed(model.Package{Items: []model.SelectedItem{{ID: "adult", Name: "成人"}}})
	if err := b.SetField(model.Path(0, model.FieldAgeTo), 30); err != nil {
		t.Fatalf("set field: %v", err)
	}
	if out := summaryFor(t, b, render.RenderOptions{}); !strings.Contains(out, "身份設定 (已修改)") {
		t.Fatalf("expected dirty marker:\n%s", out)
	}

	b.Seed(model.Package{})
	if out := summaryFor(t, b, render.RenderOptions{}); !strings.Contains(out, "尚未選擇任何身份") {
		t.Fatalf("expected empty placeholder:\n%s", out)
	}
}

func TestRenderer_Issues(t *testing.T) {
	b := form.NewBinder(form.WithValidationPolicy(validation.Advisory))
	b.Seed(model.Package{Items: []model.SelectedItem{{ID: "adult", Name: "成人", Config: model.ConfigRange{AgeFrom: 0, AgeTo: 250}}}})

	out := summaryFor(t, b, render.RenderOptions{FormErrors: []string{"save failed"}})
	for _, want := range []string{"items.0.config.ageTo: must be between 0 and 200", "save failed"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}
