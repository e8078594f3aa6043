package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/goliatone/go-identityform/pkg/form"
	"github.com/goliatone/go-identityform/pkg/model"
)

func TestNewWithWriter_RenamesErrorKey(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, slog.LevelInfo)

	logger.Error("load failed", "error", errors.New("boom"))
	logger.Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "err=boom") {
		t.Fatalf("expected err key, got %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line written at info level: %q", out)
	}
}

func TestBinderObserver(t *testing.T) {
	var buf bytes.Buffer
	b := form.NewBinder(form.WithObserver(BinderObserver(NewWithWriter(&buf, slog.LevelDebug))))

	b.Seed(model.Package{Items: []model.SelectedItem{{ID: "adult", Name: "成人"}}})
	if err := b.SetField(model.Path(0, model.FieldAgeTo), 40); err != nil {
		t.Fatalf("set field: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		`msg="binder seeded"`,
		"revision=1",
		`msg="binder field_set"`,
		"field=ageTo",
		"value=40",
		"dirty=true",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in log output:\n%s", want, out)
		}
	}
}
