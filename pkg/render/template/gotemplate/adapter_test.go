package gotemplate_test

import (
	"fmt"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-identityform/pkg/render/template/gotemplate"
)

type rangeView struct {
	Name    string `json:"name"`
	AgeFrom int    `json:"ageFrom"`
	AgeTo   int    `json:"ageTo"`
}

func newEngine(t *testing.T, options ...gotemplate.Option) *gotemplate.Engine {
	t.Helper()

	files := fstest.MapFS{
		"hello.tmpl":      {Data: []byte("Hello {{ name }}")},
		"range.tmpl":      {Data: []byte("{{ item.name }}: {{ item.ageFrom }}-{{ item.ageTo }}")},
		"use-global.tmpl": {Data: []byte("{{ settings.env }}")},
		"use-filter.tmpl": {Data: []byte("{{ name|shout }}")},
		"escape.tmpl":     {Data: []byte("{{ name }}|{{ path|domid }}")},
	}
	engine, err := gotemplate.New(append([]gotemplate.Option{gotemplate.WithFS(files)}, options...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngine_RenderTemplateWritesOutput(t *testing.T) {
	engine := newEngine(t)

	var buf strings.Builder
	result, err := engine.RenderTemplate("hello", map[string]any{"name": "成人"}, &buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "Hello 成人" || buf.String() != result {
		t.Fatalf("unexpected output result=%q written=%q", result, buf.String())
	}
}

func TestEngine_IntegersRenderWithoutDecimals(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.RenderTemplate("range", map[string]any{
		"item": rangeView{Name: "成人", AgeFrom: 18, AgeTo: 25},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "成人: 18-25" {
		t.Fatalf("unexpected output %q", result)
	}
}

func TestEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t, gotemplate.WithGlobalData(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}))

	result, err := engine.Render("use-global", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "staging" {
		t.Fatalf("unexpected output %q", result)
	}
}

func TestEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) {
		if input == nil {
			return "", nil
		}
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) { return input, nil }); err == nil {
		t.Fatalf("expected duplicate filter error")
	}

	result, err := engine.RenderTemplate("use-filter", map[string]any{"name": "ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "ADA!" {
		t.Fatalf("unexpected output %q", result)
	}
}

func TestEngine_AutoescapeAndDomID(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.RenderTemplate("escape", map[string]any{
		"name": "<b>x</b>",
		"path": "items.0.config.ageFrom",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "&lt;b&gt;x&lt;/b&gt;|items-0-config-ageFrom"
	if result != want {
		t.Fatalf("unexpected output\nwant: %q\n got: %q", want, result)
	}
}

func TestEngine_RenderStringAndMissingTemplate(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.Render("{{ count }} items", map[string]any{"count": 3})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if result != "3 items" {
		t.Fatalf("unexpected output %q", result)
	}

	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatalf("expected error for missing template")
	}
}

func TestNew_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without base dir or fs")
	}
}
