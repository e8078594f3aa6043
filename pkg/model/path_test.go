package model_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-identityform/pkg/model"
)

func TestParseFieldPath(t *testing.T) {
	got, err := model.ParseFieldPath("items.3.config.ageTo")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := model.Path(3, model.FieldAgeTo)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("path mismatch (-want +got):\n%s", diff)
	}
	if got.String() != "items.3.config.ageTo" {
		t.Fatalf("unexpected dotted form %q", got.String())
	}
}

func TestParseFieldPath_Rejects(t *testing.T) {
	cases := []string{
		"",
		"items.0.config",
		"items.-1.config.ageFrom",
		"items.x.config.ageFrom",
		"items.0.settings.ageFrom",
		"items.0.config.name",
		"rows.0.config.ageFrom",
	}
	for _, raw := range cases {
		if _, err := model.ParseFieldPath(raw); !errors.Is(err, model.ErrInvalidPath) {
			t.Fatalf("expected ErrInvalidPath for %q, got %v", raw, err)
		}
	}
}

func TestAgeFieldGetSet(t *testing.T) {
	cfg := model.ConfigRange{AgeFrom: 1, AgeTo: 2}
	if !model.FieldAgeTo.Set(&cfg, 9) {
		t.Fatalf("expected set to succeed")
	}
	if v, _ := model.FieldAgeTo.Get(cfg); v != 9 {
		t.Fatalf("expected ageTo 9, got %d", v)
	}
	if v, _ := model.FieldAgeFrom.Get(cfg); v != 1 {
		t.Fatalf("expected ageFrom untouched, got %d", v)
	}
	if model.AgeField("bogus").Set(&cfg, 1) {
		t.Fatalf("expected unknown field to be rejected")
	}
}

func TestPackageCloneDoesNotAlias(t *testing.T) {
	pkg := model.Package{Items: []model.SelectedItem{{ID: "a", Name: "成人"}}}
	clone := pkg.Clone()
	clone.Items[0].Name = "changed"
	if pkg.Items[0].Name != "成人" {
		t.Fatalf("clone aliased the source items")
	}
}
