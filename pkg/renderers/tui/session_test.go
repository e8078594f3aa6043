package tui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-identityform/pkg/catalog"
	"github.com/goliatone/go-identityform/pkg/form"
	"github.com/goliatone/go-identityform/pkg/model"
	"github.com/goliatone/go-identityform/pkg/render"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	confirm      []bool
	infoMessages []string
	inputConfigs []InputConfig
	selectCfgs   []SelectConfig
	inputPos     int
	selectPos    int
	confirmPos   int
	selectErr    error
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	s.inputConfigs = append(s.inputConfigs, cfg)
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.selectCfgs = append(s.selectCfgs, cfg)
	if s.selectErr != nil && s.selectPos >= len(s.selectIdx) {
		return -1, s.selectErr
	}
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func testCatalog() *catalog.Catalog {
	return catalog.MustNew(
		model.IdentityOption{ID: "adult", Title: "成人"},
		model.IdentityOption{ID: "child", Title: "兒童"},
	)
}

func seeded(options ...form.Option) *form.Binder {
	b := form.NewBinder(options...)
	b.Seed(model.Package{Items: []model.SelectedItem{{
		ID: "adult", Name: "成人", Type: model.ItemTypePreset,
		Config: model.ConfigRange{AgeFrom: 18, AgeTo: 25},
	}}})
	return b
}

func TestSession_AddEditAndDone(t *testing.T) {
	b := seeded()
	driver := &stubDriver{
		selectIdx: []int{actionAdd, 1, actionEdit, 1, actionDone},
		inputs:    []string{"3", " 12 "},
		confirm:   []bool{true},
	}
	var out bytes.Buffer
	session, err := NewSession(b, testCatalog(), WithPromptDriver(driver), WithOutput(&out))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	state, err := session.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := model.FormState{
		Dirty: true,
		Items: []model.SelectedItem{
			{ID: "adult", Name: "成人", Type: model.ItemTypePreset, Config: model.ConfigRange{AgeFrom: 18, AgeTo: 25}},
			{ID: "child", Name: "兒童", Type: model.ItemTypePreset, Config: model.ConfigRange{AgeFrom: 3, AgeTo: 12}},
		},
	}
	if diff := cmp.Diff(want, state); diff != "" {
		t.Fatalf("state mismatch (-want +got):\n%s", diff)
	}
	if driver.inputConfigs[0].Default != "0" || driver.inputConfigs[0].Message != "兒童 - 最小年齡" {
		t.Fatalf("unexpected first prompt %+v", driver.inputConfigs[0])
	}
	if !strings.Contains(out.String(), `"ageTo": 12`) || !strings.Contains(out.String(), `"dirty": true`) {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestSession_RecoversFromEditErrors(t *testing.T) {
	b := seeded()
	driver := &stubDriver{
		selectIdx: []int{actionEdit, 0, actionDone},
		inputs:    []string{"abc"},
	}
	session, err := NewSession(b, testCatalog(), WithPromptDriver(driver), WithOutput(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	state, err := session.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if state.Dirty {
		t.Fatalf("rejected input must not mark the binder dirty")
	}
	if len(driver.infoMessages) != 1 || !strings.HasPrefix(driver.infoMessages[0], "錯誤: ") {
		t.Fatalf("expected one error message, got %q", driver.infoMessages)
	}
	if got, _ := b.Value(model.Path(0, model.FieldAgeFrom)); got != 18 {
		t.Fatalf("ageFrom changed to %d", got)
	}
}

func TestSession_DuplicateRejectKeepsLooping(t *testing.T) {
	b := seeded(form.WithDuplicatePolicy(form.DuplicateReject))
	driver := &stubDriver{
		selectIdx: []int{actionAdd, 0, actionDone},
	}
	session, err := NewSession(b, testCatalog(), WithPromptDriver(driver), WithOutput(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	state, err := session.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(state.Items) != 1 {
		t.Fatalf("duplicate was appended: %+v", state.Items)
	}
	if len(driver.infoMessages) != 1 || !strings.Contains(driver.infoMessages[0], "duplicate") {
		t.Fatalf("expected duplicate message, got %q", driver.infoMessages)
	}
}

func TestSession_EmptySummaryAndPrettyOutput(t *testing.T) {
	b := form.NewBinder()
	b.Seed(model.Package{})
	driver := &stubDriver{
		selectIdx: []int{actionEdit, actionSummary, actionDone},
	}
	var out bytes.Buffer
	session, err := NewSession(b, testCatalog(),
		WithPromptDriver(driver),
		WithOutput(&out),
		WithOutputFormat(OutputFormatPrettyText),
	)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	if _, err := session.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(driver.infoMessages) != 2 {
		t.Fatalf("expected two info messages, got %q", driver.infoMessages)
	}
	if driver.infoMessages[0] != "尚未選擇任何身份" || !strings.Contains(driver.infoMessages[1], "尚未選擇任何身份") {
		t.Fatalf("unexpected info messages %q", driver.infoMessages)
	}
	if !strings.Contains(out.String(), "身份設定") {
		t.Fatalf("expected pretty summary output:\n%s", out.String())
	}
}

func TestSession_DeclinedDoneContinues(t *testing.T) {
	b := seeded()
	driver := &stubDriver{
		selectIdx: []int{actionAdd, 1, actionDone, actionDone},
		confirm:   []bool{false, true},
	}
	session, err := NewSession(b, testCatalog(), WithPromptDriver(driver), WithOutput(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if _, err := session.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if driver.confirmPos != 2 {
		t.Fatalf("expected two confirmations, got %d", driver.confirmPos)
	}
}

func TestSession_Abort(t *testing.T) {
	driver := &stubDriver{selectErr: ErrAborted}
	session, err := NewSession(seeded(), testCatalog(), WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if _, err := session.Run(context.Background()); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestNewSession_RequiresBinderAndCatalog(t *testing.T) {
	if _, err := NewSession(nil, testCatalog()); err == nil {
		t.Fatalf("expected error without binder")
	}
	if _, err := NewSession(form.NewBinder(), nil); err == nil {
		t.Fatalf("expected error without catalog")
	}
}

func TestSession_PartialLabelsKeepDefaults(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{actionEdit, 0, actionDone},
		inputs:    []string{"18", "25"},
		confirm:   []bool{true},
	}
	session, err := NewSession(seeded(), testCatalog(),
		WithPromptDriver(driver),
		WithOutput(&bytes.Buffer{}),
		WithLabels(render.Labels{Title: "Identities"}),
	)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if _, err := session.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	if diff := cmp.Diff([]string{"1. 成人 (年齡範圍: 18 - 25 歲)"}, driver.selectCfgs[1].Options); diff != "" {
		t.Fatalf("edit menu mismatch (-want +got):\n%s", diff)
	}
	if driver.inputConfigs[0].Message != "成人 - 最小年齡" {
		t.Fatalf("unexpected prompt %+v", driver.inputConfigs[0])
	}
}
