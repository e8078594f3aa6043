// Package tui drives the identity editor from a terminal. A Session loops over
// a small menu, mutating the binder through the same add control and field
// handles the HTML editor uses, and writes the final state when done.
package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/goliatone/go-identityform/pkg/catalog"
	"github.com/goliatone/go-identityform/pkg/form"
	"github.com/goliatone/go-identityform/pkg/model"
	"github.com/goliatone/go-identityform/pkg/render"
	"github.com/goliatone/go-identityform/pkg/renderers/text"
	"github.com/goliatone/go-identityform/pkg/validation"
)

const (
	actionAdd = iota
	actionEdit
	actionSummary
	actionDone
)

// Session is an interactive editing loop over one binder.
type Session struct {
	binder  *form.Binder
	control *form.AddControl
	catalog *catalog.Catalog

	driver  PromptDriver
	summary render.Renderer
	labels  render.Labels
	menu    Menu
	out     io.Writer
	format  OutputFormat
}

// NewSession wires a session to a binder and catalog.
func NewSession(binder *form.Binder, cat *catalog.Catalog, options ...Option) (*Session, error) {
	if binder == nil {
		return nil, errors.New("tui: binder is required")
	}
	if cat == nil {
		return nil, errors.New("tui: catalog is required")
	}
	s := &Session{
		binder:  binder,
		control: form.NewAddControl(cat, binder),
		catalog: cat,
		summary: text.New(),
		labels:  render.DefaultLabels(),
		menu:    DefaultMenu(),
		out:     os.Stdout,
		format:  OutputFormatJSON,
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(s.out)
	}
	return s, nil
}

// Run loops until the user picks done, then writes and returns the state.
// Recoverable form errors are shown and the menu is offered again.
func (s *Session) Run(ctx context.Context) (model.FormState, error) {
	for {
		choice, err := s.driver.Select(ctx, SelectConfig{
			Message: s.menu.Prompt,
			Options: []string{s.menu.Add, s.menu.Edit, s.menu.Summary, s.menu.Done},
		})
		if err != nil {
			return model.FormState{}, err
		}

		switch choice {
		case actionAdd:
			err = s.add(ctx)
		case actionEdit:
			err = s.edit(ctx)
		case actionSummary:
			err = s.showSummary(ctx)
		case actionDone:
			done, confirmErr := s.confirmDone(ctx)
			if confirmErr != nil {
				return model.FormState{}, confirmErr
			}
			if done {
				state := s.binder.State()
				return state, s.writeState(ctx, state)
			}
			continue
		default:
			err = fmt.Errorf("%w: %d", ErrInvalidChoice, choice)
		}

		if err != nil {
			if !recoverable(err) {
				return model.FormState{}, err
			}
			if infoErr := s.driver.Info(ctx, s.menu.ErrorPrefix+err.Error()); infoErr != nil {
				return model.FormState{}, infoErr
			}
		}
	}
}

func (s *Session) add(ctx context.Context) error {
	options := s.catalog.Options()
	titles := make([]string, len(options))
	for i, opt := range options {
		titles[i] = opt.Title
	}

	idx, err := s.driver.Select(ctx, SelectConfig{
		Message: s.labels.SelectPlaceholder,
		Options: titles,
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(options) {
		return fmt.Errorf("%w: %d", ErrInvalidChoice, idx)
	}

	if err := s.control.Pick(options[idx].ID); err != nil {
		return err
	}
	if _, err := s.control.Confirm(); err != nil {
		// keep the next add from confirming a stale pick
		_ = s.control.Pick("")
		return err
	}
	return nil
}

func (s *Session) edit(ctx context.Context) error {
	items := s.binder.Items()
	if len(items) == 0 {
		return s.driver.Info(ctx, s.labels.Empty)
	}

	entries := make([]string, len(items))
	for i, item := range items {
		entries[i] = fmt.Sprintf("%d. %s (%s)", i+1, item.Name, s.labels.FormatRange(item.Config.AgeFrom, item.Config.AgeTo))
	}
	idx, err := s.driver.Select(ctx, SelectConfig{
		Message: s.menu.PickItem,
		Options: entries,
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(items) {
		return fmt.Errorf("%w: %d", ErrInvalidChoice, idx)
	}

	for _, field := range model.AgeFields() {
		handle := s.binder.Field(model.Path(idx, field))
		current, err := handle.Value()
		if err != nil {
			return err
		}
		label := s.labels.MinAge
		if field == model.FieldAgeTo {
			label = s.labels.MaxAge
		}

		raw, err := s.driver.Input(ctx, InputConfig{
			Message: fmt.Sprintf("%s - %s", items[idx].Name, label),
			Default: strconv.Itoa(current),
			Help:    fmt.Sprintf("%d - %d", model.MinAge, model.MaxAge),
			Validator: func(value string) error {
				_, err := form.ParseAge(value)
				return err
			},
		})
		if err != nil {
			return err
		}
		if err := handle.SetString(raw); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) showSummary(ctx context.Context) error {
	out, err := s.summary.Render(ctx, render.BuildView(s.binder, s.control, s.catalog, s.labels), render.RenderOptions{})
	if err != nil {
		return err
	}
	return s.driver.Info(ctx, string(out))
}

func (s *Session) confirmDone(ctx context.Context) (bool, error) {
	if !s.binder.IsDirty() {
		return true, nil
	}
	return s.driver.Confirm(ctx, ConfirmConfig{Message: s.menu.ConfirmQuit, Default: true})
}

func (s *Session) writeState(ctx context.Context, state model.FormState) error {
	switch s.format {
	case OutputFormatPrettyText:
		out, err := s.summary.Render(ctx, render.BuildView(s.binder, nil, nil, s.labels), render.RenderOptions{})
		if err != nil {
			return err
		}
		_, err = s.out.Write(out)
		return err
	default:
		enc := json.NewEncoder(s.out)
		enc.SetIndent("", "  ")
		return enc.Encode(state)
	}
}

// recoverable reports whether err leaves the binder usable so the loop can
// continue.
func recoverable(err error) bool {
	for _, target := range []error{
		form.ErrIndexOutOfRange,
		form.ErrUnknownField,
		form.ErrNotNumeric,
		form.ErrDuplicateSelection,
		form.ErrNothingPicked,
		form.ErrUnknownOption,
		ErrInvalidChoice,
		validation.ErrInvalidRange,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
