package tui

import (
	"io"

	"github.com/goliatone/go-identityform/pkg/render"
)

// OutputFormat controls how the final state is written.
type OutputFormat string

const (
	// OutputFormatJSON emits the form state as JSON.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatPrettyText emits the text summary.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// Menu holds the labels of the session menu and prompts.
type Menu struct {
	Prompt      string
	Add         string
	Edit        string
	Summary     string
	Done        string
	PickItem    string
	ConfirmQuit string
	ErrorPrefix string
}

// DefaultMenu returns the traditional Chinese menu labels.
func DefaultMenu() Menu {
	return Menu{
		Prompt:      "請選擇操作",
		Add:         "新增身份",
		Edit:        "編輯年齡範圍",
		Summary:     "顯示摘要",
		Done:        "完成",
		PickItem:    "請選擇要編輯的身份",
		ConfirmQuit: "有未儲存的變更，確定完成?",
		ErrorPrefix: "錯誤: ",
	}
}

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithOutput sets where the final state is written.
func WithOutput(w io.Writer) Option {
	return func(s *Session) {
		if w != nil {
			s.out = w
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format OutputFormat) Option {
	return func(s *Session) {
		if format != "" {
			s.format = format
		}
	}
}

// WithLabels overrides the editor labels.
func WithLabels(labels render.Labels) Option {
	return func(s *Session) {
		s.labels = labels.WithDefaults()
	}
}

// WithMenu overrides the menu labels. Blank entries keep their defaults.
func WithMenu(menu Menu) Option {
	return func(s *Session) {
		def := DefaultMenu()
		fill := func(dst *string, value string) {
			if value != "" {
				*dst = value
			}
		}
		fill(&def.Prompt, menu.Prompt)
		fill(&def.Add, menu.Add)
		fill(&def.Edit, menu.Edit)
		fill(&def.Summary, menu.Summary)
		fill(&def.Done, menu.Done)
		fill(&def.PickItem, menu.PickItem)
		fill(&def.ConfirmQuit, menu.ConfirmQuit)
		fill(&def.ErrorPrefix, menu.ErrorPrefix)
		s.menu = def
	}
}

// WithSummaryRenderer replaces the renderer used for the summary action and
// pretty output.
func WithSummaryRenderer(r render.Renderer) Option {
	return func(s *Session) {
		if r != nil {
			s.summary = r
		}
	}
}
