package render

import "fmt"

// Labels is the static text of the editor.
type Labels struct {
	Title             string `json:"title"`
	Modified          string `json:"modified"`
	SelectedHeading   string `json:"selectedHeading"`
	AddHeading        string `json:"addHeading"`
	SelectPlaceholder string `json:"selectPlaceholder"`
	PickButton        string `json:"pickButton"`
	AddButton         string `json:"addButton"`
	MinAge            string `json:"minAge"`
	MaxAge            string `json:"maxAge"`
	Empty             string `json:"empty"`
	Reset             string `json:"reset"`
	Save              string `json:"save"`
	// RangeFormat receives ageFrom and ageTo.
	RangeFormat string `json:"-"`
}

// DefaultLabels returns the traditional Chinese labels of the editor.
func DefaultLabels() Labels {
	return Labels{
		Title:             "身份設定",
		Modified:          "(已修改)",
		SelectedHeading:   "已選擇的身份",
		AddHeading:        "新增身份",
		SelectPlaceholder: "請選擇身份類型",
		PickButton:        "選擇",
		AddButton:         "新增",
		MinAge:            "最小年齡",
		MaxAge:            "最大年齡",
		Empty:             "尚未選擇任何身份",
		Reset:             "重設",
		Save:              "更新",
		RangeFormat:       "年齡範圍: %d - %d 歲",
	}
}

// WithDefaults fills blank labels from DefaultLabels.
func (l Labels) WithDefaults() Labels {
	def := DefaultLabels()
	fill := func(dst *string, fallback string) {
		if *dst == "" {
			*dst = fallback
		}
	}
	fill(&l.Title, def.Title)
	fill(&l.Modified, def.Modified)
	fill(&l.SelectedHeading, def.SelectedHeading)
	fill(&l.AddHeading, def.AddHeading)
	fill(&l.SelectPlaceholder, def.SelectPlaceholder)
	fill(&l.PickButton, def.PickButton)
	fill(&l.AddButton, def.AddButton)
	fill(&l.MinAge, def.MinAge)
	fill(&l.MaxAge, def.MaxAge)
	fill(&l.Empty, def.Empty)
	fill(&l.Reset, def.Reset)
	fill(&l.Save, def.Save)
	fill(&l.RangeFormat, def.RangeFormat)
	return l
}

// FormatRange renders an age range with RangeFormat.
func (l Labels) FormatRange(from, to int) string {
	return fmt.Sprintf(l.RangeFormat, from, to)
}
