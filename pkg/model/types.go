package model

// ItemType tags how a selected item was produced.
type ItemType string

const (
	// ItemTypePreset marks items added from the identity catalog.
	ItemTypePreset ItemType = "PRESET"
)

// Declared bounds for the age inputs. The model does not enforce them; see
// the validation package for the opt-in policies.
const (
	MinAge = 0
	MaxAge = 200
)

// IdentityOption is a selectable catalog preset.
type IdentityOption struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
}

// ConfigRange holds the editable age range of a selected item. AgeFrom may
// exceed AgeTo; nothing in the model rejects it.
type ConfigRange struct {
	AgeFrom int `json:"ageFrom" yaml:"ageFrom"`
	AgeTo   int `json:"ageTo" yaml:"ageTo"`
}

// SelectedItem is one entry of the editable list. ID is used as the list key
// but is not guaranteed to be unique.
type SelectedItem struct {
	ID     string      `json:"id" yaml:"id"`
	Name   string      `json:"name" yaml:"name"`
	Type   ItemType    `json:"type" yaml:"type"`
	Config ConfigRange `json:"config" yaml:"config"`
}

// NewPresetItem builds the item appended when a catalog option is confirmed:
// the option id and title with a zeroed age range.
func NewPresetItem(option IdentityOption) SelectedItem {
	return SelectedItem{
		ID:   option.ID,
		Name: option.Title,
		Type: ItemTypePreset,
	}
}

// Package is the external seed data handed to the editor.
type Package struct {
	Items []SelectedItem `json:"items" yaml:"items"`
}

// Clone returns a copy whose item slice does not alias the receiver's.
func (p Package) Clone() Package {
	return Package{Items: CloneItems(p.Items)}
}

// FormState is a snapshot of the binder: the ordered items and whether they
// changed since the last seed.
type FormState struct {
	Items []SelectedItem `json:"items"`
	Dirty bool           `json:"dirty"`
}

// CloneItems copies a slice of items. SelectedItem holds only value fields so
// a slice copy is a deep copy. A nil input yields an empty, non-nil slice.
func CloneItems(items []SelectedItem) []SelectedItem {
	out := make([]SelectedItem, len(items))
	copy(out, items)
	return out
}
