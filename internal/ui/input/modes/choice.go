package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"luxegems/internal/domain"
	"luxegems/internal/ui/input/types"
)

// ChoiceMode picks one value for a filter dimension from a fixed list.
// The first option is always "" (no constraint). Moving the cursor only
// updates the picker; the filter changes on enter.
type ChoiceMode struct {
	mode    types.Mode
	field   domain.FilterField
	options []string
	index   int
}

func NewCategoryMode() *ChoiceMode {
	return &ChoiceMode{mode: types.ModeCategory, field: domain.FilterCategory}
}

func NewMaterialMode() *ChoiceMode {
	return &ChoiceMode{mode: types.ModeMaterial, field: domain.FilterMaterial}
}

func (m *ChoiceMode) Name() string {
	return string(m.field)
}

// Field returns the dimension this picker edits
func (m *ChoiceMode) Field() domain.FilterField {
	return m.field
}

// Options returns the picker entries, "" first
func (m *ChoiceMode) Options() []string {
	return m.options
}

// CurrentIndex returns the highlighted option
func (m *ChoiceMode) CurrentIndex() int {
	return m.index
}

func (m *ChoiceMode) Enter(ctx types.Context) []types.Action {
	m.options = append([]string{""}, ctx.Options(m.field)...)
	m.index = 0
	current := ctx.Filters().Get(m.field)
	for i, option := range m.options {
		if option == current {
			m.index = i
			break
		}
	}
	return []types.Action{types.UpdateChoiceAction{Field: m.field, Index: m.index}}
}

func (m *ChoiceMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ChoiceMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc", "q":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true

	case "enter":
		return []types.Action{
			types.SetFilterAction{Field: m.field, Value: m.options[m.index]},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case "up", "k":
		m.index--
		if m.index < 0 {
			m.index = len(m.options) - 1
		}
		return []types.Action{types.UpdateChoiceAction{Field: m.field, Index: m.index}}, true

	case "down", "j":
		m.index++
		if m.index >= len(m.options) {
			m.index = 0
		}
		return []types.Action{types.UpdateChoiceAction{Field: m.field, Index: m.index}}, true
	}

	return nil, true
}
