package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles boxed overlays: pickers and placeholder screens
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// PickerView is the data shown by a choice picker
type PickerView struct {
	Title   string
	Options []string // "" is rendered as "All"
	Index   int
}

// RenderPicker renders the option list with the highlighted entry marked
func (pr *PopupRenderer) RenderPicker(p PickerView) string {
	var b strings.Builder
	b.WriteString(pr.styles.DetailLabel.Render(p.Title))
	for i, option := range p.Options {
		label := option
		if label == "" {
			label = "All"
		}
		b.WriteString("\n")
		if i == p.Index {
			b.WriteString(pr.styles.PickerSelected.Render("▸ " + label))
		} else {
			b.WriteString("  " + label)
		}
	}
	b.WriteString("\n")
	b.WriteString(pr.styles.Help.Render("↑/↓ choose • enter apply • esc cancel"))
	return pr.styles.Picker.Render(b.String())
}

// RenderCentered places a styled box in the middle of the screen
func (pr *PopupRenderer) RenderCentered(content string, width, height int, style lipgloss.Style) string {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	box := style.Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
