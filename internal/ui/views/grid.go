package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"luxegems/internal/domain"
)

// GridRenderer lays cards out in rows
type GridRenderer struct {
	styles *Styles
	cards  *CardRenderer
}

// NewGridRenderer creates a new grid renderer
func NewGridRenderer(styles *Styles, cards *CardRenderer) *GridRenderer {
	return &GridRenderer{
		styles: styles,
		cards:  cards,
	}
}

// Columns returns how many cards fit across the given terminal width
func Columns(termWidth, cardWidth int) int {
	if termWidth <= 0 {
		termWidth = 80
	}
	// Main container padding is 2 on each side
	cols := (termWidth - 4) / CardOuterWidth(cardWidth)
	if cols < 1 {
		return 1
	}
	return cols
}

// VisibleRows returns how many card rows fit in the given height
func VisibleRows(height int) int {
	rows := height / CardOuterHeight()
	if rows < 1 {
		return 1
	}
	return rows
}

// RenderGrid renders the rows around the selected card that fit in height
func (g *GridRenderer) RenderGrid(items []domain.Item, selected, cols, cardWidth, height int) string {
	if cols < 1 {
		cols = 1
	}
	totalRows := (len(items) + cols - 1) / cols
	visible := VisibleRows(height)

	// Keep the selected row on screen
	selectedRow := selected / cols
	first := 0
	if selectedRow >= visible {
		first = selectedRow - visible + 1
	}
	last := first + visible
	if last > totalRows {
		last = totalRows
	}

	var rows []string
	if first > 0 {
		rows = append(rows, g.styles.Scroll.Render(fmt.Sprintf("↑ %d more rows above ↑", first)))
	}
	for row := first; row < last; row++ {
		var cards []string
		for col := 0; col < cols; col++ {
			i := row*cols + col
			if i >= len(items) {
				break
			}
			cards = append(cards, g.cards.RenderCard(items[i], i == selected, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	if last < totalRows {
		rows = append(rows, g.styles.Scroll.Render(fmt.Sprintf("↓ %d more rows below ↓", totalRows-last)))
	}

	return strings.Join(rows, "\n")
}
