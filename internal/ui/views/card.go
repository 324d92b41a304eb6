package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"luxegems/internal/domain"
)

// ImagePlaceholder is shown on cards for items without images
const ImagePlaceholder = "◇ no image"

// cardLines is the content height of a card, borders excluded
const cardLines = 5

// CardRenderer handles rendering of item cards
type CardRenderer struct {
	styles        *Styles
	showImageURLs bool
}

// NewCardRenderer creates a new card renderer
func NewCardRenderer(styles *Styles, showImageURLs bool) *CardRenderer {
	return &CardRenderer{
		styles:        styles,
		showImageURLs: showImageURLs,
	}
}

// RenderCard renders one grid card. width is the inner text width.
func (c *CardRenderer) RenderCard(item domain.Item, isSelected bool, width int) string {
	if width < 8 {
		width = 8
	}

	name := c.styles.Name.Render(truncate(item.Name, width))
	code := c.styles.Code.Render(truncate(item.ItemCode, width))

	badges := c.styles.StatusBadge(item.Status)
	if item.Material != "" {
		badges = c.styles.Badge.Render(item.Material) + " " + badges
	}

	price := c.styles.Price.Render(item.DisplayPrice())

	image := ImagePlaceholder
	if url := item.PrimaryImage(); url != "" {
		if c.showImageURLs {
			image = truncate(url, width)
		} else {
			image = "▣ image"
		}
	}
	image = c.styles.Dim.Render(image)

	body := strings.Join([]string{name, code, badges, price, image}, "\n")

	style := c.styles.Card
	if isSelected {
		style = c.styles.CardSelected
	}
	// Width includes the horizontal padding in lipgloss
	return style.Width(width + 2).Height(cardLines).Render(body)
}

// CardOuterWidth is the horizontal space one card occupies in the grid
func CardOuterWidth(width int) int {
	// text + padding + border + margin
	return width + 2 + 2 + 1
}

// CardOuterHeight is the vertical space one card occupies in the grid
func CardOuterHeight() int {
	return cardLines + 2
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
