package views

import (
	"github.com/charmbracelet/lipgloss"

	"luxegems/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title          lipgloss.Style
	Dim            lipgloss.Style
	Status         lipgloss.Style
	Filter         lipgloss.Style
	FilterLabel    lipgloss.Style
	Help           lipgloss.Style
	Main           lipgloss.Style
	Scroll         lipgloss.Style
	Loading        lipgloss.Style
	Empty          lipgloss.Style
	Card           lipgloss.Style
	CardSelected   lipgloss.Style
	Name           lipgloss.Style
	Code           lipgloss.Style
	Price          lipgloss.Style
	Badge          lipgloss.Style
	Picker         lipgloss.Style
	PickerSelected lipgloss.Style
	DetailBox      lipgloss.Style
	DetailLabel    lipgloss.Style
	InfoBox        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Filter:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		FilterLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Help:        lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Loading: lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		Empty:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1).
			MarginRight(1),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1).
			MarginRight(1),
		Name:  lipgloss.NewStyle().Bold(true),
		Code:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Price: lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238")).
			Padding(0, 1),
		Picker: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		PickerSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Bold(true),
		DetailBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2),
		DetailLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(1, 2),
	}
}

// StatusColor returns the badge color for an item status
func StatusColor(status domain.ItemStatus) string {
	switch status {
	case domain.StatusAvailable:
		return "78" // green
	case domain.StatusReserved:
		return "214" // yellow
	default:
		return "245" // grey
	}
}

// StatusBadge renders an item status as a colored badge
func (s *Styles) StatusBadge(status domain.ItemStatus) string {
	label := string(status)
	if label == "" {
		label = "unknown"
	}
	return s.Badge.
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color(StatusColor(status))).
		Render(label)
}
