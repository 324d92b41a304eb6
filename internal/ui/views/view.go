package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"luxegems/internal/domain"
	"luxegems/internal/ui/state"
)

// EmptyMessage is shown when a settled listing has no items
const EmptyMessage = "No items found matching your criteria."

// Screen selects the page being rendered
type Screen int

const (
	ScreenCatalog Screen = iota
	ScreenDetail
	ScreenLogin
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	StoreName     string
	Screen        Screen
	Path          string
	Filters       domain.FilterState
	Phase         state.Phase
	Items         []domain.Item
	SelectedIndex int
	Total         int
	HasMore       bool
	SpinnerView   string
	StatusMessage string
	InputMode     string
	TextInput     string
	Picker        *PickerView
	DetailID      string
	Detail        *domain.Item
	CardWidth     int
	Columns       int
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	gridRender  *GridRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(showImageURLs bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		gridRender:  NewGridRenderer(styles, NewCardRenderer(styles, showImageURLs)),
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(vs ViewState) string {
	switch vs.Screen {
	case ScreenDetail:
		return r.styles.Main.Render(r.renderHeader(vs) + "\n\n" + r.renderDetail(vs))
	case ScreenLogin:
		return r.renderLogin(vs)
	}

	content := &strings.Builder{}
	content.WriteString(r.renderHeader(vs))
	content.WriteString("\n")
	content.WriteString(r.renderFilterBar(vs.Filters))
	content.WriteString("\n")

	if vs.Picker != nil {
		content.WriteString(r.popupRender.RenderPicker(*vs.Picker))
		content.WriteString("\n")
	} else if vs.InputMode != "" {
		content.WriteString(vs.TextInput)
		content.WriteString("\n")
	}
	content.WriteString("\n")

	used := strings.Count(content.String(), "\n")
	// Container padding, status line and help line
	gridHeight := vs.Height - used - 2 - 3
	content.WriteString(r.RenderItems(vs, gridHeight))
	content.WriteString("\n\n")
	content.WriteString(r.renderStatusLine(vs))
	content.WriteString("\n")
	content.WriteString(r.styles.Help.Render("Press ? for help"))

	mainStyle := r.styles.Main
	if vs.Height > 0 {
		mainStyle = mainStyle.MaxHeight(vs.Height)
	}
	return mainStyle.Render(content.String())
}

// RenderItems renders exactly one of the loading indicator, the empty
// message or the item grid
func (r *Renderer) RenderItems(vs ViewState, height int) string {
	switch vs.Phase {
	case state.PhaseLoading:
		return r.styles.Loading.Render(strings.TrimSpace(vs.SpinnerView + " Loading items..."))
	case state.PhaseEmpty:
		return r.styles.Empty.Render(EmptyMessage)
	default:
		return r.gridRender.RenderGrid(vs.Items, vs.SelectedIndex, vs.Columns, vs.CardWidth, height)
	}
}

func (r *Renderer) renderHeader(vs ViewState) string {
	logo := r.styles.Title.Render(vs.StoreName)
	right := r.styles.Dim.Render(vs.Path)

	termWidth := vs.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	padding := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}

func (r *Renderer) renderFilterBar(f domain.FilterState) string {
	value := func(v string) string {
		if v == "" {
			return r.styles.Dim.Render("All")
		}
		return r.styles.Filter.Render(v)
	}
	search := r.styles.Dim.Render("—")
	if f.Search != "" {
		search = r.styles.Filter.Render(fmt.Sprintf("%q", f.Search))
	}
	return fmt.Sprintf("%s %s   %s %s   %s %s",
		r.styles.FilterLabel.Render("Category:"), value(f.Category),
		r.styles.FilterLabel.Render("Material:"), value(f.Material),
		r.styles.FilterLabel.Render("Search:"), search)
}

func (r *Renderer) renderStatusLine(vs ViewState) string {
	var parts []string
	if vs.Phase == state.PhasePopulated {
		if vs.Total > 0 {
			parts = append(parts, fmt.Sprintf("%d of %d items", len(vs.Items), vs.Total))
		} else {
			parts = append(parts, fmt.Sprintf("%d items", len(vs.Items)))
		}
		if vs.HasMore {
			parts = append(parts, "more available")
		}
	}
	if vs.StatusMessage != "" {
		parts = append(parts, vs.StatusMessage)
	}
	return r.styles.Status.Render(strings.Join(parts, " • "))
}

func (r *Renderer) renderDetail(vs ViewState) string {
	if vs.Detail == nil {
		msg := fmt.Sprintf("Item %s is not in the current listing.", vs.DetailID)
		return r.styles.Empty.Render(msg) + "\n\n" + r.styles.Help.Render("esc back")
	}
	item := vs.Detail
	label := func(s string) string {
		return r.styles.DetailLabel.Render(fmt.Sprintf("%-12s", s))
	}

	var b strings.Builder
	b.WriteString(r.styles.Name.Render(item.Name))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s\n", label("Code"), item.ItemCode)
	fmt.Fprintf(&b, "%s %s\n", label("Category"), item.Category)
	fmt.Fprintf(&b, "%s %s\n", label("Material"), item.Material)
	fmt.Fprintf(&b, "%s %s\n", label("Status"), r.styles.StatusBadge(item.Status))
	fmt.Fprintf(&b, "%s %s\n", label("Price"), r.styles.Price.Render(item.DisplayPrice()))
	fmt.Fprintf(&b, "%s %.2f g\n", label("Weight"), item.Weight)
	if !item.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "%s %s\n", label("Listed"), item.CreatedAt.Format("2006-01-02"))
	}
	if len(item.Images) == 0 {
		fmt.Fprintf(&b, "%s %s\n", label("Images"), ImagePlaceholder)
	} else {
		for i, url := range item.Images {
			name := ""
			if i == 0 {
				name = "Images"
			}
			fmt.Fprintf(&b, "%s %s\n", label(name), url)
		}
	}
	if item.Description != "" {
		b.WriteString("\n")
		b.WriteString(item.Description)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(r.styles.Help.Render("o open item sheet • esc back"))

	return r.styles.DetailBox.Render(b.String())
}

func (r *Renderer) renderLogin(vs ViewState) string {
	content := r.styles.Title.Render("Sign in") + "\n\n" +
		"Accounts are managed on the LuxeGems website.\n" +
		"Sign-in is not available in the terminal storefront.\n\n" +
		r.styles.Help.Render("esc back")
	return r.popupRender.RenderCentered(content, vs.Width, vs.Height, r.styles.InfoBox)
}
