package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"luxegems/internal/domain"
)

// HelpRenderer builds the documents shown in the pager
type HelpRenderer struct {
	title   lipgloss.Style
	section lipgloss.Style
	key     lipgloss.Style
	desc    lipgloss.Style
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		key:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		desc: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}

type helpEntry struct {
	keys string
	desc string
}

var helpSections = []struct {
	name    string
	entries []helpEntry
}{
	{"Browsing", []helpEntry{
		{"↑/↓/←/→, hjkl", "Move between items"},
		{"PgUp/PgDn", "Page up/down"},
		{"gg/G", "First/last item"},
		{"Enter", "Open item details"},
		{"o", "Open item sheet (on details)"},
		{"Esc", "Back"},
	}},
	{"Filters", []helpEntry{
		{"/", "Search by name, code or description"},
		{"c", "Choose category"},
		{"m", "Choose material"},
		{"x", "Clear all filters"},
		{"r", "Reload items"},
	}},
	{"Other", []helpEntry{
		{"L", "Sign in"},
		{"?", "Show this help"},
		{"q", "Quit"},
	}},
}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent() string {
	var help strings.Builder

	help.WriteString(r.title.Render("LuxeGems Help"))
	help.WriteString("\n")

	for _, section := range helpSections {
		help.WriteString(r.section.Render(section.name))
		help.WriteString("\n")
		for _, e := range section.entries {
			help.WriteString(fmt.Sprintf("  %s  %s\n", r.key.Render(fmt.Sprintf("%-14s", e.keys)), r.desc.Render(e.desc)))
		}
	}

	return help.String()
}

// RenderItemSheet renders the full record of an item for the pager
func (r *HelpRenderer) RenderItemSheet(item domain.Item) string {
	var b strings.Builder
	b.WriteString(r.title.Render(item.Name))
	b.WriteString("\n")

	row := func(label, value string) {
		b.WriteString(fmt.Sprintf("  %s  %s\n", r.key.Render(fmt.Sprintf("%-10s", label)), r.desc.Render(value)))
	}
	row("ID", item.ID)
	row("Code", item.ItemCode)
	row("Category", item.Category)
	row("Material", item.Material)
	row("Status", string(item.Status))
	row("Price", item.DisplayPrice())
	row("Weight", fmt.Sprintf("%.2f g", item.Weight))
	if !item.CreatedAt.IsZero() {
		row("Created", item.CreatedAt.Format(time.RFC1123))
	}
	if !item.UpdatedAt.IsZero() {
		row("Updated", item.UpdatedAt.Format(time.RFC1123))
	}

	b.WriteString(r.section.Render("Images"))
	b.WriteString("\n")
	if len(item.Images) == 0 {
		b.WriteString("  none\n")
	}
	for _, url := range item.Images {
		b.WriteString("  " + url + "\n")
	}

	if item.Description != "" {
		b.WriteString(r.section.Render("Description"))
		b.WriteString("\n")
		b.WriteString(item.Description)
		b.WriteString("\n")
	}
	return b.String()
}

// PagerOps runs the ov pager on behalf of the program
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program reference for terminal management
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// Available reports whether the terminal can be handed to the pager
func (p *PagerOps) Available() bool {
	return p != nil && p.program != nil
}

// Show displays content using ov pager
func (p *PagerOps) Show(content string) error {
	if !p.Available() {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return fmt.Errorf("failed to release terminal: %w", err)
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("failed to open pager: %w", err)
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
