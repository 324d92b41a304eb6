package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"luxegems/internal/domain"
)

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeCategory
	ModeMaterial
	ModeDetail
	ModeLogin
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeSearch:
		return "search"
	case ModeCategory:
		return "category"
	case ModeMaterial:
		return "material"
	case ModeDetail:
		return "detail"
	case ModeLogin:
		return "login"
	}
	return "unknown"
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	CurrentIndex() int
	TotalItems() int
	Columns() int
	CurrentItemID() string
	Filters() domain.FilterState
	Options(field domain.FilterField) []string
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
