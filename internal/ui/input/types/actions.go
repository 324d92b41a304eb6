package types

import "luxegems/internal/domain"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "left", "right", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
	Mode Mode // Which mode owns the text input
}

func (a UpdateTextAction) Type() string { return "update_text" }

// Filter actions
type SetFilterAction struct {
	Field domain.FilterField
	Value string
}

func (a SetFilterAction) Type() string { return "set_filter" }

type ClearFiltersAction struct{}

func (a ClearFiltersAction) Type() string { return "clear_filters" }

type RefetchAction struct{}

func (a RefetchAction) Type() string { return "refetch" }

// Picker cursor moved
type UpdateChoiceAction struct {
	Field domain.FilterField
	Index int
}

func (a UpdateChoiceAction) Type() string { return "update_choice" }

// Routing actions
type OpenItemAction struct {
	ItemID string
}

func (a OpenItemAction) Type() string { return "open_item" }

type OpenLoginAction struct{}

func (a OpenLoginAction) Type() string { return "open_login" }

type BackAction struct{}

func (a BackAction) Type() string { return "back" }

// Pager actions
type OpenPagerAction struct {
	ItemID string
}

func (a OpenPagerAction) Type() string { return "open_pager" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
