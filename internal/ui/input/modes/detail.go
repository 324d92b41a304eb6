package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"luxegems/internal/ui/input/types"
)

// RouteMode handles screens reached by navigation (item detail, login).
// They share the way back to the catalog.
type RouteMode struct {
	name      string
	withPager bool
}

func NewDetailMode() *RouteMode {
	return &RouteMode{name: "detail", withPager: true}
}

func NewLoginMode() *RouteMode {
	return &RouteMode{name: "login"}
}

func (m *RouteMode) Name() string {
	return m.name
}

func (m *RouteMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *RouteMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *RouteMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc", "backspace", "left", "h", "q":
		return []types.Action{
			types.BackAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case "o", "enter":
		if m.withPager {
			return []types.Action{types.OpenPagerAction{ItemID: ctx.CurrentItemID()}}, true
		}

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	}
	return nil, true
}
