package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"luxegems/internal/ui/input/types"
)

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	m.lastKeyWasG = false
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return navigate("up"), true

	case tea.KeyDown:
		return navigate("down"), true

	case tea.KeyLeft:
		return navigate("left"), true

	case tea.KeyRight:
		return navigate("right"), true

	case tea.KeyPgUp:
		return navigate("pageup"), true

	case tea.KeyPgDown:
		return navigate("pagedown"), true

	case tea.KeyHome:
		return navigate("home"), true

	case tea.KeyEnd:
		return navigate("end"), true

	case tea.KeyEnter:
		if id := ctx.CurrentItemID(); id != "" {
			return []types.Action{
				types.OpenItemAction{ItemID: id},
				types.ChangeModeAction{Mode: types.ModeDetail},
			}, true
		}
		return nil, true
	}

	key := msg.String()
	if key != "g" {
		m.lastKeyWasG = false
	}

	switch key {
	case "j":
		return navigate("down"), true

	case "k":
		return navigate("up"), true

	case "h":
		return navigate("left"), true

	case "l":
		return navigate("right"), true

	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch, Data: ctx.Filters().Search}}, true

	case "c":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeCategory}}, true

	case "m":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeMaterial}}, true

	case "x":
		if ctx.Filters().Active() {
			return []types.Action{types.ClearFiltersAction{}}, true
		}
		return nil, true

	case "r":
		return []types.Action{types.RefetchAction{}}, true

	case "L":
		return []types.Action{
			types.OpenLoginAction{},
			types.ChangeModeAction{Mode: types.ModeLogin},
		}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			m.lastKeyWasG = false
			return navigate("home"), true
		}
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	case "G":
		return navigate("end"), true
	}

	return nil, false
}

func navigate(direction string) []types.Action {
	return []types.Action{types.NavigateAction{Direction: direction}}
}
