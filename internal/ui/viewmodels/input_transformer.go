package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"

	"luxegems/internal/ui/input/types"
)

// InputTransformer turns the active input mode into prompt text for the view
type InputTransformer struct {
	mode      types.Mode
	textInput *textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer() *InputTransformer {
	return &InputTransformer{mode: types.ModeNormal}
}

// SetMode sets the current input mode and the text input it owns
func (it *InputTransformer) SetMode(mode types.Mode, ti *textinput.Model) {
	it.mode = mode
	it.textInput = ti
}

// GetInputText returns the current text input string for the view
func (it *InputTransformer) GetInputText() string {
	if it.mode != types.ModeSearch || it.textInput == nil {
		return ""
	}
	return "Search: " + it.textInput.View()
}

// GetInputModeString returns the mode name while text is being edited
func (it *InputTransformer) GetInputModeString() string {
	if it.mode == types.ModeSearch {
		return it.mode.String()
	}
	return ""
}
