package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"

	"luxegems/internal/config"
	"luxegems/internal/domain"
	"luxegems/internal/ui/input/types"
	"luxegems/internal/ui/router"
	"luxegems/internal/ui/state"
	"luxegems/internal/ui/views"
)

// StoreName is shown in the header
const StoreName = "LuxeGems"

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	config           *config.Config
	width            int
	height           int
	route            router.Route
	spinnerView      string
	picker           *views.PickerView
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(cfg *config.Config) *ViewModel {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &ViewModel{
		config:           cfg,
		route:            router.Catalog(),
		inputTransformer: NewInputTransformer(),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetRoute sets the page being shown
func (vm *ViewModel) SetRoute(route router.Route) {
	vm.route = route
}

// SetSpinner sets the current spinner frame
func (vm *ViewModel) SetSpinner(view string) {
	vm.spinnerView = view
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode types.Mode, ti *textinput.Model) {
	vm.inputTransformer.SetMode(mode, ti)
}

// SetPicker shows a choice picker, or hides it when options is nil
func (vm *ViewModel) SetPicker(field domain.FilterField, options []string, index int) {
	if options == nil {
		vm.picker = nil
		return
	}
	title := "Category"
	if field == domain.FilterMaterial {
		title = "Material"
	}
	vm.picker = &views.PickerView{Title: title, Options: options, Index: index}
}

// CardWidth is the inner width of a grid card
func (vm *ViewModel) CardWidth() int {
	if vm.config.UISettings.CardWidth <= 0 {
		return config.DefaultCardWidth
	}
	return vm.config.UISettings.CardWidth
}

// Columns is the number of cards per row at the current width
func (vm *ViewModel) Columns() int {
	return views.Columns(vm.width, vm.CardWidth())
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState(s state.AppState) views.ViewState {
	vs := views.ViewState{
		Width:         vm.width,
		Height:        vm.height,
		StoreName:     StoreName,
		Path:          vm.route.Path(),
		Filters:       s.Filters,
		Phase:         s.Fetch.Phase(),
		Items:         s.Fetch.Items,
		SelectedIndex: s.SelectedIndex,
		Total:         s.Fetch.Total,
		HasMore:       s.Fetch.HasMore,
		SpinnerView:   vm.spinnerView,
		StatusMessage: s.StatusMessage,
		InputMode:     vm.inputTransformer.GetInputModeString(),
		TextInput:     vm.inputTransformer.GetInputText(),
		Picker:        vm.picker,
		CardWidth:     vm.CardWidth(),
		Columns:       vm.Columns(),
	}

	switch vm.route.Page {
	case router.PageItem:
		vs.Screen = views.ScreenDetail
		vs.DetailID = vm.route.ItemID
		if item, ok := s.FindItem(vm.route.ItemID); ok {
			vs.Detail = &item
		}
	case router.PageLogin:
		vs.Screen = views.ScreenLogin
	}
	return vs
}
