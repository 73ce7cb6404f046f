package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"flightbook/internal/ui/input/types"
	"flightbook/internal/ui/state"
)

// FormMode edits the search criteria. Keys it does not consume are typed
// into the focused text input by the handler.
type FormMode struct{}

func NewFormMode() *FormMode {
	return &FormMode{}
}

func (m *FormMode) Name() string {
	return "form"
}

func (m *FormMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *FormMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *FormMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyTab, tea.KeyDown:
		return []types.Action{types.FocusNextAction{}}, true

	case tea.KeyShiftTab, tea.KeyUp:
		return []types.Action{types.FocusPrevAction{}}, true

	case tea.KeyCtrlS:
		return []types.Action{types.SubmitAction{}}, true

	case tea.KeyF1:
		return []types.Action{types.ToggleHelpAction{}}, true

	case tea.KeyCtrlO:
		return []types.Action{types.OpenHelpPagerAction{}}, true

	case tea.KeyEsc:
		if ctx.ResultCount() > 0 {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeResults}}, true
		}
		return nil, true

	case tea.KeyEnter:
		switch ctx.Focus() {
		case state.FocusSubmit:
			return []types.Action{types.SubmitAction{}}, true
		case state.FocusRoundtrip:
			return []types.Action{types.ToggleRoundtripAction{}}, true
		}
		return []types.Action{types.FocusNextAction{}}, true
	}

	// Space acts on the switch and the button, and is text elsewhere
	if msg.String() == " " {
		switch ctx.Focus() {
		case state.FocusRoundtrip:
			return []types.Action{types.ToggleRoundtripAction{}}, true
		case state.FocusSubmit:
			return []types.Action{types.SubmitAction{}}, true
		}
	}

	return nil, false
}
