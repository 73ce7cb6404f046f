package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"flightbook/internal/ui/input/types"
)

// ResultsMode browses and selects flight options
type ResultsMode struct{}

func NewResultsMode() *ResultsMode {
	return &ResultsMode{}
}

func (m *ResultsMode) Name() string {
	return "results"
}

func (m *ResultsMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ResultsMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ResultsMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.MoveCursorAction{Delta: -1}}, true

	case tea.KeyDown:
		return []types.Action{types.MoveCursorAction{Delta: 1}}, true

	case tea.KeyEsc, tea.KeyTab, tea.KeyShiftTab:
		return []types.Action{types.ChangeModeAction{Mode: types.ModeForm}}, true

	case tea.KeyCtrlS:
		return []types.Action{types.SubmitAction{}}, true

	case tea.KeyF1:
		return []types.Action{types.ToggleHelpAction{}}, true

	case tea.KeyCtrlO:
		return []types.Action{types.OpenHelpPagerAction{}}, true

	case tea.KeyEnter:
		return m.selectCurrent(ctx)
	}

	switch msg.String() {
	case "j":
		return []types.Action{types.MoveCursorAction{Delta: 1}}, true

	case "k":
		return []types.Action{types.MoveCursorAction{Delta: -1}}, true

	case " ":
		return m.selectCurrent(ctx)

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{}}, true
	}

	return nil, true
}

func (m *ResultsMode) selectCurrent(ctx types.Context) ([]types.Action, bool) {
	id := ctx.FlightIDAt(ctx.CursorIndex())
	if id == "" {
		return nil, true
	}
	return []types.Action{types.SelectFlightAction{ID: id}}, true
}
