package types

import "flightbook/internal/domain"

// Form actions
type FocusNextAction struct{}

func (a FocusNextAction) Type() string { return "focus_next" }

type FocusPrevAction struct{}

func (a FocusPrevAction) Type() string { return "focus_prev" }

type ToggleRoundtripAction struct{}

func (a ToggleRoundtripAction) Type() string { return "toggle_roundtrip" }

// EditTextAction carries the new raw text of a form input
type EditTextAction struct {
	Field domain.Field
	Text  string
}

func (a EditTextAction) Type() string { return "edit_text" }

type SubmitAction struct{}

func (a SubmitAction) Type() string { return "submit" }

// Results actions
type MoveCursorAction struct {
	Delta int
}

func (a MoveCursorAction) Type() string { return "move_cursor" }

type SelectFlightAction struct {
	ID string
}

func (a SelectFlightAction) Type() string { return "select_flight" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Other actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type OpenHelpPagerAction struct{}

func (a OpenHelpPagerAction) Type() string { return "open_help_pager" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
