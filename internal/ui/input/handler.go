package input

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"flightbook/internal/domain"
	"flightbook/internal/ui/input/modes"
	"flightbook/internal/ui/input/types"
	"flightbook/internal/ui/state"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	inputs      map[domain.Field]*textinput.Model // one text input per text field
	focused     domain.Field                      // field whose input has focus, "" for none
}

// New creates a handler whose inputs start with the values of c
func New(c domain.SearchCriteria) *Handler {
	h := &Handler{
		currentMode: types.ModeForm,
		modes:       make(map[types.Mode]types.ModeHandler),
		inputs:      make(map[domain.Field]*textinput.Model),
	}

	h.inputs[domain.FieldDestination] = newInput("Where to?", 64, c.Destination)
	h.inputs[domain.FieldDepartureDate] = newInput("YYYY-MM-DD", 10, c.DepartureDate)
	h.inputs[domain.FieldReturnDate] = newInput("YYYY-MM-DD", 10, c.ReturnDate)
	h.inputs[domain.FieldPassengerCount] = newInput("1-9", 1, FormatPassengers(c.PassengerCount))

	// Register all mode handlers
	h.modes[types.ModeForm] = modes.NewFormMode()
	h.modes[types.ModeResults] = modes.NewResultsMode()

	return h
}

func newInput(placeholder string, limit int, value string) *textinput.Model {
	ti := textinput.New()
	ti.Prompt = "" // Prompt is handled in the UI layer
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 32
	ti.SetValue(value)
	return &ti
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	var allActions []types.Action
	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			allActions = append(allActions, h.switchMode(changeMode.Mode, ctx)...)
		} else {
			allActions = append(allActions, action)
		}
	}

	if consumed || h.currentMode != types.ModeForm {
		return allActions, nil
	}

	// Unconsumed form keys go to the focused text input
	field, ok := ctx.Focus().Field()
	if !ok || !field.IsText() {
		return allActions, nil
	}
	edit, cmd := h.typeInto(field, msg)
	if edit != nil {
		allActions = append(allActions, *edit)
	}
	return allActions, cmd
}

func (h *Handler) switchMode(mode types.Mode, ctx types.Context) []types.Action {
	var actions []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	if mode != types.ModeForm {
		h.blurAll()
	}
	return actions
}

// typeInto applies msg to the input of field, returning an edit when the
// text changed
func (h *Handler) typeInto(field domain.Field, msg tea.KeyMsg) (*types.EditTextAction, tea.Cmd) {
	ti := h.inputs[field]
	if ti == nil || !accepts(field, msg) {
		return nil, nil
	}

	before := ti.Value()
	var cmd tea.Cmd
	if field == domain.FieldPassengerCount && msg.Type == tea.KeyRunes {
		// A single digit replaces the current count
		ti.SetValue(string(msg.Runes[len(msg.Runes)-1]))
		ti.CursorEnd()
	} else {
		*ti, cmd = ti.Update(msg)
	}

	if ti.Value() == before {
		return nil, cmd
	}
	return &types.EditTextAction{Field: field, Text: ti.Value()}, cmd
}

// accepts filters typed characters per field. Editing keys always pass.
func accepts(field domain.Field, msg tea.KeyMsg) bool {
	if msg.Type == tea.KeySpace {
		return field == domain.FieldDestination
	}
	if msg.Type != tea.KeyRunes {
		return true
	}
	for _, r := range msg.Runes {
		switch field {
		case domain.FieldDepartureDate, domain.FieldReturnDate:
			if (r < '0' || r > '9') && r != '-' {
				return false
			}
		case domain.FieldPassengerCount:
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return true
}

// SyncFocus focuses the input behind f and blurs the rest
func (h *Handler) SyncFocus(f state.Focus) tea.Cmd {
	field, ok := f.Field()
	if !ok || !field.IsText() || h.currentMode != types.ModeForm {
		h.blurAll()
		return nil
	}
	if h.focused == field {
		return nil
	}
	h.blurAll()
	h.focused = field
	return h.inputs[field].Focus()
}

func (h *Handler) blurAll() {
	for _, ti := range h.inputs {
		ti.Blur()
	}
	h.focused = ""
}

// Update handles non-keyboard messages for the focused text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.focused == "" {
		return nil
	}
	var cmd tea.Cmd
	*h.inputs[h.focused], cmd = h.inputs[h.focused].Update(msg)
	return cmd
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// ModeName returns the display name of the current mode
func (h *Handler) ModeName() string {
	if m := h.modes[h.currentMode]; m != nil {
		return m.Name()
	}
	return ""
}

// ChangeMode switches mode outside of key handling, e.g. when results arrive
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) {
	if mode == h.currentMode {
		return
	}
	h.switchMode(mode, ctx)
}

// InputView renders the text input of field
func (h *Handler) InputView(field domain.Field) string {
	if ti := h.inputs[field]; ti != nil {
		return ti.View()
	}
	return ""
}

// Value returns the raw text of field's input
func (h *Handler) Value(field domain.Field) string {
	if ti := h.inputs[field]; ti != nil {
		return ti.Value()
	}
	return ""
}

// ParsePassengers converts the passenger input to a count. Empty or
// unparsable text is 0.
func ParsePassengers(text string) int {
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0
	}
	return n
}

// FormatPassengers is the inverse of ParsePassengers for display
func FormatPassengers(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}
