package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"flightbook/internal/booking"
	"flightbook/internal/domain"
	"flightbook/internal/ui/state"
	"flightbook/pkg/currency"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Criteria domain.SearchCriteria
	Inputs   map[domain.Field]string // rendered text inputs
	Focus    state.Focus
	FormMode bool // false while browsing results

	Booking booking.State
	Summary booking.Summary
	Cursor  int

	Spinner        string
	StatusMessage  string
	HelpFooter     string
	CurrencySymbol string

	ShowHelp    bool
	HelpContent string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// Styles exposes the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render renders the complete page
func (r *Renderer) Render(vs ViewState) string {
	var b strings.Builder

	b.WriteString(r.styles.Title.Render("Flight Booking"))
	b.WriteString("\n")
	b.WriteString(r.renderForm(vs))
	b.WriteString("\n")
	b.WriteString(r.renderSubmit(vs))

	switch st := vs.Booking.(type) {
	case booking.Failed:
		b.WriteString("\n")
		b.WriteString(r.styles.ErrorBox.Render(st.Message))
	case booking.Success:
		b.WriteString("\n")
		b.WriteString(r.renderResults(vs, st))
	}

	if vs.Summary.HasSelection() {
		b.WriteString("\n")
		b.WriteString(r.renderSummary(vs))
	}

	if vs.StatusMessage != "" {
		b.WriteString("\n")
		b.WriteString(r.styles.Status.Render(vs.StatusMessage))
	}
	if vs.HelpFooter != "" {
		b.WriteString("\n")
		b.WriteString(r.styles.Help.Render(vs.HelpFooter))
	}

	content := r.styles.Main.Render(b.String())
	if vs.ShowHelp && vs.Width > 0 {
		return r.popupRender.RenderPopupOverlay(content, vs.HelpContent, vs.Height, vs.Width)
	}
	return content
}

func (r *Renderer) renderForm(vs ViewState) string {
	var b strings.Builder

	switchMark := "○"
	if vs.Criteria.IsRoundtrip {
		switchMark = "●"
	}
	b.WriteString(r.label(vs, state.FocusRoundtrip, fmt.Sprintf("%s %s", switchMark, domain.FieldIsRoundtrip.Label())))
	b.WriteString("\n")

	for _, f := range state.FocusOrder(vs.Criteria.IsRoundtrip) {
		field, ok := f.Field()
		if !ok || !field.IsText() {
			continue
		}
		b.WriteString(r.label(vs, f, field.Label()))
		b.WriteString("\n")
		style := r.styles.Input
		if vs.FormMode && vs.Focus == f {
			style = r.styles.FocusedInput
		}
		b.WriteString(style.Render(vs.Inputs[field]))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) label(vs ViewState, f state.Focus, text string) string {
	if vs.FormMode && vs.Focus == f {
		return r.styles.FocusedLabel.Render("› " + text)
	}
	return r.styles.Label.Render("  " + text)
}

func (r *Renderer) renderSubmit(vs ViewState) string {
	if vs.Booking != nil && vs.Booking.Status() == booking.StatusSubmitting {
		return r.styles.DisabledButton.Render("Searching...") + " " + r.styles.Spinner.Render(vs.Spinner)
	}
	if vs.FormMode && vs.Focus == state.FocusSubmit {
		return r.styles.FocusedButton.Render("Search Flights")
	}
	return r.styles.Button.Render("Search Flights")
}

func (r *Renderer) renderResults(vs ViewState, st booking.Success) string {
	var b strings.Builder
	b.WriteString(r.styles.Section.Render("Available Flights"))
	b.WriteString("\n")

	if len(st.Results) == 0 {
		b.WriteString(r.styles.Dim.Render("No flights found."))
		return b.String()
	}

	airlineW, durationW := 0, 0
	for _, f := range st.Results {
		airlineW = max(airlineW, lipgloss.Width(f.Airline))
		durationW = max(durationW, lipgloss.Width(f.Duration))
	}

	for i, f := range st.Results {
		action := "[Select]"
		if f.ID == st.SelectedID {
			action = r.styles.Selected.Render("[Selected]")
		}
		line := fmt.Sprintf("%-*s  %-*s  %s  %s",
			airlineW, f.Airline,
			durationW, f.Duration,
			r.styles.Price.Render(currency.Format(vs.CurrencySymbol, f.Price)),
			action)

		if !vs.FormMode && i == vs.Cursor {
			line = r.styles.Cursor.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		if i < len(st.Results)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (r *Renderer) renderSummary(vs ViewState) string {
	f := vs.Summary.SelectedFlight
	lines := []string{
		r.styles.Section.UnsetMarginTop().Render("Booking Summary"),
		fmt.Sprintf("Flight:     %s", f.Airline),
		fmt.Sprintf("Duration:   %s", f.Duration),
		fmt.Sprintf("Passengers: %d", vs.Summary.Passengers),
		fmt.Sprintf("Total:      %s", r.styles.Price.Render(currency.Format(vs.CurrencySymbol, vs.Summary.TotalPrice))),
	}
	return r.styles.SummaryBox.Render(strings.Join(lines, "\n"))
}
