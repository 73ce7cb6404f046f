package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title          lipgloss.Style
	Section        lipgloss.Style
	Label          lipgloss.Style
	FocusedLabel   lipgloss.Style
	Input          lipgloss.Style
	FocusedInput   lipgloss.Style
	Button         lipgloss.Style
	FocusedButton  lipgloss.Style
	DisabledButton lipgloss.Style
	ErrorBox       lipgloss.Style
	Dim            lipgloss.Style
	Status         lipgloss.Style
	Help           lipgloss.Style
	Main           lipgloss.Style
	Price          lipgloss.Style
	Cursor         lipgloss.Style
	Selected       lipgloss.Style
	SummaryBox     lipgloss.Style
	Popup          lipgloss.Style
	Spinner        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		FocusedLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		FocusedInput: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("226")).
			Padding(0, 1),
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("33")).
			Padding(0, 2),
		FocusedButton: lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("226")).
			Bold(true).
			Padding(0, 2),
		DisabledButton: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Background(lipgloss.Color("238")).
			Padding(0, 2),
		ErrorBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("203")).
			Foreground(lipgloss.Color("203")). // red
			Padding(0, 1).
			MarginTop(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Help: lipgloss.NewStyle().Faint(true).MarginTop(1),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Price:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true), // green
		Cursor:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		SummaryBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("78")).
			Padding(0, 1).
			MarginTop(1),
		Popup: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2),
		Spinner: lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
	}
}
