package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

type helpEntry struct {
	keys string
	desc string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

var helpSections = []helpSection{
	{"Search Form", []helpEntry{
		{"Tab/↓", "Next field"},
		{"Shift+Tab/↑", "Previous field"},
		{"Space", "Toggle roundtrip (on the switch)"},
		{"Enter", "Search (on the button) or next field"},
		{"Ctrl+S", "Search from anywhere"},
		{"Esc", "Browse the flight list"},
	}},
	{"Flight List", []helpEntry{
		{"↑/↓, j/k", "Move between flights"},
		{"Enter/Space", "Select flight"},
		{"Esc/Tab", "Back to the form"},
		{"q", "Quit"},
	}},
	{"Other", []helpEntry{
		{"?/F1", "Toggle this help"},
		{"Ctrl+O", "Open help in pager"},
		{"Ctrl+C", "Quit"},
	}},
}

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	title   lipgloss.Style
	section lipgloss.Style
	key     lipgloss.Style
	desc    lipgloss.Style
	dim     lipgloss.Style
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).MarginBottom(1),
		section: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1),
		key:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		desc:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// RenderHelpContentPlain generates the full help with colors for the pager
func (r *HelpRenderer) RenderHelpContentPlain() string {
	width := 0
	for _, s := range helpSections {
		for _, e := range s.entries {
			width = max(width, lipgloss.Width(e.keys))
		}
	}

	var help strings.Builder
	help.WriteString(r.title.Render("Flight Booking Help"))
	help.WriteString("\n")
	for i, s := range helpSections {
		help.WriteString(r.section.Render(s.title))
		help.WriteString("\n")
		for _, e := range s.entries {
			pad := strings.Repeat(" ", width-lipgloss.Width(e.keys))
			help.WriteString(fmt.Sprintf("  %s%s  %s\n", r.key.Render(e.keys), pad, r.desc.Render(e.desc)))
		}
		if i < len(helpSections)-1 {
			help.WriteString("\n")
		}
	}
	return strings.TrimRight(help.String(), "\n")
}

// renderHelpContent renders the help window that fits into height, starting
// at scrollOffset
func (r *HelpRenderer) renderHelpContent(height int, scrollOffset int) string {
	content := r.RenderHelpContentPlain()
	lines := strings.Split(content, "\n")
	totalLines := len(lines)

	// Account for popup border and padding
	visibleHeight := height - 6
	if visibleHeight < 5 {
		visibleHeight = 5
	}
	if totalLines <= visibleHeight {
		return content
	}

	maxOffset := totalLines - visibleHeight
	if scrollOffset > maxOffset {
		scrollOffset = maxOffset
	}
	if scrollOffset < 0 {
		scrollOffset = 0
	}

	visibleLines := lines[scrollOffset : scrollOffset+visibleHeight]
	if scrollOffset > 0 {
		visibleLines[0] = r.dim.Render("↑ (more above)")
	}
	if scrollOffset+visibleHeight < totalLines {
		visibleLines[len(visibleLines)-1] = r.dim.Render("↓ (more below)")
	}
	return strings.Join(visibleLines, "\n")
}

// keyMap is the footer key map for a form or results screen
type keyMap struct {
	short []key.Binding
}

func (k keyMap) ShortHelp() []key.Binding { return k.short }

func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.short} }

var (
	formKeys = keyMap{short: []key.Binding{
		key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next field")),
		key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "search")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "flights")),
		key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}}
	resultsKeys = keyMap{short: []key.Binding{
		key.NewBinding(key.WithKeys("j", "k", "up", "down"), key.WithHelp("j/k", "move")),
		key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "form")),
		key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}}
)

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
