// Package app wires the stores, ledger and screens together and runs
// the Bubble Tea program.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/janadahlmanns/OrganIQ/internal/config"
	"github.com/janadahlmanns/OrganIQ/internal/content"
	"github.com/janadahlmanns/OrganIQ/internal/progression"
	"github.com/janadahlmanns/OrganIQ/internal/router"
	"github.com/janadahlmanns/OrganIQ/internal/screens/home"
	"github.com/janadahlmanns/OrganIQ/internal/store"
	"github.com/janadahlmanns/OrganIQ/internal/ui/layout"
)

// Options carries the app's wired dependencies.
type Options struct {
	Store    *store.Store
	Content  *content.Store
	Ledger   *progression.Ledger
	Settings *config.Settings
}

// Model is the root Bubble Tea model.
type Model struct {
	router *router.Router
	ledger *progression.Ledger
	width  int
	height int
}

// NewModel creates the root model starting at the home screen.
func NewModel(opts Options) Model {
	homeScreen := home.New(opts.Content, opts.Ledger, opts.Store, opts.Settings)
	return Model{
		router: router.New(homeScreen),
		ledger: opts.Ledger,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Screens with unfinished work handle Esc themselves.
			if blocker, ok := m.router.Active().(router.BackBlocker); ok && blocker.BlocksBack() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.ledger.XP(), m.ledger.Crowns(), m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(router.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
