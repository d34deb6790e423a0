// Package preferences lets the learner switch the content language and
// reset all progress.
package preferences

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/janadahlmanns/OrganIQ/internal/config"
	"github.com/janadahlmanns/OrganIQ/internal/progression"
	"github.com/janadahlmanns/OrganIQ/internal/router"
	"github.com/janadahlmanns/OrganIQ/internal/store"
	"github.com/janadahlmanns/OrganIQ/internal/ui/layout"
	"github.com/janadahlmanns/OrganIQ/internal/ui/theme"
)

// Screen is the preferences view.
type Screen struct {
	ledger   *progression.Ledger
	store    *store.Store
	settings *config.Settings

	cursor       int
	confirmReset bool
	resetDone    bool
}

var _ router.Screen = (*Screen)(nil)

const (
	itemLanguage = iota
	itemReset
	itemCount
)

// New creates the preferences screen.
func New(ledger *progression.Ledger, st *store.Store, settings *config.Settings) *Screen {
	return &Screen{ledger: ledger, store: st, settings: settings}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.confirmReset {
		switch kmsg.String() {
		case "y", "enter":
			s.ledger.ResetProgress()
			s.store.ClearSession()
			s.confirmReset = false
			s.resetDone = true
		case "n", "esc":
			s.confirmReset = false
		}
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < itemCount-1 {
			s.cursor++
		}
	case "enter", "left", "right", "h", "l":
		switch s.cursor {
		case itemLanguage:
			s.toggleLanguage()
		case itemReset:
			if kmsg.String() == "enter" {
				s.confirmReset = true
				s.resetDone = false
			}
		}
	}
	return s, nil
}

// toggleLanguage flips between the two shipped languages and persists
// the choice.
func (s *Screen) toggleLanguage() {
	if s.settings.Language == config.LangEnglish {
		s.settings.Language = config.LangGerman
	} else {
		s.settings.Language = config.LangEnglish
	}
	s.store.SetPref(store.PrefLanguage, s.settings.Language)
}

func (s *Screen) View(width, height int) string {
	if s.confirmReset {
		body := theme.Body.Render("Reset all progress?") + "\n" +
			theme.Hint.Render("every lesson returns to its starting state") + "\n\n" +
			theme.Body.Render("  y)  yes, reset everything") + "\n" +
			theme.Body.Render("  n)  cancel")
		return centered(body, width, height)
	}

	langName := "English"
	if s.settings.Language == config.LangGerman {
		langName = "Deutsch"
	}

	rows := []string{
		"Content language:  ◂ " + langName + " ▸",
		"Reset all progress",
	}

	var body string
	for i, row := range rows {
		if i == s.cursor {
			body += theme.Selected.Render("  ▸ "+row) + "\n"
		} else {
			body += theme.Body.Render("    "+row) + "\n"
		}
	}

	if s.resetDone {
		body += "\n" + theme.Correct.Render("  progress has been reset")
	}

	title := theme.Title.Width(width).Render("Preferences")
	return centered(title+"\n\n"+body, width, height)
}

func centered(content string, width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (s *Screen) Title() string {
	return "Preferences"
}

// BlocksBack keeps Esc inside the reset confirmation instead of
// popping the screen.
func (s *Screen) BlocksBack() bool {
	return s.confirmReset
}

// KeyHints customizes the footer for this screen.
func (s *Screen) KeyHints() []layout.KeyHint {
	if s.confirmReset {
		return []layout.KeyHint{
			{Key: "Y", Description: "Reset"},
			{Key: "N", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
