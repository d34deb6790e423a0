// Package summary shows the outcome of a finished lesson attempt.
package summary

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/janadahlmanns/OrganIQ/internal/config"
	"github.com/janadahlmanns/OrganIQ/internal/content"
	"github.com/janadahlmanns/OrganIQ/internal/progression"
	"github.com/janadahlmanns/OrganIQ/internal/router"
	"github.com/janadahlmanns/OrganIQ/internal/ui/layout"
	"github.com/janadahlmanns/OrganIQ/internal/ui/theme"
)

// Stats is the outcome of one lesson attempt.
type Stats struct {
	TopicID     string
	LessonID    string
	Steps       int
	Incorrect   int
	XPEarned    int
	CrownEarned bool
}

// Screen shows the attempt outcome until the learner continues.
type Screen struct {
	stats    Stats
	settings *config.Settings
}

var _ router.Screen = (*Screen)(nil)

// New creates a summary screen for the given outcome.
func New(stats Stats, settings *config.Settings) *Screen {
	return &Screen{stats: stats, settings: settings}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	correct := s.stats.Steps - s.stats.Incorrect

	headline := "Lesson complete!"
	style := theme.Title
	if s.stats.Incorrect == 0 {
		headline = "Flawless!"
		style = theme.Perfect.Align(lipgloss.Center)
	}

	lines := style.Width(width).Render(headline) + "\n\n" +
		theme.Body.Render(fmt.Sprintf("%d of %d correct", correct, s.stats.Steps)) + "\n" +
		lipgloss.NewStyle().Foreground(theme.Accent).
			Render(fmt.Sprintf("✦ +%d XP", s.stats.XPEarned))

	if s.stats.CrownEarned {
		lines += "\n" + theme.Perfect.Render("♛ crown earned")
	}

	lines += "\n\n" + theme.Hint.Render("enter returns to the lesson list")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(lines)
}

func (s *Screen) Title() string {
	name := "Lesson " + s.stats.LessonID
	if s.stats.LessonID == progression.ReviewLessonID {
		name = "Review"
	}
	return content.TopicTitle(s.stats.TopicID, s.settings.Language) + " · " + name
}

// KeyHints customizes the footer for this screen.
func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
