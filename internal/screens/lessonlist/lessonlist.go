// Package lessonlist shows a topic's lessons with their unlock state.
// Locked lessons cannot be entered.
package lessonlist

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/janadahlmanns/OrganIQ/internal/config"
	"github.com/janadahlmanns/OrganIQ/internal/content"
	"github.com/janadahlmanns/OrganIQ/internal/progression"
	"github.com/janadahlmanns/OrganIQ/internal/router"
	"github.com/janadahlmanns/OrganIQ/internal/screens/lesson"
	"github.com/janadahlmanns/OrganIQ/internal/store"
	"github.com/janadahlmanns/OrganIQ/internal/ui/components"
	"github.com/janadahlmanns/OrganIQ/internal/ui/layout"
	"github.com/janadahlmanns/OrganIQ/internal/ui/theme"
)

// ListScreen is the lesson picker for one topic.
type ListScreen struct {
	content  *content.Store
	ledger   *progression.Ledger
	store    *store.Store
	topicID  string
	settings *config.Settings
	menu     components.Menu
}

var _ router.Screen = (*ListScreen)(nil)

// New creates the lesson list for topicID.
func New(ct *content.Store, ledger *progression.Ledger, st *store.Store, settings *config.Settings, topicID string) *ListScreen {
	l := &ListScreen{
		content:  ct,
		ledger:   ledger,
		store:    st,
		topicID:  topicID,
		settings: settings,
	}
	l.menu = components.NewMenu(l.buildItems())
	return l
}

func (l *ListScreen) buildItems() []components.MenuItem {
	items := make([]components.MenuItem, 0, len(progression.LessonIDs))
	for _, lessonID := range progression.LessonIDs {
		lessonID := lessonID
		status := l.ledger.Status(progression.Key(l.topicID, lessonID))
		items = append(items, components.MenuItem{
			Label:    lessonLabel(lessonID),
			Badge:    statusBadge(status),
			Disabled: status == progression.StatusLocked,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: lesson.New(l.content, l.ledger, l.store, l.settings, l.topicID, lessonID),
					}
				}
			},
		})
	}
	return items
}

func lessonLabel(lessonID string) string {
	if lessonID == progression.ReviewLessonID {
		return "Review"
	}
	return "Lesson " + lessonID
}

func statusBadge(status progression.Status) string {
	switch status {
	case progression.StatusLocked:
		return "🔒"
	case progression.StatusCompleted:
		return theme.Correct.Render("✓")
	case progression.StatusPerfect:
		return theme.Perfect.Render("♛")
	default:
		return ""
	}
}

func (l *ListScreen) Init() tea.Cmd {
	return nil
}

func (l *ListScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	// A finished lesson may have unlocked the next one while this
	// screen sat below it on the stack. Rebuild before handling input.
	l.menu.Items = l.buildItems()

	var cmd tea.Cmd
	l.menu, cmd = l.menu.Update(msg)
	return l, cmd
}

func (l *ListScreen) View(width, height int) string {
	title := theme.Title.Width(width).
		Render(content.TopicTitle(l.topicID, l.settings.Language))

	menu := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(l.menu.View())

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(title + "\n\n" + menu)
}

func (l *ListScreen) Title() string {
	return content.TopicTitle(l.topicID, l.settings.Language)
}

// KeyHints customizes the footer for this screen.
func (l *ListScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start lesson"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
