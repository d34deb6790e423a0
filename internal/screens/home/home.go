// Package home is the app's entry screen: the topic menu plus
// preferences and quit.
package home

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/janadahlmanns/OrganIQ/internal/config"
	"github.com/janadahlmanns/OrganIQ/internal/content"
	"github.com/janadahlmanns/OrganIQ/internal/progression"
	"github.com/janadahlmanns/OrganIQ/internal/router"
	"github.com/janadahlmanns/OrganIQ/internal/screens/lessonlist"
	"github.com/janadahlmanns/OrganIQ/internal/screens/preferences"
	"github.com/janadahlmanns/OrganIQ/internal/store"
	"github.com/janadahlmanns/OrganIQ/internal/ui/components"
	"github.com/janadahlmanns/OrganIQ/internal/ui/theme"
)

// HomeScreen shows the topic menu. The last-played topic is preselected
// so returning learners land where they left off.
type HomeScreen struct {
	menu     components.Menu
	settings *config.Settings
}

var _ router.Screen = (*HomeScreen)(nil)

// New creates the home screen.
func New(ct *content.Store, ledger *progression.Ledger, st *store.Store, settings *config.Settings) *HomeScreen {
	lang := settings.Language

	items := make([]components.MenuItem, 0, len(progression.Topics)+2)
	for _, topicID := range progression.Topics {
		topicID := topicID
		items = append(items, components.MenuItem{
			Label: content.TopicTitle(topicID, lang),
			Badge: topicBadge(ledger, topicID),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: lessonlist.New(ct, ledger, st, settings, topicID),
					}
				}
			},
		})
	}

	items = append(items,
		components.MenuItem{
			Label: "Preferences",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: preferences.New(ledger, st, settings),
					}
				}
			},
		},
		components.MenuItem{
			Label: "Quit",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	)

	menu := components.NewMenu(items)
	if last := st.LastTopic(); last != "" {
		for i, topicID := range progression.Topics {
			if topicID == last {
				menu.Selected = i
				break
			}
		}
	}

	return &HomeScreen{menu: menu, settings: settings}
}

// topicBadge summarizes a topic's progress as "done/total" lessons.
func topicBadge(ledger *progression.Ledger, topicID string) string {
	done := 0
	for _, lessonID := range progression.LessonIDs {
		switch ledger.Status(progression.Key(topicID, lessonID)) {
		case progression.StatusCompleted, progression.StatusPerfect:
			done++
		}
	}
	if done == 0 {
		return ""
	}
	return theme.Hint.Render(fmt.Sprintf("%d/%d", done, len(progression.LessonIDs)))
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Width(width).Render("OrganIQ")
	subtitle := theme.Subtitle.Width(width).Render("Learn your organs, one lesson at a time")

	menu := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(h.menu.View())

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(title + "\n" + subtitle + "\n\n" + menu)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
