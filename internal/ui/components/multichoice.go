package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/janadahlmanns/OrganIQ/internal/ui/theme"
)

// MultiChoice is a multiple-choice selector. Option indexes are
// 1-based to match the content's answer keys. Perm is the display
// order: row i shows Options[Perm[i]], so Chosen always reports the
// original option index no matter how the rows are arranged.
type MultiChoice struct {
	Prompt        string
	Options       []string
	CorrectOption int
	Perm          []int
	Selected      int
	Submitted     bool
	ChosenOption  int
}

// NewMultiChoice creates a multiple-choice selector with options in
// their original order. correctOption is 1-based.
func NewMultiChoice(prompt string, options []string, correctOption int) MultiChoice {
	perm := make([]int, len(options))
	for i := range perm {
		perm[i] = i
	}
	return MultiChoice{
		Prompt:        prompt,
		Options:       options,
		CorrectOption: correctOption,
		Perm:          perm,
		Selected:      0,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection. After submission
// the component is frozen until the parent moves on.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.Submitted = true
		m.ChosenOption = m.Perm[m.Selected] + 1
	}

	return m, nil
}

// View renders the options, revealing the answer key after submission.
func (m MultiChoice) View() string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := promptStyle.Render(m.Prompt) + "\n\n"

	for i := range m.Perm {
		opt := m.Options[m.Perm[i]]
		option := m.Perm[i] + 1
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%c)  %s", prefix, 'A'+i, opt)

		if m.Submitted {
			switch {
			case option == m.CorrectOption:
				s += theme.Correct.Render(line) + "\n"
			case option == m.ChosenOption:
				s += theme.Incorrect.Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == m.Selected {
				s += theme.Selected.Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
			}
		}
	}

	return s
}

// Chosen returns the 1-based chosen option, valid once submitted.
func (m MultiChoice) Chosen() int {
	return m.ChosenOption
}

// IsCorrect returns true if the chosen option matches the answer key.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.ChosenOption == m.CorrectOption
}
