// Package lesson plays one lesson attempt: it drives the session
// controller, renders one exercise at a time and shows verdict
// feedback between steps.
package lesson

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/janadahlmanns/OrganIQ/internal/config"
	"github.com/janadahlmanns/OrganIQ/internal/content"
	"github.com/janadahlmanns/OrganIQ/internal/evaluate"
	"github.com/janadahlmanns/OrganIQ/internal/progression"
	"github.com/janadahlmanns/OrganIQ/internal/router"
	"github.com/janadahlmanns/OrganIQ/internal/screens/summary"
	"github.com/janadahlmanns/OrganIQ/internal/session"
	"github.com/janadahlmanns/OrganIQ/internal/store"
	"github.com/janadahlmanns/OrganIQ/internal/ui/components"
	"github.com/janadahlmanns/OrganIQ/internal/ui/layout"
	"github.com/janadahlmanns/OrganIQ/internal/ui/theme"
)

type phase int

const (
	phasePlaying phase = iota
	phaseFeedback
	phaseNotFound
	phaseConfirmQuit
)

// Screen plays a lesson attempt from first exercise to summary.
type Screen struct {
	ctrl     *session.Controller
	settings *config.Settings

	topicID  string
	lessonID string

	ph     phase
	sub    exerciseModel
	exID   int
	result evaluate.Result
	err    error
}

var _ router.Screen = (*Screen)(nil)
var _ router.BackBlocker = (*Screen)(nil)

// New starts (or resumes) a lesson attempt and returns its screen.
func New(ct *content.Store, ledger *progression.Ledger, st *store.Store, settings *config.Settings, topicID, lessonID string) *Screen {
	ctrl := session.NewController(ct, &session.Planner{Content: ct}, st, ledger)

	s := &Screen{
		ctrl:     ctrl,
		settings: settings,
		topicID:  topicID,
		lessonID: lessonID,
	}

	if err := ctrl.StartOrResumeLesson(topicID, lessonID); err != nil {
		s.err = err
		s.ph = phaseNotFound
		return s
	}
	if ctrl.Phase() == session.PhaseNotFound {
		s.ph = phaseNotFound
		return s
	}

	s.loadCurrent()
	return s
}

// loadCurrent builds the interaction model for the controller's
// current exercise.
func (s *Screen) loadCurrent() {
	ex, err := s.ctrl.CurrentExercise()
	if err != nil {
		s.err = err
		s.ph = phaseNotFound
		return
	}
	s.sub = newExerciseModel(ex, s.settings.Language)
	s.exID = ex.ID
	s.ph = phasePlaying
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)

	switch s.ph {
	case phaseNotFound:
		if isKey && (kmsg.String() == "enter" || kmsg.String() == "esc") {
			return s, popCmd()
		}
		return s, nil

	case phaseConfirmQuit:
		if !isKey {
			return s, nil
		}
		switch kmsg.String() {
		case "y", "enter":
			if err := s.ctrl.Cancel(); err != nil && err != session.ErrInvalidTransition {
				s.err = err
			}
			return s, popCmd()
		case "n", "esc":
			s.ph = phasePlaying
		}
		return s, nil

	case phaseFeedback:
		if isKey && kmsg.String() == "enter" {
			if err := s.ctrl.Advance(); err != nil {
				s.err = err
				return s, nil
			}
			if s.ctrl.Phase() == session.PhaseComplete {
				return s, s.finishCmd()
			}
			s.loadCurrent()
		}
		return s, nil
	}

	// phasePlaying
	if isKey && kmsg.String() == "esc" {
		s.ph = phaseConfirmQuit
		return s, nil
	}

	var cmd tea.Cmd
	s.sub, cmd = s.sub.update(msg)

	if resp, done := s.sub.response(); done {
		result, err := s.ctrl.SubmitResponse(s.exID, resp)
		if err != nil {
			s.err = err
			return s, cmd
		}
		s.result = result
		s.ph = phaseFeedback
	}
	return s, cmd
}

// finishCmd replaces this screen with the attempt's summary.
func (s *Screen) finishCmd() tea.Cmd {
	plan := s.ctrl.Plan()
	flawless := len(plan.IncorrectIDs) == 0
	return func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: summary.New(summary.Stats{
				TopicID:     s.topicID,
				LessonID:    s.lessonID,
				Steps:       session.LessonLength,
				Incorrect:   len(plan.IncorrectIDs),
				XPEarned:    progression.XPPerLesson,
				CrownEarned: flawless,
			}, s.settings),
		}
	}
}

func popCmd() tea.Cmd {
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *Screen) View(width, height int) string {
	var body string

	switch s.ph {
	case phaseNotFound:
		msg := "No exercises available for this lesson yet."
		if s.err != nil {
			msg = "Something went wrong: " + s.err.Error()
		}
		body = theme.Subtitle.Render(msg) + "\n\n" +
			theme.Hint.Render("enter goes back")

	case phaseConfirmQuit:
		body = theme.Body.Render("Abandon this lesson?") + "\n" +
			theme.Hint.Render("progress in this attempt will be lost") + "\n\n" +
			theme.Body.Render("  y)  yes, leave") + "\n" +
			theme.Body.Render("  n)  keep playing")

	default:
		body = s.sub.view(width)
		if s.ph == phaseFeedback {
			body += "\n\n" + s.feedbackLine()
		}
	}

	bar := components.NewProgressBar("", s.ctrl.Progress(), false, min(width-8, 48)).View()
	step := fmt.Sprintf("step %d of %d",
		min(s.ctrl.Plan().CurrentIndex+1, session.LessonLength), session.LessonLength)
	head := theme.Hint.Render(step) + "\n" + bar

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(head + "\n\n" + body)
}

func (s *Screen) feedbackLine() string {
	if s.result.Incorrect {
		return theme.Incorrect.Render("Not quite.") + " " +
			theme.Hint.Render("enter continues")
	}
	return theme.Correct.Render("Correct!") + " " +
		theme.Hint.Render("enter continues")
}

func (s *Screen) Title() string {
	name := "Lesson " + s.lessonID
	if s.lessonID == progression.ReviewLessonID {
		name = "Review"
	}
	return content.TopicTitle(s.topicID, s.settings.Language) + " · " + name
}

// BlocksBack keeps the global Esc handler away while an attempt is in
// play; the screen shows its own confirm step instead.
func (s *Screen) BlocksBack() bool {
	return s.ph == phasePlaying || s.ph == phaseFeedback || s.ph == phaseConfirmQuit
}

// KeyHints customizes the footer per phase.
func (s *Screen) KeyHints() []layout.KeyHint {
	switch s.ph {
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case phaseConfirmQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave lesson"},
			{Key: "N", Description: "Keep playing"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Leave lesson"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
}
