package session

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/janadahlmanns/OrganIQ/internal/content"
	"github.com/janadahlmanns/OrganIQ/internal/evaluate"
	"github.com/janadahlmanns/OrganIQ/internal/progression"
)

// Phase is the lifecycle state of a lesson attempt.
type Phase int

const (
	// PhaseUninitialized means no lesson has been started.
	PhaseUninitialized Phase = iota
	// PhaseInProgress means an exercise sequence is in play.
	PhaseInProgress
	// PhaseComplete means all steps were answered and progression
	// has been committed.
	PhaseComplete
	// PhaseCancelled means the attempt was abandoned without commit.
	PhaseCancelled
	// PhaseNotFound means no eligible exercises exist for the lesson.
	PhaseNotFound
)

func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseInProgress:
		return "in_progress"
	case PhaseComplete:
		return "complete"
	case PhaseCancelled:
		return "cancelled"
	case PhaseNotFound:
		return "not_found"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// ErrInvalidTransition is returned when an operation does not apply in
// the current phase. Callers treat it as a no-op signal.
var ErrInvalidTransition = errors.New("session: invalid transition")

// ExerciseSource resolves exercise ids from a plan back to content.
type ExerciseSource interface {
	FindByID(id int, allowed []content.Type) (*content.Exercise, error)
}

// Storage persists the live attempt and the last-played topic. A nil
// result from LoadSession means no resumable attempt exists.
type Storage interface {
	LoadSession() *Record
	SaveSession(Record) error
	ClearSession() error
	SetLastTopic(topicID string) error
}

// Progression receives the single commit made when a lesson completes.
type Progression interface {
	CompleteLesson(key string)
	PerfectLesson(key string)
	UnlockLesson(key string)
	AddXP(n int)
	AddCrown()
}

// Controller drives one lesson attempt through its phases. It owns the
// plan, evaluates responses, persists the attempt after every advance,
// and commits progression exactly once on completion.
type Controller struct {
	content ExerciseSource
	planner *Planner
	storage Storage
	ledger  Progression
	log     logrus.FieldLogger

	phase      Phase
	plan       Plan
	lastResult *evaluate.Result
	committed  bool
}

// NewController wires a controller over the given collaborators.
func NewController(src ExerciseSource, planner *Planner, storage Storage, ledger Progression) *Controller {
	return &Controller{
		content: src,
		planner: planner,
		storage: storage,
		ledger:  ledger,
		log:     logrus.StandardLogger(),
		phase:   PhaseUninitialized,
	}
}

// SetLogger replaces the controller's logger.
func (c *Controller) SetLogger(log logrus.FieldLogger) {
	if log != nil {
		c.log = log
	}
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase { return c.phase }

// Plan returns a copy of the current plan.
func (c *Controller) Plan() Plan {
	p := c.plan
	p.ExerciseIDs = append([]int(nil), c.plan.ExerciseIDs...)
	p.IncorrectIDs = append([]int(nil), c.plan.IncorrectIDs...)
	return p
}

// Progress returns the overall progress of the attempt, 0..100.
func (c *Controller) Progress() float64 { return c.plan.Progress }

// StartOrResumeLesson begins a lesson attempt. A persisted attempt for
// the same topic and lesson is resumed at its saved step; any other
// persisted attempt is discarded and a fresh plan is built. A lesson
// with no eligible exercises moves to PhaseNotFound.
func (c *Controller) StartOrResumeLesson(topicID, lessonID string) error {
	c.lastResult = nil
	c.committed = false

	if rec := c.storage.LoadSession(); rec != nil {
		if rec.valid() && rec.matches(topicID, lessonID) && rec.CurrentIndex < LessonLength {
			c.plan = Plan{
				AttemptID:    newAttemptID(),
				TopicID:      rec.TopicID,
				LessonID:     rec.LessonID,
				ExerciseIDs:  append([]int(nil), rec.LessonExercises...),
				CurrentIndex: rec.CurrentIndex,
				IncorrectIDs: append([]int(nil), rec.IncorrectIDs...),
				Progress:     rec.Progress,
			}
			c.phase = PhaseInProgress
			c.log.WithFields(logrus.Fields{
				"topic":  topicID,
				"lesson": lessonID,
				"step":   rec.CurrentIndex,
			}).Info("resumed lesson attempt")
			return nil
		}
		if err := c.storage.ClearSession(); err != nil {
			return fmt.Errorf("discarding stale attempt: %w", err)
		}
	}

	c.plan = c.planner.BuildPlan(topicID, lessonID)
	if len(c.plan.ExerciseIDs) == 0 {
		c.phase = PhaseNotFound
		c.log.WithFields(logrus.Fields{"topic": topicID, "lesson": lessonID}).
			Warn("no eligible exercises for lesson")
		return nil
	}
	if err := c.storage.SaveSession(c.plan.record()); err != nil {
		return fmt.Errorf("saving attempt: %w", err)
	}
	c.phase = PhaseInProgress
	return nil
}

// CurrentExercise returns the exercise at the current step.
func (c *Controller) CurrentExercise() (*content.Exercise, error) {
	if c.phase != PhaseInProgress || c.plan.CurrentIndex >= len(c.plan.ExerciseIDs) {
		return nil, ErrInvalidTransition
	}
	return c.content.FindByID(c.plan.ExerciseIDs[c.plan.CurrentIndex], SupportedTypes)
}

// SubmitResponse evaluates a response against the current exercise.
// exerciseID must name the exercise at the current step; a submit
// carrying any other id is a stale event from a step already graded
// and is ignored. Submitting again before Advance returns the first
// result unchanged, so a double submit cannot step progress twice or
// record a second incorrect.
func (c *Controller) SubmitResponse(exerciseID int, resp evaluate.Response) (evaluate.Result, error) {
	if c.phase != PhaseInProgress {
		return evaluate.Result{}, ErrInvalidTransition
	}
	if c.plan.CurrentIndex >= len(c.plan.ExerciseIDs) ||
		exerciseID != c.plan.ExerciseIDs[c.plan.CurrentIndex] {
		c.log.WithField("exercise", exerciseID).Warn("ignoring stale submit")
		return evaluate.Result{}, nil
	}
	if c.lastResult != nil {
		return *c.lastResult, nil
	}
	ex, err := c.CurrentExercise()
	if err != nil {
		return evaluate.Result{}, err
	}
	result, err := evaluate.Evaluate(ex, resp, c.plan.Progress, ProgressStep)
	if err != nil {
		return evaluate.Result{}, err
	}
	if result.Incorrect {
		c.plan.IncorrectIDs = append(c.plan.IncorrectIDs, ex.ID)
	}
	c.plan.Progress = result.ProgressAfter
	c.lastResult = &result
	return result, nil
}

// LastResult returns the result of the current step's submission, or
// false when the step has not been answered yet.
func (c *Controller) LastResult() (evaluate.Result, bool) {
	if c.lastResult == nil {
		return evaluate.Result{}, false
	}
	return *c.lastResult, true
}

// Advance moves past an answered step. Advancing past the final step
// completes the attempt: progression is committed once, the persisted
// attempt is cleared, and the topic is remembered as last played.
func (c *Controller) Advance() error {
	if c.phase != PhaseInProgress || c.lastResult == nil {
		return ErrInvalidTransition
	}
	c.plan.CurrentIndex++
	c.lastResult = nil

	if c.plan.CurrentIndex >= LessonLength {
		c.phase = PhaseComplete
		c.commit()
		if err := c.storage.ClearSession(); err != nil {
			return fmt.Errorf("clearing finished attempt: %w", err)
		}
		if err := c.storage.SetLastTopic(c.plan.TopicID); err != nil {
			return fmt.Errorf("remembering topic: %w", err)
		}
		return nil
	}
	if err := c.storage.SaveSession(c.plan.record()); err != nil {
		return fmt.Errorf("saving attempt: %w", err)
	}
	return nil
}

// Cancel abandons the attempt without committing any progression.
func (c *Controller) Cancel() error {
	if c.phase != PhaseInProgress {
		return ErrInvalidTransition
	}
	c.phase = PhaseCancelled
	c.lastResult = nil
	if err := c.storage.ClearSession(); err != nil {
		return fmt.Errorf("clearing cancelled attempt: %w", err)
	}
	return nil
}

// commit applies the attempt's outcome to the ledger. Runs at most once
// per attempt. A flawless run marks the lesson perfect and earns a
// crown, even when the lesson was perfect already; any other run marks
// it completed. Every run earns lesson XP and unlocks the next lesson.
func (c *Controller) commit() {
	if c.committed {
		return
	}
	c.committed = true

	key := progression.Key(c.plan.TopicID, c.plan.LessonID)
	flawless := len(c.plan.IncorrectIDs) == 0
	if flawless {
		c.ledger.AddCrown()
		c.ledger.PerfectLesson(key)
	} else {
		c.ledger.CompleteLesson(key)
	}
	c.ledger.AddXP(progression.XPPerLesson)
	if next, ok := progression.NextLessonKey(c.plan.TopicID, c.plan.LessonID); ok {
		c.ledger.UnlockLesson(next)
	}

	c.log.WithFields(logrus.Fields{
		"topic":     c.plan.TopicID,
		"lesson":    c.plan.LessonID,
		"flawless":  flawless,
		"incorrect": len(c.plan.IncorrectIDs),
	}).Info("lesson completed")
}
