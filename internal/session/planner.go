package session

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/janadahlmanns/OrganIQ/internal/content"
)

func newAttemptID() string { return uuid.NewString() }

// ContentSource is the slice of the content store the planner needs.
type ContentSource interface {
	ListEligible(topic string, allowed []content.Type) []content.Exercise
}

// Planner selects the exercise sequence for a lesson attempt.
type Planner struct {
	Content ContentSource

	// Types restricts which exercise types are eligible. Nil means
	// SupportedTypes.
	Types []content.Type

	// Shuffle returns a permutation of 0..n-1. Nil means a fresh
	// rand permutation per call. Tests inject a fixed one.
	Shuffle func(n int) []int
}

// BuildPlan assembles a fresh plan for the given topic and lesson. The
// eligible pool is shuffled, then walked with wraparound until
// LessonLength ids are chosen, so small pools repeat exercises rather
// than shortening the lesson. An empty pool yields a plan with no
// exercises; the caller decides how to surface that.
func (pl *Planner) BuildPlan(topicID, lessonID string) Plan {
	plan := Plan{
		AttemptID: newAttemptID(),
		TopicID:   topicID,
		LessonID:  lessonID,
	}

	types := pl.Types
	if types == nil {
		types = SupportedTypes
	}
	pool := pl.Content.ListEligible(topicID, types)
	if len(pool) == 0 {
		return plan
	}

	perm := pl.permutation(len(pool))
	plan.ExerciseIDs = make([]int, 0, LessonLength)
	for i := 0; i < LessonLength; i++ {
		plan.ExerciseIDs = append(plan.ExerciseIDs, pool[perm[i%len(perm)]].ID)
	}
	return plan
}

func (pl *Planner) permutation(n int) []int {
	if pl.Shuffle != nil {
		return pl.Shuffle(n)
	}
	return rand.Perm(n)
}
