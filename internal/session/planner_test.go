package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janadahlmanns/OrganIQ/internal/content"
)

type fakeContent struct {
	exercises []content.Exercise
}

func (f *fakeContent) ListEligible(topic string, allowed []content.Type) []content.Exercise {
	var out []content.Exercise
	for _, ex := range f.exercises {
		if ex.Topic == topic {
			out = append(out, ex)
		}
	}
	return out
}

func (f *fakeContent) FindByID(id int, allowed []content.Type) (*content.Exercise, error) {
	for i := range f.exercises {
		if f.exercises[i].ID == id {
			return &f.exercises[i], nil
		}
	}
	return nil, content.ErrNotFound
}

func question(id int, topic string, correct int) content.Exercise {
	return content.Exercise{
		ID:    id,
		Topic: topic,
		Type:  content.TypeQuestion,
		Choice: &content.ChoicePayload{
			Prompt:        content.LocalizedText{"en": "q"},
			Options:       []content.LocalizedText{{"en": "a"}, {"en": "b"}, {"en": "c"}},
			CorrectOption: correct,
		},
	}
}

// identityShuffle keeps the pool order, making plans deterministic.
func identityShuffle(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	return perm
}

func TestBuildPlanPicksLessonLengthExercises(t *testing.T) {
	src := &fakeContent{exercises: []content.Exercise{
		question(1, "heart", 1),
		question(2, "heart", 1),
		question(3, "heart", 1),
		question(4, "heart", 1),
		question(5, "lung", 1),
	}}
	pl := &Planner{Content: src}

	plan := pl.BuildPlan("heart", "01")

	require.Len(t, plan.ExerciseIDs, LessonLength)
	assert.NotEmpty(t, plan.AttemptID)
	assert.Equal(t, "heart", plan.TopicID)
	assert.Equal(t, "01", plan.LessonID)
	for _, id := range plan.ExerciseIDs {
		assert.Contains(t, []int{1, 2, 3, 4}, id, "plan must draw only from the topic pool")
	}
}

func TestBuildPlanWrapsSmallPools(t *testing.T) {
	src := &fakeContent{exercises: []content.Exercise{
		question(7, "ear", 1),
		question(8, "ear", 1),
	}}
	pl := &Planner{Content: src, Shuffle: identityShuffle}

	plan := pl.BuildPlan("ear", "02")

	assert.Equal(t, []int{7, 8, 7}, plan.ExerciseIDs)
}

func TestBuildPlanEmptyPool(t *testing.T) {
	pl := &Planner{Content: &fakeContent{}}

	plan := pl.BuildPlan("spleen", "01")

	assert.Empty(t, plan.ExerciseIDs)
	assert.NotEmpty(t, plan.AttemptID)
}

func TestBuildPlanDeterministicWithFixedShuffle(t *testing.T) {
	src := &fakeContent{exercises: []content.Exercise{
		question(1, "heart", 1),
		question(2, "heart", 1),
		question(3, "heart", 1),
	}}
	reversed := func(n int) []int {
		perm := make([]int, n)
		for i := range perm {
			perm[i] = n - 1 - i
		}
		return perm
	}
	pl := &Planner{Content: src, Shuffle: reversed}

	first := pl.BuildPlan("heart", "03")
	second := pl.BuildPlan("heart", "03")

	assert.Equal(t, []int{3, 2, 1}, first.ExerciseIDs)
	assert.Equal(t, first.ExerciseIDs, second.ExerciseIDs)
	assert.NotEqual(t, first.AttemptID, second.AttemptID)
}
