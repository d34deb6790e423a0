package session

import "github.com/janadahlmanns/OrganIQ/internal/content"

// LessonLength is the fixed number of exercises per lesson attempt.
const LessonLength = 3

// ProgressStep is the overall progress gained per completed exercise.
const ProgressStep = 100.0 / LessonLength

// SupportedTypes is the exercise-type filter applied when building a
// lesson plan.
var SupportedTypes = content.AllTypes

// Plan is the chosen exercise sequence for one lesson attempt.
type Plan struct {
	// AttemptID uniquely identifies this attempt.
	AttemptID string

	TopicID  string
	LessonID string

	// ExerciseIDs is the ordered exercise sequence, LessonLength long.
	// Ids may repeat when the eligible pool is smaller than the lesson.
	ExerciseIDs []int

	// CurrentIndex is the step in play, 0..LessonLength inclusive.
	CurrentIndex int

	// IncorrectIDs collects the ids answered incorrectly, in step order.
	IncorrectIDs []int

	// Progress is the overall progress 0..100, monotonically
	// non-decreasing within the attempt.
	Progress float64
}

// Record is the persisted form of a Plan, stored so a reload mid-lesson
// resumes at the same step.
type Record struct {
	TopicID         string  `json:"topic_id"`
	LessonID        string  `json:"lesson_id"`
	LessonExercises []int   `json:"lesson_exercises"`
	CurrentIndex    int     `json:"current_index"`
	IncorrectIDs    []int   `json:"incorrect_ids"`
	Progress        float64 `json:"progress"`
}

func (p *Plan) record() Record {
	return Record{
		TopicID:         p.TopicID,
		LessonID:        p.LessonID,
		LessonExercises: append([]int(nil), p.ExerciseIDs...),
		CurrentIndex:    p.CurrentIndex,
		IncorrectIDs:    append([]int(nil), p.IncorrectIDs...),
		Progress:        p.Progress,
	}
}

// valid reports whether a persisted record describes a resumable plan.
func (r *Record) valid() bool {
	return len(r.LessonExercises) == LessonLength &&
		r.CurrentIndex >= 0 && r.CurrentIndex <= LessonLength &&
		r.Progress >= 0 && r.Progress <= 100
}

// matches reports whether the record belongs to the requested lesson.
func (r *Record) matches(topicID, lessonID string) bool {
	return r.TopicID == topicID && r.LessonID == lessonID
}
