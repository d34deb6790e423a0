package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janadahlmanns/OrganIQ/internal/content"
	"github.com/janadahlmanns/OrganIQ/internal/evaluate"
	"github.com/janadahlmanns/OrganIQ/internal/progression"
)

type fakeStorage struct {
	session   *Record
	lastTopic string
	saves     int
}

func (f *fakeStorage) LoadSession() *Record {
	if f.session == nil {
		return nil
	}
	rec := *f.session
	return &rec
}

func (f *fakeStorage) SaveSession(rec Record) error {
	f.session = &rec
	f.saves++
	return nil
}

func (f *fakeStorage) ClearSession() error {
	f.session = nil
	return nil
}

func (f *fakeStorage) SetLastTopic(topicID string) error {
	f.lastTopic = topicID
	return nil
}

func newTestController(t *testing.T) (*Controller, *fakeStorage, *progression.Ledger) {
	t.Helper()
	src := &fakeContent{exercises: []content.Exercise{
		question(1, "heart", 1),
		question(2, "heart", 2),
		question(3, "heart", 3),
	}}
	storage := &fakeStorage{}
	ledger := progression.New(nil)
	ctrl := NewController(src, &Planner{Content: src, Shuffle: identityShuffle}, storage, ledger)
	return ctrl, storage, ledger
}

func answerCurrent(t *testing.T, ctrl *Controller, correct bool) evaluate.Result {
	t.Helper()
	ex, err := ctrl.CurrentExercise()
	require.NoError(t, err)
	option := ex.Choice.CorrectOption
	if !correct {
		option = option%len(ex.Choice.Options) + 1
	}
	result, err := ctrl.SubmitResponse(ex.ID, evaluate.ChoiceResponse{Option: option})
	require.NoError(t, err)
	return result
}

func TestStartLessonBuildsAndPersistsPlan(t *testing.T) {
	ctrl, storage, _ := newTestController(t)

	require.NoError(t, ctrl.StartOrResumeLesson("heart", "01"))

	assert.Equal(t, PhaseInProgress, ctrl.Phase())
	require.NotNil(t, storage.session)
	assert.Equal(t, []int{1, 2, 3}, storage.session.LessonExercises)
	assert.Equal(t, 0, storage.session.CurrentIndex)
}

func TestStartLessonWithoutExercises(t *testing.T) {
	ctrl, storage, _ := newTestController(t)

	require.NoError(t, ctrl.StartOrResumeLesson("spleen", "01"))

	assert.Equal(t, PhaseNotFound, ctrl.Phase())
	assert.Nil(t, storage.session, "not-found lessons must not persist an attempt")

	_, err := ctrl.CurrentExercise()
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestResumeMatchingAttempt(t *testing.T) {
	ctrl, storage, _ := newTestController(t)
	storage.session = &Record{
		TopicID:         "heart",
		LessonID:        "01",
		LessonExercises: []int{3, 1, 2},
		CurrentIndex:    1,
		IncorrectIDs:    []int{3},
		Progress:        ProgressStep,
	}

	require.NoError(t, ctrl.StartOrResumeLesson("heart", "01"))

	assert.Equal(t, PhaseInProgress, ctrl.Phase())
	plan := ctrl.Plan()
	assert.Equal(t, []int{3, 1, 2}, plan.ExerciseIDs)
	assert.Equal(t, 1, plan.CurrentIndex)
	assert.Equal(t, []int{3}, plan.IncorrectIDs)
	assert.InDelta(t, ProgressStep, ctrl.Progress(), 1e-9)

	ex, err := ctrl.CurrentExercise()
	require.NoError(t, err)
	assert.Equal(t, 1, ex.ID)
}

func TestMismatchedAttemptIsDiscarded(t *testing.T) {
	ctrl, storage, _ := newTestController(t)
	storage.session = &Record{
		TopicID:         "heart",
		LessonID:        "05",
		LessonExercises: []int{1, 2, 3},
		CurrentIndex:    2,
	}

	require.NoError(t, ctrl.StartOrResumeLesson("heart", "01"))

	plan := ctrl.Plan()
	assert.Equal(t, 0, plan.CurrentIndex, "a different lesson's attempt must not resume")
	assert.Equal(t, "01", storage.session.LessonID)
}

func TestDoubleSubmitReturnsCachedResult(t *testing.T) {
	ctrl, _, _ := newTestController(t)
	require.NoError(t, ctrl.StartOrResumeLesson("heart", "01"))

	first := answerCurrent(t, ctrl, false)
	require.True(t, first.Incorrect)

	// A second submit, even a correct one, must not change the verdict
	// or step progress again.
	second, err := ctrl.SubmitResponse(1, evaluate.ChoiceResponse{Option: 1})
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.InDelta(t, ProgressStep, ctrl.Progress(), 1e-9)
	assert.Equal(t, []int{1}, ctrl.Plan().IncorrectIDs)
}

func TestAdvanceRequiresAnswer(t *testing.T) {
	ctrl, _, _ := newTestController(t)
	require.NoError(t, ctrl.StartOrResumeLesson("heart", "01"))

	assert.ErrorIs(t, ctrl.Advance(), ErrInvalidTransition)
}

func TestAdvancePersistsStep(t *testing.T) {
	ctrl, storage, _ := newTestController(t)
	require.NoError(t, ctrl.StartOrResumeLesson("heart", "01"))

	answerCurrent(t, ctrl, true)
	require.NoError(t, ctrl.Advance())

	require.NotNil(t, storage.session)
	assert.Equal(t, 1, storage.session.CurrentIndex)
	assert.InDelta(t, ProgressStep, storage.session.Progress, 1e-9)

	_, answered := ctrl.LastResult()
	assert.False(t, answered, "advance must reset the step result")
}

func TestLessonCompletionCommitsOnce(t *testing.T) {
	ctrl, storage, ledger := newTestController(t)
	require.NoError(t, ctrl.StartOrResumeLesson("heart", "01"))

	answerCurrent(t, ctrl, true)
	require.NoError(t, ctrl.Advance())
	answerCurrent(t, ctrl, false)
	require.NoError(t, ctrl.Advance())
	answerCurrent(t, ctrl, true)
	require.NoError(t, ctrl.Advance())

	assert.Equal(t, PhaseComplete, ctrl.Phase())
	assert.InDelta(t, 100, ctrl.Progress(), 1e-9)
	assert.Equal(t, []int{2}, ctrl.Plan().IncorrectIDs)

	assert.Equal(t, progression.StatusCompleted, ledger.Status("heart-01"))
	assert.Equal(t, progression.StatusUncompleted, ledger.Status("heart-02"))
	assert.Equal(t, progression.XPPerLesson, ledger.XP())
	assert.Equal(t, 0, ledger.Crowns(), "a missed exercise forfeits the crown")

	assert.Nil(t, storage.session, "finished attempts must be cleared")
	assert.Equal(t, "heart", storage.lastTopic)

	assert.ErrorIs(t, ctrl.Advance(), ErrInvalidTransition)
	_, err := ctrl.SubmitResponse(1, evaluate.ChoiceResponse{Option: 1})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestStaleSubmitAfterAdvanceIsIgnored(t *testing.T) {
	ctrl, _, _ := newTestController(t)
	require.NoError(t, ctrl.StartOrResumeLesson("heart", "01"))

	answerCurrent(t, ctrl, true)
	require.NoError(t, ctrl.Advance())

	// A replayed submit event for the already-graded step must not
	// grade the step now in play.
	stale, err := ctrl.SubmitResponse(1, evaluate.ChoiceResponse{Option: 3})
	require.NoError(t, err)
	assert.Equal(t, evaluate.Result{}, stale)
	assert.InDelta(t, ProgressStep, ctrl.Progress(), 1e-9)
	assert.Empty(t, ctrl.Plan().IncorrectIDs)

	_, answered := ctrl.LastResult()
	assert.False(t, answered, "a stale submit must not answer the current step")

	// The step in play still grades normally afterwards.
	result := answerCurrent(t, ctrl, true)
	assert.False(t, result.Incorrect)
	assert.InDelta(t, 2*ProgressStep, ctrl.Progress(), 1e-9)
}

func TestFlawlessLessonIsPerfectWithCrown(t *testing.T) {
	ctrl, _, ledger := newTestController(t)
	require.NoError(t, ctrl.StartOrResumeLesson("heart", "01"))

	for i := 0; i < LessonLength; i++ {
		answerCurrent(t, ctrl, true)
		require.NoError(t, ctrl.Advance())
	}

	assert.Equal(t, progression.StatusPerfect, ledger.Status("heart-01"))
	assert.Equal(t, 1, ledger.Crowns())
}

func TestEveryFlawlessRunEarnsACrown(t *testing.T) {
	ctrl, _, ledger := newTestController(t)

	for run := 0; run < 2; run++ {
		require.NoError(t, ctrl.StartOrResumeLesson("heart", "01"))
		for i := 0; i < LessonLength; i++ {
			answerCurrent(t, ctrl, true)
			require.NoError(t, ctrl.Advance())
		}
	}

	assert.Equal(t, 2, ledger.Crowns(), "crowns accrue per flawless run")
	assert.Equal(t, 2*progression.XPPerLesson, ledger.XP(), "XP accrues on every run")
}

func TestPerfectStatusSurvivesWorseRun(t *testing.T) {
	ctrl, _, ledger := newTestController(t)

	require.NoError(t, ctrl.StartOrResumeLesson("heart", "01"))
	for i := 0; i < LessonLength; i++ {
		answerCurrent(t, ctrl, true)
		require.NoError(t, ctrl.Advance())
	}

	require.NoError(t, ctrl.StartOrResumeLesson("heart", "01"))
	answerCurrent(t, ctrl, false)
	require.NoError(t, ctrl.Advance())
	answerCurrent(t, ctrl, true)
	require.NoError(t, ctrl.Advance())
	answerCurrent(t, ctrl, true)
	require.NoError(t, ctrl.Advance())

	assert.Equal(t, progression.StatusPerfect, ledger.Status("heart-01"))
}

func TestReviewLessonUnlocksNothing(t *testing.T) {
	ctrl, _, ledger := newTestController(t)
	require.NoError(t, ctrl.StartOrResumeLesson("heart", progression.ReviewLessonID))

	for i := 0; i < LessonLength; i++ {
		answerCurrent(t, ctrl, true)
		require.NoError(t, ctrl.Advance())
	}

	assert.Equal(t, progression.StatusPerfect, ledger.Status("heart-review"))
	for _, id := range []string{"02", "03", "04"} {
		assert.Equal(t, progression.StatusLocked, ledger.Status("heart-"+id))
	}
}

func TestCancelClearsWithoutCommit(t *testing.T) {
	ctrl, storage, ledger := newTestController(t)
	require.NoError(t, ctrl.StartOrResumeLesson("heart", "01"))

	answerCurrent(t, ctrl, true)
	require.NoError(t, ctrl.Advance())
	require.NoError(t, ctrl.Cancel())

	assert.Equal(t, PhaseCancelled, ctrl.Phase())
	assert.Nil(t, storage.session)
	assert.Equal(t, 0, ledger.XP())
	assert.Equal(t, progression.StatusUncompleted, ledger.Status("heart-01"))

	assert.ErrorIs(t, ctrl.Cancel(), ErrInvalidTransition)
}
