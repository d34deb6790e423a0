package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSaver struct {
	saves []Snapshot
}

func (r *recordingSaver) SaveLedger(s Snapshot) error {
	r.saves = append(r.saves, s)
	return nil
}

func TestNewLedgerInitialPattern(t *testing.T) {
	l := New(nil)

	for _, topic := range Topics {
		assert.Equal(t, StatusUncompleted, l.Status(Key(topic, "01")))
		assert.Equal(t, StatusUncompleted, l.Status(Key(topic, "review")))
		for _, lesson := range []string{"02", "05", "09"} {
			assert.Equal(t, StatusLocked, l.Status(Key(topic, lesson)))
		}
	}
	assert.Equal(t, 0, l.XP())
	assert.Equal(t, 0, l.Crowns())
}

func TestCompleteLessonNeverDowngradesPerfect(t *testing.T) {
	l := New(nil)

	l.PerfectLesson("heart-01")
	require.Equal(t, StatusPerfect, l.Status("heart-01"))

	l.CompleteLesson("heart-01")
	assert.Equal(t, StatusPerfect, l.Status("heart-01"))
}

func TestCompleteAndPerfectTransitions(t *testing.T) {
	l := New(nil)

	l.CompleteLesson("heart-01")
	assert.Equal(t, StatusCompleted, l.Status("heart-01"))

	// A later perfect run upgrades.
	l.PerfectLesson("heart-01")
	assert.Equal(t, StatusPerfect, l.Status("heart-01"))
}

func TestUnlockLessonOnlyFromLocked(t *testing.T) {
	l := New(nil)

	l.UnlockLesson("heart-02")
	assert.Equal(t, StatusUncompleted, l.Status("heart-02"))

	l.CompleteLesson("heart-02")
	l.UnlockLesson("heart-02")
	assert.Equal(t, StatusCompleted, l.Status("heart-02"))

	l.UnlockLesson("heart-bogus")
	assert.Equal(t, StatusLocked, l.Status("heart-bogus"))
}

func TestXPAndCrowns(t *testing.T) {
	l := New(nil)

	l.AddXP(XPPerLesson)
	l.AddXP(XPPerLesson)
	l.AddXP(0)
	l.AddXP(-5)
	assert.Equal(t, 60, l.XP())

	l.AddCrown()
	assert.Equal(t, 1, l.Crowns())
}

func TestResetProgressRestoresInitialPattern(t *testing.T) {
	l := New(nil)
	l.CompleteLesson("heart-01")
	l.UnlockLesson("heart-02")
	l.PerfectLesson("ear-01")
	l.AddXP(90)
	l.AddCrown()

	l.ResetProgress()

	for _, topic := range Topics {
		for _, lesson := range LessonIDs {
			want := StatusLocked
			if lesson == "01" || lesson == ReviewLessonID {
				want = StatusUncompleted
			}
			assert.Equal(t, want, l.Status(Key(topic, lesson)), "%s-%s", topic, lesson)
		}
	}
	assert.Equal(t, 0, l.XP())
	assert.Equal(t, 0, l.Crowns())
}

func TestEveryMutationFlushes(t *testing.T) {
	saver := &recordingSaver{}
	l := New(saver)

	l.CompleteLesson("heart-01")
	l.AddXP(30)
	l.AddCrown()
	l.ResetProgress()

	require.Len(t, saver.saves, 4)
	last := saver.saves[len(saver.saves)-1]
	assert.Equal(t, 0, last.XP)
	assert.Equal(t, StatusUncompleted, last.Lessons["heart-01"])
}

func TestRestoreMergesSnapshot(t *testing.T) {
	snap := Snapshot{
		Lessons: map[string]Status{
			"heart-01": StatusPerfect,
			"heart-02": StatusCompleted,
			"bogus-99": StatusPerfect, // unknown key is dropped
		},
		XP:     120,
		Crowns: 2,
	}

	l := Restore(snap, nil)
	assert.Equal(t, StatusPerfect, l.Status("heart-01"))
	assert.Equal(t, StatusCompleted, l.Status("heart-02"))
	assert.Equal(t, StatusLocked, l.Status("bogus-99"))
	assert.Equal(t, StatusUncompleted, l.Status("lung-01"))
	assert.Equal(t, 120, l.XP())
	assert.Equal(t, 2, l.Crowns())
}

func TestNextLessonKey(t *testing.T) {
	tests := []struct {
		topic, lesson string
		want          string
		ok            bool
	}{
		{"heart", "01", "heart-02", true},
		{"heart", "03", "heart-04", true},
		{"heart", "08", "heart-09", true},
		{"heart", "09", "", false},
		{"heart", "review", "", false},
		{"ear", "bogus", "", false},
	}

	for _, tt := range tests {
		got, ok := NextLessonKey(tt.topic, tt.lesson)
		assert.Equal(t, tt.ok, ok, "%s-%s", tt.topic, tt.lesson)
		assert.Equal(t, tt.want, got)
	}
}

func TestSplitKey(t *testing.T) {
	topic, lesson, ok := SplitKey("heart-review")
	require.True(t, ok)
	assert.Equal(t, "heart", topic)
	assert.Equal(t, "review", lesson)

	_, _, ok = SplitKey("noseparator")
	assert.False(t, ok)
}

func TestParseStatus(t *testing.T) {
	assert.Equal(t, StatusPerfect, ParseStatus("perfect"))
	assert.Equal(t, StatusLocked, ParseStatus("garbage"))
}
