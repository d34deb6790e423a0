// Package progression owns the durable per-lesson status map, XP counter
// and crown counter. All cross-session state flows through the Ledger's
// operations; every mutation is flushed to storage immediately so other
// screens observe consistent state on their next render.
package progression

import (
	"github.com/sirupsen/logrus"
)

// Status is the persisted completion state of one lesson.
type Status string

const (
	StatusLocked      Status = "locked"
	StatusUncompleted Status = "uncompleted"
	StatusCompleted   Status = "completed"
	StatusPerfect     Status = "perfect"
)

// ParseStatus maps a stored string to a Status, defaulting unknown values
// to locked so corrupt rows fail closed.
func ParseStatus(s string) Status {
	switch Status(s) {
	case StatusLocked, StatusUncompleted, StatusCompleted, StatusPerfect:
		return Status(s)
	}
	return StatusLocked
}

// XPPerLesson is granted on every lesson completion, perfect or not.
const XPPerLesson = 30

// Snapshot is the serializable form of the ledger.
type Snapshot struct {
	Lessons map[string]Status `json:"lessons"`
	XP      int               `json:"xp"`
	Crowns  int               `json:"crowns"`
}

// Saver persists ledger snapshots. Implemented by the store.
type Saver interface {
	SaveLedger(Snapshot) error
}

// Ledger is the single source of truth for lesson statuses, XP and
// crowns. It is owned by the composition root and mutated only through
// its operations.
type Ledger struct {
	lessons map[string]Status
	xp      int
	crowns  int
	saver   Saver
	log     logrus.FieldLogger
}

// initialLessons builds the startup pattern: lessons "01" and "review"
// per topic uncompleted, all others locked.
func initialLessons() map[string]Status {
	lessons := make(map[string]Status, len(Topics)*len(LessonIDs))
	for _, topic := range Topics {
		for _, lesson := range LessonIDs {
			status := StatusLocked
			if lesson == "01" || lesson == ReviewLessonID {
				status = StatusUncompleted
			}
			lessons[Key(topic, lesson)] = status
		}
	}
	return lessons
}

// New creates a ledger in the startup pattern. saver may be nil (tests).
func New(saver Saver) *Ledger {
	return &Ledger{
		lessons: initialLessons(),
		saver:   saver,
		log:     logrus.StandardLogger(),
	}
}

// Restore rebuilds a ledger from a persisted snapshot. Lessons missing
// from the snapshot (e.g. after a content update added a topic) get their
// initial status.
func Restore(snap Snapshot, saver Saver) *Ledger {
	l := New(saver)
	for key, status := range snap.Lessons {
		if _, known := l.lessons[key]; known {
			l.lessons[key] = status
		}
	}
	l.xp = max(snap.XP, 0)
	l.crowns = max(snap.Crowns, 0)
	return l
}

// SetLogger replaces the ledger's logger.
func (l *Ledger) SetLogger(log logrus.FieldLogger) {
	l.log = log
}

// Status returns the status of the lesson at key. Unknown keys read as
// locked.
func (l *Ledger) Status(key string) Status {
	if s, ok := l.lessons[key]; ok {
		return s
	}
	return StatusLocked
}

// XP returns the total experience points.
func (l *Ledger) XP() int {
	return l.xp
}

// Crowns returns the crown count.
func (l *Ledger) Crowns() int {
	return l.crowns
}

// CompleteLesson sets the lesson to completed unless it is already
// perfect. Perfect never downgrades.
func (l *Ledger) CompleteLesson(key string) {
	if l.lessons[key] == StatusPerfect {
		return
	}
	l.lessons[key] = StatusCompleted
	l.flush()
}

// PerfectLesson sets the lesson to perfect unconditionally.
func (l *Ledger) PerfectLesson(key string) {
	l.lessons[key] = StatusPerfect
	l.flush()
}

// UnlockLesson sets the lesson to uncompleted. Only meaningful when the
// lesson was locked; unlocking an already-progressed lesson would regress
// it, so those are left alone.
func (l *Ledger) UnlockLesson(key string) {
	if s, ok := l.lessons[key]; !ok || s != StatusLocked {
		return
	}
	l.lessons[key] = StatusUncompleted
	l.flush()
}

// AddXP adds n (n > 0) to the XP total.
func (l *Ledger) AddXP(n int) {
	if n <= 0 {
		return
	}
	l.xp += n
	l.flush()
}

// AddCrown increments the crown count.
func (l *Ledger) AddCrown() {
	l.crowns++
	l.flush()
}

// ResetProgress reinitializes the ledger to the startup pattern.
func (l *Ledger) ResetProgress() {
	l.lessons = initialLessons()
	l.xp = 0
	l.crowns = 0
	l.flush()
}

// Snapshot returns a copy of the ledger state for persistence or
// read-only consumers.
func (l *Ledger) Snapshot() Snapshot {
	lessons := make(map[string]Status, len(l.lessons))
	for k, v := range l.lessons {
		lessons[k] = v
	}
	return Snapshot{Lessons: lessons, XP: l.xp, Crowns: l.crowns}
}

func (l *Ledger) flush() {
	if l.saver == nil {
		return
	}
	if err := l.saver.SaveLedger(l.Snapshot()); err != nil {
		l.log.WithError(err).Warn("persist ledger")
	}
}
