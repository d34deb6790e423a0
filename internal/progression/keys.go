package progression

import (
	"fmt"
	"strconv"
	"strings"
)

// Topics are the subject groupings shipped with the app, in menu order.
var Topics = []string{"lung", "heart", "ear"}

// LessonIDs are the lessons of every topic, in unlock order. "01" and
// "review" start uncompleted; the rest start locked.
var LessonIDs = []string{"01", "02", "03", "04", "05", "06", "07", "08", "09", "review"}

// ReviewLessonID is the per-topic review lesson.
const ReviewLessonID = "review"

// lastNumberedLesson is the final sequential lesson; completing it
// unlocks nothing.
const lastNumberedLesson = "09"

// Key builds the ledger key for a lesson, e.g. "heart-03".
func Key(topicID, lessonID string) string {
	return topicID + "-" + lessonID
}

// SplitKey splits a ledger key back into topic and lesson ids.
func SplitKey(key string) (topicID, lessonID string, ok bool) {
	i := strings.LastIndex(key, "-")
	if i <= 0 || i == len(key)-1 {
		return "", "", false
	}
	return key[:i], key[i+1:], true
}

// NextLessonKey returns the key of the lesson unlocked by completing the
// given lesson. Completing the last numbered lesson or the review lesson
// unlocks nothing.
func NextLessonKey(topicID, lessonID string) (string, bool) {
	if lessonID == ReviewLessonID || lessonID == lastNumberedLesson {
		return "", false
	}
	n, err := strconv.Atoi(lessonID)
	if err != nil {
		return "", false
	}
	return Key(topicID, fmt.Sprintf("%02d", n+1)), true
}
