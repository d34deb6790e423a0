package content

import "strings"

// topicTitles holds display names for the shipped topics.
var topicTitles = map[string]LocalizedText{
	"lung":  {"en": "Lung", "de": "Lunge"},
	"heart": {"en": "Heart", "de": "Herz"},
	"ear":   {"en": "Ear", "de": "Ohr"},
}

// TopicTitle returns the display name of a topic in the given language.
// Unknown topics fall back to their capitalized id.
func TopicTitle(topicID, lang string) string {
	if t, ok := topicTitles[topicID]; ok {
		return t.Get(lang)
	}
	if topicID == "" {
		return ""
	}
	return strings.ToUpper(topicID[:1]) + topicID[1:]
}
