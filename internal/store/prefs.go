package store

import "database/sql"

// Preference keys.
const (
	PrefLastTopic = "last_topic"
	PrefLanguage  = "language"
)

// SetPref stores a preference value under key.
func (s *Store) SetPref(key, value string) error {
	_, err := s.db.Exec(
		"INSERT INTO prefs (key, value) VALUES (?, ?) "+
			"ON CONFLICT (key) DO UPDATE SET value = excluded.value",
		key, value)
	return err
}

// Pref returns the preference value for key, or "" when unset.
func (s *Store) Pref(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM prefs WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

// SetLastTopic remembers the most recently played topic.
func (s *Store) SetLastTopic(topicID string) error {
	return s.SetPref(PrefLastTopic, topicID)
}

// LastTopic returns the most recently played topic, or "" when none.
func (s *Store) LastTopic() string {
	topic, err := s.Pref(PrefLastTopic)
	if err != nil {
		s.log.WithError(err).Warn("reading last topic")
		return ""
	}
	return topic
}
