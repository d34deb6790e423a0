package store

import (
	"encoding/json"

	"github.com/janadahlmanns/OrganIQ/internal/session"
)

// SaveSession persists the live lesson attempt, replacing any previous
// one. There is at most one attempt at a time.
func (s *Store) SaveSession(rec session.Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.putSingleRow("attempt", payload)
}

// LoadSession returns the persisted lesson attempt, or nil when none
// exists. A record that fails to decode is treated as absent and
// logged; starting fresh beats crashing over a broken row.
func (s *Store) LoadSession() *session.Record {
	payload, err := s.singleRow("attempt")
	if isNoRows(err) {
		return nil
	}
	if err != nil {
		s.log.WithError(err).Warn("reading persisted attempt")
		return nil
	}

	var rec session.Record
	if err := json.Unmarshal(payload, &rec); err != nil {
		s.log.WithError(err).Warn("discarding corrupt persisted attempt")
		return nil
	}
	return &rec
}

// ClearSession removes the persisted lesson attempt.
func (s *Store) ClearSession() error {
	_, err := s.db.Exec("DELETE FROM attempt WHERE id = 1")
	return err
}
