package store

import (
	"encoding/json"

	"github.com/janadahlmanns/OrganIQ/internal/progression"
)

// SaveLedger persists the full progression snapshot. Called by the
// ledger after every mutation.
func (s *Store) SaveLedger(snap progression.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.putSingleRow("ledger", payload)
}

// LoadLedger returns the persisted progression snapshot. ok is false
// when no snapshot has been saved yet or the stored one is corrupt; the
// caller then starts from initial progression.
func (s *Store) LoadLedger() (snap progression.Snapshot, ok bool) {
	payload, err := s.singleRow("ledger")
	if isNoRows(err) {
		return progression.Snapshot{}, false
	}
	if err != nil {
		s.log.WithError(err).Warn("reading persisted progression")
		return progression.Snapshot{}, false
	}

	if err := json.Unmarshal(payload, &snap); err != nil {
		s.log.WithError(err).Warn("discarding corrupt persisted progression")
		return progression.Snapshot{}, false
	}
	return snap, true
}

// ClearLedger removes the persisted progression snapshot.
func (s *Store) ClearLedger() error {
	_, err := s.db.Exec("DELETE FROM ledger WHERE id = 1")
	return err
}
