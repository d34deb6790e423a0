package evaluate

import "github.com/janadahlmanns/OrganIQ/internal/content"

// MemoryCard is one face-down card of a memory exercise.
type MemoryCard struct {
	PairID int
	Face   content.LocalizedText
}

// Deck builds the card deck for a memory exercise in pair order. The
// caller shuffles the deck for display before creating the state.
func Deck(p *content.MemoryPayload) []MemoryCard {
	deck := make([]MemoryCard, 0, 2*len(p.Pairs))
	for i, pair := range p.Pairs {
		deck = append(deck,
			MemoryCard{PairID: i, Face: pair.A},
			MemoryCard{PairID: i, Face: pair.B},
		)
	}
	return deck
}

// RevealOutcome classifies one card reveal.
type RevealOutcome int

const (
	// RevealIgnored means the card cannot be revealed right now (already
	// solved, already face up, or a mismatch is waiting to be resolved).
	RevealIgnored RevealOutcome = iota

	// RevealFirst means the card is the first of a pair attempt.
	RevealFirst

	// RevealMatch means the second card matched; both are solved.
	RevealMatch

	// RevealMismatch means the second card did not match. Both stay face
	// up until ResolvePending hides them (the UI owns the delay).
	RevealMismatch
)

// MemoryState runs a memory exercise: cards are revealed two at a time, a
// match solves both permanently, a mismatch reverts both after the UI's
// delay. The exercise never reports incorrect, only completion with a
// move count.
type MemoryState struct {
	cards    []MemoryCard
	solved   []bool
	revealed []int
	moves    int
	pending  bool
}

// NewMemoryState creates a memory session over the given (already
// shuffled) deck.
func NewMemoryState(cards []MemoryCard) *MemoryState {
	return &MemoryState{
		cards:  cards,
		solved: make([]bool, len(cards)),
	}
}

// Reveal turns the card at index i face up.
func (s *MemoryState) Reveal(i int) RevealOutcome {
	if s.pending || i < 0 || i >= len(s.cards) || s.solved[i] {
		return RevealIgnored
	}
	for _, r := range s.revealed {
		if r == i {
			return RevealIgnored
		}
	}

	s.revealed = append(s.revealed, i)
	if len(s.revealed) < 2 {
		return RevealFirst
	}

	s.moves++
	first, second := s.revealed[0], s.revealed[1]
	if s.cards[first].PairID == s.cards[second].PairID {
		s.solved[first] = true
		s.solved[second] = true
		s.revealed = nil
		return RevealMatch
	}
	s.pending = true
	return RevealMismatch
}

// ResolvePending hides a mismatched pair. The UI calls this after its
// reveal delay; until then further reveals are ignored.
func (s *MemoryState) ResolvePending() {
	if !s.pending {
		return
	}
	s.revealed = nil
	s.pending = false
}

// FaceUp reports whether the card at i is currently visible.
func (s *MemoryState) FaceUp(i int) bool {
	if i < 0 || i >= len(s.cards) {
		return false
	}
	if s.solved[i] {
		return true
	}
	for _, r := range s.revealed {
		if r == i {
			return true
		}
	}
	return false
}

// Solved reports whether the card at i is permanently matched.
func (s *MemoryState) Solved(i int) bool {
	return i >= 0 && i < len(s.cards) && s.solved[i]
}

// Pending reports whether a mismatched pair is waiting to be hidden.
func (s *MemoryState) Pending() bool {
	return s.pending
}

// Moves returns the number of pair attempts so far.
func (s *MemoryState) Moves() int {
	return s.moves
}

// Complete reports whether all cards are solved.
func (s *MemoryState) Complete() bool {
	for _, solved := range s.solved {
		if !solved {
			return false
		}
	}
	return true
}

// Cards returns the deck size.
func (s *MemoryState) Cards() int {
	return len(s.cards)
}

// Card returns the card at i.
func (s *MemoryState) Card(i int) MemoryCard {
	return s.cards[i]
}

// Response builds the terminal response for a finished memory session.
func (s *MemoryState) Response() MemoryResponse {
	return MemoryResponse{Moves: s.moves}
}
