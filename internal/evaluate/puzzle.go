package evaluate

import (
	"math"

	"github.com/janadahlmanns/OrganIQ/internal/content"
)

// PieceState is the live position of one puzzle piece.
type PieceState struct {
	Pos    content.Point
	Locked bool
}

// PuzzleState runs a jigsaw exercise: each piece is independently
// draggable until it is dropped within the snap threshold of its anchor,
// at which point it locks at the exact anchor position. There is no
// incorrect terminal state, only incomplete vs. complete.
type PuzzleState struct {
	anchors   map[string]content.Point
	pieces    map[string]*PieceState
	threshold float64
}

// NewPuzzleState creates a puzzle session with the given scattered start
// positions, keyed by piece name. Pieces without a start position begin
// at the origin.
func NewPuzzleState(p *content.PuzzlePayload, start map[string]content.Point) *PuzzleState {
	threshold := p.SnapThreshold
	if threshold <= 0 {
		threshold = content.DefaultSnapThreshold
	}

	s := &PuzzleState{
		anchors:   make(map[string]content.Point, len(p.Pieces)),
		pieces:    make(map[string]*PieceState, len(p.Pieces)),
		threshold: threshold,
	}
	for _, piece := range p.Pieces {
		s.anchors[piece.Name] = piece.Anchor
		s.pieces[piece.Name] = &PieceState{Pos: start[piece.Name]}
	}
	return s
}

// Drop moves the named piece to pos. If pos lies within the snap
// threshold of the piece's anchor, the piece locks at the exact anchor
// coordinates and can no longer be moved. Returns true when the piece
// snapped.
func (s *PuzzleState) Drop(name string, pos content.Point) bool {
	piece, ok := s.pieces[name]
	if !ok || piece.Locked {
		return false
	}

	anchor := s.anchors[name]
	if math.Hypot(pos.X-anchor.X, pos.Y-anchor.Y) < s.threshold {
		piece.Pos = anchor
		piece.Locked = true
		return true
	}
	piece.Pos = pos
	return false
}

// Piece returns the live state of the named piece.
func (s *PuzzleState) Piece(name string) (PieceState, bool) {
	p, ok := s.pieces[name]
	if !ok {
		return PieceState{}, false
	}
	return *p, true
}

// Complete reports whether every piece is locked.
func (s *PuzzleState) Complete() bool {
	for _, p := range s.pieces {
		if !p.Locked {
			return false
		}
	}
	return true
}
