package lesson

import (
	"math/rand"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/janadahlmanns/OrganIQ/internal/content"
	"github.com/janadahlmanns/OrganIQ/internal/evaluate"
	"github.com/janadahlmanns/OrganIQ/internal/ui/theme"
)

// assignModel handles evaluate-mode matching: right cards are served
// one at a time and attached to a chosen left card; everything is
// judged once all left cards hold a card.
type assignModel struct {
	prompt string
	pairs  []content.MatchPair
	lang   string

	state  *evaluate.AssignState
	cursor int
}

func newAssignModel(p *content.MatchingPayload, lang string) *assignModel {
	return &assignModel{
		prompt: p.Prompt.Get(lang),
		pairs:  p.Pairs,
		lang:   lang,
		state:  evaluate.NewAssignState(rand.Perm(len(p.Pairs)), len(p.Pairs)),
	}
}

func (m *assignModel) update(msg tea.Msg) (exerciseModel, tea.Cmd) {
	if m.state.Complete() {
		return m, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.pairs)-1 {
			m.cursor++
		}
	case "enter":
		if right, ok := m.state.Current(); ok {
			m.state.Attach(m.cursor, right)
		}
	}
	return m, nil
}

func (m *assignModel) view(width int) string {
	s := promptStyle.Render(m.prompt) + "\n\n"

	if right, ok := m.state.Current(); ok {
		s += theme.Body.Render("Place: ") +
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
				Render(m.pairs[right].B.Get(m.lang)) + "\n\n"
	}

	for i, pair := range m.pairs {
		line := pair.A.Get(m.lang)
		if r, attached := m.state.Attached(i); attached {
			line += theme.Hint.Render("  ⇠ " + m.pairs[r].B.Get(m.lang))
		}
		if i == m.cursor && !m.state.Complete() {
			s += theme.Selected.Render("  ▸ "+line) + "\n"
		} else {
			s += theme.Body.Render("    "+line) + "\n"
		}
	}
	return s
}

func (m *assignModel) response() (evaluate.Response, bool) {
	if !m.state.Complete() {
		return nil, false
	}
	return m.state.Response(), true
}

// repelModel handles repel-mode matching: the served right card bounces
// off wrong left cards and is consumed by the right one.
type repelModel struct {
	prompt string
	pairs  []content.MatchPair
	lang   string

	state    *evaluate.RepelState
	cursor   int
	rejected bool
}

func newRepelModel(p *content.MatchingPayload, lang string) *repelModel {
	return &repelModel{
		prompt: p.Prompt.Get(lang),
		pairs:  p.Pairs,
		lang:   lang,
		state:  evaluate.NewRepelState(rand.Perm(len(p.Pairs))),
	}
}

func (m *repelModel) update(msg tea.Msg) (exerciseModel, tea.Cmd) {
	if m.state.Done() {
		return m, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch kmsg.String() {
	case "up", "k":
		m.rejected = false
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		m.rejected = false
		if m.cursor < len(m.pairs)-1 {
			m.cursor++
		}
	case "enter":
		m.rejected = m.state.Drop(m.cursor) == evaluate.DropRejected
	}
	return m, nil
}

func (m *repelModel) view(width int) string {
	s := promptStyle.Render(m.prompt) + "\n\n"

	if current, ok := m.state.Current(); ok {
		s += theme.Body.Render("Match: ") +
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
				Render(m.pairs[current].B.Get(m.lang)) + "\n\n"
	}

	for i, pair := range m.pairs {
		line := pair.A.Get(m.lang)
		switch {
		case m.state.Solved(i):
			s += theme.Correct.Render("  ✓ "+line) + "\n"
		case i == m.cursor && !m.state.Done():
			s += theme.Selected.Render("  ▸ "+line) + "\n"
		default:
			s += theme.Body.Render("    "+line) + "\n"
		}
	}

	if m.rejected {
		s += "\n" + theme.Incorrect.Render("  bounced off, try another card")
	}
	return s
}

func (m *repelModel) response() (evaluate.Response, bool) {
	if !m.state.Done() {
		return nil, false
	}
	return m.state.Response(), true
}

// puzzleModel handles puzzle exercises: picking a piece drops it on its
// anchor, where it snaps and locks.
type puzzleModel struct {
	prompt string
	pieces []content.PuzzlePiece
	state  *evaluate.PuzzleState
	cursor int
}

func newPuzzleModel(p *content.PuzzlePayload, lang string) *puzzleModel {
	// Pieces start scattered away from their anchors.
	start := make(map[string]content.Point, len(p.Pieces))
	for i, piece := range p.Pieces {
		start[piece.Name] = content.Point{X: float64(100 * i), Y: -50}
	}
	return &puzzleModel{
		prompt: p.Prompt.Get(lang),
		pieces: p.Pieces,
		state:  evaluate.NewPuzzleState(p, start),
	}
}

func (m *puzzleModel) update(msg tea.Msg) (exerciseModel, tea.Cmd) {
	if m.state.Complete() {
		return m, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.pieces)-1 {
			m.cursor++
		}
	case "enter":
		piece := m.pieces[m.cursor]
		m.state.Drop(piece.Name, piece.Anchor)
	}
	return m, nil
}

func (m *puzzleModel) view(width int) string {
	s := promptStyle.Render(m.prompt) + "\n\n"
	for i, piece := range m.pieces {
		locked := false
		if ps, ok := m.state.Piece(piece.Name); ok {
			locked = ps.Locked
		}
		switch {
		case locked:
			s += theme.Correct.Render("  ✓ "+piece.Name) + "\n"
		case i == m.cursor && !m.state.Complete():
			s += theme.Selected.Render("  ▸ "+piece.Name) + "\n"
		default:
			s += theme.Body.Render("    "+piece.Name) + "\n"
		}
	}
	return s
}

func (m *puzzleModel) response() (evaluate.Response, bool) {
	if !m.state.Complete() {
		return nil, false
	}
	return evaluate.PuzzleResponse{}, true
}

// memoryModel handles memory exercises: a shuffled deck revealed two
// cards at a time.
type memoryModel struct {
	prompt string
	lang   string
	state  *evaluate.MemoryState
	cursor int

	// mismatch holds the two face-up cards of a failed pair until the
	// next keypress hides them again.
	mismatch bool
}

func newMemoryModel(p *content.MemoryPayload, lang string) *memoryModel {
	deck := evaluate.Deck(p)
	rand.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	return &memoryModel{
		prompt: p.Prompt.Get(lang),
		lang:   lang,
		state:  evaluate.NewMemoryState(deck),
	}
}

func (m *memoryModel) update(msg tea.Msg) (exerciseModel, tea.Cmd) {
	if m.state.Complete() {
		return m, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.mismatch {
		m.state.ResolvePending()
		m.mismatch = false
	}

	switch kmsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.state.Cards()-1 {
			m.cursor++
		}
	case "enter":
		if m.state.Reveal(m.cursor) == evaluate.RevealMismatch {
			m.mismatch = true
		}
	}
	return m, nil
}

func (m *memoryModel) view(width int) string {
	s := promptStyle.Render(m.prompt) + "\n\n"
	for i := 0; i < m.state.Cards(); i++ {
		label := "▢ ┄┄┄┄┄"
		style := theme.Body
		if m.state.FaceUp(i) {
			label = m.state.Card(i).Face.Get(m.lang)
			style = lipgloss.NewStyle().Foreground(theme.Accent)
		}
		if m.state.Solved(i) {
			label = m.state.Card(i).Face.Get(m.lang)
			style = theme.Correct
		}
		if i == m.cursor && !m.state.Complete() {
			s += theme.Selected.Render("  ▸ ") + style.Render(label) + "\n"
		} else {
			s += "    " + style.Render(label) + "\n"
		}
	}
	if m.mismatch {
		s += "\n" + theme.Incorrect.Render("  no match, keep looking")
	}
	return s
}

func (m *memoryModel) response() (evaluate.Response, bool) {
	if !m.state.Complete() {
		return nil, false
	}
	return m.state.Response(), true
}
