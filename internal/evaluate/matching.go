package evaluate

// DropOutcome classifies one drop in a matching exercise.
type DropOutcome int

const (
	// DropIgnored means the target already holds a solved or attached
	// card; the drop changes nothing.
	DropIgnored DropOutcome = iota

	// DropRejected means the pair was wrong; the current right card
	// stays in play.
	DropRejected

	// DropSolved means the pair matched and the right card is consumed.
	DropSolved
)

// RepelState runs a repel-mode matching exercise: right cards are served
// one at a time from a queue; a correct drop permanently consumes the
// current card, a wrong drop bounces off. The exercise can only end
// complete; there is no incorrect terminal state.
type RepelState struct {
	queue  []int
	solved map[int]bool
	combo  int
}

// NewRepelState creates a repel session serving right cards in queue
// order. Queue entries are pair indexes; the caller decides the order
// (typically shuffled for display).
func NewRepelState(queue []int) *RepelState {
	q := make([]int, len(queue))
	copy(q, queue)
	return &RepelState{queue: q, solved: make(map[int]bool)}
}

// Current returns the pair index of the right card in play.
func (s *RepelState) Current() (int, bool) {
	if len(s.queue) == 0 {
		return 0, false
	}
	return s.queue[0], true
}

// Drop attempts to place the current right card on the left card at pair
// index left. A solved left card ignores further drops.
func (s *RepelState) Drop(left int) DropOutcome {
	current, ok := s.Current()
	if !ok || s.solved[left] {
		return DropIgnored
	}
	if left != current {
		return DropRejected
	}
	s.solved[left] = true
	s.combo++
	s.queue = s.queue[1:]
	return DropSolved
}

// Solved reports whether the left card at pair index left is consumed.
func (s *RepelState) Solved(left int) bool {
	return s.solved[left]
}

// Combo returns the count of correct drops so far.
func (s *RepelState) Combo() int {
	return s.combo
}

// Done reports whether every right card has been consumed.
func (s *RepelState) Done() bool {
	return len(s.queue) == 0
}

// Response builds the terminal response for a finished repel session.
func (s *RepelState) Response() RepelResponse {
	return RepelResponse{Combo: s.combo}
}

// AssignState runs an evaluate-mode matching exercise: right cards are
// attached to left cards one at a time and can be reassigned freely;
// nothing is judged until every left card holds a card.
type AssignState struct {
	queue    []int
	attached map[int]int // left pair index -> right pair index
	total    int
}

// NewAssignState creates an evaluate-mode session serving right cards in
// queue order over total pairs.
func NewAssignState(queue []int, total int) *AssignState {
	q := make([]int, len(queue))
	copy(q, queue)
	return &AssignState{queue: q, attached: make(map[int]int), total: total}
}

// Current returns the pair index of the next unattached right card.
func (s *AssignState) Current() (int, bool) {
	if len(s.queue) == 0 {
		return 0, false
	}
	return s.queue[0], true
}

// Attach places right onto left. If right already sits on another left
// card it moves; if left already held a card, that card returns to the
// front of the queue.
func (s *AssignState) Attach(left, right int) {
	for l, r := range s.attached {
		if r == right {
			delete(s.attached, l)
			break
		}
	}

	newQueue := make([]int, 0, len(s.queue))
	for _, r := range s.queue {
		if r != right {
			newQueue = append(newQueue, r)
		}
	}
	if old, held := s.attached[left]; held {
		newQueue = append([]int{old}, newQueue...)
	}

	s.attached[left] = right
	s.queue = newQueue
}

// Attached returns the right card on left, if any.
func (s *AssignState) Attached(left int) (int, bool) {
	r, ok := s.attached[left]
	return r, ok
}

// Complete reports whether every left card holds a right card. Partial
// attachments never trigger evaluation.
func (s *AssignState) Complete() bool {
	return len(s.attached) == s.total
}

// Response builds the evaluation response from the final assignments.
func (s *AssignState) Response() AssignmentsResponse {
	assignments := make(map[int]int, len(s.attached))
	for l, r := range s.attached {
		assignments[l] = r
	}
	return AssignmentsResponse{Assignments: assignments}
}
