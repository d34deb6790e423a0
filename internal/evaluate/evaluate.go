// Package evaluate holds one pure evaluator per exercise type plus the
// small state machines backing the interactive types (matching, puzzle,
// memory). Evaluators never mutate shared state; they map a response and
// an exercise's answer key to a verdict.
package evaluate

import (
	"fmt"
	"math"
	"slices"

	"github.com/samber/lo"

	"github.com/janadahlmanns/OrganIQ/internal/content"
)

// Result is the verdict for one completed exercise step.
type Result struct {
	// Incorrect is true when the response missed the answer key. The
	// correct-by-construction types (repel matching, puzzle, memory)
	// never set it.
	Incorrect bool

	// ProgressAfter is the session progress once this step is counted,
	// capped at 100.
	ProgressAfter float64

	// PerItem carries per-item verdicts for partial-credit types
	// (matching evaluate mode, labeling), keyed by the item's index in
	// the exercise payload. Nil for single-verdict types.
	PerItem map[int]bool
}

// Response is the participant's answer to one exercise. Exactly one
// concrete type matches each exercise type.
type Response interface {
	isResponse()
}

// ChoiceResponse answers question and cloze exercises with a 1-based
// option index.
type ChoiceResponse struct {
	Option int
}

// TrueFalseResponse answers truefalse exercises.
type TrueFalseResponse struct {
	Answer bool
}

// OrderingResponse is the participant's final item order, as indexes into
// the canonical item list.
type OrderingResponse struct {
	Order []int
}

// AssignmentsResponse is the final left→right assignment of an
// evaluate-mode matching exercise, as pair indexes.
type AssignmentsResponse struct {
	Assignments map[int]int
}

// RepelResponse reports a finished repel-mode matching exercise. Repel
// sessions are correct by construction once every right card is consumed.
type RepelResponse struct {
	Combo int
}

// PointResponse is a click position for hotspot exercises.
type PointResponse struct {
	Point content.Point
}

// LabelDropsResponse holds one drop position per label, indexed like the
// exercise's label list.
type LabelDropsResponse struct {
	Drops []content.Point
}

// PuzzleResponse reports a finished puzzle. Puzzles only complete; they
// cannot end incorrect.
type PuzzleResponse struct{}

// MemoryResponse reports a finished memory game with its move count.
type MemoryResponse struct {
	Moves int
}

// SliderResponse is the numeric value chosen on a slider exercise.
type SliderResponse struct {
	Value float64
}

func (ChoiceResponse) isResponse()      {}
func (TrueFalseResponse) isResponse()   {}
func (OrderingResponse) isResponse()    {}
func (AssignmentsResponse) isResponse() {}
func (RepelResponse) isResponse()       {}
func (PointResponse) isResponse()       {}
func (LabelDropsResponse) isResponse()  {}
func (PuzzleResponse) isResponse()      {}
func (MemoryResponse) isResponse()      {}
func (SliderResponse) isResponse()      {}

// Evaluate dispatches to the evaluator for the exercise's type. before is
// the session progress entering this step; step is the per-step increment.
func Evaluate(ex *content.Exercise, resp Response, before, step float64) (Result, error) {
	after := progressAfter(before, step)

	switch ex.Type {
	case content.TypeQuestion, content.TypeCloze:
		r, ok := resp.(ChoiceResponse)
		if !ok {
			return Result{}, mismatch(ex, resp)
		}
		return Result{Incorrect: r.Option != ex.Choice.CorrectOption, ProgressAfter: after}, nil

	case content.TypeTrueFalse:
		r, ok := resp.(TrueFalseResponse)
		if !ok {
			return Result{}, mismatch(ex, resp)
		}
		return Result{Incorrect: r.Answer != ex.TrueFalse.Answer, ProgressAfter: after}, nil

	case content.TypeOrdering:
		r, ok := resp.(OrderingResponse)
		if !ok {
			return Result{}, mismatch(ex, resp)
		}
		return Result{Incorrect: !orderingCorrect(r.Order, len(ex.Ordering.Items)), ProgressAfter: after}, nil

	case content.TypeMatching:
		switch ex.Matching.Mode {
		case content.MatchRepel:
			if _, ok := resp.(RepelResponse); !ok {
				return Result{}, mismatch(ex, resp)
			}
			return Result{ProgressAfter: after}, nil
		default:
			r, ok := resp.(AssignmentsResponse)
			if !ok {
				return Result{}, mismatch(ex, resp)
			}
			perItem := assignmentsVerdicts(ex.Matching, r.Assignments)
			allCorrect := lo.EveryBy(lo.Values(perItem), func(ok bool) bool { return ok })
			return Result{Incorrect: !allCorrect, ProgressAfter: after, PerItem: perItem}, nil
		}

	case content.TypeHotspot:
		r, ok := resp.(PointResponse)
		if !ok {
			return Result{}, mismatch(ex, resp)
		}
		name, hit := ResolveRegion(r.Point, ex.Hotspot.Regions)
		return Result{Incorrect: !hit || name != ex.Hotspot.Target, ProgressAfter: after}, nil

	case content.TypeLabeling:
		r, ok := resp.(LabelDropsResponse)
		if !ok {
			return Result{}, mismatch(ex, resp)
		}
		perItem, allCorrect := labelingVerdicts(ex.Labeling, r.Drops)
		return Result{Incorrect: !allCorrect, ProgressAfter: after, PerItem: perItem}, nil

	case content.TypePuzzle:
		if _, ok := resp.(PuzzleResponse); !ok {
			return Result{}, mismatch(ex, resp)
		}
		return Result{ProgressAfter: after}, nil

	case content.TypeMemory:
		if _, ok := resp.(MemoryResponse); !ok {
			return Result{}, mismatch(ex, resp)
		}
		return Result{ProgressAfter: after}, nil

	case content.TypeSlider:
		r, ok := resp.(SliderResponse)
		if !ok {
			return Result{}, mismatch(ex, resp)
		}
		within := math.Abs(r.Value-ex.Slider.Correct) <= ex.Slider.Tolerance
		return Result{Incorrect: !within, ProgressAfter: after}, nil
	}

	return Result{}, fmt.Errorf("no evaluator for type %q", ex.Type)
}

// orderingCorrect checks exact list equality against the canonical order
// 0..n-1. No partial credit.
func orderingCorrect(order []int, n int) bool {
	if len(order) != n {
		return false
	}
	canonical := make([]int, n)
	for i := range canonical {
		canonical[i] = i
	}
	return slices.Equal(order, canonical)
}

// assignmentsVerdicts produces a per-left-card verdict for evaluate-mode
// matching. A missing attachment counts as incorrect.
func assignmentsVerdicts(p *content.MatchingPayload, assignments map[int]int) map[int]bool {
	perItem := make(map[int]bool, len(p.Pairs))
	for i := range p.Pairs {
		right, attached := assignments[i]
		perItem[i] = attached && right == i
	}
	return perItem
}

// labelingVerdicts resolves each drop point against the region set and
// compares the hit region to the label's target.
func labelingVerdicts(p *content.LabelingPayload, drops []content.Point) (map[int]bool, bool) {
	perItem := make(map[int]bool, len(p.Labels))
	allCorrect := len(drops) == len(p.Labels)
	for i, label := range p.Labels {
		if i >= len(drops) {
			perItem[i] = false
			continue
		}
		name, hit := ResolveRegion(drops[i], p.Regions)
		ok := hit && name == label.Target
		perItem[i] = ok
		if !ok {
			allCorrect = false
		}
	}
	return perItem, allCorrect
}

func progressAfter(before, step float64) float64 {
	return math.Min(before+step, 100)
}

func mismatch(ex *content.Exercise, resp Response) error {
	return fmt.Errorf("response %T does not answer a %s exercise", resp, ex.Type)
}
