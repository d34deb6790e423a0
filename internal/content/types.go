package content

// Type identifies an exercise category. The set is closed: every exercise
// belongs to exactly one collection keyed by its type.
type Type string

const (
	TypeQuestion  Type = "question"
	TypeTrueFalse Type = "truefalse"
	TypeCloze     Type = "cloze"
	TypeMatching  Type = "matching"
	TypeOrdering  Type = "ordering"
	TypeLabeling  Type = "labeling"
	TypeHotspot   Type = "hotspot"
	TypePuzzle    Type = "puzzle"
	TypeMemory    Type = "memory"
	TypeSlider    Type = "slider"
)

// AllTypes lists every exercise type in collection order.
var AllTypes = []Type{
	TypeQuestion, TypeTrueFalse, TypeCloze, TypeMatching, TypeOrdering,
	TypeLabeling, TypeHotspot, TypePuzzle, TypeMemory, TypeSlider,
}

// DefaultLanguage is the fallback language for localized text.
const DefaultLanguage = "en"

// LocalizedText maps a language code to the text in that language.
type LocalizedText map[string]string

// Get returns the text for lang, falling back to English, then to any
// available translation.
func (t LocalizedText) Get(lang string) string {
	if s, ok := t[lang]; ok {
		return s
	}
	if s, ok := t[DefaultLanguage]; ok {
		return s
	}
	for _, s := range t {
		return s
	}
	return ""
}

// Point is a coordinate in an exercise's image space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Region is a named polygon in an exercise's image space.
type Region struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// MatchMode selects how a matching exercise is evaluated.
type MatchMode string

const (
	// MatchEvaluate collects all assignments, then evaluates once every
	// left card has a right card attached.
	MatchEvaluate MatchMode = "evaluate"

	// MatchRepel checks each drop immediately: a correct drop consumes the
	// right card, an incorrect drop is rejected. The exercise cannot end
	// incorrect.
	MatchRepel MatchMode = "repel"
)

// ChoicePayload backs question and cloze exercises: a prompt with one
// designated correct option (1-based).
type ChoicePayload struct {
	Prompt        LocalizedText   `json:"prompt"`
	Options       []LocalizedText `json:"options"`
	CorrectOption int             `json:"correct_option"`
}

// TrueFalsePayload backs truefalse exercises.
type TrueFalsePayload struct {
	Statement LocalizedText `json:"statement"`
	Answer    bool          `json:"answer"`
}

// MatchPair is one left/right card pair of a matching or memory exercise.
type MatchPair struct {
	A LocalizedText `json:"a"`
	B LocalizedText `json:"b"`
}

// MatchingPayload backs matching exercises.
type MatchingPayload struct {
	Prompt LocalizedText `json:"prompt"`
	Mode   MatchMode     `json:"mode"`
	Pairs  []MatchPair   `json:"pairs"`
}

// OrderingPayload backs ordering exercises. Items are stored in canonical
// order; item ids are their indexes into Items.
type OrderingPayload struct {
	Prompt LocalizedText   `json:"prompt"`
	Items  []LocalizedText `json:"items"`
}

// Label is one draggable label of a labeling exercise and the region it
// belongs on.
type Label struct {
	Text   LocalizedText `json:"text"`
	Target string        `json:"target"`
}

// LabelingPayload backs labeling exercises: labels dropped onto named
// polygon regions.
type LabelingPayload struct {
	Prompt  LocalizedText `json:"prompt"`
	Regions []Region      `json:"regions"`
	Labels  []Label       `json:"labels"`
}

// HotspotPayload backs hotspot exercises: a single click resolved against
// named polygon regions.
type HotspotPayload struct {
	Prompt  LocalizedText `json:"prompt"`
	Regions []Region      `json:"regions"`
	Target  string        `json:"target"`
}

// PuzzlePiece is one draggable puzzle piece and its target anchor.
type PuzzlePiece struct {
	Name   string `json:"name"`
	Anchor Point  `json:"anchor"`
}

// PuzzlePayload backs puzzle exercises. A piece dropped within
// SnapThreshold of its anchor locks in place.
type PuzzlePayload struct {
	Prompt        LocalizedText `json:"prompt"`
	SnapThreshold float64       `json:"snap_threshold"`
	Pieces        []PuzzlePiece `json:"pieces"`
}

// DefaultSnapThreshold is used when a puzzle does not specify its own.
const DefaultSnapThreshold = 20

// MemoryPayload backs memory exercises: hidden card pairs revealed two at
// a time.
type MemoryPayload struct {
	Prompt LocalizedText `json:"prompt"`
	Pairs  []MatchPair   `json:"pairs"`
}

// SliderPayload backs slider exercises: a numeric guess within tolerance.
type SliderPayload struct {
	Prompt    LocalizedText `json:"prompt"`
	Min       float64       `json:"min"`
	Max       float64       `json:"max"`
	Step      float64       `json:"step"`
	Unit      string        `json:"unit"`
	Correct   float64       `json:"correct"`
	Tolerance float64       `json:"tolerance"`
}

// Exercise is one immutable content record. Exactly one payload field is
// non-nil, matching Type.
type Exercise struct {
	ID    int    `json:"id"`
	Topic string `json:"topic"`
	Type  Type   `json:"-"`

	Choice    *ChoicePayload    `json:"choice,omitempty"`
	TrueFalse *TrueFalsePayload `json:"truefalse,omitempty"`
	Matching  *MatchingPayload  `json:"matching,omitempty"`
	Ordering  *OrderingPayload  `json:"ordering,omitempty"`
	Labeling  *LabelingPayload  `json:"labeling,omitempty"`
	Hotspot   *HotspotPayload   `json:"hotspot,omitempty"`
	Puzzle    *PuzzlePayload    `json:"puzzle,omitempty"`
	Memory    *MemoryPayload    `json:"memory,omitempty"`
	Slider    *SliderPayload    `json:"slider,omitempty"`
}
