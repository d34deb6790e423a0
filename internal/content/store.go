package content

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

//go:embed data/*.json
var dataFS embed.FS

// ErrNotFound is returned when no exercise matches a lookup. Callers render
// a fallback and offer a way back to the menu; this is not a fatal error.
var ErrNotFound = errors.New("exercise not found")

// collectionFiles maps each exercise type to its embedded collection file.
var collectionFiles = map[Type]string{
	TypeQuestion:  "data/questions.json",
	TypeTrueFalse: "data/truefalse.json",
	TypeCloze:     "data/clozes.json",
	TypeMatching:  "data/matching.json",
	TypeOrdering:  "data/ordering.json",
	TypeLabeling:  "data/labeling.json",
	TypeHotspot:   "data/hotspots.json",
	TypePuzzle:    "data/puzzles.json",
	TypeMemory:    "data/memory.json",
	TypeSlider:    "data/sliders.json",
}

// Store is the read-only exercise catalog, loaded once at startup from the
// embedded collections and never mutated afterwards.
type Store struct {
	byType map[Type][]Exercise
	index  map[Type]map[int]int // type -> id -> position in byType[t]
}

// Load parses and validates every embedded collection into a Store.
func Load() (*Store, error) {
	s := &Store{
		byType: make(map[Type][]Exercise, len(collectionFiles)),
		index:  make(map[Type]map[int]int, len(collectionFiles)),
	}

	// Session plans persist bare exercise ids, so ids must stay unique
	// across all collections, not just within one.
	globalIDs := make(map[int]Type)

	for _, t := range AllTypes {
		raw, err := dataFS.ReadFile(collectionFiles[t])
		if err != nil {
			return nil, fmt.Errorf("read collection %q: %w", t, err)
		}
		if err := validateCollection(t, raw); err != nil {
			return nil, fmt.Errorf("collection %q: %w", t, err)
		}
		exercises, err := parseCollection(t, raw)
		if err != nil {
			return nil, fmt.Errorf("parse collection %q: %w", t, err)
		}

		idx := make(map[int]int, len(exercises))
		for i, ex := range exercises {
			if other, dup := globalIDs[ex.ID]; dup {
				return nil, fmt.Errorf("collection %q: id %d already used by %q", t, ex.ID, other)
			}
			globalIDs[ex.ID] = t
			idx[ex.ID] = i
		}
		s.byType[t] = exercises
		s.index[t] = idx
	}

	return s, nil
}

// Find returns the exercise with the given type and id, or ErrNotFound.
func (s *Store) Find(t Type, id int) (*Exercise, error) {
	idx, ok := s.index[t]
	if !ok {
		return nil, fmt.Errorf("type %q id %d: %w", t, id, ErrNotFound)
	}
	pos, ok := idx[id]
	if !ok {
		return nil, fmt.Errorf("type %q id %d: %w", t, id, ErrNotFound)
	}
	return &s.byType[t][pos], nil
}

// FindByID returns the exercise with the given id in any of the allowed
// type collections. Ids are only unique within a collection, so the allowed
// set must match the one the plan was built with.
func (s *Store) FindByID(id int, allowed []Type) (*Exercise, error) {
	for _, t := range allowed {
		if ex, err := s.Find(t, id); err == nil {
			return ex, nil
		}
	}
	return nil, fmt.Errorf("id %d: %w", id, ErrNotFound)
}

// ListEligible returns every exercise whose topic matches (case-insensitive)
// and whose type is in the allowed set, in stable collection order.
func (s *Store) ListEligible(topic string, allowed []Type) []Exercise {
	topic = strings.ToLower(topic)
	var out []Exercise
	for _, t := range allowed {
		for _, ex := range s.byType[t] {
			if strings.ToLower(ex.Topic) == topic {
				out = append(out, ex)
			}
		}
	}
	return out
}

// Topics returns the sorted set of topics present in the catalog.
func (s *Store) Topics() []string {
	seen := make(map[string]bool)
	for _, exercises := range s.byType {
		for _, ex := range exercises {
			seen[strings.ToLower(ex.Topic)] = true
		}
	}
	topics := make([]string, 0, len(seen))
	for t := range seen {
		topics = append(topics, t)
	}
	sort.Strings(topics)
	return topics
}

// Count returns the number of exercises of the given type, optionally
// restricted to a topic ("" = all).
func (s *Store) Count(t Type, topic string) int {
	if topic == "" {
		return len(s.byType[t])
	}
	topic = strings.ToLower(topic)
	n := 0
	for _, ex := range s.byType[t] {
		if strings.ToLower(ex.Topic) == topic {
			n++
		}
	}
	return n
}

// Collection envelope types. Each embedded file wraps its entries in a
// single keyed array, mirroring the shipped content format.

type choiceEntry struct {
	ID    int    `json:"id"`
	Topic string `json:"topic"`
	ChoicePayload
}

type trueFalseEntry struct {
	ID    int    `json:"id"`
	Topic string `json:"topic"`
	TrueFalsePayload
}

type matchingEntry struct {
	ID    int    `json:"id"`
	Topic string `json:"topic"`
	MatchingPayload
}

type orderingEntry struct {
	ID    int    `json:"id"`
	Topic string `json:"topic"`
	OrderingPayload
}

type labelingEntry struct {
	ID    int    `json:"id"`
	Topic string `json:"topic"`
	LabelingPayload
}

type hotspotEntry struct {
	ID    int    `json:"id"`
	Topic string `json:"topic"`
	HotspotPayload
}

type puzzleEntry struct {
	ID    int    `json:"id"`
	Topic string `json:"topic"`
	PuzzlePayload
}

type memoryEntry struct {
	ID    int    `json:"id"`
	Topic string `json:"topic"`
	MemoryPayload
}

type sliderEntry struct {
	ID    int    `json:"id"`
	Topic string `json:"topic"`
	SliderPayload
}

func parseCollection(t Type, raw []byte) ([]Exercise, error) {
	switch t {
	case TypeQuestion, TypeCloze:
		key := "questions"
		if t == TypeCloze {
			key = "clozes"
		}
		var doc map[string][]choiceEntry
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		out := make([]Exercise, 0, len(doc[key]))
		for _, e := range doc[key] {
			p := e.ChoicePayload
			if p.CorrectOption < 1 || p.CorrectOption > len(p.Options) {
				return nil, fmt.Errorf("id %d: correct_option %d out of range", e.ID, p.CorrectOption)
			}
			out = append(out, Exercise{ID: e.ID, Topic: e.Topic, Type: t, Choice: &p})
		}
		return out, nil

	case TypeTrueFalse:
		var doc struct {
			Entries []trueFalseEntry `json:"truefalse"`
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		out := make([]Exercise, 0, len(doc.Entries))
		for _, e := range doc.Entries {
			p := e.TrueFalsePayload
			out = append(out, Exercise{ID: e.ID, Topic: e.Topic, Type: t, TrueFalse: &p})
		}
		return out, nil

	case TypeMatching:
		var doc struct {
			Entries []matchingEntry `json:"matching"`
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		out := make([]Exercise, 0, len(doc.Entries))
		for _, e := range doc.Entries {
			p := e.MatchingPayload
			out = append(out, Exercise{ID: e.ID, Topic: e.Topic, Type: t, Matching: &p})
		}
		return out, nil

	case TypeOrdering:
		var doc struct {
			Entries []orderingEntry `json:"ordering"`
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		out := make([]Exercise, 0, len(doc.Entries))
		for _, e := range doc.Entries {
			p := e.OrderingPayload
			out = append(out, Exercise{ID: e.ID, Topic: e.Topic, Type: t, Ordering: &p})
		}
		return out, nil

	case TypeLabeling:
		var doc struct {
			Entries []labelingEntry `json:"labelings"`
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		out := make([]Exercise, 0, len(doc.Entries))
		for _, e := range doc.Entries {
			p := e.LabelingPayload
			if err := checkTargets(p.Regions, labelTargets(p.Labels)); err != nil {
				return nil, fmt.Errorf("id %d: %w", e.ID, err)
			}
			out = append(out, Exercise{ID: e.ID, Topic: e.Topic, Type: t, Labeling: &p})
		}
		return out, nil

	case TypeHotspot:
		var doc struct {
			Entries []hotspotEntry `json:"hotspots"`
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		out := make([]Exercise, 0, len(doc.Entries))
		for _, e := range doc.Entries {
			p := e.HotspotPayload
			if err := checkTargets(p.Regions, []string{p.Target}); err != nil {
				return nil, fmt.Errorf("id %d: %w", e.ID, err)
			}
			out = append(out, Exercise{ID: e.ID, Topic: e.Topic, Type: t, Hotspot: &p})
		}
		return out, nil

	case TypePuzzle:
		var doc struct {
			Entries []puzzleEntry `json:"puzzles"`
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		out := make([]Exercise, 0, len(doc.Entries))
		for _, e := range doc.Entries {
			p := e.PuzzlePayload
			if p.SnapThreshold <= 0 {
				p.SnapThreshold = DefaultSnapThreshold
			}
			out = append(out, Exercise{ID: e.ID, Topic: e.Topic, Type: t, Puzzle: &p})
		}
		return out, nil

	case TypeMemory:
		var doc struct {
			Entries []memoryEntry `json:"memory"`
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		out := make([]Exercise, 0, len(doc.Entries))
		for _, e := range doc.Entries {
			p := e.MemoryPayload
			out = append(out, Exercise{ID: e.ID, Topic: e.Topic, Type: t, Memory: &p})
		}
		return out, nil

	case TypeSlider:
		var doc struct {
			Entries []sliderEntry `json:"sliders"`
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		out := make([]Exercise, 0, len(doc.Entries))
		for _, e := range doc.Entries {
			p := e.SliderPayload
			if p.Min >= p.Max {
				return nil, fmt.Errorf("id %d: min %v >= max %v", e.ID, p.Min, p.Max)
			}
			out = append(out, Exercise{ID: e.ID, Topic: e.Topic, Type: t, Slider: &p})
		}
		return out, nil
	}

	return nil, fmt.Errorf("unknown type %q", t)
}

// checkTargets verifies that every referenced target names an existing region.
func checkTargets(regions []Region, targets []string) error {
	names := make(map[string]bool, len(regions))
	for _, r := range regions {
		names[r.Name] = true
	}
	for _, target := range targets {
		if !names[target] {
			return fmt.Errorf("target %q names no region", target)
		}
	}
	return nil
}

func labelTargets(labels []Label) []string {
	targets := make([]string, len(labels))
	for i, l := range labels {
		targets[i] = l.Target
	}
	return targets
}
