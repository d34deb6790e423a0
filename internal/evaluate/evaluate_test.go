package evaluate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janadahlmanns/OrganIQ/internal/content"
)

func choiceExercise(correct int) *content.Exercise {
	return &content.Exercise{
		ID:   1,
		Type: content.TypeQuestion,
		Choice: &content.ChoicePayload{
			Prompt: content.LocalizedText{"en": "?"},
			Options: []content.LocalizedText{
				{"en": "a"}, {"en": "b"}, {"en": "c"}, {"en": "d"},
			},
			CorrectOption: correct,
		},
	}
}

func TestEvaluateChoice(t *testing.T) {
	ex := choiceExercise(3)

	res, err := Evaluate(ex, ChoiceResponse{Option: 3}, 0, 100.0/3)
	require.NoError(t, err)
	assert.False(t, res.Incorrect)
	assert.InDelta(t, 100.0/3, res.ProgressAfter, 1e-9)

	res, err = Evaluate(ex, ChoiceResponse{Option: 1}, 0, 100.0/3)
	require.NoError(t, err)
	assert.True(t, res.Incorrect)
}

func TestEvaluateProgressCappedAt100(t *testing.T) {
	res, err := Evaluate(choiceExercise(1), ChoiceResponse{Option: 1}, 90, 100.0/3)
	require.NoError(t, err)
	assert.Equal(t, 100.0, res.ProgressAfter)
}

func TestEvaluateResponseTypeMismatch(t *testing.T) {
	_, err := Evaluate(choiceExercise(1), SliderResponse{Value: 3}, 0, 33)
	assert.Error(t, err)
}

func TestEvaluateTrueFalse(t *testing.T) {
	ex := &content.Exercise{
		Type: content.TypeTrueFalse,
		TrueFalse: &content.TrueFalsePayload{
			Statement: content.LocalizedText{"en": "s"},
			Answer:    true,
		},
	}

	res, err := Evaluate(ex, TrueFalseResponse{Answer: true}, 0, 33)
	require.NoError(t, err)
	assert.False(t, res.Incorrect)

	res, err = Evaluate(ex, TrueFalseResponse{Answer: false}, 0, 33)
	require.NoError(t, err)
	assert.True(t, res.Incorrect)
}

func TestEvaluateOrderingExactEquality(t *testing.T) {
	ex := &content.Exercise{
		Type: content.TypeOrdering,
		Ordering: &content.OrderingPayload{
			Items: []content.LocalizedText{{"en": "A"}, {"en": "B"}, {"en": "C"}},
		},
	}

	tests := []struct {
		name      string
		order     []int
		incorrect bool
	}{
		{"canonical order", []int{0, 1, 2}, false},
		{"swapped tail", []int{0, 2, 1}, true},
		{"too short", []int{0, 1}, true},
		{"empty", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Evaluate(ex, OrderingResponse{Order: tt.order}, 0, 33)
			require.NoError(t, err)
			assert.Equal(t, tt.incorrect, res.Incorrect)
		})
	}
}

func TestEvaluateSliderToleranceBand(t *testing.T) {
	ex := &content.Exercise{
		Type: content.TypeSlider,
		Slider: &content.SliderPayload{
			Min: 0, Max: 160, Correct: 70, Tolerance: 10,
		},
	}

	for _, tt := range []struct {
		value     float64
		incorrect bool
	}{
		{70, false}, {60, false}, {80, false}, {59.9, true}, {81, true},
	} {
		res, err := Evaluate(ex, SliderResponse{Value: tt.value}, 0, 33)
		require.NoError(t, err)
		assert.Equal(t, tt.incorrect, res.Incorrect, "value %v", tt.value)
	}
}

func squareRegion(name string) content.Region {
	return content.Region{
		Name: name,
		Points: []content.Point{
			{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
		},
	}
}

func TestPointInPolygonSquare(t *testing.T) {
	square := squareRegion("A").Points

	assert.True(t, PointInPolygon(content.Point{X: 5, Y: 5}, square))
	assert.False(t, PointInPolygon(content.Point{X: 15, Y: 15}, square))
	assert.False(t, PointInPolygon(content.Point{X: -1, Y: 5}, square))
}

func TestResolveRegion(t *testing.T) {
	regions := []content.Region{squareRegion("A")}

	name, ok := ResolveRegion(content.Point{X: 5, Y: 5}, regions)
	assert.True(t, ok)
	assert.Equal(t, "A", name)

	_, ok = ResolveRegion(content.Point{X: 15, Y: 15}, regions)
	assert.False(t, ok)
}

func TestEvaluateHotspot(t *testing.T) {
	ex := &content.Exercise{
		Type: content.TypeHotspot,
		Hotspot: &content.HotspotPayload{
			Regions: []content.Region{squareRegion("A")},
			Target:  "A",
		},
	}

	res, err := Evaluate(ex, PointResponse{Point: content.Point{X: 5, Y: 5}}, 0, 33)
	require.NoError(t, err)
	assert.False(t, res.Incorrect)

	res, err = Evaluate(ex, PointResponse{Point: content.Point{X: 15, Y: 15}}, 0, 33)
	require.NoError(t, err)
	assert.True(t, res.Incorrect)
}

func TestEvaluateLabelingPerItem(t *testing.T) {
	left := content.Region{Name: "left", Points: []content.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}}
	right := content.Region{Name: "right", Points: []content.Point{
		{X: 20, Y: 0}, {X: 30, Y: 0}, {X: 30, Y: 10}, {X: 20, Y: 10},
	}}
	ex := &content.Exercise{
		Type: content.TypeLabeling,
		Labeling: &content.LabelingPayload{
			Regions: []content.Region{left, right},
			Labels: []content.Label{
				{Text: content.LocalizedText{"en": "L"}, Target: "left"},
				{Text: content.LocalizedText{"en": "R"}, Target: "right"},
			},
		},
	}

	// One label on target, one dropped on the wrong region.
	res, err := Evaluate(ex, LabelDropsResponse{Drops: []content.Point{
		{X: 5, Y: 5}, {X: 5, Y: 5},
	}}, 0, 33)
	require.NoError(t, err)
	assert.True(t, res.Incorrect)
	assert.Equal(t, map[int]bool{0: true, 1: false}, res.PerItem)

	res, err = Evaluate(ex, LabelDropsResponse{Drops: []content.Point{
		{X: 5, Y: 5}, {X: 25, Y: 5},
	}}, 0, 33)
	require.NoError(t, err)
	assert.False(t, res.Incorrect)
}

func TestEvaluateMatchingAssignments(t *testing.T) {
	ex := &content.Exercise{
		Type: content.TypeMatching,
		Matching: &content.MatchingPayload{
			Mode: content.MatchEvaluate,
			Pairs: []content.MatchPair{
				{A: content.LocalizedText{"en": "a0"}, B: content.LocalizedText{"en": "b0"}},
				{A: content.LocalizedText{"en": "a1"}, B: content.LocalizedText{"en": "b1"}},
			},
		},
	}

	res, err := Evaluate(ex, AssignmentsResponse{Assignments: map[int]int{0: 0, 1: 1}}, 0, 33)
	require.NoError(t, err)
	assert.False(t, res.Incorrect)

	res, err = Evaluate(ex, AssignmentsResponse{Assignments: map[int]int{0: 1, 1: 0}}, 0, 33)
	require.NoError(t, err)
	assert.True(t, res.Incorrect)
	assert.Equal(t, map[int]bool{0: false, 1: false}, res.PerItem)
}

func TestMatchingVerdictsKeepDuplicateLabelsApart(t *testing.T) {
	ex := &content.Exercise{
		Type: content.TypeMatching,
		Matching: &content.MatchingPayload{
			Mode: content.MatchEvaluate,
			Pairs: []content.MatchPair{
				{A: content.LocalizedText{"en": "valve"}, B: content.LocalizedText{"en": "mitral"}},
				{A: content.LocalizedText{"en": "valve"}, B: content.LocalizedText{"en": "aortic"}},
			},
		},
	}

	// Two left cards with the same text must keep separate verdicts.
	res, err := Evaluate(ex, AssignmentsResponse{Assignments: map[int]int{0: 0}}, 0, 33)
	require.NoError(t, err)
	assert.True(t, res.Incorrect)
	assert.Equal(t, map[int]bool{0: true, 1: false}, res.PerItem)
}

func TestCentroid(t *testing.T) {
	c := Centroid(squareRegion("A").Points)
	assert.Equal(t, content.Point{X: 5, Y: 5}, c)
}
