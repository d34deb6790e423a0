package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestSliderDefaultsStepToOne(t *testing.T) {
	s := NewSlider(0, 10, 0, "cm")

	if s.Step != 1 {
		t.Fatalf("Step = %g, want 1", s.Step)
	}
	if s.Value != 5 {
		t.Errorf("Value = %g, want the midpoint 5", s.Value)
	}

	s, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if s.Value != 6 {
		t.Errorf("Value = %g after right, want 6", s.Value)
	}
}

func TestSliderNudgeClampsToRange(t *testing.T) {
	s := NewSlider(0, 4, 2, "")

	s, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	s, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if s.Value != 4 {
		t.Errorf("Value = %g, want clamped to 4", s.Value)
	}

	for i := 0; i < 4; i++ {
		s, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	}
	if s.Value != 0 {
		t.Errorf("Value = %g, want clamped to 0", s.Value)
	}
}
