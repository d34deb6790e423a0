package components

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/janadahlmanns/OrganIQ/internal/ui/theme"
)

// Slider picks a numeric value in a range. Arrow keys nudge the value
// by one step; typing digits switches to direct entry.
type Slider struct {
	Min, Max, Step float64
	Unit           string
	Value          float64

	Submitted bool

	typing bool
	input  textinput.Model
}

// NewSlider creates a slider starting at the middle of its range,
// aligned to the step grid. A missing or non-positive step falls back
// to 1 so the arrows always move the value.
func NewSlider(min, max, step float64, unit string) Slider {
	ti := textinput.New()
	ti.Placeholder = "value"
	ti.CharLimit = 12

	if step <= 0 {
		step = 1
	}
	mid := min + float64(int((max-min)/(2*step)))*step
	return Slider{
		Min:   min,
		Max:   max,
		Step:  step,
		Unit:  unit,
		Value: mid,
		input: ti,
	}
}

// Init returns nil.
func (s Slider) Init() tea.Cmd {
	return nil
}

// Update handles value adjustment and direct entry.
func (s Slider) Update(msg tea.Msg) (Slider, tea.Cmd) {
	if s.Submitted {
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.typing {
		switch kmsg.String() {
		case "enter":
			if v, err := strconv.ParseFloat(s.input.Value(), 64); err == nil {
				s.Value = s.clamp(v)
			}
			s.typing = false
			s.input.SetValue("")
			return s, nil
		case "esc":
			s.typing = false
			s.input.SetValue("")
			return s, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	switch key := kmsg.String(); key {
	case "left", "h", "down", "j":
		s.Value = s.clamp(s.Value - s.Step)
	case "right", "l", "up", "k":
		s.Value = s.clamp(s.Value + s.Step)
	case "enter":
		s.Submitted = true
	default:
		if len(key) == 1 && (key[0] >= '0' && key[0] <= '9' || key[0] == '-') {
			s.typing = true
			s.input.SetValue(key)
			s.input.CursorEnd()
			return s, s.input.Focus()
		}
	}

	return s, nil
}

func (s Slider) clamp(v float64) float64 {
	if v < s.Min {
		return s.Min
	}
	if v > s.Max {
		return s.Max
	}
	return v
}

// View renders the slider track with the current value.
func (s Slider) View() string {
	const trackWidth = 40

	pos := 0
	if s.Max > s.Min {
		pos = int((s.Value - s.Min) / (s.Max - s.Min) * float64(trackWidth-1))
	}

	var track strings.Builder
	for i := 0; i < trackWidth; i++ {
		if i == pos {
			track.WriteString(theme.Selected.Render("●"))
		} else {
			track.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("─"))
		}
	}

	value := fmt.Sprintf("%g %s", s.Value, s.Unit)
	line := track.String() + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(value)

	if s.typing {
		line += "\n\n" + theme.Hint.Render("type value: ") + s.input.View()
	}
	return line
}
