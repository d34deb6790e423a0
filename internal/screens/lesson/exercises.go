package lesson

import (
	"fmt"
	"math/rand"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/janadahlmanns/OrganIQ/internal/content"
	"github.com/janadahlmanns/OrganIQ/internal/evaluate"
	"github.com/janadahlmanns/OrganIQ/internal/ui/components"
	"github.com/janadahlmanns/OrganIQ/internal/ui/theme"
)

// exerciseModel drives one exercise's interaction until it produces a
// response for the session controller.
type exerciseModel interface {
	update(msg tea.Msg) (exerciseModel, tea.Cmd)
	view(width int) string

	// response returns the finished response, ok once the interaction
	// is complete.
	response() (evaluate.Response, bool)
}

// newExerciseModel builds the interaction model for an exercise.
func newExerciseModel(ex *content.Exercise, lang string) exerciseModel {
	switch ex.Type {
	case content.TypeQuestion, content.TypeCloze:
		return newChoiceModel(ex.Choice, lang)
	case content.TypeTrueFalse:
		return newTrueFalseModel(ex.TrueFalse, lang)
	case content.TypeOrdering:
		return newOrderingModel(ex.Ordering, lang)
	case content.TypeMatching:
		if ex.Matching.Mode == content.MatchRepel {
			return newRepelModel(ex.Matching, lang)
		}
		return newAssignModel(ex.Matching, lang)
	case content.TypeHotspot:
		return newHotspotModel(ex.Hotspot, lang)
	case content.TypeLabeling:
		return newLabelingModel(ex.Labeling, lang)
	case content.TypePuzzle:
		return newPuzzleModel(ex.Puzzle, lang)
	case content.TypeMemory:
		return newMemoryModel(ex.Memory, lang)
	case content.TypeSlider:
		return newSliderModel(ex.Slider, lang)
	}
	return nil
}

// choiceModel handles question and cloze exercises.
type choiceModel struct {
	mc components.MultiChoice
}

// optionOrder shuffles the displayed option rows so answer positions
// do not give the answer away. Swapped for a fixed order in tests.
var optionOrder = rand.Perm

func newChoiceModel(p *content.ChoicePayload, lang string) *choiceModel {
	options := make([]string, len(p.Options))
	for i, opt := range p.Options {
		options[i] = opt.Get(lang)
	}
	mc := components.NewMultiChoice(p.Prompt.Get(lang), options, p.CorrectOption)
	mc.Perm = optionOrder(len(options))
	return &choiceModel{mc: mc}
}

func (m *choiceModel) update(msg tea.Msg) (exerciseModel, tea.Cmd) {
	var cmd tea.Cmd
	m.mc, cmd = m.mc.Update(msg)
	return m, cmd
}

func (m *choiceModel) view(width int) string {
	return m.mc.View()
}

func (m *choiceModel) response() (evaluate.Response, bool) {
	if !m.mc.Submitted {
		return nil, false
	}
	return evaluate.ChoiceResponse{Option: m.mc.Chosen()}, true
}

// truefalseModel handles truefalse exercises as a two-option choice.
type truefalseModel struct {
	mc components.MultiChoice
}

func newTrueFalseModel(p *content.TrueFalsePayload, lang string) *truefalseModel {
	correct := 2
	if p.Answer {
		correct = 1
	}
	return &truefalseModel{
		mc: components.NewMultiChoice(p.Statement.Get(lang), []string{"True", "False"}, correct),
	}
}

func (m *truefalseModel) update(msg tea.Msg) (exerciseModel, tea.Cmd) {
	var cmd tea.Cmd
	m.mc, cmd = m.mc.Update(msg)
	return m, cmd
}

func (m *truefalseModel) view(width int) string {
	return m.mc.View()
}

func (m *truefalseModel) response() (evaluate.Response, bool) {
	if !m.mc.Submitted {
		return nil, false
	}
	return evaluate.TrueFalseResponse{Answer: m.mc.Chosen() == 1}, true
}

// orderingModel handles ordering exercises with a shuffled start order.
type orderingModel struct {
	prompt string
	list   components.OrderList
}

func newOrderingModel(p *content.OrderingPayload, lang string) *orderingModel {
	items := make([]string, len(p.Items))
	for i, item := range p.Items {
		items[i] = item.Get(lang)
	}
	return &orderingModel{
		prompt: p.Prompt.Get(lang),
		list:   components.NewOrderList(items, rand.Perm(len(items))),
	}
}

func (m *orderingModel) update(msg tea.Msg) (exerciseModel, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *orderingModel) view(width int) string {
	return promptStyle.Render(m.prompt) + "\n\n" + m.list.View() + "\n" +
		theme.Hint.Render("  shift+↑↓ moves the item, enter checks")
}

func (m *orderingModel) response() (evaluate.Response, bool) {
	if !m.list.Submitted {
		return nil, false
	}
	return evaluate.OrderingResponse{Order: m.list.CurrentOrder()}, true
}

// sliderModel handles slider exercises.
type sliderModel struct {
	prompt string
	slider components.Slider
}

func newSliderModel(p *content.SliderPayload, lang string) *sliderModel {
	return &sliderModel{
		prompt: p.Prompt.Get(lang),
		slider: components.NewSlider(p.Min, p.Max, p.Step, p.Unit),
	}
}

func (m *sliderModel) update(msg tea.Msg) (exerciseModel, tea.Cmd) {
	var cmd tea.Cmd
	m.slider, cmd = m.slider.Update(msg)
	return m, cmd
}

func (m *sliderModel) view(width int) string {
	return promptStyle.Render(m.prompt) + "\n\n" + m.slider.View()
}

func (m *sliderModel) response() (evaluate.Response, bool) {
	if !m.slider.Submitted {
		return nil, false
	}
	return evaluate.SliderResponse{Value: m.slider.Value}, true
}

// hotspotModel handles hotspot exercises: the click is expressed as
// picking a region by name, answered with that region's centroid.
type hotspotModel struct {
	prompt  string
	regions []content.Region
	cursor  int
	chosen  int
}

func newHotspotModel(p *content.HotspotPayload, lang string) *hotspotModel {
	return &hotspotModel{
		prompt:  p.Prompt.Get(lang),
		regions: p.Regions,
		chosen:  -1,
	}
}

func (m *hotspotModel) update(msg tea.Msg) (exerciseModel, tea.Cmd) {
	if m.chosen >= 0 {
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
		if m.cursor < len(m.regions)-1 {
			m.cursor++
		}
	case "enter":
		m.chosen = m.cursor
	}
	return m, nil
}

func (m *hotspotModel) view(width int) string {
	s := promptStyle.Render(m.prompt) + "\n\n"
	for i, region := range m.regions {
		if i == m.cursor && m.chosen < 0 {
			s += theme.Selected.Render("  ▸ "+region.Name) + "\n"
		} else {
			s += theme.Body.Render("    "+region.Name) + "\n"
		}
	}
	return s
}

func (m *hotspotModel) response() (evaluate.Response, bool) {
	if m.chosen < 0 {
		return nil, false
	}
	return evaluate.PointResponse{
		Point: evaluate.Centroid(m.regions[m.chosen].Points),
	}, true
}

// labelingModel handles labeling exercises: each label in turn is
// assigned to a region, answered with that region's centroid.
type labelingModel struct {
	prompt  string
	labels  []string
	regions []content.Region
	lang    string

	label  int // index of the label being placed
	cursor int
	drops  []content.Point
}

func newLabelingModel(p *content.LabelingPayload, lang string) *labelingModel {
	labels := make([]string, len(p.Labels))
	for i, label := range p.Labels {
		labels[i] = label.Text.Get(lang)
	}
	return &labelingModel{
		prompt:  p.Prompt.Get(lang),
		labels:  labels,
		regions: p.Regions,
		lang:    lang,
	}
}

func (m *labelingModel) done() bool {
	return m.label >= len(m.labels)
}

func (m *labelingModel) update(msg tea.Msg) (exerciseModel, tea.Cmd) {
	if m.done() {
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
		if m.cursor < len(m.regions)-1 {
			m.cursor++
		}
	case "enter":
		m.drops = append(m.drops, evaluate.Centroid(m.regions[m.cursor].Points))
		m.label++
		m.cursor = 0
	}
	return m, nil
}

func (m *labelingModel) view(width int) string {
	s := promptStyle.Render(m.prompt) + "\n\n"
	if m.done() {
		return s + theme.Hint.Render("  all labels placed")
	}
	s += theme.Body.Render("Place: ") +
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(m.labels[m.label]) +
		theme.Hint.Render(fmt.Sprintf("  (%d of %d)", m.label+1, len(m.labels))) + "\n\n"
	for i, region := range m.regions {
		if i == m.cursor {
			s += theme.Selected.Render("  ▸ "+region.Name) + "\n"
		} else {
			s += theme.Body.Render("    "+region.Name) + "\n"
		}
	}
	return s
}

func (m *labelingModel) response() (evaluate.Response, bool) {
	if !m.done() {
		return nil, false
	}
	return evaluate.LabelDropsResponse{Drops: m.drops}, true
}

var promptStyle = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
