package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/janadahlmanns/OrganIQ/internal/ui/theme"
)

// OrderList lets the user rearrange a list of items. Shift moves the
// selected item; plain arrows move the cursor.
type OrderList struct {
	Items []string
	// Order holds, per display row, the item's index in the original
	// (canonical) list.
	Order []int

	Cursor    int
	Submitted bool
}

// NewOrderList creates an order list showing items in the given
// display order. display[i] is the original index shown at row i.
func NewOrderList(items []string, display []int) OrderList {
	return OrderList{
		Items: items,
		Order: append([]int(nil), display...),
	}
}

// Init returns nil.
func (o OrderList) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement, item movement and submission.
func (o OrderList) Update(msg tea.Msg) (OrderList, tea.Cmd) {
	if o.Submitted {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Order)-1 {
			o.Cursor++
		}
	case "shift+up", "K":
		if o.Cursor > 0 {
			o.Order[o.Cursor-1], o.Order[o.Cursor] = o.Order[o.Cursor], o.Order[o.Cursor-1]
			o.Cursor--
		}
	case "shift+down", "J":
		if o.Cursor < len(o.Order)-1 {
			o.Order[o.Cursor+1], o.Order[o.Cursor] = o.Order[o.Cursor], o.Order[o.Cursor+1]
			o.Cursor++
		}
	case "enter":
		o.Submitted = true
	}

	return o, nil
}

// View renders the list in its current order.
func (o OrderList) View() string {
	var s string
	for row, idx := range o.Order {
		label := o.Items[idx]
		if row == o.Cursor && !o.Submitted {
			s += theme.Selected.Render("  ▸ "+label) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render("    "+label) + "\n"
		}
	}
	return s
}

// CurrentOrder returns the displayed order as original item indexes.
func (o OrderList) CurrentOrder() []int {
	return append([]int(nil), o.Order...)
}
