package components

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/footprint/internal/ui/theme"
)

// MenuItem is one numbered command in a Menu.
type MenuItem struct {
	Label  string
	Action func() tea.Cmd
}

// Menu is a vertical numbered menu. Items are chosen with the arrow keys
// and enter, or directly by typing their number.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a menu with the first item selected.
func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Items)-1 {
			m.Selected++
		}
	case "enter":
		return m, m.activate()
	default:
		n, err := strconv.Atoi(key)
		if err != nil || n < 1 || n > len(m.Items) {
			return m, nil
		}
		m.Selected = n - 1
		return m, m.activate()
	}

	return m, nil
}

func (m Menu) activate() tea.Cmd {
	item := m.Items[m.Selected]
	if item.Action == nil {
		return nil
	}
	return item.Action()
}

// View renders the menu.
func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		label := fmt.Sprintf("%d. %s", i+1, item.Label)
		if i == m.Selected {
			b.WriteString(theme.Selected.Render("  ▸ " + label))
		} else {
			b.WriteString(theme.Unselected.Render("    " + label))
		}
		b.WriteString("\n")
	}
	return b.String()
}
