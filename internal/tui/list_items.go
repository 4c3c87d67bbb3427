package tui

import (
	"strconv"

	"shoplist-cli/internal/model"

	"github.com/charmbracelet/bubbles/list"
)

type shoppingRow struct {
	item model.ShoppingItem
}

func (r shoppingRow) FilterValue() string { return r.item.Name }
func (r shoppingRow) Title() string       { return r.item.Name }
func (r shoppingRow) Description() string { return r.item.QuantityLabel() }

func rowsFromSnapshot(s model.Snapshot) []list.Item {
	items := make([]list.Item, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, shoppingRow{item: it})
	}
	return items
}

func newList(items []list.Item, delegate list.ItemDelegate) list.Model {
	l := list.New(items, delegate, 0, 0)
	l.Title = "Shopping List"
	// Header, help and status are rendered by the app, so list chrome stays off.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowFilter(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)
	l.SetStatusBarItemName("item", "items")
	// q/esc belong to the app, not the list.
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	l.KeyMap.ShowFullHelp.SetEnabled(false)
	l.KeyMap.CloseFullHelp.SetEnabled(false)

	cursorUpKeys := append([]string{}, l.KeyMap.CursorUp.Keys()...)
	l.KeyMap.CursorUp.SetKeys(append(cursorUpKeys, "ctrl+p")...)
	cursorDownKeys := append([]string{}, l.KeyMap.CursorDown.Keys()...)
	l.KeyMap.CursorDown.SetKeys(append(cursorDownKeys, "ctrl+n")...)
	return l
}

func selectedRow(l list.Model) (shoppingRow, bool) {
	r, ok := l.SelectedItem().(shoppingRow)
	return r, ok
}

func selectListItemByID(l *list.Model, id int) bool {
	for i, it := range l.Items() {
		if r, ok := it.(shoppingRow); ok && r.item.ID == id {
			l.Select(i)
			return true
		}
	}
	return false
}

func itemIDString(id int) string { return "#" + strconv.Itoa(id) }
