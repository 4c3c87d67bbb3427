package tui

import (
	"fmt"
	"io"
	"strings"

	"shoplist-cli/internal/model"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// shoppingItemDelegate renders one row per item. The row of the item in edit mode is
// rendered with the editor's inputs instead of static text.
type shoppingItemDelegate struct {
	editor *itemEditor
}

func newShoppingItemDelegate(editor *itemEditor) shoppingItemDelegate {
	return shoppingItemDelegate{editor: editor}
}

func (d shoppingItemDelegate) Height() int  { return 1 }
func (d shoppingItemDelegate) Spacing() int { return 0 }
func (d shoppingItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d shoppingItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	row, ok := item.(shoppingRow)
	contentW := m.Width()
	if !ok || contentW < 8 {
		fmt.Fprint(w, "")
		return
	}

	if row.item.State() == model.ItemStateEditing && d.editor != nil && d.editor.active && d.editor.id == row.item.ID {
		fmt.Fprint(w, d.renderEditing(contentW))
		return
	}

	selected := index == m.Index()
	cursor := "  "
	if selected {
		cursor = glyphCursor() + " "
	}

	qty := row.item.QuantityLabel()
	id := itemIDString(row.item.ID)
	// cursor + name + gap + qty + gap + id
	nameW := contentW - xansi.StringWidth(cursor) - len(qty) - len(id) - 4
	if nameW < 4 {
		nameW = 4
	}
	name := fitLine(row.item.Name, nameW)

	if selected {
		line := fitLine(cursor+name+"  "+qty+"  "+id, contentW)
		fmt.Fprint(w, styleSelectedRow().Render(line))
		return
	}
	line := cursor + name + "  " + styleQuantity().Render(qty) + "  " + styleMuted().Render(id)
	fmt.Fprint(w, fitLine(line, contentW))
}

func (d shoppingItemDelegate) renderEditing(contentW int) string {
	e := d.editor
	label := styleMuted().Render("Qty ")
	hint := styleMuted().Render("enter: save")

	nameW, qtyW := e.name.Width, e.qty.Width

	in := lipgloss.NewStyle().Background(colorInputBg)
	parts := []string{
		lipgloss.NewStyle().Foreground(colorAccent).Render(glyphEditing()),
		in.Render(fitLine(e.name.View(), nameW+1)),
		label + in.Render(fitLine(e.qty.View(), qtyW+1)),
		hint,
	}
	return styleEditingRow().Render(fitLine(strings.Join(parts, " "), contentW))
}
