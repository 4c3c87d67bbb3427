package tui

import (
	"strconv"
	"strings"

	"shoplist-cli/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formField int

const (
	fieldName formField = iota
	fieldQuantity
)

func (f formField) next() formField {
	if f == fieldName {
		return fieldQuantity
	}
	return fieldName
}

// itemEditor holds the inline inputs of the item that is in edit mode. It is shared by
// pointer between the app model and the list delegate.
type itemEditor struct {
	active bool
	id     int

	name  textinput.Model
	qty   textinput.Model
	focus formField
}

func newItemEditor() *itemEditor {
	e := &itemEditor{
		name: newTextInput("Item name", 200),
		qty:  newTextInput("Qty", 6),
	}
	e.name.Width = 24
	e.qty.Width = 6
	return e
}

func newTextInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Prompt = ""
	return in
}

// start puts the editor on it, seeding the inputs with the item's current values.
func (e *itemEditor) start(it model.ShoppingItem) tea.Cmd {
	e.active = true
	e.id = it.ID
	e.name.SetValue(it.Name)
	e.name.CursorEnd()
	e.qty.SetValue(strconv.Itoa(it.Quantity))
	e.qty.CursorEnd()
	return e.setFocus(fieldName)
}

// resize fits the inline inputs into a list row of rowW columns.
func (e *itemEditor) resize(rowW int) {
	// glyph, label, hint and separators take roughly 24 columns.
	w := rowW - e.qty.Width - 24
	if w < 8 {
		w = 8
	}
	e.name.Width = w
}

func (e *itemEditor) stop() {
	e.active = false
	e.id = 0
	e.name.Blur()
	e.qty.Blur()
}

func (e *itemEditor) setFocus(f formField) tea.Cmd {
	e.focus = f
	if f == fieldName {
		e.qty.Blur()
		return e.name.Focus()
	}
	e.name.Blur()
	return e.qty.Focus()
}

func (e *itemEditor) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if e.focus == fieldName {
		e.name, cmd = e.name.Update(msg)
	} else {
		e.qty, cmd = e.qty.Update(msg)
	}
	return cmd
}

// addForm is the "Add Shopping Item" dialog.
type addForm struct {
	name  textinput.Model
	qty   textinput.Model
	focus formField
	// defaultQty is what the quantity field resets to after a successful add.
	defaultQty string
}

func newAddForm(defaultQty string) addForm {
	f := addForm{
		name:       newTextInput("Enter item name", 200),
		qty:        newTextInput("Enter item quantity", 6),
		defaultQty: defaultQty,
	}
	f.name.Width = 40
	f.qty.Width = 40
	f.qty.SetValue(defaultQty)
	return f
}

func (f *addForm) reset() {
	f.name.SetValue("")
	f.qty.SetValue(f.defaultQty)
}

// ready reports whether enter would add an item.
func (f *addForm) ready() bool {
	return strings.TrimSpace(f.name.Value()) != ""
}

func (f *addForm) setFocus(field formField) tea.Cmd {
	f.focus = field
	if field == fieldName {
		f.qty.Blur()
		return f.name.Focus()
	}
	f.name.Blur()
	return f.qty.Focus()
}

func (f *addForm) blur() {
	f.name.Blur()
	f.qty.Blur()
}

func (f *addForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.focus == fieldName {
		f.name, cmd = f.name.Update(msg)
	} else {
		f.qty, cmd = f.qty.Update(msg)
	}
	return cmd
}
