package shoplist

import (
	"strings"

	"shoplist-cli/internal/model"
)

// State is the shopping list owned by one screen. The zero value is an empty list.
//
// A State is never modified in place: every mutation below returns a new State and
// leaves its input untouched.
type State struct {
	items  []model.ShoppingItem
	lastID int
}

func NewState() State { return State{} }

// Items returns a copy of the items in display order.
func (s State) Items() []model.ShoppingItem {
	out := make([]model.ShoppingItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s State) Len() int { return len(s.items) }

// NextID is the id the next added item will receive.
func (s State) NextID() int { return s.lastID + 1 }

func (s State) indexOf(id int) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (s State) withItems(items []model.ShoppingItem) State {
	return State{items: items, lastID: s.lastID}
}

// Result describes the outcome of one mutation.
type Result struct {
	State   State
	Changed bool
}

func unchanged(s State) Result { return Result{State: s} }

// Add appends a new item. Blank names are rejected; unparseable quantities become 1.
// Ids come from a counter that only grows, so they stay unique after deletes.
func Add(s State, name, quantityText string) (Result, error) {
	if strings.TrimSpace(name) == "" {
		return unchanged(s), InvalidInputError{Field: "name", Value: name}
	}
	items := make([]model.ShoppingItem, len(s.items), len(s.items)+1)
	copy(items, s.items)
	next := State{
		items: append(items, model.ShoppingItem{
			ID:       s.lastID + 1,
			Name:     name,
			Quantity: ParseQuantity(quantityText),
		}),
		lastID: s.lastID + 1,
	}
	return Result{State: next, Changed: true}, nil
}

// BeginEdit puts the item with id into edit mode and every other item out of it.
func BeginEdit(s State, id int) (Result, error) {
	if s.indexOf(id) < 0 {
		return unchanged(s), UnknownIDError{ID: id}
	}

	changed := false
	items := s.Items()
	for i := range items {
		want := items[i].ID == id
		if items[i].IsEditing != want {
			items[i].IsEditing = want
			changed = true
		}
	}
	if !changed {
		return unchanged(s), nil
	}
	return Result{State: s.withItems(items), Changed: true}, nil
}

// CompleteEdit leaves edit mode on every item, then overwrites name and quantity of
// the item with id. The edit is dropped when id is not in the list; the edit flags are
// cleared regardless. Name is stored as given, blank or not.
func CompleteEdit(s State, id int, name, quantityText string) (Result, error) {
	changed := false
	items := s.Items()
	for i := range items {
		if items[i].IsEditing {
			items[i].IsEditing = false
			changed = true
		}
	}

	idx := s.indexOf(id)
	if idx < 0 {
		if !changed {
			return unchanged(s), UnknownIDError{ID: id}
		}
		return Result{State: s.withItems(items), Changed: true}, UnknownIDError{ID: id}
	}

	if items[idx].Name != name {
		items[idx].Name = name
		changed = true
	}
	if q := ParseQuantity(quantityText); items[idx].Quantity != q {
		items[idx].Quantity = q
		changed = true
	}

	if !changed {
		return unchanged(s), nil
	}
	return Result{State: s.withItems(items), Changed: true}, nil
}

// Delete removes the item with id, keeping the order of the rest.
func Delete(s State, id int) (Result, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return unchanged(s), UnknownIDError{ID: id}
	}

	items := make([]model.ShoppingItem, 0, len(s.items)-1)
	items = append(items, s.items[:idx]...)
	items = append(items, s.items[idx+1:]...)
	return Result{State: s.withItems(items), Changed: true}, nil
}
