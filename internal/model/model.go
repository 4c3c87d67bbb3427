package model

import "strconv"

type ItemState string

const (
	ItemStateViewing ItemState = "viewing"
	ItemStateEditing ItemState = "editing"
)

// ShoppingItem is one line of the shopping list.
type ShoppingItem struct {
	ID        int    `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Quantity  int    `json:"quantity" yaml:"quantity"`
	IsEditing bool   `json:"isEditing" yaml:"isEditing"`
}

func (it ShoppingItem) State() ItemState {
	if it.IsEditing {
		return ItemStateEditing
	}
	return ItemStateViewing
}

func (it ShoppingItem) QuantityLabel() string {
	return "Qty: " + strconv.Itoa(it.Quantity)
}

// Snapshot is the full ordered list at one point in time.
//
// Items is a private copy; callers may modify it freely.
type Snapshot struct {
	Version int            `json:"version" yaml:"version"`
	Items   []ShoppingItem `json:"items" yaml:"items"`
}

func (s Snapshot) Len() int { return len(s.Items) }

func (s Snapshot) Find(id int) (ShoppingItem, bool) {
	for _, it := range s.Items {
		if it.ID == id {
			return it, true
		}
	}
	return ShoppingItem{}, false
}

// Editing returns the item currently in edit mode, if any.
func (s Snapshot) Editing() (ShoppingItem, bool) {
	for _, it := range s.Items {
		if it.IsEditing {
			return it, true
		}
	}
	return ShoppingItem{}, false
}

func (s Snapshot) TotalQuantity() int {
	n := 0
	for _, it := range s.Items {
		n += it.Quantity
	}
	return n
}
