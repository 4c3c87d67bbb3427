package model

import "testing"

func TestShoppingItemState(t *testing.T) {
	if got := (ShoppingItem{ID: 1, Name: "Eggs"}).State(); got != ItemStateViewing {
		t.Fatalf("expected %q, got %q", ItemStateViewing, got)
	}
	if got := (ShoppingItem{ID: 1, Name: "Eggs", IsEditing: true}).State(); got != ItemStateEditing {
		t.Fatalf("expected %q, got %q", ItemStateEditing, got)
	}
}

func TestSnapshotFind(t *testing.T) {
	s := Snapshot{Items: []ShoppingItem{{ID: 1, Name: "Eggs", Quantity: 6}, {ID: 3, Name: "Bread", Quantity: 2}}}

	it, ok := s.Find(3)
	if !ok || it.Name != "Bread" {
		t.Fatalf("expected Bread, got %+v (ok=%v)", it, ok)
	}
	if _, ok := s.Find(2); ok {
		t.Fatalf("expected id 2 to be missing")
	}
}
