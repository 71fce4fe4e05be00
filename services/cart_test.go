package services

import (
	"testing"

	"menu-telegram/models"
)

func TestCartPreservesOrder(t *testing.T) {
	var c Cart
	entries := []CartEntry{
		{"Coffee", 500},
		{"Tea", 300},
		{"Coffee", 500}, // repeats are kept, no quantity folding
	}
	for _, e := range entries {
		c.Add(e)
	}

	got := c.Entries()
	if len(got) != len(entries) {
		t.Fatalf("len = %d, want %d", len(got), len(entries))
	}
	for i := range entries {
		if got[i] != entries[i] {
			t.Errorf("entry %d = %v, want %v", i, got[i], entries[i])
		}
	}
	if c.Total() != 1300 {
		t.Errorf("Total = %d, want 1300", c.Total())
	}
}

func TestCartClear(t *testing.T) {
	var c Cart
	if c.Len() != 0 {
		t.Fatal("new cart should be empty")
	}
	c.Clear() // clearing an empty cart is fine

	c.Add(CartEntry{"Coffee", 500})
	c.Add(CartEntry{"Tea", 300})
	c.Clear()
	if c.Len() != 0 || len(c.Entries()) != 0 || c.Total() != 0 {
		t.Error("cart not empty after Clear")
	}
}

func TestCartEntriesIsSnapshot(t *testing.T) {
	var c Cart
	c.Add(CartEntry{"Coffee", 500})

	snap := c.Entries()
	snap[0] = CartEntry{"Tampered", models.Money(1)}

	if got := c.Entries()[0]; got != (CartEntry{"Coffee", 500}) {
		t.Errorf("cart mutated through snapshot: %v", got)
	}
}
