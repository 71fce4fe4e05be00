package services

import "menu-telegram/models"

// CartEntry is a value snapshot of a menu item at selection time. It keeps no
// link back to the catalog row; later edits to the menu do not touch it.
type CartEntry struct {
	Name  string       `json:"name"`
	Price models.Money `json:"price"`
}

// Cart is the customer's in-progress order: an append-only list of entries,
// in selection order, held in memory for the current session only. Repeated
// selection of the same item produces repeated entries.
type Cart struct {
	entries []CartEntry
}

func (c *Cart) Add(e CartEntry) {
	c.entries = append(c.entries, e)
}

func (c *Cart) Clear() {
	c.entries = nil
}

func (c *Cart) Len() int {
	return len(c.entries)
}

// Entries returns a copied snapshot in the order added.
func (c *Cart) Entries() []CartEntry {
	out := make([]CartEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Total sums the entry prices.
func (c *Cart) Total() models.Money {
	var total models.Money
	for _, e := range c.entries {
		total += e.Price
	}
	return total
}
