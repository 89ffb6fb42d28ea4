package cart

import (
	"errors"

	"botfactory-miniapp/storefront-svc/internal/domain"
)

var ErrInvalidQuantity = errors.New("quantity must be positive")

// Cart holds the in-progress selection for a single mini-app session.
// Entries keep insertion order; at most one entry exists per item ID.
type Cart struct {
	entries []domain.CartEntry
}

func New() *Cart {
	return &Cart{}
}

// Add merges quantity into an existing entry with the same item ID,
// or appends a new entry at the end.
func (c *Cart) Add(item domain.CatalogItem, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	for i := range c.entries {
		if c.entries[i].Item.ID == item.ID {
			c.entries[i].Quantity += quantity
			return nil
		}
	}
	c.entries = append(c.entries, domain.CartEntry{Item: item, Quantity: quantity})
	return nil
}

// SetQuantity adjusts the entry at index by delta. The entry is removed
// outright when the resulting quantity drops to zero or below. An index
// out of range is a silent no-op.
func (c *Cart) SetQuantity(index, delta int) {
	if index < 0 || index >= len(c.entries) {
		return
	}
	c.entries[index].Quantity += delta
	if c.entries[index].Quantity <= 0 {
		c.Remove(index)
	}
}

// Remove deletes the entry at index; no-op when out of range.
func (c *Cart) Remove(index int) {
	if index < 0 || index >= len(c.entries) {
		return
	}
	c.entries = append(c.entries[:index], c.entries[index+1:]...)
}

// Entries returns a copy of the current entries in insertion order.
func (c *Cart) Entries() []domain.CartEntry {
	out := make([]domain.CartEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Summary recomputes the derived totals on every call; nothing is cached.
func (c *Cart) Summary() domain.CartSummary {
	var summary domain.CartSummary
	for _, entry := range c.entries {
		summary.Total += entry.Item.Price * float64(entry.Quantity)
		summary.Count += entry.Quantity
	}
	return summary
}

// Snapshot produces the submission payload items as of this exact moment.
// Later cart mutations never alter a snapshot already taken.
func (c *Cart) Snapshot() []domain.OrderItem {
	items := make([]domain.OrderItem, 0, len(c.entries))
	for _, entry := range c.entries {
		items = append(items, domain.OrderItem{
			ID:       entry.Item.ID,
			Name:     entry.Item.Name,
			Price:    entry.Item.Price,
			Quantity: entry.Quantity,
		})
	}
	return items
}

func (c *Cart) Clear() {
	c.entries = nil
}

func (c *Cart) Len() int {
	return len(c.entries)
}
