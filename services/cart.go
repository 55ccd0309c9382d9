package services

import (
	"sync"

	"github.com/kafekita/pos-app/models"
)

// Cart holds the pending lines of the till, one per product, in the
// order they were first added. Admission is bounded by the product's
// stock snapshot; actual stock is only touched at checkout.
type Cart struct {
	mu    sync.Mutex
	items []models.CartItem
}

func NewCart() *Cart {
	return &Cart{}
}

// AddItem puts one unit of the product in the cart, merging into an
// existing line. For stock-tracked products the line may not exceed
// the product's stock.
func (c *Cart) AddItem(p models.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.find(p.ID)
	if !p.IsUnlimited {
		current := 0
		if idx >= 0 {
			current = c.items[idx].Quantity
		}
		if current+1 > p.Stock {
			return &InsufficientStockError{Shortages: []StockShortage{{
				ProductID: p.ID, Name: p.Name, Requested: current + 1, Available: p.Stock,
			}}}
		}
	}

	if idx >= 0 {
		c.items[idx].Quantity++
		return nil
	}
	c.items = append(c.items, models.CartItem{Product: p, Quantity: 1})
	return nil
}

// UpdateQuantity changes a line's quantity by delta. Unknown product
// ids are a no-op. Increases past the stock snapshot are rejected
// without touching the line; the quantity never goes below zero, and
// reaching zero removes the line.
func (c *Cart) UpdateQuantity(productID string, delta int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.find(productID)
	if idx < 0 {
		return nil
	}
	item := &c.items[idx]

	if delta > 0 && !item.IsUnlimited && item.Quantity+delta > item.Stock {
		return &InsufficientStockError{Shortages: []StockShortage{{
			ProductID: item.ID, Name: item.Name, Requested: item.Quantity + delta, Available: item.Stock,
		}}}
	}

	item.Quantity += delta
	if item.Quantity <= 0 {
		c.items = append(c.items[:idx], c.items[idx+1:]...)
	}
	return nil
}

// Items returns a copy of the current lines.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

func (c *Cart) find(productID string) int {
	for i := range c.items {
		if c.items[i].ID == productID {
			return i
		}
	}
	return -1
}
