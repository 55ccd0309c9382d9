package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kafekita/pos-app/models"
)

func limitedProduct(id string, stock int) models.Product {
	return models.Product{ID: id, Name: "Product " + id, Price: 10000, Stock: stock}
}

func TestCartAddItemMergesLines(t *testing.T) {
	cart := NewCart()
	p := limitedProduct("p1", 5)

	assert.NoError(t, cart.AddItem(p))
	assert.NoError(t, cart.AddItem(p))

	items := cart.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCartAddItemRejectsBeyondStock(t *testing.T) {
	cart := NewCart()
	p := limitedProduct("p1", 2)

	assert.NoError(t, cart.AddItem(p))
	assert.NoError(t, cart.AddItem(p))

	err := cart.AddItem(p)
	var stockErr *InsufficientStockError
	assert.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "p1", stockErr.Shortages[0].ProductID)

	// The rejected add changed nothing.
	assert.Equal(t, 2, cart.Items()[0].Quantity)
}

func TestCartUnlimitedProductIgnoresStockField(t *testing.T) {
	cart := NewCart()
	p := models.Product{ID: "p1", Name: "Americano", Price: 15000, Stock: 0, IsUnlimited: true}

	for i := 0; i < 25; i++ {
		assert.NoError(t, cart.AddItem(p))
	}
	assert.Equal(t, 25, cart.Items()[0].Quantity)
}

func TestCartUpdateQuantityUnknownIDIsNoop(t *testing.T) {
	cart := NewCart()
	assert.NoError(t, cart.UpdateQuantity("missing", 1))
	assert.Empty(t, cart.Items())
}

func TestCartUpdateQuantityRejectsIncreaseBeyondStock(t *testing.T) {
	cart := NewCart()
	p := limitedProduct("p1", 3)
	assert.NoError(t, cart.AddItem(p))

	err := cart.UpdateQuantity("p1", 3)
	var stockErr *InsufficientStockError
	assert.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 1, cart.Items()[0].Quantity)

	assert.NoError(t, cart.UpdateQuantity("p1", 2))
	assert.Equal(t, 3, cart.Items()[0].Quantity)
}

func TestCartUpdateQuantityToZeroRemovesLine(t *testing.T) {
	cart := NewCart()
	assert.NoError(t, cart.AddItem(limitedProduct("p1", 5)))
	assert.NoError(t, cart.AddItem(limitedProduct("p2", 5)))

	assert.NoError(t, cart.UpdateQuantity("p1", -1))

	items := cart.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ID)
}

func TestCartUpdateQuantityClampsBelowZero(t *testing.T) {
	cart := NewCart()
	assert.NoError(t, cart.AddItem(limitedProduct("p1", 5)))

	assert.NoError(t, cart.UpdateQuantity("p1", -10))
	assert.Empty(t, cart.Items())
}

func TestCartClear(t *testing.T) {
	cart := NewCart()
	assert.NoError(t, cart.AddItem(limitedProduct("p1", 5)))
	assert.NoError(t, cart.AddItem(limitedProduct("p2", 5)))

	cart.Clear()
	assert.Empty(t, cart.Items())
}
