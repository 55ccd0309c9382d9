package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kafekita/pos-app/models"
)

func receiptFixture() (models.Order, models.CafeSettings) {
	received := int64(100000)
	change := int64(100)
	taxRate := 11.0
	taxAmount := int64(9900)
	discEnabled := true
	discType := models.DiscountPercent
	discRate := 10.0
	discAmount := int64(10000)

	order := models.Order{
		ID:            "ORD-1700000000000",
		Timestamp:     1700000000000,
		PaymentMethod: models.PaymentCash,
		CustomerName:  "Budi",
		TotalAmount:   99900,
		Items: []models.OrderItem{
			{ProductID: "p1", Name: "Kopi Susu Gula Aren", Price: 18000, Quantity: 5, Subtotal: 90000},
			{ProductID: "p2", Name: "Kentang", Price: 10000, Quantity: 1, Subtotal: 10000},
		},
		CashReceived:    &received,
		Change:          &change,
		TaxRate:         &taxRate,
		TaxAmount:       &taxAmount,
		DiscountEnabled: &discEnabled,
		DiscountType:    &discType,
		DiscountRate:    &discRate,
		DiscountAmount:  &discAmount,
	}
	settings := models.CafeSettings{
		Name:          "KafeKita",
		Address:       "Jl. Kopi No. 1",
		Phone:         "0812",
		FooterMessage: "Terima Kasih!",
		PrinterWidth:  32,
	}
	return order, settings
}

func TestRenderReceiptContent(t *testing.T) {
	order, settings := receiptFixture()
	text := RenderReceipt(order, settings)

	assert.Contains(t, text, "KafeKita")
	assert.Contains(t, text, "ID: ORD-1700000000000")
	assert.Contains(t, text, "Plg: Budi")
	assert.Contains(t, text, "Kopi Susu Gula Aren")
	assert.Contains(t, text, "5 x 18.000")
	assert.Contains(t, text, "Subtotal")
	assert.Contains(t, text, "Disc (10%)")
	assert.Contains(t, text, "-10.000")
	assert.Contains(t, text, "Pajak (11%)")
	assert.Contains(t, text, "TOTAL: 99.900")
	assert.Contains(t, text, "Kembali")
	assert.Contains(t, text, "CASH")
	assert.Contains(t, text, "Terima Kasih!")
}

func TestRenderReceiptColumnsFitWidth(t *testing.T) {
	order, settings := receiptFixture()

	for _, width := range []int{32, 48} {
		settings.PrinterWidth = width
		text := RenderReceipt(order, settings)
		for _, line := range strings.Split(text, "\n") {
			assert.LessOrEqual(t, len(line), width, "line %q exceeds width %d", line, width)
		}
	}
}

func TestRenderReceiptDefaultsWidth(t *testing.T) {
	order, settings := receiptFixture()
	settings.PrinterWidth = 0
	text := RenderReceipt(order, settings)
	assert.Contains(t, text, strings.Repeat("-", 32))
}
