package models

type PaymentMethod string

const (
	PaymentCash  PaymentMethod = "cash"
	PaymentQRIS  PaymentMethod = "qris"
	PaymentDebit PaymentMethod = "debit"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentQRIS, PaymentDebit:
		return true
	}
	return false
}

type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountNominal DiscountType = "nominal"
)

// OrderItem is a denormalized line frozen at sale time. Name and price
// stay valid even after the catalog product is edited or deleted.
type OrderItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	Subtotal  int64  `json:"subtotal"`
}

// Order is a committed transaction. The tax/discount fields are a
// snapshot of the settings in force at checkout; they are pointers
// because records written before those fields existed lack them, and
// the edit path falls back to live settings in that case.
type Order struct {
	ID            string        `json:"id"`
	Timestamp     int64         `json:"timestamp"` // unix millis
	Items         []OrderItem   `json:"items"`
	TotalAmount   int64         `json:"totalAmount"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	CustomerName  string        `json:"customerName,omitempty"`

	CashReceived *int64 `json:"cashReceived,omitempty"`
	Change       *int64 `json:"change,omitempty"`

	TaxRate   *float64 `json:"taxRate,omitempty"`
	TaxAmount *int64   `json:"taxAmount,omitempty"`

	DiscountEnabled *bool         `json:"discountEnabled,omitempty"`
	DiscountType    *DiscountType `json:"discountType,omitempty"`
	DiscountRate    *float64      `json:"discountRate,omitempty"`
	DiscountAmount  *int64        `json:"discountAmount,omitempty"`
}

// Subtotal sums the frozen line subtotals.
func (o *Order) Subtotal() int64 {
	var sum int64
	for _, it := range o.Items {
		sum += it.Subtotal
	}
	return sum
}

// ItemQuantity returns the total quantity of the given product across
// all of the order's lines, 0 if the product is not part of it. Edits
// may carry the same product on more than one line; stock accounting
// always works on the per-product sum.
func (o *Order) ItemQuantity(productID string) int {
	total := 0
	for _, it := range o.Items {
		if it.ProductID == productID {
			total += it.Quantity
		}
	}
	return total
}
