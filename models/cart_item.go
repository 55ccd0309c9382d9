package models

// CartItem is a product snapshot plus a quantity. It only lives in
// memory between add-to-cart and checkout (or clear).
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}
