package services

import (
	"errors"
	"fmt"
	"strings"
)

// Expected failure conditions. All of these are recoverable outcomes
// of normal operation; the caller fixes its input and retries.
var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrEmptyOrder          = errors.New("order must contain at least one item")
	ErrInsufficientPayment = errors.New("cash received is less than the total amount")
	ErrNothingToReset      = errors.New("no products are configured for daily stock reset")
	ErrInvalidPayment      = errors.New("unsupported payment method")
)

// StockShortage names one product blocking a checkout or edit.
type StockShortage struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}

// InsufficientStockError reports every product whose available stock
// cannot cover the requested quantities. The operation it comes from
// changed nothing.
type InsufficientStockError struct {
	Shortages []StockShortage
}

func (e *InsufficientStockError) Error() string {
	names := make([]string, len(e.Shortages))
	for i, s := range e.Shortages {
		names[i] = fmt.Sprintf("%s (need %d, have %d)", s.Name, s.Requested, s.Available)
	}
	return "insufficient stock: " + strings.Join(names, ", ")
}
