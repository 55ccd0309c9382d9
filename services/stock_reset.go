package services

import (
	"github.com/kafekita/pos-app/models"
	"github.com/kafekita/pos-app/storage"
)

// StockService applies the configured daily baseline to flagged
// products. Despite the "daily" label this is operator-triggered, not
// scheduled.
type StockService struct {
	store *storage.Gateway
}

func NewStockService(store *storage.Gateway) *StockService {
	return &StockService{store: store}
}

// ResetStock overwrites stock with the configured baseline for every
// product flagged for auto reset (unlimited products are exempt). No
// history of pre-reset values is kept. Returns ErrNothingToReset, with
// the catalog untouched, when no product qualifies.
func (s *StockService) ResetStock() ([]models.Product, error) {
	products, err := s.store.LoadProducts()
	if err != nil {
		return nil, err
	}

	count := 0
	for i := range products {
		if products[i].AutoResetStock && !products[i].IsUnlimited {
			products[i].Stock = products[i].InitialStock
			count++
		}
	}
	if count == 0 {
		return nil, ErrNothingToReset
	}

	if err := s.store.SaveProducts(products); err != nil {
		return nil, err
	}
	return products, nil
}
