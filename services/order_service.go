package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kafekita/pos-app/models"
	"github.com/kafekita/pos-app/storage"
)

// OrderService is the order lifecycle engine: it commits checkouts
// against inventory and reconciles stock when historical orders are
// edited or voided. It is the only writer of Product.Stock and of the
// order collection.
type OrderService struct {
	store *storage.Gateway
	cart  *Cart

	mu     sync.Mutex
	lastID string
}

func NewOrderService(store *storage.Gateway, cart *Cart) *OrderService {
	return &OrderService{store: store, cart: cart}
}

// CheckoutRequest carries the payment details for committing the
// current cart.
type CheckoutRequest struct {
	PaymentMethod models.PaymentMethod `json:"paymentMethod" binding:"required"`
	CashReceived  int64                `json:"cashReceived"`
	CustomerName  string               `json:"customerName"`
}

// StockReconciliation reports order lines whose product no longer
// exists in the catalog, so no stock could be adjusted for them. The
// adjustment itself proceeds; this makes the skip observable.
type StockReconciliation struct {
	SkippedProductIDs []string `json:"skippedProductIds,omitempty"`
}

// Checkout commits the cart as a new order: totals are computed under
// the current settings (which are snapshotted into the order), stock
// is deducted per line, and products plus the new order are persisted
// in one transaction. The cart is cleared only after the commit
// succeeds.
func (s *OrderService) Checkout(req CheckoutRequest) (*models.Order, error) {
	if !req.PaymentMethod.Valid() {
		return nil, ErrInvalidPayment
	}
	lines := s.cart.Items()
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	settings, err := s.store.LoadSettings()
	if err != nil {
		return nil, err
	}
	cfg := PricingConfigFromSettings(settings)

	priceLines := make([]PriceLine, len(lines))
	for i, l := range lines {
		priceLines[i] = PriceLine{Price: l.Price, Quantity: l.Quantity}
	}
	totals := ComputeTotals(priceLines, cfg)

	if req.PaymentMethod == models.PaymentCash && req.CashReceived < totals.Total {
		return nil, ErrInsufficientPayment
	}
	received, change := ComputeChange(req.PaymentMethod, req.CashReceived, totals.Total)

	items := make([]models.OrderItem, len(lines))
	for i, l := range lines {
		items[i] = models.OrderItem{
			ProductID: l.ID,
			Name:      l.Name,
			Price:     l.Price,
			Quantity:  l.Quantity,
			Subtotal:  l.Price * int64(l.Quantity),
		}
	}

	taxRate := cfg.EffectiveTaxRate()
	order := models.Order{
		ID:              s.newOrderID(),
		Timestamp:       time.Now().UnixMilli(),
		Items:           items,
		TotalAmount:     totals.Total,
		PaymentMethod:   req.PaymentMethod,
		CustomerName:    req.CustomerName,
		CashReceived:    &received,
		Change:          &change,
		TaxRate:         &taxRate,
		TaxAmount:       &totals.Tax,
		DiscountEnabled: &settings.DiscountEnabled,
		DiscountType:    &settings.DiscountType,
		DiscountRate:    &settings.DiscountRate,
		DiscountAmount:  &totals.Discount,
	}

	products, err := s.store.LoadProducts()
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		for i := range products {
			if products[i].ID != item.ProductID || products[i].IsUnlimited {
				continue
			}
			// The cart's admission check should keep this from going
			// negative; floor it anyway so stock never underflows.
			products[i].Stock -= item.Quantity
			if products[i].Stock < 0 {
				products[i].Stock = 0
			}
		}
	}

	err = s.store.Transaction(func(tx *storage.Gateway) error {
		if err := tx.SaveProducts(products); err != nil {
			return err
		}
		return tx.AppendOrder(order)
	})
	if err != nil {
		return nil, err
	}

	s.cart.Clear()
	return &order, nil
}

// Void removes a committed order and returns its stock. The caller
// must already hold a confirmed intent; there is no further prompt
// here. Lines whose product was deleted since the sale are skipped and
// reported in the reconciliation.
func (s *OrderService) Void(orderID string) (*StockReconciliation, error) {
	orders, err := s.store.LoadOrders()
	if err != nil {
		return nil, err
	}
	idx := findOrder(orders, orderID)
	if idx < 0 {
		return nil, ErrOrderNotFound
	}
	order := orders[idx]

	products, err := s.store.LoadProducts()
	if err != nil {
		return nil, err
	}

	report := &StockReconciliation{}
	for _, item := range order.Items {
		pi := findProduct(products, item.ProductID)
		if pi < 0 {
			report.SkippedProductIDs = append(report.SkippedProductIDs, item.ProductID)
			continue
		}
		if products[pi].IsUnlimited {
			continue
		}
		products[pi].Stock += item.Quantity
	}

	orders = append(orders[:idx], orders[idx+1:]...)

	err = s.store.Transaction(func(tx *storage.Gateway) error {
		if err := tx.SaveProducts(products); err != nil {
			return err
		}
		return tx.SaveOrders(orders)
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// Update replaces a committed order with an edited item list and
// adjusts stock by the old-vs-new quantity difference per product. The
// whole edit is rejected, with nothing written, if any product lacks
// the stock an increase needs. Totals are recomputed under the order's
// own pricing snapshot when present, falling back to live settings for
// records that predate snapshotting.
func (s *OrderService) Update(edited models.Order) (*models.Order, *StockReconciliation, error) {
	if !edited.PaymentMethod.Valid() {
		return nil, nil, ErrInvalidPayment
	}
	if len(edited.Items) == 0 {
		return nil, nil, ErrEmptyOrder
	}

	orders, err := s.store.LoadOrders()
	if err != nil {
		return nil, nil, err
	}
	idx := findOrder(orders, edited.ID)
	if idx < 0 {
		return nil, nil, ErrOrderNotFound
	}
	old := orders[idx]

	products, err := s.store.LoadProducts()
	if err != nil {
		return nil, nil, err
	}

	// Union of product ids on either side, old-order side first so the
	// shortage report is stable.
	var union []string
	seen := map[string]bool{}
	for _, it := range old.Items {
		if !seen[it.ProductID] {
			seen[it.ProductID] = true
			union = append(union, it.ProductID)
		}
	}
	for _, it := range edited.Items {
		if !seen[it.ProductID] {
			seen[it.ProductID] = true
			union = append(union, it.ProductID)
		}
	}

	report := &StockReconciliation{}
	var shortages []StockShortage
	for _, id := range union {
		pi := findProduct(products, id)
		if pi < 0 {
			report.SkippedProductIDs = append(report.SkippedProductIDs, id)
			continue
		}
		if products[pi].IsUnlimited {
			continue
		}
		diff := edited.ItemQuantity(id) - old.ItemQuantity(id)
		if diff > 0 && products[pi].Stock < diff {
			shortages = append(shortages, StockShortage{
				ProductID: id,
				Name:      products[pi].Name,
				Requested: diff,
				Available: products[pi].Stock,
			})
			continue
		}
		products[pi].Stock -= diff
	}
	if len(shortages) > 0 {
		return nil, nil, &InsufficientStockError{Shortages: shortages}
	}

	settings, err := s.store.LoadSettings()
	if err != nil {
		return nil, nil, err
	}
	cfg := resolvePricingConfig(&edited, &old, settings)

	priceLines := make([]PriceLine, len(edited.Items))
	for i := range edited.Items {
		edited.Items[i].Subtotal = edited.Items[i].Price * int64(edited.Items[i].Quantity)
		priceLines[i] = PriceLine{Price: edited.Items[i].Price, Quantity: edited.Items[i].Quantity}
	}
	totals := ComputeTotals(priceLines, cfg)

	var tendered int64
	if edited.CashReceived != nil {
		tendered = *edited.CashReceived
	} else if old.CashReceived != nil {
		tendered = *old.CashReceived
	}
	if edited.PaymentMethod == models.PaymentCash && tendered < totals.Total {
		return nil, nil, ErrInsufficientPayment
	}
	received, change := ComputeChange(edited.PaymentMethod, tendered, totals.Total)

	taxRate := cfg.EffectiveTaxRate()
	edited.Timestamp = old.Timestamp
	edited.TotalAmount = totals.Total
	edited.CashReceived = &received
	edited.Change = &change
	edited.TaxRate = &taxRate
	edited.TaxAmount = &totals.Tax
	edited.DiscountEnabled = &cfg.DiscountEnabled
	edited.DiscountType = &cfg.DiscountType
	edited.DiscountRate = &cfg.DiscountRate
	edited.DiscountAmount = &totals.Discount

	orders[idx] = edited

	err = s.store.Transaction(func(tx *storage.Gateway) error {
		if err := tx.SaveProducts(products); err != nil {
			return err
		}
		return tx.SaveOrders(orders)
	})
	if err != nil {
		return nil, nil, err
	}
	return &orders[idx], report, nil
}

// resolvePricingConfig picks the tax/discount policy for recomputing
// an edited order's totals. Resolution order: the edited order's
// snapshot fields, then the stored order's, then live settings. Orders
// written before snapshotting existed only hit the last step.
func resolvePricingConfig(edited, stored *models.Order, settings models.CafeSettings) PricingConfig {
	cfg := PricingConfigFromSettings(settings)
	pick := func(o *models.Order) {
		if o.DiscountEnabled != nil {
			cfg.DiscountEnabled = *o.DiscountEnabled
		}
		if o.DiscountType != nil {
			cfg.DiscountType = *o.DiscountType
		}
		if o.DiscountRate != nil {
			cfg.DiscountRate = *o.DiscountRate
		}
		if o.TaxRate != nil {
			// Snapshots store the effective rate, zero when tax was
			// off at sale time.
			cfg.TaxEnabled = true
			cfg.TaxRate = *o.TaxRate
		}
	}
	pick(stored)
	pick(edited)
	return cfg
}

// newOrderID derives an id from the commit time, as the stored
// documents expect. Two commits in the same millisecond get a random
// suffix rather than a duplicate id.
func (s *OrderService) newOrderID() string {
	id := fmt.Sprintf("ORD-%d", time.Now().UnixMilli())
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == s.lastID {
		id = id + "-" + uuid.NewString()[:8]
	}
	s.lastID = id
	return id
}

func findOrder(orders []models.Order, id string) int {
	for i := range orders {
		if orders[i].ID == id {
			return i
		}
	}
	return -1
}

func findProduct(products []models.Product, id string) int {
	for i := range products {
		if products[i].ID == id {
			return i
		}
	}
	return -1
}
