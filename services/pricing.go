package services

import (
	"math"

	"github.com/kafekita/pos-app/models"
)

// PriceLine is the pricing engine's view of a cart or order line.
type PriceLine struct {
	Price    int64
	Quantity int
}

// PricingConfig carries the tax/discount policy a total is computed
// under, either live settings or an order's stored snapshot.
type PricingConfig struct {
	TaxEnabled      bool
	TaxRate         float64
	DiscountEnabled bool
	DiscountType    models.DiscountType
	DiscountRate    float64
}

// PricingConfigFromSettings extracts the current policy.
func PricingConfigFromSettings(s models.CafeSettings) PricingConfig {
	return PricingConfig{
		TaxEnabled:      s.TaxEnabled,
		TaxRate:         s.TaxRate,
		DiscountEnabled: s.DiscountEnabled,
		DiscountType:    s.DiscountType,
		DiscountRate:    s.DiscountRate,
	}
}

// EffectiveTaxRate is the rate actually charged: zero when tax is
// disabled. Orders snapshot this value, not the configured one.
func (c PricingConfig) EffectiveTaxRate() float64 {
	if !c.TaxEnabled {
		return 0
	}
	return c.TaxRate
}

// Totals is the full amount breakdown for one transaction.
type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Discount int64 `json:"discount"`
	Taxable  int64 `json:"taxable"`
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`
}

// ComputeTotals is pure: same lines and config always produce the same
// breakdown. Amounts are integer rupiah; the two percentage products
// (discount, tax) are each rounded half-up exactly once, everything
// else is exact integer arithmetic.
func ComputeTotals(lines []PriceLine, cfg PricingConfig) Totals {
	var subtotal int64
	for _, l := range lines {
		subtotal += l.Price * int64(l.Quantity)
	}

	var discount int64
	if cfg.DiscountEnabled {
		if cfg.DiscountType == models.DiscountNominal {
			discount = roundHalfUp(cfg.DiscountRate)
			if discount > subtotal {
				discount = subtotal
			}
		} else {
			discount = roundHalfUp(float64(subtotal) * cfg.DiscountRate / 100)
		}
	}

	taxable := subtotal - discount
	if taxable < 0 {
		taxable = 0
	}

	tax := roundHalfUp(float64(taxable) * cfg.EffectiveTaxRate() / 100)

	return Totals{
		Subtotal: subtotal,
		Discount: discount,
		Taxable:  taxable,
		Tax:      tax,
		Total:    taxable + tax,
	}
}

// ComputeChange applies the cash rule: change is what exceeds the
// total. Non-cash methods are defined to tender the exact total.
func ComputeChange(method models.PaymentMethod, cashReceived, total int64) (received, change int64) {
	if method != models.PaymentCash {
		return total, 0
	}
	change = cashReceived - total
	if change < 0 {
		change = 0
	}
	return cashReceived, change
}

func roundHalfUp(x float64) int64 {
	return int64(math.Floor(x + 0.5))
}
