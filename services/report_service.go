package services

import (
	"sort"
	"time"

	"github.com/kafekita/pos-app/models"
	"github.com/kafekita/pos-app/storage"
)

// ReportService aggregates sales figures from order history. It only
// reads; totals come from the frozen order records, never from the
// live catalog.
type ReportService struct {
	store *storage.Gateway
}

func NewReportService(store *storage.Gateway) *ReportService {
	return &ReportService{store: store}
}

type ProductSales struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Revenue   int64  `json:"revenue"`
}

type SalesSummary struct {
	TotalRevenue int64                          `json:"totalRevenue"`
	TotalOrders  int                            `json:"totalOrders"`
	ItemsSold    int                            `json:"itemsSold"`
	AverageValue int64                          `json:"averageValue"`
	ByMethod     map[models.PaymentMethod]int64 `json:"byMethod"`
	TopProducts  []ProductSales                 `json:"topProducts"`
}

// Summary aggregates orders whose timestamp falls in [from, to). Zero
// bounds mean unbounded on that side.
func (s *ReportService) Summary(from, to time.Time) (*SalesSummary, error) {
	orders, err := s.store.LoadOrders()
	if err != nil {
		return nil, err
	}

	summary := &SalesSummary{ByMethod: map[models.PaymentMethod]int64{}}
	byProduct := map[string]*ProductSales{}

	for _, order := range orders {
		ts := time.UnixMilli(order.Timestamp)
		if !from.IsZero() && ts.Before(from) {
			continue
		}
		if !to.IsZero() && !ts.Before(to) {
			continue
		}

		summary.TotalOrders++
		summary.TotalRevenue += order.TotalAmount
		summary.ByMethod[order.PaymentMethod] += order.TotalAmount

		for _, item := range order.Items {
			summary.ItemsSold += item.Quantity
			ps, ok := byProduct[item.ProductID]
			if !ok {
				ps = &ProductSales{ProductID: item.ProductID, Name: item.Name}
				byProduct[item.ProductID] = ps
			}
			ps.Quantity += item.Quantity
			ps.Revenue += item.Subtotal
		}
	}

	if summary.TotalOrders > 0 {
		summary.AverageValue = summary.TotalRevenue / int64(summary.TotalOrders)
	}

	for _, ps := range byProduct {
		summary.TopProducts = append(summary.TopProducts, *ps)
	}
	sort.Slice(summary.TopProducts, func(i, j int) bool {
		a, b := summary.TopProducts[i], summary.TopProducts[j]
		if a.Quantity != b.Quantity {
			return a.Quantity > b.Quantity
		}
		return a.Name < b.Name
	})
	if len(summary.TopProducts) > 10 {
		summary.TopProducts = summary.TopProducts[:10]
	}

	return summary, nil
}
