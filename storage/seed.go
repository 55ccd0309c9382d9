package storage

import "github.com/kafekita/pos-app/models"

// First-run sample data, matching the documents shipped with the
// original KafeKita build.

func seedCategories() []models.Category {
	return []models.Category{
		{ID: "cat_1", Name: "Kopi"},
		{ID: "cat_2", Name: "Non-Kopi"},
		{ID: "cat_3", Name: "Makanan"},
		{ID: "cat_4", Name: "Snack"},
	}
}

func seedProducts() []models.Product {
	return []models.Product{
		{ID: "prod_1", Name: "Kopi Susu Gula Aren", Price: 18000, CategoryID: "cat_1", Description: "Best seller kopi susu kekinian", Stock: 50, AutoResetStock: true, InitialStock: 50},
		{ID: "prod_2", Name: "Americano", Price: 15000, CategoryID: "cat_1", Description: "Kopi hitam klasik", IsUnlimited: true},
		{ID: "prod_3", Name: "Matcha Latte", Price: 22000, CategoryID: "cat_2", Description: "Green tea latte premium", Stock: 20, InitialStock: 20},
		{ID: "prod_4", Name: "Nasi Goreng Spesial", Price: 25000, CategoryID: "cat_3", Description: "Lengkap dengan telur dan ayam", Stock: 15, AutoResetStock: true, InitialStock: 15},
		{ID: "prod_5", Name: "Kentang Goreng", Price: 12000, CategoryID: "cat_4", Description: "Renyah dan gurih", Stock: 4, InitialStock: 10},
	}
}

func seedSettings() models.CafeSettings {
	return models.CafeSettings{
		Name:          "KafeKita",
		Address:       "Jl. Kopi Nikmat No. 123, Jakarta",
		Phone:         "0812-3456-7890",
		FooterMessage: "Terima Kasih atas kunjungan Anda!",
		TaxEnabled:    true,
		TaxRate:       11,
		DiscountType:  models.DiscountPercent,
		PrinterType:   models.PrinterBrowser,
		PrinterWidth:  32,
	}
}
