package models

// Product is a catalog entry. Prices are stored in rupiah (no minor
// fraction in IDR), stock counts are whole units.
//
// JSON field names follow the stored-document layout so existing data
// files keep loading unchanged.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	CategoryID  string `json:"categoryId"`
	Image       string `json:"image,omitempty"`
	Description string `json:"description,omitempty"`
	// Stock is meaningless when IsUnlimited is set.
	Stock       int  `json:"stock"`
	IsUnlimited bool `json:"isUnlimited"`
	// InitialStock is the baseline applied by the daily stock reset.
	InitialStock   int  `json:"initialStock"`
	AutoResetStock bool `json:"autoResetStock"`
}
