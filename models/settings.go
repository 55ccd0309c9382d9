package models

type PrinterType string

const (
	PrinterBrowser   PrinterType = "browser"
	PrinterBluetooth PrinterType = "bluetooth"
)

// CafeSettings is a singleton record. Orders copy the tax/discount
// fields at checkout, so changing these never rewrites history.
type CafeSettings struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	FooterMessage string `json:"footerMessage"`
	Logo          string `json:"logo,omitempty"`

	TaxEnabled bool    `json:"taxEnabled"`
	TaxRate    float64 `json:"taxRate"` // percent

	DiscountEnabled bool         `json:"discountEnabled"`
	DiscountType    DiscountType `json:"discountType"`
	// DiscountRate is a percentage for type "percent" and a rupiah
	// amount for type "nominal".
	DiscountRate float64 `json:"discountRate"`

	PrinterType  PrinterType `json:"printerType"`
	PrinterWidth int         `json:"printerWidth"` // characters per line: 32 or 48
}
