package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/kafekita/pos-app/models"
	"github.com/kafekita/pos-app/utils"
)

// RenderReceipt lays an order out as plain text at the configured
// printer width (32 columns for 58mm paper, 48 for 80mm). The result
// is what gets sent to the thermal printer, minus the ESC/POS framing.
func RenderReceipt(order models.Order, settings models.CafeSettings) string {
	width := settings.PrinterWidth
	if width == 0 {
		width = 32
	}

	var b strings.Builder
	line := strings.Repeat("-", width)

	center := func(s string) {
		if len(s) > width {
			s = s[:width]
		}
		pad := (width - len(s)) / 2
		b.WriteString(strings.Repeat(" ", pad) + s + "\n")
	}
	row := func(left, right string) {
		space := width - len(left) - len(right)
		if space < 1 {
			b.WriteString(left + "\n")
			b.WriteString(strings.Repeat(" ", width-len(right)) + right + "\n")
			return
		}
		b.WriteString(left + strings.Repeat(" ", space) + right + "\n")
	}

	name := settings.Name
	if name == "" {
		name = "KAFE KITA"
	}
	center(name)
	if settings.Address != "" {
		center(settings.Address)
	}
	if settings.Phone != "" {
		center(settings.Phone)
	}
	b.WriteString("\n" + line + "\n")

	ts := time.UnixMilli(order.Timestamp)
	b.WriteString("Tgl: " + ts.Format("02/01/2006 15:04") + "\n")
	b.WriteString("ID: " + order.ID + "\n")
	if order.CustomerName != "" {
		b.WriteString("Plg: " + order.CustomerName + "\n")
	}
	b.WriteString(line + "\n")

	for _, item := range order.Items {
		b.WriteString(item.Name + "\n")
		row(
			fmt.Sprintf("%d x %s", item.Quantity, utils.FormatNumberIDR(item.Price)),
			utils.FormatNumberIDR(item.Price*int64(item.Quantity)),
		)
	}
	b.WriteString(line + "\n")

	row("Subtotal", utils.FormatNumberIDR(order.Subtotal()))
	if order.DiscountAmount != nil && *order.DiscountAmount > 0 {
		label := "Discount"
		if order.DiscountType != nil && *order.DiscountType == models.DiscountPercent && order.DiscountRate != nil {
			label = fmt.Sprintf("Disc (%s%%)", formatRate(*order.DiscountRate))
		}
		row(label, "-"+utils.FormatNumberIDR(*order.DiscountAmount))
	}
	if order.TaxAmount != nil && *order.TaxAmount > 0 {
		rate := ""
		if order.TaxRate != nil {
			rate = formatRate(*order.TaxRate)
		}
		row(fmt.Sprintf("Pajak (%s%%)", rate), utils.FormatNumberIDR(*order.TaxAmount))
	}

	b.WriteString("\n")
	total := "TOTAL: " + utils.FormatNumberIDR(order.TotalAmount)
	if pad := width - len(total); pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(total + "\n" + line + "\n")

	received := order.TotalAmount
	if order.CashReceived != nil {
		received = *order.CashReceived
	}
	var change int64
	if order.Change != nil {
		change = *order.Change
	}
	row("Bayar", utils.FormatNumberIDR(received))
	row("Kembali", utils.FormatNumberIDR(change))
	row("Metode", strings.ToUpper(string(order.PaymentMethod)))

	b.WriteString("\n")
	if settings.FooterMessage != "" {
		center(settings.FooterMessage)
	}
	center("Powered by KafeKita")

	return b.String()
}

func formatRate(rate float64) string {
	s := fmt.Sprintf("%g", rate)
	return s
}
