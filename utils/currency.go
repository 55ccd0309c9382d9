package utils

import "strconv"

// FormatNumberIDR renders an amount with Indonesian thousand
// separators: 18000 -> "18.000". IDR has no minor fraction in use, so
// amounts are whole rupiah.
func FormatNumberIDR(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := strconv.FormatInt(amount, 10)

	out := make([]byte, 0, len(s)+len(s)/3)
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	out = append(out, s[:lead]...)
	for i := lead; i < len(s); i += 3 {
		out = append(out, '.')
		out = append(out, s[i:i+3]...)
	}

	if neg {
		return "-" + string(out)
	}
	return string(out)
}

// FormatCurrencyIDR prefixes the formatted amount with the currency
// symbol: 18000 -> "Rp 18.000".
func FormatCurrencyIDR(amount int64) string {
	return "Rp " + FormatNumberIDR(amount)
}
