package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumberIDR(t *testing.T) {
	cases := map[int64]string{
		0:        "0",
		999:      "999",
		1000:     "1.000",
		18000:    "18.000",
		99900:    "99.900",
		1234567:  "1.234.567",
		-25000:   "-25.000",
		10000000: "10.000.000",
	}
	for amount, want := range cases {
		assert.Equal(t, want, FormatNumberIDR(amount))
	}
}

func TestFormatCurrencyIDR(t *testing.T) {
	assert.Equal(t, "Rp 18.000", FormatCurrencyIDR(18000))
	assert.Equal(t, "Rp 0", FormatCurrencyIDR(0))
}
