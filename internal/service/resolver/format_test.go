package resolver

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	t.Parallel()

	d := time.Date(2026, time.March, 9, 13, 45, 0, 0, time.UTC)
	assert.Equal(t, "09 Mar 2026", FormatDate(d))
}

func TestFormatDatePtr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", FormatDatePtr(nil))

	d := time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "31 Aug 2026", FormatDatePtr(&d))
}

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		amount   decimal.Decimal
		expected string
	}{
		{"zero", decimal.Zero, "Rp 0"},
		{"under a thousand", decimal.NewFromInt(500), "Rp 500"},
		{"thousands", decimal.NewFromInt(12500), "Rp 12.500"},
		{"millions", decimal.NewFromInt(12345678), "Rp 12.345.678"},
		{"rounded fraction", decimal.NewFromFloat(999.6), "Rp 1.000"},
		{"negative", decimal.NewFromInt(-2500000), "Rp -2.500.000"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, FormatAmount(tt.amount))
		})
	}
}
