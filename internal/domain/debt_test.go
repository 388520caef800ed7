package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDebt_EffectiveRate(t *testing.T) {
	asOf := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	promoRate := decimal.RequireFromString("0.0199")
	future := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	past := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sameDay := time.Date(2024, 6, 15, 23, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		debt Debt
		want decimal.Decimal
	}{
		{
			name: "No promo fields uses annual rate",
			debt: Debt{Name: "Card", AnnualRate: decimal.RequireFromString("0.2499")},
			want: decimal.RequireFromString("0.2499"),
		},
		{
			name: "Active promo uses promo rate",
			debt: Debt{
				Name:         "Card",
				AnnualRate:   decimal.RequireFromString("0.2499"),
				PromoRate:    &promoRate,
				PromoEndDate: &future,
			},
			want: promoRate,
		},
		{
			name: "Expired promo falls back to annual rate",
			debt: Debt{
				Name:         "Card",
				AnnualRate:   decimal.RequireFromString("0.2499"),
				PromoRate:    &promoRate,
				PromoEndDate: &past,
			},
			want: decimal.RequireFromString("0.2499"),
		},
		{
			name: "Promo ending today is no longer active",
			debt: Debt{
				Name:         "Card",
				AnnualRate:   decimal.RequireFromString("0.2499"),
				PromoRate:    &promoRate,
				PromoEndDate: &sameDay,
			},
			want: decimal.RequireFromString("0.2499"),
		},
		{
			name: "Promo end date without promo rate uses annual rate",
			debt: Debt{
				Name:         "Card",
				AnnualRate:   decimal.RequireFromString("0.2499"),
				PromoEndDate: &future,
			},
			want: decimal.RequireFromString("0.2499"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.debt.EffectiveRate(asOf)
			assert.True(t, got.Equal(tt.want), "EffectiveRate = %s, want %s", got, tt.want)
		})
	}
}

func TestDayOf_StripsTimeOfDay(t *testing.T) {
	ts := time.Date(2024, 3, 10, 17, 45, 12, 999, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), DayOf(ts))
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2024, 1, 31, 23, 0, 0, 0, time.UTC)
	b := time.Date(2024, 2, 3, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 3, DaysBetween(a, b))
	assert.Equal(t, -3, DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(a, a))
}

func TestAddMonths_ClampsToMonthEnd(t *testing.T) {
	jan31 := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	// 2024 is a leap year
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), AddMonths(jan31, 1))
	// Day-of-month is preserved when the target month is long enough
	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), AddMonths(jan31, 2))
	assert.Equal(t, time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), AddMonths(jan31, 12))
}

func TestMonthsBetween(t *testing.T) {
	a := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, MonthsBetween(a, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 1, MonthsBetween(a, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 13, MonthsBetween(a, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)))
}
