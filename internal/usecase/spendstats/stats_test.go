package spendstats

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfalcao/cashpilot-backend/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculate_BurnRateScenario(t *testing.T) {
	// $50 three days back, $75 two days back, $25 on the calculation date,
	// 7-day window: average = 150/7, min = 25 (non-zero days), max = 75.
	asOf := day(2024, 1, 31)
	events := []domain.SpendingEvent{
		{Date: day(2024, 1, 28), Amount: decimal.NewFromInt(50)},
		{Date: day(2024, 1, 29), Amount: decimal.NewFromInt(75)},
		{Date: day(2024, 1, 31), Amount: decimal.NewFromInt(25)},
	}

	stats, err := Calculate(events, asOf, []int{7})
	require.NoError(t, err)
	require.Contains(t, stats, 7)

	window := stats[7]
	wantAvg := decimal.NewFromInt(150).Div(decimal.NewFromInt(7))
	assert.True(t, window.AverageDailySpend.Equal(wantAvg),
		"average = %s, want %s", window.AverageDailySpend, wantAvg)
	assert.True(t, window.MinDailySpend.Equal(decimal.NewFromInt(25)))
	assert.True(t, window.MaxDailySpend.Equal(decimal.NewFromInt(75)))

	// Sorted dense window: [0 0 0 0 25 50 75]
	assert.True(t, window.Percentile25.Equal(decimal.Zero))
	assert.True(t, window.Percentile75.Equal(decimal.NewFromInt(50)))
	assert.True(t, window.Percentile90.Equal(decimal.NewFromInt(75)))

	// Population standard deviation over the dense 7-day array.
	assert.InDelta(t, 28.1215, window.StandardDeviation.InexactFloat64(), 0.001)
}

func TestCalculate_AverageDividesByWindowNotByActiveDays(t *testing.T) {
	asOf := day(2024, 6, 30)
	events := []domain.SpendingEvent{
		{Date: day(2024, 6, 30), Amount: decimal.NewFromInt(300)},
	}

	stats, err := Calculate(events, asOf, []int{30})
	require.NoError(t, err)

	// 300 / 30 days, not 300 / 1 spending day.
	assert.True(t, stats[30].AverageDailySpend.Equal(decimal.NewFromInt(10)))
}

func TestCalculate_SameDayEventsAreSummed(t *testing.T) {
	asOf := day(2024, 3, 10)
	events := []domain.SpendingEvent{
		{Date: day(2024, 3, 10), Amount: decimal.RequireFromString("12.50")},
		{Date: day(2024, 3, 10), Amount: decimal.RequireFromString("7.50")},
	}

	stats, err := Calculate(events, asOf, []int{1})
	require.NoError(t, err)
	assert.True(t, stats[1].AverageDailySpend.Equal(decimal.NewFromInt(20)))
	assert.True(t, stats[1].MaxDailySpend.Equal(decimal.NewFromInt(20)))
	assert.True(t, stats[1].MinDailySpend.Equal(decimal.NewFromInt(20)))
}

func TestCalculate_EventsOutsideWindowAreIgnored(t *testing.T) {
	asOf := day(2024, 1, 31)
	events := []domain.SpendingEvent{
		// Exactly one day before the 7-day window starts (window is Jan 25-31).
		{Date: day(2024, 1, 24), Amount: decimal.NewFromInt(999)},
		{Date: day(2024, 1, 25), Amount: decimal.NewFromInt(70)},
		// After the calculation date.
		{Date: day(2024, 2, 1), Amount: decimal.NewFromInt(500)},
	}

	stats, err := Calculate(events, asOf, []int{7})
	require.NoError(t, err)
	assert.True(t, stats[7].AverageDailySpend.Equal(decimal.NewFromInt(10)))
	assert.True(t, stats[7].MaxDailySpend.Equal(decimal.NewFromInt(70)))
}

func TestCalculate_EmptyEventsYieldZeroStats(t *testing.T) {
	stats, err := Calculate([]domain.SpendingEvent{}, day(2024, 1, 1), []int{7, 30})
	require.NoError(t, err)

	for _, n := range []int{7, 30} {
		window := stats[n]
		assert.True(t, window.AverageDailySpend.IsZero())
		assert.True(t, window.StandardDeviation.IsZero())
		assert.True(t, window.MinDailySpend.IsZero())
		assert.True(t, window.MaxDailySpend.IsZero())
		assert.True(t, window.Percentile90.IsZero())
	}
}

func TestCalculate_MultipleWindows(t *testing.T) {
	asOf := day(2024, 5, 31)
	events := []domain.SpendingEvent{
		{Date: day(2024, 5, 31), Amount: decimal.NewFromInt(30)},
		{Date: day(2024, 5, 1), Amount: decimal.NewFromInt(31)},
	}

	stats, err := Calculate(events, asOf, []int{7, 31})
	require.NoError(t, err)
	require.Len(t, stats, 2)

	// The May 1 event is outside the 7-day window but inside the 31-day one.
	wantSmall := decimal.NewFromInt(30).Div(decimal.NewFromInt(7))
	assert.True(t, stats[7].AverageDailySpend.Equal(wantSmall))

	wantLarge := decimal.NewFromInt(61).Div(decimal.NewFromInt(31))
	assert.True(t, stats[31].AverageDailySpend.Equal(wantLarge))
}

func TestCalculate_NilEventsIsAnError(t *testing.T) {
	_, err := Calculate(nil, day(2024, 1, 1), []int{7})
	assert.ErrorIs(t, err, domain.ErrNilInput)
}

func TestCalculate_NonPositiveWindowIsAnError(t *testing.T) {
	_, err := Calculate([]domain.SpendingEvent{}, day(2024, 1, 1), []int{0})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = Calculate([]domain.SpendingEvent{}, day(2024, 1, 1), []int{7, -3})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestCalculate_NegativeAmountIsAnError(t *testing.T) {
	events := []domain.SpendingEvent{
		{Date: day(2024, 1, 1), Amount: decimal.NewFromInt(-5)},
	}
	_, err := Calculate(events, day(2024, 1, 1), []int{7})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
