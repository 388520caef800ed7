package spendstats

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mfalcao/cashpilot-backend/internal/domain"
)

const dayKeyLayout = "2006-01-02"

// WindowStats holds the daily-spend statistics for one trailing window.
//
// AverageDailySpend divides total spend by the window length, including
// zero-spend days. MinDailySpend considers non-zero days only, so a window
// with any spending never reports a zero minimum; MaxDailySpend considers all
// days and is legitimately zero when nothing was spent.
type WindowStats struct {
	WindowDays        int
	AverageDailySpend decimal.Decimal
	StandardDeviation decimal.Decimal
	MinDailySpend     decimal.Decimal
	MaxDailySpend     decimal.Decimal
	Percentile25      decimal.Decimal
	Percentile75      decimal.Decimal
	Percentile90      decimal.Decimal
}

// Calculate computes per-window daily-spend statistics over the given events.
//
// Logic:
//  1. Sum same-day events into a per-day total, keyed by calendar day
//  2. For each window of N days ending at asOf (inclusive), build a dense
//     N-length array of daily totals, zero-spend days included
//  3. Average = total / N, standard deviation is the population deviation over
//     the dense array, percentiles use the nearest-rank method
//
// Empty input or windows with no spending yield all-zero statistics without
// error. A nil events slice or an empty window list is a usage error, as is
// any non-positive window length.
func Calculate(events []domain.SpendingEvent, asOf time.Time, windowDays []int) (map[int]WindowStats, error) {
	if events == nil {
		return nil, domain.NilInputError("spending events")
	}
	if len(windowDays) == 0 {
		return nil, domain.NilInputError("window lengths")
	}
	for _, n := range windowDays {
		if n <= 0 {
			return nil, domain.InvalidArgumentError("window length must be positive, got %d", n)
		}
	}
	for _, ev := range events {
		if ev.Amount.IsNegative() {
			return nil, domain.InvalidArgumentError("spending event amount must be non-negative, got %s", ev.Amount)
		}
	}

	// Aggregate same-day events once; every window reads from this map.
	totalsByDay := make(map[string]decimal.Decimal)
	for _, ev := range events {
		key := ev.Date.Format(dayKeyLayout)
		totalsByDay[key] = totalsByDay[key].Add(ev.Amount)
	}

	asOfDay := domain.DayOf(asOf)
	result := make(map[int]WindowStats, len(windowDays))
	for _, n := range windowDays {
		result[n] = windowStats(totalsByDay, asOfDay, n)
	}
	return result, nil
}

// windowStats computes the statistics for a single window of n days ending at
// asOfDay inclusive.
func windowStats(totalsByDay map[string]decimal.Decimal, asOfDay time.Time, n int) WindowStats {
	daily := make([]decimal.Decimal, n)
	total := decimal.Zero
	for i := 0; i < n; i++ {
		day := asOfDay.AddDate(0, 0, i-(n-1))
		daily[i] = totalsByDay[day.Format(dayKeyLayout)]
		total = total.Add(daily[i])
	}

	count := decimal.NewFromInt(int64(n))
	average := total.Div(count)

	variance := decimal.Zero
	for _, d := range daily {
		dev := d.Sub(average)
		variance = variance.Add(dev.Mul(dev))
	}
	variance = variance.Div(count)
	stdDev := decimal.NewFromFloat(math.Sqrt(variance.InexactFloat64()))

	min := decimal.Zero
	max := decimal.Zero
	for _, d := range daily {
		if d.IsPositive() && (min.IsZero() || d.LessThan(min)) {
			min = d
		}
		if d.GreaterThan(max) {
			max = d
		}
	}

	sorted := make([]decimal.Decimal, n)
	copy(sorted, daily)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].LessThan(sorted[j]) })

	return WindowStats{
		WindowDays:        n,
		AverageDailySpend: average,
		StandardDeviation: stdDev,
		MinDailySpend:     min,
		MaxDailySpend:     max,
		Percentile25:      nearestRank(sorted, 0.25),
		Percentile75:      nearestRank(sorted, 0.75),
		Percentile90:      nearestRank(sorted, 0.90),
	}
}

// nearestRank returns the nearest-rank percentile of an ascending-sorted array:
// index = ceil(n*p) - 1, clamped to [0, n-1].
func nearestRank(sorted []decimal.Decimal, p float64) decimal.Decimal {
	idx := int(math.Ceil(float64(len(sorted))*p)) - 1
	if idx < 0 {
		idx = 0
	}
	if idx > len(sorted)-1 {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
