package schedule

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mfalcao/cashpilot-backend/internal/domain"
)

// Occurrence pairs one expanded schedule date with the recurring amount,
// ready to feed into simulation or projection event lists.
type Occurrence struct {
	Date   time.Time
	Amount decimal.Decimal
}

// Expand turns an anchor date plus a frequency into the ordered occurrence
// dates falling inside the inclusive [start, end] range.
//
// Day-count frequencies (Weekly/BiWeekly/SemiMonthly) advance by a fixed
// number of days. Calendar frequencies (Monthly/Quarterly/Annually) advance by
// calendar unit from the anchor, so the anchor's day-of-month survives short
// months: an anchor on Jan 31 yields Feb 29 and then Mar 31 again.
//
// The result is empty when start is after end or the anchor is after end.
func Expand(anchor time.Time, frequency domain.RecurringFrequency, start, end time.Time) ([]time.Time, error) {
	if !frequency.Valid() {
		return nil, domain.InvalidArgumentError("unknown recurring frequency %q", frequency)
	}

	anchorDay := domain.DayOf(anchor)
	startDay := domain.DayOf(start)
	endDay := domain.DayOf(end)

	occurrences := make([]time.Time, 0)
	if startDay.After(endDay) || anchorDay.After(endDay) {
		return occurrences, nil
	}

	// The k-th occurrence is computed from the anchor rather than from the
	// previous occurrence, so a clamped day-of-month never sticks.
	nth := func(k int) time.Time {
		if days, ok := frequency.DayStep(); ok {
			return anchorDay.AddDate(0, 0, k*days)
		}
		months, _ := frequency.MonthStep()
		return domain.AddMonths(anchorDay, k*months)
	}

	k := 0
	for nth(k).Before(startDay) {
		k++
	}
	for date := nth(k); !date.After(endDay); k, date = k+1, nth(k+1) {
		occurrences = append(occurrences, date)
	}
	return occurrences, nil
}

// ExpandAmounts expands a schedule like Expand and pairs every occurrence
// with the given fixed amount.
func ExpandAmounts(anchor time.Time, frequency domain.RecurringFrequency, start, end time.Time, amount decimal.Decimal) ([]Occurrence, error) {
	if amount.IsNegative() {
		return nil, domain.InvalidArgumentError("recurring amount must be non-negative, got %s", amount)
	}
	dates, err := Expand(anchor, frequency, start, end)
	if err != nil {
		return nil, err
	}
	occurrences := make([]Occurrence, 0, len(dates))
	for _, date := range dates {
		occurrences = append(occurrences, Occurrence{Date: date, Amount: amount})
	}
	return occurrences, nil
}
