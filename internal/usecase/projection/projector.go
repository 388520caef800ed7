package projection

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mfalcao/cashpilot-backend/internal/domain"
)

// DefaultAnnualInflation is applied by callers when no inflation rate is supplied.
var DefaultAnnualInflation = decimal.RequireFromString("0.03")

// Input describes one growth projection run. AnnualReturn may be negative
// (a projected loss); AnnualInflation must be non-negative.
type Input struct {
	InitialBalance  decimal.Decimal
	StartDate       time.Time
	EndDate         time.Time
	Contributions   []domain.InvestmentContribution
	AnnualReturn    decimal.Decimal
	AnnualInflation decimal.Decimal
}

// Point is one step of a projection. TotalContributed accumulates the initial
// balance plus all contributions applied so far and is never reduced by
// growth; the growth figures are value minus contributed and can go negative
// when the return rate is negative.
type Point struct {
	Date             time.Time
	NominalValue     decimal.Decimal
	RealValue        decimal.Decimal
	TotalContributed decimal.Decimal
	NominalGrowth    decimal.Decimal
	RealGrowth       decimal.Decimal
}

// Result is a full projection: one point per step in ascending date order,
// with the final point's values surfaced as top-level totals.
type Result struct {
	Points            []Point
	FinalNominalValue decimal.Decimal
	FinalRealValue    decimal.Decimal
	TotalContributed  decimal.Decimal
	NominalGrowth     decimal.Decimal
	RealGrowth        decimal.Decimal
}

// ProjectDaily walks the projection one calendar day at a time. Annual rates
// convert to per-day rates via the 1/365 exponent; contributions match by
// exact calendar day and are applied before that day's growth compounds, and
// growth is skipped on the first day since no time has elapsed yet. The real
// value divides the nominal value by (1+dailyInflation)^daysSinceStart.
func ProjectDaily(in Input) (*Result, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	stepReturn := stepRate(in.AnnualReturn, 365)
	stepInflation := stepRate(in.AnnualInflation, 365)

	contribByStep := make(map[string]decimal.Decimal)
	for _, c := range in.Contributions {
		key := c.Date.Format(time.DateOnly)
		contribByStep[key] = contribByStep[key].Add(c.Amount)
	}

	startDay := domain.DayOf(in.StartDate)
	steps := domain.DaysBetween(startDay, domain.DayOf(in.EndDate)) + 1
	dates := make([]time.Time, steps)
	for i := 0; i < steps; i++ {
		dates[i] = startDay.AddDate(0, 0, i)
	}
	return project(in, dates, stepReturn, stepInflation, func(d time.Time) string {
		return d.Format(time.DateOnly)
	}, contribByStep), nil
}

// ProjectMonthly walks the projection one calendar month at a time, advancing
// from the start date with the day-of-month clamped to short months. Annual
// rates convert via the 1/12 exponent, and contributions are aggregated by
// (year, month) rather than exact date. Growth is skipped on the starting
// step, matching the daily mode.
func ProjectMonthly(in Input) (*Result, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	stepReturn := stepRate(in.AnnualReturn, 12)
	stepInflation := stepRate(in.AnnualInflation, 12)

	contribByStep := make(map[string]decimal.Decimal)
	for _, c := range in.Contributions {
		key := c.Date.Format("2006-01")
		contribByStep[key] = contribByStep[key].Add(c.Amount)
	}

	startDay := domain.DayOf(in.StartDate)
	endDay := domain.DayOf(in.EndDate)
	var dates []time.Time
	for k := 0; ; k++ {
		date := domain.AddMonths(startDay, k)
		if date.After(endDay) {
			break
		}
		dates = append(dates, date)
	}
	return project(in, dates, stepReturn, stepInflation, func(d time.Time) string {
		return d.Format("2006-01")
	}, contribByStep), nil
}

func validate(in Input) error {
	if in.Contributions == nil {
		return domain.NilInputError("contributions")
	}
	if in.InitialBalance.IsNegative() {
		return domain.InvalidArgumentError("initial balance must be non-negative, got %s", in.InitialBalance)
	}
	if domain.DayOf(in.EndDate).Before(domain.DayOf(in.StartDate)) {
		return domain.InvalidArgumentError("end date %s is before start date %s",
			in.EndDate.Format(time.DateOnly), in.StartDate.Format(time.DateOnly))
	}
	if in.AnnualInflation.IsNegative() {
		return domain.InvalidArgumentError("annual inflation must be non-negative, got %s", in.AnnualInflation)
	}
	if in.AnnualReturn.LessThanOrEqual(decimal.NewFromInt(-1)) {
		return domain.InvalidArgumentError("annual return must be greater than -100%%, got %s", in.AnnualReturn)
	}
	for _, c := range in.Contributions {
		if c.Amount.IsNegative() {
			return domain.InvalidArgumentError("contribution amount must be non-negative, got %s", c.Amount)
		}
	}
	return nil
}

// project runs the shared step loop. Contributions land before the step's
// growth compounds, and growth is skipped on the first step; shifting either
// changes final values measurably over long horizons.
func project(in Input, dates []time.Time, stepReturn, stepInflation decimal.Decimal, stepKey func(time.Time) string, contribByStep map[string]decimal.Decimal) *Result {
	one := decimal.NewFromInt(1)
	growthFactor := one.Add(stepReturn)
	inflationStep := one.Add(stepInflation)

	value := in.InitialBalance
	contributed := in.InitialBalance
	inflationFactor := one

	result := &Result{Points: make([]Point, 0, len(dates))}
	for i, date := range dates {
		if c, ok := contribByStep[stepKey(date)]; ok {
			value = value.Add(c)
			contributed = contributed.Add(c)
		}
		if i > 0 {
			value = value.Mul(growthFactor)
			inflationFactor = inflationFactor.Mul(inflationStep)
		}

		real := value.Div(inflationFactor)
		result.Points = append(result.Points, Point{
			Date:             date,
			NominalValue:     value,
			RealValue:        real,
			TotalContributed: contributed,
			NominalGrowth:    value.Sub(contributed),
			RealGrowth:       real.Sub(contributed),
		})
	}

	last := result.Points[len(result.Points)-1]
	result.FinalNominalValue = last.NominalValue
	result.FinalRealValue = last.RealValue
	result.TotalContributed = last.TotalContributed
	result.NominalGrowth = last.NominalGrowth
	result.RealGrowth = last.RealGrowth
	return result
}

// stepRate converts an annual rate to its compound per-step equivalent:
// (1+annual)^(1/stepsPerYear) - 1.
func stepRate(annual decimal.Decimal, stepsPerYear int) decimal.Decimal {
	if annual.IsZero() {
		return decimal.Zero
	}
	return decimal.NewFromFloat(math.Pow(1+annual.InexactFloat64(), 1.0/float64(stepsPerYear)) - 1)
}
