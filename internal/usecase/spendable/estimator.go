package spendable

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mfalcao/cashpilot-backend/internal/domain"
)

// stressFactor scales the daily-spend estimate and the safety buffer in the
// conservative scenario.
var stressFactor = decimal.RequireFromString("1.5")

// Input describes one spendable-cash estimation. SafetyBuffer and
// EstimatedDailySpend are optional; nil means unset, which is distinct from an
// explicit zero. PlannedContributions may be nil when none are planned.
type Input struct {
	AvailableCash        decimal.Decimal
	AsOf                 time.Time
	Obligations          []domain.Obligation
	Incomes              []domain.IncomeEvent
	SafetyBuffer         *decimal.Decimal
	EstimatedDailySpend  *decimal.Decimal
	PlannedContributions []domain.InvestmentContribution
}

// Breakdown itemizes what was subtracted from available cash.
type Breakdown struct {
	ObligationsDue       decimal.Decimal
	Obligations          []domain.Obligation
	PlannedContributions decimal.Decimal
	SafetyBuffer         decimal.Decimal
	DaysUntilPaycheck    int
}

// Scenario is the stress-tested variant of the estimate: the daily-spend
// estimate and the safety buffer are both scaled by 1.5x.
type Scenario struct {
	EstimatedDailySpend        decimal.Decimal
	SafetyBuffer               decimal.Decimal
	SpendableNow               decimal.Decimal
	ExpectedCashAtNextPaycheck decimal.Decimal
}

// Estimate is the near-term safe-to-spend figure. SpendableNow is not clamped
// and goes negative when obligations already exceed available cash.
type Estimate struct {
	SpendableNow               decimal.Decimal
	ExpectedCashAtNextPaycheck decimal.Decimal
	NextPaycheckDate           *time.Time
	NextPaycheckAmount         decimal.Decimal
	Breakdown                  Breakdown
	Conservative               *Scenario
}

// Calculate combines available cash, due obligations and the income timeline
// into a near-term spendable figure.
//
// Logic:
//  1. The next paycheck is the earliest income event strictly after the
//     calculation date; without one, every future obligation counts
//  2. Obligations and planned contributions inside (asOf, nextPaycheck] are
//     subtracted from cash
//  3. The safety buffer is the manual buffer when supplied, otherwise
//     estimatedDailySpend x daysUntilPaycheck when both are available
//  4. A conservative scenario recomputes the figures with the daily-spend
//     estimate and the buffer stressed by 1.5x, and exists only when a
//     daily-spend estimate is present and the paycheck is still ahead
func Calculate(in Input) (*Estimate, error) {
	if in.Obligations == nil {
		return nil, domain.NilInputError("obligations")
	}
	if in.Incomes == nil {
		return nil, domain.NilInputError("income events")
	}
	if in.AvailableCash.IsNegative() {
		return nil, domain.InvalidArgumentError("available cash must be non-negative, got %s", in.AvailableCash)
	}
	if in.SafetyBuffer != nil && in.SafetyBuffer.IsNegative() {
		return nil, domain.InvalidArgumentError("safety buffer must be non-negative, got %s", in.SafetyBuffer)
	}
	if in.EstimatedDailySpend != nil && in.EstimatedDailySpend.IsNegative() {
		return nil, domain.InvalidArgumentError("estimated daily spend must be non-negative, got %s", in.EstimatedDailySpend)
	}
	for _, o := range in.Obligations {
		if o.Amount.IsNegative() {
			return nil, domain.InvalidArgumentError("obligation %q amount must be non-negative, got %s", o.Description, o.Amount)
		}
	}
	for _, inc := range in.Incomes {
		if inc.Amount.IsNegative() {
			return nil, domain.InvalidArgumentError("income %q amount must be non-negative, got %s", inc.Description, inc.Amount)
		}
	}
	for _, c := range in.PlannedContributions {
		if c.Amount.IsNegative() {
			return nil, domain.InvalidArgumentError("planned contribution amount must be non-negative, got %s", c.Amount)
		}
	}

	asOfDay := domain.DayOf(in.AsOf)

	var nextPaycheckDate *time.Time
	nextPaycheckAmount := decimal.Zero
	for _, inc := range in.Incomes {
		incomeDay := domain.DayOf(inc.Date)
		if !incomeDay.After(asOfDay) {
			continue
		}
		if nextPaycheckDate == nil || incomeDay.Before(*nextPaycheckDate) {
			d := incomeDay
			nextPaycheckDate = &d
			nextPaycheckAmount = inc.Amount
		}
	}

	// The relevant window is (asOf, nextPaycheck]; with no paycheck ahead it
	// is unbounded and every future obligation counts.
	inWindow := func(date time.Time) bool {
		d := domain.DayOf(date)
		if !d.After(asOfDay) {
			return false
		}
		return nextPaycheckDate == nil || !d.After(*nextPaycheckDate)
	}

	obligationsDue := decimal.Zero
	dueObligations := make([]domain.Obligation, 0)
	for _, o := range in.Obligations {
		if inWindow(o.DueDate) {
			obligationsDue = obligationsDue.Add(o.Amount)
			dueObligations = append(dueObligations, o)
		}
	}

	contributionsPlanned := decimal.Zero
	for _, c := range in.PlannedContributions {
		if inWindow(c.Date) {
			contributionsPlanned = contributionsPlanned.Add(c.Amount)
		}
	}

	daysUntilPaycheck := 0
	if nextPaycheckDate != nil {
		daysUntilPaycheck = domain.DaysBetween(asOfDay, *nextPaycheckDate)
	}

	safetyBuffer := decimal.Zero
	switch {
	case in.SafetyBuffer != nil:
		safetyBuffer = *in.SafetyBuffer
	case in.EstimatedDailySpend != nil && daysUntilPaycheck > 0:
		safetyBuffer = in.EstimatedDailySpend.Mul(decimal.NewFromInt(int64(daysUntilPaycheck)))
	}

	spendableNow := in.AvailableCash.
		Sub(obligationsDue).
		Sub(safetyBuffer).
		Sub(contributionsPlanned)

	expectedSpend := decimal.Zero
	if in.EstimatedDailySpend != nil && daysUntilPaycheck > 0 {
		expectedSpend = in.EstimatedDailySpend.Mul(decimal.NewFromInt(int64(daysUntilPaycheck)))
	}
	expectedCash := in.AvailableCash.
		Sub(obligationsDue).
		Sub(contributionsPlanned).
		Sub(expectedSpend).
		Add(nextPaycheckAmount)

	estimate := &Estimate{
		SpendableNow:               spendableNow,
		ExpectedCashAtNextPaycheck: expectedCash,
		NextPaycheckDate:           nextPaycheckDate,
		NextPaycheckAmount:         nextPaycheckAmount,
		Breakdown: Breakdown{
			ObligationsDue:       obligationsDue,
			Obligations:          dueObligations,
			PlannedContributions: contributionsPlanned,
			SafetyBuffer:         safetyBuffer,
			DaysUntilPaycheck:    daysUntilPaycheck,
		},
	}

	if in.EstimatedDailySpend != nil && daysUntilPaycheck > 0 {
		stressedDaily := in.EstimatedDailySpend.Mul(stressFactor)
		stressedBuffer := safetyBuffer.Mul(stressFactor)
		stressedSpend := stressedDaily.Mul(decimal.NewFromInt(int64(daysUntilPaycheck)))
		estimate.Conservative = &Scenario{
			EstimatedDailySpend: stressedDaily,
			SafetyBuffer:        stressedBuffer,
			SpendableNow: in.AvailableCash.
				Sub(obligationsDue).
				Sub(stressedBuffer).
				Sub(contributionsPlanned),
			ExpectedCashAtNextPaycheck: in.AvailableCash.
				Sub(obligationsDue).
				Sub(contributionsPlanned).
				Sub(stressedSpend).
				Add(nextPaycheckAmount),
		}
	}

	return estimate, nil
}
