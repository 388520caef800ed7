package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Debt represents a liability snapshot used for payment planning.
// Name is the unique key within a single calculation.
type Debt struct {
	Name           string
	Balance        decimal.Decimal
	AnnualRate     decimal.Decimal // e.g. 0.2499 for 24.99% APR
	MinimumPayment decimal.Decimal
	PromoRate      *decimal.Decimal // nil when no promotional rate applies
	PromoEndDate   *time.Time       // nil when no promotional period is set
}

// EffectiveRate returns the promotional rate while the promotional period is
// still active as of the given date, and the standing annual rate otherwise.
func (d Debt) EffectiveRate(asOf time.Time) decimal.Decimal {
	if d.PromoRate != nil && d.PromoEndDate != nil && DayOf(*d.PromoEndDate).After(DayOf(asOf)) {
		return *d.PromoRate
	}
	return d.AnnualRate
}

// DebtAccount is the simulation-time shape of a debt: same fields as Debt, but
// CurrentBalance evolves by copy as the simulator walks forward. Name is the
// join key referenced by SimulationEvent.RelatedDebtName and must be unique
// across the simulation's debt set.
type DebtAccount struct {
	Name           string
	CurrentBalance decimal.Decimal
	AnnualRate     decimal.Decimal
	MinimumPayment decimal.Decimal
	PromoRate      *decimal.Decimal
	PromoEndDate   *time.Time
}

// EffectiveRate mirrors Debt.EffectiveRate for the simulation-time shape.
func (d DebtAccount) EffectiveRate(asOf time.Time) decimal.Decimal {
	if d.PromoRate != nil && d.PromoEndDate != nil && DayOf(*d.PromoEndDate).After(DayOf(asOf)) {
		return *d.PromoRate
	}
	return d.AnnualRate
}
