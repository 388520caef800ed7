package debtplan

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mfalcao/cashpilot-backend/internal/domain"
)

// DebtPayment is the per-debt outcome of one allocation pass.
// TotalPayment never exceeds the debt's balance.
type DebtPayment struct {
	Name             string
	MinimumPayment   decimal.Decimal
	ExtraPayment     decimal.Decimal
	TotalPayment     decimal.Decimal
	RemainingBalance decimal.Decimal
}

// Plan is the result of allocating one month's payments across a set of debts.
type Plan struct {
	Strategy     domain.AllocationStrategy
	Payments     []DebtPayment
	TotalPayment decimal.Decimal
}

// Allocate assigns minimum plus extra payments across the given debts.
//
// Logic:
//  1. Drop debts with balance <= 0; they are absent from the result
//  2. Every remaining debt receives its minimum payment
//  3. The entire extra pool goes to exactly one debt: the highest-priority
//     debt that still has balance left after its minimum, capped at
//     balance - minimum so the debt is never overpaid
//
// Leftover pool beyond that cap is NOT redistributed to the next debt. This is
// a deliberate simplification: the plan is recomputed every cycle, so the
// remainder is re-allocated then.
//
// Priority: Avalanche orders by effective rate descending, Snowball by balance
// ascending; both sorts are stable so ties keep their input order. Hybrid is
// currently identical to Avalanche.
//
// asOf determines whether a promotional rate is still active.
func Allocate(debts []domain.Debt, extraPool decimal.Decimal, strategy domain.AllocationStrategy, asOf time.Time) (*Plan, error) {
	if debts == nil {
		return nil, domain.NilInputError("debts")
	}
	if !strategy.Valid() {
		return nil, domain.InvalidArgumentError("unknown allocation strategy %q", strategy)
	}
	if extraPool.IsNegative() {
		return nil, domain.InvalidArgumentError("extra payment pool must be non-negative, got %s", extraPool)
	}
	for _, d := range debts {
		if d.Balance.IsNegative() {
			return nil, domain.InvalidArgumentError("debt %q balance must be non-negative, got %s", d.Name, d.Balance)
		}
		if d.AnnualRate.IsNegative() {
			return nil, domain.InvalidArgumentError("debt %q annual rate must be non-negative, got %s", d.Name, d.AnnualRate)
		}
		if d.MinimumPayment.IsNegative() {
			return nil, domain.InvalidArgumentError("debt %q minimum payment must be non-negative, got %s", d.Name, d.MinimumPayment)
		}
		if d.PromoRate != nil && d.PromoRate.IsNegative() {
			return nil, domain.InvalidArgumentError("debt %q promo rate must be non-negative, got %s", d.Name, d.PromoRate)
		}
	}

	active := make([]domain.Debt, 0, len(debts))
	for _, d := range debts {
		if d.Balance.IsPositive() {
			active = append(active, d)
		}
	}

	// The extra pool goes to the first prioritized debt with room left after
	// its minimum, capped so the debt is not overpaid.
	extraByName := make(map[string]decimal.Decimal, len(active))
	for _, d := range prioritize(active, strategy, asOf) {
		room := d.Balance.Sub(d.MinimumPayment)
		if !room.IsPositive() {
			continue
		}
		extraByName[d.Name] = decimal.Min(extraPool, room)
		break
	}

	plan := &Plan{
		Strategy: strategy,
		Payments: make([]DebtPayment, 0, len(active)),
	}
	for _, d := range active {
		extra := extraByName[d.Name]
		total := decimal.Min(d.MinimumPayment.Add(extra), d.Balance)
		plan.Payments = append(plan.Payments, DebtPayment{
			Name:             d.Name,
			MinimumPayment:   d.MinimumPayment,
			ExtraPayment:     extra,
			TotalPayment:     total,
			RemainingBalance: d.Balance.Sub(total),
		})
		plan.TotalPayment = plan.TotalPayment.Add(total)
	}
	return plan, nil
}

// prioritize returns a stable-sorted copy of the debts in extra-payment
// priority order for the given strategy.
func prioritize(debts []domain.Debt, strategy domain.AllocationStrategy, asOf time.Time) []domain.Debt {
	ordered := make([]domain.Debt, len(debts))
	copy(ordered, debts)

	switch strategy {
	case domain.StrategySnowball:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Balance.LessThan(ordered[j].Balance)
		})
	default:
		// Avalanche, and Hybrid which is not differentiated from it yet.
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].EffectiveRate(asOf).GreaterThan(ordered[j].EffectiveRate(asOf))
		})
	}
	return ordered
}
