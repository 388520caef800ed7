package simulation

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mfalcao/cashpilot-backend/internal/domain"
)

// debtFreeThreshold absorbs rounding: a total debt at or below this is
// treated as fully paid off.
var debtFreeThreshold = decimal.RequireFromString("0.01")

// Input describes one forward cash/debt simulation run.
type Input struct {
	StartDate   time.Time
	EndDate     time.Time
	InitialCash decimal.Decimal
	Debts       []domain.DebtAccount
	Events      []domain.SimulationEvent
}

// DaySnapshot records the state at the end of one simulated calendar day,
// after that day's interest accrual and events have been applied.
type DaySnapshot struct {
	Date             time.Time
	CashBalance      decimal.Decimal
	DebtBalances     map[string]decimal.Decimal
	TotalDebt        decimal.Decimal
	InterestAccrued  decimal.Decimal
	EventDescription string
}

// Result is the full output of a simulation run: one snapshot per calendar
// day in ascending date order, plus the final balances.
type Result struct {
	Snapshots         []DaySnapshot
	FinalCashBalance  decimal.Decimal
	FinalDebtBalances map[string]decimal.Decimal
	TotalInterestPaid decimal.Decimal
	DebtFreeDate      *time.Time
}

// Run walks a calendar day at a time from start to end date inclusive,
// compounding debt interest daily and applying discrete events.
//
// Logic per day:
//  1. Accrue one day of compound interest on every debt with a positive
//     balance, skipped on the first day (no time has elapsed yet)
//  2. Apply every event dated on this day, in their given relative order
//  3. Record the snapshot
//
// The daily rate is (1+annualRate)^(1/365) - 1, computed once per debt from
// its effective rate at the start date. An event naming an unknown debt is
// silently skipped; the rest of the day still applies. The first day on which
// total debt falls to or below 0.01 sets DebtFreeDate, which is never reset
// even if later charges re-add debt.
func Run(in Input) (*Result, error) {
	if in.Debts == nil {
		return nil, domain.NilInputError("debt accounts")
	}
	if in.Events == nil {
		return nil, domain.NilInputError("simulation events")
	}
	startDay := domain.DayOf(in.StartDate)
	endDay := domain.DayOf(in.EndDate)
	if endDay.Before(startDay) {
		return nil, domain.InvalidArgumentError("end date %s is before start date %s",
			endDay.Format(time.DateOnly), startDay.Format(time.DateOnly))
	}
	if in.InitialCash.IsNegative() {
		return nil, domain.InvalidArgumentError("initial cash must be non-negative, got %s", in.InitialCash)
	}

	seen := make(map[string]struct{}, len(in.Debts))
	for _, d := range in.Debts {
		if _, dup := seen[d.Name]; dup {
			return nil, domain.InvalidArgumentError("duplicate debt name %q", d.Name)
		}
		seen[d.Name] = struct{}{}
		if d.CurrentBalance.IsNegative() {
			return nil, domain.InvalidArgumentError("debt %q balance must be non-negative, got %s", d.Name, d.CurrentBalance)
		}
		if d.AnnualRate.IsNegative() {
			return nil, domain.InvalidArgumentError("debt %q annual rate must be non-negative, got %s", d.Name, d.AnnualRate)
		}
		if d.PromoRate != nil && d.PromoRate.IsNegative() {
			return nil, domain.InvalidArgumentError("debt %q promo rate must be non-negative, got %s", d.Name, d.PromoRate)
		}
	}
	for _, ev := range in.Events {
		if !ev.Type.Valid() {
			return nil, domain.InvalidArgumentError("unknown simulation event type %q", ev.Type)
		}
		if ev.Amount.IsNegative() {
			return nil, domain.InvalidArgumentError("event %q amount must be non-negative, got %s", ev.Description, ev.Amount)
		}
	}

	// Each debt's daily rate is fixed for the whole run, derived from the
	// effective (promo-aware) rate at the start date.
	dailyRates := make(map[string]decimal.Decimal, len(in.Debts))
	balances := make(map[string]decimal.Decimal, len(in.Debts))
	for _, d := range in.Debts {
		dailyRates[d.Name] = dailyRate(d.EffectiveRate(in.StartDate))
		balances[d.Name] = d.CurrentBalance
	}

	events := make([]domain.SimulationEvent, len(in.Events))
	copy(events, in.Events)
	sort.SliceStable(events, func(i, j int) bool {
		return domain.DayOf(events[i].Date).Before(domain.DayOf(events[j].Date))
	})

	result := &Result{
		Snapshots: make([]DaySnapshot, 0, domain.DaysBetween(startDay, endDay)+1),
	}
	cash := in.InitialCash
	totalInterest := decimal.Zero
	eventIdx := 0

	totalDays := domain.DaysBetween(startDay, endDay) + 1
	for dayIdx := 0; dayIdx < totalDays; dayIdx++ {
		date := startDay.AddDate(0, 0, dayIdx)
		dayInterest := decimal.Zero

		// Interest depends on the prior day's ending balance, so there is
		// nothing to accrue on the first day.
		if dayIdx > 0 {
			for _, d := range in.Debts {
				balance := balances[d.Name]
				if !balance.IsPositive() {
					continue
				}
				interest := balance.Mul(dailyRates[d.Name])
				balances[d.Name] = balance.Add(interest)
				dayInterest = dayInterest.Add(interest)
				totalInterest = totalInterest.Add(interest)
			}
		}

		// Skip events dated before the walk begins.
		for eventIdx < len(events) && domain.DayOf(events[eventIdx].Date).Before(date) {
			eventIdx++
		}

		var applied []string
		for eventIdx < len(events) && domain.SameDay(events[eventIdx].Date, date) {
			ev := events[eventIdx]
			eventIdx++

			if ev.Type.TouchesDebt() {
				if _, known := balances[ev.RelatedDebtName]; !known {
					continue
				}
			}

			switch ev.Type {
			case domain.SimulationEventTypeIncome:
				cash = cash.Add(ev.Amount)
			case domain.SimulationEventTypeExpense:
				cash = cash.Sub(ev.Amount)
			case domain.SimulationEventTypeDebtPayment:
				payment := decimal.Min(ev.Amount, balances[ev.RelatedDebtName])
				balances[ev.RelatedDebtName] = balances[ev.RelatedDebtName].Sub(payment)
				cash = cash.Sub(payment)
			case domain.SimulationEventTypeDebtCharge:
				balances[ev.RelatedDebtName] = balances[ev.RelatedDebtName].Add(ev.Amount)
			case domain.SimulationEventTypeInterestAccrual:
				// A manual interest posting, distinct from the automatic
				// daily accrual but counted in the same totals.
				balances[ev.RelatedDebtName] = balances[ev.RelatedDebtName].Add(ev.Amount)
				dayInterest = dayInterest.Add(ev.Amount)
				totalInterest = totalInterest.Add(ev.Amount)
			}
			if ev.Description != "" {
				applied = append(applied, ev.Description)
			}
		}

		snapshotBalances := make(map[string]decimal.Decimal, len(balances))
		totalDebt := decimal.Zero
		for name, balance := range balances {
			snapshotBalances[name] = balance
			totalDebt = totalDebt.Add(balance)
		}

		if result.DebtFreeDate == nil && totalDebt.LessThanOrEqual(debtFreeThreshold) {
			debtFree := date
			result.DebtFreeDate = &debtFree
		}

		result.Snapshots = append(result.Snapshots, DaySnapshot{
			Date:             date,
			CashBalance:      cash,
			DebtBalances:     snapshotBalances,
			TotalDebt:        totalDebt,
			InterestAccrued:  dayInterest,
			EventDescription: strings.Join(applied, "; "),
		})
	}

	last := result.Snapshots[len(result.Snapshots)-1]
	result.FinalCashBalance = last.CashBalance
	result.FinalDebtBalances = last.DebtBalances
	result.TotalInterestPaid = totalInterest
	return result, nil
}

// dailyRate converts an annual rate to its compound daily equivalent:
// (1+annual)^(1/365) - 1.
func dailyRate(annual decimal.Decimal) decimal.Decimal {
	if annual.IsZero() {
		return decimal.Zero
	}
	return decimal.NewFromFloat(math.Pow(1+annual.InexactFloat64(), 1.0/365.0) - 1)
}
