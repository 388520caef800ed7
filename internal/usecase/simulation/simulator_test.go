package simulation

import (
	"math"
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

func account(name, balance, rate string) domain.DebtAccount {
	return domain.DebtAccount{
		Name:           name,
		CurrentBalance: decimal.RequireFromString(balance),
		AnnualRate:     decimal.RequireFromString(rate),
	}
}

func TestRun_SingleDayScenario(t *testing.T) {
	// start == end with no debts or events: exactly one snapshot, cash intact.
	result, err := Run(Input{
		StartDate:   day(2024, 1, 1),
		EndDate:     day(2024, 1, 1),
		InitialCash: decimal.NewFromInt(1000),
		Debts:       []domain.DebtAccount{},
		Events:      []domain.SimulationEvent{},
	})
	require.NoError(t, err)

	require.Len(t, result.Snapshots, 1)
	assert.True(t, result.FinalCashBalance.Equal(decimal.NewFromInt(1000)))
	assert.True(t, result.TotalInterestPaid.IsZero())
	assert.Equal(t, day(2024, 1, 1), result.Snapshots[0].Date)
}

func TestRun_ZeroRateDebtUnmovedByTime(t *testing.T) {
	result, err := Run(Input{
		StartDate:   day(2024, 1, 1),
		EndDate:     day(2024, 3, 31),
		InitialCash: decimal.NewFromInt(500),
		Debts:       []domain.DebtAccount{account("Loan", "2500", "0")},
		Events:      []domain.SimulationEvent{},
	})
	require.NoError(t, err)

	assert.True(t, result.TotalInterestPaid.IsZero())
	assert.True(t, result.FinalDebtBalances["Loan"].Equal(decimal.NewFromInt(2500)))
	for _, snap := range result.Snapshots {
		assert.True(t, snap.InterestAccrued.IsZero())
	}
}

func TestRun_DailyCompoundInterest(t *testing.T) {
	// 10 days on a 20% APR balance: balance grows by (1.20)^(9/365)
	// (interest is skipped on the first day).
	result, err := Run(Input{
		StartDate:   day(2024, 1, 1),
		EndDate:     day(2024, 1, 10),
		InitialCash: decimal.Zero,
		Debts:       []domain.DebtAccount{account("Card", "1000", "0.20")},
		Events:      []domain.SimulationEvent{},
	})
	require.NoError(t, err)

	require.Len(t, result.Snapshots, 10)
	want := 1000 * math.Pow(1.20, 9.0/365.0)
	assert.InDelta(t, want, result.FinalDebtBalances["Card"].InexactFloat64(), 0.0001)
	assert.InDelta(t, want-1000, result.TotalInterestPaid.InexactFloat64(), 0.0001)

	// No accrual on the first day.
	assert.True(t, result.Snapshots[0].InterestAccrued.IsZero())
	assert.True(t, result.Snapshots[1].InterestAccrued.IsPositive())
}

func TestRun_IncomeAndExpenseMoveCash(t *testing.T) {
	result, err := Run(Input{
		StartDate:   day(2024, 1, 1),
		EndDate:     day(2024, 1, 5),
		InitialCash: decimal.NewFromInt(100),
		Debts:       []domain.DebtAccount{},
		Events: []domain.SimulationEvent{
			{Date: day(2024, 1, 2), Type: domain.SimulationEventTypeIncome, Description: "Paycheck", Amount: decimal.NewFromInt(2000)},
			{Date: day(2024, 1, 3), Type: domain.SimulationEventTypeExpense, Description: "Rent", Amount: decimal.NewFromInt(1200)},
		},
	})
	require.NoError(t, err)

	assert.True(t, result.Snapshots[0].CashBalance.Equal(decimal.NewFromInt(100)))
	assert.True(t, result.Snapshots[1].CashBalance.Equal(decimal.NewFromInt(2100)))
	assert.True(t, result.Snapshots[2].CashBalance.Equal(decimal.NewFromInt(900)))
	assert.True(t, result.FinalCashBalance.Equal(decimal.NewFromInt(900)))
	assert.Equal(t, "Paycheck", result.Snapshots[1].EventDescription)
	assert.Equal(t, "Rent", result.Snapshots[2].EventDescription)
}

func TestRun_DebtPaymentIsCappedAtBalance(t *testing.T) {
	result, err := Run(Input{
		StartDate:   day(2024, 1, 1),
		EndDate:     day(2024, 1, 2),
		InitialCash: decimal.NewFromInt(1000),
		Debts:       []domain.DebtAccount{account("Loan", "300", "0")},
		Events: []domain.SimulationEvent{
			{Date: day(2024, 1, 1), Type: domain.SimulationEventTypeDebtPayment, Description: "Payoff", Amount: decimal.NewFromInt(500), RelatedDebtName: "Loan"},
		},
	})
	require.NoError(t, err)

	// Only the outstanding 300 leaves cash, not the full 500.
	assert.True(t, result.Snapshots[0].CashBalance.Equal(decimal.NewFromInt(700)))
	assert.True(t, result.FinalDebtBalances["Loan"].IsZero())
	require.NotNil(t, result.DebtFreeDate)
	assert.Equal(t, day(2024, 1, 1), *result.DebtFreeDate)
}

func TestRun_DebtChargeAddsDebtWithoutCashEffect(t *testing.T) {
	result, err := Run(Input{
		StartDate:   day(2024, 1, 1),
		EndDate:     day(2024, 1, 2),
		InitialCash: decimal.NewFromInt(100),
		Debts:       []domain.DebtAccount{account("Card", "50", "0")},
		Events: []domain.SimulationEvent{
			{Date: day(2024, 1, 2), Type: domain.SimulationEventTypeDebtCharge, Description: "Groceries", Amount: decimal.NewFromInt(40), RelatedDebtName: "Card"},
		},
	})
	require.NoError(t, err)

	assert.True(t, result.FinalCashBalance.Equal(decimal.NewFromInt(100)))
	assert.True(t, result.FinalDebtBalances["Card"].Equal(decimal.NewFromInt(90)))
}

func TestRun_ManualInterestAccrualCountsAsInterest(t *testing.T) {
	result, err := Run(Input{
		StartDate:   day(2024, 1, 1),
		EndDate:     day(2024, 1, 3),
		InitialCash: decimal.Zero,
		Debts:       []domain.DebtAccount{account("Loan", "1000", "0")},
		Events: []domain.SimulationEvent{
			{Date: day(2024, 1, 2), Type: domain.SimulationEventTypeInterestAccrual, Description: "Posted interest", Amount: decimal.NewFromInt(12), RelatedDebtName: "Loan"},
		},
	})
	require.NoError(t, err)

	assert.True(t, result.FinalDebtBalances["Loan"].Equal(decimal.NewFromInt(1012)))
	assert.True(t, result.TotalInterestPaid.Equal(decimal.NewFromInt(12)))
	assert.True(t, result.Snapshots[1].InterestAccrued.Equal(decimal.NewFromInt(12)))
}

func TestRun_UnknownDebtEventIsSkipped(t *testing.T) {
	result, err := Run(Input{
		StartDate:   day(2024, 1, 1),
		EndDate:     day(2024, 1, 2),
		InitialCash: decimal.NewFromInt(500),
		Debts:       []domain.DebtAccount{account("Known", "100", "0")},
		Events: []domain.SimulationEvent{
			{Date: day(2024, 1, 1), Type: domain.SimulationEventTypeDebtPayment, Description: "Typo", Amount: decimal.NewFromInt(50), RelatedDebtName: "Unknwon"},
			{Date: day(2024, 1, 1), Type: domain.SimulationEventTypeIncome, Description: "Refund", Amount: decimal.NewFromInt(25)},
		},
	})
	require.NoError(t, err)

	// The bad event is ignored; the same-day income still applies.
	assert.True(t, result.Snapshots[0].CashBalance.Equal(decimal.NewFromInt(525)))
	assert.True(t, result.FinalDebtBalances["Known"].Equal(decimal.NewFromInt(100)))
}

func TestRun_DebtFreeDateIsLatched(t *testing.T) {
	result, err := Run(Input{
		StartDate:   day(2024, 1, 1),
		EndDate:     day(2024, 1, 10),
		InitialCash: decimal.NewFromInt(1000),
		Debts:       []domain.DebtAccount{account("Card", "200", "0")},
		Events: []domain.SimulationEvent{
			{Date: day(2024, 1, 3), Type: domain.SimulationEventTypeDebtPayment, Description: "Payoff", Amount: decimal.NewFromInt(200), RelatedDebtName: "Card"},
			{Date: day(2024, 1, 7), Type: domain.SimulationEventTypeDebtCharge, Description: "New charge", Amount: decimal.NewFromInt(300), RelatedDebtName: "Card"},
		},
	})
	require.NoError(t, err)

	// Debt comes back on Jan 7, but the debt-free date stays at Jan 3.
	require.NotNil(t, result.DebtFreeDate)
	assert.Equal(t, day(2024, 1, 3), *result.DebtFreeDate)
	assert.True(t, result.FinalDebtBalances["Card"].Equal(decimal.NewFromInt(300)))
}

func TestRun_NoDebtFreeDateWhileDebtRemains(t *testing.T) {
	result, err := Run(Input{
		StartDate:   day(2024, 1, 1),
		EndDate:     day(2024, 1, 5),
		InitialCash: decimal.Zero,
		Debts:       []domain.DebtAccount{account("Loan", "100", "0")},
		Events:      []domain.SimulationEvent{},
	})
	require.NoError(t, err)
	assert.Nil(t, result.DebtFreeDate)
}

func TestRun_EventsApplyInGivenOrderWithinADay(t *testing.T) {
	// Payment before charge: the payment sees the pre-charge balance.
	result, err := Run(Input{
		StartDate:   day(2024, 1, 1),
		EndDate:     day(2024, 1, 1),
		InitialCash: decimal.NewFromInt(1000),
		Debts:       []domain.DebtAccount{account("Card", "100", "0")},
		Events: []domain.SimulationEvent{
			{Date: day(2024, 1, 1), Type: domain.SimulationEventTypeDebtPayment, Description: "Pay", Amount: decimal.NewFromInt(150), RelatedDebtName: "Card"},
			{Date: day(2024, 1, 1), Type: domain.SimulationEventTypeDebtCharge, Description: "Charge", Amount: decimal.NewFromInt(80), RelatedDebtName: "Card"},
		},
	})
	require.NoError(t, err)

	// Payment capped at 100, then the 80 charge lands on a zero balance.
	assert.True(t, result.FinalCashBalance.Equal(decimal.NewFromInt(900)))
	assert.True(t, result.FinalDebtBalances["Card"].Equal(decimal.NewFromInt(80)))
	assert.Equal(t, "Pay; Charge", result.Snapshots[0].EventDescription)
}

func TestRun_PromoRateDrivesDailyAccrual(t *testing.T) {
	promo := decimal.RequireFromString("0.01")
	promoEnd := day(2025, 1, 1)
	debt := domain.DebtAccount{
		Name:           "PromoCard",
		CurrentBalance: decimal.NewFromInt(10000),
		AnnualRate:     decimal.RequireFromString("0.25"),
		PromoRate:      &promo,
		PromoEndDate:   &promoEnd,
	}

	result, err := Run(Input{
		StartDate:   day(2024, 1, 1),
		EndDate:     day(2024, 1, 31),
		InitialCash: decimal.Zero,
		Debts:       []domain.DebtAccount{debt},
		Events:      []domain.SimulationEvent{},
	})
	require.NoError(t, err)

	want := 10000 * math.Pow(1.01, 30.0/365.0)
	assert.InDelta(t, want, result.FinalDebtBalances["PromoCard"].InexactFloat64(), 0.001)
}

func TestRun_SnapshotsAscendAndCoverEveryDay(t *testing.T) {
	result, err := Run(Input{
		StartDate:   day(2024, 2, 27),
		EndDate:     day(2024, 3, 2),
		InitialCash: decimal.Zero,
		Debts:       []domain.DebtAccount{},
		Events:      []domain.SimulationEvent{},
	})
	require.NoError(t, err)

	// 2024 is a leap year: Feb 27 through Mar 2 is five days.
	require.Len(t, result.Snapshots, 5)
	for i := 1; i < len(result.Snapshots); i++ {
		assert.Equal(t, result.Snapshots[i-1].Date.AddDate(0, 0, 1), result.Snapshots[i].Date)
	}
}

func TestRun_InputErrors(t *testing.T) {
	valid := Input{
		StartDate:   day(2024, 1, 1),
		EndDate:     day(2024, 1, 2),
		InitialCash: decimal.Zero,
		Debts:       []domain.DebtAccount{},
		Events:      []domain.SimulationEvent{},
	}

	in := valid
	in.Debts = nil
	_, err := Run(in)
	assert.ErrorIs(t, err, domain.ErrNilInput)

	in = valid
	in.Events = nil
	_, err = Run(in)
	assert.ErrorIs(t, err, domain.ErrNilInput)

	in = valid
	in.EndDate = day(2023, 12, 31)
	_, err = Run(in)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	in = valid
	in.InitialCash = decimal.NewFromInt(-1)
	_, err = Run(in)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	in = valid
	in.Debts = []domain.DebtAccount{account("Dup", "10", "0"), account("Dup", "20", "0")}
	_, err = Run(in)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	in = valid
	in.Events = []domain.SimulationEvent{{Date: day(2024, 1, 1), Type: "WIRE_TRANSFER", Amount: decimal.NewFromInt(10)}}
	_, err = Run(in)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
