package debtplan

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfalcao/cashpilot-backend/internal/domain"
)

var asOf = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func debt(name string, balance, rate, minimum string) domain.Debt {
	return domain.Debt{
		Name:           name,
		Balance:        decimal.RequireFromString(balance),
		AnnualRate:     decimal.RequireFromString(rate),
		MinimumPayment: decimal.RequireFromString(minimum),
	}
}

func paymentFor(t *testing.T, plan *Plan, name string) DebtPayment {
	t.Helper()
	for _, p := range plan.Payments {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("no payment for debt %q", name)
	return DebtPayment{}
}

func TestAllocate_AvalancheScenario(t *testing.T) {
	// A: $1000 at 10.99% ($25 min), B: $2000 at 24.99% ($50 min), extra $200.
	// Avalanche targets B (highest rate); A gets no extra.
	debts := []domain.Debt{
		debt("A", "1000", "0.1099", "25"),
		debt("B", "2000", "0.2499", "50"),
	}

	plan, err := Allocate(debts, decimal.NewFromInt(200), domain.StrategyAvalanche, asOf)
	require.NoError(t, err)

	a := paymentFor(t, plan, "A")
	b := paymentFor(t, plan, "B")
	assert.True(t, b.ExtraPayment.Equal(decimal.NewFromInt(200)))
	assert.True(t, b.TotalPayment.Equal(decimal.NewFromInt(250)))
	assert.True(t, b.RemainingBalance.Equal(decimal.NewFromInt(1750)))
	assert.True(t, a.ExtraPayment.IsZero())
	assert.True(t, a.TotalPayment.Equal(decimal.NewFromInt(25)))
	assert.True(t, plan.TotalPayment.Equal(decimal.NewFromInt(275)))
	assert.Equal(t, domain.StrategyAvalanche, plan.Strategy)
}

func TestAllocate_SnowballTargetsSmallestBalance(t *testing.T) {
	debts := []domain.Debt{
		debt("Big", "5000", "0.29", "100"),
		debt("Small", "400", "0.05", "20"),
	}

	plan, err := Allocate(debts, decimal.NewFromInt(150), domain.StrategySnowball, asOf)
	require.NoError(t, err)

	assert.True(t, paymentFor(t, plan, "Small").ExtraPayment.Equal(decimal.NewFromInt(150)))
	assert.True(t, paymentFor(t, plan, "Big").ExtraPayment.IsZero())
}

func TestAllocate_HybridBehavesLikeAvalanche(t *testing.T) {
	debts := []domain.Debt{
		debt("LowRate", "500", "0.06", "15"),
		debt("HighRate", "900", "0.22", "35"),
	}
	pool := decimal.NewFromInt(100)

	hybrid, err := Allocate(debts, pool, domain.StrategyHybrid, asOf)
	require.NoError(t, err)
	avalanche, err := Allocate(debts, pool, domain.StrategyAvalanche, asOf)
	require.NoError(t, err)

	for _, name := range []string{"LowRate", "HighRate"} {
		h := paymentFor(t, hybrid, name)
		a := paymentFor(t, avalanche, name)
		assert.True(t, h.ExtraPayment.Equal(a.ExtraPayment))
		assert.True(t, h.TotalPayment.Equal(a.TotalPayment))
	}
	assert.Equal(t, domain.StrategyHybrid, hybrid.Strategy)
}

func TestAllocate_OverflowIsNotRedistributed(t *testing.T) {
	// The prioritized debt can only absorb 80 beyond its minimum; the rest of
	// the pool is withheld rather than spilling to the next debt.
	debts := []domain.Debt{
		debt("Tiny", "100", "0.30", "20"),
		debt("Other", "3000", "0.10", "60"),
	}

	plan, err := Allocate(debts, decimal.NewFromInt(500), domain.StrategyAvalanche, asOf)
	require.NoError(t, err)

	tiny := paymentFor(t, plan, "Tiny")
	other := paymentFor(t, plan, "Other")
	assert.True(t, tiny.ExtraPayment.Equal(decimal.NewFromInt(80)))
	assert.True(t, tiny.TotalPayment.Equal(decimal.NewFromInt(100)))
	assert.True(t, tiny.RemainingBalance.IsZero())
	assert.True(t, other.ExtraPayment.IsZero(), "overflow must not spill to the next debt")
}

func TestAllocate_ExtraPoolFullySpentOtherwise(t *testing.T) {
	debts := []domain.Debt{
		debt("A", "1000", "0.12", "25"),
		debt("B", "2000", "0.20", "50"),
	}
	pool := decimal.NewFromInt(300)

	for _, strategy := range []domain.AllocationStrategy{
		domain.StrategyAvalanche, domain.StrategySnowball, domain.StrategyHybrid,
	} {
		plan, err := Allocate(debts, pool, strategy, asOf)
		require.NoError(t, err)

		extraTotal := decimal.Zero
		for _, p := range plan.Payments {
			extraTotal = extraTotal.Add(p.ExtraPayment)
		}
		assert.True(t, extraTotal.Equal(pool), "strategy %s spent %s of %s", strategy, extraTotal, pool)
	}
}

func TestAllocate_TotalPaymentNeverExceedsBalance(t *testing.T) {
	// Minimum above the remaining balance must be capped.
	debts := []domain.Debt{
		debt("NearlyDone", "15", "0.18", "25"),
		debt("Main", "1200", "0.24", "40"),
	}

	plan, err := Allocate(debts, decimal.NewFromInt(100), domain.StrategyAvalanche, asOf)
	require.NoError(t, err)

	for _, p := range plan.Payments {
		assert.False(t, p.RemainingBalance.IsNegative(),
			"debt %s overpaid: remaining %s", p.Name, p.RemainingBalance)
	}
	nearlyDone := paymentFor(t, plan, "NearlyDone")
	assert.True(t, nearlyDone.TotalPayment.Equal(decimal.NewFromInt(15)))
}

func TestAllocate_ZeroBalanceDebtsAreDropped(t *testing.T) {
	debts := []domain.Debt{
		debt("PaidOff", "0", "0.20", "25"),
		debt("Open", "800", "0.10", "30"),
	}

	plan, err := Allocate(debts, decimal.NewFromInt(50), domain.StrategySnowball, asOf)
	require.NoError(t, err)

	require.Len(t, plan.Payments, 1)
	assert.Equal(t, "Open", plan.Payments[0].Name)
}

func TestAllocate_RateTiesKeepInputOrder(t *testing.T) {
	debts := []domain.Debt{
		debt("First", "1000", "0.15", "20"),
		debt("Second", "2000", "0.15", "20"),
	}

	plan, err := Allocate(debts, decimal.NewFromInt(100), domain.StrategyAvalanche, asOf)
	require.NoError(t, err)

	assert.True(t, paymentFor(t, plan, "First").ExtraPayment.Equal(decimal.NewFromInt(100)))
	assert.True(t, paymentFor(t, plan, "Second").ExtraPayment.IsZero())
}

func TestAllocate_ActivePromoRateDrivesPriority(t *testing.T) {
	promo := decimal.RequireFromString("0.0199")
	promoEnd := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	promoCard := debt("PromoCard", "1500", "0.2699", "30")
	promoCard.PromoRate = &promo
	promoCard.PromoEndDate = &promoEnd

	debts := []domain.Debt{
		promoCard,
		debt("Plain", "1500", "0.18", "30"),
	}

	// While the promo is active the plain card carries the higher rate.
	plan, err := Allocate(debts, decimal.NewFromInt(60), domain.StrategyAvalanche, asOf)
	require.NoError(t, err)
	assert.True(t, paymentFor(t, plan, "Plain").ExtraPayment.Equal(decimal.NewFromInt(60)))

	// After the promo expires the full APR takes over.
	later := time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)
	plan, err = Allocate(debts, decimal.NewFromInt(60), domain.StrategyAvalanche, later)
	require.NoError(t, err)
	assert.True(t, paymentFor(t, plan, "PromoCard").ExtraPayment.Equal(decimal.NewFromInt(60)))
}

func TestAllocate_EmptyDebtsYieldEmptyPlan(t *testing.T) {
	plan, err := Allocate([]domain.Debt{}, decimal.NewFromInt(100), domain.StrategyAvalanche, asOf)
	require.NoError(t, err)
	assert.Empty(t, plan.Payments)
	assert.True(t, plan.TotalPayment.IsZero())
}

func TestAllocate_InputErrors(t *testing.T) {
	_, err := Allocate(nil, decimal.Zero, domain.StrategyAvalanche, asOf)
	assert.ErrorIs(t, err, domain.ErrNilInput)

	_, err = Allocate([]domain.Debt{}, decimal.NewFromInt(-1), domain.StrategyAvalanche, asOf)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = Allocate([]domain.Debt{}, decimal.Zero, domain.AllocationStrategy("MAGIC"), asOf)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = Allocate([]domain.Debt{debt("Bad", "-10", "0.10", "5")}, decimal.Zero, domain.StrategyAvalanche, asOf)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
