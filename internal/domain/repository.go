package domain

import (
	"context"
	"time"
)

// The engine procedures are pure and never touch storage. These interfaces are
// consumed only by the planner service, which loads stored state, converts it
// into the value types above and hands it to the engine.

// SpendingEventRepository defines read access to realized spending events
type SpendingEventRepository interface {
	// ListBetween retrieves spending events with from <= date <= to,
	// ordered by date ascending
	ListBetween(ctx context.Context, from, to time.Time) ([]SpendingEvent, error)
}

// DebtRepository defines read access to tracked debts
type DebtRepository interface {
	// ListOpen retrieves all debts with a positive balance
	ListOpen(ctx context.Context) ([]Debt, error)

	// ListAccounts retrieves all debts in their simulation-time shape
	ListAccounts(ctx context.Context) ([]DebtAccount, error)
}

// IncomeEventRepository defines read access to scheduled income events
type IncomeEventRepository interface {
	// ListFrom retrieves income events with date >= from, ordered by date ascending
	ListFrom(ctx context.Context, from time.Time) ([]IncomeEvent, error)
}

// ObligationRepository defines read access to scheduled obligations
type ObligationRepository interface {
	// ListFrom retrieves obligations with due date >= from, ordered by due date ascending
	ListFrom(ctx context.Context, from time.Time) ([]Obligation, error)
}

// ContributionRepository defines read access to planned investment contributions
type ContributionRepository interface {
	// ListBetween retrieves contributions with from <= date <= to,
	// ordered by date ascending
	ListBetween(ctx context.Context, from, to time.Time) ([]InvestmentContribution, error)
}

// SimulationEventRepository defines read access to scheduled simulation events
type SimulationEventRepository interface {
	// ListBetween retrieves simulation events with from <= date <= to,
	// ordered by date ascending
	ListBetween(ctx context.Context, from, to time.Time) ([]SimulationEvent, error)
}
