package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SpendingEvent represents a single realized outflow on a calendar day.
// Multiple events may share a date; amounts are always non-negative.
type SpendingEvent struct {
	Date   time.Time
	Amount decimal.Decimal
}

// Obligation represents a scheduled future outflow that has not been realized yet
// (rent due next week, an insurance premium, a scheduled transfer).
type Obligation struct {
	DueDate     time.Time
	Amount      decimal.Decimal
	Description string
}

// IncomeEvent represents a scheduled future inflow (paycheck, invoice payment).
type IncomeEvent struct {
	Date        time.Time
	Amount      decimal.Decimal
	Description string
}

// InvestmentContribution represents a single deposit into an investment balance.
type InvestmentContribution struct {
	Date   time.Time
	Amount decimal.Decimal
}
