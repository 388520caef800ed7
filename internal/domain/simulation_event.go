package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SimulationEventType represents the type of a discrete simulation event
type SimulationEventType string

const (
	SimulationEventTypeIncome          SimulationEventType = "INCOME"
	SimulationEventTypeExpense         SimulationEventType = "EXPENSE"
	SimulationEventTypeDebtPayment     SimulationEventType = "DEBT_PAYMENT"
	SimulationEventTypeDebtCharge      SimulationEventType = "DEBT_CHARGE"
	SimulationEventTypeInterestAccrual SimulationEventType = "INTEREST_ACCRUAL"
)

// Valid reports whether the event type is one of the known variants.
func (t SimulationEventType) Valid() bool {
	switch t {
	case SimulationEventTypeIncome,
		SimulationEventTypeExpense,
		SimulationEventTypeDebtPayment,
		SimulationEventTypeDebtCharge,
		SimulationEventTypeInterestAccrual:
		return true
	}
	return false
}

// TouchesDebt reports whether this event type requires RelatedDebtName to
// reference a DebtAccount in the simulation's debt set.
func (t SimulationEventType) TouchesDebt() bool {
	switch t {
	case SimulationEventTypeDebtPayment,
		SimulationEventTypeDebtCharge,
		SimulationEventTypeInterestAccrual:
		return true
	}
	return false
}

// SimulationEvent represents a discrete dated money movement applied by the
// forward cash/debt simulator. RelatedDebtName is required for the debt-touching
// event types and ignored otherwise.
type SimulationEvent struct {
	Date            time.Time
	Type            SimulationEventType
	Description     string
	Amount          decimal.Decimal
	RelatedDebtName string
}
