package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mfalcao/cashpilot-backend/internal/domain"
)

// spendingEventRepository implements domain.SpendingEventRepository
type spendingEventRepository struct {
	db *DB
}

// NewSpendingEventRepository creates a new spending event repository
func NewSpendingEventRepository(db *DB) domain.SpendingEventRepository {
	return &spendingEventRepository{db: db}
}

// ListBetween retrieves spending events with dates in [from, to], oldest first
func (r *spendingEventRepository) ListBetween(ctx context.Context, from, to time.Time) ([]domain.SpendingEvent, error) {
	query := `
		SELECT occurred_on, amount
		FROM spending_events
		WHERE occurred_on >= $1 AND occurred_on <= $2
		ORDER BY occurred_on ASC
	`

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list spending events: %w", err)
	}
	defer rows.Close()

	events := []domain.SpendingEvent{}
	for rows.Next() {
		var event domain.SpendingEvent
		var amountStr string

		if err := rows.Scan(&event.Date, &amountStr); err != nil {
			return nil, fmt.Errorf("failed to scan spending event: %w", err)
		}

		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse spending event amount: %w", err)
		}
		event.Amount = amount

		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate spending events: %w", err)
	}

	return events, nil
}
