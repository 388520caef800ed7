package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mfalcao/cashpilot-backend/internal/domain"
)

// incomeEventRepository implements domain.IncomeEventRepository
type incomeEventRepository struct {
	db *DB
}

// NewIncomeEventRepository creates a new income event repository
func NewIncomeEventRepository(db *DB) domain.IncomeEventRepository {
	return &incomeEventRepository{db: db}
}

// ListFrom retrieves income events dated on or after from, oldest first
func (r *incomeEventRepository) ListFrom(ctx context.Context, from time.Time) ([]domain.IncomeEvent, error) {
	query := `
		SELECT expected_on, amount, description
		FROM income_events
		WHERE expected_on >= $1
		ORDER BY expected_on ASC
	`

	rows, err := r.db.QueryContext(ctx, query, from)
	if err != nil {
		return nil, fmt.Errorf("failed to list income events: %w", err)
	}
	defer rows.Close()

	events := []domain.IncomeEvent{}
	for rows.Next() {
		var event domain.IncomeEvent
		var amountStr string

		if err := rows.Scan(&event.Date, &amountStr, &event.Description); err != nil {
			return nil, fmt.Errorf("failed to scan income event: %w", err)
		}

		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse income event amount: %w", err)
		}
		event.Amount = amount

		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate income events: %w", err)
	}

	return events, nil
}
