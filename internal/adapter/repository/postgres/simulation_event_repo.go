package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mfalcao/cashpilot-backend/internal/domain"
)

// simulationEventRepository implements domain.SimulationEventRepository
type simulationEventRepository struct {
	db *DB
}

// NewSimulationEventRepository creates a new simulation event repository
func NewSimulationEventRepository(db *DB) domain.SimulationEventRepository {
	return &simulationEventRepository{db: db}
}

// ListBetween retrieves scheduled simulation events dated in [from, to],
// oldest first
func (r *simulationEventRepository) ListBetween(ctx context.Context, from, to time.Time) ([]domain.SimulationEvent, error) {
	query := `
		SELECT scheduled_on, event_type, description, amount, related_debt_name
		FROM simulation_events
		WHERE scheduled_on >= $1 AND scheduled_on <= $2
		ORDER BY scheduled_on ASC
	`

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list simulation events: %w", err)
	}
	defer rows.Close()

	events := []domain.SimulationEvent{}
	for rows.Next() {
		var event domain.SimulationEvent
		var eventType string
		var amountStr string
		var relatedDebt sql.NullString

		if err := rows.Scan(&event.Date, &eventType, &event.Description, &amountStr, &relatedDebt); err != nil {
			return nil, fmt.Errorf("failed to scan simulation event: %w", err)
		}

		event.Type = domain.SimulationEventType(eventType)
		if relatedDebt.Valid {
			event.RelatedDebtName = relatedDebt.String
		}

		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse simulation event amount: %w", err)
		}
		event.Amount = amount

		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate simulation events: %w", err)
	}

	return events, nil
}
