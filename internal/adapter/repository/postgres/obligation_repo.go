package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mfalcao/cashpilot-backend/internal/domain"
)

// obligationRepository implements domain.ObligationRepository
type obligationRepository struct {
	db *DB
}

// NewObligationRepository creates a new obligation repository
func NewObligationRepository(db *DB) domain.ObligationRepository {
	return &obligationRepository{db: db}
}

// ListFrom retrieves obligations due on or after from, earliest due date first
func (r *obligationRepository) ListFrom(ctx context.Context, from time.Time) ([]domain.Obligation, error) {
	query := `
		SELECT due_on, amount, description
		FROM obligations
		WHERE due_on >= $1 AND paid_at IS NULL
		ORDER BY due_on ASC
	`

	rows, err := r.db.QueryContext(ctx, query, from)
	if err != nil {
		return nil, fmt.Errorf("failed to list obligations: %w", err)
	}
	defer rows.Close()

	obligations := []domain.Obligation{}
	for rows.Next() {
		var obligation domain.Obligation
		var amountStr string

		if err := rows.Scan(&obligation.DueDate, &amountStr, &obligation.Description); err != nil {
			return nil, fmt.Errorf("failed to scan obligation: %w", err)
		}

		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse obligation amount: %w", err)
		}
		obligation.Amount = amount

		obligations = append(obligations, obligation)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate obligations: %w", err)
	}

	return obligations, nil
}
