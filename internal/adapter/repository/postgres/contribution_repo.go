package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mfalcao/cashpilot-backend/internal/domain"
)

// contributionRepository implements domain.ContributionRepository
type contributionRepository struct {
	db *DB
}

// NewContributionRepository creates a new contribution repository
func NewContributionRepository(db *DB) domain.ContributionRepository {
	return &contributionRepository{db: db}
}

// ListBetween retrieves planned contributions dated in [from, to], oldest first
func (r *contributionRepository) ListBetween(ctx context.Context, from, to time.Time) ([]domain.InvestmentContribution, error) {
	query := `
		SELECT planned_on, amount
		FROM investment_contributions
		WHERE planned_on >= $1 AND planned_on <= $2
		ORDER BY planned_on ASC
	`

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list contributions: %w", err)
	}
	defer rows.Close()

	contributions := []domain.InvestmentContribution{}
	for rows.Next() {
		var contribution domain.InvestmentContribution
		var amountStr string

		if err := rows.Scan(&contribution.Date, &amountStr); err != nil {
			return nil, fmt.Errorf("failed to scan contribution: %w", err)
		}

		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse contribution amount: %w", err)
		}
		contribution.Amount = amount

		contributions = append(contributions, contribution)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contributions: %w", err)
	}

	return contributions, nil
}
