package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mfalcao/cashpilot-backend/internal/domain"
)

// debtRepository implements domain.DebtRepository
type debtRepository struct {
	db *DB
}

// NewDebtRepository creates a new debt repository
func NewDebtRepository(db *DB) domain.DebtRepository {
	return &debtRepository{db: db}
}

// ListOpen retrieves all debts that have not been closed
func (r *debtRepository) ListOpen(ctx context.Context) ([]domain.Debt, error) {
	query := `
		SELECT name, balance, annual_rate, minimum_payment, promo_rate, promo_end_date
		FROM debts
		WHERE closed_at IS NULL
		ORDER BY name ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list open debts: %w", err)
	}
	defer rows.Close()

	debts := []domain.Debt{}
	for rows.Next() {
		var debt domain.Debt
		var balanceStr, rateStr, minimumStr string
		var promoRateStr sql.NullString
		var promoEndDate sql.NullTime

		if err := rows.Scan(&debt.Name, &balanceStr, &rateStr, &minimumStr, &promoRateStr, &promoEndDate); err != nil {
			return nil, fmt.Errorf("failed to scan debt: %w", err)
		}

		if debt.Balance, err = decimal.NewFromString(balanceStr); err != nil {
			return nil, fmt.Errorf("failed to parse debt balance: %w", err)
		}
		if debt.AnnualRate, err = decimal.NewFromString(rateStr); err != nil {
			return nil, fmt.Errorf("failed to parse debt annual rate: %w", err)
		}
		if debt.MinimumPayment, err = decimal.NewFromString(minimumStr); err != nil {
			return nil, fmt.Errorf("failed to parse debt minimum payment: %w", err)
		}
		if promoRateStr.Valid {
			promoRate, err := decimal.NewFromString(promoRateStr.String)
			if err != nil {
				return nil, fmt.Errorf("failed to parse debt promo rate: %w", err)
			}
			debt.PromoRate = &promoRate
		}
		if promoEndDate.Valid {
			end := promoEndDate.Time
			debt.PromoEndDate = &end
		}

		debts = append(debts, debt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate debts: %w", err)
	}

	return debts, nil
}

// ListAccounts retrieves all open debts in their account shape
func (r *debtRepository) ListAccounts(ctx context.Context) ([]domain.DebtAccount, error) {
	debts, err := r.ListOpen(ctx)
	if err != nil {
		return nil, err
	}

	accounts := make([]domain.DebtAccount, 0, len(debts))
	for _, debt := range debts {
		accounts = append(accounts, domain.DebtAccount{
			Name:           debt.Name,
			CurrentBalance: debt.Balance,
			AnnualRate:     debt.AnnualRate,
			PromoRate:      debt.PromoRate,
			PromoEndDate:   debt.PromoEndDate,
		})
	}
	return accounts, nil
}
