package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mfalcao/cashpilot-backend/internal/domain"
	"github.com/mfalcao/cashpilot-backend/internal/usecase/debtplan"
	"github.com/mfalcao/cashpilot-backend/internal/usecase/projection"
	"github.com/mfalcao/cashpilot-backend/internal/usecase/simulation"
	"github.com/mfalcao/cashpilot-backend/internal/usecase/spendable"
	"github.com/mfalcao/cashpilot-backend/internal/usecase/spendstats"
)

// spendRateWindowDays is the trailing window used to derive a daily-spend
// estimate when the caller does not supply one.
const spendRateWindowDays = 30

// contributionLookaheadDays bounds how far ahead planned contributions are
// loaded for the spendable estimate; the engine filters to the paycheck
// window afterwards.
const contributionLookaheadDays = 365

// Service is the orchestration layer over the calculation engine: it loads
// stored state, converts it into engine value types, invokes exactly one
// procedure per call and returns the result untouched.
type Service struct {
	SpendingRepo     domain.SpendingEventRepository
	DebtRepo         domain.DebtRepository
	IncomeRepo       domain.IncomeEventRepository
	ObligationRepo   domain.ObligationRepository
	ContributionRepo domain.ContributionRepository
	SimEventRepo     domain.SimulationEventRepository
}

// NewService creates a new Service instance
func NewService(
	spendingRepo domain.SpendingEventRepository,
	debtRepo domain.DebtRepository,
	incomeRepo domain.IncomeEventRepository,
	obligationRepo domain.ObligationRepository,
	contributionRepo domain.ContributionRepository,
	simEventRepo domain.SimulationEventRepository,
) *Service {
	return &Service{
		SpendingRepo:     spendingRepo,
		DebtRepo:         debtRepo,
		IncomeRepo:       incomeRepo,
		ObligationRepo:   obligationRepo,
		ContributionRepo: contributionRepo,
		SimEventRepo:     simEventRepo,
	}
}

// SpendingOverview loads spending events covering the widest requested window
// and computes the per-window statistics.
func (s *Service) SpendingOverview(ctx context.Context, asOf time.Time, windowDays []int) (map[int]spendstats.WindowStats, error) {
	if len(windowDays) == 0 {
		return nil, domain.NilInputError("window lengths")
	}

	maxWindow := windowDays[0]
	for _, n := range windowDays[1:] {
		if n > maxWindow {
			maxWindow = n
		}
	}
	if maxWindow <= 0 {
		return nil, domain.InvalidArgumentError("window length must be positive, got %d", maxWindow)
	}

	from := domain.DayOf(asOf).AddDate(0, 0, -(maxWindow - 1))
	events, err := s.SpendingRepo.ListBetween(ctx, from, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to load spending events: %w", err)
	}
	if events == nil {
		events = []domain.SpendingEvent{}
	}
	return spendstats.Calculate(events, asOf, windowDays)
}

// PlanDebtPayments loads the open debts and allocates one cycle of payments.
func (s *Service) PlanDebtPayments(ctx context.Context, extraPool decimal.Decimal, strategy domain.AllocationStrategy, asOf time.Time) (*debtplan.Plan, error) {
	debts, err := s.DebtRepo.ListOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load debts: %w", err)
	}
	if debts == nil {
		debts = []domain.Debt{}
	}
	return debtplan.Allocate(debts, extraPool, strategy, asOf)
}

// RunSimulation loads the tracked debt accounts plus the scheduled events in
// range and walks the cash/debt trajectory forward.
func (s *Service) RunSimulation(ctx context.Context, start, end time.Time, initialCash decimal.Decimal) (*simulation.Result, error) {
	debts, err := s.DebtRepo.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load debt accounts: %w", err)
	}
	events, err := s.SimEventRepo.ListBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load simulation events: %w", err)
	}
	if debts == nil {
		debts = []domain.DebtAccount{}
	}
	if events == nil {
		events = []domain.SimulationEvent{}
	}
	return simulation.Run(simulation.Input{
		StartDate:   start,
		EndDate:     end,
		InitialCash: initialCash,
		Debts:       debts,
		Events:      events,
	})
}

// ProjectGrowth loads the planned contributions in range and projects the
// investment balance forward. A nil inflation rate falls back to the 3%
// default; monthly selects month steps instead of day steps.
func (s *Service) ProjectGrowth(ctx context.Context, initial decimal.Decimal, start, end time.Time, annualReturn decimal.Decimal, annualInflation *decimal.Decimal, monthly bool) (*projection.Result, error) {
	contributions, err := s.ContributionRepo.ListBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load contributions: %w", err)
	}
	if contributions == nil {
		contributions = []domain.InvestmentContribution{}
	}

	inflation := projection.DefaultAnnualInflation
	if annualInflation != nil {
		inflation = *annualInflation
	}

	in := projection.Input{
		InitialBalance:  initial,
		StartDate:       start,
		EndDate:         end,
		Contributions:   contributions,
		AnnualReturn:    annualReturn,
		AnnualInflation: inflation,
	}
	if monthly {
		return projection.ProjectMonthly(in)
	}
	return projection.ProjectDaily(in)
}

// SafeToSpend loads upcoming obligations, income events and planned
// contributions and estimates the near-term spendable figure. When the caller
// supplies no daily-spend estimate, one is derived from the trailing 30-day
// spending average.
func (s *Service) SafeToSpend(ctx context.Context, cash decimal.Decimal, asOf time.Time, manualBuffer, estimatedDailySpend *decimal.Decimal) (*spendable.Estimate, error) {
	obligations, err := s.ObligationRepo.ListFrom(ctx, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to load obligations: %w", err)
	}
	incomes, err := s.IncomeRepo.ListFrom(ctx, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to load income events: %w", err)
	}
	contributions, err := s.ContributionRepo.ListBetween(ctx, asOf, domain.DayOf(asOf).AddDate(0, 0, contributionLookaheadDays))
	if err != nil {
		return nil, fmt.Errorf("failed to load contributions: %w", err)
	}
	if obligations == nil {
		obligations = []domain.Obligation{}
	}
	if incomes == nil {
		incomes = []domain.IncomeEvent{}
	}

	if estimatedDailySpend == nil {
		derived, err := s.deriveDailySpend(ctx, asOf)
		if err != nil {
			return nil, err
		}
		estimatedDailySpend = derived
	}

	return spendable.Calculate(spendable.Input{
		AvailableCash:        cash,
		AsOf:                 asOf,
		Obligations:          obligations,
		Incomes:              incomes,
		SafetyBuffer:         manualBuffer,
		EstimatedDailySpend:  estimatedDailySpend,
		PlannedContributions: contributions,
	})
}

// deriveDailySpend estimates a daily spend rate from the trailing 30-day
// average. A zero average means there is no history to estimate from, so the
// estimate stays unset rather than pretending a zero spend rate is known.
func (s *Service) deriveDailySpend(ctx context.Context, asOf time.Time) (*decimal.Decimal, error) {
	stats, err := s.SpendingOverview(ctx, asOf, []int{spendRateWindowDays})
	if err != nil {
		return nil, err
	}
	average := stats[spendRateWindowDays].AverageDailySpend
	if !average.IsPositive() {
		return nil, nil
	}
	return &average, nil
}
