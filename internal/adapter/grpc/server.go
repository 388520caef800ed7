package grpc

import (
	"context"
	"errors"
	"sort"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	cashpilotv1 "github.com/mfalcao/cashpilot-backend/internal/adapter/grpc/cashpilot/v1"
	"github.com/mfalcao/cashpilot-backend/internal/domain"
	"github.com/mfalcao/cashpilot-backend/internal/usecase/planner"
	"github.com/mfalcao/cashpilot-backend/internal/usecase/schedule"
)

// Server implements the CashPilotService gRPC server
type Server struct {
	cashpilotv1.UnimplementedCashPilotServiceServer

	Planner *planner.Service
}

// NewServer creates a new gRPC server instance
func NewServer(plannerService *planner.Service) *Server {
	return &Server{Planner: plannerService}
}

// CalculateSpendingStatistics handles the CalculateSpendingStatistics RPC
func (s *Server) CalculateSpendingStatistics(ctx context.Context, req *cashpilotv1.CalculateSpendingStatisticsRequest) (*cashpilotv1.CalculateSpendingStatisticsResponse, error) {
	if req.AsOf == nil {
		return nil, status.Errorf(codes.InvalidArgument, "as_of is required")
	}
	windows := make([]int, 0, len(req.WindowDays))
	for _, n := range req.WindowDays {
		windows = append(windows, int(n))
	}

	stats, err := s.Planner.SpendingOverview(ctx, req.AsOf.AsTime(), windows)
	if err != nil {
		return nil, mapError(err)
	}

	// Map iteration order is random; respond in ascending window order.
	keys := make([]int, 0, len(stats))
	for n := range stats {
		keys = append(keys, n)
	}
	sort.Ints(keys)

	protoWindows := make([]*cashpilotv1.WindowStatistics, 0, len(keys))
	for _, n := range keys {
		w := stats[n]
		protoWindows = append(protoWindows, &cashpilotv1.WindowStatistics{
			WindowDays:        int32(w.WindowDays),
			AverageDailySpend: w.AverageDailySpend.String(),
			StdDevDailySpend:  w.StandardDeviation.String(),
			MinDailySpend:     w.MinDailySpend.String(),
			MaxDailySpend:     w.MaxDailySpend.String(),
			Percentile_25:     w.Percentile25.String(),
			Percentile_75:     w.Percentile75.String(),
			Percentile_90:     w.Percentile90.String(),
		})
	}

	return &cashpilotv1.CalculateSpendingStatisticsResponse{
		Windows: protoWindows,
	}, nil
}

// PlanDebtAllocation handles the PlanDebtAllocation RPC
func (s *Server) PlanDebtAllocation(ctx context.Context, req *cashpilotv1.PlanDebtAllocationRequest) (*cashpilotv1.PlanDebtAllocationResponse, error) {
	if req.AsOf == nil {
		return nil, status.Errorf(codes.InvalidArgument, "as_of is required")
	}
	extraPool, err := decimal.NewFromString(req.ExtraPaymentPool)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid extra_payment_pool format: %v", err)
	}
	strategy := protoStrategyToDomain(req.Strategy)
	if strategy == "" {
		return nil, status.Errorf(codes.InvalidArgument, "strategy is required")
	}

	plan, err := s.Planner.PlanDebtPayments(ctx, extraPool, strategy, req.AsOf.AsTime())
	if err != nil {
		return nil, mapError(err)
	}

	protoPayments := make([]*cashpilotv1.DebtPayment, 0, len(plan.Payments))
	for _, p := range plan.Payments {
		protoPayments = append(protoPayments, &cashpilotv1.DebtPayment{
			DebtName:         p.Name,
			MinimumPayment:   p.MinimumPayment.String(),
			ExtraPayment:     p.ExtraPayment.String(),
			TotalPayment:     p.TotalPayment.String(),
			RemainingBalance: p.RemainingBalance.String(),
		})
	}

	return &cashpilotv1.PlanDebtAllocationResponse{
		Strategy:     domainStrategyToProto(plan.Strategy),
		Payments:     protoPayments,
		TotalPayment: plan.TotalPayment.String(),
	}, nil
}

// RunCashDebtSimulation handles the RunCashDebtSimulation RPC
func (s *Server) RunCashDebtSimulation(ctx context.Context, req *cashpilotv1.RunCashDebtSimulationRequest) (*cashpilotv1.RunCashDebtSimulationResponse, error) {
	if req.StartDate == nil || req.EndDate == nil {
		return nil, status.Errorf(codes.InvalidArgument, "start_date and end_date are required")
	}
	initialCash, err := decimal.NewFromString(req.InitialCash)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid initial_cash format: %v", err)
	}

	result, err := s.Planner.RunSimulation(ctx, req.StartDate.AsTime(), req.EndDate.AsTime(), initialCash)
	if err != nil {
		return nil, mapError(err)
	}

	protoSnapshots := make([]*cashpilotv1.DaySnapshot, 0, len(result.Snapshots))
	for _, snap := range result.Snapshots {
		protoSnapshots = append(protoSnapshots, &cashpilotv1.DaySnapshot{
			Date:             timestamppb.New(snap.Date),
			CashBalance:      snap.CashBalance.String(),
			DebtBalances:     decimalMapToStrings(snap.DebtBalances),
			InterestAccrued:  snap.InterestAccrued.String(),
			EventDescription: snap.EventDescription,
		})
	}

	resp := &cashpilotv1.RunCashDebtSimulationResponse{
		Snapshots:         protoSnapshots,
		FinalCashBalance:  result.FinalCashBalance.String(),
		FinalDebtBalances: decimalMapToStrings(result.FinalDebtBalances),
		TotalInterestPaid: result.TotalInterestPaid.String(),
	}
	if result.DebtFreeDate != nil {
		resp.DebtFreeDate = timestamppb.New(*result.DebtFreeDate)
	}
	return resp, nil
}

// ProjectInvestmentGrowth handles the ProjectInvestmentGrowth RPC
func (s *Server) ProjectInvestmentGrowth(ctx context.Context, req *cashpilotv1.ProjectInvestmentGrowthRequest) (*cashpilotv1.ProjectInvestmentGrowthResponse, error) {
	if req.StartDate == nil || req.EndDate == nil {
		return nil, status.Errorf(codes.InvalidArgument, "start_date and end_date are required")
	}
	initial, err := decimal.NewFromString(req.InitialBalance)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid initial_balance format: %v", err)
	}
	annualReturn, err := decimal.NewFromString(req.AnnualReturn)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid annual_return format: %v", err)
	}
	var annualInflation *decimal.Decimal
	if req.AnnualInflation != "" {
		inflation, err := decimal.NewFromString(req.AnnualInflation)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid annual_inflation format: %v", err)
		}
		annualInflation = &inflation
	}

	result, err := s.Planner.ProjectGrowth(ctx, initial, req.StartDate.AsTime(), req.EndDate.AsTime(), annualReturn, annualInflation, req.Monthly)
	if err != nil {
		return nil, mapError(err)
	}

	protoPoints := make([]*cashpilotv1.ProjectionPoint, 0, len(result.Points))
	for _, p := range result.Points {
		protoPoints = append(protoPoints, &cashpilotv1.ProjectionPoint{
			Date:             timestamppb.New(p.Date),
			NominalValue:     p.NominalValue.String(),
			RealValue:        p.RealValue.String(),
			TotalContributed: p.TotalContributed.String(),
			NominalGrowth:    p.NominalGrowth.String(),
			RealGrowth:       p.RealGrowth.String(),
		})
	}

	return &cashpilotv1.ProjectInvestmentGrowthResponse{
		Points:            protoPoints,
		FinalNominalValue: result.FinalNominalValue.String(),
		FinalRealValue:    result.FinalRealValue.String(),
		TotalContributed:  result.TotalContributed.String(),
		NominalGrowth:     result.NominalGrowth.String(),
		RealGrowth:        result.RealGrowth.String(),
	}, nil
}

// EstimateSpendableCash handles the EstimateSpendableCash RPC
func (s *Server) EstimateSpendableCash(ctx context.Context, req *cashpilotv1.EstimateSpendableCashRequest) (*cashpilotv1.EstimateSpendableCashResponse, error) {
	if req.AsOf == nil {
		return nil, status.Errorf(codes.InvalidArgument, "as_of is required")
	}
	cash, err := decimal.NewFromString(req.AvailableCash)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid available_cash format: %v", err)
	}

	// Empty string means unset; "0" is a deliberate zero.
	var safetyBuffer *decimal.Decimal
	if req.SafetyBuffer != "" {
		buffer, err := decimal.NewFromString(req.SafetyBuffer)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid safety_buffer format: %v", err)
		}
		safetyBuffer = &buffer
	}
	var dailySpend *decimal.Decimal
	if req.EstimatedDailySpend != "" {
		daily, err := decimal.NewFromString(req.EstimatedDailySpend)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid estimated_daily_spend format: %v", err)
		}
		dailySpend = &daily
	}

	estimate, err := s.Planner.SafeToSpend(ctx, cash, req.AsOf.AsTime(), safetyBuffer, dailySpend)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &cashpilotv1.EstimateSpendableCashResponse{
		SpendableNow:               estimate.SpendableNow.String(),
		ExpectedCashAtNextPaycheck: estimate.ExpectedCashAtNextPaycheck.String(),
		NextPaycheckAmount:         estimate.NextPaycheckAmount.String(),
		Breakdown: &cashpilotv1.SpendableBreakdown{
			ObligationsDue:       estimate.Breakdown.ObligationsDue.String(),
			PlannedContributions: estimate.Breakdown.PlannedContributions.String(),
			SafetyBuffer:         estimate.Breakdown.SafetyBuffer.String(),
			DaysUntilPaycheck:    int32(estimate.Breakdown.DaysUntilPaycheck),
		},
	}
	if estimate.NextPaycheckDate != nil {
		resp.NextPaycheckDate = timestamppb.New(*estimate.NextPaycheckDate)
	}
	if estimate.Conservative != nil {
		resp.Conservative = &cashpilotv1.ConservativeScenario{
			EstimatedDailySpend:        estimate.Conservative.EstimatedDailySpend.String(),
			SafetyBuffer:               estimate.Conservative.SafetyBuffer.String(),
			SpendableNow:               estimate.Conservative.SpendableNow.String(),
			ExpectedCashAtNextPaycheck: estimate.Conservative.ExpectedCashAtNextPaycheck.String(),
		}
	}
	return resp, nil
}

// ExpandRecurringSchedule handles the ExpandRecurringSchedule RPC
func (s *Server) ExpandRecurringSchedule(ctx context.Context, req *cashpilotv1.ExpandRecurringScheduleRequest) (*cashpilotv1.ExpandRecurringScheduleResponse, error) {
	if req.AnchorDate == nil || req.RangeStart == nil || req.RangeEnd == nil {
		return nil, status.Errorf(codes.InvalidArgument, "anchor_date, range_start and range_end are required")
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid amount format: %v", err)
	}
	frequency := protoFrequencyToDomain(req.Frequency)
	if frequency == "" {
		return nil, status.Errorf(codes.InvalidArgument, "frequency is required")
	}

	occurrences, err := schedule.ExpandAmounts(req.AnchorDate.AsTime(), frequency, req.RangeStart.AsTime(), req.RangeEnd.AsTime(), amount)
	if err != nil {
		return nil, mapError(err)
	}

	protoOccurrences := make([]*cashpilotv1.ScheduleOccurrence, 0, len(occurrences))
	for _, occ := range occurrences {
		protoOccurrences = append(protoOccurrences, &cashpilotv1.ScheduleOccurrence{
			Date:   timestamppb.New(occ.Date),
			Amount: occ.Amount.String(),
		})
	}

	return &cashpilotv1.ExpandRecurringScheduleResponse{
		Occurrences: protoOccurrences,
	}, nil
}

// domainStrategyToProto converts a domain AllocationStrategy to the proto enum
func domainStrategyToProto(strategy domain.AllocationStrategy) cashpilotv1.AllocationStrategy {
	switch strategy {
	case domain.StrategyAvalanche:
		return cashpilotv1.AllocationStrategy_ALLOCATION_STRATEGY_AVALANCHE
	case domain.StrategySnowball:
		return cashpilotv1.AllocationStrategy_ALLOCATION_STRATEGY_SNOWBALL
	case domain.StrategyHybrid:
		return cashpilotv1.AllocationStrategy_ALLOCATION_STRATEGY_HYBRID
	default:
		return cashpilotv1.AllocationStrategy_ALLOCATION_STRATEGY_UNSPECIFIED
	}
}

// protoStrategyToDomain converts the proto enum to a domain AllocationStrategy
func protoStrategyToDomain(strategy cashpilotv1.AllocationStrategy) domain.AllocationStrategy {
	switch strategy {
	case cashpilotv1.AllocationStrategy_ALLOCATION_STRATEGY_AVALANCHE:
		return domain.StrategyAvalanche
	case cashpilotv1.AllocationStrategy_ALLOCATION_STRATEGY_SNOWBALL:
		return domain.StrategySnowball
	case cashpilotv1.AllocationStrategy_ALLOCATION_STRATEGY_HYBRID:
		return domain.StrategyHybrid
	default:
		return ""
	}
}

// protoFrequencyToDomain converts the proto enum to a domain RecurringFrequency
func protoFrequencyToDomain(frequency cashpilotv1.RecurringFrequency) domain.RecurringFrequency {
	switch frequency {
	case cashpilotv1.RecurringFrequency_RECURRING_FREQUENCY_WEEKLY:
		return domain.FrequencyWeekly
	case cashpilotv1.RecurringFrequency_RECURRING_FREQUENCY_BIWEEKLY:
		return domain.FrequencyBiWeekly
	case cashpilotv1.RecurringFrequency_RECURRING_FREQUENCY_SEMIMONTHLY:
		return domain.FrequencySemiMonthly
	case cashpilotv1.RecurringFrequency_RECURRING_FREQUENCY_MONTHLY:
		return domain.FrequencyMonthly
	case cashpilotv1.RecurringFrequency_RECURRING_FREQUENCY_QUARTERLY:
		return domain.FrequencyQuarterly
	case cashpilotv1.RecurringFrequency_RECURRING_FREQUENCY_ANNUALLY:
		return domain.FrequencyAnnually
	default:
		return ""
	}
}

// decimalMapToStrings converts a debt-balance map to its wire representation
func decimalMapToStrings(balances map[string]decimal.Decimal) map[string]string {
	out := make(map[string]string, len(balances))
	for name, balance := range balances {
		out[name] = balance.String()
	}
	return out
}

// mapError converts engine errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, domain.ErrNilInput) || errors.Is(err, domain.ErrInvalidArgument) {
		return status.Errorf(codes.InvalidArgument, "%s", err.Error())
	}

	// Default to Internal error for unknown errors
	return status.Errorf(codes.Internal, "%s", err.Error())
}
