//go:build integration

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	cashpilotv1 "github.com/mfalcao/cashpilot-backend/internal/adapter/grpc/cashpilot/v1"
	"github.com/mfalcao/cashpilot-backend/internal/adapter/repository/postgres"
)

var (
	db         *postgres.DB
	grpcClient cashpilotv1.CashPilotServiceClient
	grpcConn   *grpc.ClientConn

	// All seeded data hangs off this date so the tests are deterministic
	// regardless of when they run.
	anchorDay = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
)

// TestMain sets up the test environment
func TestMain(m *testing.M) {
	ctx := context.Background()

	// 1. Connect to Database
	dbConnStr := getDBConnectionString()
	var err error
	db, err = postgres.NewDB(dbConnStr)
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}
	defer db.Close()

	// 2. Connect to gRPC Server
	grpcAddr := getGRPCAddress()
	grpcConn, err = grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to gRPC server: %v", err))
	}
	defer grpcConn.Close()

	grpcClient = cashpilotv1.NewCashPilotServiceClient(grpcConn)

	// 3. Self-healing setup: wipe and reseed the engine's source tables
	if err := seedTestData(ctx, db); err != nil {
		panic(fmt.Sprintf("Failed to seed test data: %v", err))
	}

	// Run tests
	code := m.Run()

	os.Exit(code)
}

// seedTestData resets the source tables to a fixed, known state
func seedTestData(ctx context.Context, db *postgres.DB) error {
	tables := []string{
		"spending_events",
		"debts",
		"income_events",
		"obligations",
		"investment_contributions",
		"simulation_events",
	}
	for _, table := range tables {
		if _, err := db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	// 30 days of spending at $20/day ending the day before the anchor.
	for i := 1; i <= 30; i++ {
		day := anchorDay.AddDate(0, 0, -i)
		_, err := db.ExecContext(ctx,
			`INSERT INTO spending_events (id, occurred_on, amount) VALUES ($1, $2, $3)`,
			uuid.New(), day, "20.00",
		)
		if err != nil {
			return fmt.Errorf("failed to seed spending event: %w", err)
		}
	}

	// Two open debts with distinct rates so avalanche ordering is observable.
	debts := []struct {
		name    string
		balance string
		rate    string
		minimum string
	}{
		{"Card A", "1000.00", "0.1099", "25.00"},
		{"Card B", "2000.00", "0.2499", "50.00"},
	}
	for _, d := range debts {
		_, err := db.ExecContext(ctx,
			`INSERT INTO debts (id, name, balance, annual_rate, minimum_payment) VALUES ($1, $2, $3, $4, $5)`,
			uuid.New(), d.name, d.balance, d.rate, d.minimum,
		)
		if err != nil {
			return fmt.Errorf("failed to seed debt %s: %w", d.name, err)
		}
	}

	// A paycheck 10 days after the anchor, and one obligation before it.
	_, err := db.ExecContext(ctx,
		`INSERT INTO income_events (id, expected_on, amount, description) VALUES ($1, $2, $3, $4)`,
		uuid.New(), anchorDay.AddDate(0, 0, 10), "2500.00", "Salary",
	)
	if err != nil {
		return fmt.Errorf("failed to seed income event: %w", err)
	}
	_, err = db.ExecContext(ctx,
		`INSERT INTO obligations (id, due_on, amount, description) VALUES ($1, $2, $3, $4)`,
		uuid.New(), anchorDay.AddDate(0, 0, 5), "300.00", "Rent",
	)
	if err != nil {
		return fmt.Errorf("failed to seed obligation: %w", err)
	}

	// One planned contribution inside the paycheck window.
	_, err = db.ExecContext(ctx,
		`INSERT INTO investment_contributions (id, planned_on, amount) VALUES ($1, $2, $3)`,
		uuid.New(), anchorDay.AddDate(0, 0, 7), "100.00",
	)
	if err != nil {
		return fmt.Errorf("failed to seed contribution: %w", err)
	}

	// A scheduled income event for the simulation window.
	_, err = db.ExecContext(ctx,
		`INSERT INTO simulation_events (id, scheduled_on, event_type, description, amount) VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), anchorDay.AddDate(0, 0, 1), "INCOME", "Freelance invoice", "500.00",
	)
	if err != nil {
		return fmt.Errorf("failed to seed simulation event: %w", err)
	}

	return nil
}

// getAuthContext returns a context with authorization metadata
func getAuthContext() context.Context {
	md := metadata.New(map[string]string{
		"authorization": "dev-token",
	})
	return metadata.NewOutgoingContext(context.Background(), md)
}

// getDBConnectionString returns the database connection string from environment or defaults
func getDBConnectionString() string {
	connStr := os.Getenv("DB_CONN_STR")
	if connStr != "" {
		return connStr
	}

	host := os.Getenv("DB_HOST")
	if host == "" {
		host = "localhost"
	}

	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}

	user := os.Getenv("DB_USER")
	if user == "" {
		user = "postgres"
	}

	password := os.Getenv("DB_PASSWORD")
	if password == "" {
		password = "postgres"
	}

	dbname := os.Getenv("DB_NAME")
	if dbname == "" {
		dbname = "cashpilot"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)
}

// getGRPCAddress returns the gRPC server address from environment or defaults
func getGRPCAddress() string {
	addr := os.Getenv("GRPC_ADDRESS")
	if addr == "" {
		addr = "localhost:8080"
	}
	return addr
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err, "value %q should be a valid decimal", s)
	return d
}

// TestSpendingStatisticsFlow verifies statistics over the seeded spending history
func TestSpendingStatisticsFlow(t *testing.T) {
	ctx := getAuthContext()

	resp, err := grpcClient.CalculateSpendingStatistics(ctx, &cashpilotv1.CalculateSpendingStatisticsRequest{
		AsOf:       timestamppb.New(anchorDay),
		WindowDays: []int32{7, 30},
	})
	require.NoError(t, err, "CalculateSpendingStatistics should succeed")
	require.Len(t, resp.Windows, 2)

	// Seeded: $20 every day from anchor-30 through anchor-1, nothing on the
	// anchor day itself. The 7-day window ending on the anchor covers six
	// spending days, the 30-day window covers twenty-nine.
	sevenDay := resp.Windows[0]
	assert.Equal(t, int32(7), sevenDay.WindowDays)
	sevenDayAvg := mustDecimal(t, sevenDay.AverageDailySpend)
	expectedSevenDayAvg := mustDecimal(t, "120").Div(decimal.NewFromInt(7))
	assert.True(t, sevenDayAvg.Equal(expectedSevenDayAvg),
		"7-day average should be 120/7: got %s", sevenDay.AverageDailySpend)

	thirtyDay := resp.Windows[1]
	assert.Equal(t, int32(30), thirtyDay.WindowDays)
	assert.True(t, mustDecimal(t, thirtyDay.MaxDailySpend).Equal(mustDecimal(t, "20")),
		"max daily spend should be the seeded $20")
}

// TestDebtAllocationFlow verifies avalanche allocation over the seeded debts
func TestDebtAllocationFlow(t *testing.T) {
	ctx := getAuthContext()

	resp, err := grpcClient.PlanDebtAllocation(ctx, &cashpilotv1.PlanDebtAllocationRequest{
		ExtraPaymentPool: "200.00",
		Strategy:         cashpilotv1.AllocationStrategy_ALLOCATION_STRATEGY_AVALANCHE,
		AsOf:             timestamppb.New(anchorDay),
	})
	require.NoError(t, err, "PlanDebtAllocation should succeed")
	require.Len(t, resp.Payments, 2)

	// Card B carries the higher rate, so the whole extra pool lands on it.
	byName := make(map[string]*cashpilotv1.DebtPayment)
	for _, p := range resp.Payments {
		byName[p.DebtName] = p
	}
	require.Contains(t, byName, "Card A")
	require.Contains(t, byName, "Card B")

	assert.True(t, mustDecimal(t, byName["Card B"].ExtraPayment).Equal(mustDecimal(t, "200")),
		"Card B should receive the full extra pool")
	assert.True(t, mustDecimal(t, byName["Card A"].ExtraPayment).IsZero(),
		"Card A should receive minimum only")
	assert.True(t, mustDecimal(t, resp.TotalPayment).Equal(mustDecimal(t, "275")),
		"total payment should be 25 + 50 + 200")
}

// TestSimulationFlow verifies the day-by-day walk over the seeded debts and events
func TestSimulationFlow(t *testing.T) {
	ctx := getAuthContext()

	start := anchorDay
	end := anchorDay.AddDate(0, 0, 4)
	resp, err := grpcClient.RunCashDebtSimulation(ctx, &cashpilotv1.RunCashDebtSimulationRequest{
		StartDate:   timestamppb.New(start),
		EndDate:     timestamppb.New(end),
		InitialCash: "1000.00",
	})
	require.NoError(t, err, "RunCashDebtSimulation should succeed")
	require.Len(t, resp.Snapshots, 5, "one snapshot per calendar day, inclusive")

	// The seeded $500 freelance invoice lands on day two.
	dayTwo := resp.Snapshots[1]
	assert.Contains(t, dayTwo.EventDescription, "Freelance invoice")
	assert.True(t, mustDecimal(t, dayTwo.CashBalance).Equal(mustDecimal(t, "1500")),
		"cash should include the day-two income")

	// Both cards carry interest, so debt only grows and no debt-free date exists.
	assert.Nil(t, resp.DebtFreeDate)
	finalDebt := mustDecimal(t, resp.FinalDebtBalances["Card A"]).
		Add(mustDecimal(t, resp.FinalDebtBalances["Card B"]))
	assert.True(t, finalDebt.GreaterThan(mustDecimal(t, "3000")),
		"accrued interest should push total debt above the seeded principal")
}

// TestProjectionFlow verifies growth projection with the seeded contribution
func TestProjectionFlow(t *testing.T) {
	ctx := getAuthContext()

	resp, err := grpcClient.ProjectInvestmentGrowth(ctx, &cashpilotv1.ProjectInvestmentGrowthRequest{
		InitialBalance: "10000.00",
		StartDate:      timestamppb.New(anchorDay),
		EndDate:        timestamppb.New(anchorDay.AddDate(0, 0, 30)),
		AnnualReturn:   "0.07",
		// Empty inflation: the engine's default applies.
		AnnualInflation: "",
		Monthly:         false,
	})
	require.NoError(t, err, "ProjectInvestmentGrowth should succeed")
	require.Len(t, resp.Points, 31)

	// Initial 10000 plus the seeded 100 contribution.
	assert.True(t, mustDecimal(t, resp.TotalContributed).Equal(mustDecimal(t, "10100")))
	assert.True(t, mustDecimal(t, resp.FinalNominalValue).GreaterThan(mustDecimal(t, "10100")),
		"a positive return should grow the balance past the contributions")
	assert.True(t, mustDecimal(t, resp.FinalRealValue).LessThan(mustDecimal(t, resp.FinalNominalValue)),
		"default inflation should discount the real value below nominal")
}

// TestSpendableCashFlow verifies the safe-to-spend estimate over the seeded rows
func TestSpendableCashFlow(t *testing.T) {
	ctx := getAuthContext()

	resp, err := grpcClient.EstimateSpendableCash(ctx, &cashpilotv1.EstimateSpendableCashRequest{
		AvailableCash: "2000.00",
		AsOf:          timestamppb.New(anchorDay),
	})
	require.NoError(t, err, "EstimateSpendableCash should succeed")

	require.NotNil(t, resp.NextPaycheckDate)
	assert.Equal(t, int32(10), resp.Breakdown.DaysUntilPaycheck)
	assert.True(t, mustDecimal(t, resp.NextPaycheckAmount).Equal(mustDecimal(t, "2500")))
	assert.True(t, mustDecimal(t, resp.Breakdown.ObligationsDue).Equal(mustDecimal(t, "300")),
		"the seeded rent obligation falls inside the paycheck window")
	assert.True(t, mustDecimal(t, resp.Breakdown.PlannedContributions).Equal(mustDecimal(t, "100")))

	// A daily-spend estimate is derived from the seeded history, so the buffer
	// is positive and a conservative scenario exists.
	assert.True(t, mustDecimal(t, resp.Breakdown.SafetyBuffer).IsPositive())
	require.NotNil(t, resp.Conservative)
	assert.True(t, mustDecimal(t, resp.Conservative.SpendableNow).
		LessThan(mustDecimal(t, resp.SpendableNow)),
		"the stressed scenario should spend less")
}

// TestScheduleExpansionFlow verifies recurring schedule expansion end to end
func TestScheduleExpansionFlow(t *testing.T) {
	ctx := getAuthContext()

	resp, err := grpcClient.ExpandRecurringSchedule(ctx, &cashpilotv1.ExpandRecurringScheduleRequest{
		AnchorDate: timestamppb.New(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)),
		Frequency:  cashpilotv1.RecurringFrequency_RECURRING_FREQUENCY_MONTHLY,
		RangeStart: timestamppb.New(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		RangeEnd:   timestamppb.New(time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)),
		Amount:     "1500.00",
	})
	require.NoError(t, err, "ExpandRecurringSchedule should succeed")
	require.Len(t, resp.Occurrences, 4)

	// Short months clamp; the anchor's day-of-month comes back in March.
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), resp.Occurrences[1].Date.AsTime())
	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), resp.Occurrences[2].Date.AsTime())
	for _, occ := range resp.Occurrences {
		assert.Equal(t, "1500", mustDecimal(t, occ.Amount).String())
	}
}

// TestNegativeScenarios tests error handling for invalid inputs
func TestNegativeScenarios(t *testing.T) {
	ctx := getAuthContext()

	t.Run("InvalidAmount", func(t *testing.T) {
		_, err := grpcClient.PlanDebtAllocation(ctx, &cashpilotv1.PlanDebtAllocationRequest{
			ExtraPaymentPool: "not-a-number",
			Strategy:         cashpilotv1.AllocationStrategy_ALLOCATION_STRATEGY_AVALANCHE,
			AsOf:             timestamppb.New(anchorDay),
		})
		require.Error(t, err, "PlanDebtAllocation with malformed amount should return an error")
		assert.Equal(t, codes.InvalidArgument, status.Code(err), "Error code should be InvalidArgument")
	})

	t.Run("MissingStrategy", func(t *testing.T) {
		_, err := grpcClient.PlanDebtAllocation(ctx, &cashpilotv1.PlanDebtAllocationRequest{
			ExtraPaymentPool: "100.00",
			AsOf:             timestamppb.New(anchorDay),
		})
		require.Error(t, err, "PlanDebtAllocation without a strategy should return an error")
		assert.Equal(t, codes.InvalidArgument, status.Code(err), "Error code should be InvalidArgument")
	})

	t.Run("ReversedDateRange", func(t *testing.T) {
		_, err := grpcClient.RunCashDebtSimulation(ctx, &cashpilotv1.RunCashDebtSimulationRequest{
			StartDate:   timestamppb.New(anchorDay),
			EndDate:     timestamppb.New(anchorDay.AddDate(0, 0, -5)),
			InitialCash: "100.00",
		})
		require.Error(t, err, "RunCashDebtSimulation with a reversed range should return an error")
		assert.Equal(t, codes.InvalidArgument, status.Code(err), "Error code should be InvalidArgument")
	})

	t.Run("MissingAuthToken", func(t *testing.T) {
		_, err := grpcClient.CalculateSpendingStatistics(context.Background(), &cashpilotv1.CalculateSpendingStatisticsRequest{
			AsOf:       timestamppb.New(anchorDay),
			WindowDays: []int32{7},
		})
		require.Error(t, err, "a request without auth metadata should be rejected")
		assert.Equal(t, codes.Unauthenticated, status.Code(err), "Error code should be Unauthenticated")
	})
}
