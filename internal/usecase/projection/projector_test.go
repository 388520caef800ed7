package projection

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfalcao/cashpilot-backend/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func input(initial string, start, end time.Time, annualReturn, annualInflation string) Input {
	return Input{
		InitialBalance:  decimal.RequireFromString(initial),
		StartDate:       start,
		EndDate:         end,
		Contributions:   []domain.InvestmentContribution{},
		AnnualReturn:    decimal.RequireFromString(annualReturn),
		AnnualInflation: decimal.RequireFromString(annualInflation),
	}
}

func TestProjectDaily_ZeroReturnPreservesBalance(t *testing.T) {
	result, err := ProjectDaily(input("5000", day(2024, 1, 1), day(2025, 1, 1), "0", "0"))
	require.NoError(t, err)

	assert.True(t, result.FinalNominalValue.Equal(decimal.NewFromInt(5000)))
	assert.True(t, result.FinalRealValue.Equal(decimal.NewFromInt(5000)))
	assert.True(t, result.NominalGrowth.IsZero())
}

func TestProjectDaily_GrowthSkippedOnFirstDay(t *testing.T) {
	result, err := ProjectDaily(input("1000", day(2024, 1, 1), day(2024, 1, 2), "0.10", "0"))
	require.NoError(t, err)

	require.Len(t, result.Points, 2)
	assert.True(t, result.Points[0].NominalValue.Equal(decimal.NewFromInt(1000)))
	assert.True(t, result.Points[1].NominalValue.GreaterThan(decimal.NewFromInt(1000)))
}

func TestProjectDaily_CompoundsAtDailyRate(t *testing.T) {
	result, err := ProjectDaily(input("1000", day(2024, 1, 1), day(2024, 12, 31), "0.07", "0"))
	require.NoError(t, err)

	// 366 points (2024 is a leap year), 365 growth steps at (1.07)^(1/365)-1.
	require.Len(t, result.Points, 366)
	want := 1000 * math.Pow(1.07, 365.0/365.0)
	assert.InDelta(t, want, result.FinalNominalValue.InexactFloat64(), 0.01)
}

func TestProjectDaily_ContributionAppliedBeforeGrowth(t *testing.T) {
	in := input("1000", day(2024, 1, 1), day(2024, 1, 2), "0.10", "0")
	in.Contributions = []domain.InvestmentContribution{
		{Date: day(2024, 1, 2), Amount: decimal.NewFromInt(500)},
	}

	result, err := ProjectDaily(in)
	require.NoError(t, err)

	// Day 2: (1000 + 500) * (1+daily), not 1000*(1+daily) + 500.
	daily := math.Pow(1.10, 1.0/365.0) - 1
	want := 1500 * (1 + daily)
	assert.InDelta(t, want, result.FinalNominalValue.InexactFloat64(), 0.0001)
	assert.True(t, result.TotalContributed.Equal(decimal.NewFromInt(1500)))
}

func TestProjectDaily_RealValueDeflatedByInflation(t *testing.T) {
	result, err := ProjectDaily(input("1000", day(2024, 1, 1), day(2024, 12, 31), "0", "0.03"))
	require.NoError(t, err)

	// Nominal stays flat; real value shrinks by accumulated daily inflation.
	assert.True(t, result.FinalNominalValue.Equal(decimal.NewFromInt(1000)))
	dailyInfl := math.Pow(1.03, 1.0/365.0) - 1
	want := 1000 / math.Pow(1+dailyInfl, 365)
	assert.InDelta(t, want, result.FinalRealValue.InexactFloat64(), 0.01)
	assert.True(t, result.RealGrowth.IsNegative())
}

func TestProjectMonthly_StepsByCalendarMonth(t *testing.T) {
	result, err := ProjectMonthly(input("2000", day(2024, 1, 15), day(2024, 6, 20), "0", "0"))
	require.NoError(t, err)

	require.Len(t, result.Points, 6)
	assert.Equal(t, day(2024, 1, 15), result.Points[0].Date)
	assert.Equal(t, day(2024, 6, 15), result.Points[5].Date)
	assert.True(t, result.FinalNominalValue.Equal(decimal.NewFromInt(2000)))
}

func TestProjectMonthly_ClampsShortMonths(t *testing.T) {
	result, err := ProjectMonthly(input("100", day(2024, 1, 31), day(2024, 3, 31), "0", "0"))
	require.NoError(t, err)

	require.Len(t, result.Points, 3)
	assert.Equal(t, day(2024, 2, 29), result.Points[1].Date)
	assert.Equal(t, day(2024, 3, 31), result.Points[2].Date)
}

func TestProjectMonthly_ContributionsAggregatedByMonth(t *testing.T) {
	in := input("0", day(2024, 1, 1), day(2024, 3, 1), "0", "0")
	in.Contributions = []domain.InvestmentContribution{
		// Different days within February both land on the February step.
		{Date: day(2024, 2, 3), Amount: decimal.NewFromInt(100)},
		{Date: day(2024, 2, 27), Amount: decimal.NewFromInt(150)},
	}

	result, err := ProjectMonthly(in)
	require.NoError(t, err)

	require.Len(t, result.Points, 3)
	assert.True(t, result.Points[0].TotalContributed.IsZero())
	assert.True(t, result.Points[1].TotalContributed.Equal(decimal.NewFromInt(250)))
	assert.True(t, result.FinalNominalValue.Equal(decimal.NewFromInt(250)))
}

func TestProjectMonthly_CompoundsAtMonthlyRate(t *testing.T) {
	result, err := ProjectMonthly(input("10000", day(2024, 1, 1), day(2025, 1, 1), "0.06", "0"))
	require.NoError(t, err)

	// 13 points, 12 growth steps of (1.06)^(1/12)-1: one full year of growth.
	require.Len(t, result.Points, 13)
	assert.InDelta(t, 10600, result.FinalNominalValue.InexactFloat64(), 0.01)
}

func TestProject_NegativeReturnProducesNegativeGrowth(t *testing.T) {
	result, err := ProjectMonthly(input("1000", day(2024, 1, 1), day(2024, 12, 1), "-0.10", "0"))
	require.NoError(t, err)

	assert.True(t, result.FinalNominalValue.LessThan(decimal.NewFromInt(1000)))
	assert.True(t, result.NominalGrowth.IsNegative())
}

func TestProject_SingleStepRange(t *testing.T) {
	daily, err := ProjectDaily(input("750", day(2024, 5, 1), day(2024, 5, 1), "0.08", "0.03"))
	require.NoError(t, err)
	require.Len(t, daily.Points, 1)
	assert.True(t, daily.FinalNominalValue.Equal(decimal.NewFromInt(750)))
	assert.True(t, daily.FinalRealValue.Equal(decimal.NewFromInt(750)))

	monthly, err := ProjectMonthly(input("750", day(2024, 5, 1), day(2024, 5, 20), "0.08", "0.03"))
	require.NoError(t, err)
	require.Len(t, monthly.Points, 1)
	assert.True(t, monthly.FinalNominalValue.Equal(decimal.NewFromInt(750)))
}

func TestProject_InputErrors(t *testing.T) {
	in := input("100", day(2024, 1, 1), day(2024, 2, 1), "0.05", "0.03")
	in.Contributions = nil
	_, err := ProjectDaily(in)
	assert.ErrorIs(t, err, domain.ErrNilInput)

	in = input("-100", day(2024, 1, 1), day(2024, 2, 1), "0.05", "0.03")
	_, err = ProjectDaily(in)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	in = input("100", day(2024, 2, 1), day(2024, 1, 1), "0.05", "0.03")
	_, err = ProjectMonthly(in)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	in = input("100", day(2024, 1, 1), day(2024, 2, 1), "0.05", "0.03")
	in.Contributions = []domain.InvestmentContribution{
		{Date: day(2024, 1, 5), Amount: decimal.NewFromInt(-10)},
	}
	_, err = ProjectDaily(in)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
