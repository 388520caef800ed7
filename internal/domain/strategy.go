package domain

// AllocationStrategy represents the extra-payment prioritization rule used by
// the debt allocation planner.
type AllocationStrategy string

const (
	// StrategyAvalanche prioritizes the debt with the highest effective rate.
	StrategyAvalanche AllocationStrategy = "AVALANCHE"
	// StrategySnowball prioritizes the debt with the smallest balance.
	StrategySnowball AllocationStrategy = "SNOWBALL"
	// StrategyHybrid is currently identical to Avalanche. The strategies have
	// not been differentiated yet; keep the behavior as-is until they are.
	StrategyHybrid AllocationStrategy = "HYBRID"
)

// Valid reports whether the strategy is one of the known variants.
func (s AllocationStrategy) Valid() bool {
	switch s {
	case StrategyAvalanche, StrategySnowball, StrategyHybrid:
		return true
	}
	return false
}
