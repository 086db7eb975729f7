package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// UnusedIndex marks a result where every die counts (a single neutral roll)
const UnusedIndex = -1

// RollResult is the outcome of one roll request
type RollResult struct {
	// Rolls holds every die in the order it was rolled
	Rolls []int

	// Total is the value that counts: the sum for plain rolls, the kept die otherwise
	Total int

	// Used is the index into Rolls of the kept die, or UnusedIndex
	Used int
}

// Roller provides an interface for rolling dice
// This allows us to inject deterministic implementations for testing
type Roller interface {
	// Roll rolls count dice with the given sides and sums them
	Roll(count, sides int) (*RollResult, error)

	// RollWithAdvantage rolls twice and keeps the higher die
	RollWithAdvantage(sides int) (*RollResult, error)

	// RollWithDisadvantage rolls twice and keeps the lower die
	RollWithDisadvantage(sides int) (*RollResult, error)
}

// KeepHighest builds the advantage result for two dice; ties keep the first die
func KeepHighest(first, second int) *RollResult {
	used := 0
	if second > first {
		used = 1
	}
	rolls := []int{first, second}
	return &RollResult{Rolls: rolls, Total: rolls[used], Used: used}
}

// KeepLowest builds the disadvantage result for two dice; ties keep the first die
func KeepLowest(first, second int) *RollResult {
	used := 0
	if second < first {
		used = 1
	}
	rolls := []int{first, second}
	return &RollResult{Rolls: rolls, Total: rolls[used], Used: used}
}
