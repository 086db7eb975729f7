package mockdice

import (
	"fmt"
	"sync"

	"github.com/Skelly0/DuelBot/internal/dice"
)

// ManualMockRoller implements dice.Roller by handing out queued die faces in order
type ManualMockRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
}

// NewManualMockRoller creates a roller that will return rolls in order
func NewManualMockRoller(rolls ...int) *ManualMockRoller {
	return &ManualMockRoller{
		rolls: append([]int{}, rolls...),
	}
}

// SetNextRoll queues one more die face
func (m *ManualMockRoller) SetNextRoll(roll int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = append(m.rolls, roll)
}

// SetRolls replaces the queue and rewinds it
func (m *ManualMockRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = append([]int{}, rolls...)
	m.rollIndex = 0
}

// Remaining reports how many queued faces have not been used
func (m *ManualMockRoller) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rolls) - m.rollIndex
}

func (m *ManualMockRoller) next(sides int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rollIndex >= len(m.rolls) {
		return 0, fmt.Errorf("no more predetermined rolls available (used %d of %d)", m.rollIndex, len(m.rolls))
	}

	roll := m.rolls[m.rollIndex]
	if roll < 1 || roll > sides {
		return 0, fmt.Errorf("invalid roll %d for d%d", roll, sides)
	}
	m.rollIndex++
	return roll, nil
}

// Roll implements dice.Roller.Roll
func (m *ManualMockRoller) Roll(count, sides int) (*dice.RollResult, error) {
	rolls := make([]int, count)
	total := 0
	for i := range rolls {
		roll, err := m.next(sides)
		if err != nil {
			return nil, err
		}
		rolls[i] = roll
		total += roll
	}
	return &dice.RollResult{Rolls: rolls, Total: total, Used: dice.UnusedIndex}, nil
}

// RollWithAdvantage implements dice.Roller.RollWithAdvantage
func (m *ManualMockRoller) RollWithAdvantage(sides int) (*dice.RollResult, error) {
	first, second, err := m.pair(sides)
	if err != nil {
		return nil, err
	}
	return dice.KeepHighest(first, second), nil
}

// RollWithDisadvantage implements dice.Roller.RollWithDisadvantage
func (m *ManualMockRoller) RollWithDisadvantage(sides int) (*dice.RollResult, error) {
	first, second, err := m.pair(sides)
	if err != nil {
		return nil, err
	}
	return dice.KeepLowest(first, second), nil
}

func (m *ManualMockRoller) pair(sides int) (int, int, error) {
	first, err := m.next(sides)
	if err != nil {
		return 0, 0, err
	}
	second, err := m.next(sides)
	if err != nil {
		return 0, 0, err
	}
	return first, second, nil
}
