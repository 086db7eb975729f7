package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
)

// randomRoller implements Roller over a uniform PCG source
type randomRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomRoller creates a roller seeded from crypto/rand
func NewRandomRoller() (Roller, error) {
	seed, err := newSeed()
	if err != nil {
		return nil, err
	}
	return NewSeededRoller(seed), nil
}

// NewSeededRoller creates a deterministic roller, useful for replaying a sequence
func NewSeededRoller(seed uint64) Roller {
	return &randomRoller{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.New("invalid dice count")
	}
	if sides < 1 {
		return nil, errors.New("invalid dice size")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rolls := make([]int, count)
	total := 0
	for i := range rolls {
		rolls[i] = r.rng.IntN(sides) + 1
		total += rolls[i]
	}

	return &RollResult{Rolls: rolls, Total: total, Used: UnusedIndex}, nil
}

// RollWithAdvantage implements Roller.RollWithAdvantage
func (r *randomRoller) RollWithAdvantage(sides int) (*RollResult, error) {
	first, second, err := r.pair(sides)
	if err != nil {
		return nil, err
	}
	return KeepHighest(first, second), nil
}

// RollWithDisadvantage implements Roller.RollWithDisadvantage
func (r *randomRoller) RollWithDisadvantage(sides int) (*RollResult, error) {
	first, second, err := r.pair(sides)
	if err != nil {
		return nil, err
	}
	return KeepLowest(first, second), nil
}

func (r *randomRoller) pair(sides int) (int, int, error) {
	if sides < 1 {
		return 0, 0, errors.New("invalid dice size")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.rng.IntN(sides) + 1, r.rng.IntN(sides) + 1, nil
}

func newSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}
