package duel

import (
	"context"
	"log"
	"time"

	"github.com/Skelly0/DuelBot/internal/clock"
)

// Sweeper periodically removes expired matches
type Sweeper struct {
	service      Service
	interval     time.Duration
	timeProvider clock.TimeProvider
}

// SweeperConfig holds configuration for the sweeper
type SweeperConfig struct {
	Service      Service            // Required
	Interval     time.Duration      // Required
	TimeProvider clock.TimeProvider // Optional, will use system time if nil
}

// NewSweeper creates a new sweeper
func NewSweeper(cfg *SweeperConfig) *Sweeper {
	if cfg == nil {
		panic("config cannot be nil")
	}
	if cfg.Service == nil {
		panic("service is required")
	}
	if cfg.Interval <= 0 {
		panic("sweep interval must be positive")
	}

	tp := cfg.TimeProvider
	if tp == nil {
		tp = clock.NewSystemTimeProvider()
	}
	return &Sweeper{
		service:      cfg.Service,
		interval:     cfg.Interval,
		timeProvider: tp,
	}
}

// Run sweeps on every tick until ctx is cancelled
func (s *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.SweepOnce(ctx)
		}
	}
}

// SweepOnce runs a single sweep and returns the removed keys
func (s *Sweeper) SweepOnce(ctx context.Context) []string {
	removed := s.service.SweepExpired(ctx, s.timeProvider.Now())
	if len(removed) > 0 {
		log.Printf("Sweep removed %d expired duel(s)", len(removed))
	}
	return removed
}
