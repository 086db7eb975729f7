package duel

//go:generate mockgen -destination=mock/mock_service.go -package=mockduel -source=service.go

import (
	"context"
	"log"
	"time"

	"github.com/Skelly0/DuelBot/internal/clock"
	"github.com/Skelly0/DuelBot/internal/domain/duel"
	duelerr "github.com/Skelly0/DuelBot/internal/errors"
	"github.com/Skelly0/DuelBot/internal/events"
	"github.com/Skelly0/DuelBot/internal/uuid"
)

// Service runs duels keyed by channel. Every mutating call holds the match's
// lock for its whole critical section; Status reads a lock-free snapshot.
type Service interface {
	// Challenge creates a match waiting for the opponent to accept
	Challenge(ctx context.Context, input *ChallengeInput) (*duel.Match, error)

	// Accept starts the match; only the challenged player may accept
	Accept(ctx context.Context, key, callerID string) (*duel.Match, error)

	// Declare records the caller's candidate stances for the round
	Declare(ctx context.Context, input *DeclareInput) (*duel.Match, error)

	// Switch replaces one declared stance (bait and switch)
	Switch(ctx context.Context, key, callerID, oldStance, newStance string) (*duel.Match, error)

	// Pick locks in a stance; the second pick resolves the round and returns its result
	Pick(ctx context.Context, key, callerID, stance string) (*duel.Match, *duel.RoundResult, error)

	// Status returns the latest published snapshot of the match
	Status(ctx context.Context, key string) (*duel.Match, error)

	// Cancel removes the match at a participant's request and returns its final state
	Cancel(ctx context.Context, input *CancelInput) (*duel.Match, error)

	// ForceEnd removes the match; the caller has already checked moderator rights
	ForceEnd(ctx context.Context, key string) error

	// SetModifier stores a match- or round-scoped modifier for a participant
	SetModifier(ctx context.Context, key string, scope duel.ModifierScope, playerID string, value int) error

	// SweepExpired removes timed out matches and returns their keys
	SweepExpired(ctx context.Context, now time.Time) []string
}

// ChallengeInput contains data for starting a duel
type ChallengeInput struct {
	Key            string
	ChallengerID   string
	ChallengerName string
	OpponentID     string
	OpponentName   string
	BestOf         int
	Rules          duel.Rules
}

// DeclareInput contains a declaration request
type DeclareInput struct {
	Key      string
	CallerID string
	Stances  []string

	// AllowTriple is resolved by the caller from the player's roles
	AllowTriple bool
}

// CancelInput contains a cancel request
type CancelInput struct {
	Key      string
	CallerID string

	// MatchID pins the request to one match, so a confirmation that outlives
	// its match cannot cancel a newer one in the same slot. Empty cancels
	// whatever match holds the key.
	MatchID string
}

// Timeouts control when the sweep removes a match
type Timeouts struct {
	// Match is the absolute lifetime of any match
	Match time.Duration

	// Accept is how long a challenge may wait for acceptance
	Accept time.Duration

	// Idle is how long a declaring/picking match may go without activity
	Idle time.Duration
}

// DefaultTimeouts returns 24h total, 1h to accept, 2h idle
func DefaultTimeouts() Timeouts {
	return Timeouts{
		Match:  24 * time.Hour,
		Accept: time.Hour,
		Idle:   2 * time.Hour,
	}
}

type service struct {
	engine        *duel.Engine
	registry      *registry
	uuidGenerator uuid.Generator
	timeProvider  clock.TimeProvider
	timeouts      Timeouts
	eventBus      *events.Bus
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Engine        *duel.Engine       // Required
	UUIDGenerator uuid.Generator     // Optional, will use default if nil
	TimeProvider  clock.TimeProvider // Optional, will use system time if nil
	Timeouts      *Timeouts          // Optional, will use DefaultTimeouts if nil
	EventBus      *events.Bus        // Optional, events are dropped if nil
}

// NewService creates a new duel service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("config cannot be nil")
	}
	if cfg.Engine == nil {
		panic("engine is required")
	}

	svc := &service{
		engine:        cfg.Engine,
		registry:      newRegistry(),
		uuidGenerator: cfg.UUIDGenerator,
		timeProvider:  cfg.TimeProvider,
		timeouts:      DefaultTimeouts(),
		eventBus:      cfg.EventBus,
	}

	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGenerator()
	}
	if svc.timeProvider == nil {
		svc.timeProvider = clock.NewSystemTimeProvider()
	}
	if cfg.Timeouts != nil {
		svc.timeouts = *cfg.Timeouts
	}

	return svc
}

// Challenge creates a match waiting for the opponent to accept
func (s *service) Challenge(_ context.Context, input *ChallengeInput) (*duel.Match, error) {
	if input == nil {
		return nil, duelerr.InvalidArgument("input cannot be nil")
	}

	now := s.timeProvider.Now()
	m, err := s.engine.NewMatch(&duel.NewMatchInput{
		ID:         s.uuidGenerator.New(),
		Key:        input.Key,
		Challenger: duel.PlayerInput{ID: input.ChallengerID, DisplayName: input.ChallengerName},
		Opponent:   duel.PlayerInput{ID: input.OpponentID, DisplayName: input.OpponentName},
		BestOf:     input.BestOf,
		Rules:      input.Rules,
		CreatedAt:  now,
	})
	if err != nil {
		return nil, err
	}

	e, err := s.registry.create(m, now)
	if err != nil {
		return nil, err
	}

	log.Printf("Duel %s created in %s: %s vs %s, best of %d", m.ID, m.Key, m.Player1.ID, m.Player2.ID, m.BestOf)
	out := e.snapshot.Load().Clone()
	s.emit(&events.MatchEvent{Type: events.EventTypeMatchCreated, Key: out.Key, Match: out, ActorID: input.ChallengerID})
	return out.Clone(), nil
}

// Accept starts the match
func (s *service) Accept(_ context.Context, key, callerID string) (*duel.Match, error) {
	var out *duel.Match
	err := s.withMatch(key, func(e *entry) error {
		if err := s.engine.Accept(e.match, callerID); err != nil {
			return err
		}
		e.touch(s.timeProvider.Now())
		out = e.match.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Duel %s accepted by %s", out.ID, callerID)
	s.emit(&events.MatchEvent{Type: events.EventTypeMatchAccepted, Key: key, Match: out.Clone(), ActorID: callerID})
	return out, nil
}

// Declare records the caller's candidate stances
func (s *service) Declare(_ context.Context, input *DeclareInput) (*duel.Match, error) {
	if input == nil {
		return nil, duelerr.InvalidArgument("input cannot be nil")
	}

	var out *duel.Match
	err := s.withMatch(input.Key, func(e *entry) error {
		if err := s.engine.Declare(e.match, input.CallerID, input.Stances, input.AllowTriple); err != nil {
			return err
		}
		e.touch(s.timeProvider.Now())
		out = e.match.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Switch replaces one declared stance
func (s *service) Switch(_ context.Context, key, callerID, oldStance, newStance string) (*duel.Match, error) {
	var out *duel.Match
	err := s.withMatch(key, func(e *entry) error {
		if err := s.engine.Switch(e.match, callerID, oldStance, newStance); err != nil {
			return err
		}
		e.touch(s.timeProvider.Now())
		out = e.match.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Pick locks in a stance. Resolution happens inside the match lock, so two
// concurrent final picks can never both resolve the round.
func (s *service) Pick(_ context.Context, key, callerID, stanceName string) (*duel.Match, *duel.RoundResult, error) {
	var (
		out    *duel.Match
		result *duel.RoundResult
	)
	err := s.withMatch(key, func(e *entry) error {
		r, err := s.engine.Pick(e.match, callerID, stanceName)
		if err != nil {
			if duelerr.IsInvariant(err) {
				log.Printf("Duel %s: invariant violation while picking: %v", e.match.ID, err)
			}
			return err
		}

		e.touch(s.timeProvider.Now())
		out = e.match.Clone()
		if r == nil {
			return nil
		}

		result = r.Clone()
		log.Printf("Duel %s round %d won by %s (%d to %d, %d rerolls)",
			out.ID, r.Round, r.WinnerID, r.Final.Player1.Final, r.Final.Player2.Final, r.Rerolls)

		if e.match.Phase.Terminal() {
			e.removed = true
			s.registry.remove(e)
			log.Printf("Duel %s complete: %s wins %d-%d", out.ID, out.WinnerID, out.Player1.Score, out.Player2.Score)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	if result != nil {
		s.emit(&events.MatchEvent{Type: events.EventTypeRoundResolved, Key: key, Match: out.Clone(), Result: result.Clone(), ActorID: callerID})
		if out.Phase.Terminal() {
			s.emit(&events.MatchEvent{Type: events.EventTypeMatchCompleted, Key: key, Match: out.Clone(), Result: result.Clone(), ActorID: callerID})
		}
	}
	return out, result, nil
}

// Status returns the latest snapshot without taking the match lock
func (s *service) Status(_ context.Context, key string) (*duel.Match, error) {
	e, ok := s.registry.get(key)
	if !ok {
		return nil, noMatch(key)
	}
	snap := e.snapshot.Load()
	if snap == nil {
		return nil, noMatch(key)
	}
	return snap.Clone(), nil
}

// Cancel removes the match at a participant's request
func (s *service) Cancel(_ context.Context, input *CancelInput) (*duel.Match, error) {
	if input == nil {
		return nil, duelerr.InvalidArgument("input cannot be nil")
	}

	var ended *duel.Match
	err := s.withMatch(input.Key, func(e *entry) error {
		if input.MatchID != "" && e.match.ID != input.MatchID {
			return duelerr.NotFound("the duel this request was for has already ended").
				WithMeta("key", input.Key).
				WithMeta("match_id", input.MatchID)
		}
		if err := s.engine.CheckCancel(e.match, input.CallerID); err != nil {
			return err
		}
		e.removed = true
		s.registry.remove(e)
		ended = e.match.Clone()
		log.Printf("Duel %s cancelled by %s", e.match.ID, input.CallerID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.emit(&events.MatchEvent{Type: events.EventTypeMatchCancelled, Key: input.Key, Match: ended.Clone(), ActorID: input.CallerID})
	return ended, nil
}

// ForceEnd removes the match without a participant check
func (s *service) ForceEnd(_ context.Context, key string) error {
	var ended *duel.Match
	err := s.withMatch(key, func(e *entry) error {
		if err := s.engine.CheckForceEnd(e.match); err != nil {
			return err
		}
		e.removed = true
		s.registry.remove(e)
		ended = e.match.Clone()
		log.Printf("Duel %s force-ended", e.match.ID)
		return nil
	})
	if err != nil {
		return err
	}

	s.emit(&events.MatchEvent{Type: events.EventTypeMatchForceEnded, Key: key, Match: ended})
	return nil
}

// SetModifier stores a modifier for a participant
func (s *service) SetModifier(_ context.Context, key string, scope duel.ModifierScope, playerID string, value int) error {
	return s.withMatch(key, func(e *entry) error {
		if err := s.engine.SetModifier(e.match, scope, playerID, value); err != nil {
			return err
		}
		// moderator changes are not player activity and leave the idle clock alone
		e.publish()
		log.Printf("Duel %s: %s modifier for %s set to %+d", e.match.ID, scope, playerID, value)
		return nil
	})
}

// SweepExpired removes matches past any timeout. It walks a snapshot of the
// registry, so matches created or removed during the scan are simply skipped.
func (s *service) SweepExpired(ctx context.Context, now time.Time) []string {
	var (
		removed []string
		expired []*events.MatchEvent
	)
	for _, e := range s.registry.list() {
		if ctx.Err() != nil {
			break
		}

		e.mu.Lock()
		reason := ""
		if !e.removed {
			reason = s.expiryReason(e, now)
		}
		if reason != "" {
			e.removed = true
			s.registry.remove(e)
			removed = append(removed, e.key)
			expired = append(expired, &events.MatchEvent{
				Type:   events.EventTypeMatchExpired,
				Key:    e.key,
				Match:  e.match.Clone(),
				Reason: reason,
			})
			log.Printf("Duel %s in %s removed by sweep: %s", e.match.ID, e.key, reason)
		}
		e.mu.Unlock()
	}

	for _, evt := range expired {
		s.emit(evt)
	}
	return removed
}

// expiryReason returns why e should be swept, or "" to keep it. Caller holds e.mu.
func (s *service) expiryReason(e *entry, now time.Time) string {
	age := now.Sub(e.createdAt)
	switch {
	case s.timeouts.Match > 0 && age > s.timeouts.Match:
		return "match timeout"
	case e.match.Phase == duel.PhaseWaitingForAccept && s.timeouts.Accept > 0 && age > s.timeouts.Accept:
		return "challenge not accepted"
	case (e.match.Phase == duel.PhaseDeclaringStances || e.match.Phase == duel.PhasePickingStances) &&
		s.timeouts.Idle > 0 && now.Sub(e.lastActivity) > s.timeouts.Idle:
		return "inactive"
	}
	return ""
}

// withMatch runs fn holding the match's lock. A match removed while the caller
// waited for the lock reads as not found.
func (s *service) withMatch(key string, fn func(e *entry) error) error {
	e, ok := s.registry.get(key)
	if !ok {
		return noMatch(key)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.removed {
		return noMatch(key)
	}
	return fn(e)
}

// emit publishes evt. It is only called after the match lock is released, so a
// listener may call back into the service.
func (s *service) emit(evt *events.MatchEvent) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Emit(evt); err != nil {
		log.Printf("Duel event %s for %s: %v", evt.Type, evt.Key, err)
	}
}

func noMatch(key string) error {
	return duelerr.NotFound("there is no active duel here").WithMeta("key", key)
}
