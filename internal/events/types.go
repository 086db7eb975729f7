package events

import (
	"github.com/Skelly0/DuelBot/internal/domain/duel"
)

// EventType represents the type of duel event
type EventType string

// Event is the base interface for all duel events
type Event interface {
	GetType() EventType
	GetKey() string
	GetMatch() *duel.Match
}

// MatchEvent is published after a match changes. Match and Result are
// snapshots; listeners may keep them but must not expect them to update.
type MatchEvent struct {
	Type EventType
	Key  string

	Match  *duel.Match
	Result *duel.RoundResult // set for round_resolved and match_completed

	// ActorID is the user who caused the event, empty for sweeps
	ActorID string

	// Reason explains an expiry
	Reason string
}

func (e *MatchEvent) GetType() EventType    { return e.Type }
func (e *MatchEvent) GetKey() string        { return e.Key }
func (e *MatchEvent) GetMatch() *duel.Match { return e.Match }
