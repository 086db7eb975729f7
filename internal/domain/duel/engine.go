package duel

import (
	"slices"
	"time"

	"github.com/Skelly0/DuelBot/internal/dice"
	"github.com/Skelly0/DuelBot/internal/domain/stance"
	duelerr "github.com/Skelly0/DuelBot/internal/errors"
)

const (
	// MinDeclared is the regular declared-set size
	MinDeclared = 2

	// MaxDeclared is the declared-set size allowed with triple-stance permission
	MaxDeclared = 3
)

// Engine runs the match state machine. Every operation validates fully before
// it mutates, so a rejected call leaves the match untouched. An Engine holds no
// match state; callers serialize access to each Match themselves.
type Engine struct {
	ring   *stance.Ring
	roller dice.Roller
}

// EngineConfig holds the dependencies for the engine
type EngineConfig struct {
	Ring   *stance.Ring
	Roller dice.Roller
}

// NewEngine creates a new engine
func NewEngine(cfg *EngineConfig) *Engine {
	if cfg == nil {
		panic("config cannot be nil")
	}
	if cfg.Ring == nil {
		panic("stance ring is required")
	}
	if cfg.Roller == nil {
		panic("dice roller is required")
	}
	return &Engine{
		ring:   cfg.Ring,
		roller: cfg.Roller,
	}
}

// Ring returns the stance ring the engine resolves against
func (e *Engine) Ring() *stance.Ring {
	return e.ring
}

// NewMatchInput contains the data needed to start a match
type NewMatchInput struct {
	ID         string
	Key        string
	Challenger PlayerInput
	Opponent   PlayerInput
	BestOf     int
	Rules      Rules
	CreatedAt  time.Time
}

// PlayerInput identifies a player joining a match
type PlayerInput struct {
	ID          string
	DisplayName string
}

// NewMatch creates a match waiting for the opponent to accept
func (e *Engine) NewMatch(input *NewMatchInput) (*Match, error) {
	if input == nil {
		return nil, duelerr.InvalidArgument("input is required")
	}
	if input.Key == "" {
		return nil, duelerr.InvalidArgument("match key is required")
	}
	if input.Challenger.ID == "" || input.Opponent.ID == "" {
		return nil, duelerr.InvalidArgument("both players are required")
	}
	if input.Challenger.ID == input.Opponent.ID {
		return nil, duelerr.Validation("you cannot challenge yourself")
	}
	if !slices.Contains(ValidBestOf, input.BestOf) {
		return nil, duelerr.Validationf("best of must be 3, 5 or 7, got %d", input.BestOf)
	}

	return &Match{
		ID:  input.ID,
		Key: input.Key,
		Player1: &Player{
			ID:          input.Challenger.ID,
			DisplayName: input.Challenger.DisplayName,
		},
		Player2: &Player{
			ID:          input.Opponent.ID,
			DisplayName: input.Opponent.DisplayName,
		},
		BestOf:         input.BestOf,
		Phase:          PhaseWaitingForAccept,
		CurrentRound:   1,
		Rules:          input.Rules,
		LastPicked:     make(map[string]stance.Stance),
		MatchModifiers: make(map[string]int),
		RoundModifiers: make(map[string]int),
		History:        []*RoundResult{},
		CreatedAt:      input.CreatedAt,
	}, nil
}

// Accept moves a challenge into the declaring phase. Only the challenged player may accept.
func (e *Engine) Accept(m *Match, callerID string) error {
	if m.Phase != PhaseWaitingForAccept {
		return duelerr.Validation("this challenge is not waiting to be accepted")
	}
	if callerID != m.Player2.ID {
		return duelerr.Validation("only the challenged player can accept")
	}

	m.Phase = PhaseDeclaringStances
	return nil
}

// Declare records the caller's candidate stances for this round
func (e *Engine) Declare(m *Match, callerID string, raw []string, allowTriple bool) error {
	if m.Phase != PhaseDeclaringStances {
		return duelerr.Validationf("stances cannot be declared during %s", m.Phase.Label())
	}
	player := m.Participant(callerID)
	if player == nil {
		return duelerr.Validation("you are not in this match")
	}
	if player.HasDeclared() {
		return duelerr.Validation("you have already declared this round")
	}

	switch {
	case len(raw) < MinDeclared:
		return duelerr.Validationf("declare at least %d stances", MinDeclared)
	case len(raw) > MaxDeclared:
		return duelerr.Validationf("declare at most %d stances", MaxDeclared)
	case len(raw) == MaxDeclared && !allowTriple:
		return duelerr.Validation("you do not have permission to declare three stances")
	}

	declared := make([]stance.Stance, 0, len(raw))
	for _, name := range raw {
		s, ok := e.ring.Parse(name)
		if !ok {
			return duelerr.Validationf("invalid stance %q", name)
		}
		if slices.Contains(declared, s) {
			return duelerr.Validationf("stance %s declared twice", s)
		}
		if err := checkNoRepeat(m, player, s); err != nil {
			return err
		}
		declared = append(declared, s)
	}

	player.Declared = declared
	if m.Player1.HasDeclared() && m.Player2.HasDeclared() {
		m.Phase = PhasePickingStances
	}
	return nil
}

// Switch swaps one declared stance for another, once per round, before picking
func (e *Engine) Switch(m *Match, callerID, oldName, newName string) error {
	if !m.Rules.BaitSwitch {
		return duelerr.Validation("bait and switch is not enabled for this match")
	}
	if m.Phase != PhasePickingStances {
		return duelerr.Validationf("stances cannot be switched during %s", m.Phase.Label())
	}
	player := m.Participant(callerID)
	if player == nil {
		return duelerr.Validation("you are not in this match")
	}
	if player.HasPicked() {
		return duelerr.Validation("you cannot switch after picking")
	}
	if player.HasSwitched {
		return duelerr.Validation("you have already switched this round")
	}

	oldStance, ok := e.ring.Parse(oldName)
	if !ok || !player.HasDeclaredStance(oldStance) {
		return duelerr.Validationf("%q is not one of your declared stances", oldName)
	}
	newStance, ok := e.ring.Parse(newName)
	if !ok {
		return duelerr.Validationf("invalid stance %q", newName)
	}
	if player.HasDeclaredStance(newStance) {
		return duelerr.Validationf("%s is already declared", newStance)
	}
	if err := checkNoRepeat(m, player, newStance); err != nil {
		return err
	}

	i := slices.Index(player.Declared, oldStance)
	player.Declared[i] = newStance
	player.HasSwitched = true
	return nil
}

// Pick locks in the caller's stance. When it is the second pick the round is
// resolved before returning and the result is returned; otherwise result is nil.
func (e *Engine) Pick(m *Match, callerID, name string) (*RoundResult, error) {
	if m.Phase != PhasePickingStances {
		return nil, duelerr.Validationf("stances cannot be picked during %s", m.Phase.Label())
	}
	player := m.Participant(callerID)
	if player == nil {
		return nil, duelerr.Validation("you are not in this match")
	}
	if player.HasPicked() {
		return nil, duelerr.Validation("you have already picked this round")
	}
	picked, ok := e.ring.Parse(name)
	if !ok || !player.HasDeclaredStance(picked) {
		return nil, duelerr.Validationf("%q is not one of your declared stances", name)
	}

	opponent := m.Opponent(callerID)
	if !opponent.HasPicked() {
		player.Picked = picked
		return nil, nil
	}

	s1, s2 := picked, opponent.Picked
	if player == m.Player2 {
		s1, s2 = opponent.Picked, picked
	}
	result, err := e.playRound(m, s1, s2)
	if err != nil {
		return nil, err
	}

	e.completeRound(m, player, picked, result)
	return result, nil
}

// SetModifier stores a match- or round-scoped modifier for a participant.
// Range checks are policy and belong to the caller.
func (e *Engine) SetModifier(m *Match, scope ModifierScope, playerID string, value int) error {
	if m.Phase.Terminal() {
		return duelerr.Validation("the match is already complete")
	}
	if !m.IsParticipant(playerID) {
		return duelerr.Validation("that player is not in this match")
	}

	switch scope {
	case ScopeMatch:
		m.MatchModifiers[playerID] = value
	case ScopeRound:
		m.RoundModifiers[playerID] = value
	default:
		return duelerr.Validationf("unknown modifier scope %q", scope)
	}
	return nil
}

// CheckCancel validates that the caller may cancel the match
func (e *Engine) CheckCancel(m *Match, callerID string) error {
	if m.Phase.Terminal() {
		return duelerr.Validation("the match is already complete")
	}
	if !m.IsParticipant(callerID) {
		return duelerr.Validation("only a player in the match can cancel it")
	}
	return nil
}

// CheckForceEnd validates that the match can be ended by a moderator
func (e *Engine) CheckForceEnd(m *Match) error {
	if m.Phase.Terminal() {
		return duelerr.Validation("the match is already complete")
	}
	return nil
}

func checkNoRepeat(m *Match, p *Player, s stance.Stance) error {
	if !m.Rules.NoRepeat {
		return nil
	}
	if last, ok := m.LastPicked[p.ID]; ok && last == s {
		return duelerr.Validationf("no repeat: you picked %s last round", s)
	}
	return nil
}
