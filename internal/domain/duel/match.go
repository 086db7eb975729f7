package duel

import (
	"time"

	"github.com/Skelly0/DuelBot/internal/domain/stance"
)

// Phase is the match state machine position
type Phase string

const (
	PhaseWaitingForAccept Phase = "waiting_for_accept"
	PhaseDeclaringStances Phase = "declaring_stances"
	PhasePickingStances   Phase = "picking_stances"
	PhaseMatchComplete    Phase = "match_complete"
)

// Label renders the phase for display
func (p Phase) Label() string {
	switch p {
	case PhaseWaitingForAccept:
		return "Waiting For Accept"
	case PhaseDeclaringStances:
		return "Declaring Stances"
	case PhasePickingStances:
		return "Picking Stances"
	case PhaseMatchComplete:
		return "Match Complete"
	default:
		return string(p)
	}
}

// Terminal reports whether no further operation can change the match
func (p Phase) Terminal() bool {
	return p == PhaseMatchComplete
}

// ValidBestOf lists the accepted match formats
var ValidBestOf = []int{3, 5, 7}

// TalentRule grants a flat bonus to players whose display name carries a marker
type TalentRule struct {
	Enabled bool
	Marker  string
	Bonus   int
}

// Rules are the per-match rule flags chosen at challenge time
type Rules struct {
	NoRepeat     bool
	AdjacencyMod bool
	BaitSwitch   bool
	Talent       TalentRule
}

// Player is one side of a match
type Player struct {
	ID          string
	DisplayName string
	Declared    []stance.Stance
	Picked      stance.Stance
	HasSwitched bool
	Score       int
}

// HasDeclared reports whether the player declared this round
func (p *Player) HasDeclared() bool {
	return len(p.Declared) > 0
}

// HasPicked reports whether the player picked this round
func (p *Player) HasPicked() bool {
	return p.Picked != ""
}

// HasDeclaredStance reports whether s is in the player's declared set
func (p *Player) HasDeclaredStance(s stance.Stance) bool {
	for _, d := range p.Declared {
		if d == s {
			return true
		}
	}
	return false
}

func (p *Player) resetRound() {
	p.Declared = nil
	p.Picked = ""
	p.HasSwitched = false
}

func (p *Player) clone() *Player {
	out := *p
	out.Declared = append([]stance.Stance(nil), p.Declared...)
	return &out
}

// Match is a duel between two players bound to one registry key
type Match struct {
	ID           string
	Key          string
	Player1      *Player
	Player2      *Player
	BestOf       int
	Phase        Phase
	CurrentRound int
	Rules        Rules

	// LastPicked holds each player's previous pick, tracked only under NoRepeat
	LastPicked map[string]stance.Stance

	// MatchModifiers persist for the whole match
	MatchModifiers map[string]int

	// RoundModifiers are cleared whenever a round resolves
	RoundModifiers map[string]int

	History   []*RoundResult
	WinnerID  string
	CreatedAt time.Time
}

// WinsNeeded is ceil(BestOf/2)
func (m *Match) WinsNeeded() int {
	return (m.BestOf + 1) / 2
}

// Participant returns the player with the given id, or nil
func (m *Match) Participant(userID string) *Player {
	switch userID {
	case m.Player1.ID:
		return m.Player1
	case m.Player2.ID:
		return m.Player2
	}
	return nil
}

// Opponent returns the other player, or nil if userID is not in the match
func (m *Match) Opponent(userID string) *Player {
	switch userID {
	case m.Player1.ID:
		return m.Player2
	case m.Player2.ID:
		return m.Player1
	}
	return nil
}

// IsParticipant reports whether the user plays in this match
func (m *Match) IsParticipant(userID string) bool {
	return m.Participant(userID) != nil
}

// Winner returns the winning player once the match is complete
func (m *Match) Winner() *Player {
	if m.WinnerID == "" {
		return nil
	}
	return m.Participant(m.WinnerID)
}

// LastRound returns the most recent round result, or nil
func (m *Match) LastRound() *RoundResult {
	if len(m.History) == 0 {
		return nil
	}
	return m.History[len(m.History)-1]
}

// Clone returns a deep copy that shares nothing with m
func (m *Match) Clone() *Match {
	out := *m
	out.Player1 = m.Player1.clone()
	out.Player2 = m.Player2.clone()
	out.LastPicked = copyMap(m.LastPicked)
	out.MatchModifiers = copyMap(m.MatchModifiers)
	out.RoundModifiers = copyMap(m.RoundModifiers)
	out.History = make([]*RoundResult, len(m.History))
	for i, r := range m.History {
		out.History[i] = r.Clone()
	}
	return &out
}

func copyMap[V any](in map[string]V) map[string]V {
	out := make(map[string]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
