package duel

import (
	"strings"

	"github.com/Skelly0/DuelBot/internal/domain/stance"
)

// ModifierScope selects where a custom modifier is stored
type ModifierScope string

const (
	// ScopeMatch modifiers persist across rounds
	ScopeMatch ModifierScope = "match"

	// ScopeRound modifiers apply to the current round only
	ScopeRound ModifierScope = "round"
)

// ParseModifierScope accepts "match" or "round", case-insensitively
func ParseModifierScope(s string) (ModifierScope, bool) {
	switch ModifierScope(strings.ToLower(strings.TrimSpace(s))) {
	case ScopeMatch:
		return ScopeMatch, true
	case ScopeRound:
		return ScopeRound, true
	}
	return "", false
}

// ModifierBreakdown is one player's additive modifier for a round, by source
type ModifierBreakdown struct {
	Match  int
	Round  int
	Talent int
}

// Total is the unclamped sum of every source
func (b ModifierBreakdown) Total() int {
	return b.Match + b.Round + b.Talent
}

// ModifierFor aggregates the match, round and talent modifiers for a player
func (m *Match) ModifierFor(p *Player) ModifierBreakdown {
	return ModifierBreakdown{
		Match:  m.MatchModifiers[p.ID],
		Round:  m.RoundModifiers[p.ID],
		Talent: TalentBonus(m.Rules.Talent, p.DisplayName),
	}
}

// TalentBonus returns the rule's bonus when enabled and the name contains the marker
func TalentBonus(rule TalentRule, displayName string) int {
	if !rule.Enabled || rule.Marker == "" {
		return 0
	}
	if strings.Contains(strings.ToLower(displayName), strings.ToLower(rule.Marker)) {
		return rule.Bonus
	}
	return 0
}

// AdjacencyAdjustment is +1 for neighbouring stances, -1 for opposite ones, else 0
func AdjacencyAdjustment(ring *stance.Ring, own, opponent stance.Stance) int {
	switch {
	case ring.Adjacent(own, opponent):
		return 1
	case ring.Opposite(own, opponent):
		return -1
	}
	return 0
}
