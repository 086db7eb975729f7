package duel

import (
	"github.com/Skelly0/DuelBot/internal/domain/duel"
	duelerr "github.com/Skelly0/DuelBot/internal/errors"
)

// ModifierLimits bounds the values moderators may assign
type ModifierLimits struct {
	Min int
	Max int
}

// DefaultModifierLimits returns -3..+3
func DefaultModifierLimits() ModifierLimits {
	return ModifierLimits{Min: -3, Max: 3}
}

// CheckModifierPolicy applies the moderator rules the engine leaves to callers:
// the value must be within limits and the first stances of the match must have
// been declared.
func CheckModifierPolicy(m *duel.Match, value int, limits ModifierLimits) error {
	if value < limits.Min || value > limits.Max {
		return duelerr.Validationf("modifier must be between %+d and %+d", limits.Min, limits.Max)
	}
	if m.Phase.Terminal() {
		return duelerr.Validation("the match is already complete")
	}
	if !declarationsStarted(m) {
		return duelerr.Validation("modifiers can only be set once the first stances have been declared")
	}
	return nil
}

func declarationsStarted(m *duel.Match) bool {
	if m.Phase == duel.PhaseWaitingForAccept {
		return false
	}
	if len(m.History) > 0 {
		return true
	}
	return (m.Player1 != nil && m.Player1.HasDeclared()) || (m.Player2 != nil && m.Player2.HasDeclared())
}
