package duel

import (
	"github.com/Skelly0/DuelBot/internal/dice"
	"github.com/Skelly0/DuelBot/internal/domain/stance"
	duelerr "github.com/Skelly0/DuelBot/internal/errors"
)

// DieSides is the die every duel roll uses
const DieSides = 6

// maxTieRerolls bounds the reroll loop against a roller that can tie forever
const maxTieRerolls = 1000

// SideRoll is one player's roll in one iteration of a round
type SideRoll struct {
	Advantage stance.Advantage
	Rolls     []int

	// Used indexes the kept die for advantage/disadvantage, dice.UnusedIndex otherwise
	Used int

	Base       int
	Adjustment int
	Modifier   int
	Final      int
}

// RollTrace holds both players' rolls for one iteration
type RollTrace struct {
	Player1 SideRoll
	Player2 SideRoll
}

// RoundResult is the record of a resolved round
type RoundResult struct {
	Round         int
	Player1ID     string
	Player2ID     string
	Player1Stance stance.Stance
	Player2Stance stance.Stance

	// Final is the authoritative (tie-breaking) iteration
	Final RollTrace

	// Initial is the first, discarded iteration; nil unless the round tied
	Initial *RollTrace
	Rerolls int

	WinnerID         string
	AdjacencyApplied bool
	ModifierApplied  bool
}

// Clone returns a deep copy of the result
func (r *RoundResult) Clone() *RoundResult {
	out := *r
	out.Final = r.Final.clone()
	if r.Initial != nil {
		initial := r.Initial.clone()
		out.Initial = &initial
	}
	return &out
}

func (t RollTrace) clone() RollTrace {
	t.Player1.Rolls = append([]int(nil), t.Player1.Rolls...)
	t.Player2.Rolls = append([]int(nil), t.Player2.Rolls...)
	return t
}

// RollFor rolls one d6 for neutral, or two keeping the higher/lower die for advantage/disadvantage
func RollFor(roller dice.Roller, adv stance.Advantage) (*dice.RollResult, error) {
	switch adv {
	case stance.Neutral:
		return roller.Roll(1, DieSides)
	case stance.Advantaged:
		return roller.RollWithAdvantage(DieSides)
	case stance.Disadvantaged:
		return roller.RollWithDisadvantage(DieSides)
	}
	return nil, duelerr.InvalidArgumentf("unknown advantage state %q", adv)
}

// sideSetup is what stays fixed for a player across tie rerolls
type sideSetup struct {
	advantage  stance.Advantage
	adjustment int
	modifier   int
}

func (e *Engine) rollSide(setup sideSetup) (SideRoll, error) {
	result, err := RollFor(e.roller, setup.advantage)
	if err != nil {
		return SideRoll{}, duelerr.Wrap(err, "failed to roll dice")
	}
	return SideRoll{
		Advantage:  setup.advantage,
		Rolls:      result.Rolls,
		Used:       result.Used,
		Base:       result.Total,
		Adjustment: setup.adjustment,
		Modifier:   setup.modifier,
		Final:      result.Total + setup.adjustment + setup.modifier,
	}, nil
}

// playRound rolls a round for the given stances without touching the match
func (e *Engine) playRound(m *Match, s1, s2 stance.Stance) (*RoundResult, error) {
	adv1, adv2 := e.ring.Relationship(s1, s2)
	side1 := sideSetup{advantage: adv1, modifier: m.ModifierFor(m.Player1).Total()}
	side2 := sideSetup{advantage: adv2, modifier: m.ModifierFor(m.Player2).Total()}
	if m.Rules.AdjacencyMod {
		side1.adjustment = AdjacencyAdjustment(e.ring, s1, s2)
		side2.adjustment = AdjacencyAdjustment(e.ring, s2, s1)
	}

	result := &RoundResult{
		Round:            m.CurrentRound,
		Player1ID:        m.Player1.ID,
		Player2ID:        m.Player2.ID,
		Player1Stance:    s1,
		Player2Stance:    s2,
		AdjacencyApplied: side1.adjustment != 0 || side2.adjustment != 0,
		ModifierApplied:  side1.modifier != 0 || side2.modifier != 0,
	}

	for attempt := 0; attempt < maxTieRerolls; attempt++ {
		roll1, err := e.rollSide(side1)
		if err != nil {
			return nil, err
		}
		roll2, err := e.rollSide(side2)
		if err != nil {
			return nil, err
		}

		trace := RollTrace{Player1: roll1, Player2: roll2}
		if roll1.Final == roll2.Final {
			if result.Initial == nil {
				result.Initial = &trace
			}
			continue
		}

		result.Final = trace
		result.Rerolls = attempt
		result.WinnerID = m.Player1.ID
		if roll2.Final > roll1.Final {
			result.WinnerID = m.Player2.ID
		}
		return result, nil
	}

	return nil, duelerr.Invariantf("round %d still tied after %d rerolls", m.CurrentRound, maxTieRerolls).
		WithMeta("match_id", m.ID)
}

// completeRound applies a played round to the match, recording picker's pick
// last. The opponent must already have picked and the result must match both
// picks; anything else is a bug in the calling sequence and leaves m untouched.
func (e *Engine) completeRound(m *Match, picker *Player, picked stance.Stance, result *RoundResult) {
	opponent := m.Opponent(picker.ID)
	if opponent == nil || picker.HasPicked() || !opponent.HasPicked() {
		panic(duelerr.Invariantf("resolving round %d without both picks", m.CurrentRound).WithMeta("match_id", m.ID))
	}

	s1, s2 := picked, opponent.Picked
	if picker == m.Player2 {
		s1, s2 = opponent.Picked, picked
	}
	if s1 != result.Player1Stance || s2 != result.Player2Stance {
		panic(duelerr.Invariantf("round %d result does not match the picks", m.CurrentRound).WithMeta("match_id", m.ID))
	}

	winner := m.Participant(result.WinnerID)
	if winner == nil {
		panic(duelerr.Invariantf("round %d winner %q is not in the match", m.CurrentRound, result.WinnerID))
	}

	picker.Picked = picked
	winner.Score++

	if m.Rules.NoRepeat {
		m.LastPicked[m.Player1.ID] = m.Player1.Picked
		m.LastPicked[m.Player2.ID] = m.Player2.Picked
	}
	m.RoundModifiers = make(map[string]int)
	m.History = append(m.History, result)

	if winner.Score >= m.WinsNeeded() {
		m.Phase = PhaseMatchComplete
		m.WinnerID = winner.ID
		return
	}

	m.CurrentRound++
	m.Player1.resetRound()
	m.Player2.resetRound()
	m.Phase = PhaseDeclaringStances
}
