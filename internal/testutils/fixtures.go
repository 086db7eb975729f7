package testutils

import (
	"time"

	"github.com/Skelly0/DuelBot/internal/domain/duel"
	"github.com/Skelly0/DuelBot/internal/domain/settings"
	"github.com/Skelly0/DuelBot/internal/domain/stance"
)

// TestMatchTime is the creation time fixtures use
var TestMatchTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// CreateTestPlayer creates a player with no round state
func CreateTestPlayer(id, name string) *duel.Player {
	return &duel.Player{
		ID:          id,
		DisplayName: name,
	}
}

// CreateTestMatch creates a best-of-3 match in the given phase.
// Player1 is the challenger.
func CreateTestMatch(key string, p1, p2 *duel.Player, phase duel.Phase) *duel.Match {
	return &duel.Match{
		ID:             "match-" + key,
		Key:            key,
		Player1:        p1,
		Player2:        p2,
		BestOf:         3,
		Phase:          phase,
		CurrentRound:   1,
		LastPicked:     make(map[string]stance.Stance),
		MatchModifiers: make(map[string]int),
		RoundModifiers: make(map[string]int),
		History:        []*duel.RoundResult{},
		CreatedAt:      TestMatchTime,
	}
}

// CreateTestRoundResult creates a neutral, untied round result won by winnerID
func CreateTestRoundResult(m *duel.Match, winnerID string, s1, s2 stance.Stance, roll1, roll2 int) *duel.RoundResult {
	side := func(roll int) duel.SideRoll {
		return duel.SideRoll{
			Advantage: stance.Neutral,
			Rolls:     []int{roll},
			Used:      0,
			Base:      roll,
			Final:     roll,
		}
	}
	return &duel.RoundResult{
		Round:         m.CurrentRound,
		Player1ID:     m.Player1.ID,
		Player2ID:     m.Player2.ID,
		Player1Stance: s1,
		Player2Stance: s2,
		Final: duel.RollTrace{
			Player1: side(roll1),
			Player2: side(roll2),
		},
		WinnerID: winnerID,
	}
}

// CreateTestSettings creates guild settings with the given moderators
func CreateTestSettings(guildID string, moderators ...string) *settings.Settings {
	s := settings.Default(guildID)
	s.Moderators = append(s.Moderators, moderators...)
	return s
}
