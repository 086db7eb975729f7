// Package settings holds the per-guild duel settings moderators can change at runtime.
package settings

import (
	"slices"
	"time"
)

// Settings is the persisted settings blob for one guild
type Settings struct {
	GuildID            string    `json:"guild_id"`
	TalentBonusEnabled bool      `json:"talent_bonus_enabled"`
	TripleStanceRoles  []string  `json:"triple_stance_roles"`
	Moderators         []string  `json:"moderators"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Default returns the settings a guild starts with
func Default(guildID string) *Settings {
	return &Settings{
		GuildID:           guildID,
		TripleStanceRoles: []string{},
		Moderators:        []string{},
	}
}

// CanDeclareThree reports whether any of the member's roles grants triple stances
func (s *Settings) CanDeclareThree(roleIDs []string) bool {
	for _, role := range roleIDs {
		if slices.Contains(s.TripleStanceRoles, role) {
			return true
		}
	}
	return false
}

// IsModerator reports whether the user is on the moderator list
func (s *Settings) IsModerator(userID string) bool {
	return slices.Contains(s.Moderators, userID)
}

// Clone returns a deep copy
func (s *Settings) Clone() *Settings {
	out := *s
	out.TripleStanceRoles = append([]string{}, s.TripleStanceRoles...)
	out.Moderators = append([]string{}, s.Moderators...)
	return &out
}
