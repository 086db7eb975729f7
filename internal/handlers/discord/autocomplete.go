package discord

import (
	"context"

	"github.com/Skelly0/DuelBot/internal/domain/stance"
	"github.com/Skelly0/DuelBot/internal/handlers/discord/utils"
	"github.com/bwmarrin/discordgo"
)

// maxChoices is Discord's limit on autocomplete suggestions
const maxChoices = 25

// autocomplete suggests stance names for the option being typed. Options
// that must name one of the caller's declared stances are narrowed to those
// when a match is running here.
func (h *Handler) autocomplete(ctx context.Context, i *discordgo.InteractionCreate) []*discordgo.ApplicationCommandOptionChoice {
	focused := utils.GetFocusedOption(i)
	if focused == nil {
		return nil
	}
	typed, _ := focused.Value.(string)

	candidates := h.ring.Matching(typed)

	data := i.ApplicationCommandData()
	if (data.Name == "pick" && focused.Name == "choice") || (data.Name == "switch" && focused.Name == "old") {
		candidates = h.declaredMatching(ctx, i, candidates)
	}

	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(candidates))
	for _, s := range candidates {
		if len(choices) == maxChoices {
			break
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  string(s),
			Value: string(s),
		})
	}
	return choices
}

// declaredMatching keeps the candidates the caller has declared this round,
// falling back to all candidates when there is nothing to narrow by
func (h *Handler) declaredMatching(ctx context.Context, i *discordgo.InteractionCreate, candidates []stance.Stance) []stance.Stance {
	user := caller(i)
	if user == nil {
		return candidates
	}

	m, err := h.duelService.Status(ctx, matchKey(i))
	if err != nil {
		return candidates
	}
	player := m.Participant(user.ID)
	if player == nil || !player.HasDeclared() {
		return candidates
	}

	var out []stance.Stance
	for _, s := range candidates {
		if player.HasDeclaredStance(s) {
			out = append(out, s)
		}
	}
	return out
}
