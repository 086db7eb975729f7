package discord

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Skelly0/DuelBot/internal/domain/duel"
	"github.com/Skelly0/DuelBot/internal/domain/stance"
	"github.com/Skelly0/DuelBot/internal/handlers/discord/utils"
	duelsvc "github.com/Skelly0/DuelBot/internal/services/duel"
	"github.com/bwmarrin/discordgo"
)

func (h *Handler) handleChallenge(ctx context.Context, i *discordgo.InteractionCreate) *reply {
	challenger := caller(i)
	opponent, opponentMember := utils.GetUserOption(i, "opponent")
	if opponent == nil {
		return ephemeral("You must specify an opponent to challenge!")
	}
	if opponent.Bot {
		return ephemeral("You cannot challenge a bot!")
	}

	bestOf := utils.GetIntOption(i, "best_of", 3)

	guildSettings, err := h.guildSettings(ctx, i)
	if err != nil {
		return errorReply("challenge", err)
	}

	m, err := h.duelService.Challenge(ctx, &duelsvc.ChallengeInput{
		Key:            matchKey(i),
		ChallengerID:   challenger.ID,
		ChallengerName: displayName(challenger, i.Member),
		OpponentID:     opponent.ID,
		OpponentName:   displayName(opponent, opponentMember),
		BestOf:         bestOf,
		Rules: duel.Rules{
			NoRepeat:     utils.GetBoolOption(i, "no_repeat"),
			AdjacencyMod: utils.GetBoolOption(i, "adjacency_mod"),
			BaitSwitch:   utils.GetBoolOption(i, "bait_switch"),
			Talent:       h.talentRule(guildSettings),
		},
	})
	if err != nil {
		return errorReply("challenge", err)
	}

	return &reply{
		content: mention(m.Player2.ID),
		embeds:  []*discordgo.MessageEmbed{buildChallengeEmbed(m)},
	}
}

func (h *Handler) handleAccept(ctx context.Context, i *discordgo.InteractionCreate) *reply {
	m, err := h.duelService.Accept(ctx, matchKey(i), caller(i).ID)
	if err != nil {
		return errorReply("accept", err)
	}
	return &reply{embeds: []*discordgo.MessageEmbed{buildAcceptedEmbed(m)}}
}

func (h *Handler) handleDeclare(ctx context.Context, i *discordgo.InteractionCreate) *reply {
	user := caller(i)

	var names []string
	for _, opt := range []string{"first", "second", "third"} {
		if v := utils.GetStringOption(i, opt); v != "" {
			names = append(names, v)
		}
	}

	guildSettings, err := h.guildSettings(ctx, i)
	if err != nil {
		return errorReply("declare", err)
	}
	allowTriple := i.Member != nil && guildSettings.CanDeclareThree(i.Member.Roles)

	m, err := h.duelService.Declare(ctx, &duelsvc.DeclareInput{
		Key:         matchKey(i),
		CallerID:    user.ID,
		Stances:     names,
		AllowTriple: allowTriple,
	})
	if err != nil {
		return errorReply("declare", err)
	}

	player := m.Participant(user.ID)
	rep := ephemeral("✅ You secretly declared: %s", joinStances(player.Declared, ", "))
	rep.followups = append(rep.followups, &reply{
		content: fmt.Sprintf("🔒 **%s** has locked in their stance declaration!", player.DisplayName),
	})
	if m.Phase == duel.PhasePickingStances {
		rep.followups = append(rep.followups, &reply{
			embeds: []*discordgo.MessageEmbed{buildDeclarationsEmbed(m)},
		})
	}
	return rep
}

func (h *Handler) handleSwitch(ctx context.Context, i *discordgo.InteractionCreate) *reply {
	user := caller(i)
	oldName := utils.GetStringOption(i, "old")
	newName := utils.GetStringOption(i, "new")

	m, err := h.duelService.Switch(ctx, matchKey(i), user.ID, oldName, newName)
	if err != nil {
		return errorReply("switch", err)
	}

	return &reply{
		content: fmt.Sprintf("🔄 **%s** switched **%s** → **%s**",
			m.Participant(user.ID).DisplayName, h.canonical(oldName), h.canonical(newName)),
	}
}

func (h *Handler) handlePick(ctx context.Context, i *discordgo.InteractionCreate) *reply {
	user := caller(i)
	choice := utils.GetStringOption(i, "choice")

	m, result, err := h.duelService.Pick(ctx, matchKey(i), user.ID, choice)
	if err != nil {
		return errorReply("pick", err)
	}

	rep := ephemeral("✅ You picked **%s**", h.canonical(choice))
	rep.followups = append(rep.followups, &reply{
		content: fmt.Sprintf("🔒 **%s** has locked in their choice!", m.Participant(user.ID).DisplayName),
	})
	if result == nil {
		return rep
	}

	rep.followups = append(rep.followups, &reply{
		embeds: []*discordgo.MessageEmbed{buildRoundEmbed(m, result)},
	})
	if m.Phase == duel.PhaseMatchComplete {
		rep.followups = append(rep.followups, &reply{
			embeds: []*discordgo.MessageEmbed{buildMatchCompleteEmbed(m)},
		})
	} else {
		rep.followups = append(rep.followups, &reply{
			embeds: []*discordgo.MessageEmbed{buildNextRoundEmbed(m)},
		})
	}
	return rep
}

func (h *Handler) handleStatus(ctx context.Context, i *discordgo.InteractionCreate) *reply {
	m, err := h.duelService.Status(ctx, matchKey(i))
	if err != nil {
		return errorReply("status", err)
	}
	return &reply{embeds: []*discordgo.MessageEmbed{buildStatusEmbed(m)}}
}

func (h *Handler) handleCancel(ctx context.Context, i *discordgo.InteractionCreate) *reply {
	user := caller(i)

	m, err := h.duelService.Status(ctx, matchKey(i))
	if err != nil {
		return errorReply("cancel", err)
	}
	if !m.IsParticipant(user.ID) {
		return ephemeral("Only match participants can cancel!")
	}

	req := cancelRequest{InitiatorID: user.ID, MatchID: m.ID, IssuedAt: h.timeProvider.Now()}
	return &reply{
		content: fmt.Sprintf("Are you sure you want to cancel the match between %s and %s?",
			m.Player1.DisplayName, m.Player2.DisplayName),
		components: buildCancelComponents(req),
		ephemeral:  true,
	}
}

func (h *Handler) handleEnd(ctx context.Context, i *discordgo.InteractionCreate) *reply {
	allowed, err := h.isModerator(ctx, i)
	if err != nil {
		return errorReply("end", err)
	}
	if !allowed {
		return ephemeral("Only moderators can force-end matches!")
	}

	m, err := h.duelService.Status(ctx, matchKey(i))
	if err != nil {
		return errorReply("end", err)
	}
	if err := h.duelService.ForceEnd(ctx, matchKey(i)); err != nil {
		return errorReply("end", err)
	}

	log.Printf("Match %s force-ended by %s", m.ID, caller(i).ID)
	return &reply{embeds: []*discordgo.MessageEmbed{buildEndedEmbed(m, "🛑 Match Ended", "was ended by a moderator")}}
}

func (h *Handler) handleModifier(ctx context.Context, i *discordgo.InteractionCreate) *reply {
	allowed, err := h.isModerator(ctx, i)
	if err != nil {
		return errorReply("modifier", err)
	}
	if !allowed {
		return ephemeral("Only moderators can set modifiers!")
	}

	scope, ok := duel.ParseModifierScope(utils.GetStringOption(i, "scope"))
	if !ok {
		return ephemeral("Scope must be `match` or `round`!")
	}
	player, _ := utils.GetUserOption(i, "player")
	if player == nil {
		return ephemeral("You must specify a player!")
	}
	value := utils.GetIntOption(i, "value", 0)

	m, err := h.duelService.Status(ctx, matchKey(i))
	if err != nil {
		return errorReply("modifier", err)
	}
	if err := duelsvc.CheckModifierPolicy(m, value, h.limits); err != nil {
		return errorReply("modifier", err)
	}
	if err := h.duelService.SetModifier(ctx, matchKey(i), scope, player.ID, value); err != nil {
		return errorReply("modifier", err)
	}

	name := player.ID
	if p := m.Participant(player.ID); p != nil {
		name = p.DisplayName
	}
	scopeLabel := "Match"
	if scope == duel.ScopeRound {
		scopeLabel = "Round"
	}
	return &reply{content: fmt.Sprintf("🔧 %s modifier for **%s** set to **%+d**", scopeLabel, name, value)}
}

// canonical returns the ring spelling of a stance name, or the input unchanged
func (h *Handler) canonical(name string) string {
	if s, ok := h.ring.Parse(name); ok {
		return string(s)
	}
	return strings.TrimSpace(name)
}

func joinStances(stances []stance.Stance, sep string) string {
	parts := make([]string, len(stances))
	for i, s := range stances {
		parts[i] = fmt.Sprintf("**%s**", s)
	}
	return strings.Join(parts, sep)
}
