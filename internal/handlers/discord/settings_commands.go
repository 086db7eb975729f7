package discord

import (
	"context"
	"strings"

	"github.com/Skelly0/DuelBot/internal/domain/settings"
	"github.com/Skelly0/DuelBot/internal/handlers/discord/utils"
	"github.com/bwmarrin/discordgo"
)

func (h *Handler) handleSettings(ctx context.Context, i *discordgo.InteractionCreate) *reply {
	if i.GuildID == "" {
		return ephemeral("Settings can only be changed inside a server!")
	}
	if !canManageSettings(i) {
		return ephemeral("You need the Manage Server permission to change duel settings!")
	}

	path := strings.Join(utils.GetSubcommandPath(i), " ")

	var (
		updated *settings.Settings
		err     error
	)
	switch path {
	case "show":
		updated, err = h.settingsService.Get(ctx, i.GuildID)
	case "talent":
		updated, err = h.settingsService.ToggleTalentBonus(ctx, i.GuildID)
	case "triple-role add":
		updated, err = h.settingsService.AddTripleStanceRole(ctx, i.GuildID, utils.GetSnowflakeOption(i, "role"))
	case "triple-role remove":
		updated, err = h.settingsService.RemoveTripleStanceRole(ctx, i.GuildID, utils.GetSnowflakeOption(i, "role"))
	case "moderator add":
		updated, err = h.settingsService.AddModerator(ctx, i.GuildID, utils.GetSnowflakeOption(i, "user"))
	case "moderator remove":
		updated, err = h.settingsService.RemoveModerator(ctx, i.GuildID, utils.GetSnowflakeOption(i, "user"))
	default:
		return ephemeral("Unknown settings command: %s", path)
	}
	if err != nil {
		return errorReply("settings "+path, err)
	}

	return &reply{
		embeds:    []*discordgo.MessageEmbed{buildSettingsEmbed(updated, h.talentMarker, h.talentBonus)},
		ephemeral: true,
	}
}
