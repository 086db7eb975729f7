package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Skelly0/DuelBot/internal/clock"
	"github.com/Skelly0/DuelBot/internal/domain/duel"
	"github.com/Skelly0/DuelBot/internal/domain/settings"
	"github.com/Skelly0/DuelBot/internal/domain/stance"
	duelerr "github.com/Skelly0/DuelBot/internal/errors"
	duelsvc "github.com/Skelly0/DuelBot/internal/services/duel"
	settingssvc "github.com/Skelly0/DuelBot/internal/services/settings"
	"github.com/bwmarrin/discordgo"
)

// DefaultCancelConfirmTimeout is how long a cancel confirmation stays clickable
const DefaultCancelConfirmTimeout = 30 * time.Second

// responder is the part of *discordgo.Session the handler writes through
type responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Handler handles Discord interactions
type Handler struct {
	duelService     duelsvc.Service
	settingsService settingssvc.Service
	ring            *stance.Ring
	limits          duelsvc.ModifierLimits
	talentMarker    string
	talentBonus     int
	cancelTimeout   time.Duration
	timeProvider    clock.TimeProvider
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	DuelService     duelsvc.Service     // Required
	SettingsService settingssvc.Service // Required
	Ring            *stance.Ring        // Required

	// ModifierLimits defaults to duelsvc.DefaultModifierLimits
	ModifierLimits *duelsvc.ModifierLimits

	// TalentMarker and TalentBonus are copied into a match's rules when the
	// guild has the talent bonus enabled
	TalentMarker string
	TalentBonus  int

	CancelConfirmTimeout time.Duration      // Optional, defaults to 30s
	TimeProvider         clock.TimeProvider // Optional, will use system time if nil
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg == nil {
		panic("config cannot be nil")
	}
	if cfg.DuelService == nil {
		panic("duel service is required")
	}
	if cfg.SettingsService == nil {
		panic("settings service is required")
	}
	if cfg.Ring == nil {
		panic("stance ring is required")
	}

	h := &Handler{
		duelService:     cfg.DuelService,
		settingsService: cfg.SettingsService,
		ring:            cfg.Ring,
		limits:          duelsvc.DefaultModifierLimits(),
		talentMarker:    cfg.TalentMarker,
		talentBonus:     cfg.TalentBonus,
		cancelTimeout:   cfg.CancelConfirmTimeout,
		timeProvider:    cfg.TimeProvider,
	}
	if cfg.ModifierLimits != nil {
		h.limits = *cfg.ModifierLimits
	}
	if h.cancelTimeout <= 0 {
		h.cancelTimeout = DefaultCancelConfirmTimeout
	}
	if h.timeProvider == nil {
		h.timeProvider = clock.NewSystemTimeProvider()
	}
	return h
}

// RegisterCommands registers all slash commands with Discord
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	for _, cmd := range commandDefinitions() {
		_, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd)
		if err != nil {
			return fmt.Errorf("failed to create command %s: %w", cmd.Name, err)
		}
		log.Printf("Registered command: %s", cmd.Name)
	}

	return nil
}

// HandleInteraction handles all Discord interactions
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	h.dispatch(s, i)
}

func (h *Handler) dispatch(r responder, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		h.send(r, i, h.handleCommand(ctx, i))
	case discordgo.InteractionApplicationCommandAutocomplete:
		h.sendChoices(r, i, h.autocomplete(ctx, i))
	case discordgo.InteractionMessageComponent:
		h.send(r, i, h.handleComponent(ctx, i))
	}
}

// handleCommand routes slash commands
func (h *Handler) handleCommand(ctx context.Context, i *discordgo.InteractionCreate) *reply {
	data := i.ApplicationCommandData()

	switch data.Name {
	case "help":
		return &reply{embeds: []*discordgo.MessageEmbed{buildHelpEmbed(h.ring)}}
	case "rules":
		return &reply{embeds: []*discordgo.MessageEmbed{buildRulesEmbed(h.ring)}}
	case "challenge":
		return h.handleChallenge(ctx, i)
	case "accept":
		return h.handleAccept(ctx, i)
	case "declare":
		return h.handleDeclare(ctx, i)
	case "switch":
		return h.handleSwitch(ctx, i)
	case "pick":
		return h.handlePick(ctx, i)
	case "status":
		return h.handleStatus(ctx, i)
	case "cancel":
		return h.handleCancel(ctx, i)
	case "end":
		return h.handleEnd(ctx, i)
	case "modifier":
		return h.handleModifier(ctx, i)
	case "settings":
		return h.handleSettings(ctx, i)
	}

	log.Printf("Unknown command: %s", data.Name)
	return nil
}

// handleComponent handles message component interactions (buttons)
func (h *Handler) handleComponent(ctx context.Context, i *discordgo.InteractionCreate) *reply {
	customID := i.MessageComponentData().CustomID

	req, err := parseCancelCustomID(customID)
	if err != nil {
		log.Printf("Ignoring component %q: %v", customID, err)
		return nil
	}
	return h.handleCancelConfirm(ctx, i, req)
}

// reply is what an interaction produces. The reply answers the interaction;
// followups are posted to the channel after it.
type reply struct {
	content    string
	embeds     []*discordgo.MessageEmbed
	components []discordgo.MessageComponent
	ephemeral  bool

	// update edits the message the clicked component belongs to
	update bool

	followups []*reply
}

func ephemeral(format string, args ...any) *reply {
	return &reply{content: fmt.Sprintf(format, args...), ephemeral: true}
}

func (h *Handler) send(r responder, i *discordgo.InteractionCreate, rep *reply) {
	if rep == nil {
		return
	}

	responseType := discordgo.InteractionResponseChannelMessageWithSource
	if rep.update {
		responseType = discordgo.InteractionResponseUpdateMessage
	}

	data := &discordgo.InteractionResponseData{
		Content:    rep.content,
		Embeds:     rep.embeds,
		Components: rep.components,
	}
	if rep.ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	err := r.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: responseType,
		Data: data,
	})
	if err != nil {
		log.Printf("Failed to respond to interaction: %v", err)
		return
	}

	for _, f := range rep.followups {
		params := &discordgo.WebhookParams{
			Content:    f.content,
			Embeds:     f.embeds,
			Components: f.components,
		}
		if f.ephemeral {
			params.Flags = discordgo.MessageFlagsEphemeral
		}
		if _, err := r.FollowupMessageCreate(i.Interaction, false, params); err != nil {
			log.Printf("Failed to send followup message: %v", err)
		}
	}
}

func (h *Handler) sendChoices(r responder, i *discordgo.InteractionCreate, choices []*discordgo.ApplicationCommandOptionChoice) {
	err := r.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: choices,
		},
	})
	if err != nil {
		log.Printf("Failed to send autocomplete choices: %v", err)
	}
}

// errorReply turns a service error into an ephemeral message. Only coded
// user-facing errors show their message; anything else is logged.
func errorReply(action string, err error) *reply {
	if duelerr.IsUserFacing(err) {
		var appErr *duelerr.Error
		if errors.As(err, &appErr) {
			return ephemeral("❌ %s", appErr.Message)
		}
	}

	if duelerr.IsInvariant(err) {
		log.Printf("INVARIANT VIOLATION while handling %s: %v (meta: %v)", action, err, duelerr.GetMeta(err))
	} else {
		log.Printf("Error handling %s: %v", action, err)
	}
	return ephemeral("❌ Something went wrong, please try again.")
}

// caller returns the user who triggered the interaction
func caller(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// displayName prefers the server nickname, then the global name, then the username
func displayName(user *discordgo.User, member *discordgo.Member) string {
	if member != nil && member.Nick != "" {
		return member.Nick
	}
	if user == nil {
		return ""
	}
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return user.Username
}

func mention(userID string) string {
	return fmt.Sprintf("<@%s>", userID)
}

// matchKey binds a match to the channel it was started in
func matchKey(i *discordgo.InteractionCreate) string {
	return i.ChannelID
}

// guildSettings returns the guild's settings, or defaults outside a guild
func (h *Handler) guildSettings(ctx context.Context, i *discordgo.InteractionCreate) (*settings.Settings, error) {
	if i.GuildID == "" {
		return settings.Default(""), nil
	}
	return h.settingsService.Get(ctx, i.GuildID)
}

// isModerator grants moderator commands to members with Manage Messages and
// to users on the guild's moderator list
func (h *Handler) isModerator(ctx context.Context, i *discordgo.InteractionCreate) (bool, error) {
	if i.Member != nil && i.Member.Permissions&discordgo.PermissionManageMessages != 0 {
		return true, nil
	}
	s, err := h.guildSettings(ctx, i)
	if err != nil {
		return false, err
	}
	user := caller(i)
	return user != nil && s.IsModerator(user.ID), nil
}

// canManageSettings requires Manage Server (or Administrator)
func canManageSettings(i *discordgo.InteractionCreate) bool {
	if i.Member == nil {
		return false
	}
	perms := i.Member.Permissions
	return perms&discordgo.PermissionAdministrator != 0 || perms&discordgo.PermissionManageServer != 0
}

// talentRule builds the talent rule a new match captures
func (h *Handler) talentRule(s *settings.Settings) duel.TalentRule {
	return duel.TalentRule{
		Enabled: s.TalentBonusEnabled && h.talentMarker != "",
		Marker:  h.talentMarker,
		Bonus:   h.talentBonus,
	}
}
