package discord

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	duelerr "github.com/Skelly0/DuelBot/internal/errors"
	duelsvc "github.com/Skelly0/DuelBot/internal/services/duel"
	"github.com/bwmarrin/discordgo"
)

const cancelCustomIDPrefix = "duel_cancel"

type cancelAction string

const (
	cancelConfirm cancelAction = "confirm"
	cancelKeep    cancelAction = "keep"
)

// cancelRequest is carried in the confirmation buttons' custom ids as
// "duel_cancel:<action>:<initiator>:<match id>:<issued unix millis>".
// Custom ids are capped at 100 characters; snowflakes and uuids fit.
type cancelRequest struct {
	Action      cancelAction
	InitiatorID string
	MatchID     string
	IssuedAt    time.Time
}

func (r cancelRequest) customID(action cancelAction) string {
	return fmt.Sprintf("%s:%s:%s:%s:%d", cancelCustomIDPrefix, action, r.InitiatorID, r.MatchID, r.IssuedAt.UnixMilli())
}

func parseCancelCustomID(customID string) (cancelRequest, error) {
	parts := strings.Split(customID, ":")
	if len(parts) != 5 || parts[0] != cancelCustomIDPrefix {
		return cancelRequest{}, fmt.Errorf("not a cancel confirmation")
	}

	action := cancelAction(parts[1])
	if action != cancelConfirm && action != cancelKeep {
		return cancelRequest{}, fmt.Errorf("unknown cancel action %q", parts[1])
	}
	if parts[2] == "" {
		return cancelRequest{}, fmt.Errorf("missing initiator")
	}
	if parts[3] == "" {
		return cancelRequest{}, fmt.Errorf("missing match id")
	}

	millis, err := strconv.ParseInt(parts[4], 10, 64)
	if err != nil {
		return cancelRequest{}, fmt.Errorf("invalid issue time: %w", err)
	}

	return cancelRequest{
		Action:      action,
		InitiatorID: parts[2],
		MatchID:     parts[3],
		IssuedAt:    time.UnixMilli(millis).UTC(),
	}, nil
}

func buildCancelComponents(req cancelRequest) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Yes, Cancel Match",
					Style:    discordgo.DangerButton,
					CustomID: req.customID(cancelConfirm),
				},
				discordgo.Button{
					Label:    "No, Keep Playing",
					Style:    discordgo.SecondaryButton,
					CustomID: req.customID(cancelKeep),
				},
			},
		},
	}
}

// closedPrompt replaces the confirmation prompt and removes its buttons
func closedPrompt(content string, embeds ...*discordgo.MessageEmbed) *reply {
	return &reply{
		content:    content,
		embeds:     embeds,
		components: []discordgo.MessageComponent{},
		update:     true,
	}
}

func (h *Handler) handleCancelConfirm(ctx context.Context, i *discordgo.InteractionCreate, req cancelRequest) *reply {
	clicker := caller(i)
	if clicker == nil || clicker.ID != req.InitiatorID {
		return ephemeral("Only the person who initiated the cancel can confirm!")
	}

	if h.timeProvider.Now().Sub(req.IssuedAt) > h.cancelTimeout {
		return closedPrompt("⌛ This cancel request has expired. The match continues.")
	}

	if req.Action == cancelKeep {
		return closedPrompt("Match continues!")
	}

	m, err := h.duelService.Cancel(ctx, &duelsvc.CancelInput{
		Key:      matchKey(i),
		CallerID: req.InitiatorID,
		MatchID:  req.MatchID,
	})
	if err != nil {
		r := errorReply("cancel", err)
		if duelerr.IsNotFound(err) {
			// the duel is gone, so the prompt's buttons are dead too
			return closedPrompt(r.content)
		}
		return r
	}

	log.Printf("Match %s cancelled by %s", m.ID, req.InitiatorID)
	return closedPrompt("", buildEndedEmbed(m, "❌ Match Cancelled", "was cancelled"))
}
