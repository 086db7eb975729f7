package discord

import (
	"fmt"
	"log"

	"github.com/Skelly0/DuelBot/internal/events"
	"github.com/bwmarrin/discordgo"
)

// channelMessenger is the part of *discordgo.Session the announcer needs
type channelMessenger interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// ExpiryAnnouncer posts to the duel's channel when the sweep removes it.
// Other removals already answer the interaction that caused them.
type ExpiryAnnouncer struct {
	messenger channelMessenger
}

// NewExpiryAnnouncer creates an announcer that sends through messenger
func NewExpiryAnnouncer(messenger channelMessenger) *ExpiryAnnouncer {
	if messenger == nil {
		panic("messenger is required")
	}
	return &ExpiryAnnouncer{messenger: messenger}
}

// Register subscribes the announcer to bus
func (a *ExpiryAnnouncer) Register(bus *events.Bus) {
	bus.Subscribe(events.EventTypeMatchExpired, a)
}

func (a *ExpiryAnnouncer) ID() string    { return "discord-expiry-announcer" }
func (a *ExpiryAnnouncer) Priority() int { return 500 }

// HandleEvent sends the expiry notice. The match key is the channel id.
func (a *ExpiryAnnouncer) HandleEvent(event events.Event) error {
	evt, ok := event.(*events.MatchEvent)
	if !ok || evt.Type != events.EventTypeMatchExpired || evt.Match == nil {
		return nil
	}

	embed := buildEndedEmbed(evt.Match, "⌛ Duel Expired", "has timed out")
	if evt.Reason != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Reason: %s", evt.Reason)}
	}

	if _, err := a.messenger.ChannelMessageSendEmbed(evt.Key, embed); err != nil {
		log.Printf("Failed to announce expired duel %s in %s: %v", evt.Match.ID, evt.Key, err)
		return err
	}
	return nil
}
