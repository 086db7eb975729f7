package discord

import (
	"errors"
	"testing"

	"github.com/Skelly0/DuelBot/internal/domain/duel"
	"github.com/Skelly0/DuelBot/internal/events"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentEmbed struct {
	channelID string
	embed     *discordgo.MessageEmbed
}

type fakeMessenger struct {
	sent []sentEmbed
	err  error
}

func (f *fakeMessenger) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, sentEmbed{channelID: channelID, embed: embed})
	return &discordgo.Message{ChannelID: channelID}, nil
}

func TestExpiryAnnouncer_PostsToTheMatchChannel(t *testing.T) {
	messenger := &fakeMessenger{}
	bus := events.NewBus()
	NewExpiryAnnouncer(messenger).Register(bus)

	m := newTestMatch(duel.PhaseDeclaringStances)
	require.NoError(t, bus.Emit(&events.MatchEvent{
		Type:   events.EventTypeMatchExpired,
		Key:    m.Key,
		Match:  m,
		Reason: "inactive",
	}))

	require.Len(t, messenger.sent, 1)
	assert.Equal(t, m.Key, messenger.sent[0].channelID)
	assert.Equal(t, "⌛ Duel Expired", messenger.sent[0].embed.Title)
	assert.Equal(t, "Match between Alice and Bob has timed out.", messenger.sent[0].embed.Description)
	assert.Equal(t, "Reason: inactive", messenger.sent[0].embed.Footer.Text)
}

func TestExpiryAnnouncer_IgnoresOtherEvents(t *testing.T) {
	messenger := &fakeMessenger{}
	a := NewExpiryAnnouncer(messenger)

	m := newTestMatch(duel.PhaseDeclaringStances)
	require.NoError(t, a.HandleEvent(&events.MatchEvent{Type: events.EventTypeMatchCancelled, Key: m.Key, Match: m}))
	assert.Empty(t, messenger.sent)
}

func TestExpiryAnnouncer_ReturnsSendErrors(t *testing.T) {
	a := NewExpiryAnnouncer(&fakeMessenger{err: errors.New("missing access")})

	m := newTestMatch(duel.PhaseDeclaringStances)
	err := a.HandleEvent(&events.MatchEvent{Type: events.EventTypeMatchExpired, Key: m.Key, Match: m})
	assert.EqualError(t, err, "missing access")
}
