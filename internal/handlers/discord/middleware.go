package discord

import (
	"fmt"
	"log"
	"runtime/debug"

	duelerr "github.com/Skelly0/DuelBot/internal/errors"
	"github.com/bwmarrin/discordgo"
)

// RecoverMiddleware wraps handler functions to recover from panics
func RecoverMiddleware(handlerName string, handler func(*discordgo.Session, *discordgo.InteractionCreate)) func(*discordgo.Session, *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		defer func() {
			if r := recover(); r != nil {
				logPanic(handlerName, r)
				respondWithError(s, i, "An unexpected error occurred. The duel state was not changed.")
			}
		}()

		handler(s, i)
	}
}

// logPanic logs a recovered panic; invariant violations carry their metadata
func logPanic(handlerName string, r any) {
	if err, ok := r.(error); ok && duelerr.IsInvariant(err) {
		log.Printf("INVARIANT VIOLATION in %s handler: %v (meta: %v)\nStack trace:\n%s",
			handlerName, err, duelerr.GetMeta(err), debug.Stack())
		return
	}
	log.Printf("PANIC in %s handler: %v\nStack trace:\n%s", handlerName, r, debug.Stack())
}

// respondWithError attempts to send an error message to the user
func respondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	content := fmt.Sprintf("❌ %s", message)

	// Try different response methods based on interaction state
	responses := []func() error{
		func() error {
			return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
				Type: discordgo.InteractionResponseChannelMessageWithSource,
				Data: &discordgo.InteractionResponseData{
					Content: content,
					Flags:   discordgo.MessageFlagsEphemeral,
				},
			})
		},
		func() error {
			_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
				Content: content,
				Flags:   discordgo.MessageFlagsEphemeral,
			})
			return err
		},
	}

	for _, respond := range responses {
		if err := respond(); err == nil {
			return
		}
	}

	log.Printf("Failed to send error response to user: %s", message)
}
