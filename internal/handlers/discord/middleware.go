package discord

import (
	"fmt"
	"log"
	"runtime/debug"

	"github.com/bwmarrin/discordgo"
)

// Responder is the part of a Discord session the handler answers through
type Responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

// RecoverMiddleware wraps handler functions to recover from panics
func RecoverMiddleware(handlerName string, handler func(Responder, *discordgo.InteractionCreate)) func(Responder, *discordgo.InteractionCreate) {
	return func(s Responder, i *discordgo.InteractionCreate) {
		defer func() {
			if r := recover(); r != nil {
				// Log the panic with stack trace
				log.Printf("PANIC in %s handler: %v\nStack trace:\n%s", handlerName, r, debug.Stack())

				respondWithError(s, i, fmt.Sprintf("An unexpected error occurred: %v", r))
			}
		}()

		handler(s, i)
	}
}

// respondWithError sends an ephemeral error message to the user
func respondWithError(s Responder, i *discordgo.InteractionCreate, message string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("❌ %s", message),
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Failed to send error response to user: %s: %v", message, err)
	}
}
