package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/KirkDiggler/dice-dungeon/internal/domain/character"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/equipment"
	dnderr "github.com/KirkDiggler/dice-dungeon/internal/errors"
	"github.com/KirkDiggler/dice-dungeon/internal/services/game"
	"github.com/bwmarrin/discordgo"
)

// CommandName is the slash command the bot registers
const CommandName = "dungeon"

// Handler handles all Discord interactions
type Handler struct {
	gameService game.Service
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	GameService game.Service // Required
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg == nil || cfg.GameService == nil {
		panic("game service is required")
	}

	return &Handler{gameService: cfg.GameService}
}

// Commands returns the slash commands the handler answers
func (h *Handler) Commands() []*discordgo.ApplicationCommand {
	classChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(character.Classes))
	for _, class := range character.Classes {
		classChoices = append(classChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  class.Name(),
			Value: string(class),
		})
	}

	equippables := equipment.Equippables()
	itemChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(equippables))
	for _, item := range equippables {
		itemChoices = append(itemChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  item.Name,
			Value: item.ID,
		})
	}
	itemOption := []*discordgo.ApplicationCommandOption{
		{
			Name:        "item",
			Description: "The item",
			Type:        discordgo.ApplicationCommandOptionString,
			Required:    true,
			Choices:     itemChoices,
		},
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        CommandName,
			Description: "Dice Dungeon commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "start",
					Description: "Start a new dungeon run",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Name:        "class",
							Description: "Your character class",
							Type:        discordgo.ApplicationCommandOptionString,
							Required:    true,
							Choices:     classChoices,
						},
						{
							Name:        "seed",
							Description: "Fix the room layout",
							Type:        discordgo.ApplicationCommandOptionInteger,
						},
					},
				},
				{
					Name:        "status",
					Description: "Show your current run",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
				},
				{
					Name:        "equip",
					Description: "Equip an item from your inventory",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options:     itemOption,
				},
				{
					Name:        "unequip",
					Description: "Unequip an item",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options:     itemOption,
				},
			},
		},
	}
}

// RegisterCommands registers all slash commands with Discord
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	for _, cmd := range h.Commands() {
		if _, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd); err != nil {
			return fmt.Errorf("failed to create command %s: %w", cmd.Name, err)
		}
	}
	return nil
}

// HandleInteraction handles all Discord interactions
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	RecoverMiddleware("interaction", h.Handle)(s, i)
}

// Handle routes an interaction to the command or component handler
func (h *Handler) Handle(s Responder, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		h.handleCommand(s, i)
	case discordgo.InteractionMessageComponent:
		h.handleComponent(s, i)
	}
}

func (h *Handler) handleCommand(s Responder, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	if data.Name != CommandName || len(data.Options) == 0 {
		return
	}

	ctx := context.Background()
	ownerID := interactionUserID(i)
	sub := data.Options[0]

	switch sub.Name {
	case "start":
		input := &game.NewGameInput{OwnerID: ownerID}
		for _, opt := range sub.Options {
			switch opt.Name {
			case "class":
				input.Class = character.Class(opt.StringValue())
			case "seed":
				input.Seed = opt.IntValue()
			}
		}

		sess, err := h.gameService.NewGame(ctx, input)
		if err != nil {
			h.respondError(s, i, err)
			return
		}
		log.Printf("User %s started run %s as %s", ownerID, sess.Run.ID, input.Class)
		h.respond(s, i, discordgo.InteractionResponseChannelMessageWithSource, sess, welcome(sess))

	case "status":
		sess, err := h.gameService.GetSession(ctx, ownerID)
		if err != nil {
			h.respondError(s, i, err)
			return
		}
		h.respond(s, i, discordgo.InteractionResponseChannelMessageWithSource, sess, nil)

	case "equip", "unequip":
		cmd := game.Command{Type: game.CommandEquip}
		if sub.Name == "unequip" {
			cmd.Type = game.CommandUnequip
		}
		for _, opt := range sub.Options {
			if opt.Name == "item" {
				cmd.ItemID = opt.StringValue()
			}
		}
		h.apply(s, i, discordgo.InteractionResponseChannelMessageWithSource, ownerID, cmd)
	}
}

func (h *Handler) handleComponent(s Responder, i *discordgo.InteractionCreate) {
	id, err := ParseCustomID(i.MessageComponentData().CustomID)
	if err != nil || id.Domain != DomainDungeon {
		return
	}

	ownerID := interactionUserID(i)
	if id.Target != ownerID {
		respondWithError(s, i, "This dungeon belongs to someone else. Use /dungeon start to begin your own.")
		return
	}

	if id.Action == ActionNewGame {
		sess, err := h.gameService.NewGame(context.Background(), &game.NewGameInput{
			OwnerID: ownerID,
			Class:   character.Class(id.Arg(0)),
		})
		if err != nil {
			h.respondError(s, i, err)
			return
		}
		h.respond(s, i, discordgo.InteractionResponseUpdateMessage, sess, welcome(sess))
		return
	}

	cmd, err := commandFromCustomID(id)
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	h.apply(s, i, discordgo.InteractionResponseUpdateMessage, ownerID, cmd)
}

func (h *Handler) apply(s Responder, i *discordgo.InteractionCreate, kind discordgo.InteractionResponseType, ownerID string, cmd game.Command) {
	ctx := context.Background()

	sess, err := h.gameService.GetSession(ctx, ownerID)
	if err != nil {
		h.respondError(s, i, err)
		return
	}

	out, err := h.gameService.Apply(ctx, sess, cmd)
	if err != nil {
		h.respondError(s, i, err)
		return
	}

	h.respond(s, i, kind, sess, out)
}

// commandFromCustomID maps a button to a game command
func commandFromCustomID(id *CustomID) (game.Command, error) {
	cmd := game.Command{Type: game.CommandType(id.Action)}

	switch cmd.Type {
	case game.CommandToggleLock, game.CommandBuy:
		index, err := strconv.Atoi(id.Arg(0))
		if err != nil {
			return cmd, dnderr.InvalidArgumentf("invalid index '%s'", id.Arg(0))
		}
		cmd.Index = index
	case game.CommandUseItem:
		cmd.ItemID = id.Arg(0)
	case game.CommandChooseRoomAction:
		cmd.Choice = id.Arg(0)
	}

	return cmd, nil
}

func (h *Handler) respond(s Responder, i *discordgo.InteractionCreate, kind discordgo.InteractionResponseType, sess *game.Session, out *game.Outcome) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: kind,
		Data: renderSession(sess, out),
	})
	if err != nil {
		log.Printf("Failed to respond to interaction: %v", err)
	}
}

func (h *Handler) respondError(s Responder, i *discordgo.InteractionCreate, err error) {
	switch {
	case dnderr.IsNotFound(err):
		respondWithError(s, i, "You have no active dungeon. Use /dungeon start to begin.")
	case dnderr.IsInvalidArgument(err), dnderr.IsFailedPrecondition(err):
		respondWithError(s, i, userMessage(err))
	default:
		log.Printf("Error handling interaction: %v", err)
		respondWithError(s, i, "Something went wrong. Please try again.")
	}
}

func userMessage(err error) string {
	var dErr *dnderr.Error
	if errors.As(err, &dErr) {
		return dErr.Message
	}
	return err.Error()
}

func welcome(sess *game.Session) *game.Outcome {
	return &game.Outcome{Messages: []string{
		fmt.Sprintf("A new dungeon of %d rooms awaits, %s.", len(sess.Run.Rooms), sess.Player.Class.Name()),
	}}
}

func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
