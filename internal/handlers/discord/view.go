package discord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/dice-dungeon/internal/domain/character"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/game/exploration"
	"github.com/KirkDiggler/dice-dungeon/internal/services/game"
	"github.com/bwmarrin/discordgo"
)

// ActionNewGame restarts with the class in the first argument
const ActionNewGame = "new"

// maxButtonsPerRow is Discord's limit for an action row
const maxButtonsPerRow = 5

const (
	colorExploring = 0x3498db
	colorBattle    = 0xe74c3c
	colorShop      = 0xf1c40f
	colorVictory   = 0x2ecc71
	colorDefeat    = 0x2c2f33
)

// renderSession builds the game message for a session and the outcome of
// the last command
func renderSession(sess *game.Session, out *game.Outcome) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		Embeds:     []*discordgo.MessageEmbed{buildEmbed(sess, out)},
		Components: buildComponents(sess),
	}
}

func buildEmbed(sess *game.Session, out *game.Outcome) *discordgo.MessageEmbed {
	run := sess.Run
	info := exploration.DescribeRoom(run.Current())

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s %s · %s", info.Emoji, info.Title, run.Progress()),
		Color: colorExploring,
	}
	if out != nil {
		embed.Description = strings.Join(out.Messages, "\n")
	}
	if embed.Description == "" {
		embed.Description = info.Description
	}

	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  "🧙 You",
		Value: sess.Player.String(),
	})

	switch {
	case run.State == exploration.RunStateComplete:
		embed.Color = colorVictory
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "Victory! Pick a class to play again."}
		return embed
	case run.State == exploration.RunStateFailed:
		embed.Color = colorDefeat
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "You fell in the dungeon. Pick a class to try again."}
		return embed
	}

	switch {
	case sess.Battle != nil:
		b := sess.Battle
		embed.Color = colorBattle
		preview := b.Effects().Preview()
		if preview == "" {
			preview = "Nothing"
		}
		embed.Fields = append(embed.Fields,
			&discordgo.MessageEmbedField{Name: "👹 Enemy", Value: b.Monster.String(), Inline: true},
			&discordgo.MessageEmbedField{Name: "⚠️ Next attack", Value: strconv.Itoa(b.NextAttack), Inline: true},
			&discordgo.MessageEmbedField{Name: "🎲 Dice", Value: b.Hand.String()},
			&discordgo.MessageEmbedField{Name: "📋 Effects", Value: preview, Inline: true},
			&discordgo.MessageEmbedField{Name: "🔄 Rerolls", Value: strconv.Itoa(b.RerollsLeft), Inline: true},
		)

	case sess.Shop != nil:
		embed.Color = colorShop
		lines := make([]string, 0, len(sess.Shop.Offers))
		for i, offer := range sess.Shop.Offers {
			line := fmt.Sprintf("%d. %s - %dg", i+1, offer.Item.Label(), offer.Item.Cost)
			if offer.Sold {
				line = fmt.Sprintf("~~%s~~ (sold)", line)
			}
			lines = append(lines, line)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "🏪 Wares",
			Value: strings.Join(lines, "\n"),
		})

	case sess.Encounter != nil:
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s %s", sess.Encounter.Emoji, sess.Encounter.Title),
			Value: sess.Encounter.Description,
		})
	}

	if items := sess.Player.EquippedItems(); len(items) > 0 {
		names := make([]string, len(items))
		for i, item := range items {
			names[i] = item.Label()
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "🎒 Equipped",
			Value: strings.Join(names, ", "),
		})
	}

	return embed
}

func buildComponents(sess *game.Session) []discordgo.MessageComponent {
	owner := sess.OwnerID
	button := func(label string, style discordgo.ButtonStyle, action string, args ...string) discordgo.Button {
		return discordgo.Button{
			Label:    label,
			Style:    style,
			CustomID: NewCustomID(action, owner, args...).MustEncode(),
		}
	}

	if sess.IsOver() {
		row := make([]discordgo.MessageComponent, 0, len(character.Classes))
		for _, class := range character.Classes {
			info, _ := class.Info()
			row = append(row, button(fmt.Sprintf("%s %s", info.Emoji, info.Name), discordgo.PrimaryButton, ActionNewGame, string(class)))
		}
		return []discordgo.MessageComponent{discordgo.ActionsRow{Components: row}}
	}

	var rows []discordgo.MessageComponent
	addRow := func(buttons ...discordgo.MessageComponent) {
		if len(buttons) > 0 {
			rows = append(rows, discordgo.ActionsRow{Components: buttons})
		}
	}

	switch {
	case sess.Run.CanEnterRoom():
		addRow(button("Enter room", discordgo.PrimaryButton, string(game.CommandEnterRoom)))

	case sess.Run.CanProceed():
		addRow(button("Next room", discordgo.PrimaryButton, string(game.CommandNextRoom)))

	case sess.Battle != nil:
		b := sess.Battle
		dice := make([]discordgo.MessageComponent, 0, maxButtonsPerRow)
		for i, face := range b.Hand.Faces() {
			style := discordgo.SecondaryButton
			label := face.Emoji()
			if b.Hand.IsLocked(i) {
				style = discordgo.SuccessButton
				label = "🔒 " + label
			}
			btn := button(label, style, string(game.CommandToggleLock), strconv.Itoa(i))
			btn.Disabled = b.RerollsLeft <= 0
			dice = append(dice, btn)
		}
		addRow(dice...)

		reroll := button(fmt.Sprintf("Reroll (%d)", b.RerollsLeft), discordgo.SecondaryButton, string(game.CommandReroll))
		reroll.Disabled = b.RerollsLeft <= 0
		addRow(reroll, button("Play hand", discordgo.DangerButton, string(game.CommandPlayHand)))

	case sess.Shop != nil:
		offers := make([]discordgo.MessageComponent, 0, len(sess.Shop.Offers))
		for i, offer := range sess.Shop.Offers {
			btn := button(fmt.Sprintf("Buy %s", offer.Item.Name), discordgo.SuccessButton, string(game.CommandBuy), strconv.Itoa(i))
			btn.Disabled = offer.Sold || sess.Player.Gold < offer.Item.Cost
			offers = append(offers, btn)
		}
		addRow(offers...)
		addRow(
			button(fmt.Sprintf("Reroll wares (%dg)", sess.Shop.NextRerollCost()), discordgo.SecondaryButton, string(game.CommandRerollOffers)),
			button("Leave", discordgo.PrimaryButton, string(game.CommandChooseRoomAction), game.ChoiceLeave),
		)

	case sess.Encounter != nil:
		choices := make([]discordgo.MessageComponent, 0, len(sess.Encounter.Choices))
		for _, c := range sess.Encounter.Choices {
			choices = append(choices, button(c.Label, discordgo.PrimaryButton, string(game.CommandChooseRoomAction), c.ID))
		}
		addRow(choices...)
	}

	addRow(itemButtons(sess, button)...)
	return rows
}

// itemButtons offers one use button per distinct consumable
func itemButtons(sess *game.Session, button func(string, discordgo.ButtonStyle, string, ...string) discordgo.Button) []discordgo.MessageComponent {
	var buttons []discordgo.MessageComponent
	seen := make(map[string]bool)
	for _, item := range sess.Player.Consumables() {
		if seen[item.ID] || len(buttons) == maxButtonsPerRow {
			continue
		}
		seen[item.ID] = true
		buttons = append(buttons, button(fmt.Sprintf("Use %s", item.Label()), discordgo.SecondaryButton, string(game.CommandUseItem), item.ID))
	}
	return buttons
}
