package game

import (
	"fmt"

	"github.com/KirkDiggler/dice-dungeon/internal/domain/game/combat"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/game/exploration"
	"github.com/KirkDiggler/dice-dungeon/internal/services/battle"
)

func roomIntro(run *exploration.Run) string {
	info := exploration.DescribeRoom(run.Current())
	return fmt.Sprintf("%s %s (%s)\n%s", info.Emoji, info.Title, run.Progress(), info.Description)
}

func roundMessages(b *combat.Battle, result *battle.RoundResult) []string {
	var lines []string

	for _, action := range result.PlayerTurn.Actions {
		switch action.Type {
		case combat.ActionDamage:
			lines = append(lines, fmt.Sprintf("⚔️ You hit %s for %d damage.", b.Monster.Name, action.Value))
		case combat.ActionMagicDamage:
			lines = append(lines, fmt.Sprintf("✨ Your spell deals %d damage.", action.Value))
		case combat.ActionMagicSkipped:
			lines = append(lines, fmt.Sprintf("✨ Not enough MP! The spell fizzles (%d damage lost).", action.Value))
		case combat.ActionHealing:
			lines = append(lines, fmt.Sprintf("💝 You recover %d HP.", action.Value))
		}
	}

	if result.Victory {
		lines = append(lines, fmt.Sprintf("%s is defeated!", b.Monster.Label()))
		if r := result.Rewards; r != nil {
			lines = append(lines, fmt.Sprintf("You gain %d XP and %d gold.", r.Experience, r.Gold))
			if r.LeveledUp {
				lines = append(lines, fmt.Sprintf("🎉 Level up! You are now level %d.", r.Level))
			}
		}
		return lines
	}

	if mt := result.MonsterTurn; mt != nil {
		switch {
		case result.Effects.IsImmune():
			lines = append(lines, fmt.Sprintf("🛡️ You are immune! %s's attack is blocked.", b.Monster.Name))
		case mt.Damage == 0:
			lines = append(lines, fmt.Sprintf("🛡️ You block %s's attack.", b.Monster.Name))
		default:
			lines = append(lines, fmt.Sprintf("%s hits you for %d damage.", b.Monster.Label(), mt.Damage))
		}
		if result.Defeat {
			lines = append(lines, "💀 You have been defeated.")
		} else {
			lines = append(lines, fmt.Sprintf("%s prepares an attack of %d.", b.Monster.Name, mt.NextAttack))
		}
	}

	return lines
}
