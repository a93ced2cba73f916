package simulate

import (
	"github.com/KirkDiggler/dice-dungeon/internal/dice"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/equipment"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/game/combat"
	"github.com/KirkDiggler/dice-dungeon/internal/services/encounter"
	"github.com/KirkDiggler/dice-dungeon/internal/services/game"
)

// Policy picks the next command for a session that is not over
type Policy interface {
	Next(sess *game.Session) game.Command
}

// facePriority breaks ties between equally common faces
var facePriority = []dice.Face{dice.FaceAttack, dice.FaceMagic, dice.FaceDefense, dice.FaceHealth}

// Greedy locks the most common face and rerolls the rest while it can, buys
// the most expensive affordable offer and takes every helpful encounter.
type Greedy struct{}

// Next implements Policy
func (Greedy) Next(sess *game.Session) game.Command {
	run := sess.Run
	switch {
	case run.CanEnterRoom():
		return game.Command{Type: game.CommandEnterRoom}
	case run.CanProceed():
		return game.Command{Type: game.CommandNextRoom}
	case sess.Battle != nil:
		return battleMove(sess)
	case sess.Shop != nil:
		return shopMove(sess)
	case sess.Encounter != nil:
		return encounterMove(sess)
	}
	return game.Command{Type: game.CommandEnterRoom}
}

func battleMove(sess *game.Session) game.Command {
	p := sess.Player
	b := sess.Battle

	if p.HP*3 <= p.MaxHP && p.HasItem(equipment.HealthPotion) {
		return game.Command{Type: game.CommandUseItem, ItemID: equipment.HealthPotion}
	}
	if p.MP < 3 && p.MP < p.MaxMP && p.HasItem(equipment.MagicScroll) {
		return game.Command{Type: game.CommandUseItem, ItemID: equipment.MagicScroll}
	}

	if b.RerollsLeft <= 0 {
		return game.Command{Type: game.CommandPlayHand}
	}

	keep := favoriteFace(b)
	faces := b.Hand.Faces()
	allKept := true
	for i, f := range faces {
		want := f == keep
		if want != b.Hand.IsLocked(i) {
			return game.Command{Type: game.CommandToggleLock, Index: i}
		}
		if !want {
			allKept = false
		}
	}

	if allKept {
		return game.Command{Type: game.CommandPlayHand}
	}
	return game.Command{Type: game.CommandReroll}
}

// favoriteFace is the most common face of the hand. Magic is skipped when
// even its cheapest combination cannot be paid.
func favoriteFace(b *combat.Battle) dice.Face {
	best := dice.FaceAttack
	bestCount := -1
	for _, f := range facePriority {
		if f == dice.FaceMagic && b.Player.MP < 2 {
			continue
		}
		if n := b.Hand.Count(f); n > bestCount {
			best, bestCount = f, n
		}
	}
	return best
}

func shopMove(sess *game.Session) game.Command {
	best := -1
	for i, offer := range sess.Shop.Offers {
		if offer.Sold || offer.Item.Cost > sess.Player.Gold {
			continue
		}
		if best < 0 || offer.Item.Cost > sess.Shop.Offers[best].Item.Cost {
			best = i
		}
	}

	if best >= 0 {
		return game.Command{Type: game.CommandBuy, Index: best}
	}
	return game.Command{Type: game.CommandChooseRoomAction, Choice: game.ChoiceLeave}
}

func encounterMove(sess *game.Session) game.Command {
	choice := game.ChoiceLeave
	switch sess.Encounter.Kind {
	case encounter.KindShrine:
		choice = encounter.ChoicePray
	case encounter.KindPotion:
		choice = encounter.ChoiceDrink
	case encounter.KindGambler:
		if sess.Player.Gold >= encounter.GambleCost {
			choice = encounter.ChoiceGamble
		}
	}
	return game.Command{Type: game.CommandChooseRoomAction, Choice: choice}
}
