package combat

import (
	"github.com/KirkDiggler/dice-dungeon/internal/dice"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/character"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/equipment"
)

// BaseRerolls is the reroll budget of a round before equipment bonuses
const BaseRerolls = 2

// State is where a battle sits in its turn cycle
type State string

const (
	StateAwaitingPlay           State = "awaiting_play"
	StateResolvingPlayerEffects State = "resolving_player_effects"
	StateResolvingMonsterTurn   State = "resolving_monster_turn"
	StateMonsterDefeated        State = "monster_defeated"
	StatePlayerDefeated         State = "player_defeated"
)

// ActionType names one applied player effect
type ActionType string

const (
	ActionDamage       ActionType = "damage"
	ActionMagicDamage  ActionType = "magic_damage"
	ActionMagicSkipped ActionType = "magic_skipped"
	ActionHealing      ActionType = "healing"
)

// Action is an effect the player turn applied. For ActionMagicSkipped the
// value is the damage that was not dealt.
type Action struct {
	Type  ActionType `json:"type"`
	Value int        `json:"value"`
}

// TurnResult is the outcome of playing a hand
type TurnResult struct {
	Actions         []Action `json:"actions"`
	MagicSkipped    bool     `json:"magic_skipped"`
	MonsterDefeated bool     `json:"monster_defeated"`
}

// MonsterTurnResult is the outcome of the monster counter-attack
type MonsterTurnResult struct {
	Damage         int  `json:"damage"`
	NextAttack     int  `json:"next_attack"`
	PlayerDefeated bool `json:"player_defeated"`
}

// Rewards is what a won battle granted
type Rewards struct {
	Experience int  `json:"experience"`
	Gold       int  `json:"gold"`
	LeveledUp  bool `json:"leveled_up"`
	Level      int  `json:"level"`
}

// Battle is the context of one fight: the hand, the round reroll budget and
// the monster's telegraphed attack. Each battle owns its state so many can
// run side by side.
type Battle struct {
	ID          string
	Player      *character.Player
	Monster     *Monster
	Hand        *dice.Hand
	RerollsLeft int
	NextAttack  int
	Round       int

	state    State
	rewarded bool
}

// RerollBudget is the per round reroll allowance of the player
func RerollBudget(p *character.Player) int {
	return BaseRerolls + p.GetBonusForType(equipment.EffectReroll)
}

// NewBattle starts a fight: the monster telegraphs its first attack and the
// opening hand is rolled.
func NewBattle(player *character.Player, monster *Monster, r dice.Roller) *Battle {
	b := &Battle{
		Player:      player,
		Monster:     monster,
		Hand:        dice.NewHand(),
		RerollsLeft: RerollBudget(player),
		Round:       1,
		state:       StateAwaitingPlay,
	}
	b.NextAttack = monster.RollAttack(r)
	b.Hand.Roll(r)
	return b
}

// State returns the current battle state
func (b *Battle) State() State {
	return b.state
}

// IsOver reports whether either side was defeated
func (b *Battle) IsOver() bool {
	return b.state == StateMonsterDefeated || b.state == StatePlayerDefeated
}

// Won reports whether the monster was defeated
func (b *Battle) Won() bool {
	return b.state == StateMonsterDefeated
}

// Reroll spends one reroll on the unlocked dice. It is ignored once the
// round budget is spent or outside the play phase.
func (b *Battle) Reroll(r dice.Roller) bool {
	if b.state != StateAwaitingPlay || b.RerollsLeft <= 0 {
		return false
	}
	b.RerollsLeft--
	b.Hand.Roll(r)
	return true
}

// ToggleLock flips a die lock. Locks only matter for rerolls, so toggling
// is ignored when none are left.
func (b *Battle) ToggleLock(index int) bool {
	if b.state != StateAwaitingPlay || b.RerollsLeft <= 0 {
		return false
	}
	return b.Hand.ToggleLock(index)
}

// Effects returns the effects of the current hand
func (b *Battle) Effects() dice.Effects {
	return b.Hand.Effects()
}

// ProcessPlayerTurn applies a played hand. Physical damage always lands;
// magic lands only when the MP can be paid, otherwise it is reported as
// skipped and nothing is spent. Locks are reset afterwards.
func (b *Battle) ProcessPlayerTurn(effects dice.Effects) TurnResult {
	var result TurnResult
	if b.state != StateAwaitingPlay {
		return result
	}
	b.state = StateResolvingPlayerEffects

	if effects.Damage > 0 {
		b.Monster.TakeDamage(effects.Damage)
		result.Actions = append(result.Actions, Action{Type: ActionDamage, Value: effects.Damage})
	}

	if effects.MagicDamage > 0 && effects.MagicCost > 0 {
		if b.Player.UseMP(effects.MagicCost) {
			b.Monster.TakeDamage(effects.MagicDamage)
			result.Actions = append(result.Actions, Action{Type: ActionMagicDamage, Value: effects.MagicDamage})
		} else {
			result.MagicSkipped = true
			result.Actions = append(result.Actions, Action{Type: ActionMagicSkipped, Value: effects.MagicDamage})
		}
	}

	if effects.Healing != 0 {
		amount := effects.Healing
		if effects.IsFullHeal() {
			amount = b.Player.MaxHP - b.Player.HP
		}
		if amount > 0 {
			b.Player.Heal(amount)
			result.Actions = append(result.Actions, Action{Type: ActionHealing, Value: amount})
		}
	}

	b.Hand.ResetLocks()

	if b.Monster.IsDead() {
		b.state = StateMonsterDefeated
		result.MonsterDefeated = true
		return result
	}

	b.state = StateResolvingMonsterTurn
	return result
}

// ProcessMonsterTurn resolves the counter-attack against the defense of the
// played hand. A defense of dice.ImmuneDefense blocks any attack. When the
// player survives the next attack is telegraphed, the reroll budget refills
// and a fresh hand is rolled.
func (b *Battle) ProcessMonsterTurn(r dice.Roller, defense, attack int) MonsterTurnResult {
	var result MonsterTurnResult
	if b.state != StateResolvingMonsterTurn {
		return result
	}

	if defense < dice.ImmuneDefense {
		result.Damage = max(0, attack-defense)
	}
	if result.Damage > 0 {
		b.Player.TakeDamage(result.Damage)
	}

	if !b.Player.IsAlive() {
		b.state = StatePlayerDefeated
		result.PlayerDefeated = true
		return result
	}

	b.NextAttack = b.Monster.RollAttack(r)
	result.NextAttack = b.NextAttack
	b.RerollsLeft = RerollBudget(b.Player)
	b.Hand.Roll(r)
	b.Round++
	b.state = StateAwaitingPlay

	return result
}

// ClaimRewards grants the monster's gold and experience once per won battle
func (b *Battle) ClaimRewards() (Rewards, bool) {
	if b.state != StateMonsterDefeated || b.rewarded {
		return Rewards{}, false
	}
	b.rewarded = true

	b.Player.AddGold(b.Monster.GoldReward)
	leveled := b.Player.GainExperience(b.Monster.ExperienceReward)

	return Rewards{
		Experience: b.Monster.ExperienceReward,
		Gold:       b.Monster.GoldReward,
		LeveledUp:  leveled,
		Level:      b.Player.Level,
	}, true
}
