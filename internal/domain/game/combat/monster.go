package combat

import (
	"fmt"

	"github.com/KirkDiggler/dice-dungeon/internal/dice"
)

// MonsterTemplate is the fixed stat line a monster is spawned from
type MonsterTemplate struct {
	Key              string `json:"key"`
	Name             string `json:"name"`
	Emoji            string `json:"emoji"`
	HP               int    `json:"hp"`
	MinAttack        int    `json:"min_attack"`
	MaxAttack        int    `json:"max_attack"`
	ExperienceReward int    `json:"experience_reward"`
	GoldReward       int    `json:"gold_reward"`
}

// MonsterTemplates are the regular monsters
var MonsterTemplates = []MonsterTemplate{
	{Key: "slime", Name: "Slime", Emoji: "🟢", HP: 6, MinAttack: 1, MaxAttack: 2, ExperienceReward: 25, GoldReward: 10},
	{Key: "skeleton", Name: "Skeleton", Emoji: "💀", HP: 10, MinAttack: 1, MaxAttack: 3, ExperienceReward: 35, GoldReward: 15},
	{Key: "ghost", Name: "Ghost", Emoji: "👻", HP: 10, MinAttack: 2, MaxAttack: 4, ExperienceReward: 30, GoldReward: 20},
	{Key: "dragon", Name: "Dragon", Emoji: "🐉", HP: 30, MinAttack: 2, MaxAttack: 6, ExperienceReward: 100, GoldReward: 50},
}

// BossTemplates are the monsters guarding the last room
var BossTemplates = []MonsterTemplate{
	{Key: "dragon_king", Name: "Dragon King", Emoji: "🐲", HP: 50, MinAttack: 6, MaxAttack: 10, ExperienceReward: 200, GoldReward: 100},
	{Key: "dungeon_lord", Name: "Dungeon Lord", Emoji: "👑", HP: 45, MinAttack: 5, MaxAttack: 12, ExperienceReward: 180, GoldReward: 120},
}

// Monster is one spawned opponent. Only HP changes during a battle.
type Monster struct {
	Key              string `json:"key"`
	Name             string `json:"name"`
	Emoji            string `json:"emoji"`
	HP               int    `json:"hp"`
	MaxHP            int    `json:"max_hp"`
	MinAttack        int    `json:"min_attack"`
	MaxAttack        int    `json:"max_attack"`
	ExperienceReward int    `json:"experience_reward"`
	GoldReward       int    `json:"gold_reward"`
	Boss             bool   `json:"boss,omitempty"`
}

// NewMonster spawns a monster at full HP
func NewMonster(t MonsterTemplate) *Monster {
	return &Monster{
		Key:              t.Key,
		Name:             t.Name,
		Emoji:            t.Emoji,
		HP:               t.HP,
		MaxHP:            t.HP,
		MinAttack:        t.MinAttack,
		MaxAttack:        t.MaxAttack,
		ExperienceReward: t.ExperienceReward,
		GoldReward:       t.GoldReward,
	}
}

// RandomMonster spawns a uniformly picked regular monster
func RandomMonster(r dice.Roller) *Monster {
	return NewMonster(MonsterTemplates[dice.Index(r, len(MonsterTemplates))])
}

// RandomBoss spawns a uniformly picked boss
func RandomBoss(r dice.Roller) *Monster {
	m := NewMonster(BossTemplates[dice.Index(r, len(BossTemplates))])
	m.Boss = true
	return m
}

// TakeDamage removes up to n HP
func (m *Monster) TakeDamage(n int) {
	if n <= 0 {
		return
	}
	m.HP = max(0, m.HP-n)
}

// IsDead reports whether the monster is out of HP
func (m *Monster) IsDead() bool {
	return m.HP <= 0
}

// RollAttack draws an attack value in [MinAttack, MaxAttack]
func (m *Monster) RollAttack(r dice.Roller) int {
	return dice.Between(r, m.MinAttack, m.MaxAttack)
}

// Label is the emoji and name
func (m *Monster) Label() string {
	return fmt.Sprintf("%s %s", m.Emoji, m.Name)
}

func (m *Monster) String() string {
	return fmt.Sprintf("%s HP %d/%d", m.Label(), m.HP, m.MaxHP)
}
