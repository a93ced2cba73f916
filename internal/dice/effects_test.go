package dice_test

import (
	"testing"

	"github.com/KirkDiggler/dice-dungeon/internal/dice"
	"github.com/stretchr/testify/assert"
)

const (
	A = dice.FaceAttack
	D = dice.FaceDefense
	M = dice.FaceMagic
	H = dice.FaceHealth
)

func TestCalculateEffects(t *testing.T) {
	tests := []struct {
		name  string
		faces []dice.Face
		want  dice.Effects
	}{
		{
			name:  "nothing reaches a threshold",
			faces: []dice.Face{A, A, D, D, M},
			want:  dice.Effects{},
		},
		{
			name:  "three attack",
			faces: []dice.Face{A, A, A, D, M},
			want:  dice.Effects{Damage: 3},
		},
		{
			name:  "four attack",
			faces: []dice.Face{A, A, A, A, D},
			want:  dice.Effects{Damage: 5},
		},
		{
			name:  "five attack",
			faces: []dice.Face{A, A, A, A, A},
			want:  dice.Effects{Damage: 8},
		},
		{
			name:  "three defense",
			faces: []dice.Face{D, D, D, A, M},
			want:  dice.Effects{Defense: 3},
		},
		{
			name:  "four defense",
			faces: []dice.Face{D, D, D, D, A},
			want:  dice.Effects{Defense: 5},
		},
		{
			name:  "five defense is immune",
			faces: []dice.Face{D, D, D, D, D},
			want:  dice.Effects{Defense: dice.ImmuneDefense},
		},
		{
			name:  "two magic",
			faces: []dice.Face{M, M, A, D, H},
			want:  dice.Effects{MagicDamage: 3, MagicCost: 2},
		},
		{
			name:  "three magic",
			faces: []dice.Face{M, M, M, A, D},
			want:  dice.Effects{MagicDamage: 5, MagicCost: 3},
		},
		{
			name:  "four magic",
			faces: []dice.Face{M, M, M, M, A},
			want:  dice.Effects{MagicDamage: 8, MagicCost: 5},
		},
		{
			name:  "five magic",
			faces: []dice.Face{M, M, M, M, M},
			want:  dice.Effects{MagicDamage: 12, MagicCost: 8},
		},
		{
			name:  "two health",
			faces: []dice.Face{H, H, A, D, M},
			want:  dice.Effects{Healing: 2},
		},
		{
			name:  "three health",
			faces: []dice.Face{H, H, H, A, D},
			want:  dice.Effects{Healing: 4},
		},
		{
			name:  "four health",
			faces: []dice.Face{H, H, H, H, A},
			want:  dice.Effects{Healing: 6},
		},
		{
			name:  "five health is full heal",
			faces: []dice.Face{H, H, H, H, H},
			want:  dice.Effects{Healing: dice.FullHeal},
		},
		{
			name:  "attack and health fire together",
			faces: []dice.Face{A, H, A, H, A},
			want:  dice.Effects{Damage: 3, Healing: 2},
		},
		{
			name:  "defense and magic fire together",
			faces: []dice.Face{D, M, D, M, D},
			want:  dice.Effects{Defense: 3, MagicDamage: 3, MagicCost: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dice.CalculateEffects(tt.faces))
		})
	}
}

func TestCalculateEffects_OrderIndependent(t *testing.T) {
	base := []dice.Face{A, A, A, H, H}
	want := dice.CalculateEffects(base)

	permutations := [][]dice.Face{
		{H, A, H, A, A},
		{A, H, A, H, A},
		{H, H, A, A, A},
	}
	for _, p := range permutations {
		assert.Equal(t, want, dice.CalculateEffects(p))
	}
}

func TestEffects_Preview(t *testing.T) {
	assert.Equal(t, "", dice.Effects{}.Preview())
	assert.Equal(t, "Attack: 3 damage\nHeal: 2", dice.Effects{Damage: 3, Healing: 2}.Preview())
	assert.Equal(t, "Defense: Immune", dice.Effects{Defense: dice.ImmuneDefense}.Preview())
	assert.Equal(t, "Magic: 5 damage (3 MP)", dice.Effects{MagicDamage: 5, MagicCost: 3}.Preview())
	assert.Equal(t, "Heal: Full", dice.Effects{Healing: dice.FullHeal}.Preview())
}

func TestEffects_Predicates(t *testing.T) {
	assert.True(t, dice.Effects{}.IsEmpty())
	assert.True(t, dice.Effects{Defense: dice.ImmuneDefense}.IsImmune())
	assert.False(t, dice.Effects{Defense: 5}.IsImmune())
	assert.True(t, dice.Effects{Healing: dice.FullHeal}.IsFullHeal())
}
