package equipment_test

import (
	"testing"

	"github.com/KirkDiggler/dice-dungeon/internal/domain/equipment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Entries(t *testing.T) {
	tests := []struct {
		id         string
		cost       int
		kind       equipment.EffectKind
		value      int
		consumable bool
	}{
		{equipment.HealthPotion, 10, equipment.EffectHealing, 10, true},
		{equipment.MagicScroll, 15, equipment.EffectMP, 5, true},
		{equipment.SharpSword, 100, equipment.EffectDamage, 2, false},
		{equipment.SteelShield, 80, equipment.EffectDefense, 1, false},
		{equipment.MagicRing, 120, equipment.EffectMaxMP, 5, false},
		{equipment.LuckyCharm, 150, equipment.EffectReroll, 1, false},
		{equipment.MythrilSword, 180, equipment.EffectDamage, 3, false},
		{equipment.VitalityAmulet, 110, equipment.EffectMaxHP, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			item, ok := equipment.Lookup(tt.id)
			require.True(t, ok)

			assert.Equal(t, tt.id, item.ID)
			assert.Equal(t, tt.cost, item.Cost)
			assert.Equal(t, tt.consumable, item.Consumable)
			assert.Equal(t, tt.value, item.Bonus(tt.kind))
			assert.False(t, item.Equipped)
			for _, e := range item.Effects {
				assert.True(t, e.Kind.Valid())
			}
		})
	}
}

func TestLookup_ReturnsIndependentCopies(t *testing.T) {
	a := equipment.MustLookup(equipment.SharpSword)
	b := equipment.MustLookup(equipment.SharpSword)

	a.Equipped = true
	a.Effects[0].Value = 99

	assert.False(t, b.Equipped)
	assert.Equal(t, 2, b.Bonus(equipment.EffectDamage))
	assert.Equal(t, 2, equipment.MustLookup(equipment.SharpSword).Bonus(equipment.EffectDamage))
}

func TestLookup_Unknown(t *testing.T) {
	item, ok := equipment.Lookup("excalibur")
	assert.False(t, ok)
	assert.Nil(t, item)
	assert.Panics(t, func() { equipment.MustLookup("excalibur") })
}

func TestEquippables(t *testing.T) {
	items := equipment.Equippables()

	assert.Len(t, items, 6)
	for _, item := range items {
		assert.False(t, item.Consumable, item.ID)
	}
}

func TestEffectKind_Reversible(t *testing.T) {
	assert.True(t, equipment.EffectMaxHP.Reversible())
	assert.True(t, equipment.EffectMaxMP.Reversible())
	assert.False(t, equipment.EffectHealing.Reversible())
	assert.False(t, equipment.EffectMP.Reversible())
	assert.False(t, equipment.EffectKind("luck").Valid())
}
