package character

import (
	"fmt"

	"github.com/KirkDiggler/dice-dungeon/internal/domain/equipment"
)

const (
	// defaultMaxHP and defaultMaxMP are used for a class without a starting package
	defaultMaxHP = 20
	defaultMaxMP = 10
)

// Player is the adventurer carried through a run.
//
// Invariants kept by the mutators: 0 <= HP <= MaxHP, 0 <= MP <= MaxMP,
// Level >= 1, Experience never decreases and Gold never goes negative.
// Every equipped item's pool effects are already reflected in MaxHP and MaxMP.
type Player struct {
	ID      string
	OwnerID string
	Class   Class

	HP         int
	MaxHP      int
	MP         int
	MaxMP      int
	Level      int
	Experience int
	Gold       int

	// Inventory holds every owned item instance. Equipped items stay in the
	// inventory with their Equipped flag set.
	Inventory []*equipment.Item
}

// NewPlayer creates a level 1 player with the class starting package
func NewPlayer(class Class) *Player {
	p := &Player{
		Class: class,
		HP:    defaultMaxHP,
		MaxHP: defaultMaxHP,
		MP:    defaultMaxMP,
		MaxMP: defaultMaxMP,
		Level: 1,
	}

	info, ok := class.Info()
	if !ok {
		return p
	}

	p.HP, p.MaxHP = info.MaxHP, info.MaxHP
	p.MP, p.MaxMP = info.MaxMP, info.MaxMP
	p.Gold = info.Gold
	for _, id := range info.StartingItems {
		if item, found := equipment.Lookup(id); found {
			p.AddItem(item)
		}
	}

	return p
}

// IsAlive reports whether the player has HP left
func (p *Player) IsAlive() bool {
	return p.HP > 0
}

// Heal restores up to n HP
func (p *Player) Heal(n int) {
	if n <= 0 {
		return
	}
	p.HP = min(p.MaxHP, p.HP+n)
}

// HealToFull restores HP to MaxHP and returns the amount healed
func (p *Player) HealToFull() int {
	healed := p.MaxHP - p.HP
	p.HP = p.MaxHP
	return healed
}

// TakeDamage removes up to n HP
func (p *Player) TakeDamage(n int) {
	if n <= 0 {
		return
	}
	p.HP = max(0, p.HP-n)
}

// UseMP spends n MP. It fails without change when the player has less than n.
func (p *Player) UseMP(n int) bool {
	if n < 0 || p.MP < n {
		return false
	}
	p.MP -= n
	return true
}

// RestoreMP restores up to n MP
func (p *Player) RestoreMP(n int) {
	if n <= 0 {
		return
	}
	p.MP = min(p.MaxMP, p.MP+n)
}

// AddGold grants gold
func (p *Player) AddGold(n int) {
	if n <= 0 {
		return
	}
	p.Gold += n
}

// SpendGold spends n gold. It fails without change when the player cannot afford it.
func (p *Player) SpendGold(n int) bool {
	if n < 0 || p.Gold < n {
		return false
	}
	p.Gold -= n
	return true
}

// RaiseMaxHP grows the HP pool, raising current HP by the same amount
func (p *Player) RaiseMaxHP(n int) {
	p.MaxHP += n
	p.HP += n
}

func (p *Player) String() string {
	return fmt.Sprintf("%s Lv.%d HP %d/%d MP %d/%d %dg",
		p.Class.Name(), p.Level, p.HP, p.MaxHP, p.MP, p.MaxMP, p.Gold)
}
