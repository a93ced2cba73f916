package encounter

//go:generate mockgen -destination=mock/mock_service.go -package=mockencounter -source=service.go

import (
	"context"
	"fmt"
	"log"

	"github.com/KirkDiggler/dice-dungeon/internal/dice"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/character"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/equipment"
	dnderr "github.com/KirkDiggler/dice-dungeon/internal/errors"
)

const (
	// GambleCost is the gold the wandering gambler asks per game
	GambleCost = 20

	// PotionEffect is the max HP gained, or HP lost, from the mysterious potion
	PotionEffect = 5
)

// Service defines the special encounter room service interface
type Service interface {
	// Start picks the scenario of an encounter room
	Start(ctx context.Context) (*Encounter, error)

	// Choose resolves one of the scenario's choices for the player
	Choose(ctx context.Context, enc *Encounter, player *character.Player, choiceID string) (*Resolution, error)
}

// Kind identifies a scenario
type Kind string

const (
	KindShrine  Kind = "shrine"
	KindPotion  Kind = "potion"
	KindGambler Kind = "gambler"
)

// Choice IDs
const (
	ChoicePray   = "pray"
	ChoiceDrink  = "drink"
	ChoiceGamble = "gamble"
	ChoiceLeave  = "leave"
)

// Choice is one button offered by a scenario
type Choice struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Scenario is the fixed description of one encounter type
type Scenario struct {
	Kind        Kind     `json:"kind"`
	Title       string   `json:"title"`
	Emoji       string   `json:"emoji"`
	Description string   `json:"description"`
	Choices     []Choice `json:"choices"`
}

// Scenarios are equally likely
var Scenarios = []Scenario{
	{
		Kind:        KindShrine,
		Title:       "Healing Shrine",
		Emoji:       "⛩️",
		Description: "A quiet shrine glows with a soft light.",
		Choices:     []Choice{{ID: ChoicePray, Label: "Pray"}, {ID: ChoiceLeave, Label: "Leave"}},
	},
	{
		Kind:        KindPotion,
		Title:       "Mysterious Potion",
		Emoji:       "⚗️",
		Description: "A bubbling potion sits on a pedestal. It could be a blessing or a curse.",
		Choices:     []Choice{{ID: ChoiceDrink, Label: "Drink"}, {ID: ChoiceLeave, Label: "Leave"}},
	},
	{
		Kind:        KindGambler,
		Title:       "Wandering Gambler",
		Emoji:       "🎲",
		Description: fmt.Sprintf("A hooded figure offers a game of chance for %d gold.", GambleCost),
		Choices:     []Choice{{ID: ChoiceGamble, Label: fmt.Sprintf("Gamble (%dg)", GambleCost)}, {ID: ChoiceLeave, Label: "Leave"}},
	},
}

// Encounter is the state of one encounter room
type Encounter struct {
	Scenario
	Resolved bool `json:"resolved"`
}

// HasChoice reports whether id is offered by the scenario
func (e *Encounter) HasChoice(id string) bool {
	for _, c := range e.Choices {
		if c.ID == id {
			return true
		}
	}
	return false
}

// Resolution is the result of a choice. Resolved is false when the choice
// could not be taken and the room stays open.
type Resolution struct {
	Message  string
	Resolved bool
}

type service struct {
	roller dice.Roller
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Roller dice.Roller // Required
}

// NewService creates a new encounter service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Roller == nil {
		panic("roller is required")
	}

	return &service{
		roller: cfg.Roller,
	}
}

// Start picks a scenario uniformly
func (s *service) Start(ctx context.Context) (*Encounter, error) {
	scenario := Scenarios[dice.Index(s.roller, len(Scenarios))]
	scenario.Choices = append([]Choice(nil), scenario.Choices...)
	return &Encounter{Scenario: scenario}, nil
}

// Choose resolves a choice
func (s *service) Choose(ctx context.Context, enc *Encounter, player *character.Player, choiceID string) (*Resolution, error) {
	if enc == nil {
		return nil, dnderr.InvalidArgument("encounter is required")
	}
	if player == nil {
		return nil, dnderr.InvalidArgument("player is required")
	}
	if enc.Resolved {
		return nil, dnderr.FailedPrecondition("encounter is already resolved")
	}
	if !enc.HasChoice(choiceID) {
		return nil, dnderr.InvalidArgumentf("choice '%s' is not offered by %s", choiceID, enc.Title).
			WithMeta("choice", choiceID).
			WithMeta("encounter", string(enc.Kind))
	}

	var res *Resolution
	switch choiceID {
	case ChoiceLeave:
		res = &Resolution{Message: "You move on.", Resolved: true}
	case ChoicePray:
		res = s.pray(player)
	case ChoiceDrink:
		res = s.drink(player)
	case ChoiceGamble:
		res = s.gamble(player)
	default:
		return nil, dnderr.Internalf("choice '%s' has no resolution", choiceID)
	}

	if res.Resolved {
		enc.Resolved = true
		log.Printf("Player %s resolved %s with %s", player.ID, enc.Kind, choiceID)
	}
	return res, nil
}

func (s *service) pray(player *character.Player) *Resolution {
	player.HealToFull()
	player.RestoreMP(player.MaxMP)
	return &Resolution{
		Message:  "The shrine's light washes over you. HP and MP fully restored!",
		Resolved: true,
	}
}

func (s *service) drink(player *character.Player) *Resolution {
	if s.roller.Roll(2) == 1 {
		player.RaiseMaxHP(PotionEffect)
		return &Resolution{
			Message:  fmt.Sprintf("You feel stronger! Max HP +%d.", PotionEffect),
			Resolved: true,
		}
	}

	lost := min(PotionEffect, player.HP-1)
	if lost > 0 {
		player.TakeDamage(lost)
	}
	return &Resolution{
		Message:  fmt.Sprintf("The potion burns! You lose %d HP.", max(lost, 0)),
		Resolved: true,
	}
}

func (s *service) gamble(player *character.Player) *Resolution {
	if !player.SpendGold(GambleCost) {
		return &Resolution{
			Message: fmt.Sprintf("The gambler wants %d gold. You only have %d.", GambleCost, player.Gold),
		}
	}

	prizes := equipment.Equippables()
	prize := prizes[dice.Index(s.roller, len(prizes))]
	player.AddItem(prize)

	return &Resolution{
		Message:  fmt.Sprintf("The dice fall your way! You win %s.", prize.Label()),
		Resolved: true,
	}
}
