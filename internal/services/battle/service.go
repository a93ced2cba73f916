package battle

//go:generate mockgen -destination=mock/mock_service.go -package=mockbattle -source=service.go

import (
	"context"
	"log"

	"github.com/KirkDiggler/dice-dungeon/internal/dice"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/character"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/game/combat"
	dnderr "github.com/KirkDiggler/dice-dungeon/internal/errors"
	"github.com/KirkDiggler/dice-dungeon/internal/events"
	"github.com/KirkDiggler/dice-dungeon/internal/uuid"
)

// Service defines the battle service interface. Battles are owned by the
// caller; the service drives them one command at a time.
type Service interface {
	// StartBattle spawns a monster and rolls the opening hand
	StartBattle(ctx context.Context, input *StartBattleInput) (*combat.Battle, error)

	// Reroll spends one reroll on the unlocked dice
	Reroll(ctx context.Context, b *combat.Battle) (bool, error)

	// ToggleLock flips the lock of one die
	ToggleLock(ctx context.Context, b *combat.Battle, index int) (bool, error)

	// PlayHand resolves one full round: the player's effects, then the
	// monster's counter-attack if it survived
	PlayHand(ctx context.Context, b *combat.Battle) (*RoundResult, error)
}

// StartBattleInput contains the data needed to start a battle
type StartBattleInput struct {
	Player  *character.Player
	Boss    bool            // pick from the boss table
	Monster *combat.Monster // Optional, overrides the random pick
}

// RoundResult is everything that happened in one played hand. Effects are
// the hand's effects after equipment bonuses.
type RoundResult struct {
	Effects     dice.Effects
	PlayerTurn  combat.TurnResult
	MonsterTurn *combat.MonsterTurnResult
	Rewards     *combat.Rewards
	Victory     bool
	Defeat      bool
}

type service struct {
	roller        dice.Roller
	eventBus      *events.Bus
	uuidGenerator uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Roller        dice.Roller    // Required
	EventBus      *events.Bus    // Optional, defaults to events.NewBattleBus(true)
	UUIDGenerator uuid.Generator // Optional
}

// NewService creates a new battle service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Roller == nil {
		panic("roller is required")
	}

	svc := &service{
		roller:        cfg.Roller,
		eventBus:      cfg.EventBus,
		uuidGenerator: cfg.UUIDGenerator,
	}
	if svc.eventBus == nil {
		svc.eventBus = events.NewBattleBus(true)
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewPrefixedGenerator("battle")
	}

	return svc
}

// StartBattle spawns a monster and rolls the opening hand
func (s *service) StartBattle(ctx context.Context, input *StartBattleInput) (*combat.Battle, error) {
	if input == nil || input.Player == nil {
		return nil, dnderr.InvalidArgument("player is required")
	}
	if !input.Player.IsAlive() {
		return nil, dnderr.FailedPrecondition("a defeated player cannot start a battle").
			WithMeta("player_id", input.Player.ID)
	}

	monster := input.Monster
	switch {
	case monster != nil:
	case input.Boss:
		monster = combat.RandomBoss(s.roller)
	default:
		monster = combat.RandomMonster(s.roller)
	}

	b := combat.NewBattle(input.Player, monster, s.roller)
	b.ID = s.uuidGenerator.New()

	log.Printf("Battle %s: %s faces %s", b.ID, input.Player.ID, monster.Label())
	return b, nil
}

// Reroll spends one reroll. A spent budget is reported as false, not an error.
func (s *service) Reroll(ctx context.Context, b *combat.Battle) (bool, error) {
	if err := s.checkActive(b); err != nil {
		return false, err
	}
	return b.Reroll(s.roller), nil
}

// ToggleLock flips the lock of one die
func (s *service) ToggleLock(ctx context.Context, b *combat.Battle, index int) (bool, error) {
	if err := s.checkActive(b); err != nil {
		return false, err
	}
	return b.ToggleLock(index), nil
}

// PlayHand resolves one full round
func (s *service) PlayHand(ctx context.Context, b *combat.Battle) (*RoundResult, error) {
	if err := s.checkActive(b); err != nil {
		return nil, err
	}

	base := b.Effects()
	played := &events.HandPlayedEvent{
		BaseEvent: events.NewBaseEvent(events.EventTypeHandPlayed, b),
		Base:      base,
		Effects:   base,
	}
	if err := s.emit(played); err != nil {
		return nil, err
	}

	result := &RoundResult{Effects: played.Effects}
	result.PlayerTurn = b.ProcessPlayerTurn(played.Effects)
	if err := s.emit(&events.PlayerTurnResolvedEvent{
		BaseEvent: events.NewBaseEvent(events.EventTypePlayerTurnResolved, b),
		Result:    result.PlayerTurn,
	}); err != nil {
		return nil, err
	}

	if result.PlayerTurn.MonsterDefeated {
		return result, s.finishVictory(b, result)
	}

	attack := b.NextAttack
	monsterTurn := b.ProcessMonsterTurn(s.roller, played.Effects.Defense, attack)
	result.MonsterTurn = &monsterTurn
	if err := s.emit(&events.MonsterTurnResolvedEvent{
		BaseEvent: events.NewBaseEvent(events.EventTypeMonsterTurnResolved, b),
		Attack:    attack,
		Defense:   played.Effects.Defense,
		Result:    monsterTurn,
	}); err != nil {
		return nil, err
	}

	if monsterTurn.PlayerDefeated {
		result.Defeat = true
		return result, s.emit(&events.BattleLostEvent{
			BaseEvent: events.NewBaseEvent(events.EventTypeBattleLost, b),
			Round:     b.Round,
		})
	}

	return result, nil
}

func (s *service) finishVictory(b *combat.Battle, result *RoundResult) error {
	result.Victory = true

	rewards, ok := b.ClaimRewards()
	if !ok {
		return nil
	}
	result.Rewards = &rewards

	if err := s.emit(&events.BattleWonEvent{
		BaseEvent: events.NewBaseEvent(events.EventTypeBattleWon, b),
		Rewards:   rewards,
	}); err != nil {
		return err
	}

	if rewards.LeveledUp {
		return s.emit(&events.LevelUpEvent{
			BaseEvent: events.NewBaseEvent(events.EventTypeLevelUp, b),
			Level:     rewards.Level,
		})
	}
	return nil
}

func (s *service) checkActive(b *combat.Battle) error {
	if b == nil {
		return dnderr.InvalidArgument("battle is required")
	}
	if b.IsOver() {
		return dnderr.FailedPreconditionf("battle is already over (%s)", b.State()).
			WithMeta("battle_id", b.ID)
	}
	return nil
}

func (s *service) emit(e events.Event) error {
	if err := s.eventBus.Emit(e); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "battle event failed").
			WithMeta("battle_id", e.GetBattleID()).
			WithMeta("event", string(e.GetType()))
	}
	return nil
}
