package game

//go:generate mockgen -destination=mock/mock_service.go -package=mockgame -source=service.go

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/KirkDiggler/dice-dungeon/internal/domain/character"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/equipment"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/game/exploration"
	dnderr "github.com/KirkDiggler/dice-dungeon/internal/errors"
	"github.com/KirkDiggler/dice-dungeon/internal/services/battle"
	characterService "github.com/KirkDiggler/dice-dungeon/internal/services/character"
	"github.com/KirkDiggler/dice-dungeon/internal/services/dungeon"
	"github.com/KirkDiggler/dice-dungeon/internal/services/encounter"
	"github.com/KirkDiggler/dice-dungeon/internal/services/loot"
	"github.com/KirkDiggler/dice-dungeon/internal/services/merchant"
)

// Service defines the game service interface
type Service interface {
	// NewGame creates a player and a run. An active run of the same owner
	// is abandoned.
	NewGame(ctx context.Context, input *NewGameInput) (*Session, error)

	// GetSession returns the owner's session, resuming it from storage when
	// it is not loaded
	GetSession(ctx context.Context, ownerID string) (*Session, error)

	// Apply dispatches one command to the current room
	Apply(ctx context.Context, sess *Session, cmd Command) (*Outcome, error)
}

// NewGameInput contains the data needed to start a game
type NewGameInput struct {
	OwnerID string
	Class   character.Class
	Seed    int64 // Optional, fixes the room layout
}

type service struct {
	characterService characterService.Service
	dungeonService   dungeon.Service
	battleService    battle.Service
	lootService      loot.Service
	merchantService  merchant.Service
	encounterService encounter.Service

	mu       sync.Mutex
	sessions map[string]*Session
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	CharacterService characterService.Service // Required
	DungeonService   dungeon.Service          // Required
	BattleService    battle.Service           // Required
	LootService      loot.Service             // Required
	MerchantService  merchant.Service         // Required
	EncounterService encounter.Service        // Required
}

// NewService creates a new game service
func NewService(cfg *ServiceConfig) Service {
	if cfg.CharacterService == nil {
		panic("character service is required")
	}
	if cfg.DungeonService == nil {
		panic("dungeon service is required")
	}
	if cfg.BattleService == nil {
		panic("battle service is required")
	}
	if cfg.LootService == nil {
		panic("loot service is required")
	}
	if cfg.MerchantService == nil {
		panic("merchant service is required")
	}
	if cfg.EncounterService == nil {
		panic("encounter service is required")
	}

	return &service{
		characterService: cfg.CharacterService,
		dungeonService:   cfg.DungeonService,
		battleService:    cfg.BattleService,
		lootService:      cfg.LootService,
		merchantService:  cfg.MerchantService,
		encounterService: cfg.EncounterService,
		sessions:         make(map[string]*Session),
	}
}

// NewGame creates a player and a run
func (s *service) NewGame(ctx context.Context, input *NewGameInput) (*Session, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input cannot be nil")
	}

	existing, err := s.dungeonService.GetActiveRun(ctx, input.OwnerID)
	if err != nil && !dnderr.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		if _, err := s.dungeonService.FailRun(ctx, existing.ID); err != nil {
			return nil, dnderr.Wrap(err, "failed to abandon the previous run")
		}
		log.Printf("Owner %s abandoned run %s", input.OwnerID, existing.ID)
	}

	player, err := s.characterService.CreatePlayer(ctx, &characterService.CreatePlayerInput{
		OwnerID: input.OwnerID,
		Class:   input.Class,
	})
	if err != nil {
		return nil, err
	}

	run, err := s.dungeonService.CreateRun(ctx, &dungeon.CreateRunInput{
		OwnerID:  input.OwnerID,
		PlayerID: player.ID,
		Seed:     input.Seed,
	})
	if err != nil {
		return nil, err
	}

	sess := &Session{OwnerID: input.OwnerID, Player: player, Run: run}
	s.store(sess)
	return sess, nil
}

// GetSession returns the loaded session or resumes the active run
func (s *service) GetSession(ctx context.Context, ownerID string) (*Session, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	s.mu.Lock()
	sess, ok := s.sessions[ownerID]
	s.mu.Unlock()
	if ok {
		return sess, nil
	}

	run, err := s.dungeonService.GetActiveRun(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	player, err := s.characterService.GetPlayer(ctx, run.PlayerID)
	if err != nil {
		return nil, err
	}

	sess = &Session{OwnerID: ownerID, Player: player, Run: run}
	if err := s.reopenRoom(ctx, sess); err != nil {
		return nil, err
	}

	log.Printf("Resumed run %s for owner %s at %s", run.ID, ownerID, run.Progress())
	s.store(sess)
	return sess, nil
}

// reopenRoom restores the room of an interrupted run. Room state is not
// stored: battles, shops and encounters start over, while a chest that was
// already opened is only marked cleared.
func (s *service) reopenRoom(ctx context.Context, sess *Session) error {
	if sess.Run.State != exploration.RunStateInProgress {
		return nil
	}
	if sess.Run.Current() == exploration.RoomKindChest {
		return s.completeRoom(ctx, sess, &Outcome{})
	}
	return s.openRoom(ctx, sess, &Outcome{})
}

func (s *service) store(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.OwnerID] = sess
}

// Apply dispatches one command and saves the player afterwards
func (s *service) Apply(ctx context.Context, sess *Session, cmd Command) (*Outcome, error) {
	if sess == nil {
		return nil, dnderr.InvalidArgument("session is required")
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.IsOver() {
		return nil, dnderr.FailedPrecondition("the run is over, start a new game").
			WithMeta("owner_id", sess.OwnerID)
	}

	out := &Outcome{}
	var err error
	switch cmd.Type {
	case CommandEnterRoom:
		err = s.enterRoom(ctx, sess, out)
	case CommandNextRoom:
		err = s.nextRoom(ctx, sess, out)
	case CommandReroll, CommandToggleLock, CommandPlayHand:
		err = s.battleCommand(ctx, sess, cmd, out)
	case CommandBuy, CommandRerollOffers:
		err = s.shopCommand(ctx, sess, cmd, out)
	case CommandChooseRoomAction:
		err = s.chooseRoomAction(ctx, sess, cmd.Choice, out)
	case CommandUseItem, CommandEquip, CommandUnequip:
		itemCommand(sess, cmd, out)
	default:
		return nil, dnderr.InvalidArgumentf("unknown command '%s'", cmd.Type).
			WithMeta("command", string(cmd.Type))
	}
	if err != nil {
		return nil, err
	}

	if err := s.characterService.SavePlayer(ctx, sess.Player); err != nil {
		return nil, err
	}

	return out, nil
}

func (s *service) enterRoom(ctx context.Context, sess *Session, out *Outcome) error {
	if !sess.Run.CanEnterRoom() {
		return dnderr.FailedPreconditionf("cannot enter a room while the run is %s", sess.Run.State)
	}

	run, err := s.dungeonService.EnterRoom(ctx, sess.Run.ID)
	if err != nil {
		return err
	}
	sess.Run = run

	out.say(roomIntro(run))
	return s.openRoom(ctx, sess, out)
}

// openRoom prepares the resolution of the current room. Chests resolve on
// the spot; other rooms wait for commands.
func (s *service) openRoom(ctx context.Context, sess *Session, out *Outcome) error {
	sess.closeRoom()

	switch kind := sess.Run.Current(); kind {
	case exploration.RoomKindMonster, exploration.RoomKindBoss:
		b, err := s.battleService.StartBattle(ctx, &battle.StartBattleInput{
			Player: sess.Player,
			Boss:   kind == exploration.RoomKindBoss,
		})
		if err != nil {
			return err
		}
		sess.Battle = b
		out.say(fmt.Sprintf("%s appears! It prepares an attack of %d.", b.Monster.String(), b.NextAttack))

	case exploration.RoomKindChest:
		reward, err := s.lootService.OpenChest(ctx, sess.Player)
		if err != nil {
			return err
		}
		out.say(fmt.Sprintf("The chest holds %s.", reward))
		return s.completeRoom(ctx, sess, out)

	case exploration.RoomKindMerchant:
		shop, err := s.merchantService.OpenShop(ctx)
		if err != nil {
			return err
		}
		sess.Shop = shop

	case exploration.RoomKindEncounter:
		enc, err := s.encounterService.Start(ctx)
		if err != nil {
			return err
		}
		sess.Encounter = enc
		out.say(fmt.Sprintf("%s %s: %s", enc.Emoji, enc.Title, enc.Description))

	default:
		return dnderr.Internalf("room kind '%s' has no resolution", kind).
			WithMeta("run_id", sess.Run.ID)
	}

	return nil
}

func (s *service) completeRoom(ctx context.Context, sess *Session, out *Outcome) error {
	run, err := s.dungeonService.CompleteRoom(ctx, sess.Run.ID)
	if err != nil {
		return err
	}
	sess.Run = run
	sess.closeRoom()

	out.RoomCleared = true
	if run.State == exploration.RunStateComplete {
		out.Victory = true
		out.say(fmt.Sprintf("🏆 You conquered the dungeon at level %d!", sess.Player.Level))
	}
	return nil
}

func (s *service) nextRoom(ctx context.Context, sess *Session, out *Outcome) error {
	if !sess.Run.CanProceed() {
		return dnderr.FailedPreconditionf("cannot move on while the run is %s", sess.Run.State)
	}

	run, err := s.dungeonService.ProceedToNextRoom(ctx, sess.Run.ID)
	if err != nil {
		return err
	}
	sess.Run = run

	info := exploration.DescribeRoom(run.Current())
	out.say(fmt.Sprintf("%s: a door to the %s.", run.Progress(), info.Title))
	return nil
}

func (s *service) battleCommand(ctx context.Context, sess *Session, cmd Command, out *Outcome) error {
	if sess.Battle == nil {
		return dnderr.FailedPreconditionf("%s needs a battle, the current room is %s", cmd.Type, sess.Room())
	}

	switch cmd.Type {
	case CommandReroll:
		rerolled, err := s.battleService.Reroll(ctx, sess.Battle)
		if err != nil {
			return err
		}
		if !rerolled {
			out.say("No rerolls left this round.")
		}
		return nil

	case CommandToggleLock:
		_, err := s.battleService.ToggleLock(ctx, sess.Battle, cmd.Index)
		return err
	}

	b := sess.Battle
	result, err := s.battleService.PlayHand(ctx, b)
	if err != nil {
		return err
	}
	for _, line := range roundMessages(b, result) {
		out.say(line)
	}

	switch {
	case result.Victory:
		return s.completeRoom(ctx, sess, out)
	case result.Defeat:
		run, err := s.dungeonService.FailRun(ctx, sess.Run.ID)
		if err != nil {
			return err
		}
		sess.Run = run
		sess.closeRoom()
		out.Defeat = true
	}
	return nil
}

func (s *service) shopCommand(ctx context.Context, sess *Session, cmd Command, out *Outcome) error {
	if sess.Shop == nil {
		return dnderr.FailedPreconditionf("%s needs a merchant, the current room is %s", cmd.Type, sess.Room())
	}

	if cmd.Type == CommandRerollOffers {
		result, err := s.merchantService.RerollOffers(ctx, sess.Shop, sess.Player)
		if err != nil {
			return err
		}
		if result.Rerolled {
			out.say(fmt.Sprintf("The merchant shuffles the wares for %d gold.", result.Cost))
		} else {
			out.say(fmt.Sprintf("A reroll costs %d gold.", result.Cost))
		}
		return nil
	}

	purchase, err := s.merchantService.Buy(ctx, sess.Shop, sess.Player, cmd.Index)
	if err != nil {
		return err
	}
	switch purchase.Status {
	case merchant.PurchaseBought:
		out.say(fmt.Sprintf("You bought %s.", purchase.Item.Label()))
	case merchant.PurchaseSoldOut:
		out.say(fmt.Sprintf("%s is already sold.", purchase.Item.Name))
	case merchant.PurchaseTooExpensive:
		out.say(fmt.Sprintf("You cannot afford %s (%d gold).", purchase.Item.Name, purchase.Item.Cost))
	case merchant.PurchaseNoSuchOffer:
		out.say("The merchant has nothing there.")
	}
	return nil
}

func (s *service) chooseRoomAction(ctx context.Context, sess *Session, choice string, out *Outcome) error {
	switch {
	case sess.Shop != nil:
		if choice != ChoiceLeave {
			return dnderr.InvalidArgumentf("the merchant only offers '%s', got '%s'", ChoiceLeave, choice)
		}
		out.say("You wave goodbye to the merchant.")
		return s.completeRoom(ctx, sess, out)

	case sess.Encounter != nil:
		res, err := s.encounterService.Choose(ctx, sess.Encounter, sess.Player, choice)
		if err != nil {
			return err
		}
		out.say(res.Message)
		if res.Resolved {
			return s.completeRoom(ctx, sess, out)
		}
		return nil
	}

	return dnderr.FailedPreconditionf("the current room %s has no actions to choose", sess.Room())
}

func itemCommand(sess *Session, cmd Command, out *Outcome) {
	p := sess.Player
	switch cmd.Type {
	case CommandUseItem:
		if p.UseItem(cmd.ItemID) {
			out.say(fmt.Sprintf("You used %s.", itemName(cmd.ItemID)))
		} else {
			out.say("You have no such item to use.")
		}
	case CommandEquip:
		if p.EquipItem(cmd.ItemID) {
			out.say(fmt.Sprintf("You equip %s.", itemName(cmd.ItemID)))
		} else {
			out.say("That item cannot be equipped.")
		}
	case CommandUnequip:
		if p.UnequipItem(cmd.ItemID) {
			out.say(fmt.Sprintf("You unequip %s.", itemName(cmd.ItemID)))
		} else {
			out.say("That item is not equipped.")
		}
	}
}

func itemName(id string) string {
	if item, ok := equipment.Lookup(id); ok {
		return item.Label()
	}
	return id
}
