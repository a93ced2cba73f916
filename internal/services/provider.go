package services

import (
	"github.com/KirkDiggler/dice-dungeon/internal/clock"
	"github.com/KirkDiggler/dice-dungeon/internal/dice"
	"github.com/KirkDiggler/dice-dungeon/internal/events"
	"github.com/KirkDiggler/dice-dungeon/internal/repositories/characters"
	"github.com/KirkDiggler/dice-dungeon/internal/repositories/dungeons"
	"github.com/KirkDiggler/dice-dungeon/internal/services/battle"
	characterService "github.com/KirkDiggler/dice-dungeon/internal/services/character"
	"github.com/KirkDiggler/dice-dungeon/internal/services/dungeon"
	"github.com/KirkDiggler/dice-dungeon/internal/services/encounter"
	"github.com/KirkDiggler/dice-dungeon/internal/services/game"
	"github.com/KirkDiggler/dice-dungeon/internal/services/loot"
	"github.com/KirkDiggler/dice-dungeon/internal/services/merchant"
	"github.com/KirkDiggler/dice-dungeon/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	CharacterService characterService.Service
	DungeonService   dungeon.Service
	BattleService    battle.Service
	LootService      loot.Service
	MerchantService  merchant.Service
	EncounterService encounter.Service
	GameService      game.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	CharacterRepository characters.Repository // Optional, defaults to in-memory
	DungeonRepository   dungeons.Repository   // Optional, defaults to in-memory
	Roller              dice.Roller           // Optional, defaults to a random roller
	EventBus            *events.Bus           // Optional, defaults to a logging battle bus
	UUIDGenerator       uuid.Generator        // Optional
	Clock               clock.Clock           // Optional
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	if cfg == nil {
		cfg = &ProviderConfig{}
	}

	// Use in-memory repositories if none provided
	charRepo := cfg.CharacterRepository
	if charRepo == nil {
		charRepo = characters.NewInMemoryRepository()
	}

	runRepo := cfg.DungeonRepository
	if runRepo == nil {
		runRepo = dungeons.NewInMemoryRepository()
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}

	charService := characterService.NewService(&characterService.ServiceConfig{
		Repository:    charRepo,
		UUIDGenerator: cfg.UUIDGenerator,
	})

	dungeonSvc := dungeon.NewService(&dungeon.ServiceConfig{
		Repository:    runRepo,
		Roller:        roller,
		UUIDGenerator: cfg.UUIDGenerator,
		Clock:         cfg.Clock,
	})

	battleSvc := battle.NewService(&battle.ServiceConfig{
		Roller:        roller,
		EventBus:      cfg.EventBus,
		UUIDGenerator: cfg.UUIDGenerator,
	})

	lootSvc := loot.NewService(&loot.ServiceConfig{Roller: roller})
	merchantSvc := merchant.NewService(&merchant.ServiceConfig{Roller: roller})
	encounterSvc := encounter.NewService(&encounter.ServiceConfig{Roller: roller})

	gameSvc := game.NewService(&game.ServiceConfig{
		CharacterService: charService,
		DungeonService:   dungeonSvc,
		BattleService:    battleSvc,
		LootService:      lootSvc,
		MerchantService:  merchantSvc,
		EncounterService: encounterSvc,
	})

	return &Provider{
		CharacterService: charService,
		DungeonService:   dungeonSvc,
		BattleService:    battleSvc,
		LootService:      lootSvc,
		MerchantService:  merchantSvc,
		EncounterService: encounterSvc,
		GameService:      gameSvc,
	}
}
