package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dice-dungeon/internal/config"
	"github.com/KirkDiggler/dice-dungeon/internal/dice"
	"github.com/KirkDiggler/dice-dungeon/internal/handlers/discord"
	"github.com/KirkDiggler/dice-dungeon/internal/repositories/characters"
	"github.com/KirkDiggler/dice-dungeon/internal/repositories/dungeons"
	"github.com/KirkDiggler/dice-dungeon/internal/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.LoadBot()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Application ID: %s", cfg.Discord.AppID)
	if cfg.Discord.GuildID != "" {
		log.Printf("Guild ID: %s", cfg.Discord.GuildID)
	}

	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	providerConfig := &services.ProviderConfig{}
	if cfg.Game.Seed != 0 {
		log.Printf("Using seeded dice: %d", cfg.Game.Seed)
		providerConfig.Roller = dice.NewSeededRoller(cfg.Game.Seed)
	}

	// Keep Redis client for cleanup
	var redisClient *redis.Client

	if cfg.Redis.Enabled() {
		log.Printf("Connecting to Redis at: %s", cfg.Redis.URL)

		opts, parseErr := redis.ParseURL(cfg.Redis.URL)
		if parseErr != nil {
			log.Printf("Failed to parse Redis URL: %v", parseErr)
			log.Println("Falling back to in-memory repositories")
		} else {
			redisClient = redis.NewClient(opts)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			pingErr := redisClient.Ping(ctx).Err()
			cancel()

			if pingErr != nil {
				log.Printf("Failed to connect to Redis: %v", pingErr)
				log.Println("Falling back to in-memory repositories")
				_ = redisClient.Close()
				redisClient = nil
			} else {
				log.Println("Successfully connected to Redis")
				providerConfig.CharacterRepository = characters.NewRedis(redisClient)
				providerConfig.DungeonRepository = dungeons.NewRedis(redisClient)
				log.Println("Using Redis for persistence")
			}
		}
	} else {
		log.Println("No REDIS_URL found, using in-memory repositories")
	}

	serviceProvider := services.NewProvider(providerConfig)

	handler := discord.NewHandler(&discord.HandlerConfig{
		GameService: serviceProvider.GameService,
	})

	dg.AddHandler(handler.HandleInteraction)

	if err := dg.Open(); err != nil {
		log.Printf("Failed to open Discord connection: %v", err)
		return
	}
	defer func() {
		if clientErr := dg.Close(); clientErr != nil {
			log.Printf("Failed to close Discord connection: %v", clientErr)
		}
	}()

	// Use empty string for global commands, or set a specific guild ID for testing
	if err := handler.RegisterCommands(dg, cfg.Discord.GuildID); err != nil {
		log.Printf("Failed to register commands: %v", err)
		return
	}

	if cfg.Discord.GuildID != "" {
		log.Printf("Registered commands for guild: %s", cfg.Discord.GuildID)
	} else {
		log.Println("Registered global commands (may take up to 1 hour to propagate)")
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	fmt.Println("Shutting down...")

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		} else {
			log.Println("Closed Redis connection")
		}
	}
}
