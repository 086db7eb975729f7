package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/Skelly0/DuelBot/internal/config"
	"github.com/Skelly0/DuelBot/internal/dice"
	"github.com/Skelly0/DuelBot/internal/domain/duel"
	"github.com/Skelly0/DuelBot/internal/domain/stance"
	"github.com/Skelly0/DuelBot/internal/events"
	"github.com/Skelly0/DuelBot/internal/handlers/discord"
	settingsrepo "github.com/Skelly0/DuelBot/internal/repositories/settings"
	duelsvc "github.com/Skelly0/DuelBot/internal/services/duel"
	settingssvc "github.com/Skelly0/DuelBot/internal/services/settings"
	"github.com/Skelly0/DuelBot/internal/uuid"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Bot stopped: %v", err)
	}
}

func run() error {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log.Printf("Application ID: %s", cfg.Discord.AppID)
	if cfg.Discord.GuildID != "" {
		log.Printf("Guild ID: %s", cfg.Discord.GuildID)
	}

	var ringOpts []stance.Option
	if cfg.Duel.AsymmetricDistanceFour {
		ringOpts = append(ringOpts, stance.WithAsymmetricDistanceFour())
	}
	ring, err := stance.NewRing(cfg.Duel.Stances, ringOpts...)
	if err != nil {
		return fmt.Errorf("failed to build stance ring: %w", err)
	}

	roller, err := dice.NewRandomRoller()
	if err != nil {
		return fmt.Errorf("failed to seed dice roller: %w", err)
	}

	eventBus := events.NewBus()

	duelService := duelsvc.NewService(&duelsvc.ServiceConfig{
		Engine:        duel.NewEngine(&duel.EngineConfig{Ring: ring, Roller: roller}),
		UUIDGenerator: uuid.NewGenerator(),
		EventBus:      eventBus,
		Timeouts: &duelsvc.Timeouts{
			Match:  cfg.Timeouts.Match,
			Accept: cfg.Timeouts.Accept,
			Idle:   cfg.Timeouts.Idle,
		},
	})

	repo, closeRepo, err := openSettingsRepository(cfg.Storage)
	if err != nil {
		return err
	}
	defer closeRepo()

	settingsService := settingssvc.NewService(&settingssvc.ServiceConfig{
		Repository: repo,
	})

	handler := discord.NewHandler(&discord.HandlerConfig{
		DuelService:     duelService,
		SettingsService: settingsService,
		Ring:            ring,
		ModifierLimits: &duelsvc.ModifierLimits{
			Min: cfg.Duel.ModifierMin,
			Max: cfg.Duel.ModifierMax,
		},
		TalentMarker:         cfg.Duel.TalentMarker,
		TalentBonus:          cfg.Duel.TalentBonus,
		CancelConfirmTimeout: cfg.Timeouts.CancelConfirm,
	})

	// Create Discord session
	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}

	dg.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		guildIDs := make([]string, 0, len(r.Guilds))
		for _, g := range r.Guilds {
			guildIDs = append(guildIDs, g.ID)
		}
		log.Printf("Connected as %s, loading settings for %d guild(s)", r.User.Username, len(guildIDs))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := settingsService.Load(ctx, guildIDs); err != nil {
			log.Printf("Failed to load guild settings: %v", err)
		}
	})
	dg.AddHandler(discord.RecoverMiddleware("interaction", handler.HandleInteraction))

	discord.NewExpiryAnnouncer(dg).Register(eventBus)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}
	defer func() {
		if closeErr := dg.Close(); closeErr != nil {
			log.Printf("Failed to close Discord connection: %v", closeErr)
		}
	}()

	// Use empty string for global commands, or set a specific guild ID for testing
	if err := handler.RegisterCommands(dg, cfg.Discord.GuildID); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}
	if cfg.Discord.GuildID != "" {
		log.Printf("Registered commands for guild: %s", cfg.Discord.GuildID)
	} else {
		log.Println("Registered global commands (may take up to 1 hour to propagate)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	sweeper := duelsvc.NewSweeper(&duelsvc.SweeperConfig{
		Service:  duelService,
		Interval: cfg.Timeouts.SweepInterval,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sweeper.Run(gctx)
	})

	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	fmt.Println("Shutting down...")
	return nil
}

// openSettingsRepository picks Redis, then SQLite, then memory. A Redis URL that
// cannot be reached falls back to the next option rather than failing startup.
func openSettingsRepository(cfg config.StorageConfig) (settingsrepo.Repository, func(), error) {
	noop := func() {}

	if cfg.RedisURL != "" {
		log.Println("Connecting to Redis for settings")

		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Printf("Failed to parse Redis URL: %v", err)
		} else {
			client := redis.NewClient(opts)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			pingErr := client.Ping(ctx).Err()
			cancel()

			if pingErr == nil {
				log.Println("Using Redis for settings persistence")
				return settingsrepo.NewRedisRepository(&settingsrepo.RedisRepoConfig{Client: client}), func() {
					if err := client.Close(); err != nil {
						log.Printf("Error closing Redis connection: %v", err)
					}
				}, nil
			}

			log.Printf("Failed to connect to Redis: %v", pingErr)
			_ = client.Close()
		}
	}

	if cfg.SettingsDBPath != "" {
		store, err := settingsrepo.OpenSQLite(cfg.SettingsDBPath)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to open settings database: %w", err)
		}
		log.Printf("Using SQLite for settings persistence at %s", cfg.SettingsDBPath)
		return store, func() {
			if err := store.Close(); err != nil {
				log.Printf("Error closing settings database: %v", err)
			}
		}, nil
	}

	log.Println("No settings store configured, using in-memory settings")
	return settingsrepo.NewInMemoryRepository(), noop, nil
}
