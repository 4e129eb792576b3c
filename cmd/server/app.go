package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/pokerole-bot/internal/config"
	"github.com/KirkDiggler/pokerole-bot/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/pokerole-bot/internal/entities"
	"github.com/KirkDiggler/pokerole-bot/internal/errors"
	"github.com/KirkDiggler/pokerole-bot/internal/handlers/chat"
	"github.com/KirkDiggler/pokerole-bot/internal/orchestrators/actor"
	"github.com/KirkDiggler/pokerole-bot/internal/orchestrators/combat"
	"github.com/KirkDiggler/pokerole-bot/internal/orchestrators/item"
	"github.com/KirkDiggler/pokerole-bot/internal/orchestrators/roll"
	"github.com/KirkDiggler/pokerole-bot/internal/pkg/clock"
	"github.com/KirkDiggler/pokerole-bot/internal/pkg/idgen"
	"github.com/KirkDiggler/pokerole-bot/internal/redis"
	"github.com/KirkDiggler/pokerole-bot/internal/repositories/actors"
	chatactions "github.com/KirkDiggler/pokerole-bot/internal/repositories/chat_actions"
	"github.com/KirkDiggler/pokerole-bot/internal/repositories/combats"
	"github.com/KirkDiggler/pokerole-bot/internal/repositories/items"
	rolllog "github.com/KirkDiggler/pokerole-bot/internal/repositories/roll_log"
)

// gmUser is who command line tools act as
var gmUser = &entities.User{ID: "cli", Name: "cli", IsGM: true}

// app is everything the commands share
type app struct {
	cfg    *config.Config
	redis  redis.Client
	engine *rpgtoolkit.Adapter

	roll   roll.Service
	combat combat.Service
	actor  *actor.Orchestrator
	item   item.Service
	chat   chat.Service
}

func loadConfig() (*config.Config, error) {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}

	cfg, err := config.Load(files...)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid settings")
	}

	setupLogging(cfg.LogLevel)
	return cfg, nil
}

func setupLogging(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

func newEngine(cfg *config.Config) (*rpgtoolkit.Adapter, error) {
	return rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{
		EventBus:   events.NewBus(),
		DiceRoller: dice.DefaultRoller,
		Rules: rpgtoolkit.Rules{
			SuccessThreshold:         cfg.Rules.SuccessThreshold,
			OnesReduceSuccesses:      cfg.Rules.OnesReduceSuccesses,
			SpecialDefenseStat:       cfg.Rules.SpecialDefenseStat,
			CombatResourceAutomation: cfg.Rules.CombatResourceAutomation,
			ActionBudget:             cfg.Rules.ActionBudget,
			MaxPool:                  cfg.Rules.MaxPool,
			Mitigation:               cfg.Rules.Mitigation(),
		},
	})
}

// newApp connects to Redis and wires the orchestrators
func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	client, err := redis.Connect(ctx, cfg.Storage.RedisURL, cfg.Storage.RedisAddr, nil)
	if err != nil {
		return nil, err
	}

	engine, err := newEngine(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create engine")
	}

	realClock := clock.New()

	actorRepo, err := actors.NewRedis(&actors.RedisConfig{Client: client, Clock: realClock})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create actor repository")
	}
	itemRepo, err := items.NewRedis(&items.RedisConfig{Client: client, Clock: realClock})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create item repository")
	}
	combatRepo, err := combats.NewRedis(&combats.RedisConfig{Client: client})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create combat repository")
	}
	rollLogRepo, err := rolllog.NewRedisRepository(&rolllog.Config{
		Client: client,
		Clock:  realClock,
		TTL:    cfg.Storage.RollLogTTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create roll log repository")
	}
	chatActionRepo, err := chatactions.NewRedisRepository(&chatactions.Config{
		Client:      client,
		Clock:       realClock,
		IDGenerator: idgen.NewUUID(idgen.PrefixChatAction),
		TTL:         cfg.Storage.ChatActionTTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create chat action repository")
	}

	a := &app{cfg: cfg, redis: client, engine: engine}

	a.roll, err = roll.NewOrchestrator(&roll.Config{
		Engine:      engine,
		ActorRepo:   actorRepo,
		ItemRepo:    itemRepo,
		RollLogRepo: rollLogRepo,
		IDGenerator: idgen.NewUUID(idgen.PrefixRoll),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create roll orchestrator")
	}

	a.combat, err = combat.NewOrchestrator(&combat.Config{
		Engine:         engine,
		ActorRepo:      actorRepo,
		ItemRepo:       itemRepo,
		CombatRepo:     combatRepo,
		ChatActionRepo: chatActionRepo,
		IDGenerator:    idgen.NewUUID(idgen.PrefixClash),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create combat orchestrator")
	}

	a.actor, err = actor.New(&actor.Config{
		ActorRepo:    actorRepo,
		ItemRepo:     itemRepo,
		IDGenerator:  idgen.NewUUID(idgen.PrefixActor),
		ActionBudget: engine.ActionBudget(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create actor orchestrator")
	}

	a.item, err = item.NewOrchestrator(&item.Config{
		ActorRepo:   actorRepo,
		ItemRepo:    itemRepo,
		IDGenerator: idgen.NewUUID(idgen.PrefixItem),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create item orchestrator")
	}

	a.chat, err = chat.NewRouter(&chat.Config{
		Combat:         a.combat,
		Roll:           a.roll,
		Actor:          a.actor,
		ChatActionRepo: chatActionRepo,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create chat router")
	}

	return a, nil
}

func (a *app) Close() {
	if err := a.redis.Close(); err != nil {
		slog.Warn("Failed to close redis", "error", err.Error())
	}
}
