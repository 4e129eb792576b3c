// Package config loads the bot's settings from the environment
package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/pokerole-bot/internal/engine/damage"
	"github.com/KirkDiggler/pokerole-bot/internal/entities"
	"github.com/KirkDiggler/pokerole-bot/internal/errors"
)

// Special defense stat choices for the world setting
const (
	SpecialDefenseVitality = entities.AttributeVitality
	SpecialDefenseInsight  = entities.AttributeInsight
)

// Discord holds the gateway credentials
type Discord struct {
	Token   string `env:"DISCORD_TOKEN"`
	AppID   string `env:"DISCORD_APP_ID"`
	GuildID string `env:"DISCORD_GUILD_ID"`

	// GMRoleID marks game masters. Server administrators always are.
	GMRoleID string `env:"DISCORD_GM_ROLE_ID"`
}

// Storage holds the Redis connection and key lifetimes
type Storage struct {
	RedisAddr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisURL      string        `env:"REDIS_URL"`
	RollLogTTL    time.Duration `env:"ROLL_LOG_TTL" envDefault:"24h"`
	ChatActionTTL time.Duration `env:"CHAT_ACTION_TTL" envDefault:"6h"`
}

// Rules holds the world settings and house rules
type Rules struct {
	SpecialDefenseStat       string `env:"SPECIAL_DEFENSE_STAT" envDefault:"vitality"`
	CombatResourceAutomation bool   `env:"COMBAT_RESOURCE_AUTOMATION" envDefault:"true"`
	SuccessThreshold         int    `env:"SUCCESS_THRESHOLD" envDefault:"4"`
	OnesReduceSuccesses      bool   `env:"ONES_REDUCE_SUCCESSES" envDefault:"false"`
	ClashMitigation          string `env:"CLASH_MITIGATION" envDefault:"all_or_nothing"`
	ActionBudget             int    `env:"ACTION_BUDGET" envDefault:"5"`
	MaxPool                  int    `env:"MAX_POOL" envDefault:"100"`
}

// Config is everything the server needs to start
type Config struct {
	Discord  Discord
	Storage  Storage
	Rules    Rules
	GRPCPort int    `env:"GRPC_PORT" envDefault:"50051"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads an optional .env file and parses the environment
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && len(files) > 0 {
		return nil, errors.Wrap(err, "failed to load env file")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	cfg.Rules.SpecialDefenseStat = strings.ToLower(cfg.Rules.SpecialDefenseStat)

	return cfg, nil
}

// Validate checks the rules settings
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("SPECIAL_DEFENSE_STAT", c.Rules.SpecialDefenseStat,
		[]string{SpecialDefenseVitality, SpecialDefenseInsight}, vb)
	errors.ValidateRange("SUCCESS_THRESHOLD", c.Rules.SuccessThreshold, 1, 6, vb)
	errors.ValidateEnum("CLASH_MITIGATION", c.Rules.ClashMitigation,
		[]string{string(damage.MitigationAllOrNothing), string(damage.MitigationProportional)}, vb)
	errors.ValidatePositive("ACTION_BUDGET", c.Rules.ActionBudget, vb)
	errors.ValidateRange("MAX_POOL", c.Rules.MaxPool, 1, 1000, vb)
	errors.ValidateRange("GRPC_PORT", c.GRPCPort, 1, 65535, vb)

	if c.Storage.RollLogTTL <= 0 {
		vb.InvalidField("ROLL_LOG_TTL", "must be positive")
	}
	if c.Storage.ChatActionTTL <= 0 {
		vb.InvalidField("CHAT_ACTION_TTL", "must be positive")
	}

	return vb.Build()
}

// ValidateDiscord checks the settings needed to open a gateway session
func (c *Config) ValidateDiscord() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("DISCORD_TOKEN", c.Discord.Token, vb)
	errors.ValidateRequired("DISCORD_APP_ID", c.Discord.AppID, vb)

	return vb.Build()
}

// Mitigation returns the configured clash mitigation policy
func (r Rules) Mitigation() damage.MitigationPolicy {
	return damage.MitigationPolicy(r.ClashMitigation)
}
