package pool

import (
	"math"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/pokerole-bot/internal/entities"
	"github.com/KirkDiggler/pokerole-bot/internal/errors"
)

const dieSize = 6

// DefaultMaxPool caps the dice rolled for one pool
const DefaultMaxPool = 100

// ResolverConfig configures the counting rules
type ResolverConfig struct {
	Roller dice.Roller

	// SuccessThreshold defaults to entities.DefaultSuccessThreshold
	SuccessThreshold int

	// OnesReduceSuccesses makes every face of 1 cancel one success
	OnesReduceSuccesses bool

	// MaxPool defaults to DefaultMaxPool
	MaxPool int
}

// Validate ensures the configuration is usable
func (c *ResolverConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.SuccessThreshold != 0 {
		errors.ValidateRange("SuccessThreshold", c.SuccessThreshold, 1, dieSize, vb)
	}
	if c.MaxPool < 0 {
		vb.InvalidField("MaxPool", "must not be negative")
	}

	return vb.Build()
}

// Resolver rolls dice pools. It never touches actor state.
type Resolver struct {
	roller     dice.Roller
	threshold  int
	onesReduce bool
	maxPool    int
}

// NewResolver creates a resolver from cfg
func NewResolver(cfg *ResolverConfig) (*Resolver, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	threshold := cfg.SuccessThreshold
	if threshold == 0 {
		threshold = entities.DefaultSuccessThreshold
	}

	maxPool := cfg.MaxPool
	if maxPool == 0 {
		maxPool = DefaultMaxPool
	}

	return &Resolver{
		roller:     cfg.Roller,
		threshold:  threshold,
		onesReduce: cfg.OnesReduceSuccesses,
		maxPool:    maxPool,
	}, nil
}

// Threshold returns the success threshold in use
func (r *Resolver) Threshold() int {
	return r.threshold
}

// Resolve parses expression, evaluates it with lookup and rolls the pool
func (r *Resolver) Resolve(expression string, lookup Lookup, penalties entities.PenaltyContext) (*entities.RollResult, error) {
	expr, err := Parse(expression)
	if err != nil {
		return nil, err
	}

	size, err := expr.Evaluate(lookup)
	if err != nil {
		return nil, err
	}

	return r.ResolveSize(expr.Source, size, penalties)
}

// ResolveSize rolls a pool whose size is already known
func (r *Resolver) ResolveSize(label string, size int, penalties entities.PenaltyContext) (*entities.RollResult, error) {
	result := &entities.RollResult{
		Expression:          label,
		PoolBeforePenalties: size,
		SuccessThreshold:    r.threshold,
	}

	dicePool := ApplyPenalties(size, penalties)
	if dicePool > r.maxPool {
		return nil, errors.Expressionf("That pool has %d dice, the most you can roll is %d.", dicePool, r.maxPool).
			WithMeta("expression", label)
	}
	result.DiceRolled = dicePool
	if dicePool == 0 {
		return result, nil
	}

	faces, err := r.roller.RollN(dicePool, dieSize)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %d dice", dicePool)
	}

	result.RawFaces = faces
	result.Successes, result.OnesCancelled = r.count(faces)

	return result, nil
}

func (r *Resolver) count(faces []int) (successes, cancelled int) {
	ones := 0
	for _, face := range faces {
		if face >= r.threshold {
			successes++
		}
		if face == 1 {
			ones++
		}
	}

	if r.onesReduce && ones > 0 {
		cancelled = min(ones, successes)
		successes -= cancelled
	}

	return successes, cancelled
}

// ApplyPenalties returns the pool size after penalties, floored at zero.
// Confusion always costs exactly one die.
func ApplyPenalties(size int, penalties entities.PenaltyContext) int {
	size = saturatingAdd(size, -max(penalties.PainPenalty, 0))
	if penalties.ConfusionPenalty {
		size = saturatingAdd(size, -1)
	}
	size = saturatingAdd(size, penalties.FlatModifier)
	return max(size, 0)
}

func saturatingAdd(a, b int) int {
	if sum, ok := addChecked(a, b); ok {
		return sum
	}
	if b > 0 {
		return math.MaxInt
	}
	return math.MinInt
}
