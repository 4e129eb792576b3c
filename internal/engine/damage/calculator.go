// Package damage applies damage batches and rolls recoil and move damage.
package damage

import (
	"fmt"

	"github.com/KirkDiggler/pokerole-bot/internal/engine/pool"
	"github.com/KirkDiggler/pokerole-bot/internal/entities"
	"github.com/KirkDiggler/pokerole-bot/internal/errors"
)

// Messages for rejected updates
const (
	MsgTargetGone      = "The target doesn't exist anymore"
	MsgNotYourTarget   = "You can't modify this actor."
	MsgSupportNoDamage = "Support moves don't deal damage."
)

// PermissionChecker decides whether the acting user may change an actor
type PermissionChecker interface {
	CanModify(actor *entities.Actor) bool
}

// Config holds the dependencies for the calculator
type Config struct {
	Resolver           *pool.Resolver
	SpecialDefenseStat string
	Mitigation         MitigationPolicy
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Resolver == nil {
		vb.RequiredField("Resolver")
	}
	if c.Mitigation != "" && !c.Mitigation.IsValid() {
		vb.InvalidField("Mitigation", string(c.Mitigation))
	}

	return vb.Build()
}

// Calculator turns rolls into damage and applies damage to actors
type Calculator struct {
	resolver           *pool.Resolver
	specialDefenseStat string
	mitigation         MitigationPolicy
}

// NewCalculator creates a calculator from cfg
func NewCalculator(cfg *Config) (*Calculator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	mitigation := cfg.Mitigation
	if mitigation == "" {
		mitigation = MitigationAllOrNothing
	}

	return &Calculator{
		resolver:           cfg.Resolver,
		specialDefenseStat: cfg.SpecialDefenseStat,
		mitigation:         mitigation,
	}, nil
}

// Mitigation returns the clash mitigation policy in use
func (c *Calculator) Mitigation() MitigationPolicy {
	return c.mitigation
}

// TargetResult is what happened to one target of a batch
type TargetResult struct {
	TargetID string
	Applied  bool
	Err      error
	HPBefore int
	HPAfter  int
	Fainted  bool
	Actor    *entities.Actor
}

// AppliedRecord collects the per-target results of a batch
type AppliedRecord struct {
	Results []*TargetResult
}

// Applied returns the results that went through
func (r *AppliedRecord) Applied() []*TargetResult {
	var out []*TargetResult
	for _, res := range r.Results {
		if res.Applied {
			out = append(out, res)
		}
	}
	return out
}

// Failed returns the results that were rejected
func (r *AppliedRecord) Failed() []*TargetResult {
	var out []*TargetResult
	for _, res := range r.Results {
		if !res.Applied {
			out = append(out, res)
		}
	}
	return out
}

// Apply applies each update independently. Targets are looked up in
// targets; a rejected update never affects the others. Updates naming the
// same target stack in order, so the last applied result for a target
// holds its final state. The actors in targets are not modified, updated
// copies are returned in the record.
func (c *Calculator) Apply(updates []entities.DamageUpdate, targets map[string]*entities.Actor, checker PermissionChecker) *AppliedRecord {
	current := make(map[string]*entities.Actor, len(targets))
	for id, actor := range targets {
		current[id] = actor
	}

	record := &AppliedRecord{}
	for _, update := range updates {
		result := c.applyOne(update, current, checker)
		if result.Applied {
			current[update.TargetID] = result.Actor
		}
		record.Results = append(record.Results, result)
	}
	return record
}

// Final returns the last applied result for each target, in the order the
// targets first appear
func (r *AppliedRecord) Final() []*TargetResult {
	last := map[string]*TargetResult{}
	var order []string
	for _, res := range r.Results {
		if !res.Applied {
			continue
		}
		if _, seen := last[res.TargetID]; !seen {
			order = append(order, res.TargetID)
		}
		last[res.TargetID] = res
	}

	out := make([]*TargetResult, 0, len(order))
	for _, id := range order {
		out = append(out, last[id])
	}
	return out
}

func (c *Calculator) applyOne(update entities.DamageUpdate, targets map[string]*entities.Actor, checker PermissionChecker) *TargetResult {
	result := &TargetResult{TargetID: update.TargetID}

	target, ok := targets[update.TargetID]
	if !ok || target == nil {
		result.Err = errors.Reference(MsgTargetGone).WithMeta("target_id", update.TargetID)
		return result
	}
	if checker == nil || !checker.CanModify(target) {
		result.Err = errors.Permission(MsgNotYourTarget).WithMeta("target_id", update.TargetID)
		return result
	}
	for _, ailment := range append(append([]entities.AilmentID{}, update.AddAilments...), update.RemoveAilments...) {
		if !ailment.IsValid() {
			result.Err = errors.InvalidArgumentf("unknown ailment: %s", ailment)
			return result
		}
	}

	updated := target.Clone()
	result.HPBefore = updated.HP.Value

	updated.HP.Value -= update.Delta
	updated.HP.Clamp()

	for _, ailment := range update.RemoveAilments {
		updated.RemoveAilment(ailment)
	}
	for _, ailment := range update.AddAilments {
		updated.AddAilment(ailment)
	}

	if updated.HP.Value == 0 {
		updated.AddAilment(entities.AilmentFainted)
	} else if update.Delta < 0 {
		updated.RemoveAilment(entities.AilmentFainted)
	}

	result.HPAfter = updated.HP.Value
	result.Fainted = updated.HasAilment(entities.AilmentFainted)
	result.Actor = updated
	result.Applied = true
	return result
}

// RecoilResult is a recoil roll and the self damage it causes
type RecoilResult struct {
	Roll   *entities.RollResult
	Update entities.DamageUpdate
}

// RollRecoil rolls damageAmount dice reduced by the attacker's defense.
// Each success is one point of damage to the attacker.
func (c *Calculator) RollRecoil(attacker *entities.Actor, items []*entities.Item, damageAmount int) (*RecoilResult, error) {
	if attacker == nil {
		return nil, errors.Reference("The attacking actor doesn't exist anymore")
	}
	if damageAmount < 0 {
		return nil, errors.InvalidArgumentf("recoil damage must not be negative: %d", damageAmount)
	}

	lookup := pool.NewActorLookup(attacker, items, c.specialDefenseStat)
	defense, _ := lookup.Value(pool.DerivedDefense)

	roll, err := c.resolver.ResolveSize(fmt.Sprintf("recoil %d - defense", damageAmount), damageAmount, entities.PenaltyContext{
		FlatModifier: -defense,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll recoil")
	}

	return &RecoilResult{
		Roll: roll,
		Update: entities.DamageUpdate{
			TargetID: attacker.ID,
			Delta:    roll.Successes,
		},
	}, nil
}

// MoveDamageInput describes a move that hit its target
type MoveDamageInput struct {
	Move          *entities.Item
	Attacker      *entities.Actor
	AttackerItems []*entities.Item
	Target        *entities.Actor
	TargetItems   []*entities.Item
}

// MoveDamageResult is a damage roll and the update it produces
type MoveDamageResult struct {
	Roll   *entities.RollResult
	Damage int
	Update entities.DamageUpdate
}

// RollMoveDamage rolls power plus the damage attribute against the target's
// defense. A hit always deals at least one damage.
func (c *Calculator) RollMoveDamage(input MoveDamageInput) (*MoveDamageResult, error) {
	if input.Move == nil {
		return nil, errors.Reference("The move doesn't exist anymore")
	}
	if input.Attacker == nil {
		return nil, errors.Reference("The attacking actor doesn't exist anymore")
	}
	if input.Target == nil {
		return nil, errors.Reference(MsgTargetGone)
	}

	defenseName := pool.DerivedDefense
	switch input.Move.Category {
	case entities.MoveCategoryPhysical:
	case entities.MoveCategorySpecial:
		defenseName = pool.DerivedSpecialDefense
	default:
		return nil, errors.State(MsgSupportNoDamage)
	}

	attackerLookup := pool.NewActorLookup(input.Attacker, input.AttackerItems, c.specialDefenseStat)
	size := input.Move.Power
	if input.Move.DamageAttribute != "" {
		v, ok := attackerLookup.Value(input.Move.DamageAttribute)
		if !ok {
			return nil, errors.Expressionf("unknown attribute or skill: %s", input.Move.DamageAttribute)
		}
		size += v
	}

	targetLookup := pool.NewActorLookup(input.Target, input.TargetItems, c.specialDefenseStat)
	defense, _ := targetLookup.Value(defenseName)

	penalties := pool.PenaltiesFor(input.Attacker)
	penalties.FlatModifier = -defense

	roll, err := c.resolver.ResolveSize(fmt.Sprintf("%s damage", input.Move.Name), size, penalties)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll damage")
	}

	damage := max(roll.Successes, 1)
	return &MoveDamageResult{
		Roll:   roll,
		Damage: damage,
		Update: entities.DamageUpdate{
			TargetID: input.Target.ID,
			Delta:    damage,
		},
	}, nil
}
