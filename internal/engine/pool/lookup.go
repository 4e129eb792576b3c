package pool

import (
	"strings"

	"github.com/KirkDiggler/pokerole-bot/internal/entities"
)

// Derived value names an ActorLookup understands on top of attributes and skills
const (
	DerivedEvade          = "evade"
	DerivedDefense        = "defense"
	DerivedSpecialDefense = "specialdefense"
	DerivedInitiative     = "initiative"
	DerivedWill           = "will"
	DerivedHP             = "hp"
)

// ActorLookup resolves names against an actor with its items' rules applied
type ActorLookup struct {
	actor              *entities.Actor
	items              []*entities.Item
	specialDefenseStat string
}

// NewActorLookup builds a lookup. specialDefenseStat is the attribute used
// for special defense, vitality when empty.
func NewActorLookup(actor *entities.Actor, items []*entities.Item, specialDefenseStat string) *ActorLookup {
	if specialDefenseStat == "" {
		specialDefenseStat = entities.AttributeVitality
	}
	return &ActorLookup{
		actor:              actor,
		items:              items,
		specialDefenseStat: strings.ToLower(specialDefenseStat),
	}
}

// Value implements Lookup
func (l *ActorLookup) Value(name string) (int, bool) {
	if l.actor == nil {
		return 0, false
	}
	name = strings.ToLower(name)

	base, ok := l.base(name)
	if !ok {
		return 0, false
	}
	return l.applyRules(name, base), true
}

func (l *ActorLookup) base(name string) (int, bool) {
	switch name {
	case DerivedEvade:
		return l.effective(entities.AttributeDexterity) + l.effective(entities.SkillEvasion), true
	case DerivedDefense:
		return l.effective(entities.AttributeVitality), true
	case DerivedSpecialDefense:
		return l.effective(l.specialDefenseStat), true
	case DerivedInitiative:
		return l.effective(entities.AttributeDexterity) + l.effective(entities.SkillAlert) + l.actor.InitiativeMod, true
	case DerivedWill:
		return l.actor.Will.Value, true
	case DerivedHP:
		return l.actor.HP.Value, true
	}
	return l.actor.Attribute(name)
}

// effective is the attribute or skill with rules applied, zero when unknown
func (l *ActorLookup) effective(name string) int {
	v, _ := l.actor.Attribute(name)
	return l.applyRules(name, v)
}

// applyRules applies replace rules first (last one wins) and then every add rule
func (l *ActorLookup) applyRules(name string, value int) int {
	for _, item := range l.items {
		for _, rule := range item.Rules {
			if rule.Operator == entities.RuleOperatorReplace && strings.EqualFold(rule.Attribute, name) {
				value = rule.Value
			}
		}
	}
	for _, item := range l.items {
		for _, rule := range item.Rules {
			if rule.Operator == entities.RuleOperatorAdd && strings.EqualFold(rule.Attribute, name) {
				value += rule.Value
			}
		}
	}
	return value
}

// PenaltiesFor returns the penalties an actor's state imposes on its rolls
func PenaltiesFor(actor *entities.Actor) entities.PenaltyContext {
	if actor == nil {
		return entities.PenaltyContext{}
	}
	return entities.PenaltyContext{
		PainPenalty:      actor.PainPenalty,
		ConfusionPenalty: actor.HasAilment(entities.AilmentConfused),
	}
}
