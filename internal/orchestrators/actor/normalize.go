package actor

import (
	"slices"
	"strings"

	"github.com/KirkDiggler/pokerole-bot/internal/entities"
)

// Pain penalization never goes beyond the one-HP level
const maxPainPenalty = 2

// normalize brings an actor back inside the rules' bounds and reports
// whether anything changed
func normalize(actor *entities.Actor, budget int) bool {
	before := actor.Clone()
	changed := false

	if actor.Kind != entities.ActorKindPokemon && actor.Kind != entities.ActorKindTrainer {
		actor.Kind = entities.ActorKindPokemon
		changed = true
	}

	actor.Attributes, changed = lowerKeys(actor.Attributes, changed)
	actor.Skills, changed = lowerKeys(actor.Skills, changed)

	for _, r := range []*entities.Resource{&actor.HP, &actor.Will} {
		if r.Max < 0 {
			r.Max = 0
		}
		r.Clamp()
	}
	if actor.HP != before.HP || actor.Will != before.Will {
		changed = true
	}

	if pain := min(max(actor.PainPenalty, 0), maxPainPenalty); pain != actor.PainPenalty {
		actor.PainPenalty = pain
		changed = true
	}

	var ailments []entities.AilmentID
	for _, id := range actor.Ailments {
		if !id.IsValid() || slices.Contains(ailments, id) {
			changed = true
			continue
		}
		ailments = append(ailments, id)
	}
	actor.Ailments = ailments

	// Fainted exactly when out of HP
	if actor.HP.Max > 0 {
		switch {
		case actor.HP.Value == 0 && !actor.HasAilment(entities.AilmentFainted):
			actor.AddAilment(entities.AilmentFainted)
			changed = true
		case actor.HP.Value > 0 && actor.HasAilment(entities.AilmentFainted):
			actor.RemoveAilment(entities.AilmentFainted)
			changed = true
		}
	}

	if remaining := min(max(actor.Round.ActionsRemaining, 0), budget); remaining != actor.Round.ActionsRemaining {
		actor.Round.ActionsRemaining = remaining
		changed = true
	}

	return changed
}

func lowerKeys(values map[string]int, changed bool) (map[string]int, bool) {
	if values == nil {
		return map[string]int{}, true
	}
	for name, value := range values {
		lower := strings.ToLower(strings.TrimSpace(name))
		if lower == name {
			continue
		}
		delete(values, name)
		if _, ok := values[lower]; !ok {
			values[lower] = value
		}
		changed = true
	}
	return values, changed
}
