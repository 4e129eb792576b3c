package rpgtoolkit

import (
	"github.com/KirkDiggler/pokerole-bot/internal/engine/damage"
	"github.com/KirkDiggler/pokerole-bot/internal/entities"
)

func damageInput(move *entities.Item, attacker, target *entities.Actor) damage.MoveDamageInput {
	return damage.MoveDamageInput{Move: move, Attacker: attacker, Target: target}
}
