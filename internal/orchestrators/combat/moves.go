package combat

import (
	"context"
	"log/slog"
	"slices"

	"github.com/KirkDiggler/pokerole-bot/internal/engine"
	"github.com/KirkDiggler/pokerole-bot/internal/engine/damage"
	"github.com/KirkDiggler/pokerole-bot/internal/entities"
	"github.com/KirkDiggler/pokerole-bot/internal/errors"
	"github.com/KirkDiggler/pokerole-bot/internal/repositories/items"
)

// UseMove rolls accuracy and, on a hit, damage against every target. The
// damage is not applied; it is offered as an applyDamage action next to the
// targets' clash and evade buttons.
func (o *orchestrator) UseMove(ctx context.Context, input *UseMoveInput) (*UseMoveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	attacker, err := o.assignedActor(ctx, input.User)
	if err != nil {
		return nil, err
	}

	move, err := o.optionalItem(ctx, input.MoveID)
	if err != nil {
		return nil, err
	}
	switch {
	case move == nil:
		return nil, errors.Reference(MsgMoveGone)
	case move.ActorID != attacker.ID:
		return nil, errors.Permission(MsgCantUseItem)
	case !move.IsMove():
		return nil, errors.State(MsgNotAMove)
	}

	heldItems, err := o.itemRepo.ListByActor(ctx, items.ListByActorInput{ActorID: attacker.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load items for %s", attacker.ID)
	}

	output := &UseMoveOutput{Actor: attacker, Move: move, Hit: true}
	expected := 1
	if move.Accuracy != "" {
		accuracy, err := o.engine.ResolvePool(ctx, &engine.ResolvePoolInput{
			Expression: move.Accuracy,
			Actor:      attacker,
			Items:      heldItems.Items,
		})
		if err != nil {
			return nil, err
		}
		output.Accuracy = accuracy.Result
		output.Hit = accuracy.Result.Successes > 0
		expected = accuracy.Result.Successes
	}

	slog.Info("Move used",
		"actor_id", attacker.ID,
		"move_id", move.ID,
		"targets", len(input.TargetIDs),
		"hit", output.Hit)

	if !output.Hit || move.Category == entities.MoveCategorySupport {
		return output, nil
	}

	var updates []entities.DamageUpdate
	total := 0
	for _, targetID := range input.TargetIDs {
		target, err := o.optionalActor(ctx, targetID)
		if err != nil {
			return nil, err
		}
		if target == nil {
			return nil, errors.Reference(damage.MsgTargetGone).WithMeta("target_id", targetID)
		}

		targetItems, err := o.itemRepo.ListByActor(ctx, items.ListByActorInput{ActorID: target.ID})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load items for %s", target.ID)
		}

		rolled, err := o.engine.RollMoveDamage(ctx, &engine.RollMoveDamageInput{
			MoveDamageInput: damage.MoveDamageInput{
				Move:          move,
				Attacker:      attacker,
				AttackerItems: heldItems.Items,
				Target:        target,
				TargetItems:   targetItems.Items,
			},
		})
		if err != nil {
			return nil, err
		}

		output.Damage = append(output.Damage, rolled.MoveDamageResult)
		updates = append(updates, rolled.Update)
		total += rolled.Damage
	}

	authorID := input.User.ID

	// The damage batch is stored first so the clash button can point at it
	var applyDamage []*entities.ChatAction
	if len(updates) > 0 {
		applyDamage, err = o.saveActions(ctx, []*entities.ChatAction{{
			Kind:      entities.ChatActionApplyDamage,
			ChannelID: input.ChannelID,
			AuthorID:  authorID,
			Updates:   updates,
		}})
		if err != nil {
			return nil, err
		}
	}

	clash := &entities.ChatAction{
		Kind:              entities.ChatActionClash,
		ChannelID:         input.ChannelID,
		AuthorID:          authorID,
		AttackerID:        attacker.ID,
		MoveID:            move.ID,
		ExpectedSuccesses: expected,
	}
	if len(applyDamage) > 0 {
		clash.DamageActionID = applyDamage[0].ID
	}
	reactions, err := o.saveActions(ctx, []*entities.ChatAction{clash, {
		Kind:       entities.ChatActionEvade,
		ChannelID:  input.ChannelID,
		AuthorID:   authorID,
		AttackerID: attacker.ID,
		MoveID:     move.ID,
	}})
	if err != nil {
		return nil, err
	}

	var recoil []*entities.ChatAction
	if move.Recoil && total > 0 {
		recoil, err = o.saveActions(ctx, []*entities.ChatAction{{
			Kind:         entities.ChatActionRecoil,
			ChannelID:    input.ChannelID,
			AuthorID:     authorID,
			AttackerID:   attacker.ID,
			MoveID:       move.ID,
			DamageAmount: total,
		}})
		if err != nil {
			return nil, err
		}
	}

	output.Actions = slices.Concat(reactions, applyDamage, recoil)

	return output, nil
}
