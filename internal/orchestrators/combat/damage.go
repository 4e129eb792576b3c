package combat

import (
	"context"
	"log/slog"
	"slices"

	"github.com/KirkDiggler/pokerole-bot/internal/engine"
	"github.com/KirkDiggler/pokerole-bot/internal/engine/damage"
	"github.com/KirkDiggler/pokerole-bot/internal/entities"
	"github.com/KirkDiggler/pokerole-bot/internal/errors"
	"github.com/KirkDiggler/pokerole-bot/internal/repositories/actors"
	"github.com/KirkDiggler/pokerole-bot/internal/repositories/items"
)

// Pain penalization levels
const (
	PainPenaltyHalfHP = 1
	PainPenaltyOneHP  = 2
)

// PainPenaltyFor returns the pain penalization an actor at hp suffers
func PainPenaltyFor(hp entities.Resource) int {
	switch {
	case hp.Value <= 0 || hp.Max <= 0:
		return 0
	case hp.Value == 1:
		return PainPenaltyOneHP
	case hp.Value*2 <= hp.Max:
		return PainPenaltyHalfHP
	default:
		return 0
	}
}

// anyone lets system-driven damage such as recoil through the permission check
type anyone struct{}

func (anyone) CanModify(*entities.Actor) bool { return true }

// Recoil rolls recoil for the attacker of the message carrying the button
// and applies it. Only the GM or the message author may press it.
func (o *orchestrator) Recoil(ctx context.Context, input *RecoilInput) (*RecoilOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	action, err := o.loadAction(ctx, input.ActionID, entities.ChatActionRecoil)
	if err != nil {
		return nil, err
	}

	attacker, err := o.optionalActor(ctx, action.AttackerID)
	if err != nil {
		return nil, err
	}
	if attacker == nil {
		return nil, errors.Reference("The attacking actor doesn't exist anymore")
	}
	if input.User == nil || (!input.User.IsGM && input.User.ID != action.AuthorID) {
		return nil, errors.Permission(MsgCantUseItem)
	}

	heldItems, err := o.itemRepo.ListByActor(ctx, items.ListByActorInput{ActorID: attacker.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load items for %s", attacker.ID)
	}

	recoil, err := o.engine.RollRecoil(ctx, &engine.RollRecoilInput{
		Attacker:     attacker,
		Items:        heldItems.Items,
		DamageAmount: action.DamageAmount,
	})
	if err != nil {
		return nil, err
	}

	applied, err := o.engine.ApplyDamage(ctx, &engine.ApplyDamageInput{
		Updates: []entities.DamageUpdate{recoil.Update},
		Targets: map[string]*entities.Actor{attacker.ID: attacker},
		Checker: anyone{},
	})
	if err != nil {
		return nil, err
	}

	result := applied.Record.Results[0]
	if !result.Applied {
		return nil, result.Err
	}
	if _, err := o.actorRepo.Update(ctx, actors.UpdateInput{Actor: result.Actor}); err != nil {
		return nil, errors.Wrapf(err, "failed to save %s", attacker.ID)
	}

	slog.Info("Recoil applied",
		"actor_id", attacker.ID,
		"damage", recoil.Update.Delta,
		"hp", result.HPAfter)

	return &RecoilOutput{
		Attacker: result.Actor,
		Roll:     recoil.Roll,
		Result:   result,
	}, nil
}

// ApplyDamage applies a damage batch. Each target is validated and saved on
// its own, so one rejected target never blocks the rest.
func (o *orchestrator) ApplyDamage(ctx context.Context, input *ApplyDamageInput) (*ApplyDamageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	updates := input.Updates
	channelID := input.ChannelID
	if input.ActionID != "" {
		action, err := o.loadAction(ctx, input.ActionID, entities.ChatActionApplyDamage)
		if err != nil {
			return nil, err
		}
		updates = action.Updates
		channelID = action.ChannelID
	}
	if len(updates) == 0 {
		return nil, errors.Expression("There is no damage to apply.")
	}

	ids := make([]string, 0, len(updates))
	for _, update := range updates {
		if !slices.Contains(ids, update.TargetID) {
			ids = append(ids, update.TargetID)
		}
	}

	loaded, err := o.actorRepo.GetMany(ctx, actors.GetManyInput{IDs: ids})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load targets")
	}

	var checker damage.PermissionChecker
	if input.User != nil {
		checker = input.User
	}

	applied, err := o.engine.ApplyDamage(ctx, &engine.ApplyDamageInput{
		Updates: updates,
		Targets: loaded.Actors,
		Checker: checker,
	})
	if err != nil {
		return nil, err
	}

	// Stacked updates to one target are saved once, from the final state
	var followUps []*entities.ChatAction
	unsaved := map[string]error{}
	for _, result := range applied.Record.Final() {
		if _, err := o.actorRepo.Update(ctx, actors.UpdateInput{Actor: result.Actor}); err != nil {
			slog.Warn("Failed to save damage",
				"target_id", result.TargetID,
				"error", err.Error())
			unsaved[result.TargetID] = errors.Wrapf(err, "failed to save %s", result.TargetID)
			continue
		}
		followUps = append(followUps, painFollowUps(result, channelID, input.User)...)
	}
	for _, result := range applied.Record.Results {
		if err, ok := unsaved[result.TargetID]; ok && result.Applied {
			result.Applied = false
			result.Err = err
		}
	}

	saved, err := o.saveActions(ctx, followUps)
	if err != nil {
		return nil, err
	}

	slog.Info("Damage applied",
		"targets", len(updates),
		"applied", len(applied.Record.Applied()),
		"failed", len(applied.Record.Failed()))

	return &ApplyDamageOutput{Record: applied.Record, Actions: saved}, nil
}

// ApplyPainPenalty sets the penalization offered after damage
func (o *orchestrator) ApplyPainPenalty(ctx context.Context, input *ApplyPainPenaltyInput) (*ApplyPainPenaltyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	action, err := o.loadAction(ctx, input.ActionID, entities.ChatActionPainPenalty)
	if err != nil {
		return nil, err
	}

	actor, err := o.getActor(ctx, action.TargetID)
	if err != nil {
		return nil, err
	}
	if !input.User.CanModify(actor) {
		return nil, errors.Permission(MsgCantModifyActor)
	}

	actor.PainPenalty = action.PainPenalty
	if _, err := o.actorRepo.Update(ctx, actors.UpdateInput{Actor: actor}); err != nil {
		return nil, errors.Wrapf(err, "failed to save %s", actor.ID)
	}

	return &ApplyPainPenaltyOutput{Actor: actor, Message: MsgPainApplied}, nil
}

// IgnorePainPenalty spends a point of Will instead of taking the penalization
func (o *orchestrator) IgnorePainPenalty(ctx context.Context, input *IgnorePainPenaltyInput) (*IgnorePainPenaltyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	action, err := o.loadAction(ctx, input.ActionID, entities.ChatActionIgnorePainPenalty)
	if err != nil {
		return nil, err
	}

	actor, err := o.getActor(ctx, action.TargetID)
	if err != nil {
		return nil, err
	}
	if !input.User.CanModify(actor) {
		return nil, errors.Permission(MsgCantModifyActor)
	}
	if actor.Will.Value < 1 {
		return nil, errors.State(MsgNoWillLeft)
	}

	actor.Will.Value--
	if _, err := o.actorRepo.Update(ctx, actors.UpdateInput{Actor: actor}); err != nil {
		return nil, errors.Wrapf(err, "failed to save %s", actor.ID)
	}

	return &IgnorePainPenaltyOutput{Actor: actor, Message: MsgToughedThrough}, nil
}

// painFollowUps offers the penalization, or spending Will to ignore it, when
// damage pushed a conscious target into a worse pain level
func painFollowUps(result *damage.TargetResult, channelID string, user *entities.User) []*entities.ChatAction {
	if result.Fainted {
		return nil
	}
	penalty := PainPenaltyFor(result.Actor.HP)
	if penalty <= result.Actor.PainPenalty {
		return nil
	}

	authorID := ""
	if user != nil {
		authorID = user.ID
	}

	return []*entities.ChatAction{
		{
			Kind:        entities.ChatActionPainPenalty,
			ChannelID:   channelID,
			AuthorID:    authorID,
			TargetID:    result.TargetID,
			PainPenalty: penalty,
		},
		{
			Kind:      entities.ChatActionIgnorePainPenalty,
			ChannelID: channelID,
			AuthorID:  authorID,
			TargetID:  result.TargetID,
		},
	}
}
