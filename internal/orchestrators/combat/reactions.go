package combat

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/pokerole-bot/internal/engine"
	"github.com/KirkDiggler/pokerole-bot/internal/engine/contest"
	"github.com/KirkDiggler/pokerole-bot/internal/engine/round"
	"github.com/KirkDiggler/pokerole-bot/internal/entities"
	"github.com/KirkDiggler/pokerole-bot/internal/errors"
	"github.com/KirkDiggler/pokerole-bot/internal/repositories/actors"
	chatactions "github.com/KirkDiggler/pokerole-bot/internal/repositories/chat_actions"
	"github.com/KirkDiggler/pokerole-bot/internal/repositories/items"
)

// ProposeClash validates the pressing user's clash and offers their
// damaging moves as choices
func (o *orchestrator) ProposeClash(ctx context.Context, input *ProposeClashInput) (*ProposeClashOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	action, err := o.loadAction(ctx, input.ActionID, entities.ChatActionClash)
	if err != nil {
		return nil, err
	}

	attempt, defender, clashMoves, err := o.propose(ctx, action, input.User)
	if err != nil {
		return nil, err
	}

	choices := make([]*entities.ChatAction, 0, len(clashMoves)+1)
	for _, move := range clashMoves {
		choices = append(choices, &entities.ChatAction{
			Kind:        entities.ChatActionClashChoice,
			ChannelID:   action.ChannelID,
			AuthorID:    input.User.ID,
			AttemptID:   attempt.ID,
			ClashMoveID: move.ID,
		})
	}
	choices = append(choices, &entities.ChatAction{
		Kind:      entities.ChatActionClashCancel,
		ChannelID: action.ChannelID,
		AuthorID:  input.User.ID,
		AttemptID: attempt.ID,
	})

	saved, err := o.saveActions(ctx, choices)
	if err != nil {
		o.dropAttempt(attempt.ID)
		return nil, err
	}

	return &ProposeClashOutput{
		Attempt:    attempt,
		Defender:   defender,
		ClashMoves: clashMoves,
		Choices:    saved,
	}, nil
}

// ResolveClash rolls the defender's chosen move. The defender's clash and
// the chosen move are spent whether or not the clash succeeds.
func (o *orchestrator) ResolveClash(ctx context.Context, input *ResolveClashInput) (*ResolveClashOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	attemptID, clashMoveID := input.AttemptID, input.ClashMoveID
	if input.ActionID != "" {
		action, err := o.loadAction(ctx, input.ActionID, entities.ChatActionClashChoice)
		if err != nil {
			return nil, err
		}
		attemptID, clashMoveID = action.AttemptID, action.ClashMoveID
	}

	return o.resolve(ctx, attemptID, clashMoveID, input.User)
}

// AbortClash drops an open clash without spending anything
func (o *orchestrator) AbortClash(ctx context.Context, input *AbortClashInput) (*AbortClashOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	attemptID := input.AttemptID
	if input.ActionID != "" {
		action, err := o.loadAction(ctx, input.ActionID, entities.ChatActionClashCancel)
		if err != nil {
			return nil, err
		}
		attemptID = action.AttemptID
	}

	pending, err := o.claimAttempt(attemptID)
	if err != nil {
		return nil, err
	}

	if err := o.authorizeDefender(ctx, pending.attempt.DefenderID, input.User); err != nil {
		o.restoreAttempt(pending)
		return nil, err
	}

	reason := input.Reason
	if reason == "" {
		reason = MsgClashCancelled
	}

	output, err := o.engine.AbortClash(ctx, &engine.AbortClashInput{
		Attempt: pending.attempt,
		Reason:  reason,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Clash aborted", "attempt_id", output.Attempt.ID, "reason", reason)

	return &AbortClashOutput{Attempt: output.Attempt}, nil
}

// Clash proposes and resolves a clash in one step. Without a ClashMoveID
// the defender's only damaging move is used; a defender with several gets
// the choices back in Proposed instead.
func (o *orchestrator) Clash(ctx context.Context, input *ClashInput) (*ClashOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if input.ClashMoveID == "" {
		proposed, err := o.ProposeClash(ctx, &ProposeClashInput{ActionID: input.ActionID, User: input.User})
		if err != nil {
			return nil, err
		}
		if len(proposed.ClashMoves) != 1 {
			return &ClashOutput{Proposed: proposed}, nil
		}

		// the unused choice buttons expire with the chat action TTL
		resolved, err := o.resolve(ctx, proposed.Attempt.ID, proposed.ClashMoves[0].ID, input.User)
		if err != nil {
			o.dropAttempt(proposed.Attempt.ID)
			return nil, err
		}
		return clashOutput(resolved), nil
	}

	action, err := o.loadAction(ctx, input.ActionID, entities.ChatActionClash)
	if err != nil {
		return nil, err
	}

	attempt, _, _, err := o.propose(ctx, action, input.User)
	if err != nil {
		return nil, err
	}

	resolved, err := o.resolve(ctx, attempt.ID, input.ClashMoveID, input.User)
	if err != nil {
		o.dropAttempt(attempt.ID)
		return nil, err
	}

	return clashOutput(resolved), nil
}

func clashOutput(resolved *ResolveClashOutput) *ClashOutput {
	return &ClashOutput{
		Attempt:    resolved.Attempt,
		Defender:   resolved.Defender,
		Consumed:   resolved.Consumed,
		Mitigation: resolved.Mitigation,
	}
}

// Evade rolls the pressing user's evade pool. The evade is only spent when
// it succeeds.
func (o *orchestrator) Evade(ctx context.Context, input *EvadeInput) (*EvadeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if _, err := o.loadAction(ctx, input.ActionID, entities.ChatActionEvade); err != nil {
		return nil, err
	}

	defender, err := o.assignedActor(ctx, input.User)
	if err != nil {
		return nil, err
	}

	heldItems, err := o.itemRepo.ListByActor(ctx, items.ListByActorInput{ActorID: defender.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load items for %s", defender.ID)
	}

	evade, err := o.engine.Evade(ctx, &engine.EvadeInput{
		EvadeInput: contest.EvadeInput{Defender: defender, Items: heldItems.Items},
	})
	if err != nil {
		return nil, err
	}

	output := &EvadeOutput{
		Defender: defender,
		Result:   evade.Result,
		Evaded:   evade.Evaded,
	}
	if !evade.Evaded {
		return output, nil
	}

	consumed, err := o.engine.ConsumePermission(ctx, &engine.ConsumePermissionInput{
		Actor:      defender,
		Permission: round.PermissionEvade,
	})
	if err != nil {
		return nil, err
	}
	if consumed.Consumed {
		if _, err := o.actorRepo.Update(ctx, actors.UpdateInput{Actor: defender}); err != nil {
			return nil, errors.Wrapf(err, "failed to save %s", defender.ID)
		}
	}
	output.Consumed = consumed.Consumed

	slog.Info("Evade rolled",
		"actor_id", defender.ID,
		"successes", evade.Result.Successes,
		"evaded", evade.Evaded)

	return output, nil
}

// propose loads everything a clash needs and registers the attempt
func (o *orchestrator) propose(ctx context.Context, action *entities.ChatAction, user *entities.User) (*contest.Attempt, *entities.Actor, []*entities.Item, error) {
	defender, err := o.assignedActor(ctx, user)
	if err != nil {
		return nil, nil, nil, err
	}

	attacker, err := o.optionalActor(ctx, action.AttackerID)
	if err != nil {
		return nil, nil, nil, err
	}
	move, err := o.optionalItem(ctx, action.MoveID)
	if err != nil {
		return nil, nil, nil, err
	}

	proposed, err := o.engine.ProposeClash(ctx, &engine.ProposeClashInput{
		ProposeInput: contest.ProposeInput{
			ID:                o.idGen.Generate(),
			Defender:          defender,
			Attacker:          attacker,
			Move:              move,
			ExpectedSuccesses: action.ExpectedSuccesses,
		},
	})
	if err != nil {
		return nil, nil, nil, err
	}

	heldItems, err := o.itemRepo.ListByActor(ctx, items.ListByActorInput{ActorID: defender.ID})
	if err != nil {
		return nil, nil, nil, errors.Wrapf(err, "failed to load items for %s", defender.ID)
	}

	var clashMoves []*entities.Item
	for _, item := range heldItems.Items {
		if !item.IsMove() {
			continue
		}
		if _, err := contest.ClashAttribute(item); err == nil {
			clashMoves = append(clashMoves, item)
		}
	}

	o.mu.Lock()
	o.attempts[proposed.Attempt.ID] = &pendingAttempt{
		attempt:        proposed.Attempt,
		channelID:      action.ChannelID,
		damageActionID: action.DamageActionID,
	}
	o.mu.Unlock()

	slog.Info("Clash proposed",
		"attempt_id", proposed.Attempt.ID,
		"defender_id", defender.ID,
		"attacker_id", attacker.ID,
		"expected", proposed.Attempt.ExpectedSuccesses)

	return proposed.Attempt, defender, clashMoves, nil
}

// resolve settles a claimed attempt. On any failure before the writes
// finish the attempt goes back to waiting on the defender.
func (o *orchestrator) resolve(ctx context.Context, attemptID, clashMoveID string, user *entities.User) (*ResolveClashOutput, error) {
	pending, err := o.claimAttempt(attemptID)
	if err != nil {
		return nil, err
	}

	output, err := o.settle(ctx, pending, clashMoveID, user)
	if err != nil {
		o.restoreAttempt(pending)
		return nil, err
	}
	return output, nil
}

func (o *orchestrator) settle(ctx context.Context, pending *pendingAttempt, clashMoveID string, user *entities.User) (*ResolveClashOutput, error) {
	defender, err := o.getActor(ctx, pending.attempt.DefenderID)
	if err != nil {
		return nil, err
	}
	if !user.CanModify(defender) {
		return nil, errors.Permission(MsgNotYourClash)
	}

	clashMove, err := o.optionalItem(ctx, clashMoveID)
	if err != nil {
		return nil, err
	}

	heldItems, err := o.itemRepo.ListByActor(ctx, items.ListByActorInput{ActorID: defender.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load items for %s", defender.ID)
	}

	before := defender.Clone()
	consumed, err := o.engine.ConsumePermission(ctx, &engine.ConsumePermissionInput{
		Actor:      defender,
		Permission: round.PermissionClash,
	})
	if err != nil {
		return nil, err
	}

	// Work on a copy so a failed write leaves the pending attempt untouched
	working := *pending.attempt
	resolved, err := o.engine.ResolveClash(ctx, &engine.ResolveClashInput{
		ClashInput: contest.ClashInput{
			Attempt:   &working,
			Defender:  defender,
			ClashMove: clashMove,
			Items:     heldItems.Items,
		},
	})
	if err != nil {
		return nil, err
	}

	if consumed.Consumed {
		if err := o.spendClash(ctx, before, defender, clashMove); err != nil {
			return nil, err
		}
	}

	mitigation := o.mitigate(ctx, pending.damageActionID, resolved.Attempt)

	slog.Info("Clash resolved",
		"attempt_id", resolved.Attempt.ID,
		"defender_id", defender.ID,
		"clash_move_id", clashMove.ID,
		"outcome", resolved.Attempt.Outcome,
		"consumed", consumed.Consumed,
		"mitigated", mitigation != nil)

	return &ResolveClashOutput{
		Attempt:    resolved.Attempt,
		Defender:   defender,
		Consumed:   consumed.Consumed,
		Mitigation: mitigation,
	}, nil
}

// mitigate rewrites the defender's share of the pending applyDamage batch
// according to the clash mitigation policy. The clash already stands, so
// a missing or unwritable batch is logged and skipped.
func (o *orchestrator) mitigate(ctx context.Context, damageActionID string, attempt *contest.Attempt) *Mitigation {
	if damageActionID == "" || attempt.Result == nil {
		return nil
	}

	action, err := o.loadAction(ctx, damageActionID, entities.ChatActionApplyDamage)
	if err != nil {
		slog.Warn("Clash could not reach pending damage",
			"attempt_id", attempt.ID,
			"action_id", damageActionID,
			"error", err.Error())
		return nil
	}

	var mitigation *Mitigation
	for i := range action.Updates {
		update := &action.Updates[i]
		if update.TargetID != attempt.DefenderID || update.Clashed || update.Delta <= 0 {
			continue
		}
		after := o.engine.Mitigate(update.Delta, attempt.Result.Successes, attempt.ExpectedSuccesses)
		if mitigation == nil {
			mitigation = &Mitigation{ActionID: action.ID}
		}
		mitigation.Before += update.Delta
		mitigation.After += after
		update.Delta = after
		update.Clashed = true
	}
	if mitigation == nil {
		return nil
	}

	if _, err := o.chatActionRepo.Save(ctx, chatactions.SaveInput{Action: action}); err != nil {
		slog.Warn("Failed to save softened damage",
			"attempt_id", attempt.ID,
			"action_id", action.ID,
			"error", err.Error())
		return nil
	}
	return mitigation
}

// spendClash saves the defender's spent clash and marks the clash move
// used. When the move write fails the defender is put back the way it was
// so the clash can be retried. If that also fails the round state is
// already spent and the clash stands without the move mark.
func (o *orchestrator) spendClash(ctx context.Context, before, defender *entities.Actor, clashMove *entities.Item) error {
	if _, err := o.actorRepo.Update(ctx, actors.UpdateInput{Actor: defender}); err != nil {
		return errors.Wrapf(err, "failed to save %s", defender.ID)
	}

	marked := *clashMove
	marked.UsedInRound = true
	_, moveErr := o.itemRepo.Update(ctx, items.UpdateInput{Item: &marked})
	if moveErr == nil {
		clashMove.UsedInRound = true
		return nil
	}

	if _, err := o.actorRepo.Update(ctx, actors.UpdateInput{Actor: before}); err != nil {
		slog.Error("Failed to roll back spent clash, keeping the result",
			"defender_id", defender.ID,
			"clash_move_id", clashMove.ID,
			"move_error", moveErr.Error(),
			"error", err.Error())
		return nil
	}
	return errors.Wrapf(moveErr, "failed to mark %s as used", clashMove.ID)
}

func (o *orchestrator) claimAttempt(id string) (*pendingAttempt, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	pending, ok := o.attempts[id]
	if !ok {
		return nil, errors.State(contest.MsgAttemptFinished)
	}
	delete(o.attempts, id)
	return pending, nil
}

func (o *orchestrator) restoreAttempt(pending *pendingAttempt) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.attempts[pending.attempt.ID] = pending
}

func (o *orchestrator) dropAttempt(id string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.attempts, id)
}

func (o *orchestrator) abortChannelAttempts(ctx context.Context, channelID string) int {
	o.mu.Lock()
	var open []*pendingAttempt
	for id, pending := range o.attempts {
		if pending.channelID == channelID {
			open = append(open, pending)
			delete(o.attempts, id)
		}
	}
	o.mu.Unlock()

	for _, pending := range open {
		if _, err := o.engine.AbortClash(ctx, &engine.AbortClashInput{
			Attempt: pending.attempt,
			Reason:  MsgCombatEndedClash,
		}); err != nil {
			slog.Warn("Failed to abort clash",
				"attempt_id", pending.attempt.ID,
				"error", err.Error())
		}
	}
	return len(open)
}

func (o *orchestrator) authorizeDefender(ctx context.Context, defenderID string, user *entities.User) error {
	defender, err := o.getActor(ctx, defenderID)
	if err != nil {
		return err
	}
	if !user.CanModify(defender) {
		return errors.Permission(MsgNotYourClash)
	}
	return nil
}

// loadAction fetches a button's payload and checks it is the expected kind
func (o *orchestrator) loadAction(ctx context.Context, id string, kind entities.ChatActionKind) (*entities.ChatAction, error) {
	if id == "" {
		return nil, errors.InvalidArgument("action ID is required")
	}

	output, err := o.chatActionRepo.Get(ctx, chatactions.GetInput{ID: id})
	if err != nil {
		return nil, err
	}
	if output.Action.Kind != kind {
		return nil, errors.Expression(MsgWrongAction).
			WithMeta("expected", string(kind)).
			WithMeta("actual", string(output.Action.Kind))
	}
	return output.Action, nil
}

func (o *orchestrator) saveActions(ctx context.Context, pending []*entities.ChatAction) ([]*entities.ChatAction, error) {
	saved := make([]*entities.ChatAction, 0, len(pending))
	for _, action := range pending {
		output, err := o.chatActionRepo.Save(ctx, chatactions.SaveInput{Action: action})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to save %s action", action.Kind)
		}
		saved = append(saved, output.Action)
	}
	return saved, nil
}

// assignedActor returns the actor the user acts as
func (o *orchestrator) assignedActor(ctx context.Context, user *entities.User) (*entities.Actor, error) {
	if user == nil {
		return nil, errors.Reference(MsgNoActorSelected)
	}

	output, err := o.actorRepo.GetAssigned(ctx, actors.GetAssignedInput{UserID: user.ID})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.Reference(MsgNoActorSelected)
		}
		return nil, errors.Wrap(err, "failed to load assigned actor")
	}
	return output.Actor, nil
}

func (o *orchestrator) getActor(ctx context.Context, id string) (*entities.Actor, error) {
	actor, err := o.optionalActor(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, errors.Reference(MsgActorGone)
	}
	return actor, nil
}

// optionalActor returns nil when the actor is gone so the engine can word
// the error for its context
func (o *orchestrator) optionalActor(ctx context.Context, id string) (*entities.Actor, error) {
	if id == "" {
		return nil, nil
	}
	output, err := o.actorRepo.Get(ctx, actors.GetInput{ID: id})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to load actor %s", id)
	}
	return output.Actor, nil
}

func (o *orchestrator) optionalItem(ctx context.Context, id string) (*entities.Item, error) {
	if id == "" {
		return nil, nil
	}
	output, err := o.itemRepo.Get(ctx, items.GetInput{ID: id})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to load item %s", id)
	}
	return output.Item, nil
}
