// Package chat turns chat commands, inline markup and button presses into
// orchestrator calls and renders the results as replies. It knows nothing
// about the chat platform.
package chat

//go:generate mockgen -destination=mock/mock_service.go -package=chatmock github.com/KirkDiggler/pokerole-bot/internal/handlers/chat Service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/pokerole-bot/internal/engine/damage"
	"github.com/KirkDiggler/pokerole-bot/internal/entities"
	"github.com/KirkDiggler/pokerole-bot/internal/errors"
	"github.com/KirkDiggler/pokerole-bot/internal/orchestrators/actor"
	"github.com/KirkDiggler/pokerole-bot/internal/orchestrators/combat"
	"github.com/KirkDiggler/pokerole-bot/internal/orchestrators/roll"
	chatactions "github.com/KirkDiggler/pokerole-bot/internal/repositories/chat_actions"
)

// RoundStep is what /pokerole round does
type RoundStep string

// Round steps
const (
	RoundStart  RoundStep = "start"
	RoundNext   RoundStep = "next"
	RoundEnd    RoundStep = "end"
	RoundStatus RoundStep = "status"
)

// DefaultLogLimit is how many rolls /pokerole log shows
const DefaultLogLimit = 10

// Service handles everything users do in chat. Failures never escape as
// errors: they come back as private replies.
type Service interface {
	SuccessCheck(ctx context.Context, input *SuccessCheckInput) *Reply
	Message(ctx context.Context, input *MessageInput) *Reply
	Activate(ctx context.Context, input *ActivateInput) *Reply
	UseMove(ctx context.Context, input *UseMoveInput) *Reply
	Round(ctx context.Context, input *RoundInput) *Reply
	Assign(ctx context.Context, input *AssignInput) *Reply
	Log(ctx context.Context, input *LogInput) *Reply
}

// SuccessCheckInput is a typed /sc command
type SuccessCheckInput struct {
	ChannelID string
	User      *entities.User
	Text      string
}

// MessageInput is a chat message that may carry inline rolls
type MessageInput struct {
	ChannelID string
	User      *entities.User
	Content   string
}

// ActivateInput is a button press
type ActivateInput struct {
	ActionID  string
	ChannelID string
	User      *entities.User
}

// UseMoveInput is /pokerole use
type UseMoveInput struct {
	ChannelID string
	User      *entities.User
	MoveID    string
	TargetIDs []string
}

// RoundInput is /pokerole round
type RoundInput struct {
	ChannelID string
	User      *entities.User
	Step      RoundStep
	ActorIDs  []string
}

// AssignInput is /pokerole assign. UserID defaults to the caller.
type AssignInput struct {
	User    *entities.User
	UserID  string
	ActorID string
}

// LogInput is /pokerole log. Clear empties the log instead of showing it.
type LogInput struct {
	ChannelID string
	User      *entities.User
	Limit     int
	Clear     bool
}

// Config holds the dependencies for the chat router
type Config struct {
	Combat         combat.Service
	Roll           roll.Service
	Actor          actor.Service
	ChatActionRepo chatactions.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Combat == nil {
		vb.RequiredField("Combat")
	}
	if c.Roll == nil {
		vb.RequiredField("Roll")
	}
	if c.Actor == nil {
		vb.RequiredField("Actor")
	}
	if c.ChatActionRepo == nil {
		vb.RequiredField("ChatActionRepo")
	}

	return vb.Build()
}

type router struct {
	combat      combat.Service
	roll        roll.Service
	actor       actor.Service
	chatActions chatactions.Repository
}

// NewRouter creates a chat router with the provided dependencies
func NewRouter(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &router{
		combat:      cfg.Combat,
		roll:        cfg.Roll,
		actor:       cfg.Actor,
		chatActions: cfg.ChatActionRepo,
	}, nil
}

// SuccessCheck parses and rolls a /sc command for the user's assigned actor
func (r *router) SuccessCheck(ctx context.Context, input *SuccessCheckInput) *Reply {
	cmd, err := ParseCommand(input.Text)
	if err != nil {
		return r.fail(ctx, "sc", err)
	}

	output, err := r.roll.SuccessCheck(ctx, &roll.SuccessCheckInput{
		ChannelID:  input.ChannelID,
		User:       input.User,
		Expression: cmd.Expression(),
	})
	if err != nil {
		return r.fail(ctx, "sc", err)
	}

	return &Reply{Content: formatSuccessCheck(output.Record)}
}

// Message stores a button for every inline roll. It returns nil when the
// message has none.
func (r *router) Message(ctx context.Context, input *MessageInput) *Reply {
	rolls := FindInlineRolls(input.Content)
	if len(rolls) == 0 {
		return nil
	}

	reply := &Reply{Content: RewriteInlineRolls(input.Content)}
	for _, inline := range rolls {
		output, err := r.chatActions.Save(ctx, chatactions.SaveInput{Action: &entities.ChatAction{
			Kind:       entities.ChatActionSuccessCheck,
			ChannelID:  input.ChannelID,
			AuthorID:   userID(input.User),
			Expression: inline.Expression,
			Flavor:     inline.Flavor,
		}})
		if err != nil {
			return r.fail(ctx, "inline sc", err)
		}
		reply.Buttons = append(reply.Buttons, buttonFor(output.Action))
	}

	return reply
}

// Activate runs the stored action behind a pressed button
func (r *router) Activate(ctx context.Context, input *ActivateInput) *Reply {
	output, err := r.chatActions.Get(ctx, chatactions.GetInput{ID: input.ActionID})
	if err != nil {
		return r.fail(ctx, "activate", err)
	}
	action := output.Action

	slog.Info("Chat action pressed",
		"action_id", action.ID,
		"kind", action.Kind,
		"user_id", userID(input.User))

	var reply *Reply
	switch action.Kind {
	case entities.ChatActionClash:
		reply, err = r.clash(ctx, action, input.User)
	case entities.ChatActionClashChoice:
		reply, err = r.resolveClash(ctx, action, input.User)
	case entities.ChatActionClashCancel:
		reply, err = r.cancelClash(ctx, action, input.User)
	case entities.ChatActionEvade:
		reply, err = r.evade(ctx, action, input.User)
	case entities.ChatActionRecoil:
		reply, err = r.recoil(ctx, action, input.User)
	case entities.ChatActionApplyDamage:
		reply, err = r.applyDamage(ctx, action, input)
	case entities.ChatActionPainPenalty:
		reply, err = r.painPenalty(ctx, action, input.User)
	case entities.ChatActionIgnorePainPenalty:
		reply, err = r.ignorePainPenalty(ctx, action, input.User)
	case entities.ChatActionSuccessCheck:
		reply, err = r.inlineSuccessCheck(ctx, action, input)
	default:
		err = errors.Expressionf("Unknown action %s", action.Kind).WithMeta("action_id", action.ID)
	}
	if err != nil {
		return r.fail(ctx, string(action.Kind), err)
	}

	return reply
}

// UseMove rolls a move and offers the reactions
func (r *router) UseMove(ctx context.Context, input *UseMoveInput) *Reply {
	output, err := r.combat.UseMove(ctx, &combat.UseMoveInput{
		ChannelID: input.ChannelID,
		User:      input.User,
		MoveID:    input.MoveID,
		TargetIDs: input.TargetIDs,
	})
	if err != nil {
		return r.fail(ctx, "use", err)
	}

	return &Reply{
		Content: formatUseMove(output),
		Buttons: buttonsFor(output.Actions),
	}
}

// Round drives the channel's combat tracker
func (r *router) Round(ctx context.Context, input *RoundInput) *Reply {
	switch input.Step {
	case RoundStart:
		output, err := r.combat.StartCombat(ctx, &combat.StartCombatInput{
			ChannelID: input.ChannelID,
			User:      input.User,
			ActorIDs:  input.ActorIDs,
		})
		if err != nil {
			return r.fail(ctx, "round start", err)
		}
		return &Reply{Content: formatCombat("Combat started", output.Combat, output.Actors)}

	case RoundNext:
		output, err := r.combat.NextRound(ctx, &combat.NextRoundInput{
			ChannelID: input.ChannelID,
			User:      input.User,
		})
		if err != nil {
			return r.fail(ctx, "round next", err)
		}
		return &Reply{Content: formatCombat("New round", output.Combat, output.Actors)}

	case RoundEnd:
		output, err := r.combat.EndCombat(ctx, &combat.EndCombatInput{
			ChannelID: input.ChannelID,
			User:      input.User,
		})
		if err != nil {
			return r.fail(ctx, "round end", err)
		}
		content := fmt.Sprintf("**Combat ended** after %d %s.", output.Combat.Round, plural(output.Combat.Round, "round", "rounds"))
		if output.AbortedAttempts > 0 {
			content += fmt.Sprintf(" %d open %s cancelled.", output.AbortedAttempts, plural(output.AbortedAttempts, "clash was", "clashes were"))
		}
		return &Reply{Content: content}

	case RoundStatus:
		output, err := r.combat.GetCombat(ctx, &combat.GetCombatInput{ChannelID: input.ChannelID})
		if err != nil {
			return r.fail(ctx, "round status", err)
		}
		return &Reply{Content: formatCombat("Combat", output.Combat, output.Actors), Private: true}
	}

	return r.fail(ctx, "round", errors.Expressionf("Unknown round step %q", input.Step))
}

// Log shows or clears the channel's recent rolls
func (r *router) Log(ctx context.Context, input *LogInput) *Reply {
	if input.Clear {
		output, err := r.roll.ClearRollLog(ctx, &roll.ClearRollLogInput{
			ChannelID: input.ChannelID,
			User:      input.User,
		})
		if err != nil {
			return r.fail(ctx, "log clear", err)
		}
		return &Reply{Content: fmt.Sprintf("Cleared %d %s.", output.RecordsDeleted, plural(output.RecordsDeleted, "roll", "rolls"))}
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultLogLimit
	}
	output, err := r.roll.GetRollLog(ctx, &roll.GetRollLogInput{ChannelID: input.ChannelID, Limit: limit})
	if err != nil {
		return r.fail(ctx, "log", err)
	}
	return &Reply{Content: formatRollLog(output.Records), Private: true}
}

// Assign binds a user to an actor
func (r *router) Assign(ctx context.Context, input *AssignInput) *Reply {
	output, err := r.actor.AssignActor(ctx, &actor.AssignActorInput{
		User:    input.User,
		UserID:  input.UserID,
		ActorID: input.ActorID,
	})
	if err != nil {
		return r.fail(ctx, "assign", err)
	}

	who := "You are"
	if input.UserID != "" && input.UserID != userID(input.User) {
		who = fmt.Sprintf("<@%s> is", input.UserID)
	}
	return &Reply{Content: fmt.Sprintf("%s now playing **%s**.", who, output.Actor.Name), Private: true}
}

// clash settles at once for a defender with a single damaging move and
// otherwise asks which move to use
func (r *router) clash(ctx context.Context, action *entities.ChatAction, user *entities.User) (*Reply, error) {
	output, err := r.combat.Clash(ctx, &combat.ClashInput{ActionID: action.ID, User: user})
	if err != nil {
		return nil, err
	}
	if output.Proposed != nil {
		return clashChoices(output.Proposed), nil
	}
	return &Reply{Content: formatClashResult(output.Attempt, output.Defender, output.Mitigation)}, nil
}

func clashChoices(output *combat.ProposeClashOutput) *Reply {
	names := make(map[string]string, len(output.ClashMoves))
	for _, move := range output.ClashMoves {
		names[move.ID] = move.Name
	}

	reply := &Reply{
		Content: fmt.Sprintf("**%s** gets ready to clash. Pick a move to match %d %s.",
			output.Defender.Name, output.Attempt.ExpectedSuccesses,
			plural(output.Attempt.ExpectedSuccesses, "success", "successes")),
		Private: true,
	}
	for _, choice := range output.Choices {
		button := buttonFor(choice)
		if choice.Kind == entities.ChatActionClashChoice {
			button.Label = names[choice.ClashMoveID]
			button.Style = ButtonPrimary
		}
		reply.Buttons = append(reply.Buttons, button)
	}
	return reply
}

func (r *router) resolveClash(ctx context.Context, action *entities.ChatAction, user *entities.User) (*Reply, error) {
	output, err := r.combat.ResolveClash(ctx, &combat.ResolveClashInput{ActionID: action.ID, User: user})
	if err != nil {
		return nil, err
	}
	return &Reply{Content: formatClashResult(output.Attempt, output.Defender, output.Mitigation)}, nil
}

func (r *router) cancelClash(ctx context.Context, action *entities.ChatAction, user *entities.User) (*Reply, error) {
	if _, err := r.combat.AbortClash(ctx, &combat.AbortClashInput{ActionID: action.ID, User: user}); err != nil {
		return nil, err
	}
	return notify(combat.MsgClashCancelled), nil
}

func (r *router) evade(ctx context.Context, action *entities.ChatAction, user *entities.User) (*Reply, error) {
	output, err := r.combat.Evade(ctx, &combat.EvadeInput{ActionID: action.ID, User: user})
	if err != nil {
		return nil, err
	}
	return &Reply{Content: formatEvade(output)}, nil
}

func (r *router) recoil(ctx context.Context, action *entities.ChatAction, user *entities.User) (*Reply, error) {
	output, err := r.combat.Recoil(ctx, &combat.RecoilInput{ActionID: action.ID, User: user})
	if err != nil {
		return nil, err
	}
	content := fmt.Sprintf("**%s** takes recoil, %s\n%s",
		output.Attacker.Name, formatRoll(output.Roll), formatTargets([]*damage.TargetResult{output.Result}))
	return &Reply{Content: content}, nil
}

func (r *router) applyDamage(ctx context.Context, action *entities.ChatAction, input *ActivateInput) (*Reply, error) {
	output, err := r.combat.ApplyDamage(ctx, &combat.ApplyDamageInput{
		ActionID:  action.ID,
		ChannelID: input.ChannelID,
		User:      input.User,
	})
	if err != nil {
		return nil, err
	}

	content := formatTargets(output.Record.Results)
	if failed := output.Record.Failed(); len(failed) > 0 {
		reasons := make([]string, 0, len(failed))
		for _, result := range failed {
			reasons = append(reasons, errors.UserMessage(result.Err))
		}
		content += "\n" + strings.Join(reasons, "\n")
	}
	return &Reply{Content: content, Buttons: buttonsFor(output.Actions)}, nil
}

func (r *router) painPenalty(ctx context.Context, action *entities.ChatAction, user *entities.User) (*Reply, error) {
	output, err := r.combat.ApplyPainPenalty(ctx, &combat.ApplyPainPenaltyInput{ActionID: action.ID, User: user})
	if err != nil {
		return nil, err
	}
	return &Reply{Content: fmt.Sprintf("**%s**: %s", output.Actor.Name, output.Message)}, nil
}

func (r *router) ignorePainPenalty(ctx context.Context, action *entities.ChatAction, user *entities.User) (*Reply, error) {
	output, err := r.combat.IgnorePainPenalty(ctx, &combat.IgnorePainPenaltyInput{ActionID: action.ID, User: user})
	if err != nil {
		return nil, err
	}
	return &Reply{Content: fmt.Sprintf("**%s**: %s", output.Actor.Name, output.Message)}, nil
}

// inlineSuccessCheck rolls for whoever pressed the button, not the author
func (r *router) inlineSuccessCheck(ctx context.Context, action *entities.ChatAction, input *ActivateInput) (*Reply, error) {
	channelID := input.ChannelID
	if channelID == "" {
		channelID = action.ChannelID
	}

	output, err := r.roll.SuccessCheck(ctx, &roll.SuccessCheckInput{
		ChannelID:  channelID,
		User:       input.User,
		Expression: action.Expression,
		Flavor:     action.Flavor,
	})
	if err != nil {
		return nil, err
	}
	return &Reply{Content: formatSuccessCheck(output.Record)}, nil
}

// fail is the error boundary: every failure becomes a private notification
func (r *router) fail(ctx context.Context, op string, err error) *Reply {
	code := errors.GetCode(err)
	if code.IsRule() {
		slog.InfoContext(ctx, "Chat request refused",
			"op", op,
			"code", code,
			"error", err.Error())
	} else {
		slog.ErrorContext(ctx, "Chat request failed",
			"op", op,
			"error", err.Error())
	}
	return notify(errors.UserMessage(err))
}

func userID(user *entities.User) string {
	if user == nil {
		return ""
	}
	return user.ID
}
