package chat

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/pokerole-bot/internal/engine/contest"
	"github.com/KirkDiggler/pokerole-bot/internal/engine/damage"
	"github.com/KirkDiggler/pokerole-bot/internal/entities"
	"github.com/KirkDiggler/pokerole-bot/internal/orchestrators/combat"
)

// ButtonStyle is how prominent a button is
type ButtonStyle int

// Button styles, mapped onto the chat platform's own
const (
	ButtonPrimary ButtonStyle = iota
	ButtonSecondary
	ButtonSuccess
	ButtonDanger
)

// Button triggers a stored chat action when pressed
type Button struct {
	ActionID string
	Label    string
	Style    ButtonStyle
}

// Reply is what the bot says back
type Reply struct {
	Content string
	Buttons []Button

	// Private replies are only shown to the user who triggered them.
	// Every failure is private.
	Private bool
}

func notify(message string) *Reply {
	return &Reply{Content: message, Private: true}
}

// buttonFor labels a follow-up action by its kind
func buttonFor(action *entities.ChatAction) Button {
	button := Button{ActionID: action.ID, Style: ButtonSecondary}

	switch action.Kind {
	case entities.ChatActionClash:
		button.Label = "Clash"
		button.Style = ButtonPrimary
	case entities.ChatActionEvade:
		button.Label = "Evade"
		button.Style = ButtonPrimary
	case entities.ChatActionRecoil:
		button.Label = "Recoil"
		button.Style = ButtonDanger
	case entities.ChatActionApplyDamage:
		button.Label = "Apply damage"
		button.Style = ButtonDanger
	case entities.ChatActionPainPenalty:
		button.Label = fmt.Sprintf("Pain penalty -%d", action.PainPenalty)
	case entities.ChatActionIgnorePainPenalty:
		button.Label = "Ignore pain (1 Will)"
		button.Style = ButtonSuccess
	case entities.ChatActionClashCancel:
		button.Label = "Cancel"
		button.Style = ButtonDanger
	case entities.ChatActionSuccessCheck:
		button.Label = InlineRoll{Expression: action.Expression, Flavor: action.Flavor}.Label()
		button.Style = ButtonPrimary
	default:
		button.Label = string(action.Kind)
	}
	return button
}

func buttonsFor(actions []*entities.ChatAction) []Button {
	buttons := make([]Button, 0, len(actions))
	for _, action := range actions {
		buttons = append(buttons, buttonFor(action))
	}
	return buttons
}

func formatRoll(result *entities.RollResult) string {
	if result == nil {
		return "no roll"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "`%s` %d dice", result.Expression, result.DiceRolled)
	if len(result.RawFaces) > 0 {
		faces := make([]string, 0, len(result.RawFaces))
		for _, face := range result.RawFaces {
			faces = append(faces, fmt.Sprint(face))
		}
		fmt.Fprintf(&b, " [%s]", strings.Join(faces, ", "))
	}
	fmt.Fprintf(&b, ": **%d** %s", result.Successes, plural(result.Successes, "success", "successes"))
	if result.OnesCancelled > 0 {
		fmt.Fprintf(&b, " (%d cancelled by ones)", result.OnesCancelled)
	}
	return b.String()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func formatSuccessCheck(record *entities.RollRecord) string {
	who := record.ActorName
	if who == "" {
		who = "Someone"
	}
	line := fmt.Sprintf("**%s** rolled %s", who, formatRoll(record.Result))
	if record.Flavor != "" {
		line = fmt.Sprintf("*%s*\n%s", record.Flavor, line)
	}
	return line
}

func formatUseMove(output *combat.UseMoveOutput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s** used **%s**", output.Actor.Name, output.Move.Name)
	if output.Accuracy != nil {
		fmt.Fprintf(&b, "\nAccuracy %s", formatRoll(output.Accuracy))
	}
	if !output.Hit {
		b.WriteString("\nThe move missed.")
		return b.String()
	}
	for _, result := range output.Damage {
		fmt.Fprintf(&b, "\nDamage to %s %s: **%d**", result.Update.TargetID, formatRoll(result.Roll), result.Damage)
	}
	return b.String()
}

func formatClashResult(attempt *contest.Attempt, defender *entities.Actor, mitigation *combat.Mitigation) string {
	line := fmt.Sprintf("**%s** clashed, %s against %d expected",
		defender.Name, formatRoll(attempt.Result), attempt.ExpectedSuccesses)
	if attempt.Succeeded() {
		line += "\nFull success! The attack is clashed."
	} else {
		line += "\nNot enough to stop the attack."
	}
	if mitigation != nil && mitigation.After != mitigation.Before {
		line += fmt.Sprintf("\nPending damage to %s: %d -> %d", defender.Name, mitigation.Before, mitigation.After)
	}
	return line
}

func formatEvade(output *combat.EvadeOutput) string {
	line := fmt.Sprintf("**%s** tried to evade, %s", output.Defender.Name, formatRoll(output.Result))
	if output.Evaded {
		return line + "\nThe attack is evaded."
	}
	return line + "\nThe attack lands."
}

func formatTargets(results []*damage.TargetResult) string {
	lines := make([]string, 0, len(results))
	for _, result := range results {
		name := result.TargetID
		if result.Actor != nil {
			name = result.Actor.Name
		}
		switch {
		case !result.Applied:
			lines = append(lines, fmt.Sprintf("%s: not applied", name))
		case result.Fainted:
			lines = append(lines, fmt.Sprintf("%s: HP %d -> %d, fainted!", name, result.HPBefore, result.HPAfter))
		default:
			lines = append(lines, fmt.Sprintf("%s: HP %d -> %d", name, result.HPBefore, result.HPAfter))
		}
	}
	return strings.Join(lines, "\n")
}

// formatRollLog lists rolls newest first
func formatRollLog(records []*entities.RollRecord) string {
	if len(records) == 0 {
		return "No rolls yet."
	}
	lines := make([]string, 0, len(records)+1)
	lines = append(lines, "**Recent rolls**")
	for _, record := range records {
		lines = append(lines, formatSuccessCheck(record))
	}
	return strings.Join(lines, "\n")
}

func formatCombat(title string, c *entities.Combat, actors []*entities.Actor) string {
	names := make(map[string]string, len(actors))
	for _, actor := range actors {
		names[actor.ID] = actor.Name
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s** (round %d)", title, c.Round)
	for i, entry := range c.Order {
		name := names[entry.ActorID]
		if name == "" {
			name = entry.ActorID
		}
		fmt.Fprintf(&b, "\n%d. %s (%d)", i+1, name, entry.Total)
	}
	return b.String()
}
