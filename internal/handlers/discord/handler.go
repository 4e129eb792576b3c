// Package discord adapts Discord gateway events onto the chat router
package discord

import (
	"context"
	"log/slog"
	"runtime/debug"
	"slices"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/pokerole-bot/internal/entities"
	"github.com/KirkDiggler/pokerole-bot/internal/errors"
	"github.com/KirkDiggler/pokerole-bot/internal/handlers/chat"
)

const (
	// Discord allows five buttons per row and five rows per message
	buttonsPerRow = 5
	maxRows       = 5

	defaultTimeout = 10 * time.Second
)

// Session is the part of *discordgo.Session the handler talks to
type Session interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	Chat     chat.Service
	GMRoleID string
	Timeout  time.Duration
}

// Validate ensures all required dependencies are provided
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Chat == nil {
		vb.RequiredField("Chat")
	}
	if c.Timeout < 0 {
		vb.InvalidField("Timeout", "must not be negative")
	}

	return vb.Build()
}

// Handler handles Discord interactions and messages
type Handler struct {
	chat     chat.Service
	gmRoleID string
	timeout  time.Duration
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &Handler{
		chat:     cfg.Chat,
		gmRoleID: cfg.GMRoleID,
		timeout:  timeout,
	}, nil
}

// RegisterCommands replaces the bot's application commands. An empty
// guildID registers them globally.
func (h *Handler) RegisterCommands(s Session, appID, guildID string) error {
	registered, err := s.ApplicationCommandBulkOverwrite(appID, guildID, Commands())
	if err != nil {
		return errors.Wrap(err, "failed to register commands")
	}

	for _, cmd := range registered {
		slog.Info("Registered command", "name", cmd.Name, "guild_id", guildID)
	}
	return nil
}

// Bind subscribes the handler to a live gateway session
func (h *Handler) Bind(ctx context.Context, session *discordgo.Session) {
	session.Identify.Intents |= discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		h.HandleInteraction(ctx, s, i)
	})
	session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		h.HandleMessage(ctx, s, m)
	})
}

// HandleInteraction handles slash commands and button presses
func (h *Handler) HandleInteraction(ctx context.Context, s Session, i *discordgo.InteractionCreate) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()
	defer h.recoverInteraction(ctx, s, i)

	var reply *chat.Reply
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		reply = h.handleCommand(ctx, i)
	case discordgo.InteractionMessageComponent:
		reply = h.handleComponent(ctx, i)
	default:
		return
	}
	if reply == nil {
		return
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: responseData(reply),
	})
	if err != nil {
		slog.ErrorContext(ctx, "Failed to respond to interaction",
			"interaction_id", i.ID,
			"error", err.Error())
	}
}

// HandleMessage turns inline rolls in a message into buttons
func (h *Handler) HandleMessage(ctx context.Context, s Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()
	defer h.recoverMessage(ctx, m)

	reply := h.chat.Message(ctx, &chat.MessageInput{
		ChannelID: m.ChannelID,
		User:      &entities.User{ID: m.Author.ID, Name: m.Author.Username},
		Content:   m.Content,
	})
	if reply == nil || reply.Private {
		return
	}

	_, err := s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Content:    reply.Content,
		Components: components(reply.Buttons),
		Reference:  m.Reference(),
	})
	if err != nil {
		slog.ErrorContext(ctx, "Failed to send inline rolls",
			"channel_id", m.ChannelID,
			"message_id", m.ID,
			"error", err.Error())
	}
}

// recoverInteraction keeps a panicking interaction from taking the
// gateway down and tells the user it failed.
func (h *Handler) recoverInteraction(ctx context.Context, s Session, i *discordgo.InteractionCreate) {
	r := recover()
	if r == nil {
		return
	}

	slog.ErrorContext(ctx, "Recovered from panic handling interaction",
		"interaction_id", i.ID,
		"panic", r,
		"stack", string(debug.Stack()))

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: errors.UserMessage(errors.Internalf("panic: %v", r)),
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		slog.ErrorContext(ctx, "Failed to report panic", "interaction_id", i.ID, "error", err.Error())
	}
}

func (h *Handler) recoverMessage(ctx context.Context, m *discordgo.MessageCreate) {
	if r := recover(); r != nil {
		slog.ErrorContext(ctx, "Recovered from panic handling message",
			"channel_id", m.ChannelID,
			"message_id", m.ID,
			"panic", r,
			"stack", string(debug.Stack()))
	}
}

func (h *Handler) handleCommand(ctx context.Context, i *discordgo.InteractionCreate) *chat.Reply {
	data := i.ApplicationCommandData()
	user := h.user(i)

	switch data.Name {
	case commandSuccessCheck:
		expression := stringOption(data.Options, optionExpression)
		return h.chat.SuccessCheck(ctx, &chat.SuccessCheckInput{
			ChannelID: i.ChannelID,
			User:      user,
			Text:      "/" + commandSuccessCheck + " " + expression,
		})

	case commandPokerole:
		if len(data.Options) == 0 {
			return nil
		}
		sub := data.Options[0]
		switch sub.Name {
		case subcommandAssign:
			var userID string
			if opt := findOption(sub.Options, optionUser); opt != nil {
				userID = opt.UserValue(nil).ID
			}
			return h.chat.Assign(ctx, &chat.AssignInput{
				User:    user,
				UserID:  userID,
				ActorID: stringOption(sub.Options, optionActor),
			})
		case subcommandRound:
			return h.chat.Round(ctx, &chat.RoundInput{
				ChannelID: i.ChannelID,
				User:      user,
				Step:      chat.RoundStep(stringOption(sub.Options, optionStep)),
				ActorIDs:  splitIDs(stringOption(sub.Options, optionActors)),
			})
		case subcommandUse:
			return h.chat.UseMove(ctx, &chat.UseMoveInput{
				ChannelID: i.ChannelID,
				User:      user,
				MoveID:    stringOption(sub.Options, optionMove),
				TargetIDs: splitIDs(stringOption(sub.Options, optionTargets)),
			})
		case subcommandLog:
			input := &chat.LogInput{ChannelID: i.ChannelID, User: user}
			if opt := findOption(sub.Options, optionLimit); opt != nil {
				input.Limit = int(opt.IntValue())
			}
			if opt := findOption(sub.Options, optionClear); opt != nil {
				input.Clear = opt.BoolValue()
			}
			return h.chat.Log(ctx, input)
		}
	}

	slog.WarnContext(ctx, "Unknown command", "name", data.Name)
	return nil
}

func (h *Handler) handleComponent(ctx context.Context, i *discordgo.InteractionCreate) *chat.Reply {
	actionID, err := ParseCustomID(i.MessageComponentData().CustomID)
	if err != nil {
		// Someone else's button
		return nil
	}

	return h.chat.Activate(ctx, &chat.ActivateInput{
		ActionID:  actionID,
		ChannelID: i.ChannelID,
		User:      h.user(i),
	})
}

// user maps the interaction's author. Administrators and holders of the
// GM role are game masters.
func (h *Handler) user(i *discordgo.InteractionCreate) *entities.User {
	if i.Member != nil && i.Member.User != nil {
		name := i.Member.Nick
		if name == "" {
			name = i.Member.User.Username
		}
		return &entities.User{
			ID:   i.Member.User.ID,
			Name: name,
			IsGM: i.Member.Permissions&discordgo.PermissionAdministrator != 0 ||
				(h.gmRoleID != "" && slices.Contains(i.Member.Roles, h.gmRoleID)),
		}
	}
	if i.User != nil {
		return &entities.User{ID: i.User.ID, Name: i.User.Username}
	}
	return nil
}

func responseData(reply *chat.Reply) *discordgo.InteractionResponseData {
	data := &discordgo.InteractionResponseData{
		Content:    reply.Content,
		Components: components(reply.Buttons),
	}
	if reply.Private {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return data
}

// components lays buttons out in rows. Buttons past the last row or with
// an unencodable ID are dropped.
func components(buttons []chat.Button) []discordgo.MessageComponent {
	var rows []discordgo.MessageComponent
	var row []discordgo.MessageComponent

	for _, button := range buttons {
		customID, err := EncodeCustomID(button.ActionID)
		if err != nil {
			slog.Warn("Dropping button", "label", button.Label, "error", err.Error())
			continue
		}

		row = append(row, discordgo.Button{
			Label:    truncate(button.Label, 80),
			Style:    buttonStyle(button.Style),
			CustomID: customID,
		})
		if len(row) == buttonsPerRow {
			rows = append(rows, discordgo.ActionsRow{Components: row})
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, discordgo.ActionsRow{Components: row})
	}

	if len(rows) > maxRows {
		rows = rows[:maxRows]
	}
	return rows
}

func buttonStyle(style chat.ButtonStyle) discordgo.ButtonStyle {
	switch style {
	case chat.ButtonSecondary:
		return discordgo.SecondaryButton
	case chat.ButtonSuccess:
		return discordgo.SuccessButton
	case chat.ButtonDanger:
		return discordgo.DangerButton
	default:
		return discordgo.PrimaryButton
	}
}

func findOption(options []*discordgo.ApplicationCommandInteractionDataOption, name string) *discordgo.ApplicationCommandInteractionDataOption {
	for _, opt := range options {
		if opt.Name == name {
			return opt
		}
	}
	return nil
}

func stringOption(options []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	if opt := findOption(options, name); opt != nil {
		return opt.StringValue()
	}
	return ""
}

func splitIDs(value string) []string {
	ids := strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ' '
	})
	if len(ids) == 0 {
		return nil
	}
	return ids
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
