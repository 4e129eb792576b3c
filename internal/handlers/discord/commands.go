package discord

import "github.com/bwmarrin/discordgo"

// Command and option names
const (
	commandSuccessCheck = "sc"
	commandPokerole     = "pokerole"

	subcommandAssign = "assign"
	subcommandRound  = "round"
	subcommandUse    = "use"
	subcommandLog    = "log"

	optionExpression = "expression"
	optionActor      = "actor"
	optionUser       = "user"
	optionStep       = "step"
	optionActors     = "actors"
	optionMove       = "move"
	optionTargets    = "targets"
	optionLimit      = "limit"
	optionClear      = "clear"
)

var minLogLimit float64 = 1

const maxLogLimit = 50

// Commands returns the application commands the bot registers
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        commandSuccessCheck,
			Description: "Roll a success check for your actor",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        optionExpression,
					Description: "Dice pool, e.g. dexterity + alert",
					Required:    true,
				},
			},
		},
		{
			Name:        commandPokerole,
			Description: "Pokerole table commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        subcommandAssign,
					Description: "Choose the actor you play",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        optionActor,
							Description: "Actor ID",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        optionUser,
							Description: "Player to assign (GM only)",
						},
					},
				},
				{
					Name:        subcommandRound,
					Description: "Drive the combat tracker",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        optionStep,
							Description: "What to do",
							Required:    true,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "start", Value: "start"},
								{Name: "next", Value: "next"},
								{Name: "end", Value: "end"},
								{Name: "status", Value: "status"},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        optionActors,
							Description: "Actor IDs joining the combat, separated by spaces or commas",
						},
					},
				},
				{
					Name:        subcommandUse,
					Description: "Use one of your actor's moves",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        optionMove,
							Description: "Move ID",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        optionTargets,
							Description: "Target actor IDs, separated by spaces or commas",
						},
					},
				},
				{
					Name:        subcommandLog,
					Description: "Show this channel's recent rolls",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        optionLimit,
							Description: "How many rolls to show",
							MinValue:    &minLogLimit,
							MaxValue:    maxLogLimit,
						},
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        optionClear,
							Description: "Empty the log instead (GM only)",
						},
					},
				},
			},
		},
	}
}
