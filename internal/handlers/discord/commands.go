package discord

import "github.com/bwmarrin/discordgo"

// commandDefinitions returns every slash command the bot registers
func commandDefinitions() []*discordgo.ApplicationCommand {
	stanceOption := func(name, description string, required bool) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         name,
			Description:  description,
			Required:     required,
			Autocomplete: true,
		}
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        "help",
			Description: "Show help for duel commands",
		},
		{
			Name:        "rules",
			Description: "Show the duel rules and stance relationships",
		},
		{
			Name:        "challenge",
			Description: "Challenge someone to a duel",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "opponent",
					Description: "The player to challenge",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "best_of",
					Description: "Best of how many rounds",
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Best of 3", Value: 3},
						{Name: "Best of 5", Value: 5},
						{Name: "Best of 7", Value: 7},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "no_repeat",
					Description: "Forbid using the same stance twice in a row",
				},
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "adjacency_mod",
					Description: "Apply +1/-1 for adjacent/opposite stances",
				},
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "bait_switch",
					Description: "Allow one stance switch per round after declaring",
				},
			},
		},
		{
			Name:        "accept",
			Description: "Accept a pending duel challenge",
		},
		{
			Name:        "declare",
			Description: "Secretly declare your stance options for the round",
			Options: []*discordgo.ApplicationCommandOption{
				stanceOption("first", "First stance", true),
				stanceOption("second", "Second stance", true),
				stanceOption("third", "Third stance (requires a triple-stance role)", false),
			},
		},
		{
			Name:        "switch",
			Description: "Switch one of your declared stances (bait & switch)",
			Options: []*discordgo.ApplicationCommandOption{
				stanceOption("old", "The declared stance to replace", true),
				stanceOption("new", "The stance to switch to", true),
			},
		},
		{
			Name:        "pick",
			Description: "Secretly pick one of your declared stances",
			Options: []*discordgo.ApplicationCommandOption{
				stanceOption("choice", "Your secret stance choice", true),
			},
		},
		{
			Name:        "status",
			Description: "Check the status of the current duel",
		},
		{
			Name:        "cancel",
			Description: "Cancel the current duel",
		},
		{
			Name:        "end",
			Description: "Force-end the current duel (moderators only)",
		},
		{
			Name:        "modifier",
			Description: "Give a player a roll modifier (moderators only)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "scope",
					Description: "Whether the modifier lasts the whole match or one round",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Match", Value: "match"},
						{Name: "Round", Value: "round"},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "player",
					Description: "The player to modify",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "value",
					Description: "Modifier added to every roll",
					Required:    true,
				},
			},
		},
		{
			Name:        "settings",
			Description: "Change duel settings for this server",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "show",
					Description: "Show the current settings",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "talent",
					Description: "Toggle the talent bonus",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
					Name:        "triple-role",
					Description: "Roles allowed to declare three stances",
					Options: []*discordgo.ApplicationCommandOption{
						roleSubcommand("add", "Allow a role to declare three stances"),
						roleSubcommand("remove", "Stop a role from declaring three stances"),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
					Name:        "moderator",
					Description: "Users allowed to moderate duels",
					Options: []*discordgo.ApplicationCommandOption{
						userSubcommand("add", "Add a duel moderator"),
						userSubcommand("remove", "Remove a duel moderator"),
					},
				},
			},
		},
	}
}

func roleSubcommand(name, description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionSubCommand,
		Name:        name,
		Description: description,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionRole,
				Name:        "role",
				Description: "The role",
				Required:    true,
			},
		},
	}
}

func userSubcommand(name, description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionSubCommand,
		Name:        name,
		Description: description,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "The user",
				Required:    true,
			},
		},
	}
}
