package testutils

import "github.com/bwmarrin/discordgo"

// CreateTestMember creates a guild member with the given permissions and roles
func CreateTestMember(userID, username string, permissions int64, roles ...string) *discordgo.Member {
	return &discordgo.Member{
		User: &discordgo.User{
			ID:       userID,
			Username: username,
		},
		Permissions: permissions,
		Roles:       roles,
	}
}

// CreateCommandInteraction creates a slash command interaction from member in channelID
func CreateCommandInteraction(guildID, channelID string, member *discordgo.Member, name string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:        "interaction-" + name,
			Type:      discordgo.InteractionApplicationCommand,
			GuildID:   guildID,
			ChannelID: channelID,
			Member:    member,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: options,
			},
		},
	}
}

// CreateAutocompleteInteraction is CreateCommandInteraction for autocomplete requests
func CreateAutocompleteInteraction(guildID, channelID string, member *discordgo.Member, name string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	i := CreateCommandInteraction(guildID, channelID, member, name, options...)
	i.Type = discordgo.InteractionApplicationCommandAutocomplete
	return i
}

// CreateComponentInteraction creates a button click
func CreateComponentInteraction(guildID, channelID string, member *discordgo.Member, customID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:        "interaction-" + customID,
			Type:      discordgo.InteractionMessageComponent,
			GuildID:   guildID,
			ChannelID: channelID,
			Member:    member,
			Data: discordgo.MessageComponentInteractionData{
				CustomID:      customID,
				ComponentType: discordgo.ButtonComponent,
			},
		},
	}
}

// WithResolvedUsers adds users to a command interaction's resolved data
func WithResolvedUsers(i *discordgo.InteractionCreate, users ...*discordgo.User) *discordgo.InteractionCreate {
	data := i.ApplicationCommandData()
	if data.Resolved == nil {
		data.Resolved = &discordgo.ApplicationCommandInteractionDataResolved{}
	}
	if data.Resolved.Users == nil {
		data.Resolved.Users = make(map[string]*discordgo.User)
	}
	for _, u := range users {
		data.Resolved.Users[u.ID] = u
	}
	i.Data = data
	return i
}

// StringOption creates a string option
func StringOption(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

// FocusedOption creates the string option being typed during autocomplete
func FocusedOption(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	opt := StringOption(name, value)
	opt.Focused = true
	return opt
}

// IntOption creates an integer option; Discord delivers numbers as float64
func IntOption(name string, value int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: float64(value),
	}
}

// BoolOption creates a boolean option
func BoolOption(name string, value bool) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionBoolean,
		Value: value,
	}
}

// UserOption creates a user option carrying the user id
func UserOption(name, userID string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionUser,
		Value: userID,
	}
}

// RoleOption creates a role option carrying the role id
func RoleOption(name, roleID string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionRole,
		Value: roleID,
	}
}

// SubcommandOption creates a subcommand
func SubcommandOption(name string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:    name,
		Type:    discordgo.ApplicationCommandOptionSubCommand,
		Options: options,
	}
}

// SubcommandGroupOption creates a subcommand group
func SubcommandGroupOption(name string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:    name,
		Type:    discordgo.ApplicationCommandOptionSubCommandGroup,
		Options: options,
	}
}
