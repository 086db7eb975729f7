package utils

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

func isSubcommand(opt *discordgo.ApplicationCommandInteractionDataOption) bool {
	return opt.Type == discordgo.ApplicationCommandOptionSubCommandGroup ||
		opt.Type == discordgo.ApplicationCommandOptionSubCommand
}

// leafOptions returns the options of the invoked command, below any
// subcommand group and subcommand
func leafOptions(i *discordgo.InteractionCreate) []*discordgo.ApplicationCommandInteractionDataOption {
	options := i.ApplicationCommandData().Options
	for len(options) > 0 && isSubcommand(options[0]) {
		options = options[0].Options
	}
	return options
}

// GetCommandOption returns the named option of the invoked (sub)command, or nil
func GetCommandOption(i *discordgo.InteractionCreate, name string) *discordgo.ApplicationCommandInteractionDataOption {
	for _, opt := range leafOptions(i) {
		if opt.Name == name {
			return opt
		}
	}
	return nil
}

// GetStringOption returns a string option with surrounding whitespace removed,
// or "" when it is missing or not a string
func GetStringOption(i *discordgo.InteractionCreate, name string) string {
	opt := GetCommandOption(i, name)
	if opt == nil || opt.Type != discordgo.ApplicationCommandOptionString {
		return ""
	}
	return strings.TrimSpace(opt.StringValue())
}

// GetIntOption returns an integer option, or def when the user left it out.
// discordgo panics when IntValue is called on another type, so that is checked first.
func GetIntOption(i *discordgo.InteractionCreate, name string, def int) int {
	opt := GetCommandOption(i, name)
	if opt == nil || opt.Type != discordgo.ApplicationCommandOptionInteger {
		return def
	}
	return int(opt.IntValue())
}

// GetBoolOption returns a boolean option, false when missing
func GetBoolOption(i *discordgo.InteractionCreate, name string) bool {
	opt := GetCommandOption(i, name)
	if opt == nil || opt.Type != discordgo.ApplicationCommandOptionBoolean {
		return false
	}
	return opt.BoolValue()
}

// GetSnowflakeOption returns the id carried by a user, role, channel or mentionable option
func GetSnowflakeOption(i *discordgo.InteractionCreate, name string) string {
	opt := GetCommandOption(i, name)
	if opt == nil {
		return ""
	}
	switch opt.Type {
	case discordgo.ApplicationCommandOptionUser,
		discordgo.ApplicationCommandOptionRole,
		discordgo.ApplicationCommandOptionChannel,
		discordgo.ApplicationCommandOptionMentionable:
	default:
		return ""
	}
	id, _ := opt.Value.(string)
	return id
}

// GetUserOption resolves a user option from the interaction's resolved data.
// The member is nil outside guilds or when Discord did not resolve it.
func GetUserOption(i *discordgo.InteractionCreate, name string) (*discordgo.User, *discordgo.Member) {
	id := GetSnowflakeOption(i, name)
	if id == "" {
		return nil, nil
	}

	resolved := i.ApplicationCommandData().Resolved
	if resolved == nil {
		return &discordgo.User{ID: id}, nil
	}

	user := resolved.Users[id]
	if user == nil {
		user = &discordgo.User{ID: id}
	}
	return user, resolved.Members[id]
}

// GetFocusedOption returns the option the user is typing into during autocomplete
func GetFocusedOption(i *discordgo.InteractionCreate) *discordgo.ApplicationCommandInteractionDataOption {
	for _, opt := range leafOptions(i) {
		if opt.Focused {
			return opt
		}
	}
	return nil
}

// GetSubcommandPath returns the subcommand group and subcommand names, outermost first
func GetSubcommandPath(i *discordgo.InteractionCreate) []string {
	var path []string
	options := i.ApplicationCommandData().Options
	for len(options) > 0 && isSubcommand(options[0]) {
		path = append(path, options[0].Name)
		options = options[0].Options
	}
	return path
}
