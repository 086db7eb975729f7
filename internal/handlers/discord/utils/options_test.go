package utils_test

import (
	"testing"

	"github.com/Skelly0/DuelBot/internal/handlers/discord/utils"
	"github.com/Skelly0/DuelBot/internal/testutils"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func command(name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return testutils.CreateCommandInteraction("guild", "channel", testutils.CreateTestMember("u", "u", 0), name, opts...)
}

func TestScalarOptions(t *testing.T) {
	i := command("challenge",
		testutils.IntOption("best_of", 5),
		testutils.BoolOption("no_repeat", true),
		testutils.StringOption("note", "  Bagr \t"),
	)

	assert.Equal(t, 5, utils.GetIntOption(i, "best_of", 3))
	assert.True(t, utils.GetBoolOption(i, "no_repeat"))
	assert.Equal(t, "Bagr", utils.GetStringOption(i, "note"))

	assert.Equal(t, 3, utils.GetIntOption(i, "missing", 3))
	assert.False(t, utils.GetBoolOption(i, "missing"))
	assert.Empty(t, utils.GetStringOption(i, "missing"))
}

func TestScalarOptions_WrongTypeFallsBack(t *testing.T) {
	i := command("modifier",
		testutils.StringOption("value", "2"),
		testutils.IntOption("scope", 1),
		testutils.UserOption("player", "user-2"),
	)

	assert.NotPanics(t, func() {
		assert.Equal(t, 7, utils.GetIntOption(i, "value", 7))
		assert.Empty(t, utils.GetStringOption(i, "scope"))
		assert.False(t, utils.GetBoolOption(i, "value"))
		assert.Empty(t, utils.GetSnowflakeOption(i, "value"))
	})
	assert.Equal(t, "user-2", utils.GetSnowflakeOption(i, "player"))
}

func TestGetCommandOption_OnlyMatchesInvokedSubcommand(t *testing.T) {
	i := command("settings",
		testutils.SubcommandGroupOption("moderator",
			testutils.SubcommandOption("add", testutils.UserOption("user", "u-1"))))

	assert.Nil(t, utils.GetCommandOption(i, "moderator"))
	assert.Nil(t, utils.GetCommandOption(i, "add"))
	require.NotNil(t, utils.GetCommandOption(i, "user"))
}

func TestGetUserOption(t *testing.T) {
	t.Run("resolved", func(t *testing.T) {
		i := command("challenge", testutils.UserOption("opponent", "user-2"))
		testutils.WithResolvedUsers(i, &discordgo.User{ID: "user-2", Username: "bob", Bot: true})

		user, member := utils.GetUserOption(i, "opponent")
		require.NotNil(t, user)
		assert.Equal(t, "bob", user.Username)
		assert.True(t, user.Bot)
		assert.Nil(t, member)
	})

	t.Run("unresolved keeps the id", func(t *testing.T) {
		i := command("challenge", testutils.UserOption("opponent", "user-2"))

		user, _ := utils.GetUserOption(i, "opponent")
		require.NotNil(t, user)
		assert.Equal(t, "user-2", user.ID)
	})

	t.Run("missing", func(t *testing.T) {
		user, member := utils.GetUserOption(command("challenge"), "opponent")
		assert.Nil(t, user)
		assert.Nil(t, member)
	})
}

func TestGetSubcommandPath(t *testing.T) {
	tests := []struct {
		name string
		opts []*discordgo.ApplicationCommandInteractionDataOption
		want []string
	}{
		{name: "no subcommand", opts: nil, want: nil},
		{name: "subcommand", opts: []*discordgo.ApplicationCommandInteractionDataOption{testutils.SubcommandOption("talent")}, want: []string{"talent"}},
		{
			name: "group",
			opts: []*discordgo.ApplicationCommandInteractionDataOption{
				testutils.SubcommandGroupOption("moderator",
					testutils.SubcommandOption("add", testutils.UserOption("user", "u-1"))),
			},
			want: []string{"moderator", "add"},
		},
		{name: "plain options", opts: []*discordgo.ApplicationCommandInteractionDataOption{testutils.StringOption("first", "Bagr")}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.GetSubcommandPath(command("settings", tt.opts...)))
		})
	}
}

func TestGetSnowflakeOption_InsideGroup(t *testing.T) {
	i := command("settings",
		testutils.SubcommandGroupOption("triple-role",
			testutils.SubcommandOption("add", testutils.RoleOption("role", "role-9"))))

	assert.Equal(t, "role-9", utils.GetSnowflakeOption(i, "role"))
}

func TestGetFocusedOption(t *testing.T) {
	i := testutils.CreateAutocompleteInteraction("guild", "channel", nil, "declare",
		testutils.StringOption("first", "Bagr"),
		testutils.FocusedOption("second", "ti"),
	)

	focused := utils.GetFocusedOption(i)
	require.NotNil(t, focused)
	assert.Equal(t, "second", focused.Name)

	assert.Nil(t, utils.GetFocusedOption(command("declare", testutils.StringOption("first", "Bagr"))))
}
