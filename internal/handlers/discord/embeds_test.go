package discord

import (
	"strings"
	"testing"

	"github.com/Skelly0/DuelBot/internal/dice"
	"github.com/Skelly0/DuelBot/internal/domain/duel"
	"github.com/Skelly0/DuelBot/internal/domain/stance"
	"github.com/Skelly0/DuelBot/internal/testutils"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldByName(embed *discordgo.MessageEmbed, name string) *discordgo.MessageEmbedField {
	for _, f := range embed.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func embedText(embed *discordgo.MessageEmbed) string {
	var b strings.Builder
	b.WriteString(embed.Title + "\n" + embed.Description + "\n")
	for _, f := range embed.Fields {
		b.WriteString(f.Name + "\n" + f.Value + "\n")
	}
	return b.String()
}

func TestBuildStatusEmbed_HidesDeclarationsUntilBothDeclared(t *testing.T) {
	m := newTestMatch(duel.PhaseDeclaringStances)
	m.Player1.Declared = []stance.Stance{"Bagr", "Radae"}

	embed := buildStatusEmbed(m)

	declarations := fieldByName(embed, "Declarations")
	require.NotNil(t, declarations)
	assert.Equal(t, "✅ Alice\n⏳ Bob", declarations.Value)
	assert.NotContains(t, embedText(embed), "Bagr")
	assert.NotContains(t, embedText(embed), "Radae")
}

func TestBuildStatusEmbed_NeverShowsPicks(t *testing.T) {
	m := newTestMatch(duel.PhasePickingStances)
	m.Player1.Declared = []stance.Stance{"Bagr", "Radae"}
	m.Player2.Declared = []stance.Stance{"Tigr", "Tortad"}
	m.Player1.Picked = "Radae"

	embed := buildStatusEmbed(m)

	picks := fieldByName(embed, "Secret Picks")
	require.NotNil(t, picks)
	assert.Equal(t, "🔒 Alice\n⏳ Bob", picks.Value)
	assert.Equal(t, "**Bagr** | **Radae**", fieldByName(embed, "Alice's Options").Value)
	assert.NotContains(t, picks.Value, "Radae")
}

func TestBuildStatusEmbed_Modifiers(t *testing.T) {
	m := newTestMatch(duel.PhaseDeclaringStances)
	assert.Nil(t, fieldByName(buildStatusEmbed(m), "🔧 Modifiers"))

	m.MatchModifiers[bob] = 2
	m.RoundModifiers[bob] = -1
	mods := fieldByName(buildStatusEmbed(m), "🔧 Modifiers")
	require.NotNil(t, mods)
	assert.Equal(t, "**Bob**: match +2, round -1", mods.Value)
}

func TestBuildStatusEmbed_LastRound(t *testing.T) {
	m := newTestMatch(duel.PhaseDeclaringStances)
	assert.Nil(t, fieldByName(buildStatusEmbed(m), "⏮️ Last Round"))

	m.History = append(m.History, testutils.CreateTestRoundResult(m, bob, "Darda", "Tortad", 2, 6))
	last := fieldByName(buildStatusEmbed(m), "⏮️ Last Round")
	require.NotNil(t, last)
	assert.Equal(t, "Round 1: **Bob** won (Darda 2 vs Tortad 6)", last.Value)
}

func TestBuildRoundEmbed_ShowsInitialTie(t *testing.T) {
	m := newTestMatch(duel.PhaseDeclaringStances)
	result := testutils.CreateTestRoundResult(m, bob, "Darda", "Tortad", 2, 6)

	embed := buildRoundEmbed(m, result)
	assert.Nil(t, fieldByName(embed, "🔁 Initial Tie"))
	assert.Nil(t, embed.Footer)
	assert.Equal(t, "🏆 **Bob**", fieldByName(embed, "Round Winner").Value)

	tie := testutils.CreateTestRoundResult(m, bob, "Darda", "Tortad", 4, 4).Final
	result.Initial = &tie
	result.Rerolls = 1
	result.AdjacencyApplied = true

	embed = buildRoundEmbed(m, result)
	initial := fieldByName(embed, "🔁 Initial Tie")
	require.NotNil(t, initial)
	assert.Equal(t, "**Alice**: **4**\n**Bob**: **4**", initial.Value)
	require.NotNil(t, embed.Footer)
	assert.Equal(t, "Adjacency modifier applied • Rerolled 1 time(s) to break a tie", embed.Footer.Text)
}

func TestFormatSideRoll(t *testing.T) {
	tests := []struct {
		name string
		roll duel.SideRoll
		want string
	}{
		{
			name: "neutral",
			roll: duel.SideRoll{Advantage: stance.Neutral, Rolls: []int{4}, Used: dice.UnusedIndex, Base: 4, Final: 4},
			want: "**4**",
		},
		{
			name: "advantage keeps the higher die",
			roll: duel.SideRoll{Advantage: stance.Advantaged, Rolls: []int{2, 5}, Used: 1, Base: 5, Final: 5},
			want: "[~~2~~, 5] → **5**",
		},
		{
			name: "disadvantage with adjustments",
			roll: duel.SideRoll{Advantage: stance.Disadvantaged, Rolls: []int{3, 6}, Used: 0, Base: 3, Adjustment: -1, Modifier: 2, Final: 4},
			want: "[3, ~~6~~] -1 adj +2 mod → **4**",
		},
		{
			name: "neutral below one",
			roll: duel.SideRoll{Advantage: stance.Neutral, Rolls: []int{1}, Used: dice.UnusedIndex, Base: 1, Modifier: -3, Final: -2},
			want: "1 -3 mod → **-2**",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatSideRoll(tt.roll))
		})
	}
}

func TestFormatOptions(t *testing.T) {
	tests := []struct {
		name  string
		rules duel.Rules
		want  string
	}{
		{name: "standard", rules: duel.Rules{}, want: "Standard"},
		{name: "no repeat", rules: duel.Rules{NoRepeat: true}, want: "No Repeat"},
		{
			name: "everything",
			rules: duel.Rules{
				NoRepeat:     true,
				AdjacencyMod: true,
				BaitSwitch:   true,
				Talent:       duel.TalentRule{Enabled: true, Marker: "Chaurus", Bonus: 1},
			},
			want: "No Repeat, Adjacency Mod, Bait & Switch, Talent (+1 Chaurus)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatOptions(tt.rules))
		})
	}
}

func TestBuildRulesEmbed_FollowsTheRing(t *testing.T) {
	embed := buildRulesEmbed(stance.NewDefaultRing())

	advantages := strings.Split(fieldByName(embed, "⚔️ Stance Advantages").Value, "\n")
	require.Len(t, advantages, stance.RingSize)
	assert.Equal(t, "**Bagr** → Radae, Darda", advantages[0])
	assert.Equal(t, "**Tortad** → Bagr, Radae", advantages[5])

	disadvantages := strings.Split(fieldByName(embed, "🛡️ Stance Disadvantages").Value, "\n")
	assert.Equal(t, "**Bagr** ← Tortad", disadvantages[0])
}

func TestBuildHelpEmbed_ListsStances(t *testing.T) {
	embed := buildHelpEmbed(stance.NewDefaultRing())
	assert.Equal(t,
		"**Bagr** • **Radae** • **Darda** • **Tigr** • **Riposje** • **Tortad**",
		fieldByName(embed, "🛡️ The Six Stances").Value)
}

func TestBuildMatchCompleteEmbed(t *testing.T) {
	m := newTestMatch(duel.PhaseMatchComplete)
	m.Player2.Score = 2
	m.Player1.Score = 1
	m.WinnerID = bob

	embed := buildMatchCompleteEmbed(m)
	assert.Equal(t, "**Bob** defeats **Alice**!", embed.Description)
	assert.Equal(t, "**Bob**: 2\n**Alice**: 1", fieldByName(embed, "Final Score").Value)
}
