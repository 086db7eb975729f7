package discord

import (
	"fmt"
	"strings"

	"github.com/Skelly0/DuelBot/internal/domain/duel"
	"github.com/Skelly0/DuelBot/internal/domain/settings"
	"github.com/Skelly0/DuelBot/internal/domain/stance"
	"github.com/bwmarrin/discordgo"
)

const (
	colorBlue   = 0x3498db
	colorGold   = 0xf1c40f
	colorOrange = 0xe67e22
	colorGreen  = 0x2ecc71
	colorRed    = 0xe74c3c
	colorGrey   = 0x95a5a6
)

func buildHelpEmbed(ring *stance.Ring) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "⚔️ Duel Bot Commands",
		Description: "A strategic dueling game with six stances arranged in a hexagon",
		Color:       colorBlue,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: "🎯 Basic Commands",
				Value: "`/challenge @opponent` - Challenge someone to a duel\n" +
					"`/accept` - Accept a pending challenge\n" +
					"`/status` - Check current match status\n" +
					"`/cancel` - Cancel your current match\n" +
					"`/rules` - Show detailed game rules",
			},
			{
				Name: "⚔️ During a Match",
				Value: "`/declare first second` - Secretly declare your stance options\n" +
					"`/pick choice` - Secretly pick one of them\n" +
					"`/switch old new` - Switch a stance (if bait & switch is on)",
			},
			{
				Name:  "🛡️ The Six Stances",
				Value: joinStances(ring.Stances(), " • "),
			},
			{
				Name: "🔨 Moderator Commands",
				Value: "`/end` - Force-end a match\n" +
					"`/modifier scope player value` - Give a player a roll modifier\n" +
					"`/settings` - Talent bonus, triple-stance roles and moderators",
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Use /rules for detailed game mechanics and stance relationships",
		},
	}
}

func buildRulesEmbed(ring *stance.Ring) *discordgo.MessageEmbed {
	var beats, weakTo []string
	for _, a := range ring.Stances() {
		var strong, weak []string
		for _, b := range ring.Stances() {
			if a == b {
				continue
			}
			switch own, _ := ring.Relationship(a, b); own {
			case stance.Advantaged:
				strong = append(strong, string(b))
			case stance.Disadvantaged:
				weak = append(weak, string(b))
			}
		}
		beats = append(beats, fmt.Sprintf("**%s** → %s", a, strings.Join(strong, ", ")))
		weakTo = append(weakTo, fmt.Sprintf("**%s** ← %s", a, strings.Join(weak, ", ")))
	}

	distanceFour := "Stances four steps apart are neutral for both"
	if ring.AsymmetricDistanceFour() {
		distanceFour = "Four steps apart: the stance four steps ahead gains advantage"
	}

	return &discordgo.MessageEmbed{
		Title:       "📜 Duel Rules",
		Description: "The complete guide to strategic stance-based dueling",
		Color:       colorGold,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: "🎯 How to Play",
				Value: "1. **Challenge** someone to a best-of-3/5/7 match\n" +
					"2. Each round: **Declare** two stances in secret\n" +
					"3. Declarations are revealed once both players have declared\n" +
					"4. **Pick** one of your declared stances secretly\n" +
					"5. **Roll** with advantage or disadvantage based on the matchup\n" +
					"6. Higher roll wins the round!",
			},
			{
				Name:   "⚔️ Stance Advantages",
				Value:  strings.Join(beats, "\n"),
				Inline: true,
			},
			{
				Name:   "🛡️ Stance Disadvantages",
				Value:  strings.Join(weakTo, "\n"),
				Inline: true,
			},
			{
				Name: "🎲 Dice Mechanics",
				Value: "**Advantage**: Roll 2d6, keep higher\n" +
					"**Neutral**: Roll 1d6\n" +
					"**Disadvantage**: Roll 2d6, keep lower\n" +
					distanceFour + "\n" +
					"\n*Ties are rerolled*",
				Inline: true,
			},
			{
				Name: "🔧 Optional Variants",
				Value: "**No-Repeat**: Can't use the same stance twice in a row\n" +
					"**Adjacency Mod**: +1 for adjacent, -1 for opposite stances\n" +
					"**Bait-Switch**: Change one declared stance before picking",
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Master the hexagon to become the ultimate duelist!",
		},
	}
}

func buildChallengeEmbed(m *duel.Match) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "⚔️ Duel Challenge!",
		Description: fmt.Sprintf("%s challenges %s to a duel!", mention(m.Player1.ID), mention(m.Player2.ID)),
		Color:       colorOrange,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Format", Value: fmt.Sprintf("Best of %d", m.BestOf), Inline: true},
			{Name: "Options", Value: formatOptions(m.Rules), Inline: true},
			{Name: "Status", Value: "⏳ Waiting for acceptance"},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%s, use /accept to accept this challenge!", m.Player2.DisplayName),
		},
	}
}

func buildAcceptedEmbed(m *duel.Match) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "⚔️ Duel - LIVE!",
		Description: fmt.Sprintf("%s vs %s", m.Player1.DisplayName, m.Player2.DisplayName),
		Color:       colorGreen,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Format", Value: fmt.Sprintf("Best of %d", m.BestOf), Inline: true},
			{Name: "Options", Value: formatOptions(m.Rules), Inline: true},
			{Name: "Round", Value: fmt.Sprintf("%d", m.CurrentRound), Inline: true},
			{Name: "Score", Value: scoreLine(m)},
			{Name: "Next Step", Value: "Both players declare their stances using `/declare first second`"},
		},
	}
}

// buildDeclarationsEmbed reveals both declarations once the second player has declared
func buildDeclarationsEmbed(m *duel.Match) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "🎯 Stance Declarations Revealed!",
		Description: "Both players have declared their stances. Here are the options:",
		Color:       colorBlue,
		Fields: []*discordgo.MessageEmbedField{
			{Name: fmt.Sprintf("%s's options", m.Player1.DisplayName), Value: joinStances(m.Player1.Declared, " | ")},
			{Name: fmt.Sprintf("%s's options", m.Player2.DisplayName), Value: joinStances(m.Player2.Declared, " | ")},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Use /pick to make your secret selection!",
		},
	}

	if m.Rules.BaitSwitch {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Bait & Switch",
			Value: "You may use `/switch old new` once before picking!",
		})
	}
	return embed
}

func buildRoundEmbed(m *duel.Match, result *duel.RoundResult) *discordgo.MessageEmbed {
	p1 := m.Participant(result.Player1ID)
	p2 := m.Participant(result.Player2ID)

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("⚔️ Round %d Results", result.Round),
		Color: colorGold,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: "Stance Matchup",
				Value: fmt.Sprintf("**%s**: %s\n**%s**: %s",
					p1.DisplayName, result.Player1Stance, p2.DisplayName, result.Player2Stance),
				Inline: true,
			},
			{
				Name: "Advantage",
				Value: fmt.Sprintf("**%s**: %s\n**%s**: %s",
					p1.DisplayName, result.Final.Player1.Advantage, p2.DisplayName, result.Final.Player2.Advantage),
				Inline: true,
			},
			{
				Name:   "Dice Rolls",
				Value:  formatTrace(p1.DisplayName, p2.DisplayName, result.Final),
				Inline: true,
			},
		},
	}

	if result.Initial != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "🔁 Initial Tie",
			Value: formatTrace(p1.DisplayName, p2.DisplayName, *result.Initial),
		})
	}

	embed.Fields = append(embed.Fields,
		&discordgo.MessageEmbedField{
			Name:  "Round Winner",
			Value: fmt.Sprintf("🏆 **%s**", m.Participant(result.WinnerID).DisplayName),
		},
		&discordgo.MessageEmbedField{
			Name:  "Match Score",
			Value: scoreLine(m),
		},
	)

	var notes []string
	if result.AdjacencyApplied {
		notes = append(notes, "Adjacency modifier applied")
	}
	if result.ModifierApplied {
		notes = append(notes, "Roll modifiers applied")
	}
	if result.Rerolls > 0 {
		notes = append(notes, fmt.Sprintf("Rerolled %d time(s) to break a tie", result.Rerolls))
	}
	if len(notes) > 0 {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: strings.Join(notes, " • ")}
	}
	return embed
}

func buildNextRoundEmbed(m *duel.Match) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🎯 Round %d", m.CurrentRound),
		Description: "Declare your stances for the next round!",
		Color:       colorBlue,
	}
}

func buildMatchCompleteEmbed(m *duel.Match) *discordgo.MessageEmbed {
	winner := m.Winner()
	loser := m.Opponent(winner.ID)

	return &discordgo.MessageEmbed{
		Title:       "🏆 MATCH COMPLETE!",
		Description: fmt.Sprintf("**%s** defeats **%s**!", winner.DisplayName, loser.DisplayName),
		Color:       colorGold,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Final Score",
				Value:  fmt.Sprintf("**%s**: %d\n**%s**: %d", winner.DisplayName, winner.Score, loser.DisplayName, loser.Score),
				Inline: true,
			},
			{
				Name:   "Format",
				Value:  fmt.Sprintf("Best of %d", m.BestOf),
				Inline: true,
			},
		},
	}
}

// buildStatusEmbed shows match progress. Declarations stay hidden until both
// players have declared and picks are never shown.
func buildStatusEmbed(m *duel.Match) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "📊 Match Status",
		Color: colorBlue,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Players", Value: fmt.Sprintf("%s vs %s", m.Player1.DisplayName, m.Player2.DisplayName)},
			{Name: "Score", Value: scoreLine(m)},
			{Name: "Round", Value: fmt.Sprintf("%d", m.CurrentRound), Inline: true},
			{Name: "Format", Value: fmt.Sprintf("Best of %d", m.BestOf), Inline: true},
			{Name: "State", Value: m.Phase.Label(), Inline: true},
			{Name: "Options", Value: formatOptions(m.Rules)},
		},
	}

	progress := func(done bool, doneMark string, p *duel.Player) string {
		if done {
			return fmt.Sprintf("%s %s", doneMark, p.DisplayName)
		}
		return fmt.Sprintf("⏳ %s", p.DisplayName)
	}

	switch m.Phase {
	case duel.PhaseWaitingForAccept:
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Next Step",
			Value: fmt.Sprintf("Waiting for %s to `/accept`", mention(m.Player2.ID)),
		})
	case duel.PhaseDeclaringStances:
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Declarations",
			Value: progress(m.Player1.HasDeclared(), "✅", m.Player1) + "\n" +
				progress(m.Player2.HasDeclared(), "✅", m.Player2),
		})
	case duel.PhasePickingStances:
		embed.Fields = append(embed.Fields,
			&discordgo.MessageEmbedField{
				Name: "Secret Picks",
				Value: progress(m.Player1.HasPicked(), "🔒", m.Player1) + "\n" +
					progress(m.Player2.HasPicked(), "🔒", m.Player2),
			},
			&discordgo.MessageEmbedField{
				Name:   fmt.Sprintf("%s's Options", m.Player1.DisplayName),
				Value:  joinStances(m.Player1.Declared, " | "),
				Inline: true,
			},
			&discordgo.MessageEmbedField{
				Name:   fmt.Sprintf("%s's Options", m.Player2.DisplayName),
				Value:  joinStances(m.Player2.Declared, " | "),
				Inline: true,
			},
		)
	}

	if last := m.LastRound(); last != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "⏮️ Last Round",
			Value: formatLastRound(m, last),
		})
	}

	if mods := formatModifiers(m); mods != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "🔧 Modifiers",
			Value: mods,
		})
	}
	return embed
}

// formatLastRound summarizes a finished round, e.g. "Round 1: **Alice** won (Bagr 6 vs Tigr 1)"
func formatLastRound(m *duel.Match, r *duel.RoundResult) string {
	winner := r.WinnerID
	if p := m.Participant(r.WinnerID); p != nil {
		winner = p.DisplayName
	}
	return fmt.Sprintf("Round %d: **%s** won (%s %d vs %s %d)",
		r.Round, winner, r.Player1Stance, r.Final.Player1.Final, r.Player2Stance, r.Final.Player2.Final)
}

func buildEndedEmbed(m *duel.Match, title, verb string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: fmt.Sprintf("Match between %s and %s %s.", m.Player1.DisplayName, m.Player2.DisplayName, verb),
		Color:       colorRed,
	}
}

func buildSettingsEmbed(s *settings.Settings, talentMarker string, talentBonus int) *discordgo.MessageEmbed {
	talent := "Off"
	if s.TalentBonusEnabled {
		talent = fmt.Sprintf("On (%+d for names containing \"%s\")", talentBonus, talentMarker)
	}

	roles := make([]string, len(s.TripleStanceRoles))
	for i, id := range s.TripleStanceRoles {
		roles[i] = fmt.Sprintf("<@&%s>", id)
	}
	mods := make([]string, len(s.Moderators))
	for i, id := range s.Moderators {
		mods[i] = mention(id)
	}

	return &discordgo.MessageEmbed{
		Title: "⚙️ Duel Settings",
		Color: colorGrey,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Talent Bonus", Value: talent},
			{Name: "Triple-Stance Roles", Value: orNone(strings.Join(roles, ", "))},
			{Name: "Moderators", Value: orNone(strings.Join(mods, ", "))},
		},
	}
}

func formatOptions(rules duel.Rules) string {
	var options []string
	if rules.NoRepeat {
		options = append(options, "No Repeat")
	}
	if rules.AdjacencyMod {
		options = append(options, "Adjacency Mod")
	}
	if rules.BaitSwitch {
		options = append(options, "Bait & Switch")
	}
	if rules.Talent.Enabled {
		options = append(options, fmt.Sprintf("Talent (%+d %s)", rules.Talent.Bonus, rules.Talent.Marker))
	}
	if len(options) == 0 {
		return "Standard"
	}
	return strings.Join(options, ", ")
}

func scoreLine(m *duel.Match) string {
	return fmt.Sprintf("**%s**: %d | **%s**: %d",
		m.Player1.DisplayName, m.Player1.Score, m.Player2.DisplayName, m.Player2.Score)
}

func formatTrace(name1, name2 string, t duel.RollTrace) string {
	return fmt.Sprintf("**%s**: %s\n**%s**: %s", name1, formatSideRoll(t.Player1), name2, formatSideRoll(t.Player2))
}

// formatSideRoll renders e.g. "[~~2~~, 5] +1 adj → **6**"; the discarded die is struck through
func formatSideRoll(r duel.SideRoll) string {
	var b strings.Builder
	if len(r.Rolls) > 1 {
		parts := make([]string, len(r.Rolls))
		for i, v := range r.Rolls {
			if i == r.Used {
				parts[i] = fmt.Sprintf("%d", v)
			} else {
				parts[i] = fmt.Sprintf("~~%d~~", v)
			}
		}
		b.WriteString("[" + strings.Join(parts, ", ") + "]")
	} else {
		fmt.Fprintf(&b, "%d", r.Base)
	}

	if r.Adjustment != 0 {
		fmt.Fprintf(&b, " %+d adj", r.Adjustment)
	}
	if r.Modifier != 0 {
		fmt.Fprintf(&b, " %+d mod", r.Modifier)
	}
	if len(r.Rolls) == 1 && r.Adjustment == 0 && r.Modifier == 0 {
		return fmt.Sprintf("**%d**", r.Final)
	}
	fmt.Fprintf(&b, " → **%d**", r.Final)
	return b.String()
}

func formatModifiers(m *duel.Match) string {
	var lines []string
	for _, p := range []*duel.Player{m.Player1, m.Player2} {
		b := m.ModifierFor(p)
		if b.Match == 0 && b.Round == 0 && b.Talent == 0 {
			continue
		}
		var parts []string
		if b.Match != 0 {
			parts = append(parts, fmt.Sprintf("match %+d", b.Match))
		}
		if b.Round != 0 {
			parts = append(parts, fmt.Sprintf("round %+d", b.Round))
		}
		if b.Talent != 0 {
			parts = append(parts, fmt.Sprintf("talent %+d", b.Talent))
		}
		lines = append(lines, fmt.Sprintf("**%s**: %s", p.DisplayName, strings.Join(parts, ", ")))
	}
	return strings.Join(lines, "\n")
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}
