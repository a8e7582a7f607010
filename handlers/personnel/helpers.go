package personnel

import (
	"log"

	"personnel-bot/bot"

	"github.com/bwmarrin/discordgo"
)

const unknownValue = "Неизвестно"

func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

func guildRoles(s *discordgo.Session, guildID string) map[string]*discordgo.Role {
	roles := make(map[string]*discordgo.Role)
	guild, err := s.State.Guild(guildID)
	if err != nil || guild == nil {
		fetched, err := s.GuildRoles(guildID)
		if err != nil {
			log.Printf("Error fetching roles for guild %s: %v", guildID, err)
			return roles
		}
		for _, role := range fetched {
			roles[role.ID] = role
		}
		return roles
	}
	for _, role := range guild.Roles {
		roles[role.ID] = role
	}
	return roles
}

// memberRoleNames resolves a member's role IDs to role names.
func memberRoleNames(s *discordgo.Session, guildID string, member *discordgo.Member) []string {
	roles := guildRoles(s, guildID)
	names := make([]string, 0, len(member.Roles))
	for _, roleID := range member.Roles {
		if role, ok := roles[roleID]; ok {
			names = append(names, role.Name)
		}
	}
	return names
}

// RankFromRoles resolves the member's ladder rank from their Discord
// roles, or "Неизвестно" when none match.
func RankFromRoles(s *discordgo.Session, b *bot.Bot, guildID string, member *discordgo.Member) string {
	rank, ok := b.Ranks().HighestRank(memberRoleNames(s, guildID, member))
	if !ok {
		return unknownValue
	}
	return rank.Name
}

// DepartmentFromRoles picks the member's department: the highest-
// positioned role among the ping-settings department roles.
func DepartmentFromRoles(s *discordgo.Session, b *bot.Bot, guildID string, member *discordgo.Member) string {
	pingSettings := b.GetConfig().PingSettings
	if len(pingSettings) == 0 {
		return unknownValue
	}

	roles := guildRoles(s, guildID)
	var best *discordgo.Role
	for _, roleID := range member.Roles {
		if _, isDepartment := pingSettings[roleID]; !isDepartment {
			continue
		}
		role, ok := roles[roleID]
		if !ok {
			continue
		}
		if best == nil || role.Position > best.Position {
			best = role
		}
	}
	if best == nil {
		return unknownValue
	}
	return best.Name
}
