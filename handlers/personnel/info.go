package personnel

import (
	"context"
	"errors"
	"fmt"
	"log"

	"personnel-bot/bot"
	"personnel-bot/sheets"
	"personnel-bot/utils"

	"github.com/bwmarrin/discordgo"
)

func valueOrDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

// HandleInfoCommand renders the target's personnel card.
func HandleInfoCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	opts := optionMap(i)
	target := opts["user"].UserValue(s)

	if err := utils.DeferResponse(s, i, true); err != nil {
		return
	}

	record, err := b.Personnel.Get(context.Background(), target.ID)
	if errors.Is(err, sheets.ErrNotFound) {
		utils.SendFollowUpError(s, i.Interaction, "Боец не найден в кадровой таблице.")
		return
	}
	if err != nil {
		log.Printf("Error reading personnel record for %s: %v", target.ID, err)
		utils.SendFollowUpError(s, i.Interaction, "Не удалось прочитать кадровую таблицу.")
		return
	}

	embed := &discordgo.MessageEmbed{
		Title: "Кадровая справка",
		Color: 0x5865F2,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Имя Фамилия", Value: valueOrDash(record.FullName()), Inline: true},
			{Name: "Статик", Value: valueOrDash(record.Static), Inline: true},
			{Name: "Звание", Value: valueOrDash(record.Rank), Inline: true},
			{Name: "Подразделение", Value: valueOrDash(record.Department), Inline: true},
			{Name: "Должность", Value: valueOrDash(record.Position), Inline: true},
			{Name: "Discord", Value: fmt.Sprintf("<@%s>", record.DiscordID), Inline: true},
		},
	}

	// Flag a mismatch between the sheet and the member's Discord roles.
	if member, err := s.GuildMember(i.GuildID, target.ID); err == nil {
		roleRank := RankFromRoles(s, b, i.GuildID, member)
		if roleRank != unknownValue && roleRank != record.Rank {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:  "⚠️ Звание по ролям",
				Value: roleRank,
			})
		}
	}
	utils.SendFollowUpEmbed(s, i.Interaction, embed)
}
