package personnel

import (
	"fmt"
	"log"

	"personnel-bot/bot"
	"personnel-bot/model"
	"personnel-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// PublishAudit posts the record to the audit channel and returns the
// message link for the audit sheet's link column. An unset channel or a
// send failure yields an empty link.
func PublishAudit(s *discordgo.Session, b *bot.Bot, guildID string, record model.AuditRecord) string {
	channelID := b.GetConfig().Channels.Audit
	if channelID == "" {
		return ""
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: "Боец", Value: record.NameWithStatic(), Inline: true},
		{Name: "Звание", Value: valueOrDash(record.Rank), Inline: true},
		{Name: "Подразделение", Value: valueOrDash(record.Department), Inline: true},
		{Name: "Discord", Value: fmt.Sprintf("<@%s>", record.DiscordID), Inline: true},
		{Name: "Кадровик", Value: valueOrDash(record.SignedBy), Inline: true},
		{Name: "Дата", Value: utils.FormatSheetDate(record.ActionDate), Inline: true},
	}
	if record.Reason != "" {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Основание", Value: record.Reason})
	}
	embed := &discordgo.MessageEmbed{
		Title:  record.Action,
		Color:  0x5865F2,
		Fields: fields,
	}

	msg, err := s.ChannelMessageSendEmbed(channelID, embed)
	if err != nil {
		log.Printf("Error posting audit notice for %s: %v", record.Static, err)
		return ""
	}
	return fmt.Sprintf("https://discord.com/channels/%s/%s/%s", guildID, channelID, msg.ID)
}
