package personnel

import (
	"context"
	"fmt"
	"log"

	"personnel-bot/bot"
	"personnel-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// HandleBlacklistCheckCommand looks a static up in the penalty sheet.
func HandleBlacklistCheckCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	opts := optionMap(i)
	rawStatic := opts["static"].StringValue()

	if err := utils.DeferResponse(s, i, true); err != nil {
		return
	}

	static, err := utils.FormatStatic(rawStatic)
	if err != nil {
		utils.SendFollowUpError(s, i.Interaction, "Неверный формат статика: нужно 5 или 6 цифр.")
		return
	}

	records, err := b.Blacklist.FindByStatic(context.Background(), static)
	if err != nil {
		log.Printf("Error reading blacklist for %s: %v", static, err)
		utils.SendFollowUpError(s, i.Interaction, "Не удалось прочитать чёрный список.")
		return
	}
	if len(records) == 0 {
		utils.SendFollowUp(s, i.Interaction,
			fmt.Sprintf("✅ Статик %s в чёрном списке не найден.", static))
		return
	}

	now := utils.MoscowTime()
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Чёрный список: %s", static),
		Color: 0xED4245,
	}
	for _, record := range records {
		active := "истёк"
		if record.EnforcementDate.After(now) {
			active = "действует до " + utils.FormatSheetDate(record.EnforcementDate)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: fmt.Sprintf("%s — %s", record.Name, record.Reason),
			Value: fmt.Sprintf("Срок: %s\nВнесён: %s\nСтатус: %s\nКадровик: %s",
				record.Term, utils.FormatSheetDate(record.EntryDate), active, record.SignedBy),
		})
	}
	utils.SendFollowUpEmbed(s, i.Interaction, embed)
}
