package dismissal

import (
	"fmt"
	"log"
	"strings"

	"personnel-bot/bot"
	"personnel-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// HandleDismissCommand opens the dismissal report modal.
func HandleDismissCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	components := []discordgo.MessageComponent{
		utils.TextInputRow(discordgo.TextInput{
			CustomID:    "name",
			Label:       "Имя Фамилия",
			Style:       discordgo.TextInputShort,
			Placeholder: "Иван Иванов",
			Required:    true,
			MaxLength:   64,
		}),
		utils.TextInputRow(discordgo.TextInput{
			CustomID:    "static",
			Label:       "Статик",
			Style:       discordgo.TextInputShort,
			Placeholder: "12-345",
			Required:    true,
			MaxLength:   10,
		}),
		utils.TextInputRow(discordgo.TextInput{
			CustomID:    "reason",
			Label:       "Причина (ПСЖ или Перевод)",
			Style:       discordgo.TextInputShort,
			Required:    true,
			MaxLength:   32,
		}),
	}
	if err := utils.ShowModal(s, i, "dismiss_modal", "Рапорт на увольнение", components); err != nil {
		log.Printf("Error showing dismissal modal: %v", err)
	}
}

// HandleModalSubmit validates the report and posts it for review.
func HandleModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	data := i.ModalSubmitData()
	name := utils.ModalInputValue(data, "name")
	rawStatic := utils.ModalInputValue(data, "static")
	reason := strings.TrimSpace(utils.ModalInputValue(data, "reason"))

	static, err := utils.FormatStatic(rawStatic)
	if err != nil {
		utils.SendErrorResponse(s, i, "Неверный формат статика: нужно 5 или 6 цифр.")
		return
	}
	if !strings.EqualFold(reason, ReasonOwnWish) && !strings.EqualFold(reason, ReasonTransfer) {
		utils.SendErrorResponse(s, i,
			fmt.Sprintf("Причина увольнения должна быть «%s» или «%s».", ReasonOwnWish, ReasonTransfer))
		return
	}
	if strings.EqualFold(reason, ReasonOwnWish) {
		reason = ReasonOwnWish
	} else {
		reason = ReasonTransfer
	}

	report := Report{
		UserID:      i.Member.User.ID,
		GuildID:     i.GuildID,
		Name:        name,
		Static:      static,
		Reason:      reason,
		SubmittedAt: utils.MoscowTime(),
	}
	if !addReport(report) {
		utils.SendErrorResponse(s, i, "У вас уже есть рапорт на рассмотрении.")
		return
	}

	cfg := b.GetConfig()
	embed := &discordgo.MessageEmbed{
		Title: "Рапорт на увольнение",
		Color: 0xFEE75C,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Боец", Value: fmt.Sprintf("%s | %s", name, static), Inline: true},
			{Name: "Причина", Value: reason, Inline: true},
			{Name: "Discord", Value: fmt.Sprintf("<@%s>", report.UserID), Inline: true},
			{Name: "Подан", Value: utils.FormatSheetTimestamp(report.SubmittedAt), Inline: true},
		},
	}
	buttons := discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Одобрить",
				Style:    discordgo.SuccessButton,
				CustomID: "approve_dismissal:" + report.UserID,
			},
			discordgo.Button{
				Label:    "Отклонить",
				Style:    discordgo.DangerButton,
				CustomID: "reject_dismissal:" + report.UserID,
			},
		},
	}
	_, err = s.ChannelMessageSendComplex(cfg.Channels.Dismissal, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{buttons},
	})
	if err != nil {
		takeReport(report.UserID)
		log.Printf("Error posting dismissal report for %s: %v", report.UserID, err)
		utils.SendErrorResponse(s, i, "Не удалось отправить рапорт на рассмотрение.")
		return
	}

	utils.SendSimpleResponse(s, i, "✅ Рапорт на увольнение отправлен на рассмотрение.")
}
