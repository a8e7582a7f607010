package leaverequest

import (
	"fmt"
	"log"
	"strings"

	"personnel-bot/bot"
	"personnel-bot/handlers/personnel"
	"personnel-bot/model"
	"personnel-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// HandleLeaveRequestCommand opens the leave request modal.
func HandleLeaveRequestCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	cfg := b.GetConfig().Leave
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
			CustomID:    "start",
			Label:       fmt.Sprintf("Начало (с %s, формат ЧЧ:ММ)", cfg.WorkStart),
			Style:       discordgo.TextInputShort,
			Placeholder: "14:00",
			Required:    true,
			MaxLength:   5,
		}),
		utils.TextInputRow(discordgo.TextInput{
			CustomID:    "end",
			Label:       fmt.Sprintf("Конец (до %s, формат ЧЧ:ММ)", cfg.WorkEnd),
			Style:       discordgo.TextInputShort,
			Placeholder: "15:00",
			Required:    true,
			MaxLength:   5,
		}),
		utils.TextInputRow(discordgo.TextInput{
			CustomID:  "reason",
			Label:     "Причина",
			Style:     discordgo.TextInputParagraph,
			Required:  true,
			MaxLength: 512,
		}),
	}
	if err := utils.ShowModal(s, i, "leave_request_modal", "Запрос на отгул", components); err != nil {
		log.Printf("Error showing leave request modal: %v", err)
	}
}

// HandleModalSubmit validates and stores the request, then posts it for
// review.
func HandleModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	data := i.ModalSubmitData()
	name := utils.ModalInputValue(data, "name")
	rawStatic := utils.ModalInputValue(data, "static")
	startTime := utils.ModalInputValue(data, "start")
	endTime := utils.ModalInputValue(data, "end")
	reason := utils.ModalInputValue(data, "reason")

	static, err := utils.FormatStatic(rawStatic)
	if err != nil {
		utils.SendErrorResponse(s, i, "Неверный формат статика: нужно 5 или 6 цифр.")
		return
	}

	userID := i.Member.User.ID
	duration, err := b.LeaveValidator.Validate(startTime, endTime, userID, b.Leave)
	if err != nil {
		utils.SendErrorResponse(s, i, err.Error())
		return
	}

	request := model.LeaveRequest{
		UserID:          userID,
		GuildID:         i.GuildID,
		Name:            name,
		Static:          static,
		StartTime:       startTime,
		EndTime:         endTime,
		DurationMinutes: duration,
		Reason:          reason,
		Department:      personnel.DepartmentFromRoles(s, b, i.GuildID, i.Member),
	}
	requestID, err := b.Leave.Add(request)
	if err != nil {
		log.Printf("Error storing leave request for %s: %v", userID, err)
		utils.SendErrorResponse(s, i, "Не удалось сохранить запрос на отгул.")
		return
	}

	cfg := b.GetConfig()
	embed := requestEmbed(request, requestID, userID)
	buttons := discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Одобрить",
				Style:    discordgo.SuccessButton,
				CustomID: "leave_approve:" + requestID,
			},
			discordgo.Button{
				Label:    "Отклонить",
				Style:    discordgo.DangerButton,
				CustomID: "leave_reject:" + requestID,
			},
			discordgo.Button{
				Label:    "Удалить",
				Style:    discordgo.SecondaryButton,
				CustomID: "leave_delete:" + requestID,
			},
		},
	}
	_, err = s.ChannelMessageSendComplex(cfg.Channels.LeaveRequests, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{buttons},
	})
	if err != nil {
		log.Printf("Error posting leave request %s: %v", requestID, err)
	}

	utils.SendSimpleResponse(s, i,
		fmt.Sprintf("✅ Запрос на отгул с %s до %s (%d мин.) отправлен на рассмотрение.", startTime, endTime, duration))
}

func requestEmbed(request model.LeaveRequest, requestID, userID string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "Запрос на отгул",
		Color: 0xFEE75C,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Боец", Value: fmt.Sprintf("%s | %s", request.Name, request.Static), Inline: true},
			{Name: "Discord", Value: fmt.Sprintf("<@%s>", userID), Inline: true},
			{Name: "Подразделение", Value: request.Department, Inline: true},
			{Name: "Время", Value: fmt.Sprintf("%s — %s (%d мин.)", request.StartTime, request.EndTime, request.DurationMinutes), Inline: true},
			{Name: "Причина", Value: request.Reason},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: requestID},
	}
}

// HandleListCommand renders today's requests for moderators.
func HandleListCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	requests := b.Leave.AllRequestsToday()
	if len(requests) == 0 {
		utils.SendSimpleResponse(s, i, "Сегодня запросов на отгул нет.")
		return
	}

	statusLabels := map[string]string{
		model.LeaveStatusPending:  "⏳ на рассмотрении",
		model.LeaveStatusApproved: "✅ одобрен",
		model.LeaveStatusRejected: "❌ отклонён",
	}
	var lines []string
	for n, request := range requests {
		lines = append(lines, fmt.Sprintf("%d. **%s | %s** — %s–%s (%d мин.) — %s",
			n+1, request.Name, request.Static,
			request.StartTime, request.EndTime, request.DurationMinutes,
			statusLabels[request.Status]))
	}
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Запросы на отгул за сегодня (%d)", len(requests)),
		Color:       0x5865F2,
		Description: strings.Join(lines, "\n"),
	}
	utils.SendEmbedResponse(s, i, embed)
}
