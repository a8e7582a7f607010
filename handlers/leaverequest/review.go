package leaverequest

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"personnel-bot/bot"
	"personnel-bot/leave"
	"personnel-bot/model"
	"personnel-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// HandleReviewComponent resolves the approve, reject and delete buttons
// on a leave request.
func HandleReviewComponent(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, customID string) {
	action, requestID, ok := strings.Cut(customID, ":")
	if !ok {
		return
	}

	switch action {
	case "leave_approve":
		approve(s, i, b, requestID)
	case "leave_reject":
		if !isModerator(s, i, b) {
			return
		}
		components := []discordgo.MessageComponent{
			utils.TextInputRow(discordgo.TextInput{
				CustomID:  "reason",
				Label:     "Причина отказа",
				Style:     discordgo.TextInputParagraph,
				Required:  true,
				MaxLength: 512,
			}),
		}
		if err := utils.ShowModal(s, i, "leave_reject_modal:"+requestID, "Отклонить запрос", components); err != nil {
			log.Printf("Error showing leave reject modal: %v", err)
		}
	case "leave_delete":
		remove(s, i, b, requestID)
	}
}

func isModerator(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) bool {
	if i.Member == nil || !utils.IsModerator(i.Member.User.ID, i.Member.Roles, b.GetConfig()) {
		utils.SendErrorResponse(s, i, "Рассматривать запросы могут только модераторы.")
		return false
	}
	return true
}

func approve(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, requestID string) {
	if !isModerator(s, i, b) {
		return
	}

	reviewerID := i.Member.User.ID
	err := b.Leave.SetStatus(requestID, model.LeaveStatusApproved, reviewerID, reviewerName(i.Member), "")
	switch {
	case errors.Is(err, leave.ErrAlreadyProcessed):
		utils.SendErrorResponse(s, i, "Запрос уже рассмотрен.")
		return
	case errors.Is(err, leave.ErrNotFound):
		utils.SendErrorResponse(s, i, "Запрос не найден. Возможно, он был удалён.")
		return
	case err != nil:
		log.Printf("Error approving leave request %s: %v", requestID, err)
		utils.SendErrorResponse(s, i, "Не удалось обновить запрос.")
		return
	}

	request, err := b.Leave.Get(requestID)
	if err == nil {
		notifyUser(s, request.UserID,
			fmt.Sprintf("Ваш запрос на отгул с %s до %s одобрен.", request.StartTime, request.EndTime))
	}
	updateRequestMessage(s, i, "✅ Одобрен: "+reviewerName(i.Member), 0x57F287)
	utils.SendSimpleResponse(s, i, "Запрос одобрен.")
}

func remove(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, requestID string) {
	cfg := b.GetConfig()
	callerID := i.Member.User.ID
	isAdmin := utils.IsAdministrator(callerID, i.Member.Roles, cfg)

	err := b.Leave.Delete(requestID, callerID, isAdmin)
	switch {
	case errors.Is(err, leave.ErrNotPermitted):
		utils.SendErrorResponse(s, i, "Удалить можно только свой нерассмотренный запрос.")
		return
	case errors.Is(err, leave.ErrNotFound):
		utils.SendErrorResponse(s, i, "Запрос не найден.")
		return
	case err != nil:
		log.Printf("Error deleting leave request %s: %v", requestID, err)
		utils.SendErrorResponse(s, i, "Не удалось удалить запрос.")
		return
	}

	if i.Message != nil {
		if err := s.ChannelMessageDelete(i.Message.ChannelID, i.Message.ID); err != nil {
			log.Printf("Error deleting leave request message: %v", err)
		}
	}
	utils.SendSimpleResponse(s, i, "Запрос удалён.")
}

// HandleRejectModalSubmit finalizes a rejected leave request.
func HandleRejectModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, customID string) {
	requestID := strings.TrimPrefix(customID, "leave_reject_modal:")
	reason := utils.ModalInputValue(i.ModalSubmitData(), "reason")

	reviewerID := i.Member.User.ID
	err := b.Leave.SetStatus(requestID, model.LeaveStatusRejected, reviewerID, reviewerName(i.Member), reason)
	switch {
	case errors.Is(err, leave.ErrAlreadyProcessed):
		utils.SendErrorResponse(s, i, "Запрос уже рассмотрен.")
		return
	case errors.Is(err, leave.ErrNotFound):
		utils.SendErrorResponse(s, i, "Запрос не найден. Возможно, он был удалён.")
		return
	case err != nil:
		log.Printf("Error rejecting leave request %s: %v", requestID, err)
		utils.SendErrorResponse(s, i, "Не удалось обновить запрос.")
		return
	}

	request, err := b.Leave.Get(requestID)
	if err == nil {
		notifyUser(s, request.UserID,
			fmt.Sprintf("Ваш запрос на отгул отклонён. Причина: %s", reason))
	}
	updateRequestMessage(s, i, "❌ Отклонён: "+reason, 0xED4245)
	utils.SendSimpleResponse(s, i, "Запрос отклонён.")
}

func reviewerName(member *discordgo.Member) string {
	if member == nil {
		return ""
	}
	if member.Nick != "" {
		return member.Nick
	}
	if member.User != nil {
		return member.User.Username
	}
	return ""
}

func notifyUser(s *discordgo.Session, userID, message string) {
	channel, err := s.UserChannelCreate(userID)
	if err != nil {
		log.Printf("Error opening DM channel to %s: %v", userID, err)
		return
	}
	if _, err := s.ChannelMessageSend(channel.ID, message); err != nil {
		log.Printf("Error sending DM to %s: %v", userID, err)
	}
}

// updateRequestMessage stamps the review outcome on the request message
// and strips its buttons.
func updateRequestMessage(s *discordgo.Session, i *discordgo.InteractionCreate, status string, color int) {
	if i.Message == nil {
		return
	}
	embeds := i.Message.Embeds
	if len(embeds) > 0 {
		embeds[0].Color = color
		embeds[0].Fields = append(embeds[0].Fields,
			&discordgo.MessageEmbedField{Name: "Статус", Value: status})
	}
	edit := &discordgo.MessageEdit{
		ID:         i.Message.ID,
		Channel:    i.Message.ChannelID,
		Embeds:     &embeds,
		Components: &[]discordgo.MessageComponent{},
	}
	if _, err := s.ChannelMessageEditComplex(edit); err != nil {
		log.Printf("Error updating leave request message: %v", err)
	}
}
