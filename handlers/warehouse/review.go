package warehouse

import (
	"fmt"
	"log"
	"strings"

	"personnel-bot/bot"
	"personnel-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// HandleReviewComponent resolves the issue and deny buttons on a
// warehouse request.
func HandleReviewComponent(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, customID string) {
	cfg := b.GetConfig()
	if i.Member == nil || !utils.IsModerator(i.Member.User.ID, i.Member.Roles, cfg) {
		utils.SendErrorResponse(s, i, "Рассматривать запросы на склад могут только модераторы.")
		return
	}

	action, userID, ok := strings.Cut(customID, ":")
	if !ok {
		return
	}
	reviewer := i.Member.User.ID

	switch action {
	case "wh_approve":
		postAuditCopy(s, i, cfg.Channels.WarehouseAudit, reviewer)
		postIssueNotice(s, i, cfg.Channels.WarehouseSubmission, userID)
		updateRequestMessage(s, i, fmt.Sprintf("✅ Выдано: <@%s>", reviewer), 0x57F287)
		utils.LogInfo(cfg.LogWebhookURL, "warehouse", "approve",
			fmt.Sprintf("Запрос <@%s> выдан модератором <@%s>", userID, reviewer))
		utils.SendSimpleResponse(s, i, "Запрос отмечен как выданный.")
	case "wh_reject":
		b.Warehouse.ClearCooldown(userID)
		updateRequestMessage(s, i, fmt.Sprintf("❌ Отказано: <@%s>", reviewer), 0xED4245)
		utils.LogInfo(cfg.LogWebhookURL, "warehouse", "reject",
			fmt.Sprintf("Запрос <@%s> отклонён модератором <@%s>", userID, reviewer))
		utils.SendSimpleResponse(s, i, "Запрос отклонён, откат снят.")
	}
}

// postAuditCopy forwards the issued request embed to the audit channel.
func postAuditCopy(s *discordgo.Session, i *discordgo.InteractionCreate, channelID, reviewer string) {
	if channelID == "" || i.Message == nil || len(i.Message.Embeds) == 0 {
		return
	}
	audit := *i.Message.Embeds[0]
	audit.Title = "📦 Выдача со склада"
	audit.Color = 0x57F287
	audit.Fields = append(audit.Fields,
		&discordgo.MessageEmbedField{Name: "Выдал", Value: fmt.Sprintf("<@%s>", reviewer), Inline: true})
	if _, err := s.ChannelMessageSendEmbed(channelID, &audit); err != nil {
		log.Printf("Error posting warehouse audit copy: %v", err)
	}
}

// postIssueNotice tells the requester in the issue channel that the
// requisition is ready for pickup.
func postIssueNotice(s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID string) {
	if channelID == "" || i.Message == nil || len(i.Message.Embeds) == 0 {
		return
	}
	notice := *i.Message.Embeds[0]
	notice.Title = "📦 Готово к получению"
	notice.Color = 0x57F287
	_, err := s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content: fmt.Sprintf("<@%s>, ваш запрос на склад одобрен.", userID),
		Embeds:  []*discordgo.MessageEmbed{&notice},
	})
	if err != nil {
		log.Printf("Error posting warehouse issue notice: %v", err)
	}
}

// updateRequestMessage stamps the outcome on the request message and
// strips its buttons.
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
		log.Printf("Error updating warehouse request message: %v", err)
	}
}
