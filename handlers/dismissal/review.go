package dismissal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"personnel-bot/bot"
	"personnel-bot/handlers/personnel"
	"personnel-bot/model"
	"personnel-bot/sheets"
	"personnel-bot/utils"
	"personnel-bot/utils/database/registry"

	"github.com/bwmarrin/discordgo"
)

// earlyServiceDays is the minimum service length; dismissal before it
// earns a penalty blacklist entry.
const earlyServiceDays = 5

func checkMark(ok bool) string {
	if ok {
		return "✅"
	}
	return "❌"
}

// HandleReviewComponent resolves the approve and reject buttons on a
// dismissal report.
func HandleReviewComponent(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, customID string) {
	cfg := b.GetConfig()
	if i.Member == nil || !utils.IsModerator(i.Member.User.ID, i.Member.Roles, cfg) {
		utils.SendErrorResponse(s, i, "Рассматривать рапорты могут только модераторы.")
		return
	}

	action, userID, ok := strings.Cut(customID, ":")
	if !ok {
		return
	}

	if action == "reject_dismissal" {
		components := []discordgo.MessageComponent{
			utils.TextInputRow(discordgo.TextInput{
				CustomID:  "reason",
				Label:     "Причина отказа",
				Style:     discordgo.TextInputParagraph,
				Required:  true,
				MaxLength: 512,
			}),
		}
		if err := utils.ShowModal(s, i, "dismiss_reject_modal:"+userID, "Отклонить рапорт", components); err != nil {
			log.Printf("Error showing dismissal reject modal: %v", err)
		}
		return
	}

	if i.Member.User.ID == userID {
		utils.SendErrorResponse(s, i, "Нельзя рассматривать собственный рапорт.")
		return
	}

	if err := utils.DeferResponse(s, i, true); err != nil {
		return
	}
	if !canApprove(s, i, b, userID) {
		utils.SendFollowUpError(s, i.Interaction,
			"Одобрить увольнение может только кадровик со званием выше, чем у бойца.")
		return
	}

	report, ok := takeReport(userID)
	if !ok {
		utils.SendFollowUpError(s, i.Interaction, "Рапорт уже обработан.")
		return
	}

	approveReport(s, i, b, report)
}

// canApprove enforces the rank hierarchy on approval: the reviewer must
// outrank the soldier being dismissed. Administrators are exempt, and an
// unreadable record or an unknown rank does not block the review.
func canApprove(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, userID string) bool {
	cfg := b.GetConfig()
	if utils.IsAdministrator(i.Member.User.ID, i.Member.Roles, cfg) {
		return true
	}
	record, err := b.Personnel.Get(context.Background(), userID)
	if err != nil {
		return true
	}
	reviewerRank := personnel.RankFromRoles(s, b, i.GuildID, i.Member)
	return outranks(b.Ranks(), reviewerRank, record.Rank)
}

// outranks reports whether the reviewer's ladder rank sits strictly
// above the target's. Ranks missing from the ladder do not block.
func outranks(idx *registry.RankIndex, reviewerRank, targetRank string) bool {
	reviewer, ok := idx.Lookup(reviewerRank)
	if !ok {
		return true
	}
	target, ok := idx.Lookup(targetRank)
	if !ok {
		return true
	}
	return reviewer.Level < target.Level
}

// approveReport runs the three dismissal steps independently and reports
// each outcome. A failed step does not roll back the others.
func approveReport(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, report Report) {
	ctx := context.Background()
	cfg := b.GetConfig()
	signature := b.Moderators.Signature(ctx, reviewerName(i.Member))
	now := utils.MoscowTime()

	record, err := b.Personnel.Get(ctx, report.UserID)
	if err != nil {
		if !errors.Is(err, sheets.ErrNotFound) {
			log.Printf("Error reading personnel record for %s: %v", report.UserID, err)
		}
		record = model.PersonnelRecord{DiscordID: report.UserID, Static: report.Static}
	}

	removed := true
	if err := b.Personnel.Remove(ctx, report.UserID); err != nil {
		log.Printf("Error removing personnel record for %s: %v", report.UserID, err)
		removed = false
	}

	audit := model.AuditRecord{
		Timestamp:  now,
		Name:       report.Name,
		Static:     report.Static,
		Action:     registry.ActionDismissal,
		ActionDate: now,
		Department: record.Department,
		Position:   record.Position,
		Rank:       record.Rank,
		DiscordID:  report.UserID,
		Reason:     report.Reason,
		SignedBy:   signature,
	}
	audit.MessageLink = personnel.PublishAudit(s, b, i.GuildID, audit)
	audited := true
	if err := b.Audit.Append(ctx, audit); err != nil {
		log.Printf("Error appending dismissal audit for %s: %v", report.Static, err)
		audited = false
	}

	notified := notifyUser(s, report.UserID,
		fmt.Sprintf("Ваш рапорт на увольнение (%s) одобрен.", report.Reason))

	lines := []string{
		fmt.Sprintf("%s Удаление из кадровой таблицы", checkMark(removed)),
		fmt.Sprintf("%s Запись в кадровый аудит", checkMark(audited)),
		fmt.Sprintf("%s Уведомление бойца", checkMark(notified)),
	}

	if penalized, line := applyEarlyPenalty(ctx, s, b, report, signature, now); penalized {
		lines = append(lines, line)
	}

	editReportMessage(s, i, "✅ Одобрен", 0x57F287)

	if !removed || !audited {
		utils.LogWarn(cfg.LogWebhookURL, "dismissal", "approve",
			fmt.Sprintf("%s | %s: не все шаги увольнения выполнены", report.Name, report.Static))
	}
	utils.LogInfo(cfg.LogWebhookURL, "dismissal", "approve",
		fmt.Sprintf("%s | %s уволен (%s)", report.Name, report.Static, signature))
	utils.SendFollowUp(s, i.Interaction, strings.Join(lines, "\n"))
}

// applyEarlyPenalty blacklists the soldier when the latest hiring is
// less than earlyServiceDays old.
func applyEarlyPenalty(ctx context.Context, s *discordgo.Session, b *bot.Bot, report Report, signature string, now time.Time) (bool, string) {
	hiring, err := b.Audit.LatestHiringByStatic(ctx, report.Static)
	if err != nil {
		if !errors.Is(err, sheets.ErrNotFound) {
			log.Printf("Error looking up hiring record for %s: %v", report.Static, err)
		}
		return false, ""
	}
	served := now.Sub(hiring.ActionDate)
	if served >= earlyServiceDays*24*time.Hour {
		return false, ""
	}

	entry := model.BlacklistRecord{
		Term:            fmt.Sprintf("%d дней", sheets.PenaltyTermDays),
		Name:            report.Name,
		Static:          report.Static,
		Reason:          "Неустойка",
		EntryDate:       now,
		EnforcementDate: now.AddDate(0, 0, sheets.PenaltyTermDays),
		SignedBy:        signature,
	}
	if err := b.Blacklist.Append(ctx, entry); err != nil {
		log.Printf("Error appending blacklist entry for %s: %v", report.Static, err)
		return true, "❌ Занесение в чёрный список (неустойка)"
	}

	cfg := b.GetConfig()
	embed := &discordgo.MessageEmbed{
		Title: "Чёрный список: неустойка",
		Color: 0xED4245,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Боец", Value: fmt.Sprintf("%s | %s", report.Name, report.Static), Inline: true},
			{Name: "Срок", Value: entry.Term, Inline: true},
			{Name: "Причина", Value: entry.Reason, Inline: true},
			{Name: "Действует до", Value: utils.FormatSheetDate(entry.EnforcementDate), Inline: true},
			{Name: "Кадровик", Value: signature, Inline: true},
		},
	}
	if _, err := s.ChannelMessageSendEmbed(cfg.Channels.Blacklist, embed); err != nil {
		log.Printf("Error posting blacklist notice for %s: %v", report.Static, err)
	}
	return true, "✅ Занесение в чёрный список (неустойка)"
}

// HandleRejectModalSubmit finalizes a rejected dismissal report.
func HandleRejectModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, customID string) {
	userID := strings.TrimPrefix(customID, "dismiss_reject_modal:")
	reason := utils.ModalInputValue(i.ModalSubmitData(), "reason")

	report, ok := takeReport(userID)
	if !ok {
		utils.SendErrorResponse(s, i, "Рапорт уже обработан.")
		return
	}

	notifyUser(s, report.UserID,
		fmt.Sprintf("Ваш рапорт на увольнение отклонён. Причина: %s", reason))
	editReportMessage(s, i, "❌ Отклонён: "+reason, 0xED4245)

	cfg := b.GetConfig()
	utils.LogInfo(cfg.LogWebhookURL, "dismissal", "reject",
		fmt.Sprintf("%s | %s — рапорт отклонён", report.Name, report.Static))
	utils.SendSimpleResponse(s, i, "Рапорт отклонён.")
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

// notifyUser sends a DM, reporting success.
func notifyUser(s *discordgo.Session, userID, message string) bool {
	channel, err := s.UserChannelCreate(userID)
	if err != nil {
		log.Printf("Error opening DM channel to %s: %v", userID, err)
		return false
	}
	if _, err := s.ChannelMessageSend(channel.ID, message); err != nil {
		log.Printf("Error sending DM to %s: %v", userID, err)
		return false
	}
	return true
}

// editReportMessage stamps the review outcome on the report message and
// strips its buttons.
func editReportMessage(s *discordgo.Session, i *discordgo.InteractionCreate, status string, color int) {
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
		log.Printf("Error updating dismissal report message: %v", err)
	}
}
