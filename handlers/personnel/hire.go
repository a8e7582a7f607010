package personnel

import (
	"context"
	"fmt"
	"log"
	"strings"

	"personnel-bot/bot"
	"personnel-bot/model"
	"personnel-bot/sheets"
	"personnel-bot/utils"
	"personnel-bot/utils/database/registry"

	"github.com/bwmarrin/discordgo"
)

// displayName prefers the guild nickname over the account name.
func displayName(member *discordgo.Member) string {
	if member == nil {
		return ""
	}
	if member.Nick != "" {
		return member.Nick
	}
	if member.User != nil {
		if member.User.GlobalName != "" {
			return member.User.GlobalName
		}
		return member.User.Username
	}
	return ""
}

// splitFullName takes "Имя Фамилия" apart; a single word becomes the
// first name with no surname.
func splitFullName(fullName string) (first, last string) {
	fields := strings.Fields(fullName)
	if len(fields) == 0 {
		return "", ""
	}
	if len(fields) == 1 {
		return fields[0], ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}

// HandleHireCommand registers a recruit: personnel row with recruit
// defaults plus a hiring entry in the audit log.
func HandleHireCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	opts := optionMap(i)
	target := opts["user"].UserValue(s)
	fullName := strings.TrimSpace(opts["name"].StringValue())
	rawStatic := opts["static"].StringValue()

	if err := utils.DeferResponse(s, i, true); err != nil {
		return
	}

	static, err := utils.FormatStatic(rawStatic)
	if err != nil {
		utils.SendFollowUpError(s, i.Interaction, "Неверный формат статика: нужно 5 или 6 цифр.")
		return
	}
	firstName, lastName := splitFullName(fullName)
	if firstName == "" {
		utils.SendFollowUpError(s, i.Interaction, "Укажите Имя и Фамилию.")
		return
	}

	ctx := context.Background()
	record := model.PersonnelRecord{
		FirstName:  firstName,
		LastName:   lastName,
		Static:     static,
		Rank:       sheets.RecruitRank,
		Department: sheets.RecruitDepartment,
		Position:   "",
		DiscordID:  target.ID,
	}
	if err := b.Personnel.AddOrUpdate(ctx, record); err != nil {
		log.Printf("Error adding personnel record for %s: %v", target.ID, err)
		utils.SendFollowUpError(s, i.Interaction, "Не удалось записать бойца в кадровую таблицу.")
		return
	}

	signature := b.Moderators.Signature(ctx, displayName(i.Member))
	now := utils.MoscowTime()
	audit := model.AuditRecord{
		Timestamp:  now,
		Name:       record.FullName(),
		Static:     static,
		Action:     registry.ActionHiring,
		ActionDate: now,
		Department: record.Department,
		Position:   record.Position,
		Rank:       record.Rank,
		DiscordID:  target.ID,
		SignedBy:   signature,
	}
	audit.MessageLink = PublishAudit(s, b, i.GuildID, audit)
	if err := b.Audit.Append(ctx, audit); err != nil {
		log.Printf("Error appending hiring audit for %s: %v", static, err)
		utils.SendFollowUpError(s, i.Interaction, "Боец записан, но кадровый аудит не обновлён.")
		return
	}

	cfg := b.GetConfig()
	utils.LogInfo(cfg.LogWebhookURL, "personnel", "hire",
		fmt.Sprintf("%s | %s принят на службу (%s)", record.FullName(), static, signature))

	embed := &discordgo.MessageEmbed{
		Title: "✅ Принят на службу",
		Color: 0x57F287,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Боец", Value: fmt.Sprintf("%s | %s", record.FullName(), static), Inline: true},
			{Name: "Звание", Value: record.Rank, Inline: true},
			{Name: "Подразделение", Value: record.Department, Inline: true},
			{Name: "Кадровик", Value: signature, Inline: true},
		},
	}
	utils.SendFollowUpEmbed(s, i.Interaction, embed)
}
