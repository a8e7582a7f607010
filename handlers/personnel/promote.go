package personnel

import (
	"context"
	"errors"
	"fmt"
	"log"

	"personnel-bot/bot"
	"personnel-bot/model"
	"personnel-bot/sheets"
	"personnel-bot/utils"
	"personnel-bot/utils/database/registry"

	"github.com/bwmarrin/discordgo"
)

// HandlePromoteCommand moves the target one step up the rank ladder.
func HandlePromoteCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	changeRank(s, i, b, true)
}

// HandleDemoteCommand moves the target one step down the rank ladder.
func HandleDemoteCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	changeRank(s, i, b, false)
}

func changeRank(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, up bool) {
	opts := optionMap(i)
	target := opts["user"].UserValue(s)
	reason := ""
	if opt, ok := opts["reason"]; ok {
		reason = opt.StringValue()
	}

	if err := utils.DeferResponse(s, i, true); err != nil {
		return
	}

	ctx := context.Background()
	record, err := b.Personnel.Get(ctx, target.ID)
	if errors.Is(err, sheets.ErrNotFound) {
		utils.SendFollowUpError(s, i.Interaction, "Боец не найден в кадровой таблице.")
		return
	}
	if err != nil {
		log.Printf("Error reading personnel record for %s: %v", target.ID, err)
		utils.SendFollowUpError(s, i.Interaction, "Не удалось прочитать кадровую таблицу.")
		return
	}

	current, ok := b.Ranks().Lookup(record.Rank)
	if !ok {
		utils.SendFollowUpError(s, i.Interaction,
			fmt.Sprintf("Звание «%s» не найдено в реестре званий.", record.Rank))
		return
	}

	var next model.Rank
	var action string
	if up {
		next, ok = b.Ranks().NextRank(current.Name)
		action = registry.ActionPromotion
		if !ok {
			utils.SendFollowUpError(s, i.Interaction, "Боец уже имеет высшее звание.")
			return
		}
	} else {
		next, ok = b.Ranks().PreviousRank(current.Name)
		action = registry.ActionDemotion
		if !ok {
			utils.SendFollowUpError(s, i.Interaction, "Боец уже имеет низшее звание.")
			return
		}
	}

	record.Rank = next.Name
	if err := b.Personnel.AddOrUpdate(ctx, record); err != nil {
		log.Printf("Error updating rank for %s: %v", target.ID, err)
		utils.SendFollowUpError(s, i.Interaction, "Не удалось обновить кадровую таблицу.")
		return
	}

	swapRankRoles(s, i.GuildID, target.ID, current, next)

	signature := b.Moderators.Signature(ctx, displayName(i.Member))
	now := utils.MoscowTime()
	audit := model.AuditRecord{
		Timestamp:  now,
		Name:       record.FullName(),
		Static:     record.Static,
		Action:     action,
		ActionDate: now,
		Department: record.Department,
		Position:   record.Position,
		Rank:       next.Name,
		DiscordID:  target.ID,
		Reason:     reason,
		SignedBy:   signature,
	}
	audit.MessageLink = PublishAudit(s, b, i.GuildID, audit)
	if err := b.Audit.Append(ctx, audit); err != nil {
		log.Printf("Error appending rank audit for %s: %v", record.Static, err)
		utils.SendFollowUpError(s, i.Interaction, "Звание обновлено, но кадровый аудит не обновлён.")
		return
	}

	verb := "Повышен"
	color := 0x57F287
	if !up {
		verb = "Разжалован"
		color = 0xED4245
	}
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s в звании", verb),
		Color: color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Боец", Value: fmt.Sprintf("%s | %s", record.FullName(), record.Static), Inline: true},
			{Name: "Звание", Value: fmt.Sprintf("%s → %s", current.Name, next.Name), Inline: true},
			{Name: "Кадровик", Value: signature, Inline: true},
		},
	}
	if reason != "" {
		embed.Fields = append(embed.Fields,
			&discordgo.MessageEmbedField{Name: "Основание", Value: reason})
	}
	utils.SendFollowUpEmbed(s, i.Interaction, embed)
}

// swapRankRoles moves the Discord rank role when both ranks have a
// configured role. Failures are logged, not reported.
func swapRankRoles(s *discordgo.Session, guildID, userID string, from, to model.Rank) {
	if from.RoleID != "" {
		if err := s.GuildMemberRoleRemove(guildID, userID, from.RoleID); err != nil {
			log.Printf("Error removing rank role %s from %s: %v", from.RoleID, userID, err)
		}
	}
	if to.RoleID != "" {
		if err := s.GuildMemberRoleAdd(guildID, userID, to.RoleID); err != nil {
			log.Printf("Error adding rank role %s to %s: %v", to.RoleID, userID, err)
		}
	}
}
