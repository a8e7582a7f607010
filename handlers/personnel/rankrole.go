package personnel

import (
	"fmt"
	"log"

	"personnel-bot/bot"
	"personnel-bot/utils"
	"personnel-bot/utils/database/registry"

	"github.com/bwmarrin/discordgo"
)

// HandleRankRoleCommand binds a Discord role to a ladder rank so
// promotions and demotions can swap the member's roles.
func HandleRankRoleCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	opts := optionMap(i)
	rankName := opts["rank"].StringValue()
	role := opts["role"].RoleValue(s, i.GuildID)

	rank, ok := b.Ranks().Lookup(rankName)
	if !ok {
		utils.SendErrorResponse(s, i,
			fmt.Sprintf("Звание «%s» не найдено в реестре званий.", rankName))
		return
	}

	rank.RoleID = role.ID
	if err := registry.UpsertRank(b.DB, rank); err != nil {
		log.Printf("Error binding role %s to rank %s: %v", role.ID, rank.Name, err)
		utils.SendErrorResponse(s, i, "Не удалось сохранить привязку роли.")
		return
	}

	idx, err := registry.LoadRankIndex(b.DB)
	if err != nil {
		log.Printf("Error reloading rank index: %v", err)
		utils.SendErrorResponse(s, i, "Привязка сохранена, но реестр не перечитан.")
		return
	}
	b.SetRanks(idx)

	utils.SendSimpleResponse(s, i,
		fmt.Sprintf("✅ Роль <@&%s> привязана к званию «%s».", role.ID, rank.Name))
}
