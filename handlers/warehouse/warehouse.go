package warehouse

import (
	"fmt"
	"log"
	"time"

	"personnel-bot/bot"
	"personnel-bot/utils"
	"personnel-bot/warehouse"

	"github.com/bwmarrin/discordgo"
)

func formatCooldown(d time.Duration) string {
	d = d.Round(time.Minute)
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	if hours > 0 {
		return fmt.Sprintf("%d ч %d мин", hours, minutes)
	}
	return fmt.Sprintf("%d мин", minutes)
}

func menuComponents() []discordgo.MessageComponent {
	categoryRow := discordgo.ActionsRow{}
	for _, category := range warehouse.Catalog {
		categoryRow.Components = append(categoryRow.Components, discordgo.Button{
			Label:    category.Name,
			Emoji:    &discordgo.ComponentEmoji{Name: category.Emoji},
			Style:    discordgo.PrimaryButton,
			CustomID: "wh_cat:" + category.Name,
		})
	}
	controlRow := discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Отправить запрос",
				Style:    discordgo.SuccessButton,
				CustomID: "wh_submit",
			},
			discordgo.Button{
				Label:    "Убрать позицию",
				Style:    discordgo.SecondaryButton,
				CustomID: "wh_remove",
			},
			discordgo.Button{
				Label:    "Очистить корзину",
				Style:    discordgo.DangerButton,
				CustomID: "wh_clear",
			},
		},
	}
	return []discordgo.MessageComponent{categoryRow, controlRow}
}

func menuEmbed(cart *warehouse.Cart) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "📦 Складское меню",
		Color:       0x5865F2,
		Description: "Выберите категорию, чтобы добавить предметы в корзину.",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Корзина", Value: cart.Summary()},
		},
	}
}

// HandleWarehouseCommand opens the requisition menu. Moderators bypass
// the cooldown.
func HandleWarehouseCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	cfg := b.GetConfig()
	userID := i.Member.User.ID
	canBypass := utils.IsModerator(userID, i.Member.Roles, cfg)

	if remaining := b.Warehouse.CooldownRemaining(userID, canBypass); remaining > 0 {
		utils.SendErrorResponse(s, i,
			fmt.Sprintf("Следующий запрос на склад будет доступен через %s.", formatCooldown(remaining)))
		return
	}

	cart := b.Carts.Cart(userID)
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{menuEmbed(cart)},
			Components: menuComponents(),
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Error showing warehouse menu: %v", err)
	}
}

// refreshMenu updates the ephemeral menu message in place.
func refreshMenu(s *discordgo.Session, i *discordgo.InteractionCreate, cart *warehouse.Cart) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{menuEmbed(cart)},
			Components: menuComponents(),
		},
	})
	if err != nil {
		log.Printf("Error updating warehouse menu: %v", err)
	}
}
