package warehouse

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"personnel-bot/bot"
	"personnel-bot/sheets"
	"personnel-bot/utils"
	"personnel-bot/warehouse"

	"github.com/bwmarrin/discordgo"
)

// HandleCategoryButton opens the item modal for the pressed category.
func HandleCategoryButton(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, customID string) {
	categoryName := strings.TrimPrefix(customID, "wh_cat:")
	category, ok := warehouse.FindCategory(categoryName)
	if !ok {
		utils.SendErrorResponse(s, i, "Неизвестная категория склада.")
		return
	}

	placeholder := strings.Join(category.Items, ", ")
	if len(placeholder) > 100 {
		placeholder = placeholder[:97] + "..."
	}
	components := []discordgo.MessageComponent{
		utils.TextInputRow(discordgo.TextInput{
			CustomID:    "item",
			Label:       "Название предмета",
			Style:       discordgo.TextInputShort,
			Placeholder: placeholder,
			Required:    true,
			MaxLength:   64,
		}),
		utils.TextInputRow(discordgo.TextInput{
			CustomID:    "quantity",
			Label:       "Количество",
			Style:       discordgo.TextInputShort,
			Placeholder: "1",
			Required:    true,
			MaxLength:   4,
		}),
	}
	title := fmt.Sprintf("%s %s", category.Emoji, category.Name)
	if err := utils.ShowModal(s, i, "wh_item_modal:"+category.Name, title, components); err != nil {
		log.Printf("Error showing warehouse item modal: %v", err)
	}
}

// HandleItemModalSubmit validates the item and adds it to the cart.
func HandleItemModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, customID string) {
	categoryName := strings.TrimPrefix(customID, "wh_item_modal:")
	category, ok := warehouse.FindCategory(categoryName)
	if !ok {
		utils.SendErrorResponse(s, i, "Неизвестная категория склада.")
		return
	}

	data := i.ModalSubmitData()
	itemName := utils.ModalInputValue(data, "item")
	quantity, err := strconv.Atoi(utils.ModalInputValue(data, "quantity"))
	if err != nil || quantity <= 0 {
		utils.SendErrorResponse(s, i, "Количество должно быть положительным числом.")
		return
	}

	if !category.HasItem(itemName) {
		utils.SendErrorResponse(s, i,
			fmt.Sprintf("Предмета «%s» нет в категории «%s».", itemName, category.Name))
		return
	}

	userID := i.Member.User.ID
	record, err := b.Personnel.Get(context.Background(), userID)
	if errors.Is(err, sheets.ErrNotFound) {
		utils.SendErrorResponse(s, i, "Вы не числитесь в кадровой таблице.")
		return
	}
	if err != nil {
		log.Printf("Error reading personnel record for %s: %v", userID, err)
		utils.SendErrorResponse(s, i, "Не удалось прочитать кадровую таблицу.")
		return
	}

	if warehouse.IsRestrictedWeapon(itemName) && !hasRestrictedAccess(b, record.Position) {
		utils.SendErrorResponse(s, i,
			fmt.Sprintf("«%s» доступен только по должностному допуску.", itemName))
		return
	}

	cart := b.Carts.Cart(userID)
	if err := b.Warehouse.CheckLimit(cart, category.Name, itemName, quantity, record.Position, record.Rank); err != nil {
		utils.SendErrorResponse(s, i, err.Error())
		return
	}

	item := warehouse.CartItem{
		Category:   category.Name,
		ItemName:   itemName,
		Quantity:   quantity,
		UserName:   record.FullName(),
		UserStatic: record.Static,
		Position:   record.Position,
		Rank:       record.Rank,
	}
	if err := cart.AddItem(item); err != nil {
		utils.SendErrorResponse(s, i, "Количество должно быть положительным числом.")
		return
	}

	utils.SendSimpleResponse(s, i,
		fmt.Sprintf("✅ Добавлено: **%s** × %d (в корзине %d).\n\n**Корзина:**\n%s",
			itemName, quantity, cart.ItemQuantity(category.Name, itemName), cart.Summary()))
}

// hasRestrictedAccess checks the requester's position against the
// configured position limits: a position with its own weapon cap is
// cleared for restricted weapons.
func hasRestrictedAccess(b *bot.Bot, position string) bool {
	if position == "" {
		return false
	}
	limits, ok := b.GetConfig().Warehouse.PositionLimits[position]
	return ok && limits.Weapons > 0
}

// HandleCartButton resolves the submit, remove and clear buttons.
func HandleCartButton(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, customID string) {
	userID := i.Member.User.ID
	cart := b.Carts.Cart(userID)

	switch customID {
	case "wh_clear":
		b.Carts.ClearCart(userID)
		refreshMenu(s, i, b.Carts.Cart(userID))
	case "wh_remove":
		if cart.IsEmpty() {
			utils.SendErrorResponse(s, i, "Корзина пуста.")
			return
		}
		components := []discordgo.MessageComponent{
			utils.TextInputRow(discordgo.TextInput{
				CustomID:    "index",
				Label:       "Номер позиции из корзины",
				Style:       discordgo.TextInputShort,
				Placeholder: "1",
				Required:    true,
				MaxLength:   3,
			}),
		}
		if err := utils.ShowModal(s, i, "wh_remove_modal", "Убрать позицию", components); err != nil {
			log.Printf("Error showing warehouse remove modal: %v", err)
		}
	case "wh_submit":
		submitCart(s, i, b, cart)
	}
}

// HandleRemoveModalSubmit drops the requested cart line.
func HandleRemoveModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	userID := i.Member.User.ID
	cart := b.Carts.Cart(userID)

	index, err := strconv.Atoi(utils.ModalInputValue(i.ModalSubmitData(), "index"))
	if err != nil || !cart.RemoveItemByIndex(index-1) {
		utils.SendErrorResponse(s, i, "Нет позиции с таким номером.")
		return
	}
	utils.SendSimpleResponse(s, i, "✅ Позиция убрана.\n\n**Корзина:**\n"+cart.Summary())
}

// pingContent builds the role mentions for the requester's departments.
func pingContent(cfg map[string][]string, memberRoles []string) string {
	var mentions []string
	seen := make(map[string]bool)
	for _, roleID := range memberRoles {
		for _, pingRole := range cfg[roleID] {
			if !seen[pingRole] {
				seen[pingRole] = true
				mentions = append(mentions, "<@&"+pingRole+">")
			}
		}
	}
	return strings.Join(mentions, " ")
}

// submitCart posts the requisition for review and starts the cooldown.
// The cooldown is re-checked here: the ephemeral menu stays usable after
// a submit, so the menu-open check alone is not enough.
func submitCart(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, cart *warehouse.Cart) {
	if cart.IsEmpty() {
		utils.SendErrorResponse(s, i, "Корзина пуста.")
		return
	}

	cfg := b.GetConfig()
	userID := i.Member.User.ID

	canBypass := utils.IsModerator(userID, i.Member.Roles, cfg)
	if remaining := b.Warehouse.CooldownRemaining(userID, canBypass); remaining > 0 {
		utils.SendErrorResponse(s, i,
			fmt.Sprintf("Следующий запрос на склад будет доступен через %s.", formatCooldown(remaining)))
		return
	}

	requester := "—"
	position := "—"
	if len(cart.Items) > 0 {
		first := cart.Items[0]
		requester = fmt.Sprintf("%s | %s", first.UserName, first.UserStatic)
		if first.Position != "" {
			position = first.Position
		} else if first.Rank != "" {
			position = first.Rank
		}
	}

	embed := &discordgo.MessageEmbed{
		Title: "📦 Запрос на склад",
		Color: 0xFEE75C,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Боец", Value: requester, Inline: true},
			{Name: "Должность", Value: position, Inline: true},
			{Name: "Discord", Value: fmt.Sprintf("<@%s>", userID), Inline: true},
			{Name: "Позиции", Value: cart.FinalSummary()},
		},
		Timestamp: utils.MoscowTime().Format("2006-01-02T15:04:05Z07:00"),
	}
	buttons := discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Выдать",
				Style:    discordgo.SuccessButton,
				CustomID: "wh_approve:" + userID,
			},
			discordgo.Button{
				Label:    "Отказать",
				Style:    discordgo.DangerButton,
				CustomID: "wh_reject:" + userID,
			},
		},
	}
	_, err := s.ChannelMessageSendComplex(cfg.Channels.WarehouseRequest, &discordgo.MessageSend{
		Content:    pingContent(cfg.PingSettings, i.Member.Roles),
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{buttons},
	})
	if err != nil {
		log.Printf("Error posting warehouse request for %s: %v", userID, err)
		utils.SendErrorResponse(s, i, "Не удалось отправить запрос на склад.")
		return
	}

	b.Warehouse.MarkRequested(userID)
	b.Carts.ClearCart(userID)
	utils.LogInfo(cfg.LogWebhookURL, "warehouse", "submit",
		fmt.Sprintf("%s отправил запрос на склад (%d поз.)", requester, cart.TotalItems()))
	utils.SendSimpleResponse(s, i, "✅ Запрос на склад отправлен на рассмотрение.")
}
