package handlers

import (
	"log"
	"strings"

	"personnel-bot/bot"
	"personnel-bot/handlers/dismissal"
	"personnel-bot/handlers/leaverequest"
	"personnel-bot/handlers/personnel"
	warehousehandler "personnel-bot/handlers/warehouse"
	"personnel-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// Register wires all command, component and modal handlers onto the bot.
func Register(b *bot.Bot) {
	b.CommandHandlers = commandHandlers(b)
	addHandlers(b)
}

func requireModerator(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if i.Member == nil || !utils.IsModerator(i.Member.User.ID, i.Member.Roles, b.GetConfig()) {
		utils.SendErrorResponse(s, i, "У вас нет прав для использования этой команды.")
		return false
	}
	return true
}

func requireAdministrator(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if i.Member == nil || !utils.IsAdministrator(i.Member.User.ID, i.Member.Roles, b.GetConfig()) {
		utils.SendErrorResponse(s, i, "Эта команда доступна только администраторам.")
		return false
	}
	return true
}

func commandHandlers(b *bot.Bot) map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate){
		"hire": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			if !requireModerator(b, s, i) {
				return
			}
			personnel.HandleHireCommand(s, i, b)
		},
		"promote": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			if !requireModerator(b, s, i) {
				return
			}
			personnel.HandlePromoteCommand(s, i, b)
		},
		"demote": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			if !requireModerator(b, s, i) {
				return
			}
			personnel.HandleDemoteCommand(s, i, b)
		},
		"personnel-info": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			if !requireModerator(b, s, i) {
				return
			}
			personnel.HandleInfoCommand(s, i, b)
		},
		"blacklist-check": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			if !requireModerator(b, s, i) {
				return
			}
			personnel.HandleBlacklistCheckCommand(s, i, b)
		},
		"dismiss": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			dismissal.HandleDismissCommand(s, i, b)
		},
		"leave-request": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			leaverequest.HandleLeaveRequestCommand(s, i, b)
		},
		"leave-requests": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			if !requireModerator(b, s, i) {
				return
			}
			leaverequest.HandleListCommand(s, i, b)
		},
		"warehouse": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			warehousehandler.HandleWarehouseCommand(s, i, b)
		},
		"rank-role": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			if !requireAdministrator(b, s, i) {
				return
			}
			personnel.HandleRankRoleCommand(s, i, b)
		},
		"status": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			if !requireModerator(b, s, i) {
				return
			}
			SystemInfoHandler(s, i, b)
		},
		"reload-config": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			if !requireAdministrator(b, s, i) {
				return
			}
			if err := b.ReloadConfig(); err != nil {
				utils.SendErrorResponse(s, i, "Не удалось перечитать настройки.")
				return
			}
			utils.SendSimpleResponse(s, i, "✅ Настройки перечитаны.")
		},
	}
}

func addHandlers(b *bot.Bot) {
	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("Logged in as: %v#%v", s.State.User.Username, s.State.User.Discriminator)
	})
	b.Session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		handleInteractionCreate(s, i, b)
	})
}

func handleInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	// Every command is guild-only; DM interactions carry no member.
	if i.Member == nil || i.Member.User == nil {
		return
	}
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if h, ok := b.CommandHandlers[i.ApplicationCommandData().Name]; ok {
			h(s, i)
		}
	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		switch {
		case strings.HasPrefix(customID, "approve_dismissal:") || strings.HasPrefix(customID, "reject_dismissal:"):
			dismissal.HandleReviewComponent(s, i, b, customID)
		case strings.HasPrefix(customID, "leave_approve:") || strings.HasPrefix(customID, "leave_reject:") || strings.HasPrefix(customID, "leave_delete:"):
			leaverequest.HandleReviewComponent(s, i, b, customID)
		case strings.HasPrefix(customID, "wh_cat:"):
			warehousehandler.HandleCategoryButton(s, i, b, customID)
		case customID == "wh_submit" || customID == "wh_clear" || customID == "wh_remove":
			warehousehandler.HandleCartButton(s, i, b, customID)
		case strings.HasPrefix(customID, "wh_approve:") || strings.HasPrefix(customID, "wh_reject:"):
			warehousehandler.HandleReviewComponent(s, i, b, customID)
		}
	case discordgo.InteractionModalSubmit:
		customID := i.ModalSubmitData().CustomID
		switch {
		case customID == "dismiss_modal":
			dismissal.HandleModalSubmit(s, i, b)
		case strings.HasPrefix(customID, "dismiss_reject_modal:"):
			dismissal.HandleRejectModalSubmit(s, i, b, customID)
		case customID == "leave_request_modal":
			leaverequest.HandleModalSubmit(s, i, b)
		case strings.HasPrefix(customID, "leave_reject_modal:"):
			leaverequest.HandleRejectModalSubmit(s, i, b, customID)
		case strings.HasPrefix(customID, "wh_item_modal:"):
			warehousehandler.HandleItemModalSubmit(s, i, b, customID)
		case customID == "wh_remove_modal":
			warehousehandler.HandleRemoveModalSubmit(s, i, b)
		}
	}
}
