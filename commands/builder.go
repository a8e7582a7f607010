package commands

import (
	"github.com/bwmarrin/discordgo"
)

// GenerateCommands builds the guild's slash-command set.
func GenerateCommands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "hire",
			Description: "Принять бойца на службу.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "Принимаемый пользователь.",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "Имя Фамилия.",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "static",
					Description: "Статик (5-6 цифр).",
					Required:    true,
				},
			},
		},
		{
			Name:        "promote",
			Description: "Повысить бойца в звании.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "Повышаемый боец.",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "reason",
					Description: "Основание повышения.",
					Required:    false,
				},
			},
		},
		{
			Name:        "demote",
			Description: "Понизить бойца в звании.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "Понижаемый боец.",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "reason",
					Description: "Основание понижения.",
					Required:    false,
				},
			},
		},
		{
			Name:        "dismiss",
			Description: "Подать рапорт на увольнение.",
		},
		{
			Name:        "leave-request",
			Description: "Подать запрос на отгул.",
		},
		{
			Name:        "leave-requests",
			Description: "Список запросов на отгул за сегодня.",
		},
		{
			Name:        "warehouse",
			Description: "Открыть складское меню.",
		},
		{
			Name:        "personnel-info",
			Description: "Кадровая справка по бойцу.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "Боец.",
					Required:    true,
				},
			},
		},
		{
			Name:        "blacklist-check",
			Description: "Проверить статик по чёрному списку.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "static",
					Description: "Статик (5-6 цифр).",
					Required:    true,
				},
			},
		},
		{
			Name:        "rank-role",
			Description: "Привязать роль Discord к званию.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "rank",
					Description: "Звание из реестра.",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionRole,
					Name:        "role",
					Description: "Роль на сервере.",
					Required:    true,
				},
			},
		},
		{
			Name:        "status",
			Description: "Состояние бота и хост-системы.",
		},
		{
			Name:        "reload-config",
			Description: "Перечитать файл настроек.",
		},
	}
}
