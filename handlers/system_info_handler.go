package handlers

import (
	"fmt"
	"runtime"
	"time"

	"personnel-bot/bot"
	"personnel-bot/utils"

	"github.com/bwmarrin/discordgo"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// SystemInfoHandler reports host metrics and bot counters.
func SystemInfoHandler(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	cpuCount, _ := cpu.Counts(true)
	cpuPercent, _ := cpu.Percent(0, false)
	vm, _ := mem.VirtualMemory()
	hostInfo, _ := host.Info()

	cpuUsage := 0.0
	if len(cpuPercent) > 0 {
		cpuUsage = cpuPercent[0]
	}

	var uptime string
	if hostInfo != nil {
		uptime = (time.Duration(hostInfo.Uptime) * time.Second).String()
	}

	cacheStats := b.Personnel.CacheStats()

	embed := &discordgo.MessageEmbed{
		Title: "Состояние системы",
		Color: 0x5865F2, // Discord Blurple
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "CPU",
				Value:  fmt.Sprintf("%d ядер, загрузка %.1f%%", cpuCount, cpuUsage),
				Inline: true,
			},
			{
				Name:   "Память",
				Value:  fmt.Sprintf("%.1f%% из %d МБ", vmUsedPercent(vm), vmTotalMB(vm)),
				Inline: true,
			},
			{
				Name:   "Аптайм хоста",
				Value:  uptime,
				Inline: true,
			},
			{
				Name:   "Горутины",
				Value:  fmt.Sprintf("%d", runtime.NumGoroutine()),
				Inline: true,
			},
			{
				Name:   "Серверы",
				Value:  fmt.Sprintf("%d", len(s.State.Guilds)),
				Inline: true,
			},
			{
				Name: "Кэш личного состава",
				Value: fmt.Sprintf("записей: %d, попаданий: %d, промахов: %d",
					cacheStats.Entries, cacheStats.Hits, cacheStats.Misses),
				Inline: true,
			},
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	utils.SendEmbedResponse(s, i, embed)
}

func vmUsedPercent(vm *mem.VirtualMemoryStat) float64 {
	if vm == nil {
		return 0
	}
	return vm.UsedPercent
}

func vmTotalMB(vm *mem.VirtualMemoryStat) uint64 {
	if vm == nil {
		return 0
	}
	return vm.Total / 1024 / 1024
}
