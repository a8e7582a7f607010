package bot

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"personnel-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// Run opens the gateway connection, registers commands, starts the
// scheduler and blocks until the process is signalled.
func (b *Bot) Run(commands []*discordgo.ApplicationCommand) {
	err := b.Session.Open()
	if err != nil {
		log.Fatalf("Error opening connection: %v", err)
	}

	b.RefreshCommands(commands)

	b.scheduler.Start()

	fmt.Println("Bot is now running. Press CTRL-C to exit.")
	if err := utils.LogInfo(b.GetConfig().LogWebhookURL, "System", "Startup", "Bot has started successfully."); err != nil {
		log.Printf("Failed to send startup log: %v", err)
	}

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc
}
