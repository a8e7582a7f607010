package bot

import (
	"context"
	"log"
	"sync/atomic"

	"personnel-bot/config"
	"personnel-bot/leave"
	"personnel-bot/model"
	"personnel-bot/sheets"
	"personnel-bot/utils/database/registry"
	"personnel-bot/warehouse"

	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"
)

// Bot wires the Discord session to the spreadsheet stores and the
// in-memory state shared by handlers.
type Bot struct {
	Session            *discordgo.Session
	RegisteredCommands []*discordgo.ApplicationCommand
	CommandHandlers    map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate)

	config atomic.Value // *model.Config

	DB        *sqlx.DB
	rankIndex atomic.Pointer[registry.RankIndex]

	Personnel  *sheets.PersonnelStore
	Audit      *sheets.AuditLog
	Blacklist  *sheets.Blacklist
	Moderators *sheets.ModeratorRegistry

	Leave          *leave.Storage
	LeaveValidator *leave.Validator

	Carts     *warehouse.CartRegistry
	Warehouse *warehouse.Manager

	scheduler *Scheduler
}

// GetConfig returns the current configuration snapshot.
func (b *Bot) GetConfig() *model.Config {
	return b.config.Load().(*model.Config)
}

// GetSession returns the Discord session.
func (b *Bot) GetSession() *discordgo.Session {
	return b.Session
}

// Ranks returns the current rank ladder index.
func (b *Bot) Ranks() *registry.RankIndex {
	return b.rankIndex.Load()
}

// SetRanks publishes a rebuilt rank ladder index.
func (b *Bot) SetRanks(idx *registry.RankIndex) {
	b.rankIndex.Store(idx)
}

// New builds the bot: Discord session, Sheets stores, the registry
// database, and the in-memory warehouse and leave state.
func New(ctx context.Context, cfg *model.Config, db *sqlx.DB) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, err
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers
	dg.StateEnabled = true

	client, err := sheets.NewClient(ctx, cfg.Sheets.CredentialsPath, cfg.Sheets.SpreadsheetID)
	if err != nil {
		return nil, err
	}

	rankIndex, err := registry.LoadRankIndex(db)
	if err != nil {
		return nil, err
	}
	catalog := registry.NewActionCatalog(db)
	actions, err := catalog.Names()
	if err != nil {
		return nil, err
	}
	log.Printf("Registry loaded: %d ranks, %d audit actions", len(rankIndex.Ranks()), len(actions))

	b := &Bot{
		Session:        dg,
		DB:             db,
		Personnel:      sheets.NewPersonnelStore(client, cfg.Sheets.PersonnelSheet),
		Audit:          sheets.NewAuditLog(client, cfg.Sheets.AuditSheet, catalog),
		Blacklist:      sheets.NewBlacklist(client, cfg.Sheets.BlacklistSheet),
		Moderators:     sheets.NewModeratorRegistry(client, cfg.Sheets.ModeratorsSheet),
		Leave:          leave.NewStorage("data/leave_requests.json"),
		LeaveValidator: leave.NewValidator(cfg.Leave),
		Carts:          warehouse.NewCartRegistry(),
		Warehouse:      warehouse.NewManager(cfg.Warehouse),
	}
	b.rankIndex.Store(rankIndex)
	b.config.Store(cfg)
	b.scheduler = NewScheduler(b)
	return b, nil
}

// Close shuts the bot down gracefully.
func (b *Bot) Close() {
	log.Println("Gracefully shutting down.")
	if b.scheduler != nil {
		b.scheduler.Stop()
	}
	b.Session.Close()
}

// RefreshCommands re-registers the guild's slash commands.
func (b *Bot) RefreshCommands(commands []*discordgo.ApplicationCommand) {
	cfg := b.GetConfig()
	log.Printf("Registering %d commands for guild %s...", len(commands), cfg.GuildID)
	registered, err := b.Session.ApplicationCommandBulkOverwrite(cfg.AppID, cfg.GuildID, commands)
	if err != nil {
		log.Printf("cannot update commands for guild '%s': %v", cfg.GuildID, err)
		return
	}
	b.RegisteredCommands = registered
}

// ReloadConfig re-reads the settings file and swaps the configuration
// atomically. The validator and warehouse manager pick up the new rules
// in place, so active warehouse cooldowns survive the reload.
func (b *Bot) ReloadConfig() error {
	log.Println("Reloading configuration...")
	newCfg, err := config.Load()
	if err != nil {
		log.Printf("Error reloading config: %v", err)
		return err
	}

	b.config.Store(newCfg)
	b.LeaveValidator.Update(newCfg.Leave)
	b.Warehouse.UpdateConfig(newCfg.Warehouse)
	log.Println("Configuration reloaded successfully.")
	return nil
}
