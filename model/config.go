package model

// IDList holds explicit user IDs and role IDs granted a permission level.
type IDList struct {
	Users []string `mapstructure:"users"`
	Roles []string `mapstructure:"roles"`
}

// ChannelConfig maps every feature surface to its Discord channel.
type ChannelConfig struct {
	Dismissal           string `mapstructure:"dismissal"`
	Audit               string `mapstructure:"audit"`
	Blacklist           string `mapstructure:"blacklist"`
	LeaveRequests       string `mapstructure:"leave_requests"`
	WarehouseRequest    string `mapstructure:"warehouse_request"`
	WarehouseAudit      string `mapstructure:"warehouse_audit"`
	WarehouseSubmission string `mapstructure:"warehouse_submission"`
}

// CategoryLimits caps how many items of each warehouse category a single
// request may carry. Zero means no cap for that category.
type CategoryLimits struct {
	Weapons       int `mapstructure:"weapons"`
	Armor         int `mapstructure:"armor"`
	Medical       int `mapstructure:"medical"`
	Miscellaneous int `mapstructure:"misc"`
}

// WarehouseConfig controls requisition limits and cooldowns.
type WarehouseConfig struct {
	CooldownHours    int                       `mapstructure:"cooldown_hours"`
	PositionsEnabled bool                      `mapstructure:"positions_enabled"`
	RanksEnabled     bool                      `mapstructure:"ranks_enabled"`
	PositionLimits   map[string]CategoryLimits `mapstructure:"position_limits"`
	RankLimits       map[string]CategoryLimits `mapstructure:"rank_limits"`
}

// LeaveConfig holds the daily leave-request window rules.
type LeaveConfig struct {
	WorkStart          string `mapstructure:"work_start"`
	WorkEnd            string `mapstructure:"work_end"`
	MaxDurationMinutes int    `mapstructure:"max_duration_minutes"`
}

// SheetsConfig identifies the backing spreadsheet and its worksheets.
type SheetsConfig struct {
	SpreadsheetID   string `mapstructure:"spreadsheet_id"`
	PersonnelSheet  string `mapstructure:"personnel_sheet"`
	AuditSheet      string `mapstructure:"audit_sheet"`
	BlacklistSheet  string `mapstructure:"blacklist_sheet"`
	ModeratorsSheet string `mapstructure:"moderators_sheet"`
	CredentialsPath string `mapstructure:"credentials_path"`
}

// Config is the full application configuration, assembled from the
// environment and the settings file.
type Config struct {
	BotToken      string
	AppID         string
	LogWebhookURL string

	GuildID        string          `mapstructure:"guild_id"`
	Channels       ChannelConfig   `mapstructure:"channels"`
	Moderators     IDList          `mapstructure:"moderators"`
	Administrators IDList          `mapstructure:"administrators"`
	Warehouse      WarehouseConfig `mapstructure:"warehouse"`
	Leave          LeaveConfig     `mapstructure:"leave"`
	Sheets         SheetsConfig    `mapstructure:"sheets"`
	RegistryDBPath string          `mapstructure:"registry_db_path"`

	// PingSettings maps department role IDs to the role IDs pinged when
	// that department's requests need review.
	PingSettings map[string][]string `mapstructure:"ping_settings"`
}
