package registry

import (
	"fmt"
	"sync"
	"time"

	"personnel-bot/model"

	"github.com/jmoiron/sqlx"
)

// Audit action names. The IDs mirror the actions table.
const (
	ActionPromotion      = "Повышен в звании"
	ActionDemotion       = "Разжалован в звании"
	ActionDismissal      = "Уволен со службы"
	ActionRestoration    = "Восстановлен в звании"
	ActionPositionAssign = "Назначение на должность"
	ActionPositionStrip  = "Разжалование с должности"
	ActionDeptAccept     = "Принят в подразделение"
	ActionDeptTransfer   = "Переведён в подразделение"
	ActionNameChange     = "Внесение изменений в Имя или Фамилию"
	ActionHiring         = "Принят на службу"
)

var defaultActions = []model.AuditAction{
	{ID: 1, Name: ActionPromotion},
	{ID: 2, Name: ActionDemotion},
	{ID: 3, Name: ActionDismissal},
	{ID: 4, Name: ActionRestoration},
	{ID: 5, Name: ActionPositionAssign},
	{ID: 6, Name: ActionPositionStrip},
	{ID: 7, Name: ActionDeptAccept},
	{ID: 8, Name: ActionDeptTransfer},
	{ID: 9, Name: ActionNameChange},
	{ID: 10, Name: ActionHiring},
}

func seedActions(db *sqlx.DB) error {
	var count int
	if err := db.Get(&count, "SELECT COUNT(*) FROM actions"); err != nil {
		return fmt.Errorf("failed to count actions: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, a := range defaultActions {
		if _, err := db.NamedExec(`INSERT INTO actions (id, name) VALUES (:id, :name)`, a); err != nil {
			return fmt.Errorf("failed to seed action %q: %w", a.Name, err)
		}
	}
	return nil
}

const actionCacheTTL = 5 * time.Minute

// ActionCatalog validates audit action names against the actions table,
// caching the table for five minutes.
type ActionCatalog struct {
	db *sqlx.DB

	mu       sync.Mutex
	actions  map[string]int
	loadedAt time.Time
}

// NewActionCatalog creates a catalog backed by the registry database.
func NewActionCatalog(db *sqlx.DB) *ActionCatalog {
	return &ActionCatalog{db: db}
}

func (c *ActionCatalog) load() (map[string]int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.actions != nil && time.Since(c.loadedAt) < actionCacheTTL {
		return c.actions, nil
	}

	var rows []model.AuditAction
	if err := c.db.Select(&rows, "SELECT id, name FROM actions ORDER BY id"); err != nil {
		return nil, fmt.Errorf("failed to load actions: %w", err)
	}

	actions := make(map[string]int, len(rows))
	for _, a := range rows {
		actions[a.Name] = a.ID
	}
	c.actions = actions
	c.loadedAt = time.Now()
	return actions, nil
}

// Validate checks that the action name exists in the catalog and returns it.
func (c *ActionCatalog) Validate(name string) (string, error) {
	actions, err := c.load()
	if err != nil {
		return "", err
	}
	if _, ok := actions[name]; !ok {
		return "", fmt.Errorf("action %q not found in registry", name)
	}
	return name, nil
}

// Names returns all known action names.
func (c *ActionCatalog) Names() ([]string, error) {
	actions, err := c.load()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(actions))
	for name := range actions {
		names = append(names, name)
	}
	return names, nil
}
