package warehouse

import (
	"fmt"
	"sync"
	"time"

	"personnel-bot/model"
)

// Warehouse category names.
const (
	CategoryWeapons = "Оружие"
	CategoryArmor   = "Бронежилеты"
	CategoryMedical = "Медикаменты"
	CategoryMisc    = "Другое"
)

// Category is one section of the warehouse catalog.
type Category struct {
	Name  string
	Emoji string
	Items []string
}

// Catalog lists the categories in display order.
var Catalog = []Category{
	{
		Name:  CategoryWeapons,
		Emoji: "🔫",
		Items: []string{
			"АК-74М", "Кольт М16", "Кольт 416 Канада", "ФН СКАР-Т",
			"Штейр АУГ-А3", "Таурус Бешеный бык", "САР М249",
			"Таурус Бешенный бык МК2", "Обрез", "Тип 97", "Сайга-12К",
		},
	},
	{
		Name:  CategoryArmor,
		Emoji: "🦺",
		Items: []string{"Средний бронежилет", "Тяжелый бронежилет"},
	},
	{
		Name:  CategoryMedical,
		Emoji: "💊",
		Items: []string{"Армейская аптечка", "Обезболивающее", "Дефибриллятор", "Алкотестер"},
	},
	{
		Name:  CategoryMisc,
		Emoji: "📦",
		Items: []string{"Материалы", "Патроны", "Бодикамеры", "Прочее"},
	},
}

// RestrictedWeapons may only be requested by positions cleared for them.
var RestrictedWeapons = []string{
	"Кольт М16", "Кольт 416 Канада", "ФН СКАР-Т",
	"Штейр АУГ-А3", "Таурус Бешеный бык",
}

// FindCategory returns the catalog entry by name.
func FindCategory(name string) (Category, bool) {
	for _, c := range Catalog {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// HasItem reports whether the item belongs to the category.
func (c Category) HasItem(itemName string) bool {
	for _, item := range c.Items {
		if item == itemName {
			return true
		}
	}
	return false
}

// IsRestrictedWeapon reports whether the item is on the restricted list.
func IsRestrictedWeapon(itemName string) bool {
	for _, weapon := range RestrictedWeapons {
		if weapon == itemName {
			return true
		}
	}
	return false
}

func categoryCap(limits model.CategoryLimits, category string) int {
	switch category {
	case CategoryWeapons:
		return limits.Weapons
	case CategoryArmor:
		return limits.Armor
	case CategoryMedical:
		return limits.Medical
	case CategoryMisc:
		return limits.Miscellaneous
	default:
		return 0
	}
}

// Manager applies requisition limits and cooldowns from the config.
// The config may be swapped at runtime by a reload; cooldown accounting
// survives the swap.
type Manager struct {
	mu          sync.Mutex
	cfg         model.WarehouseConfig
	lastRequest map[string]time.Time
}

// NewManager creates a manager for the given warehouse configuration.
func NewManager(cfg model.WarehouseConfig) *Manager {
	return &Manager{
		cfg:         cfg,
		lastRequest: make(map[string]time.Time),
	}
}

// UpdateConfig replaces the limit and cooldown rules in place, keeping
// active cooldowns.
func (m *Manager) UpdateConfig(cfg model.WarehouseConfig) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cfg = cfg
}

func (m *Manager) config() model.WarehouseConfig {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cfg
}

// limitsFor picks the applicable per-category caps for a requester, by
// position or by rank depending on the configured mode. Nil means no
// limits apply.
func limitsFor(cfg model.WarehouseConfig, position, rank string) *model.CategoryLimits {
	if cfg.PositionsEnabled {
		if limits, ok := cfg.PositionLimits[position]; ok {
			return &limits
		}
	}
	if cfg.RanksEnabled {
		if limits, ok := cfg.RankLimits[rank]; ok {
			return &limits
		}
	}
	return nil
}

// CheckLimit verifies that adding quantity of an item keeps the cart's
// category total within the requester's cap.
func (m *Manager) CheckLimit(cart *Cart, category, itemName string, quantity int, position, rank string) error {
	if quantity <= 0 {
		return fmt.Errorf("количество должно быть положительным")
	}

	limits := limitsFor(m.config(), position, rank)
	if limits == nil {
		return nil
	}

	limit := categoryCap(*limits, category)
	if limit <= 0 {
		return nil
	}

	if cart.CategoryTotal(category)+quantity > limit {
		return fmt.Errorf("лимит категории «%s» для вас — %d шт.", category, limit)
	}
	return nil
}

// CooldownRemaining reports how long the user must wait before the next
// request, or zero when allowed. canBypass skips the check entirely
// (moderators and administrators).
func (m *Manager) CooldownRemaining(userID string, canBypass bool) time.Duration {
	if canBypass {
		return 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cfg.CooldownHours <= 0 {
		return 0
	}
	last, ok := m.lastRequest[userID]
	if !ok {
		return 0
	}
	cooldown := time.Duration(m.cfg.CooldownHours) * time.Hour
	elapsed := time.Since(last)
	if elapsed >= cooldown {
		return 0
	}
	return cooldown - elapsed
}

// MarkRequested records a submitted request for cooldown accounting.
func (m *Manager) MarkRequested(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastRequest[userID] = time.Now()
}

// ClearCooldown lifts the user's cooldown, used when a request is
// rejected so a corrected one can be submitted immediately.
func (m *Manager) ClearCooldown(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.lastRequest, userID)
}

// SweepCooldowns drops expired cooldown entries.
func (m *Manager) SweepCooldowns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	cooldown := time.Duration(m.cfg.CooldownHours) * time.Hour
	for userID, last := range m.lastRequest {
		if time.Since(last) > cooldown {
			delete(m.lastRequest, userID)
		}
	}
}
