package warehouse

import (
	"testing"
	"time"

	"personnel-bot/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCategory(t *testing.T) {
	category, ok := FindCategory(CategoryWeapons)
	require.True(t, ok)
	assert.True(t, category.HasItem("АК-74М"))
	assert.False(t, category.HasItem("Лопата"))

	_, ok = FindCategory("Еда")
	assert.False(t, ok)
}

func TestIsRestrictedWeapon(t *testing.T) {
	assert.True(t, IsRestrictedWeapon("Кольт М16"))
	assert.False(t, IsRestrictedWeapon("АК-74М"))
	assert.False(t, IsRestrictedWeapon("Обезболивающее"))
}

func limitsConfig() model.WarehouseConfig {
	return model.WarehouseConfig{
		CooldownHours:    6,
		PositionsEnabled: true,
		RanksEnabled:     true,
		PositionLimits: map[string]model.CategoryLimits{
			"Штурмовик": {Weapons: 2, Armor: 1, Medical: 5, Miscellaneous: 0},
		},
		RankLimits: map[string]model.CategoryLimits{
			"Рядовой": {Weapons: 1, Armor: 1, Medical: 3, Miscellaneous: 10},
		},
	}
}

func TestCheckLimitByPosition(t *testing.T) {
	m := NewManager(limitsConfig())
	cart := &Cart{UserID: "1"}

	require.NoError(t, m.CheckLimit(cart, CategoryWeapons, "АК-74М", 2, "Штурмовик", "Рядовой"))
	require.NoError(t, cart.AddItem(CartItem{Category: CategoryWeapons, ItemName: "АК-74М", Quantity: 2}))

	err := m.CheckLimit(cart, CategoryWeapons, "Обрез", 1, "Штурмовик", "Рядовой")
	assert.Error(t, err)
}

func TestCheckLimitFallsBackToRank(t *testing.T) {
	m := NewManager(limitsConfig())
	cart := &Cart{UserID: "1"}

	// Position unknown, the rank cap of 1 weapon applies.
	require.NoError(t, m.CheckLimit(cart, CategoryWeapons, "АК-74М", 1, "Неизвестная", "Рядовой"))
	assert.Error(t, m.CheckLimit(cart, CategoryWeapons, "АК-74М", 2, "Неизвестная", "Рядовой"))
}

func TestCheckLimitZeroCapMeansUnlimited(t *testing.T) {
	m := NewManager(limitsConfig())
	cart := &Cart{UserID: "1"}
	require.NoError(t, m.CheckLimit(cart, CategoryMisc, "Патроны", 999, "Штурмовик", ""))
}

func TestCheckLimitNoRulesForRequester(t *testing.T) {
	m := NewManager(limitsConfig())
	cart := &Cart{UserID: "1"}
	require.NoError(t, m.CheckLimit(cart, CategoryWeapons, "АК-74М", 50, "Посторонний", "Генерал Армии"))
}

func TestCheckLimitRejectsNonPositiveQuantity(t *testing.T) {
	m := NewManager(limitsConfig())
	cart := &Cart{UserID: "1"}
	assert.Error(t, m.CheckLimit(cart, CategoryWeapons, "АК-74М", 0, "", ""))
}

func TestCooldown(t *testing.T) {
	m := NewManager(limitsConfig())

	assert.Zero(t, m.CooldownRemaining("1", false))

	m.MarkRequested("1")
	remaining := m.CooldownRemaining("1", false)
	assert.Greater(t, remaining, 5*time.Hour)
	assert.Zero(t, m.CooldownRemaining("1", true))

	m.ClearCooldown("1")
	assert.Zero(t, m.CooldownRemaining("1", false))
}

func TestCooldownBlocksImmediateResubmit(t *testing.T) {
	m := NewManager(limitsConfig())

	// First submission goes through and starts the cooldown.
	assert.Zero(t, m.CooldownRemaining("1", false))
	m.MarkRequested("1")

	// Re-submitting right away must be blocked, even though the menu
	// that was opened before the first submit is still on screen.
	assert.Positive(t, m.CooldownRemaining("1", false))
	assert.Zero(t, m.CooldownRemaining("1", true))
}

func TestUpdateConfigKeepsCooldowns(t *testing.T) {
	m := NewManager(limitsConfig())
	m.MarkRequested("1")

	cfg := limitsConfig()
	cfg.PositionLimits["Штурмовик"] = model.CategoryLimits{Weapons: 1}
	m.UpdateConfig(cfg)

	// The reload must not reset active cooldowns.
	assert.Positive(t, m.CooldownRemaining("1", false))

	// And the new limits apply immediately.
	cart := &Cart{UserID: "1"}
	err := m.CheckLimit(cart, CategoryWeapons, "АК-74М", 2, "Штурмовик", "Рядовой")
	assert.Error(t, err)
}

func TestCooldownDisabled(t *testing.T) {
	cfg := limitsConfig()
	cfg.CooldownHours = 0
	m := NewManager(cfg)

	m.MarkRequested("1")
	assert.Zero(t, m.CooldownRemaining("1", false))
}

func TestSweepCooldowns(t *testing.T) {
	m := NewManager(limitsConfig())
	m.MarkRequested("1")
	m.lastRequest["2"] = time.Now().Add(-7 * time.Hour)

	m.SweepCooldowns()

	assert.NotZero(t, m.CooldownRemaining("1", false))
	assert.Zero(t, m.CooldownRemaining("2", false))
}
