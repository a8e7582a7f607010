package warehouse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddItemMergesLines(t *testing.T) {
	cart := &Cart{UserID: "1"}

	require.NoError(t, cart.AddItem(CartItem{Category: CategoryWeapons, ItemName: "АК-74М", Quantity: 1}))
	require.NoError(t, cart.AddItem(CartItem{Category: CategoryWeapons, ItemName: "АК-74М", Quantity: 2}))
	require.NoError(t, cart.AddItem(CartItem{Category: CategoryMedical, ItemName: "Обезболивающее", Quantity: 5}))

	assert.Len(t, cart.Items, 2)
	assert.Equal(t, 3, cart.ItemQuantity(CategoryWeapons, "АК-74М"))
	assert.Equal(t, 8, cart.TotalItems())
	assert.Equal(t, 3, cart.CategoryTotal(CategoryWeapons))
	assert.Equal(t, 5, cart.CategoryTotal(CategoryMedical))
}

func TestCartAddItemRejectsNonPositiveQuantity(t *testing.T) {
	cart := &Cart{UserID: "1"}
	assert.Error(t, cart.AddItem(CartItem{Category: CategoryMisc, ItemName: "Патроны", Quantity: 0}))
	assert.Error(t, cart.AddItem(CartItem{Category: CategoryMisc, ItemName: "Патроны", Quantity: -1}))
	assert.True(t, cart.IsEmpty())
}

func TestCartRemoveItemByIndex(t *testing.T) {
	cart := &Cart{UserID: "1"}
	require.NoError(t, cart.AddItem(CartItem{Category: CategoryArmor, ItemName: "Средний бронежилет", Quantity: 1}))
	require.NoError(t, cart.AddItem(CartItem{Category: CategoryMedical, ItemName: "Алкотестер", Quantity: 1}))

	assert.False(t, cart.RemoveItemByIndex(-1))
	assert.False(t, cart.RemoveItemByIndex(2))
	assert.True(t, cart.RemoveItemByIndex(0))
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "Алкотестер", cart.Items[0].ItemName)
}

func TestCartSummary(t *testing.T) {
	cart := &Cart{UserID: "1"}
	assert.Equal(t, "Корзина пуста", cart.Summary())
	assert.Equal(t, "Корзина пуста", cart.FinalSummary())

	require.NoError(t, cart.AddItem(CartItem{Category: CategoryMisc, ItemName: "Материалы", Quantity: 10}))
	assert.Equal(t, "1. **Материалы** × 10", cart.Summary())
	assert.Equal(t, "**Материалы** × 10", cart.FinalSummary())
}

func TestCartRegistry(t *testing.T) {
	registry := NewCartRegistry()

	cart := registry.Cart("1")
	require.NoError(t, cart.AddItem(CartItem{Category: CategoryMisc, ItemName: "Прочее", Quantity: 1}))

	assert.Same(t, cart, registry.Cart("1"))
	assert.NotSame(t, cart, registry.Cart("2"))

	registry.ClearCart("1")
	assert.True(t, registry.Cart("1").IsEmpty())
}

func TestCartRegistrySweepStale(t *testing.T) {
	registry := NewCartRegistry()
	fresh := registry.Cart("fresh")
	stale := registry.Cart("stale")
	require.NoError(t, stale.AddItem(CartItem{Category: CategoryMisc, ItemName: "Патроны", Quantity: 1}))
	stale.CreatedAt = time.Now().Add(-staleCartAge - time.Minute)

	assert.Equal(t, 1, registry.SweepStale())
	assert.Same(t, fresh, registry.Cart("fresh"))
	assert.True(t, registry.Cart("stale").IsEmpty())
}
