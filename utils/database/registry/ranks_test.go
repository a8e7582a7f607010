package registry

import (
	"path/filepath"
	"testing"

	"personnel-bot/model"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := Init(filepath.Join(t.TempDir(), "registry.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestInitSeedsLadder(t *testing.T) {
	db := testDB(t)

	ranks, err := LoadRanks(db)
	require.NoError(t, err)
	require.Len(t, ranks, 19)
	assert.Equal(t, "Генерал Армии", ranks[0].Name)
	assert.Equal(t, 1, ranks[0].Level)
	assert.Equal(t, "Рядовой", ranks[18].Name)
	assert.Equal(t, 19, ranks[18].Level)
}

func TestInitSeedIsIdempotent(t *testing.T) {
	db := testDB(t)

	require.NoError(t, seedRanks(db))
	ranks, err := LoadRanks(db)
	require.NoError(t, err)
	assert.Len(t, ranks, 19)
}

func TestUpsertRank(t *testing.T) {
	db := testDB(t)

	require.NoError(t, UpsertRank(db, model.Rank{Name: "Рядовой", RoleID: "role-19", Level: 19}))

	idx, err := LoadRankIndex(db)
	require.NoError(t, err)
	rank, ok := idx.Lookup("Рядовой")
	require.True(t, ok)
	assert.Equal(t, "role-19", rank.RoleID)
}

func TestRankIndexLookup(t *testing.T) {
	idx := NewRankIndex(defaultRanks)

	rank, ok := idx.Lookup("Сержант")
	require.True(t, ok)
	assert.Equal(t, 16, rank.Level)

	// Abbreviated role names resolve to canonical ranks.
	rank, ok = idx.Lookup("Мл. Сержант")
	require.True(t, ok)
	assert.Equal(t, "Младший Сержант", rank.Name)

	_, ok = idx.Lookup("Маршал")
	assert.False(t, ok)
}

func TestNextRank(t *testing.T) {
	idx := NewRankIndex(defaultRanks)

	next, ok := idx.NextRank("Рядовой")
	require.True(t, ok)
	assert.Equal(t, "Ефрейтор", next.Name)

	_, ok = idx.NextRank("Генерал Армии")
	assert.False(t, ok, "top of the ladder has no next rank")

	_, ok = idx.NextRank("Маршал")
	assert.False(t, ok)
}

func TestPreviousRank(t *testing.T) {
	idx := NewRankIndex(defaultRanks)

	previous, ok := idx.PreviousRank("Ефрейтор")
	require.True(t, ok)
	assert.Equal(t, "Рядовой", previous.Name)

	_, ok = idx.PreviousRank("Рядовой")
	assert.False(t, ok, "bottom of the ladder has no previous rank")
}

func TestHighestRank(t *testing.T) {
	idx := NewRankIndex(defaultRanks)

	rank, ok := idx.HighestRank([]string{"Рядовой", "Сержант", "Водитель"})
	require.True(t, ok)
	assert.Equal(t, "Сержант", rank.Name)

	rank, ok = idx.HighestRank([]string{"Ст. Сержант", "Рядовой"})
	require.True(t, ok)
	assert.Equal(t, "Старший Сержант", rank.Name)

	_, ok = idx.HighestRank([]string{"Водитель", "Гость"})
	assert.False(t, ok)
}

func TestRanksReturnsCopy(t *testing.T) {
	idx := NewRankIndex(defaultRanks)
	ranks := idx.Ranks()
	require.Len(t, ranks, 19)

	ranks[0].Name = "изменено"
	fresh := idx.Ranks()
	assert.Equal(t, "Генерал Армии", fresh[0].Name)
}
