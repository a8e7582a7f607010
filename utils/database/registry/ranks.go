package registry

import (
	"fmt"
	"sort"

	"personnel-bot/model"

	"github.com/jmoiron/sqlx"
)

// defaultRanks is the 19-rank ladder. Level 1 is the highest rank.
var defaultRanks = []model.Rank{
	{Name: "Генерал Армии", Level: 1},
	{Name: "Генерал-Полковник", Level: 2},
	{Name: "Генерал-Лейтенант", Level: 3},
	{Name: "Генерал-Майор", Level: 4},
	{Name: "Полковник", Level: 5},
	{Name: "Подполковник", Level: 6},
	{Name: "Майор", Level: 7},
	{Name: "Капитан", Level: 8},
	{Name: "Старший Лейтенант", Level: 9},
	{Name: "Лейтенант", Level: 10},
	{Name: "Младший Лейтенант", Level: 11},
	{Name: "Старший Прапорщик", Level: 12},
	{Name: "Прапорщик", Level: 13},
	{Name: "Старшина", Level: 14},
	{Name: "Старший Сержант", Level: 15},
	{Name: "Сержант", Level: 16},
	{Name: "Младший Сержант", Level: 17},
	{Name: "Ефрейтор", Level: 18},
	{Name: "Рядовой", Level: 19},
}

// rankAbbreviations maps the abbreviated role names some servers use to
// the canonical ladder names.
var rankAbbreviations = map[string]string{
	"Мл. Лейтенант":  "Младший Лейтенант",
	"Ст. Лейтенант":  "Старший Лейтенант",
	"Ст. Прапорщик":  "Старший Прапорщик",
	"Ст. Сержант":    "Старший Сержант",
	"Мл. Сержант":    "Младший Сержант",
	"Ген. Армии":     "Генерал Армии",
	"Ген. Полковник": "Генерал-Полковник",
	"Ген. Лейтенант": "Генерал-Лейтенант",
	"Ген. Майор":     "Генерал-Майор",
}

func seedRanks(db *sqlx.DB) error {
	var count int
	if err := db.Get(&count, "SELECT COUNT(*) FROM ranks"); err != nil {
		return fmt.Errorf("failed to count ranks: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, r := range defaultRanks {
		if _, err := db.NamedExec(
			`INSERT INTO ranks (name, role_id, rank_level) VALUES (:name, :role_id, :rank_level)`, r); err != nil {
			return fmt.Errorf("failed to seed rank %q: %w", r.Name, err)
		}
	}
	return nil
}

// UpsertRank inserts or updates a rank's role binding and level.
func UpsertRank(db *sqlx.DB, rank model.Rank) error {
	_, err := db.NamedExec(
		`INSERT INTO ranks (name, role_id, rank_level) VALUES (:name, :role_id, :rank_level)
		 ON CONFLICT(name) DO UPDATE SET role_id = excluded.role_id, rank_level = excluded.rank_level`, rank)
	if err != nil {
		return fmt.Errorf("failed to upsert rank %q: %w", rank.Name, err)
	}
	return nil
}

// LoadRanks reads the full ladder ordered by level.
func LoadRanks(db *sqlx.DB) ([]model.Rank, error) {
	var ranks []model.Rank
	if err := db.Select(&ranks, "SELECT name, role_id, rank_level FROM ranks ORDER BY rank_level"); err != nil {
		return nil, fmt.Errorf("failed to load ranks: %w", err)
	}
	return ranks, nil
}

// RankIndex is the in-memory view of the rank ladder, sorted by level.
type RankIndex struct {
	ranks  []model.Rank // ascending level: highest rank first
	byName map[string]int
}

// NewRankIndex builds an index over the given ladder.
func NewRankIndex(ranks []model.Rank) *RankIndex {
	sorted := make([]model.Rank, len(ranks))
	copy(sorted, ranks)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Level < sorted[j].Level })

	idx := &RankIndex{
		ranks:  sorted,
		byName: make(map[string]int, len(sorted)),
	}
	for i, r := range sorted {
		idx.byName[r.Name] = i
	}
	return idx
}

// LoadRankIndex reads the ladder from the registry and indexes it.
func LoadRankIndex(db *sqlx.DB) (*RankIndex, error) {
	ranks, err := LoadRanks(db)
	if err != nil {
		return nil, err
	}
	return NewRankIndex(ranks), nil
}

// Lookup resolves a rank by its canonical or abbreviated name.
func (idx *RankIndex) Lookup(name string) (model.Rank, bool) {
	if full, ok := rankAbbreviations[name]; ok {
		name = full
	}
	i, ok := idx.byName[name]
	if !ok {
		return model.Rank{}, false
	}
	return idx.ranks[i], true
}

// NextRank returns the rank one step above the given one, or false at the
// top of the ladder.
func (idx *RankIndex) NextRank(name string) (model.Rank, bool) {
	r, ok := idx.Lookup(name)
	if !ok {
		return model.Rank{}, false
	}
	i := idx.byName[r.Name]
	if i == 0 {
		return model.Rank{}, false
	}
	return idx.ranks[i-1], true
}

// PreviousRank returns the rank one step below the given one, or false at
// the bottom of the ladder.
func (idx *RankIndex) PreviousRank(name string) (model.Rank, bool) {
	r, ok := idx.Lookup(name)
	if !ok {
		return model.Rank{}, false
	}
	i := idx.byName[r.Name]
	if i == len(idx.ranks)-1 {
		return model.Rank{}, false
	}
	return idx.ranks[i+1], true
}

// HighestRank picks the highest-priority ladder rank among the given
// Discord role names, or false when none match.
func (idx *RankIndex) HighestRank(roleNames []string) (model.Rank, bool) {
	best := -1
	for _, name := range roleNames {
		r, ok := idx.Lookup(name)
		if !ok {
			continue
		}
		i := idx.byName[r.Name]
		if best == -1 || i < best {
			best = i
		}
	}
	if best == -1 {
		return model.Rank{}, false
	}
	return idx.ranks[best], true
}

// Ranks returns the ladder ordered from highest to lowest.
func (idx *RankIndex) Ranks() []model.Rank {
	out := make([]model.Rank, len(idx.ranks))
	copy(out, idx.ranks)
	return out
}
