package sheets

import (
	"context"
	"fmt"
	"log"
	"strings"

	"personnel-bot/model"
)

// Personnel sheet columns (A-G).
const (
	colFirstName = iota
	colLastName
	colStatic
	colRank
	colDepartment
	colPosition
	colDiscordID
	personnelColumns
)

// Defaults written for fresh recruits.
const (
	RecruitRank       = "Рядовой"
	RecruitDepartment = "Военная Академия"
)

// PersonnelStore manages the active personnel worksheet. Each soldier has
// one row keyed by Discord ID; uniqueness is assumed, not enforced by the
// sheet.
type PersonnelStore struct {
	client *Client
	sheet  string
	cache  *personnelCache
}

// NewPersonnelStore binds the store to its worksheet.
func NewPersonnelStore(client *Client, sheet string) *PersonnelStore {
	return &PersonnelStore{
		client: client,
		sheet:  sheet,
		cache:  newPersonnelCache(),
	}
}

func personnelRow(r model.PersonnelRecord) []string {
	return []string{
		r.FirstName,
		r.LastName,
		r.Static,
		r.Rank,
		r.Department,
		r.Position,
		r.DiscordID,
	}
}

func recordFromRow(row []string, discordID string) model.PersonnelRecord {
	padded := make([]string, personnelColumns)
	copy(padded, row)
	return model.PersonnelRecord{
		FirstName:  strings.TrimSpace(padded[colFirstName]),
		LastName:   strings.TrimSpace(padded[colLastName]),
		Static:     strings.TrimSpace(padded[colStatic]),
		Rank:       strings.TrimSpace(padded[colRank]),
		Department: strings.TrimSpace(padded[colDepartment]),
		Position:   strings.TrimSpace(padded[colPosition]),
		DiscordID:  discordID,
	}
}

// findRow scans column G for the Discord ID and returns the 1-based row,
// or 0 when absent. The header row is skipped.
func (s *PersonnelStore) findRow(ctx context.Context, discordID string) (int64, error) {
	column, err := s.client.ReadColumn(ctx, s.sheet, "G")
	if err != nil {
		return 0, err
	}
	target := strings.TrimSpace(discordID)
	for i, cell := range column {
		if i == 0 {
			continue
		}
		if strings.TrimSpace(cell) == target {
			return int64(i + 1), nil
		}
	}
	return 0, nil
}

// Get returns the personnel record for the Discord ID, serving repeat
// lookups from the TTL cache. Returns ErrNotFound when no row matches.
func (s *PersonnelStore) Get(ctx context.Context, discordID string) (model.PersonnelRecord, error) {
	if record, ok := s.cache.get(discordID); ok {
		return record, nil
	}

	row, err := s.findRow(ctx, discordID)
	if err != nil {
		return model.PersonnelRecord{}, err
	}
	if row == 0 {
		return model.PersonnelRecord{}, ErrNotFound
	}

	values, err := s.client.ReadRow(ctx, s.sheet, row)
	if err != nil {
		return model.PersonnelRecord{}, err
	}

	record := recordFromRow(values, discordID)
	s.cache.put(discordID, record)
	return record, nil
}

// AddOrUpdate writes the record as the newest row. An existing row for
// the same Discord ID is deleted first, then the fresh record is inserted
// at row 2, right below the header.
func (s *PersonnelStore) AddOrUpdate(ctx context.Context, record model.PersonnelRecord) error {
	if record.DiscordID == "" {
		return fmt.Errorf("personnel record has no discord ID")
	}

	existing, err := s.findRow(ctx, record.DiscordID)
	if err != nil {
		return err
	}
	if existing != 0 {
		log.Printf("Updating existing personnel record for %s at row %d", record.DiscordID, existing)
		if err := s.client.DeleteRow(ctx, s.sheet, existing); err != nil {
			return err
		}
	}

	if err := s.client.InsertRow(ctx, s.sheet, 2, personnelRow(record)); err != nil {
		return err
	}
	s.cache.invalidate(record.DiscordID)
	return nil
}

// Remove deletes the soldier's row. Returns ErrNotFound when there is no
// row to delete, so dismissal flows can report that step distinctly.
func (s *PersonnelStore) Remove(ctx context.Context, discordID string) error {
	row, err := s.findRow(ctx, discordID)
	if err != nil {
		return err
	}
	if row == 0 {
		return ErrNotFound
	}
	if err := s.client.DeleteRow(ctx, s.sheet, row); err != nil {
		return err
	}
	s.cache.invalidate(discordID)
	return nil
}

// SweepCache drops expired cache entries.
func (s *PersonnelStore) SweepCache() {
	s.cache.Sweep()
}

// CacheStats reports cache counters.
func (s *PersonnelStore) CacheStats() CacheStats {
	return s.cache.stats()
}
