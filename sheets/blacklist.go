package sheets

import (
	"context"
	"log"
	"strings"

	"personnel-bot/model"
	"personnel-bot/utils"
)

// PenaltyTermDays is how long an early-dismissal penalty stays enforced.
const PenaltyTermDays = 14

// The blacklist sheet renders a ready-to-copy message in column G from the
// other columns of the inserted row.
const blacklistMessageFormula = `="1. " & B3 & СИМВОЛ(10) & "2. " & C3 & СИМВОЛ(10) & "3. " & ТЕКСТ(D3;"dd.mm.yyyy") & СИМВОЛ(10) & "4. " & ТЕКСТ(E3;"dd.mm.yyyy") & СИМВОЛ(10) & "5. " & F3 & СИМВОЛ(10)`

// Blacklist is the penalty worksheet. Penalty rows are inserted at row 2,
// matching the audit log's newest-first convention.
type Blacklist struct {
	client *Client
	sheet  string
}

// NewBlacklist binds the blacklist to its worksheet.
func NewBlacklist(client *Client, sheet string) *Blacklist {
	return &Blacklist{client: client, sheet: sheet}
}

func blacklistRow(r model.BlacklistRecord) []string {
	name := r.Name
	if r.Static != "" {
		name = r.Name + " | " + r.Static
	}
	return []string{
		r.Term,
		name,
		r.Reason,
		utils.FormatSheetDate(r.EntryDate),
		utils.FormatSheetDate(r.EnforcementDate),
		r.SignedBy,
		blacklistMessageFormula,
	}
}

// Append inserts the penalty record at row 2.
func (b *Blacklist) Append(ctx context.Context, record model.BlacklistRecord) error {
	if err := b.client.InsertRow(ctx, b.sheet, 2, blacklistRow(record)); err != nil {
		return err
	}
	log.Printf("Added blacklist record for %s (%s)", record.Name, record.Static)
	return nil
}

func recordFromBlacklistRow(row []string) model.BlacklistRecord {
	padded := make([]string, 7)
	copy(padded, row)

	record := model.BlacklistRecord{
		Term:     strings.TrimSpace(padded[0]),
		Reason:   strings.TrimSpace(padded[2]),
		SignedBy: strings.TrimSpace(padded[5]),
	}
	name := strings.TrimSpace(padded[1])
	if before, after, found := strings.Cut(name, " | "); found {
		record.Name = strings.TrimSpace(before)
		record.Static = strings.TrimSpace(after)
	} else {
		record.Name = name
	}
	if t, err := utils.ParseSheetDate(padded[3]); err == nil {
		record.EntryDate = t
	}
	if t, err := utils.ParseSheetDate(padded[4]); err == nil {
		record.EnforcementDate = t
	}
	return record
}

// FindByStatic returns every penalty record matching the static, newest
// first (sheet order).
func (b *Blacklist) FindByStatic(ctx context.Context, static string) ([]model.BlacklistRecord, error) {
	rows, err := b.client.ReadRange(ctx, b.sheet, "A:G")
	if err != nil {
		return nil, err
	}

	target := normalizeStatic(static)
	var matches []model.BlacklistRecord
	for i, row := range rows {
		if i == 0 {
			continue
		}
		record := recordFromBlacklistRow(row)
		if normalizeStatic(record.Static) == target {
			matches = append(matches, record)
		}
	}
	return matches, nil
}
