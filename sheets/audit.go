package sheets

import (
	"context"
	"log"
	"strings"
	"time"

	"personnel-bot/model"
	"personnel-bot/utils"
	"personnel-bot/utils/database/registry"
)

// Audit sheet columns (A-M).
const (
	auditColTimestamp = iota
	auditColNameStatic
	auditColName
	auditColStatic
	auditColAction
	auditColActionDate
	auditColDepartment
	auditColPosition
	auditColRank
	auditColDiscordID
	auditColReason
	auditColSignedBy
	auditColMessageLink
	auditColumns
)

// AuditLog is the append-only personnel audit worksheet. The newest
// record is inserted at row 2 so the log reads newest-first.
type AuditLog struct {
	client  *Client
	sheet   string
	catalog *registry.ActionCatalog
}

// NewAuditLog binds the log to its worksheet and action catalog.
func NewAuditLog(client *Client, sheet string, catalog *registry.ActionCatalog) *AuditLog {
	return &AuditLog{client: client, sheet: sheet, catalog: catalog}
}

// auditRow renders the 13-column audit row.
func auditRow(r model.AuditRecord) []string {
	return []string{
		utils.FormatSheetTimestamp(r.Timestamp),
		r.NameWithStatic(),
		r.Name,
		r.Static,
		r.Action,
		utils.FormatSheetDate(r.ActionDate),
		r.Department,
		r.Position,
		r.Rank,
		r.DiscordID,
		r.Reason,
		r.SignedBy,
		r.MessageLink,
	}
}

// Append validates the action label and inserts the record at row 2.
func (l *AuditLog) Append(ctx context.Context, record model.AuditRecord) error {
	if _, err := l.catalog.Validate(record.Action); err != nil {
		return err
	}
	if err := l.client.InsertRow(ctx, l.sheet, 2, auditRow(record)); err != nil {
		return err
	}
	log.Printf("Added audit record: %s — %s", record.Action, record.NameWithStatic())
	return nil
}

// normalizeStatic brings a static to the canonical dashed form so
// hand-entered sheet cells still match lookups. Values that cannot be
// formatted are only trimmed.
func normalizeStatic(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || utils.IsValidStaticFormat(s) {
		return s
	}
	if formatted, err := utils.FormatStatic(s); err == nil {
		return formatted
	}
	return s
}

func recordFromAuditRow(row []string) model.AuditRecord {
	padded := make([]string, auditColumns)
	copy(padded, row)

	record := model.AuditRecord{
		Name:        strings.TrimSpace(padded[auditColName]),
		Static:      strings.TrimSpace(padded[auditColStatic]),
		Action:      strings.TrimSpace(padded[auditColAction]),
		Department:  strings.TrimSpace(padded[auditColDepartment]),
		Position:    strings.TrimSpace(padded[auditColPosition]),
		Rank:        strings.TrimSpace(padded[auditColRank]),
		DiscordID:   strings.TrimSpace(padded[auditColDiscordID]),
		Reason:      strings.TrimSpace(padded[auditColReason]),
		SignedBy:    strings.TrimSpace(padded[auditColSignedBy]),
		MessageLink: strings.TrimSpace(padded[auditColMessageLink]),
	}
	if t, err := utils.ParseSheetDate(padded[auditColTimestamp]); err == nil {
		record.Timestamp = t
	}
	if t, err := utils.ParseSheetDate(padded[auditColActionDate]); err == nil {
		record.ActionDate = t
	}
	return record
}

// LatestHiringByStatic scans for hiring records matching the static and
// returns the one with the latest action date. Used to detect early
// dismissals. Returns ErrNotFound when the soldier was never hired.
func (l *AuditLog) LatestHiringByStatic(ctx context.Context, static string) (model.AuditRecord, error) {
	rows, err := l.client.ReadRange(ctx, l.sheet, "A:M")
	if err != nil {
		return model.AuditRecord{}, err
	}

	target := normalizeStatic(static)
	var latest model.AuditRecord
	var latestDate time.Time
	found := false

	for i, row := range rows {
		if i == 0 {
			continue
		}
		record := recordFromAuditRow(row)
		if record.Action != registry.ActionHiring || normalizeStatic(record.Static) != target {
			continue
		}
		if record.ActionDate.IsZero() {
			log.Printf("Skipping hiring record with unparseable date for static %s", target)
			continue
		}
		if !found || record.ActionDate.After(latestDate) {
			latest = record
			latestDate = record.ActionDate
			found = true
		}
	}

	if !found {
		return model.AuditRecord{}, ErrNotFound
	}
	return latest, nil
}
