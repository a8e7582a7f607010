package sheets

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"personnel-bot/model"
	"personnel-bot/utils"
	"personnel-bot/utils/database/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

func TestPersonnelRowRoundTrip(t *testing.T) {
	record := model.PersonnelRecord{
		FirstName:  "Иван",
		LastName:   "Иванов",
		Static:     "12-345",
		Rank:       "Сержант",
		Department: "Военная Академия",
		Position:   "Инструктор",
		DiscordID:  "42",
	}

	row := personnelRow(record)
	require.Len(t, row, personnelColumns)
	assert.Equal(t, record, recordFromRow(row, "42"))
}

func TestRecordFromRowPadsShortRows(t *testing.T) {
	record := recordFromRow([]string{"Иван", "Иванов"}, "42")
	assert.Equal(t, "Иван", record.FirstName)
	assert.Equal(t, "Иванов", record.LastName)
	assert.Empty(t, record.Rank)
	assert.Equal(t, "42", record.DiscordID)
}

func TestRecordFromRowTrimsWhitespace(t *testing.T) {
	record := recordFromRow([]string{" Иван ", "Иванов", " 12-345 "}, "42")
	assert.Equal(t, "Иван", record.FirstName)
	assert.Equal(t, "12-345", record.Static)
}

func TestAuditRowLayout(t *testing.T) {
	moscow := utils.MoscowLocation()
	record := model.AuditRecord{
		Timestamp:  time.Date(2025, time.March, 15, 14, 30, 0, 0, moscow),
		Name:       "Иван Иванов",
		Static:     "12-345",
		Action:     registry.ActionHiring,
		ActionDate: time.Date(2025, time.March, 15, 0, 0, 0, 0, moscow),
		Department: "Военная Академия",
		Rank:       "Рядовой",
		DiscordID:  "42",
		SignedBy:   "Петров",
	}

	row := auditRow(record)
	require.Len(t, row, auditColumns)
	assert.Equal(t, "15.03.2025 14:30", row[auditColTimestamp])
	assert.Equal(t, "Иван Иванов | 12-345", row[auditColNameStatic])
	assert.Equal(t, registry.ActionHiring, row[auditColAction])
	assert.Equal(t, "15.03.2025", row[auditColActionDate])

	parsed := recordFromAuditRow(row)
	assert.Equal(t, record.Name, parsed.Name)
	assert.Equal(t, record.Static, parsed.Static)
	assert.Equal(t, record.Action, parsed.Action)
	assert.True(t, parsed.ActionDate.Equal(record.ActionDate))
}

func TestBlacklistRowLayout(t *testing.T) {
	moscow := utils.MoscowLocation()
	record := model.BlacklistRecord{
		Term:            fmt.Sprintf("%d дней", PenaltyTermDays),
		Name:            "Иван Иванов",
		Static:          "12-345",
		Reason:          "Неустойка",
		EntryDate:       time.Date(2025, time.March, 15, 0, 0, 0, 0, moscow),
		EnforcementDate: time.Date(2025, time.March, 29, 0, 0, 0, 0, moscow),
		SignedBy:        "Петров",
	}

	row := blacklistRow(record)
	require.Len(t, row, 7)
	assert.Equal(t, "14 дней", row[0])
	assert.Equal(t, "Иван Иванов | 12-345", row[1])
	assert.Equal(t, "Неустойка", row[2])
	assert.Equal(t, "15.03.2025", row[3])
	assert.Equal(t, "29.03.2025", row[4])
	assert.Equal(t, "Петров", row[5])
	assert.Equal(t, blacklistMessageFormula, row[6])
}

func TestRecordFromBlacklistRow(t *testing.T) {
	row := []string{"14 дней", "Иван Иванов | 12-345", "Неустойка", "15.03.2025", "29.03.2025", "Петров", "=формула"}
	record := recordFromBlacklistRow(row)

	assert.Equal(t, "Иван Иванов", record.Name)
	assert.Equal(t, "12-345", record.Static)
	assert.Equal(t, "Неустойка", record.Reason)
	assert.Equal(t, "15.03.2025", utils.FormatSheetDate(record.EntryDate))
	assert.Equal(t, "29.03.2025", utils.FormatSheetDate(record.EnforcementDate))

	bare := recordFromBlacklistRow([]string{"", "Без Статика"})
	assert.Equal(t, "Без Статика", bare.Name)
	assert.Empty(t, bare.Static)
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, isRetryable(&googleapi.Error{Code: 429}))
	assert.True(t, isRetryable(&googleapi.Error{Code: 500}))
	assert.True(t, isRetryable(&googleapi.Error{Code: 503}))
	assert.False(t, isRetryable(&googleapi.Error{Code: 400}))
	assert.False(t, isRetryable(&googleapi.Error{Code: 404}))
	assert.False(t, isRetryable(errors.New("not an api error")))

	wrapped := fmt.Errorf("read range: %w", &googleapi.Error{Code: 503})
	assert.True(t, isRetryable(wrapped))
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "", cellString(nil))
	assert.Equal(t, "текст", cellString("текст"))
	assert.Equal(t, "42", cellString(42))
}

func TestNormalizeStatic(t *testing.T) {
	assert.Equal(t, "12-345", normalizeStatic("12-345"))
	assert.Equal(t, "12-345", normalizeStatic("12345"))
	assert.Equal(t, "123-456", normalizeStatic(" 123 456 "))
	assert.Equal(t, "", normalizeStatic("   "))
	// Not a static at all, only trimmed.
	assert.Equal(t, "абв", normalizeStatic(" абв "))
}
