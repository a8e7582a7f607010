package dismissal

import (
	"testing"

	"personnel-bot/model"
	"personnel-bot/utils/database/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRegistry(t *testing.T) {
	report := Report{UserID: "user-a", Name: "Иван Иванов", Static: "12-345", Reason: ReasonOwnWish}

	require.True(t, addReport(report))
	assert.False(t, addReport(report), "second report while the first is open")

	got, ok := takeReport("user-a")
	require.True(t, ok)
	assert.Equal(t, report.Name, got.Name)

	_, ok = takeReport("user-a")
	assert.False(t, ok, "a report may only be taken once")

	assert.True(t, addReport(report), "a resolved report frees the slot")
	takeReport("user-a")
}

func TestOutranks(t *testing.T) {
	idx := registry.NewRankIndex([]model.Rank{
		{Name: "Майор", Level: 7},
		{Name: "Капитан", Level: 8},
		{Name: "Рядовой", Level: 19},
	})

	assert.True(t, outranks(idx, "Майор", "Рядовой"))
	assert.False(t, outranks(idx, "Капитан", "Майор"))
	assert.False(t, outranks(idx, "Капитан", "Капитан"), "equal rank does not outrank")

	// Unknown ranks on either side do not block the review.
	assert.True(t, outranks(idx, "Неизвестно", "Рядовой"))
	assert.True(t, outranks(idx, "Капитан", "Гражданский"))
}
