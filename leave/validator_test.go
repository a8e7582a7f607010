package leave

import (
	"path/filepath"
	"testing"
	"time"

	"personnel-bot/model"
	"personnel-bot/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testValidator() *Validator {
	return NewValidator(model.LeaveConfig{
		WorkStart:          "09:00",
		WorkEnd:            "22:00",
		MaxDurationMinutes: 60,
	})
}

// morning is a fixed reference point well inside the work window.
func morning() time.Time {
	return time.Date(2025, time.March, 15, 10, 0, 0, 0, utils.MoscowLocation())
}

func TestDuration(t *testing.T) {
	v := testValidator()

	duration, err := v.Duration("14:00", "15:00")
	require.NoError(t, err)
	assert.Equal(t, 60, duration)

	duration, err = v.Duration("14:00", "14:30")
	require.NoError(t, err)
	assert.Equal(t, 30, duration)
}

func TestDurationEndBeforeStart(t *testing.T) {
	v := testValidator()
	_, err := v.Duration("15:00", "14:00")
	assert.Error(t, err)
	_, err = v.Duration("14:00", "14:00")
	assert.Error(t, err)
}

func TestDurationBadInput(t *testing.T) {
	v := testValidator()
	_, err := v.Duration("паника", "15:00")
	assert.Error(t, err)
	_, err = v.Duration("14:00", "25:99")
	assert.Error(t, err)
}

func TestValidateWindow(t *testing.T) {
	v := testValidator()

	duration, err := v.validateWindow("14:00", "15:00", morning())
	require.NoError(t, err)
	assert.Equal(t, 60, duration)
}

func TestUpdateSwapsRules(t *testing.T) {
	v := testValidator()

	_, err := v.validateWindow("14:00", "15:00", morning())
	require.NoError(t, err)

	v.Update(model.LeaveConfig{
		WorkStart:          "16:00",
		WorkEnd:            "20:00",
		MaxDurationMinutes: 30,
	})

	_, err = v.validateWindow("14:00", "15:00", morning())
	assert.Error(t, err, "old window no longer valid after the update")

	duration, err := v.validateWindow("17:00", "17:30", morning())
	require.NoError(t, err)
	assert.Equal(t, 30, duration)
}

func TestValidateWindowOutsideWorkHours(t *testing.T) {
	v := testValidator()

	_, err := v.validateWindow("08:00", "09:30", morning())
	assert.Error(t, err, "start before work hours")

	_, err = v.validateWindow("21:30", "22:30", morning())
	assert.Error(t, err, "end after work hours")
}

func TestValidateWindowTooLong(t *testing.T) {
	v := testValidator()
	_, err := v.validateWindow("14:00", "15:30", morning())
	assert.Error(t, err)
}

func TestValidateWindowStartMustBeFuture(t *testing.T) {
	v := testValidator()

	_, err := v.validateWindow("10:00", "10:30", morning())
	assert.Error(t, err, "start equal to now")

	_, err = v.validateWindow("09:30", "10:00", morning())
	assert.Error(t, err, "start in the past")
}

func TestValidateOneActiveRequestPerDay(t *testing.T) {
	v := testValidator()
	storage := NewStorage(filepath.Join(t.TempDir(), "leave_requests.json"))

	id, err := storage.Add(model.LeaveRequest{UserID: "1", StartTime: "14:00", EndTime: "15:00"})
	require.NoError(t, err)

	// The window check may pass or fail depending on the wall clock, so
	// only the daily-limit branch is asserted: the path cannot be taken
	// while an active request exists.
	_, err = v.Validate("21:58", "21:59", "1", storage)
	assert.Error(t, err)

	require.NoError(t, storage.SetStatus(id, model.LeaveStatusRejected, "mod", "Модератор", "нет"))
	for _, request := range storage.UserRequestsToday("1") {
		assert.False(t, request.Active())
	}
}
