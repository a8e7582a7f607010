package leave

import (
	"path/filepath"
	"strings"
	"testing"

	"personnel-bot/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStorage(t *testing.T) *Storage {
	t.Helper()
	return NewStorage(filepath.Join(t.TempDir(), "leave_requests.json"))
}

func sampleRequest(userID string) model.LeaveRequest {
	return model.LeaveRequest{
		UserID:    userID,
		GuildID:   "guild",
		Name:      "Иван Иванов",
		Static:    "12-345",
		StartTime: "14:00",
		EndTime:   "15:00",

		DurationMinutes: 60,
		Reason:          "по семейным обстоятельствам",
	}
}

func TestAddAssignsIDAndPendingStatus(t *testing.T) {
	storage := testStorage(t)

	id, err := storage.Add(sampleRequest("1"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "LR_"), "got %q", id)

	request, err := storage.Get(id)
	require.NoError(t, err)
	assert.Equal(t, model.LeaveStatusPending, request.Status)
	assert.NotEmpty(t, request.Timestamp)
	assert.True(t, request.Active())
}

func TestUserRequestsToday(t *testing.T) {
	storage := testStorage(t)

	_, err := storage.Add(sampleRequest("1"))
	require.NoError(t, err)
	_, err = storage.Add(sampleRequest("2"))
	require.NoError(t, err)

	assert.Len(t, storage.UserRequestsToday("1"), 1)
	assert.Len(t, storage.UserRequestsToday("2"), 1)
	assert.Empty(t, storage.UserRequestsToday("3"))
	assert.Len(t, storage.AllRequestsToday(), 2)
}

func TestGetUnknownID(t *testing.T) {
	storage := testStorage(t)
	_, err := storage.Get("LR_00000000_000000_0")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetStatus(t *testing.T) {
	storage := testStorage(t)
	id, err := storage.Add(sampleRequest("1"))
	require.NoError(t, err)

	require.NoError(t, storage.SetStatus(id, model.LeaveStatusApproved, "mod", "Модератор", ""))

	request, err := storage.Get(id)
	require.NoError(t, err)
	assert.Equal(t, model.LeaveStatusApproved, request.Status)
	assert.Equal(t, "mod", request.ReviewerID)
	assert.NotEmpty(t, request.ReviewTimestamp)
}

func TestSetStatusTwiceFails(t *testing.T) {
	storage := testStorage(t)
	id, err := storage.Add(sampleRequest("1"))
	require.NoError(t, err)

	require.NoError(t, storage.SetStatus(id, model.LeaveStatusApproved, "mod", "Модератор", ""))
	err = storage.SetStatus(id, model.LeaveStatusRejected, "mod2", "Другой", "поздно")
	assert.ErrorIs(t, err, ErrAlreadyProcessed)
}

func TestSetStatusRecordsRejectionReason(t *testing.T) {
	storage := testStorage(t)
	id, err := storage.Add(sampleRequest("1"))
	require.NoError(t, err)

	require.NoError(t, storage.SetStatus(id, model.LeaveStatusRejected, "mod", "Модератор", "не положено"))

	request, err := storage.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "не положено", request.RejectionReason)
	assert.False(t, request.Active())
}

func TestDeleteOwnPendingRequest(t *testing.T) {
	storage := testStorage(t)
	id, err := storage.Add(sampleRequest("1"))
	require.NoError(t, err)

	require.NoError(t, storage.Delete(id, "1", false))
	_, err = storage.Get(id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteForeignRequestDenied(t *testing.T) {
	storage := testStorage(t)
	id, err := storage.Add(sampleRequest("1"))
	require.NoError(t, err)

	assert.ErrorIs(t, storage.Delete(id, "2", false), ErrNotPermitted)
}

func TestDeleteProcessedRequestDeniedForOwner(t *testing.T) {
	storage := testStorage(t)
	id, err := storage.Add(sampleRequest("1"))
	require.NoError(t, err)
	require.NoError(t, storage.SetStatus(id, model.LeaveStatusApproved, "mod", "Модератор", ""))

	assert.ErrorIs(t, storage.Delete(id, "1", false), ErrNotPermitted)
	// Admins may delete anything.
	assert.NoError(t, storage.Delete(id, "admin", true))
}

func TestCleanupOldDataKeepsToday(t *testing.T) {
	storage := testStorage(t)
	id, err := storage.Add(sampleRequest("1"))
	require.NoError(t, err)

	require.NoError(t, storage.CleanupOldData())

	request, err := storage.Get(id)
	require.NoError(t, err)
	assert.Equal(t, id, request.ID)
}

func TestStorageSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "leave_requests.json")

	first := NewStorage(path)
	id, err := first.Add(sampleRequest("1"))
	require.NoError(t, err)

	second := NewStorage(path)
	request, err := second.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Иван Иванов", request.Name)
}
