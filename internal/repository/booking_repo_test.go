package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barberia/internal/db"
	"barberia/internal/store"
)

func newTestBookingRepo(t *testing.T) (*BookingRepository, *store.Store) {
	t.Helper()
	st, err := store.New(t.TempDir())
	require.NoError(t, err)
	return NewBookingRepository(st), st
}

func testBooking(id, date, timeOfDay string) db.Booking {
	return db.Booking{
		ID:          id,
		Name:        "Juan",
		Email:       "juan@example.com",
		Service:     "Corte",
		Date:        date,
		Time:        timeOfDay,
		BookingDate: time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestCreateClaimsSlot(t *testing.T) {
	repo, _ := newTestBookingRepo(t)

	require.NoError(t, repo.Create(testBooking("1", "2025-08-04", "17:00")))

	err := repo.Create(testBooking("2", "2025-08-04", "17:00"))
	assert.ErrorIs(t, err, ErrSlotTaken)

	// Same time on another date is fine.
	require.NoError(t, repo.Create(testBooking("3", "2025-08-05", "17:00")))
	assert.Len(t, repo.Active(), 2)
}

func TestCancelMovesBookingUnchanged(t *testing.T) {
	repo, _ := newTestBookingRepo(t)
	original := testBooking("1", "2025-08-04", "17:00")
	require.NoError(t, repo.Create(original))

	cancelled, err := repo.Cancel("1")
	require.NoError(t, err)
	assert.Equal(t, original, cancelled)
	assert.Empty(t, repo.Active())
	assert.Equal(t, []db.Booking{original}, repo.Cancelled())

	_, err = repo.Cancel("1")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRestoreRoundTrip(t *testing.T) {
	repo, _ := newTestBookingRepo(t)
	original := testBooking("1", "2025-08-04", "17:00")
	require.NoError(t, repo.Create(original))

	_, err := repo.Cancel("1")
	require.NoError(t, err)

	restored, err := repo.Restore("1")
	require.NoError(t, err)
	assert.Equal(t, original, restored)
	assert.Equal(t, []db.Booking{original}, repo.Active())
	assert.Empty(t, repo.Cancelled())
}

func TestRestoreConflictLeavesCancelledUnchanged(t *testing.T) {
	repo, _ := newTestBookingRepo(t)
	require.NoError(t, repo.Create(testBooking("1", "2025-08-04", "17:00")))
	_, err := repo.Cancel("1")
	require.NoError(t, err)

	// Someone else takes the slot while "1" sits cancelled.
	require.NoError(t, repo.Create(testBooking("2", "2025-08-04", "17:00")))

	_, err = repo.Restore("1")
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Len(t, repo.Cancelled(), 1)
	assert.Len(t, repo.Active(), 1)
}

func TestBookedTimes(t *testing.T) {
	repo, _ := newTestBookingRepo(t)
	require.NoError(t, repo.Create(testBooking("1", "2025-08-04", "17:00")))
	require.NoError(t, repo.Create(testBooking("2", "2025-08-04", "17:30")))
	require.NoError(t, repo.Create(testBooking("3", "2025-08-05", "17:15")))

	times := repo.BookedTimes("2025-08-04")
	assert.Equal(t, map[string]bool{"17:00": true, "17:30": true}, times)
}

func TestPersistenceSurvivesReload(t *testing.T) {
	repo, st := newTestBookingRepo(t)
	require.NoError(t, repo.Create(testBooking("1", "2025-08-04", "17:00")))
	require.NoError(t, repo.Create(testBooking("2", "2025-08-04", "17:15")))
	_, err := repo.Cancel("2")
	require.NoError(t, err)

	reloaded := NewBookingRepository(st)
	assert.Len(t, reloaded.Active(), 1)
	assert.Len(t, reloaded.Cancelled(), 1)
	assert.Equal(t, "1", reloaded.Active()[0].ID)
	assert.Equal(t, "2", reloaded.Cancelled()[0].ID)
}

func TestPurgeCancelled(t *testing.T) {
	repo, _ := newTestBookingRepo(t)
	require.NoError(t, repo.Create(testBooking("old", "2025-01-10", "17:00")))
	require.NoError(t, repo.Create(testBooking("new", "2025-08-04", "17:00")))
	_, err := repo.Cancel("old")
	require.NoError(t, err)
	_, err = repo.Cancel("new")
	require.NoError(t, err)

	removed := repo.PurgeCancelled("2025-06-01")
	assert.Equal(t, 1, removed)
	require.Len(t, repo.Cancelled(), 1)
	assert.Equal(t, "new", repo.Cancelled()[0].ID)
}
