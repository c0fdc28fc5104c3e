package repository

import (
	"errors"
	"log"
	"sync"

	"barberia/internal/db"
	"barberia/internal/store"
)

const (
	docBookings  = "bookings"
	docCancelled = "cancelled_bookings"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrSlotTaken       = errors.New("slot already booked")
)

// BookingRepository holds the active and cancelled sets in memory and mirrors
// every mutation to the store. All transitions run under one mutex, so a slot
// claim is a single check-then-insert: two concurrent creates (or a restore
// racing a create) for the same (date, time) cannot both succeed.
type BookingRepository struct {
	mu        sync.Mutex
	store     *store.Store
	active    []db.Booking
	cancelled []db.Booking
}

func NewBookingRepository(st *store.Store) *BookingRepository {
	r := &BookingRepository{store: st}
	if err := st.Load(docBookings, &r.active); err != nil {
		log.Printf("Error loading bookings, starting empty: %v", err)
	}
	if err := st.Load(docCancelled, &r.cancelled); err != nil {
		log.Printf("Error loading cancelled bookings, starting empty: %v", err)
	}
	return r
}

// Active returns a copy of the active set, never nil.
func (r *BookingRepository) Active() []db.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]db.Booking{}, r.active...)
}

// Cancelled returns a copy of the cancelled set, never nil.
func (r *BookingRepository) Cancelled() []db.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]db.Booking{}, r.cancelled...)
}

// BookedTimes returns the set of times already taken on date by active
// bookings.
func (r *BookingRepository) BookedTimes(date string) map[string]bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	times := make(map[string]bool)
	for _, b := range r.active {
		if b.Date == date {
			times[b.Time] = true
		}
	}
	return times
}

// Create claims the booking's slot and appends it to the active set. Returns
// ErrSlotTaken when an active booking already occupies (date, time).
func (r *BookingRepository) Create(b db.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.slotTakenLocked(b.Date, b.Time) {
		return ErrSlotTaken
	}
	r.active = append(r.active, b)
	r.persistActiveLocked()
	return nil
}

// Cancel moves the booking from the active set to the cancelled set,
// unchanged, and persists both collections.
func (r *BookingRepository) Cancel(id string) (db.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, b := range r.active {
		if b.ID == id {
			r.active = append(r.active[:i], r.active[i+1:]...)
			r.cancelled = append(r.cancelled, b)
			r.persistActiveLocked()
			r.persistCancelledLocked()
			return b, nil
		}
	}
	return db.Booking{}, ErrBookingNotFound
}

// Restore moves the booking back to the active set. The cancelled set is left
// untouched when the slot is occupied.
func (r *BookingRepository) Restore(id string) (db.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, b := range r.cancelled {
		if b.ID == id {
			if r.slotTakenLocked(b.Date, b.Time) {
				return db.Booking{}, ErrSlotTaken
			}
			r.cancelled = append(r.cancelled[:i], r.cancelled[i+1:]...)
			r.active = append(r.active, b)
			r.persistActiveLocked()
			r.persistCancelledLocked()
			return b, nil
		}
	}
	return db.Booking{}, ErrBookingNotFound
}

// PurgeCancelled removes cancelled bookings whose date sorts before the given
// YYYY-MM-DD cutoff and reports how many were dropped.
func (r *BookingRepository) PurgeCancelled(cutoffDate string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.cancelled[:0]
	for _, b := range r.cancelled {
		if b.Date >= cutoffDate {
			kept = append(kept, b)
		}
	}
	removed := len(r.cancelled) - len(kept)
	if removed > 0 {
		r.cancelled = kept
		r.persistCancelledLocked()
	}
	return removed
}

func (r *BookingRepository) slotTakenLocked(date, timeOfDay string) bool {
	for _, b := range r.active {
		if b.Date == date && b.Time == timeOfDay {
			return true
		}
	}
	return false
}

// Persistence is best-effort mirroring: failures are logged and the in-memory
// state stays authoritative.
func (r *BookingRepository) persistActiveLocked() {
	if err := r.store.Save(docBookings, r.active); err != nil {
		log.Printf("Error writing bookings file: %v", err)
	}
}

func (r *BookingRepository) persistCancelledLocked() {
	if err := r.store.Save(docCancelled, r.cancelled); err != nil {
		log.Printf("Error writing cancelled bookings file: %v", err)
	}
}
