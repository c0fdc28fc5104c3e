package repository

import (
	"log"
	"sync"

	"barberia/internal/db"
	"barberia/internal/store"
)

const docSchedule = "schedule"

// DefaultSchedule is seeded on first run, like the original deployment.
func DefaultSchedule() db.Schedule {
	return db.Schedule{
		MaxAdvanceBookingDays: 30,
		WeeklySchedule: map[string][]string{
			"domingo":   {},
			"lunes":     {"17:00", "17:15", "17:30", "17:45", "18:00"},
			"martes":    {"17:00", "17:15", "17:30", "17:45", "18:00"},
			"miércoles": {},
			"jueves":    {"17:00", "17:15", "17:30", "17:45", "18:00"},
			"viernes":   {"17:00", "17:15", "17:30", "17:45", "18:00"},
			"sábado":    {"10:00", "10:15", "10:30", "10:45", "11:00"},
		},
		ClosedDaysOfWeek:  []string{},
		AnnualClosedDates: []string{},
		ClosedDates:       []string{},
	}
}

// ScheduleRepository holds the schedule document. Reads always come back with
// the optional lists non-nil so consumers never see an undefined closure list.
type ScheduleRepository struct {
	mu       sync.RWMutex
	store    *store.Store
	schedule db.Schedule
}

func NewScheduleRepository(st *store.Store) *ScheduleRepository {
	r := &ScheduleRepository{store: st}
	var s db.Schedule
	if err := st.Load(docSchedule, &s); err != nil {
		// An unreadable document is kept on disk untouched; the default
		// applies in memory only.
		log.Printf("Error loading schedule, using default: %v", err)
		s = DefaultSchedule()
	} else if s.WeeklySchedule == nil {
		// First run: seed and persist the default document.
		s = DefaultSchedule()
		if err := st.Save(docSchedule, s); err != nil {
			log.Printf("Error seeding default schedule: %v", err)
		}
	}
	r.schedule = normalize(s)
	return r
}

// Get returns the schedule with defaults applied.
func (r *ScheduleRepository) Get() db.Schedule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.schedule
}

// Replace overwrites the whole document and persists it. The payload is
// accepted as-is: no validation of time strings or ordering.
func (r *ScheduleRepository) Replace(s db.Schedule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schedule = normalize(s)
	if err := r.store.Save(docSchedule, r.schedule); err != nil {
		log.Printf("Error writing schedule file: %v", err)
	}
}

func normalize(s db.Schedule) db.Schedule {
	if s.WeeklySchedule == nil {
		s.WeeklySchedule = map[string][]string{}
	}
	if s.ClosedDaysOfWeek == nil {
		s.ClosedDaysOfWeek = []string{}
	}
	if s.AnnualClosedDates == nil {
		s.AnnualClosedDates = []string{}
	}
	if s.ClosedDates == nil {
		s.ClosedDates = []string{}
	}
	return s
}
