package service

import (
	"fmt"
	"log"
	"time"

	"barberia/internal/repository"
	"barberia/internal/utils"
)

type JobService struct {
	Bookings *repository.BookingRepository

	now func() time.Time
}

func NewJobService(bookings *repository.BookingRepository) *JobService {
	return &JobService{Bookings: bookings, now: time.Now}
}

// SendUpcomingReminders emails every active booking scheduled for tomorrow.
// Failures are logged per booking; the job itself never fails the run.
func (s *JobService) SendUpcomingReminders() {
	tomorrow := s.now().AddDate(0, 0, 1).Format(utils.DateLayout)
	count := 0
	for _, b := range s.Bookings.Active() {
		if b.Date != tomorrow || b.Email == "" {
			continue
		}
		count++
		subject := fmt.Sprintf("Recordatorio: tu reserva en la barbería es mañana a las %s", b.Time)
		body := fmt.Sprintf(
			"Hola %s,\n\nTe recordamos tu reserva de mañana.\n\nServicio: %s\nFecha: %s\nHora: %s\n\n¡Te esperamos!",
			b.Name, b.Service, formatSpanishDate(b.Date), b.Time,
		)
		if err := SendEmailWithSendGrid(b.Email, b.Name, subject, body, ""); err != nil {
			log.Printf("Cron Job: reminder email for booking %s failed: %v", b.ID, err)
		}
	}
	log.Printf("Cron Job: sent %d reminder(s) for %s", count, tomorrow)
}

// PurgeOldCancelled drops cancelled bookings whose date is older than the
// retention window.
func (s *JobService) PurgeOldCancelled(retentionDays int) {
	cutoff := s.now().AddDate(0, 0, -retentionDays).Format(utils.DateLayout)
	removed := s.Bookings.PurgeCancelled(cutoff)
	if removed > 0 {
		log.Printf("Cron Job: purged %d cancelled booking(s) older than %s", removed, cutoff)
	}
}
