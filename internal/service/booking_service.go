package service

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"barberia/internal/db"
	"barberia/internal/entities"
	apperrors "barberia/internal/errors"
	"barberia/internal/repository"
	"barberia/internal/utils"
)

const (
	statusConfirmed = "confirmada"
	statusCancelled = "cancelada"
)

// BookingService combines the availability resolver with the booking
// lifecycle. Availability is recomputed from the full active set on every
// call; both collections are small enough that nothing is cached.
type BookingService struct {
	Bookings  *repository.BookingRepository
	Schedules *repository.ScheduleRepository

	now func() time.Time
}

func NewBookingService(bookings *repository.BookingRepository, schedules *repository.ScheduleRepository) *BookingService {
	return &BookingService{
		Bookings:  bookings,
		Schedules: schedules,
		now:       time.Now,
	}
}

// ListAvailableSlots resolves the bookable times for a calendar date:
// closed weekday, then annual MM-DD closure, then one-off closure, then the
// weekly template minus times already taken by active bookings, in template
// order.
func (s *BookingService) ListAvailableSlots(date string) ([]string, error) {
	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, apperrors.ErrValidation(err.Error())
	}

	base := s.scheduledTimes(day, date)
	if len(base) == 0 {
		return []string{}, nil
	}

	booked := s.Bookings.BookedTimes(date)
	available := make([]string, 0, len(base))
	for _, t := range base {
		if !booked[t] {
			available = append(available, t)
		}
	}
	return available, nil
}

// scheduledTimes applies the closure rules and returns the weekly template
// for the date, before bookings are subtracted.
func (s *BookingService) scheduledTimes(day time.Time, date string) []string {
	schedule := s.Schedules.Get()

	weekday := utils.WeekdayName(day)
	for _, closed := range schedule.ClosedDaysOfWeek {
		if closed == weekday {
			return nil
		}
	}
	monthDay := utils.MonthDay(day)
	for _, closed := range schedule.AnnualClosedDates {
		if closed == monthDay {
			return nil
		}
	}
	for _, closed := range schedule.ClosedDates {
		if closed == date {
			return nil
		}
	}
	return schedule.WeeklySchedule[weekday]
}

// CreateBooking validates the request, re-checks the slot against the
// schedule, and claims it. The claim itself is atomic inside the repository,
// so a race between two clients ends with one booking and one conflict.
func (s *BookingService) CreateBooking(req entities.BookingRequest) (*db.Booking, error) {
	if req.Name == "" || req.Service == "" || req.Date == "" || req.Time == "" {
		return nil, apperrors.ErrValidation("Missing required booking information.")
	}
	day, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, apperrors.ErrValidation(err.Error())
	}

	today := s.now().Format(utils.DateLayout)
	if req.Date < today {
		return nil, apperrors.ErrValidation("Cannot book a date in the past.")
	}
	schedule := s.Schedules.Get()
	if max := schedule.MaxAdvanceBookingDays; max > 0 {
		horizon := s.now().AddDate(0, 0, max).Format(utils.DateLayout)
		if req.Date > horizon {
			return nil, apperrors.ErrValidation(fmt.Sprintf("Bookings are only accepted up to %d days in advance.", max))
		}
	}

	if !contains(s.scheduledTimes(day, req.Date), req.Time) {
		return nil, apperrors.ErrValidation("Selected time slot is not available.")
	}

	booking := db.Booking{
		ID:          newBookingID(),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Service:     req.Service,
		Date:        req.Date,
		Time:        req.Time,
		BookingDate: s.now().UTC(),
	}

	if err := s.Bookings.Create(booking); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			return nil, apperrors.ErrConflict("Selected time slot was just booked.")
		}
		return nil, err
	}

	if req.SendConfirmationEmail && booking.Email != "" {
		s.sendBookingEmail(booking, statusConfirmed)
	}
	if booking.Phone != "" {
		s.sendBookingSMS(booking, statusConfirmed)
	}
	return &booking, nil
}

func (s *BookingService) ListBookings() []db.Booking {
	return s.Bookings.Active()
}

func (s *BookingService) ListCancelledBookings() []db.Booking {
	return s.Bookings.Cancelled()
}

// CancelBooking moves the booking to the cancelled set and notifies the
// customer when an email is on file.
func (s *BookingService) CancelBooking(id string) (*db.Booking, error) {
	booking, err := s.Bookings.Cancel(id)
	if err != nil {
		return nil, apperrors.ErrNotFound("Booking not found.")
	}
	if booking.Email != "" {
		s.sendBookingEmail(booking, statusCancelled)
	}
	return &booking, nil
}

// RestoreBooking moves a cancelled booking back to the active set, unless its
// slot has been taken in the meantime.
func (s *BookingService) RestoreBooking(id string) (*db.Booking, error) {
	booking, err := s.Bookings.Restore(id)
	if err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			return nil, apperrors.ErrConflict("An active booking already occupies this date and time.")
		}
		return nil, apperrors.ErrNotFound("Cancelled booking not found.")
	}
	return &booking, nil
}

// sendBookingEmail composes the Spanish notification and ships it in the
// background; delivery failures are logged and never surface to the caller.
func (s *BookingService) sendBookingEmail(booking db.Booking, status string) {
	data := entities.BookingEmailData{
		Name:          booking.Name,
		Service:       booking.Service,
		DateFormatted: formatSpanishDate(booking.Date),
		Time:          booking.Time,
		Status:        status,
	}

	subject := fmt.Sprintf("Tu reserva en la barbería está %s - %s %s", data.Status, data.DateFormatted, data.Time)
	plainTextBody := fmt.Sprintf(
		"Hola %s,\n\nTu reserva en la barbería está %s.\n\n"+
			"Detalles de la reserva:\n"+
			"Servicio: %s\n"+
			"Fecha: %s\n"+
			"Hora: %s\n\n"+
			"Gracias por elegirnos.\n\n"+
			"La Barbería.",
		data.Name, data.Status, data.Service, data.DateFormatted, data.Time,
	)
	htmlBody := fmt.Sprintf(
		"<p>Hola %s,</p><p>Tu reserva en la barbería está <strong>%s</strong>.</p>"+
			"<p>Servicio: %s<br>Fecha: %s<br>Hora: %s</p><p>Gracias por elegirnos.</p>",
		data.Name, data.Status, data.Service, data.DateFormatted, data.Time,
	)

	go func(toEmail, toName, subject, plainBody, htmlBody string) {
		if errEmail := SendEmailWithSendGrid(toEmail, toName, subject, plainBody, htmlBody); errEmail != nil {
			log.Printf("ALERTA (asíncrono): Falló envío de correo para reserva %s: %v", booking.ID, errEmail)
		}
	}(booking.Email, booking.Name, subject, plainTextBody, htmlBody)
}

func (s *BookingService) sendBookingSMS(booking db.Booking, status string) {
	smsMessage := fmt.Sprintf("Barbería: ¡Tu reserva está %s!\n%s a las %s.\nMás detalles en tu correo.",
		status, formatSpanishDate(booking.Date), booking.Time)

	go func(toNumber, body string) {
		if errSMS := SendSMS(toNumber, body); errSMS != nil {
			log.Printf("ALERTA: La reserva %s se registró, pero falló el envío del SMS a %s: %v", booking.ID, toNumber, errSMS)
		}
	}(booking.Phone, smsMessage)
}

var (
	idMu   sync.Mutex
	lastID int64
)

// newBookingID returns a time-based id that stays strictly increasing even
// when two bookings land within the clock's resolution.
func newBookingID() string {
	idMu.Lock()
	defer idMu.Unlock()
	id := time.Now().UnixNano()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return strconv.FormatInt(id, 10)
}

func formatSpanishDate(date string) string {
	if day, err := utils.ParseDate(date); err == nil {
		return day.Format("02/01/2006")
	}
	return date
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
