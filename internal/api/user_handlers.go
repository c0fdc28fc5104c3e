package api

import (
	"encoding/json"
	"net/http"

	"barberia/internal/entities"
	apperrors "barberia/internal/errors"
	"barberia/internal/service"
)

type UserBookingHandler struct {
	Bookings  *service.BookingService
	Schedules *service.ScheduleService
}

func NewUserBookingHandler(bookings *service.BookingService, schedules *service.ScheduleService) *UserBookingHandler {
	return &UserBookingHandler{Bookings: bookings, Schedules: schedules}
}

// GetSchedule is public: the booking page needs the weekly template and the
// advance-booking horizon to draw its calendar.
func (h *UserBookingHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Schedules.GetSchedule())
}

func (h *UserBookingHandler) AvailableSlots(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		http.Error(w, "Missing date parameter", http.StatusBadRequest)
		return
	}
	slots, err := h.Bookings.ListAvailableSlots(date)
	if err != nil {
		apperrors.WriteHTTPError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(slots)
}

func (h *UserBookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req entities.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	booking, err := h.Bookings.CreateBooking(req)
	if err != nil {
		apperrors.WriteHTTPError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(entities.BookingResponse{
		ID:      booking.ID,
		Message: "Booking confirmed.",
	})
}
