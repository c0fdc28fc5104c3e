package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"barberia/internal/db"
	apperrors "barberia/internal/errors"
	"barberia/internal/service"
)

type AdminHandler struct {
	Bookings  *service.BookingService
	Schedules *service.ScheduleService
}

func NewAdminHandler(bookings *service.BookingService, schedules *service.ScheduleService) *AdminHandler {
	return &AdminHandler{Bookings: bookings, Schedules: schedules}
}

func (h *AdminHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Bookings.ListBookings())
}

func (h *AdminHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	_, err := h.Bookings.CancelBooking(id)
	if err != nil {
		apperrors.WriteHTTPError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Booking cancelled"})
}

func (h *AdminHandler) ListCancelledBookings(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Bookings.ListCancelledBookings())
}

func (h *AdminHandler) RestoreBooking(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	_, err := h.Bookings.RestoreBooking(id)
	if err != nil {
		apperrors.WriteHTTPError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Booking restored"})
}

// UpdateSchedule replaces the whole schedule document; the owner form always
// submits every field.
func (h *AdminHandler) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	var req db.Schedule
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	h.Schedules.ReplaceSchedule(req)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Schedule updated"})
}
