package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"barberia/internal/api"
	"barberia/internal/auth"
	"barberia/internal/repository"
	"barberia/internal/service"
	"barberia/internal/store"
)

func main() {
	godotenv.Load()

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	st, err := store.New(dataDir)
	if err != nil {
		log.Fatalf("Failed to open data dir: %v", err)
	}

	bookingRepo := repository.NewBookingRepository(st)
	scheduleRepo := repository.NewScheduleRepository(st)
	reviewRepo := repository.NewReviewRepository(st)

	bookingSvc := service.NewBookingService(bookingRepo, scheduleRepo)
	scheduleSvc := service.NewScheduleService(scheduleRepo)
	reviewSvc := service.NewReviewService(reviewRepo)
	authSvc := service.NewAdminAuthService(repository.NewAdminAuthRepository())
	jobSvc := service.NewJobService(bookingRepo)

	userHandler := api.NewUserBookingHandler(bookingSvc, scheduleSvc)
	reviewHandler := api.NewReviewHandler(reviewSvc)
	adminHandler := api.NewAdminHandler(bookingSvc, scheduleSvc)
	authHandler := api.NewAdminAuthHandler(authSvc)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/schedule", userHandler.GetSchedule).Methods("GET")
	r.HandleFunc("/api/available-slots", userHandler.AvailableSlots).Methods("GET")
	r.HandleFunc("/book", userHandler.CreateBooking).Methods("POST")
	r.HandleFunc("/reviews", reviewHandler.ListReviews).Methods("GET")
	r.HandleFunc("/reviews", reviewHandler.SubmitReview).Methods("POST")
	r.HandleFunc("/admin/login", authHandler.Login).Methods("POST")

	// Owner endpoints (protected)
	protect := func(h http.HandlerFunc) http.Handler {
		return auth.AdminAuthMiddleware(h)
	}
	r.Handle("/schedule", protect(adminHandler.UpdateSchedule)).Methods("POST")
	r.Handle("/api/bookings", protect(adminHandler.ListBookings)).Methods("GET")
	r.Handle("/api/bookings/{id}", protect(adminHandler.CancelBooking)).Methods("DELETE")
	r.Handle("/api/cancelled-bookings", protect(adminHandler.ListCancelledBookings)).Methods("GET")
	r.Handle("/api/cancelled-bookings/{id}/restore", protect(adminHandler.RestoreBooking)).Methods("POST")

	// Background jobs: next-day reminders and cancelled-booking retention.
	retentionDays := 90
	if v := os.Getenv("CANCELLED_RETENTION_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			retentionDays = n
		}
	}
	c := cron.New()
	c.AddFunc("0 8 * * *", jobSvc.SendUpcomingReminders)
	c.AddFunc("30 3 * * *", func() { jobSvc.PurgeOldCancelled(retentionDays) })
	c.Start()
	defer c.Stop()

	// The pages are served elsewhere; allow them to call this API.
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handlers.LoggingHandler(os.Stdout, cors(r))))
}
