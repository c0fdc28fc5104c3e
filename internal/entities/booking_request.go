package entities

type BookingRequest struct {
	Name                  string `json:"name"`
	Email                 string `json:"email"`
	Phone                 string `json:"phone"`
	Service               string `json:"service"`
	Date                  string `json:"date"` // YYYY-MM-DD
	Time                  string `json:"time"` // HH:MM
	SendConfirmationEmail bool   `json:"sendConfirmationEmail"`
}

type BookingResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
