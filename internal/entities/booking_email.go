package entities

type BookingEmailData struct {
	Name          string
	Service       string
	DateFormatted string
	Time          string
	Status        string
}
