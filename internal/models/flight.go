package models

import "time"

const (
	CabinClassEconomy  = "economy"
	CabinClassBusiness = "business"
	CabinClassFirst    = "first"
)

type Flight struct {
	ID               int64     `json:"id"`
	Airline          string    `json:"airline"`
	FlightNumber     string    `json:"flight_number"`
	DepartureAirport string    `json:"departure_airport"`
	ArrivalAirport   string    `json:"arrival_airport"`
	DepartureCity    string    `json:"departure_city"`
	ArrivalCity      string    `json:"arrival_city"`
	DepartureTime    time.Time `json:"departure_time"`
	ArrivalTime      time.Time `json:"arrival_time"`
	DurationMinutes  int       `json:"duration_minutes"`
	Stops            int       `json:"stops"`
	AircraftType     *string   `json:"aircraft_type,omitempty"`
	CabinClass       string    `json:"cabin_class"`
	Price            float64   `json:"price"`
	Currency         string    `json:"currency"`
	SeatsAvailable   int       `json:"seats_available"`
	BaggageInfo      any       `json:"baggage_info,omitempty"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
