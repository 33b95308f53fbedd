package domain

import "time"

// TimeLayout is how the FTMS backend stores depart_time and arrive_time.
const TimeLayout = "2006-01-02T15:04:05"

type Airport struct {
	City string
	Name string
	Code string
}

type Airline struct {
	Code string
	Name string
}

type FlightRecord struct {
	FlightID         string
	Departure        string
	Destination      string
	DepartureAirport string
	ArrivalAirport   string
	DepartTime       time.Time
	ArriveTime       time.Time
	Price            float64
	RestSeats        int
	// DurationMinutes is derived at generation time and not persisted.
	DurationMinutes int
}

type FlightStats struct {
	Total           int64
	DepartureCities int64
}
