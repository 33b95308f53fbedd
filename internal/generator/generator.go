// Package generator builds synthetic FTMS flights from the static catalog.
package generator

import (
	"math"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/Unbantucniak/FTMS/internal/catalog"
	"github.com/Unbantucniak/FTMS/internal/domain"
)

const (
	horizonDays    = 60
	firstHour      = 6
	lastHour       = 21
	pricePerMinute = 3
)

// Duration bands in minutes, inclusive.
const (
	longMin, longMax       = 180, 300
	hubMin, hubMax         = 120, 180
	defaultMin, defaultMax = 90, 180
)

type Generator struct {
	rng      *rand.Rand
	now      func() time.Time
	idOffset int
	airports []domain.Airport
	airlines []domain.Airline
}

type Option func(*Generator)

// WithSeed makes the output reproducible.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithIDOffset sets the number the first flight of a run is numbered from.
func WithIDOffset(offset int) Option {
	return func(g *Generator) {
		g.idOffset = offset
	}
}

func New(opts ...Option) *Generator {
	g := &Generator{
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now:      time.Now,
		idOffset: 1000,
		airports: catalog.Airports(),
		airlines: catalog.Airlines(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns exactly n flights. Same-city pairs are rejected and
// resampled, so the loop ends once n distinct-city pairs have been drawn.
func (g *Generator) Generate(n int) []domain.FlightRecord {
	if n <= 0 {
		return nil
	}

	now := g.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	flights := make([]domain.FlightRecord, 0, n)
	index := 0
	for len(flights) < n {
		dep := g.airports[g.rng.IntN(len(g.airports))]
		arr := g.airports[g.rng.IntN(len(g.airports))]
		if dep.City == arr.City {
			continue
		}

		airline := g.airlines[g.rng.IntN(len(g.airlines))]

		day := start.AddDate(0, 0, g.rng.IntN(horizonDays))
		hour := firstHour + g.rng.IntN(lastHour-firstHour+1)
		minute := catalog.DepartureMinutes[g.rng.IntN(len(catalog.DepartureMinutes))]
		departAt := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())

		duration := g.duration(dep.City, arr.City)
		price := g.price(duration, catalog.IsHotRoute(dep.City, arr.City))
		seats := catalog.SeatOptions[g.rng.IntN(len(catalog.SeatOptions))]

		flights = append(flights, domain.FlightRecord{
			FlightID:         FlightID(airline.Code, g.idOffset+index),
			Departure:        dep.City,
			Destination:      arr.City,
			DepartureAirport: dep.Name,
			ArrivalAirport:   arr.Name,
			DepartTime:       departAt,
			ArriveTime:       departAt.Add(time.Duration(duration) * time.Minute),
			Price:            price,
			RestSeats:        seats,
			DurationMinutes:  duration,
		})
		index++
	}
	return flights
}

// FlightID joins an airline code and a flight number, e.g. "CA1000".
func FlightID(airlineCode string, number int) string {
	return airlineCode + strconv.Itoa(number)
}

// DurationRange returns the inclusive band, in minutes, that a flight
// between the two cities is drawn from.
func DurationRange(from, to string) (int, int) {
	switch {
	case catalog.IsLongDistance(from) || catalog.IsLongDistance(to):
		return longMin, longMax
	case catalog.IsHub(from) && catalog.IsHub(to):
		return hubMin, hubMax
	default:
		return defaultMin, defaultMax
	}
}

// PriceRange returns the bounds Price can land in for a duration, before
// rounding.
func PriceRange(duration int, hot bool) (float64, float64) {
	lo, hi := multiplierRange(hot)
	base := float64(duration * pricePerMinute)
	return base*lo - 100, base*hi + 200
}

func (g *Generator) duration(from, to string) int {
	lo, hi := DurationRange(from, to)
	return lo + g.rng.IntN(hi-lo+1)
}

func (g *Generator) price(duration int, hot bool) float64 {
	lo, hi := multiplierRange(hot)
	base := float64(duration*pricePerMinute) * (lo + g.rng.Float64()*(hi-lo))
	jitter := g.rng.IntN(301) - 100
	return math.RoundToEven(base + float64(jitter))
}

func multiplierRange(hot bool) (float64, float64) {
	if hot {
		return 1.2, 1.8
	}
	return 0.8, 1.2
}
