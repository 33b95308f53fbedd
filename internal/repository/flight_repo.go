package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Unbantucniak/FTMS/config"
	"github.com/Unbantucniak/FTMS/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrDuplicateFlight is returned by Insert when flight_id is already taken.
var ErrDuplicateFlight = errors.New("duplicate flight id")

// FlightWriter writes to the flight table inside a transaction.
type FlightWriter interface {
	DeleteAll(ctx context.Context) (int64, error)
	Insert(ctx context.Context, flight *domain.FlightRecord) error
}

type FlightRepository interface {
	// WithTx runs fn in one transaction, committing when fn returns nil.
	WithTx(ctx context.Context, fn func(ctx context.Context, w FlightWriter) error) error
	Stats(ctx context.Context) (domain.FlightStats, error)
	Close() error
}

const insertColumns = `flight_id, departure, destination, departure_airport, arrival_airport, depart_time, arrive_time, price, rest_seats`

func insertArgs(f *domain.FlightRecord) []any {
	return []any{
		f.FlightID,
		f.Departure,
		f.Destination,
		f.DepartureAirport,
		f.ArrivalAirport,
		f.DepartTime.Format(domain.TimeLayout),
		f.ArriveTime.Format(domain.TimeLayout),
		f.Price,
		f.RestSeats,
	}
}

// Open connects to the store named by cfg.
func Open(ctx context.Context, cfg config.DatabaseConfig) (FlightRepository, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		repo, err := OpenSQLite(ctx, cfg.Path)
		if err != nil {
			return nil, err
		}
		return repo, nil
	case config.DriverPostgres:
		pool, err := pgxpool.New(ctx, cfg.DSN())
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("ping postgres: %w", err)
		}
		return NewFlightRepository(pool), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
