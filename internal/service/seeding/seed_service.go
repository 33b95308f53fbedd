package seeding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Unbantucniak/FTMS/internal/domain"
	"github.com/Unbantucniak/FTMS/internal/kafka"
	"github.com/Unbantucniak/FTMS/internal/logger"
	"github.com/Unbantucniak/FTMS/internal/repository"
	"github.com/google/uuid"
)

type SeedUseCase interface {
	Seed(ctx context.Context, input SeedInput) (*SeedSummary, error)
}

type FlightGenerator interface {
	Generate(n int) []domain.FlightRecord
}

type Cache interface {
	InvalidateFlights(ctx context.Context) error
	MarkSeeded(ctx context.Context, runID string, at time.Time) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type MetricsRecorder interface {
	ObserveRun(generated, inserted, skipped int, total, cities int64, elapsed time.Duration, finishedAt time.Time)
}

type SeedInput struct {
	Count         int
	ClearExisting bool
}

type SeedSummary struct {
	RunID           string
	Generated       int
	Inserted        int
	Skipped         int
	Cleared         bool
	Deleted         int64
	TotalFlights    int64
	DepartureCities int64
	StartedAt       time.Time
	Elapsed         time.Duration
}

type SeedService struct {
	flights       repository.FlightRepository
	generator     FlightGenerator
	cache         Cache
	producer      Producer
	seedTopic     string
	metrics       MetricsRecorder
	log           logger.Logger
	progressEvery int
	now           func() time.Time
	newRunID      func() string
}

type SeedServiceOption func(*SeedService)

func WithCache(cache Cache) SeedServiceOption {
	return func(s *SeedService) {
		s.cache = cache
	}
}

func WithProducer(producer Producer, topic string) SeedServiceOption {
	return func(s *SeedService) {
		s.producer = producer
		s.seedTopic = topic
	}
}

func WithMetrics(m MetricsRecorder) SeedServiceOption {
	return func(s *SeedService) {
		s.metrics = m
	}
}

// WithProgressEvery sets how many rows pass between progress log lines.
func WithProgressEvery(n int) SeedServiceOption {
	return func(s *SeedService) {
		if n > 0 {
			s.progressEvery = n
		}
	}
}

func WithClock(now func() time.Time) SeedServiceOption {
	return func(s *SeedService) {
		s.now = now
	}
}

func NewSeedService(
	flights repository.FlightRepository,
	generator FlightGenerator,
	log logger.Logger,
	opts ...SeedServiceOption,
) *SeedService {
	service := &SeedService{
		flights:       flights,
		generator:     generator,
		log:           log,
		progressEvery: 1000,
		now:           time.Now,
		newRunID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Seed generates input.Count flights and loads them in one transaction.
// Flights whose id already exists are skipped, so Inserted may fall short
// of Generated. Any other store error aborts the run and nothing is kept.
func (s *SeedService) Seed(ctx context.Context, input SeedInput) (*SeedSummary, error) {
	if input.Count < 0 {
		return nil, errors.New("count must not be negative")
	}

	summary := &SeedSummary{
		RunID:     s.newRunID(),
		Cleared:   input.ClearExisting,
		StartedAt: s.now(),
	}
	log := s.log.With("run_id", summary.RunID)

	flights := s.generator.Generate(input.Count)
	summary.Generated = len(flights)
	log.Info("generated flights", "count", summary.Generated)

	err := s.flights.WithTx(ctx, func(ctx context.Context, w repository.FlightWriter) error {
		if input.ClearExisting {
			deleted, err := w.DeleteAll(ctx)
			if err != nil {
				return fmt.Errorf("clear flights: %w", err)
			}
			summary.Deleted = deleted
			log.Info("cleared existing flights", "deleted", deleted)
		}

		for i := range flights {
			err := w.Insert(ctx, &flights[i])
			switch {
			case errors.Is(err, repository.ErrDuplicateFlight):
				summary.Skipped++
				log.Debug("skipping duplicate flight", "flight_id", flights[i].FlightID)
			case err != nil:
				return fmt.Errorf("insert flight %s: %w", flights[i].FlightID, err)
			default:
				summary.Inserted++
			}

			if (i+1)%s.progressEvery == 0 {
				log.Info("insert progress", "processed", i+1, "total", len(flights))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	stats, err := s.flights.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("read flight stats: %w", err)
	}
	summary.TotalFlights = stats.Total
	summary.DepartureCities = stats.DepartureCities

	finishedAt := s.now()
	summary.Elapsed = finishedAt.Sub(summary.StartedAt)

	s.afterLoad(ctx, log, summary, finishedAt)

	if s.metrics != nil {
		s.metrics.ObserveRun(summary.Generated, summary.Inserted, summary.Skipped, summary.TotalFlights, summary.DepartureCities, summary.Elapsed, finishedAt)
	}

	log.Info("seeding finished",
		"inserted", summary.Inserted,
		"skipped", summary.Skipped,
		"total_flights", summary.TotalFlights,
		"departure_cities", summary.DepartureCities,
		"elapsed", summary.Elapsed,
	)
	return summary, nil
}

// afterLoad tells downstream consumers about the new data. The rows are
// already committed, so failures here are logged only.
func (s *SeedService) afterLoad(ctx context.Context, log logger.Logger, summary *SeedSummary, finishedAt time.Time) {
	if s.cache != nil {
		if err := s.cache.InvalidateFlights(ctx); err != nil {
			log.Warn("flight cache invalidation failed", "error", err)
		}
		if err := s.cache.MarkSeeded(ctx, summary.RunID, finishedAt); err != nil {
			log.Warn("seed marker not written", "error", err)
		}
	}

	if s.producer != nil {
		event := kafka.SeedEvent{
			Type:            kafka.SeedEventType,
			RunID:           summary.RunID,
			Generated:       summary.Generated,
			Inserted:        summary.Inserted,
			Skipped:         summary.Skipped,
			Cleared:         summary.Cleared,
			TotalFlights:    summary.TotalFlights,
			DepartureCities: summary.DepartureCities,
			FinishedAt:      finishedAt,
		}
		if err := s.producer.Publish(ctx, s.seedTopic, summary.RunID, event); err != nil {
			log.Warn("seed event not published", "topic", s.seedTopic, "error", err)
		}
	}
}

var _ SeedUseCase = (*SeedService)(nil)
