package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the seeder's prometheus collectors on a private registry,
// so a run can dump them to a node-exporter textfile.
type Metrics struct {
	registry *prometheus.Registry

	FlightsGenerated prometheus.Counter
	FlightsInserted  prometheus.Counter
	FlightsSkipped   prometheus.Counter
	FlightsTotal     prometheus.Gauge
	DepartureCities  prometheus.Gauge
	SeedDuration     prometheus.Histogram
	LastSuccess      prometheus.Gauge
}

func NewMetrics(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		FlightsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flights_generated_total",
			Help:      "The total number of synthetic flights generated",
		}),
		FlightsInserted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flights_inserted_total",
			Help:      "The total number of flights written to the store",
		}),
		FlightsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flights_skipped_total",
			Help:      "The total number of flights skipped on a duplicate flight id",
		}),
		FlightsTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "flights",
			Help:      "Rows in the flight table after the last run",
		}),
		DepartureCities: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "departure_cities",
			Help:      "Distinct departure cities in the flight table after the last run",
		}),
		SeedDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "seed_duration_seconds",
			Help:      "Time taken to generate and load one batch",
			Buckets:   prometheus.DefBuckets,
		}),
		LastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful run",
		}),
	}

	m.registry.MustRegister(
		m.FlightsGenerated,
		m.FlightsInserted,
		m.FlightsSkipped,
		m.FlightsTotal,
		m.DepartureCities,
		m.SeedDuration,
		m.LastSuccess,
	)
	return m
}

// ObserveRun records the outcome of one seeding run.
func (m *Metrics) ObserveRun(generated, inserted, skipped int, total, cities int64, elapsed time.Duration, finishedAt time.Time) {
	m.FlightsGenerated.Add(float64(generated))
	m.FlightsInserted.Add(float64(inserted))
	m.FlightsSkipped.Add(float64(skipped))
	m.FlightsTotal.Set(float64(total))
	m.DepartureCities.Set(float64(cities))
	m.SeedDuration.Observe(elapsed.Seconds())
	m.LastSuccess.Set(float64(finishedAt.Unix()))
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes the registry in text exposition format, atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
