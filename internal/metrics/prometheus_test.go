package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveRun(t *testing.T) {
	m := NewMetrics("flightseed")

	m.ObserveRun(100, 97, 3, 97, 40, 2*time.Second, time.Unix(1700000000, 0))

	assert.Equal(t, 100.0, testutil.ToFloat64(m.FlightsGenerated))
	assert.Equal(t, 97.0, testutil.ToFloat64(m.FlightsInserted))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.FlightsSkipped))
	assert.Equal(t, 97.0, testutil.ToFloat64(m.FlightsTotal))
	assert.Equal(t, 40.0, testutil.ToFloat64(m.DepartureCities))
	assert.Equal(t, 1700000000.0, testutil.ToFloat64(m.LastSuccess))
	assert.Equal(t, 1, testutil.CollectAndCount(m.SeedDuration))
}

func TestMetrics_WriteTextfile(t *testing.T) {
	m := NewMetrics("flightseed")
	m.ObserveRun(10, 10, 0, 10, 8, time.Second, time.Now())

	path := filepath.Join(t.TempDir(), "flightseed.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "flightseed_flights_inserted_total 10")
	assert.Contains(t, string(data), "flightseed_departure_cities 8")
}

func TestMetrics_WriteTextfileBadDir(t *testing.T) {
	m := NewMetrics("flightseed")
	err := m.WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom"))
	assert.Error(t, err)
}
